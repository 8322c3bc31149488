package compiler

import "fmt"

// TypeInfo is the compiler's Type lattice: Int, Char, Pointer, Array, Struct
// and Func, all folded into one struct (rather than a tagged union) so that
// every AST node and SymbolTable entry can carry it by value. PointerLevel
// counts levels of indirection on top of the base (Char, Int or Struct)
// type. "struct Foo *p" keeps IsStruct and StructName with PointerLevel 1,
// so dereferencing it (as "->" does) gets back to the struct's layout; any
// value with PointerLevel > 0 is word-sized.
type TypeInfo struct {
	IsArray      bool
	ArrayLen     int
	IsStruct     bool
	StructName   string
	IsChar       bool
	PointerLevel int
	IsUnsigned   bool
}

func intType() TypeInfo  { return TypeInfo{} }
func charType() TypeInfo { return TypeInfo{IsChar: true} }

// funcType is the address-sized handle used when a function name is
// referenced as a value rather than called directly.
func funcType() TypeInfo { return TypeInfo{PointerLevel: 1} }

// elemSize returns the size in bytes of one element of t, ignoring any
// array length (t's own size, were it not an array).
func (t TypeInfo) elemSize(syms *SymbolTable) (int, error) {
	if t.PointerLevel > 0 {
		return 2, nil
	}
	if t.IsStruct {
		def, ok := syms.GetStruct(t.StructName)
		if !ok {
			return 0, fmt.Errorf("Unknown struct type: %s", t.StructName)
		}
		return def.Size, nil
	}
	if t.IsChar {
		return 1, nil
	}
	return 2, nil
}

// Size returns t's total size in bytes, per the invariant that Array.size ==
// element.size * length and every other variant's size is fixed.
func (t TypeInfo) Size(syms *SymbolTable) (int, error) {
	elem, err := t.elemSize(syms)
	if err != nil {
		return 0, err
	}
	if !t.IsArray {
		return elem, nil
	}
	return elem * t.ArrayLen, nil
}

// isPointerish reports whether a value of this type decays to an address:
// arithmetic on it selects PtrAdd/PtrSub instead of Add/Sub.
func (t TypeInfo) isPointerish() bool {
	return t.PointerLevel > 0 || t.IsArray
}

// isIntegerish reports whether this type participates in plain integer
// arithmetic (Int or Char, not Pointer/Array/Struct).
func (t TypeInfo) isIntegerish() bool {
	return t.PointerLevel == 0 && !t.IsArray && !t.IsStruct
}

// deref strips one level of pointer or array-ness, per Deref's invariant
// that it requires Pointer/Array and unwraps one layer.
func (t TypeInfo) deref() TypeInfo {
	if t.IsArray {
		next := t
		next.IsArray = false
		next.ArrayLen = 0
		return next
	}
	next := t
	next.PointerLevel--
	return next
}

// addrOf builds the Pointer(T) type that & produces from an lvalue of type T.
// For an array, the result is a pointer to its element type.
func (t TypeInfo) addrOf() TypeInfo {
	if t.IsArray {
		next := t
		next.IsArray = false
		next.ArrayLen = 0
		next.PointerLevel++
		return next
	}
	next := t
	next.PointerLevel++
	return next
}

func (t TypeInfo) String() string {
	base := "int"
	if t.IsStruct {
		base = "struct " + t.StructName
	} else if t.IsChar {
		base = "char"
	}
	for i := 0; i < t.PointerLevel; i++ {
		base += "*"
	}
	if t.IsArray {
		base = fmt.Sprintf("%s[%d]", base, t.ArrayLen)
	}
	return base
}
