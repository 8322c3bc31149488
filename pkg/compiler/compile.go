package compiler

import "fmt"

// Compile runs the full pipeline — preprocess, lex, parse, generate — over a
// single translation unit and returns the emitted ZKTC assembly text along
// with the SymbolTable that resulted from generation (handy for the
// dump-symbols CLI subcommand). baseDir anchors relative #include paths.
func Compile(src string, baseDir string) (string, *SymbolTable, error) {
	src, err := Preprocess(src, baseDir)
	if err != nil {
		return "", nil, fmt.Errorf("preprocess: %w", err)
	}

	tokens, err := Lex(src)
	if err != nil {
		return "", nil, fmt.Errorf("lex: %w", err)
	}

	stmts, err := Parse(tokens, src)
	if err != nil {
		return "", nil, fmt.Errorf("parse: %w", err)
	}

	syms := NewSymbolTable()
	assembly, err := Generate(stmts, syms)
	if err != nil {
		return "", syms, fmt.Errorf("codegen: %w", err)
	}

	return assembly, syms, nil
}
