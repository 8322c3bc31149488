package compiler

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile_FullPipelineProducesAssemblyAndSymbols(t *testing.T) {
	src := `
		int total;

		int add(int a, int b) {
			return a + b;
		}

		int main() {
			total = add(2, 3);
			return total;
		}
	`
	asm, syms, err := Compile(src, ".")
	require.NoError(t, err)
	require.NotNil(t, syms)

	assertContains(t, asm, "init:")
	assertContains(t, asm, "add:")
	assertContains(t, asm, "main:")
	assertContains(t, asm, "total:")

	_, ok := syms.Lookup("total")
	assert.True(t, ok)
}

func TestCompile_HonorsIncludesRelativeToSourceDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "shared.h"), []byte("int shared_counter;\n"), 0o644))

	src := `
		#include "shared.h"
		int main() {
			shared_counter = 1;
			return shared_counter;
		}
	`
	asm, _, err := Compile(src, dir)
	require.NoError(t, err)
	assertContains(t, asm, "shared_counter:")
}

func TestCompile_PropagatesParseErrors(t *testing.T) {
	_, _, err := Compile("int main( { return 0; }", ".")
	assert.Error(t, err)
}

func TestCompile_PropagatesPreprocessErrors(t *testing.T) {
	_, _, err := Compile(`#include "does-not-exist.h"`, ".")
	assert.Error(t, err)
}
