package stdlib

import (
	"testing"

	llvm "github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStandardFunctions(t *testing.T) {
	functions := GetStandardFunctions()
	assert.Len(t, functions, 2)

	printf, ok := Lookup("printf")
	require.True(t, ok)
	assert.True(t, printf.Variadic)
	assert.Equal(t, "format", printf.Parameters[0].Name)

	_, ok = Lookup("puts")
	assert.False(t, ok)
}

func TestDeclare(t *testing.T) {
	module := llvm.NewModule()
	fn := Scanf.Declare(module)

	assert.Same(t, fn, module.Funcs[0])
	assert.Empty(t, fn.Blocks)
	assert.True(t, Scanf.Matches(fn))
	assert.False(t, Printf.Matches(fn), "names differ")
	assert.Contains(t, module.String(), "declare i32 @scanf(i8* %format, ...)")
}

func TestMatchesChecksSignature(t *testing.T) {
	module := llvm.NewModule()

	fixed := module.NewFunc("printf", types.I32, llvm.NewParam("format", types.I8Ptr))
	assert.False(t, Printf.Matches(fixed), "not variadic")

	wide := module.NewFunc("printf", types.I64, llvm.NewParam("format", types.I8Ptr))
	wide.Sig.Variadic = true
	assert.False(t, Printf.Matches(wide), "wrong return type")
}
