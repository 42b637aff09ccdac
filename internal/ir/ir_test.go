package ir

import (
	"testing"

	llvm "github.com/llir/llvm/ir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minic/internal/ast"
	"minic/internal/errors"
	"minic/internal/parser"
)

func buildSource(t *testing.T, source string, opts ...Option) (*llvm.Module, error) {
	t.Helper()

	program, err := parser.ParseSource("test.mc", source)
	require.NoError(t, err)
	return Build(program, opts...)
}

func blockNames(f *llvm.Func) []string {
	names := make([]string, len(f.Blocks))
	for i, block := range f.Blocks {
		names[i] = block.Name()
	}
	return names
}

func funcNamed(t *testing.T, module *llvm.Module, name string) *llvm.Func {
	t.Helper()

	for _, f := range module.Funcs {
		if f.Name() == name {
			return f
		}
	}
	t.Fatalf("function %s not found", name)
	return nil
}

func globalNames(module *llvm.Module) []string {
	names := make([]string, len(module.Globals))
	for i, g := range module.Globals {
		names[i] = g.Name()
	}
	return names
}

func TestBuildStraightLine(t *testing.T) {
	module, err := buildSource(t, "x = 5 + 3;\nprint x;")
	require.NoError(t, err)

	require.Len(t, module.Funcs, 3)
	assert.Equal(t, PrintfName, module.Funcs[0].Name())
	assert.Equal(t, ScanfName, module.Funcs[1].Name())
	assert.True(t, module.Funcs[0].Sig.Variadic)
	assert.Empty(t, module.Funcs[0].Blocks, "primitives are declarations only")

	main := funcNamed(t, module, DefaultEntryName)
	assert.Empty(t, main.Params)
	assert.Equal(t, []string{"entry"}, blockNames(main))

	ret, ok := main.Blocks[0].Term.(*llvm.TermRet)
	require.True(t, ok)
	assert.Equal(t, "i32 0", ret.X.String())

	assert.Equal(t, []string{PrintFormatName, ScanFormatName}, globalNames(module))
}

func TestBuildDivisionGuard(t *testing.T) {
	module, err := buildSource(t, "x = 10; y = 0; print x / y;")
	require.NoError(t, err)

	main := funcNamed(t, module, DefaultEntryName)
	require.Equal(t, []string{"entry", "div_by_zero_1", "div_ok_1"}, blockNames(main))

	entry, errorBlock, okBlock := main.Blocks[0], main.Blocks[1], main.Blocks[2]

	condBr, ok := entry.Term.(*llvm.TermCondBr)
	require.True(t, ok, "the check block ends in a conditional branch")
	cmp, ok := condBr.Cond.(*llvm.InstICmp)
	require.True(t, ok)
	assert.Equal(t, "eq", cmp.Pred.String())
	assert.Same(t, errorBlock, condBr.TargetTrue)
	assert.Same(t, okBlock, condBr.TargetFalse)

	require.Len(t, errorBlock.Insts, 1)
	call, ok := errorBlock.Insts[0].(*llvm.InstCall)
	require.True(t, ok)
	assert.Equal(t, PrintfName, call.Callee.(*llvm.Func).Name())
	ret, ok := errorBlock.Term.(*llvm.TermRet)
	require.True(t, ok)
	assert.Equal(t, "i32 -1", ret.X.String())

	_, ok = okBlock.Insts[0].(*llvm.InstSDiv)
	assert.True(t, ok, "the continue block starts with the quotient")
	ret, ok = okBlock.Term.(*llvm.TermRet)
	require.True(t, ok)
	assert.Equal(t, "i32 0", ret.X.String())

	assert.Contains(t, globalNames(module), DivisionMessageName)
}

func TestBuildGuardsLiteralDivisors(t *testing.T) {
	module, err := buildSource(t, "print 1 / 1; print 8 / 2 / 2;")
	require.NoError(t, err)

	main := funcNamed(t, module, DefaultEntryName)
	assert.Equal(t, []string{
		"entry",
		"div_by_zero_1", "div_ok_1",
		"div_by_zero_2", "div_ok_2",
		"div_by_zero_3", "div_ok_3",
	}, blockNames(main))

	for _, block := range main.Blocks {
		assert.NotNil(t, block.Term, "block %s is not terminated", block.Name())
	}

	// one message global however many guards there are
	count := 0
	for _, name := range globalNames(module) {
		if name == DivisionMessageName {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestBuildUndefinedVariable(t *testing.T) {
	tests := []struct {
		name   string
		source string
		column int
		bound  []string
	}{
		{"never assigned", "print y;", 7, []string{}},
		{"read before assignment", "x = 1; print y; y = 2;", 14, []string{"x"}},
		{"self reference", "y = y + 1;", 5, []string{}},
		{"inside a division", "a = 4; print a / b;", 18, []string{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			module, err := buildSource(t, tt.source)
			assert.Nil(t, module, "no partial module on failure")

			var undefined *errors.UndefinedVariableError
			require.ErrorAs(t, err, &undefined)
			assert.Equal(t, tt.column, undefined.Position.Column)
			assert.Equal(t, "test.mc", undefined.Position.Filename)
			assert.Equal(t, tt.bound, undefined.Bound)
		})
	}
}

func TestBuildReassignmentAllocatesNewSlot(t *testing.T) {
	program, err := parser.ParseSource("test.mc", "x = 1; x = x + 1; print x;")
	require.NoError(t, err)

	builder := NewBuilder()
	module, err := builder.Build(program)
	require.NoError(t, err)

	var slots []*llvm.InstAlloca
	for _, inst := range funcNamed(t, module, DefaultEntryName).Blocks[0].Insts {
		if slot, ok := inst.(*llvm.InstAlloca); ok {
			slots = append(slots, slot)
		}
	}
	require.Len(t, slots, 2)
	assert.Equal(t, "x.0", slots[0].Name())
	assert.Equal(t, "x.1", slots[1].Name())

	current, ok := builder.Symbols().Lookup("x")
	require.True(t, ok)
	assert.Same(t, slots[1], current)
	assert.Equal(t, []string{"x"}, builder.Symbols().Names())
}

func TestBuildInput(t *testing.T) {
	module, err := buildSource(t, "input n;")
	require.NoError(t, err)

	insts := funcNamed(t, module, DefaultEntryName).Blocks[0].Insts
	require.Len(t, insts, 2)
	_, ok := insts[0].(*llvm.InstAlloca)
	assert.True(t, ok)

	call, ok := insts[1].(*llvm.InstCall)
	require.True(t, ok)
	assert.Equal(t, ScanfName, call.Callee.(*llvm.Func).Name())
	require.Len(t, call.Args, 2)
	assert.Same(t, insts[0], call.Args[1])
}

func TestBuildDeterministic(t *testing.T) {
	source := "input a; b = a * 2; print b / (a - 3); print b - 1;"

	first, err := buildSource(t, source, WithModuleName("det.mc"))
	require.NoError(t, err)
	second, err := buildSource(t, source, WithModuleName("det.mc"))
	require.NoError(t, err)

	assert.Equal(t, Print(first), Print(second))
}

func TestPrint(t *testing.T) {
	module, err := buildSource(t, "x = 6; print x / 2;", WithModuleName("half.mc"))
	require.NoError(t, err)

	text := Print(module)
	assert.Contains(t, text, "; ModuleID = 'half.mc'")
	assert.Contains(t, text, "define i32 @main()")
	assert.Contains(t, text, "@printf(i8*")
	assert.Contains(t, text, "icmp eq i32")
	assert.Contains(t, text, "sdiv i32")
	assert.Contains(t, text, "div_by_zero_1:")
	assert.Contains(t, text, `c"Error: Division by zero\0A\00"`)

	bare, err := buildSource(t, "print 1;")
	require.NoError(t, err)
	assert.Contains(t, Print(bare), "; ModuleID = '<input>'")
}

func TestWithEntryName(t *testing.T) {
	module, err := buildSource(t, "print 1;", WithEntryName("start"), WithEntryName(""))
	require.NoError(t, err)

	assert.Equal(t, "start", module.Funcs[len(module.Funcs)-1].Name())
}

func TestBuildInternalErrors(t *testing.T) {
	var internal *errors.InternalError

	_, err := Build(nil)
	assert.ErrorAs(t, err, &internal)

	_, err = Build(&ast.Program{Statements: []ast.Stmt{nil}})
	assert.ErrorAs(t, err, &internal)

	_, err = Build(&ast.Program{Statements: []ast.Stmt{&ast.PrintStmt{}}})
	require.ErrorAs(t, err, &internal)
	assert.Contains(t, internal.Message, "unknown expression type")
}

func TestEmitWithoutOpenBlock(t *testing.T) {
	builder := NewBuilder()
	_, err := builder.Build(&ast.Program{})
	require.NoError(t, err)

	// Build closes the entry function, so nothing may be emitted after it
	_, err = builder.buildStatement(&ast.PrintStmt{Value: &ast.NumberLit{Value: 1}})
	var internal *errors.InternalError
	require.ErrorAs(t, err, &internal)
	assert.Contains(t, internal.Message, "no open block")
}

func TestSymbolTable(t *testing.T) {
	symbols := NewSymbolTable()
	_, ok := symbols.Lookup("a")
	assert.False(t, ok)

	first, second := &llvm.InstAlloca{}, &llvm.InstAlloca{}
	symbols.Bind("b", first)
	symbols.Bind("a", first)
	symbols.Bind("a", second)

	slot, ok := symbols.Lookup("a")
	require.True(t, ok)
	assert.Same(t, second, slot)
	assert.Equal(t, []string{"a", "b"}, symbols.Names())
	assert.Equal(t, 2, symbols.Len())

	_, ok = symbols.Lookup("A")
	assert.False(t, ok, "names are case-sensitive")
}
