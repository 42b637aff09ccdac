package semantic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minic/internal/ast"
	"minic/internal/errors"
	"minic/internal/parser"
)

func analyzeSource(t *testing.T, source string) ([]errors.CompilerError, *Analyzer) {
	t.Helper()

	program, err := parser.ParseSource("test.mc", source)
	require.NoError(t, err, "Should have no parse errors")

	analyzer := NewAnalyzer()
	return analyzer.Analyze(program), analyzer
}

func codes(diags []errors.CompilerError) []string {
	result := make([]string, len(diags))
	for i, d := range diags {
		result[i] = d.Code
	}
	return result
}

func TestAnalyzeCleanProgram(t *testing.T) {
	diags, analyzer := analyzeSource(t, "input x;\nx = x - 1;\nprint x;")
	assert.Empty(t, diags)
	assert.False(t, analyzer.HasErrors())
	assert.Equal(t, []string{"x"}, analyzer.Symbols().Names())
}

func TestAnalyzeReportsEveryUndefinedUse(t *testing.T) {
	diags, analyzer := analyzeSource(t, "total = 1;\nprint totl;\nprint y + y;\nprint total;")
	require.Equal(t, []string{errors.ErrorUndefinedVariable, errors.ErrorUndefinedVariable, errors.ErrorUndefinedVariable}, codes(diags))
	assert.True(t, analyzer.HasErrors())

	assert.Equal(t, "undefined variable 'totl'", diags[0].Message)
	assert.Equal(t, 2, diags[0].Position.Line)
	assert.Equal(t, 7, diags[0].Position.Column)
	require.NotEmpty(t, diags[0].Suggestions)
	assert.Contains(t, diags[0].Suggestions[0].Message, "total")

	assert.Equal(t, 3, diags[1].Position.Line)
	assert.Equal(t, 7, diags[1].Position.Column)
	assert.Equal(t, 11, diags[2].Position.Column)
}

func TestAnalyzeUseBeforeAssignment(t *testing.T) {
	diags, _ := analyzeSource(t, "print n;\nn = 1;\nprint n;")
	require.Len(t, diags, 1)
	assert.Equal(t, errors.ErrorUndefinedVariable, diags[0].Code)
	assert.Equal(t, 1, diags[0].Position.Line)
}

func TestAnalyzeSelfReferenceIsUndefined(t *testing.T) {
	diags, _ := analyzeSource(t, "y = y + 1;\nprint y;")
	require.Len(t, diags, 1)
	assert.Equal(t, errors.ErrorUndefinedVariable, diags[0].Code)
	assert.Equal(t, 5, diags[0].Position.Column)
}

func TestAnalyzeUnusedBindings(t *testing.T) {
	t.Run("never read", func(t *testing.T) {
		diags, analyzer := analyzeSource(t, "unused = 42;\nprint 1;")
		require.Equal(t, []string{errors.WarningUnusedVariable}, codes(diags))
		assert.Contains(t, diags[0].Message, "is never read")
		assert.False(t, analyzer.HasErrors(), "warnings never block compilation")
	})

	t.Run("overwritten before read", func(t *testing.T) {
		diags, _ := analyzeSource(t, "x = 1;\nx = 2;\nprint x;")
		require.Equal(t, []string{errors.WarningUnusedVariable}, codes(diags))
		assert.Equal(t, 1, diags[0].Position.Line)
	})

	t.Run("read by its own replacement", func(t *testing.T) {
		diags, _ := analyzeSource(t, "x = 1;\nx = x + 1;\nprint x;")
		assert.Empty(t, diags)
	})

	t.Run("input never read", func(t *testing.T) {
		diags, _ := analyzeSource(t, "input a;\nprint 0;")
		require.Equal(t, []string{errors.WarningUnusedVariable}, codes(diags))
	})
}

func TestAnalyzeLiteralZeroDivisor(t *testing.T) {
	diags, _ := analyzeSource(t, "x = 4;\nprint x / 0;\nprint x / (1 - 1);")
	require.Equal(t, []string{errors.WarningDivisionByZero}, codes(diags))
	assert.Equal(t, 2, diags[0].Position.Line)
	assert.Equal(t, 11, diags[0].Position.Column)
}

func TestAnalyzeOrdersByPosition(t *testing.T) {
	diags, _ := analyzeSource(t, "a = 1;\nprint b;\nprint 2 / 0;")
	assert.Equal(t, []string{errors.WarningUnusedVariable, errors.ErrorUndefinedVariable, errors.WarningDivisionByZero}, codes(diags))
}

func TestAnalyzerIsReusable(t *testing.T) {
	analyzer := NewAnalyzer()

	first, err := parser.ParseSource("a.mc", "print q;")
	require.NoError(t, err)
	assert.Len(t, analyzer.Analyze(first), 1)

	second, err := parser.ParseSource("b.mc", "q = 1; print q;")
	require.NoError(t, err)
	assert.Empty(t, analyzer.Analyze(second))
	assert.Empty(t, analyzer.GetErrors())

	assert.Empty(t, analyzer.Analyze(nil))
}

func TestSymbolTableDefine(t *testing.T) {
	st := NewSymbolTable()
	stmt := &ast.InputStmt{Name: ast.Ident{Value: "a"}}

	first, previous := st.Define("a", SymbolInput, stmt, ast.Position{Offset: 6})
	assert.Nil(t, previous)
	assert.Same(t, first, st.Lookup("a"))

	second, previous := st.Define("a", SymbolAssigned, nil, ast.Position{Offset: 12})
	assert.Same(t, first, previous)
	assert.Same(t, second, st.Lookup("a"))

	st.Define("b", SymbolAssigned, nil, ast.Position{Offset: 0})
	symbols := st.Symbols()
	require.Len(t, symbols, 2)
	assert.Equal(t, "b", symbols[0].Name)
	assert.Equal(t, []string{"a", "b"}, st.Names())
	assert.Nil(t, st.Lookup("c"))
}
