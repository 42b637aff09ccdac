package grammar_test

import (
	"testing"

	"github.com/alecthomas/participle/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minic/grammar"
)

func TestParseStatements(t *testing.T) {
	program, err := grammar.ParseString("test.mc", "x = 5 + 3;\nprint x;\ninput y;")
	require.NoError(t, err)
	require.Len(t, program.Statements, 3)

	assign := program.Statements[0].Assign
	require.NotNil(t, assign)
	assert.Equal(t, "x", assign.Target.Value)
	require.NotNil(t, assign.Value.Left.Left.Number)
	assert.Equal(t, "5", *assign.Value.Left.Left.Number)
	require.Len(t, assign.Value.Ops, 1)
	assert.Equal(t, "+", assign.Value.Ops[0].Operator)

	printStmt := program.Statements[1].Print
	require.NotNil(t, printStmt)
	require.NotNil(t, printStmt.Expr.Left.Left.Ident)
	assert.Equal(t, "x", printStmt.Expr.Left.Left.Ident.Value)
	assert.Equal(t, 2, printStmt.Pos.Line)

	input := program.Statements[2].Input
	require.NotNil(t, input)
	assert.Equal(t, "y", input.Name.Value)
	assert.Equal(t, 3, input.Name.Pos.Line)
	assert.Equal(t, 7, input.Name.Pos.Column)
}

func TestParsePrecedenceShape(t *testing.T) {
	program, err := grammar.ParseString("test.mc", "print 1 + 2 * (3 - 4) / 5;")
	require.NoError(t, err)

	expr := program.Statements[0].Print.Expr
	require.Len(t, expr.Ops, 1, "only the + sits at expression level")

	term := expr.Ops[0].Right
	require.Len(t, term.Ops, 2)
	assert.Equal(t, "*", term.Ops[0].Operator)
	assert.Equal(t, "/", term.Ops[1].Operator)
	require.NotNil(t, term.Ops[0].Right.Parens)
	assert.Equal(t, "-", term.Ops[0].Right.Parens.Ops[0].Operator)
}

func TestParseWhitespaceInsensitive(t *testing.T) {
	program, err := grammar.ParseString("test.mc", "  x=1 ;\n\n\tprint\tx  ;  ")
	require.NoError(t, err)
	assert.Len(t, program.Statements, 2)
}

func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"missing semicolon": "x = 1",
		"empty program":     "",
		"dangling operator": "print 1 +;",
		"keyword as target": "print = 3;",
		"bad character":     "x = 1 % 2;",
		"unbalanced parens": "print (1 + 2;",
	}

	for name, source := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := grammar.ParseString("bad.mc", source)
			require.Error(t, err)

			var perr participle.Error
			assert.ErrorAs(t, err, &perr)
		})
	}
}

func TestKeywordPrefixIsIdentifier(t *testing.T) {
	program, err := grammar.ParseString("test.mc", "printer = 1; input_value = printer;")
	require.NoError(t, err)
	require.Len(t, program.Statements, 2)
	assert.Equal(t, "printer", program.Statements[0].Assign.Target.Value)
	assert.Equal(t, "input_value", program.Statements[1].Assign.Target.Value)
}
