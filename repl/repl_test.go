package repl

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minic/internal/errors"
)

func TestStartCarriesVariablesAcrossLines(t *testing.T) {
	var out bytes.Buffer
	Start(context.Background(), strings.NewReader("x = 6;\nprint x * 7;\n"), &out)

	assert.Equal(t, ">> >> 42\n>> \n", out.String())
}

func TestEvalInputReadsFromSameStream(t *testing.T) {
	var out bytes.Buffer
	session := NewSession(strings.NewReader("input n;\n7\nprint n + 1;\n"), &out)
	session.Run(context.Background())

	assert.Equal(t, ">> >> 8\n>> \n", out.String(), "one prompt per statement line")
	assert.Equal(t, map[string]int32{"n": 7}, session.Variables())
}

func TestInputLeavesFollowingLineIntact(t *testing.T) {
	var out bytes.Buffer
	session := NewSession(strings.NewReader("input a;\n3 \nprint a;\nprint a * 2;\n"), &out)
	session.Run(context.Background())

	assert.Equal(t, ">> >> 3\n>> 6\n>> \n", out.String())
}

func TestEvalDivisionByZeroDiscardsLine(t *testing.T) {
	var out bytes.Buffer
	session := NewSession(strings.NewReader(""), &out)
	ctx := context.Background()

	require.NoError(t, session.Eval(ctx, "y = 1;"))
	require.NoError(t, session.Eval(ctx, "y = 2; z = y / 0;"))
	assert.Equal(t, "Error: Division by zero\n", out.String())
	assert.Equal(t, map[string]int32{"y": 1}, session.Variables())

	require.NoError(t, session.Eval(ctx, "print y;"))
	assert.Equal(t, "Error: Division by zero\n1\n", out.String())
}

func TestEvalReportsErrors(t *testing.T) {
	session := NewSession(strings.NewReader(""), &bytes.Buffer{})
	ctx := context.Background()

	require.NoError(t, session.Eval(ctx, "total = 3;"))

	err := session.Eval(ctx, "print totl;")
	var undefined *errors.UndefinedVariableError
	require.ErrorAs(t, err, &undefined)
	assert.Equal(t, "totl", undefined.Name)
	assert.Contains(t, undefined.Bound, "total")

	err = session.Eval(ctx, "print ;")
	var syntax *errors.SyntaxError
	assert.ErrorAs(t, err, &syntax)

	assert.Equal(t, map[string]int32{"total": 3}, session.Variables())
}

func TestRunPrintsDiagnostics(t *testing.T) {
	var out bytes.Buffer
	Start(context.Background(), strings.NewReader("print nope;\n"), &out)

	assert.Contains(t, out.String(), "undefined variable 'nope'")
}

func TestRunStopsWhenCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	Start(ctx, strings.NewReader("print 1;\n"), &out)
	assert.Empty(t, out.String())
}
