package errors

import (
	stderrors "errors"
	"fmt"

	"minic/internal/ast"
)

// SyntaxError reports source text the parser rejected. No translation happens.
type SyntaxError struct {
	Position ast.Position
	Message  string
	Code     string
	Length   int
	Literal  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d:%d: syntax error: %s", e.Position.Filename, e.Position.Line, e.Position.Column, e.Message)
}

func (e *SyntaxError) CompilerError() CompilerError {
	if e.Code == ErrorLiteralOutOfRange {
		return LiteralOutOfRange(e.Literal, e.Position)
	}

	diag := SyntaxDiagnostic(e.Message, e.Position)
	if e.Length > 0 {
		diag.Length = e.Length
	}
	return diag
}

// UndefinedVariableError reports a read of a name with no binding at that
// point in program order.
type UndefinedVariableError struct {
	Name     string
	Position ast.Position
	Bound    []string // names bound when the read was lowered
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("%s:%d:%d: undefined variable '%s'", e.Position.Filename, e.Position.Line, e.Position.Column, e.Name)
}

func (e *UndefinedVariableError) CompilerError() CompilerError {
	return UndefinedVariable(e.Name, e.Position, e.Bound)
}

// InternalError signals a translator defect such as an AST node of unknown
// shape. It never describes a problem with the user's program.
type InternalError struct {
	Message string
}

func (e *InternalError) Error() string {
	return "internal translation error: " + e.Message
}

func (e *InternalError) CompilerError() CompilerError {
	return NewDiagnostic(ErrorInternal, e.Message, ast.Position{}).
		WithNote("this is a compiler bug, not a problem with the program").
		Build()
}

// Internalf builds an InternalError from a format string.
func Internalf(format string, args ...any) *InternalError {
	return &InternalError{Message: fmt.Sprintf(format, args...)}
}

type diagnostic interface {
	CompilerError() CompilerError
}

// AsCompilerError unwraps err looking for one of the typed compiler errors.
func AsCompilerError(err error) (CompilerError, bool) {
	var d diagnostic
	if stderrors.As(err, &d) {
		return d.CompilerError(), true
	}
	return CompilerError{}, false
}
