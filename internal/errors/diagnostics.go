package errors

import (
	"fmt"
	"strings"

	"minic/internal/ast"
)

// DiagnosticBuilder provides a fluent interface for creating diagnostics with suggestions
type DiagnosticBuilder struct {
	err CompilerError
}

// NewDiagnostic creates a new error diagnostic builder
func NewDiagnostic(code, message string, pos ast.Position) *DiagnosticBuilder {
	return &DiagnosticBuilder{
		err: CompilerError{
			Level:    Error,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

// NewWarning creates a new warning diagnostic builder
func NewWarning(code, message string, pos ast.Position) *DiagnosticBuilder {
	b := NewDiagnostic(code, message, pos)
	b.err.Level = Warning
	return b
}

// WithLength sets the length of the error span
func (b *DiagnosticBuilder) WithLength(length int) *DiagnosticBuilder {
	b.err.Length = length
	return b
}

// WithSuggestion adds a suggestion to the error
func (b *DiagnosticBuilder) WithSuggestion(message string) *DiagnosticBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{Message: message})
	return b
}

// WithReplacement adds a suggestion with replacement text
func (b *DiagnosticBuilder) WithReplacement(message, replacement string, pos ast.Position, length int) *DiagnosticBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{
		Message:     message,
		Replacement: replacement,
		Position:    pos,
		Length:      length,
	})
	return b
}

// WithNote adds a note to the error
func (b *DiagnosticBuilder) WithNote(note string) *DiagnosticBuilder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

// WithHelp adds help text to the error
func (b *DiagnosticBuilder) WithHelp(help string) *DiagnosticBuilder {
	b.err.HelpText = help
	return b
}

// Build returns the completed compiler error
func (b *DiagnosticBuilder) Build() CompilerError {
	return b.err
}

// UndefinedVariable creates an error for a read of an unbound name
func UndefinedVariable(name string, pos ast.Position, boundNames []string) CompilerError {
	builder := NewDiagnostic(ErrorUndefinedVariable, fmt.Sprintf("undefined variable '%s'", name), pos).
		WithLength(len(name))

	similar := FindSimilarNames(name, boundNames)
	switch len(similar) {
	case 0:
		builder = builder.WithSuggestion(fmt.Sprintf("assign '%s' before reading it", name)).
			WithNote("variables are bound by '<name> = <expr>;' or 'input <name>;'")
	case 1:
		builder = builder.WithReplacement(fmt.Sprintf("did you mean '%s'?", similar[0]), similar[0], pos, len(name))
	default:
		builder = builder.WithSuggestion(fmt.Sprintf("did you mean one of: '%s'?", strings.Join(similar, "', '")))
	}

	return builder.Build()
}

// UnusedVariable creates a warning for a binding whose value is never read
func UnusedVariable(name string, pos ast.Position) CompilerError {
	return NewWarning(WarningUnusedVariable, fmt.Sprintf("value assigned to '%s' is never read", name), pos).
		WithLength(len(name)).
		WithSuggestion("remove the assignment if it's not needed").
		WithNote("every assignment allocates a new storage location").
		Build()
}

// DivisionByConstantZero creates a warning for a literal zero divisor
func DivisionByConstantZero(pos ast.Position) CompilerError {
	return NewWarning(WarningDivisionByZero, "division by zero", pos).
		WithNote("the program will print 'Error: Division by zero' and stop here with status -1").
		Build()
}

// SyntaxDiagnostic creates an error for malformed source text
func SyntaxDiagnostic(message string, pos ast.Position) CompilerError {
	return NewDiagnostic(ErrorSyntax, message, pos).Build()
}

// LiteralOutOfRange creates an error for an integer literal wider than 32 bits
func LiteralOutOfRange(literal string, pos ast.Position) CompilerError {
	return NewDiagnostic(ErrorLiteralOutOfRange, fmt.Sprintf("integer literal %s does not fit in 32 bits", literal), pos).
		WithLength(len(literal)).
		WithNote("integer values are signed 32-bit, the largest literal is 2147483647").
		Build()
}

// FindSimilarNames returns the candidates within edit distance 2 of target
func FindSimilarNames(target string, candidates []string) []string {
	var similar []string
	seen := make(map[string]bool)

	for _, candidate := range candidates {
		if candidate == target || seen[candidate] {
			continue
		}
		if levenshteinDistance(target, candidate) <= 2 {
			similar = append(similar, candidate)
			seen[candidate] = true
		}
	}

	return similar
}

// Simple Levenshtein distance implementation for finding similar names
func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	matrix := make([][]int, len(a)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(b)+1)
	}

	for i := 0; i <= len(a); i++ {
		matrix[i][0] = i
	}
	for j := 0; j <= len(b); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}
			matrix[i][j] = min(
				matrix[i-1][j]+1,
				matrix[i][j-1]+1,
				matrix[i-1][j-1]+cost,
			)
		}
	}

	return matrix[len(a)][len(b)]
}
