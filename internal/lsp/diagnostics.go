package lsp

import (
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"minic/internal/ast"
	"minic/internal/errors"
	"minic/internal/parser"
	"minic/internal/semantic"
)

const diagnosticSource = "minic"

// analyzeDocument parses content and runs the binding analysis. The program
// is nil when the text does not parse.
func analyzeDocument(path, content string) (*ast.Program, []protocol.Diagnostic) {
	program, err := parser.ParseSource(path, content)
	if err != nil {
		diag, ok := errors.AsCompilerError(err)
		if !ok {
			diag = errors.SyntaxDiagnostic(err.Error(), ast.Position{Line: 1, Column: 1})
		}
		return nil, ConvertCompilerErrors([]errors.CompilerError{diag})
	}

	return program, ConvertCompilerErrors(semantic.NewAnalyzer().Analyze(program))
}

// ConvertCompilerErrors transforms compiler diagnostics into LSP diagnostics
// for IDE display. Suggestions and notes are appended to the message.
func ConvertCompilerErrors(errs []errors.CompilerError) []protocol.Diagnostic {
	diagnostics := make([]protocol.Diagnostic, 0, len(errs))

	for _, err := range errs {
		line := uint32(max(err.Position.Line-1, 0))
		start := uint32(max(err.Position.Column-1, 0))

		severity := protocol.DiagnosticSeverityError
		if err.Level == errors.Warning {
			severity = protocol.DiagnosticSeverityWarning
		}

		message := err.Message
		var extra []string
		for _, s := range err.Suggestions {
			extra = append(extra, s.Message)
		}
		extra = append(extra, err.Notes...)
		if len(extra) > 0 {
			message += "\n" + strings.Join(extra, "\n")
		}

		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{Line: line, Character: start},
				End:   protocol.Position{Line: line, Character: start + uint32(max(err.Length, 1))},
			},
			Severity: ptrSeverity(severity),
			Code:     &protocol.IntegerOrString{Value: err.Code},
			Source:   ptrString(diagnosticSource),
			Message:  message,
		})
	}

	return diagnostics
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
