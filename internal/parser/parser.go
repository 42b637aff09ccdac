package parser

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/tliron/commonlog"
	"minic/grammar"
	"minic/internal/ast"
	"minic/internal/errors"
)

var log = commonlog.GetLogger("minic.parser")

// ParseFile reads a source file and parses it into an AST.
func ParseFile(path string) (*ast.Program, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return ParseSource(path, string(source))
}

// ParseSource parses source text into an AST. Syntax problems, including
// integer literals that do not fit in 32 bits, are returned as
// *errors.SyntaxError.
func ParseSource(path string, source string) (*ast.Program, error) {
	tree, err := grammar.ParseString(path, source)
	if err != nil {
		return nil, syntaxError(path, err)
	}

	program, err := buildProgram(tree)
	if err != nil {
		return nil, err
	}

	log.Debugf("parsed %s: %d statements", path, len(program.Statements))
	return program, nil
}

func syntaxError(path string, err error) error {
	var perr participle.Error
	if !stderrors.As(err, &perr) {
		return &errors.SyntaxError{
			Position: ast.Position{Filename: path, Line: 1, Column: 1},
			Message:  err.Error(),
			Code:     errors.ErrorSyntax,
		}
	}

	pos := makePos(perr.Position())
	if pos.Filename == "" {
		pos.Filename = path
	}

	return &errors.SyntaxError{
		Position: pos,
		Message:  perr.Message(),
		Code:     errors.ErrorSyntax,
	}
}

func makePos(pos lexer.Position) ast.Position {
	return ast.Position{
		Filename: pos.Filename,
		Offset:   pos.Offset,
		Line:     pos.Line,
		Column:   pos.Column,
	}
}
