package lsp

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"

	"minic/grammar"
	"minic/internal/ast"
)

// SemanticToken represents a single LSP semantic token entry
// Line and StartChar are 0-based positions
// TokenType is an index into the SemanticTokenTypes array
// TokenModifiers is a bitmask based on SemanticTokenModifiers
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int // index into SemanticTokenTypes
	TokenModifiers int // bitmask
}

var tokenTypeByRule = map[string]string{
	"Keyword":  "keyword",
	"Ident":    "variable",
	"Number":   "number",
	"Operator": "operator",
}

// collectSemanticTokens lexes content and classifies every token. Names
// bound by an assignment or input statement of program carry the
// declaration modifier. Lexing stops at the first invalid character.
func collectSemanticTokens(filename, content string, program *ast.Program) []SemanticToken {
	var tokens []SemanticToken

	lex, err := grammar.MinicLexer.Lex(filename, strings.NewReader(content))
	if err != nil {
		return tokens
	}

	ruleNames := make(map[lexer.TokenType]string)
	for name, tokenType := range grammar.MinicLexer.Symbols() {
		ruleNames[tokenType] = name
	}

	declarations := declarationOffsets(program)

	for {
		tok, err := lex.Next()
		if err != nil || tok.EOF() {
			break
		}

		tokenType, ok := tokenTypeByRule[ruleNames[tok.Type]]
		if !ok {
			continue
		}

		modifier := 0
		if tokenType == "variable" && declarations[tok.Pos.Offset] {
			modifier = 1
		}

		tokens = append(tokens, makeToken(tok.Pos, tok.Value, tokenType, modifier))
	}

	return tokens
}

// declarationOffsets returns the offsets of every binding name in program
func declarationOffsets(program *ast.Program) map[int]bool {
	offsets := make(map[int]bool)
	if program == nil {
		return offsets
	}

	for _, stmt := range program.Statements {
		switch s := stmt.(type) {
		case *ast.AssignStmt:
			offsets[s.Name.Pos.Offset] = true
		case *ast.InputStmt:
			offsets[s.Name.Pos.Offset] = true
		}
	}
	return offsets
}

// makeToken creates a semantic token for a given position and text
func makeToken(pos lexer.Position, value, tokenType string, declModifier int) SemanticToken {
	return SemanticToken{
		Line:           uint32(pos.Line - 1),   // LSP uses 0-based line numbers
		StartChar:      uint32(pos.Column - 1), // LSP uses 0-based column numbers
		Length:         uint32(len(value)),
		TokenType:      indexOf(tokenType, SemanticTokenTypes),
		TokenModifiers: declModifier << indexOf("declaration", SemanticTokenModifiers),
	}
}

// indexOf returns the index of a string in a slice, or 0 if not found
func indexOf(target string, list []string) int {
	for i, v := range list {
		if v == target {
			return i
		}
	}
	return 0
}
