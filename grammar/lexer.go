package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

var MinicLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Keywords are matched before identifiers so they stay reserved
		{Name: "Keyword", Pattern: `\b(print|input)\b`, Action: nil},

		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`, Action: nil},

		{Name: "Number", Pattern: `[0-9]+`, Action: nil},

		{Name: "Operator", Pattern: `[-+*/=]`, Action: nil},

		{Name: "Punctuation", Pattern: `[();]`, Action: nil},

		{Name: "Whitespace", Pattern: `[ \t\r\n]+`, Action: nil},
	},
})
