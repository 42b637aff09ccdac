package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Program is the parse tree root: one or more statements.
type Program struct {
	Pos        lexer.Position
	EndPos     lexer.Position
	Statements []*Statement `@@+`
}

type Statement struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Print  *PrintStmt  `  @@`
	Input  *InputStmt  `| @@`
	Assign *AssignStmt `| @@`
}

type PrintStmt struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Expr   *Expr `"print" @@ ";"`
}

type InputStmt struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Name   PosIdent `"input" @@ ";"`
}

type AssignStmt struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Target PosIdent `@@ "="`
	Value  *Expr    `@@ ";"`
}

type PosIdent struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Value  string `@Ident`
}

// Expr and Term are flattened (operand, operator-list) pairs; the grammar is
// left-recursive and participle is not, so associativity is restored when the
// AST is built.
type Expr struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Left   *Term    `@@`
	Ops    []*AddOp `{ @@ }`
}

type AddOp struct {
	Pos      lexer.Position
	EndPos   lexer.Position
	Operator string `@("+" | "-")`
	Right    *Term  `@@`
}

type Term struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Left   *Factor  `@@`
	Ops    []*MulOp `{ @@ }`
}

type MulOp struct {
	Pos      lexer.Position
	EndPos   lexer.Position
	Operator string  `@("*" | "/")`
	Right    *Factor `@@`
}

type Factor struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Number *string   `  @Number`
	Ident  *PosIdent `| @@`
	Parens *Expr     `| "(" @@ ")"`
}
