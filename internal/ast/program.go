package ast

// Program represents a whole source file: statements in source order
// Example: "x = 5 + 3; print x;"
type Program struct {
	Pos        Position
	EndPos     Position
	Statements []Stmt
}

// Position tracks location information for error reporting and tooling
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

// Ident represents a variable name
// Example: "x", "total", "_tmp1"
type Ident struct {
	Pos    Position
	EndPos Position
	Value  string
}

// PrintStmt writes the decimal value of an expression followed by a newline
// Example: "print x * 2;"
type PrintStmt struct {
	Pos    Position
	EndPos Position
	Value  Expr
}

// AssignStmt binds a name to a fresh storage location holding the value
// Example: "x = 5 + 3;"
type AssignStmt struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Value  Expr
}

// InputStmt reads one decimal integer from standard input into a fresh location
// Example: "input x;"
type InputStmt struct {
	Pos    Position
	EndPos Position
	Name   Ident
}

// NumberLit is a 32-bit signed integer literal
// Example: "42"
type NumberLit struct {
	Pos    Position
	EndPos Position
	Value  int32
	Raw    string
}

// VarRef reads the current binding of a name
// Example: "x"
type VarRef struct {
	Pos    Position
	EndPos Position
	Name   Ident
}

// BinaryExpr is an arithmetic operation on two operands
// Example: "a / (b - 1)"
type BinaryExpr struct {
	Pos    Position
	EndPos Position
	Op     BinaryOp
	Left   Expr
	Right  Expr
}
