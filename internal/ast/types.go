package ast

type NodeType int

// regenerate nodetype_string.go with `go generate ./internal/ast`
//
//go:generate stringer -type=NodeType
const (
	ILLEGAL NodeType = iota

	PROGRAM
	IDENT

	// Statements
	PRINT_STMT
	ASSIGN_STMT
	INPUT_STMT

	// Expressions
	NUMBER_LIT
	VAR_REF
	BINARY_EXPR
)
