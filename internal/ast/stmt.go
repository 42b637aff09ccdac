package ast

// Stmt is implemented by PrintStmt, AssignStmt and InputStmt only.
type Stmt interface {
	Node
	isStmt()
}

func (*PrintStmt) isStmt()  {}
func (*AssignStmt) isStmt() {}
func (*InputStmt) isStmt()  {}
