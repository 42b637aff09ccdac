package ast

import (
	"fmt"
	"strings"
)

func (p *Program) String() string {
	var b strings.Builder
	for _, stmt := range p.Statements {
		b.WriteString(stmt.String())
		b.WriteString("\n")
	}
	return b.String()
}

func (i *Ident) String() string {
	return i.Value
}

func (p *PrintStmt) String() string {
	return fmt.Sprintf("print %s;", p.Value.String())
}

func (a *AssignStmt) String() string {
	return fmt.Sprintf("%s = %s;", a.Name.Value, a.Value.String())
}

func (i *InputStmt) String() string {
	return fmt.Sprintf("input %s;", i.Name.Value)
}

func (n *NumberLit) String() string {
	if n.Raw != "" {
		return n.Raw
	}
	return fmt.Sprintf("%d", n.Value)
}

func (v *VarRef) String() string {
	return v.Name.Value
}

// String prints the expression with the minimum parentheses needed to
// reparse it into the same tree.
func (b *BinaryExpr) String() string {
	left := b.Left.String()
	if needsParens(b.Left, b.Op, false) {
		left = "(" + left + ")"
	}

	right := b.Right.String()
	if needsParens(b.Right, b.Op, true) {
		right = "(" + right + ")"
	}

	return fmt.Sprintf("%s %s %s", left, b.Op, right)
}

func precedence(op BinaryOp) int {
	switch op {
	case Mul, Div:
		return 2
	default:
		return 1
	}
}

// Operators are left-associative, so an equal-precedence operand on the
// right side keeps its parentheses.
func needsParens(operand Expr, parent BinaryOp, right bool) bool {
	child, ok := operand.(*BinaryExpr)
	if !ok {
		return false
	}

	if precedence(child.Op) < precedence(parent) {
		return true
	}
	return right && precedence(child.Op) == precedence(parent)
}
