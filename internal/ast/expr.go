package ast

// Expr is implemented by NumberLit, VarRef and BinaryExpr only.
type Expr interface {
	Node
	isExpr()
}

func (*NumberLit) isExpr() {}

func (*VarRef) isExpr() {}

func (*BinaryExpr) isExpr() {}

type BinaryOp int

const (
	Add BinaryOp = iota
	Sub
	Mul
	Div
)

func (op BinaryOp) String() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	default:
		return "?"
	}
}

// ParseBinaryOp maps an operator token to its BinaryOp.
func ParseBinaryOp(token string) (BinaryOp, bool) {
	switch token {
	case "+":
		return Add, true
	case "-":
		return Sub, true
	case "*":
		return Mul, true
	case "/":
		return Div, true
	default:
		return 0, false
	}
}
