package ast

type Node interface {
	NodePos() Position
	NodeEndPos() Position
	NodeType() NodeType
	String() string
}

func (p *Program) NodePos() Position    { return p.Pos }
func (p *Program) NodeEndPos() Position { return p.EndPos }
func (*Program) NodeType() NodeType     { return PROGRAM }

func (i *Ident) NodePos() Position    { return i.Pos }
func (i *Ident) NodeEndPos() Position { return i.EndPos }
func (*Ident) NodeType() NodeType     { return IDENT }

func (p *PrintStmt) NodePos() Position    { return p.Pos }
func (p *PrintStmt) NodeEndPos() Position { return p.EndPos }
func (*PrintStmt) NodeType() NodeType     { return PRINT_STMT }

func (a *AssignStmt) NodePos() Position    { return a.Pos }
func (a *AssignStmt) NodeEndPos() Position { return a.EndPos }
func (*AssignStmt) NodeType() NodeType     { return ASSIGN_STMT }

func (i *InputStmt) NodePos() Position    { return i.Pos }
func (i *InputStmt) NodeEndPos() Position { return i.EndPos }
func (*InputStmt) NodeType() NodeType     { return INPUT_STMT }

func (n *NumberLit) NodePos() Position    { return n.Pos }
func (n *NumberLit) NodeEndPos() Position { return n.EndPos }
func (*NumberLit) NodeType() NodeType     { return NUMBER_LIT }

func (v *VarRef) NodePos() Position    { return v.Pos }
func (v *VarRef) NodeEndPos() Position { return v.EndPos }
func (*VarRef) NodeType() NodeType     { return VAR_REF }

func (b *BinaryExpr) NodePos() Position    { return b.Pos }
func (b *BinaryExpr) NodeEndPos() Position { return b.EndPos }
func (*BinaryExpr) NodeType() NodeType     { return BINARY_EXPR }
