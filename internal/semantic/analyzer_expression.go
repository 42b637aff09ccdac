package semantic

import (
	"minic/internal/ast"
	"minic/internal/errors"
)

func (a *Analyzer) analyzeExpression(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.VarRef:
		symbol := a.symbols.Lookup(e.Name.Value)
		if symbol == nil {
			a.addCompilerError(errors.UndefinedVariable(e.Name.Value, e.Name.Pos, a.symbols.Names()))
			return
		}
		symbol.Reads++
	case *ast.BinaryExpr:
		a.analyzeExpression(e.Left)
		a.analyzeExpression(e.Right)

		// Literal zero divisors always take the error path at run time
		if lit, ok := e.Right.(*ast.NumberLit); ok && e.Op == ast.Div && lit.Value == 0 {
			a.addCompilerError(errors.DivisionByConstantZero(lit.Pos))
		}
	}
}
