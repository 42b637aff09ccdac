package parser

import (
	"strconv"

	"minic/grammar"
	"minic/internal/ast"
	"minic/internal/errors"
)

func buildProgram(tree *grammar.Program) (*ast.Program, error) {
	program := &ast.Program{
		Pos:        makePos(tree.Pos),
		EndPos:     makePos(tree.EndPos),
		Statements: make([]ast.Stmt, 0, len(tree.Statements)),
	}

	for _, stmt := range tree.Statements {
		node, err := buildStatement(stmt)
		if err != nil {
			return nil, err
		}
		program.Statements = append(program.Statements, node)
	}

	return program, nil
}

func buildStatement(stmt *grammar.Statement) (ast.Stmt, error) {
	switch {
	case stmt.Print != nil:
		value, err := buildExpr(stmt.Print.Expr)
		if err != nil {
			return nil, err
		}
		return &ast.PrintStmt{
			Pos:    makePos(stmt.Print.Pos),
			EndPos: makePos(stmt.Print.EndPos),
			Value:  value,
		}, nil

	case stmt.Input != nil:
		return &ast.InputStmt{
			Pos:    makePos(stmt.Input.Pos),
			EndPos: makePos(stmt.Input.EndPos),
			Name:   buildIdent(stmt.Input.Name),
		}, nil

	case stmt.Assign != nil:
		value, err := buildExpr(stmt.Assign.Value)
		if err != nil {
			return nil, err
		}
		return &ast.AssignStmt{
			Pos:    makePos(stmt.Assign.Pos),
			EndPos: makePos(stmt.Assign.EndPos),
			Name:   buildIdent(stmt.Assign.Target),
			Value:  value,
		}, nil
	}

	return nil, errors.Internalf("empty statement at %s", stmt.Pos)
}

func buildIdent(ident grammar.PosIdent) ast.Ident {
	return ast.Ident{
		Pos:    makePos(ident.Pos),
		EndPos: makePos(ident.EndPos),
		Value:  ident.Value,
	}
}

// buildExpr folds "a - b - c" into ((a - b) - c).
func buildExpr(expr *grammar.Expr) (ast.Expr, error) {
	left, err := buildTerm(expr.Left)
	if err != nil {
		return nil, err
	}

	for _, op := range expr.Ops {
		right, err := buildTerm(op.Right)
		if err != nil {
			return nil, err
		}
		left, err = makeBinary(op.Operator, left, right, makePos(expr.Pos), makePos(op.EndPos))
		if err != nil {
			return nil, err
		}
	}

	return left, nil
}

func buildTerm(term *grammar.Term) (ast.Expr, error) {
	left, err := buildFactor(term.Left)
	if err != nil {
		return nil, err
	}

	for _, op := range term.Ops {
		right, err := buildFactor(op.Right)
		if err != nil {
			return nil, err
		}
		left, err = makeBinary(op.Operator, left, right, makePos(term.Pos), makePos(op.EndPos))
		if err != nil {
			return nil, err
		}
	}

	return left, nil
}

func makeBinary(operator string, left, right ast.Expr, pos, end ast.Position) (ast.Expr, error) {
	op, ok := ast.ParseBinaryOp(operator)
	if !ok {
		return nil, errors.Internalf("unknown operator %q at %d:%d", operator, pos.Line, pos.Column)
	}

	return &ast.BinaryExpr{
		Pos:    pos,
		EndPos: end,
		Op:     op,
		Left:   left,
		Right:  right,
	}, nil
}

func buildFactor(factor *grammar.Factor) (ast.Expr, error) {
	switch {
	case factor.Number != nil:
		return buildNumber(*factor.Number, factor)

	case factor.Ident != nil:
		return &ast.VarRef{
			Pos:    makePos(factor.Pos),
			EndPos: makePos(factor.EndPos),
			Name:   buildIdent(*factor.Ident),
		}, nil

	case factor.Parens != nil:
		return buildExpr(factor.Parens)
	}

	return nil, errors.Internalf("empty factor at %s", factor.Pos)
}

func buildNumber(raw string, factor *grammar.Factor) (ast.Expr, error) {
	pos := makePos(factor.Pos)

	value, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return nil, &errors.SyntaxError{
			Position: pos,
			Message:  "integer literal " + raw + " does not fit in 32 bits",
			Code:     errors.ErrorLiteralOutOfRange,
			Length:   len(raw),
			Literal:  raw,
		}
	}

	return &ast.NumberLit{
		Pos:    pos,
		EndPos: makePos(factor.EndPos),
		Value:  int32(value),
		Raw:    raw,
	}, nil
}
