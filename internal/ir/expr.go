package ir

import (
	"fmt"

	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"

	"minic/internal/ast"
	"minic/internal/errors"
)

// buildExpression lowers an expression to an i32 value, emitting
// instructions into the current block.
func (b *Builder) buildExpression(expr ast.Expr) (value.Value, error) {
	switch e := expr.(type) {
	case *ast.NumberLit:
		return constant.NewInt(types.I32, int64(e.Value)), nil
	case *ast.VarRef:
		return b.buildVarRef(e)
	case *ast.BinaryExpr:
		return b.buildBinaryExpr(e)
	default:
		return nil, errors.Internalf("unknown expression type %T", expr)
	}
}

func (b *Builder) buildVarRef(ref *ast.VarRef) (value.Value, error) {
	slot, ok := b.symbols.Lookup(ref.Name.Value)
	if !ok {
		return nil, &errors.UndefinedVariableError{
			Name:     ref.Name.Value,
			Position: ref.Name.Pos,
			Bound:    b.symbols.Names(),
		}
	}

	block, err := b.insertionBlock()
	if err != nil {
		return nil, err
	}
	return block.NewLoad(types.I32, slot), nil
}

func (b *Builder) buildBinaryExpr(expr *ast.BinaryExpr) (value.Value, error) {
	// Left operand first so its side effects precede the right's
	left, err := b.buildExpression(expr.Left)
	if err != nil {
		return nil, err
	}
	right, err := b.buildExpression(expr.Right)
	if err != nil {
		return nil, err
	}

	if expr.Op == ast.Div {
		return b.buildDivision(left, right)
	}

	block, err := b.insertionBlock()
	if err != nil {
		return nil, err
	}

	switch expr.Op {
	case ast.Add:
		return block.NewAdd(left, right), nil
	case ast.Sub:
		return block.NewSub(left, right), nil
	case ast.Mul:
		return block.NewMul(left, right), nil
	default:
		return nil, errors.Internalf("unknown binary operator %v", expr.Op)
	}
}

// buildDivision closes the current block with a runtime zero check on
// divisor. The taken branch reports the error and returns -1 from the entry
// function; the other computes the signed quotient and becomes the current
// block.
func (b *Builder) buildDivision(dividend, divisor value.Value) (value.Value, error) {
	check, err := b.insertionBlock()
	if err != nil {
		return nil, err
	}

	b.blockCounter++
	errorBlock := b.createBlock(fmt.Sprintf("div_by_zero_%d", b.blockCounter))
	okBlock := b.createBlock(fmt.Sprintf("div_ok_%d", b.blockCounter))

	isZero := check.NewICmp(enum.IPredEQ, divisor, constant.NewInt(types.I32, 0))
	check.NewCondBr(isZero, errorBlock, okBlock)

	message := b.runtime.getOrCreateGlobalConstant(DivisionMessageName, DivisionMessage)
	errorBlock.NewCall(b.runtime.printf, stringPointer(message))
	errorBlock.NewRet(constant.NewInt(types.I32, -1))

	b.currentBlock = okBlock
	return okBlock.NewSDiv(dividend, divisor), nil
}
