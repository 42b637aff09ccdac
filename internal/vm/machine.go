package vm

import (
	"context"
	"fmt"

	llvm "github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	"github.com/llir/llvm/ir/value"
)

// frame is the state of one activation of the entry function.
type frame struct {
	values map[value.Value]int32
	slots  map[*llvm.InstAlloca]int32
}

// Execution is the outcome of running an entry function to completion.
type Execution struct {
	Status int32

	// Slots holds the final value of every stack slot the function allocated.
	Slots map[*llvm.InstAlloca]int32
}

// Run verifies module and executes its entry function, returning the status
// the function returns. The context is checked before every block.
func (m *Machine) Run(ctx context.Context, module *llvm.Module, entry string) (int32, error) {
	exec, err := m.Exec(ctx, module, entry)
	if err != nil {
		return 0, err
	}
	return exec.Status, nil
}

// Exec is Run, but also reports the memory the function left behind.
func (m *Machine) Exec(ctx context.Context, module *llvm.Module, entry string) (*Execution, error) {
	if err := Verify(module, entry); err != nil {
		return nil, err
	}

	fn, err := findFunc(module, entry)
	if err != nil {
		return nil, err
	}

	f := &frame{
		values: make(map[value.Value]int32),
		slots:  make(map[*llvm.InstAlloca]int32),
	}

	block := fn.Blocks[0]
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		m.log.Debugf("enter block %s", block.Name())

		for _, inst := range block.Insts {
			if err := m.exec(f, inst); err != nil {
				return nil, fmt.Errorf("block %s: %w", block.Name(), err)
			}
		}

		next, status, done, err := m.terminate(f, block.Term)
		if err != nil {
			return nil, fmt.Errorf("block %s: %w", block.Name(), err)
		}
		if done {
			m.log.Debugf("%s returned %d", entry, status)
			return &Execution{Status: status, Slots: f.slots}, nil
		}
		block = next
	}
}

func (m *Machine) exec(f *frame, inst llvm.Instruction) error {
	switch inst := inst.(type) {
	case *llvm.InstAlloca:
		f.slots[inst] = 0
		return nil

	case *llvm.InstStore:
		val, err := f.eval(inst.Src)
		if err != nil {
			return err
		}
		slot, err := f.slot(inst.Dst)
		if err != nil {
			return err
		}
		f.slots[slot] = val
		return nil

	case *llvm.InstLoad:
		slot, err := f.slot(inst.Src)
		if err != nil {
			return err
		}
		f.values[inst] = f.slots[slot]
		return nil

	case *llvm.InstAdd:
		return f.binary(inst, inst.X, inst.Y, func(x, y int32) (int32, error) { return x + y, nil })
	case *llvm.InstSub:
		return f.binary(inst, inst.X, inst.Y, func(x, y int32) (int32, error) { return x - y, nil })
	case *llvm.InstMul:
		return f.binary(inst, inst.X, inst.Y, func(x, y int32) (int32, error) { return x * y, nil })
	case *llvm.InstSDiv:
		return f.binary(inst, inst.X, inst.Y, func(x, y int32) (int32, error) {
			if y == 0 {
				return 0, ErrDivisionByZero
			}
			return x / y, nil
		})

	case *llvm.InstICmp:
		return f.binary(inst, inst.X, inst.Y, func(x, y int32) (int32, error) {
			result, err := compare(inst.Pred, x, y)
			if err != nil {
				return 0, err
			}
			if result {
				return 1, nil
			}
			return 0, nil
		})

	case *llvm.InstCall:
		result, err := m.call(f, inst)
		if err != nil {
			return err
		}
		f.values[inst] = result
		return nil

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedInstruction, inst)
	}
}

// terminate evaluates a block terminator. It returns either the successor
// block or, with done set, the function's return status.
func (m *Machine) terminate(f *frame, term llvm.Terminator) (*llvm.Block, int32, bool, error) {
	switch term := term.(type) {
	case *llvm.TermRet:
		if term.X == nil {
			return nil, 0, false, fmt.Errorf("%w: ret void from i32 function", ErrUnsupportedInstruction)
		}
		status, err := f.eval(term.X)
		return nil, status, err == nil, err

	case *llvm.TermBr:
		next, ok := asBlock(term.Target)
		if !ok {
			return nil, 0, false, fmt.Errorf("%w: br to non-block target", ErrInvalidModule)
		}
		return next, 0, false, nil

	case *llvm.TermCondBr:
		cond, err := f.eval(term.Cond)
		if err != nil {
			return nil, 0, false, err
		}
		target := any(term.TargetFalse)
		if cond != 0 {
			target = term.TargetTrue
		}
		next, ok := asBlock(target)
		if !ok {
			return nil, 0, false, fmt.Errorf("%w: br to non-block target", ErrInvalidModule)
		}
		return next, 0, false, nil

	default:
		return nil, 0, false, fmt.Errorf("%w: terminator %T", ErrUnsupportedInstruction, term)
	}
}

func (f *frame) binary(inst value.Value, x, y value.Value, op func(x, y int32) (int32, error)) error {
	left, err := f.eval(x)
	if err != nil {
		return err
	}
	right, err := f.eval(y)
	if err != nil {
		return err
	}
	result, err := op(left, right)
	if err != nil {
		return err
	}
	f.values[inst] = result
	return nil
}

func (f *frame) eval(v value.Value) (int32, error) {
	switch v := v.(type) {
	case *constant.Int:
		return int32(v.X.Int64()), nil
	case nil:
		return 0, fmt.Errorf("%w: missing operand", ErrInvalidModule)
	}

	result, ok := f.values[v]
	if !ok {
		return 0, fmt.Errorf("%w: operand %s used before it is defined", ErrInvalidModule, v.Ident())
	}
	return result, nil
}

func (f *frame) slot(v value.Value) (*llvm.InstAlloca, error) {
	slot, ok := v.(*llvm.InstAlloca)
	if !ok {
		return nil, fmt.Errorf("%w: memory access through %s", ErrUnsupportedInstruction, v.Ident())
	}
	if _, ok := f.slots[slot]; !ok {
		return nil, fmt.Errorf("%w: slot %s used before allocation", ErrInvalidModule, slot.Ident())
	}
	return slot, nil
}

func compare(pred enum.IPred, x, y int32) (bool, error) {
	switch pred {
	case enum.IPredEQ:
		return x == y, nil
	case enum.IPredNE:
		return x != y, nil
	case enum.IPredSGT:
		return x > y, nil
	case enum.IPredSGE:
		return x >= y, nil
	case enum.IPredSLT:
		return x < y, nil
	case enum.IPredSLE:
		return x <= y, nil
	default:
		return false, fmt.Errorf("%w: icmp %s", ErrUnsupportedInstruction, pred)
	}
}
