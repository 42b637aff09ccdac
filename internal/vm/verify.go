package vm

import (
	"fmt"

	llvm "github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/types"
)

// Verify checks the structural properties Run relies on: the entry function
// exists, takes no parameters and returns i32, every block is terminated,
// branches stay inside the function, every callee is a function of the
// module, and every stack slot is an i32.
func Verify(module *llvm.Module, entry string) error {
	if module == nil {
		return fmt.Errorf("%w: nil module", ErrInvalidModule)
	}

	fn, err := findFunc(module, entry)
	if err != nil {
		return err
	}
	if len(fn.Blocks) == 0 {
		return fmt.Errorf("%w: entry function %q has no body", ErrInvalidModule, entry)
	}
	if len(fn.Params) != 0 {
		return fmt.Errorf("%w: entry function %q takes %d parameters", ErrInvalidModule, entry, len(fn.Params))
	}
	if !fn.Sig.RetType.Equal(types.I32) {
		return fmt.Errorf("%w: entry function %q returns %s, want i32", ErrInvalidModule, entry, fn.Sig.RetType)
	}

	declared := make(map[*llvm.Func]bool, len(module.Funcs))
	for _, f := range module.Funcs {
		declared[f] = true
	}

	owned := make(map[*llvm.Block]bool, len(fn.Blocks))
	for _, block := range fn.Blocks {
		owned[block] = true
	}

	for _, block := range fn.Blocks {
		if block.Term == nil {
			return fmt.Errorf("%w: block %q has no terminator", ErrInvalidModule, block.Name())
		}

		for _, inst := range block.Insts {
			switch inst := inst.(type) {
			case *llvm.InstAlloca:
				if !inst.ElemType.Equal(types.I32) {
					return fmt.Errorf("%w: block %q allocates %s, want i32", ErrInvalidModule, block.Name(), inst.ElemType)
				}
			case *llvm.InstCall:
				callee, ok := inst.Callee.(*llvm.Func)
				if !ok || !declared[callee] {
					return fmt.Errorf("%w: block %q calls an undeclared function", ErrInvalidModule, block.Name())
				}
			}
		}

		for _, target := range successors(block.Term) {
			succ, ok := asBlock(target)
			if !ok || !owned[succ] {
				return fmt.Errorf("%w: block %q branches outside %q", ErrInvalidModule, block.Name(), entry)
			}
		}
	}

	return nil
}

func findFunc(module *llvm.Module, name string) (*llvm.Func, error) {
	for _, f := range module.Funcs {
		if f.Name() == name {
			return f, nil
		}
	}
	return nil, fmt.Errorf("%w: no function named %q", ErrInvalidModule, name)
}

func successors(term llvm.Terminator) []any {
	switch term := term.(type) {
	case *llvm.TermBr:
		return []any{term.Target}
	case *llvm.TermCondBr:
		return []any{term.TargetTrue, term.TargetFalse}
	default:
		return nil
	}
}

// asBlock accepts branch targets whether they are typed as blocks or as
// plain values.
func asBlock(target any) (*llvm.Block, bool) {
	block, ok := target.(*llvm.Block)
	return block, ok && block != nil
}
