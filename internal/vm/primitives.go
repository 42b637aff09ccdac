package vm

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	llvm "github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/value"

	"minic/internal/stdlib"
)

// call dispatches a call to one of the built-in primitives.
func (m *Machine) call(f *frame, inst *llvm.InstCall) (int32, error) {
	callee, ok := inst.Callee.(*llvm.Func)
	if !ok {
		return 0, fmt.Errorf("%w: indirect call", ErrUnsupportedInstruction)
	}
	if len(inst.Args) == 0 {
		return 0, fmt.Errorf("%w: %s called without a format", ErrInvalidModule, callee.Name())
	}

	format, err := cString(inst.Args[0])
	if err != nil {
		return 0, err
	}

	def, ok := stdlib.Lookup(callee.Name())
	if !ok || !def.Matches(callee) {
		return 0, fmt.Errorf("%w: call to %s", ErrUnsupportedInstruction, callee.Name())
	}

	switch def.Name {
	case stdlib.Printf.Name:
		args := make([]int32, 0, len(inst.Args)-1)
		for _, arg := range inst.Args[1:] {
			v, err := f.eval(arg)
			if err != nil {
				return 0, err
			}
			args = append(args, v)
		}
		m.log.Debugf("printf(%q, %v)", format, args)
		return m.printf(format, args)

	case stdlib.Scanf.Name:
		slots := make([]*llvm.InstAlloca, 0, len(inst.Args)-1)
		for _, arg := range inst.Args[1:] {
			slot, err := f.slot(arg)
			if err != nil {
				return 0, err
			}
			slots = append(slots, slot)
		}
		m.log.Debugf("scanf(%q) into %d slots", format, len(slots))
		return m.scanf(f, format, slots)

	default:
		return 0, fmt.Errorf("%w: call to %s", ErrUnsupportedInstruction, callee.Name())
	}
}

// printf supports %d conversions, %% and literal text. It returns the number
// of bytes written.
func (m *Machine) printf(format string, args []int32) (int32, error) {
	var out strings.Builder

	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' {
			out.WriteByte(c)
			continue
		}

		i++
		if i >= len(format) {
			return 0, fmt.Errorf("%w: printf format ends with %%", ErrUnsupportedInstruction)
		}

		switch format[i] {
		case '%':
			out.WriteByte('%')
		case 'd':
			if len(args) == 0 {
				return 0, fmt.Errorf("%w: printf has more conversions than arguments", ErrInvalidModule)
			}
			out.WriteString(strconv.FormatInt(int64(args[0]), 10))
			args = args[1:]
		default:
			return 0, fmt.Errorf("%w: printf conversion %%%c", ErrUnsupportedInstruction, format[i])
		}
	}

	n, err := io.WriteString(m.stdout, out.String())
	if err != nil {
		return 0, fmt.Errorf("printf: %w", err)
	}
	return int32(n), nil
}

// scanf supports formats made of %d conversions separated by whitespace.
// Like C, it returns the number of conversions assigned, or -1 when input
// ends before the first one. Slots whose conversion fails keep their value.
func (m *Machine) scanf(f *frame, format string, slots []*llvm.InstAlloca) (int32, error) {
	conversions := strings.Fields(format)
	if len(conversions) != len(slots) {
		return 0, fmt.Errorf("%w: scanf format %q takes %d arguments, got %d", ErrInvalidModule, format, len(conversions), len(slots))
	}

	var assigned int32
	for i, conv := range conversions {
		if conv != "%d" {
			return 0, fmt.Errorf("%w: scanf conversion %q", ErrUnsupportedInstruction, conv)
		}

		var v int32
		if _, err := fmt.Fscan(m.stdin, &v); err != nil {
			if assigned == 0 && (errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)) {
				return -1, nil
			}
			return assigned, nil
		}
		f.slots[slots[i]] = v
		assigned++
	}

	return assigned, nil
}

// cString resolves a pointer to a constant string global and returns its
// text up to the terminating NUL.
func cString(v value.Value) (string, error) {
	var global *llvm.Global
	switch v := v.(type) {
	case *constant.ExprGetElementPtr:
		global, _ = v.Src.(*llvm.Global)
	case *llvm.Global:
		global = v
	}
	if global == nil {
		return "", fmt.Errorf("%w: format is not a constant string", ErrUnsupportedInstruction)
	}

	data, ok := global.Init.(*constant.CharArray)
	if !ok {
		return "", fmt.Errorf("%w: global %s is not a string", ErrInvalidModule, global.Name())
	}

	text := data.X
	if i := bytes.IndexByte(text, 0); i >= 0 {
		text = text[:i]
	}
	return string(text), nil
}
