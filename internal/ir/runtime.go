package ir

import (
	llvm "github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"

	"minic/internal/stdlib"
)

// Names of the external I/O primitives and the constant strings passed to them.
const (
	PrintfName = "printf"
	ScanfName  = "scanf"

	PrintFormatName     = "fmt_str"
	ScanFormatName      = "scanf_str"
	DivisionMessageName = "error_msg"

	DivisionMessage = stdlib.DivisionMessage
)

// runtime holds the declarations every generated module links against.
type runtime struct {
	module *llvm.Module

	printf *llvm.Func
	scanf  *llvm.Func

	// Global constants cache, keyed by global name
	globalConstants map[string]*llvm.Global
}

func newRuntime(module *llvm.Module) *runtime {
	rt := &runtime{
		module:          module,
		globalConstants: make(map[string]*llvm.Global),
	}

	rt.printf = stdlib.Printf.Declare(module)
	rt.scanf = stdlib.Scanf.Declare(module)

	rt.getOrCreateGlobalConstant(PrintFormatName, stdlib.PrintFormat)
	rt.getOrCreateGlobalConstant(ScanFormatName, stdlib.ScanFormat)

	return rt
}

// getOrCreateGlobalConstant returns the private NUL-terminated string global
// called name, creating it on first use.
func (rt *runtime) getOrCreateGlobalConstant(name, text string) *llvm.Global {
	if g, ok := rt.globalConstants[name]; ok {
		return g
	}

	g := rt.module.NewGlobalDef(name, constant.NewCharArrayFromString(text+"\x00"))
	g.Linkage = enum.LinkagePrivate
	g.Immutable = true
	rt.globalConstants[name] = g
	return g
}

// stringPointer returns an i8* to the first byte of a string global.
func stringPointer(g *llvm.Global) value.Value {
	zero := constant.NewInt(types.I64, 0)
	return constant.NewGetElementPtr(g.ContentType, g, zero, zero)
}
