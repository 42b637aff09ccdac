package ir

// This file provides the main entry point for the IR system.
// Programs are lowered to LLVM IR with one function that owns every
// variable slot and returns an i32 status.

import (
	llvm "github.com/llir/llvm/ir"

	"minic/internal/ast"
)

// DefaultEntryName is the name of the generated entry function.
const DefaultEntryName = "main"

type options struct {
	moduleName string
	entryName  string
}

// Option configures a Builder.
type Option func(*options)

// WithModuleName records the source filename on the generated module.
func WithModuleName(name string) Option {
	return func(o *options) {
		o.moduleName = name
	}
}

// WithEntryName overrides the name of the entry function.
func WithEntryName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.entryName = name
		}
	}
}

// Build is the main entry point for converting an AST to IR. On failure no
// module is returned.
func Build(program *ast.Program, opts ...Option) (*llvm.Module, error) {
	return NewBuilder(opts...).Build(program)
}
