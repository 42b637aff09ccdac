// Package stdlib describes the C library functions generated programs link
// against. IR generation declares them and the VM implements them.
package stdlib

import (
	llvm "github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/types"
)

// Constant strings passed to the primitives. Globals holding them are
// NUL-terminated.
const (
	PrintFormat     = "%d\n"
	ScanFormat      = "%d"
	DivisionMessage = "Error: Division by zero\n"
)

// FunctionDefinition defines the signature of an external function
type FunctionDefinition struct {
	Name       string                // C symbol name
	Parameters []ParameterDefinition // Fixed parameters
	ReturnType types.Type            // Return type
	Variadic   bool                  // Whether extra arguments follow the fixed ones
}

// ParameterDefinition defines a function parameter
type ParameterDefinition struct {
	Name string
	Type types.Type
}

var (
	// Printf writes formatted output. Used for print statements and for the
	// division error message.
	Printf = FunctionDefinition{
		Name:       "printf",
		Parameters: []ParameterDefinition{{Name: "format", Type: types.I8Ptr}},
		ReturnType: types.I32,
		Variadic:   true,
	}

	// Scanf reads formatted input. Used for input statements.
	Scanf = FunctionDefinition{
		Name:       "scanf",
		Parameters: []ParameterDefinition{{Name: "format", Type: types.I8Ptr}},
		ReturnType: types.I32,
		Variadic:   true,
	}
)

// GetStandardFunctions returns every external function by name
func GetStandardFunctions() map[string]FunctionDefinition {
	return map[string]FunctionDefinition{
		Printf.Name: Printf,
		Scanf.Name:  Scanf,
	}
}

// Lookup returns the definition of the external function called name
func Lookup(name string) (FunctionDefinition, bool) {
	def, ok := GetStandardFunctions()[name]
	return def, ok
}

// Declare adds a body-less declaration of the function to module
func (f FunctionDefinition) Declare(module *llvm.Module) *llvm.Func {
	params := make([]*llvm.Param, len(f.Parameters))
	for i, p := range f.Parameters {
		params[i] = llvm.NewParam(p.Name, p.Type)
	}

	fn := module.NewFunc(f.Name, f.ReturnType, params...)
	fn.Sig.Variadic = f.Variadic
	return fn
}

// Matches reports whether fn has the signature of the definition
func (f FunctionDefinition) Matches(fn *llvm.Func) bool {
	if fn.Name() != f.Name || fn.Sig.Variadic != f.Variadic || len(fn.Params) != len(f.Parameters) {
		return false
	}
	if !fn.Sig.RetType.Equal(f.ReturnType) {
		return false
	}
	for i, p := range f.Parameters {
		if !fn.Params[i].Typ.Equal(p.Type) {
			return false
		}
	}
	return true
}
