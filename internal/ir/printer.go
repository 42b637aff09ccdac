package ir

import (
	"fmt"
	"strings"

	llvm "github.com/llir/llvm/ir"
)

// Print returns the LLVM assembly of module, preceded by a comment naming
// the source it was compiled from.
func Print(module *llvm.Module) string {
	var out strings.Builder

	source := module.SourceFilename
	if source == "" {
		source = "<input>"
	}
	fmt.Fprintf(&out, "; ModuleID = '%s'\n", source)
	out.WriteString(module.String())

	return out.String()
}
