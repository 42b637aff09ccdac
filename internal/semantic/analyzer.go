package semantic

import (
	"sort"

	"github.com/tliron/commonlog"

	"minic/internal/ast"
	"minic/internal/errors"
)

var log = commonlog.GetLogger("minic.semantic")

// Analyzer checks bindings in program order. Unlike IR generation, which
// stops at the first undefined name, it collects every diagnostic so tools
// can report them together.
type Analyzer struct {
	program *ast.Program
	errors  []errors.CompilerError
	symbols *SymbolTable
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{
		errors:  make([]errors.CompilerError, 0),
		symbols: NewSymbolTable(),
	}
}

// Analyze returns all errors and warnings for program, ordered by position.
func (a *Analyzer) Analyze(program *ast.Program) []errors.CompilerError {
	a.program = program
	a.errors = make([]errors.CompilerError, 0)
	a.symbols = NewSymbolTable()

	if program == nil {
		return a.errors
	}

	for _, stmt := range program.Statements {
		a.analyzeStatement(stmt)
	}

	// Bindings still live at the end of the program
	for _, symbol := range a.symbols.Symbols() {
		a.checkUnused(symbol)
	}

	sort.SliceStable(a.errors, func(i, j int) bool {
		pi, pj := a.errors[i].Position, a.errors[j].Position
		if pi.Line != pj.Line {
			return pi.Line < pj.Line
		}
		return pi.Column < pj.Column
	})

	log.Debugf("analyzed %d statements: %d diagnostics", len(program.Statements), len(a.errors))
	return a.errors
}

// GetErrors returns the diagnostics of the last analysis
func (a *Analyzer) GetErrors() []errors.CompilerError {
	return a.errors
}

// HasErrors reports whether the last analysis found anything other than warnings.
func (a *Analyzer) HasErrors() bool {
	for _, err := range a.errors {
		if err.Level == errors.Error {
			return true
		}
	}
	return false
}

// Symbols exposes the bindings live at the end of the last analysis.
func (a *Analyzer) Symbols() *SymbolTable {
	return a.symbols
}

func (a *Analyzer) addCompilerError(err errors.CompilerError) {
	a.errors = append(a.errors, err)
}

func (a *Analyzer) analyzeStatement(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.AssignStmt:
		// The right-hand side sees the previous binding
		a.analyzeExpression(s.Value)
		a.define(s.Name, SymbolAssigned, s)
	case *ast.InputStmt:
		a.define(s.Name, SymbolInput, s)
	case *ast.PrintStmt:
		a.analyzeExpression(s.Value)
	}
}

func (a *Analyzer) define(name ast.Ident, kind SymbolKind, stmt ast.Stmt) {
	_, previous := a.symbols.Define(name.Value, kind, stmt, name.Pos)
	if previous != nil {
		a.checkUnused(previous)
	}
}

func (a *Analyzer) checkUnused(symbol *Symbol) {
	if symbol.Reads == 0 {
		a.addCompilerError(errors.UnusedVariable(symbol.Name, symbol.Position))
	}
}
