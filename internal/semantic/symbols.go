package semantic

import (
	"sort"

	"minic/internal/ast"
)

type SymbolKind int

const (
	SymbolAssigned SymbolKind = iota // bound by an assignment
	SymbolInput                      // bound by an input statement
)

// Symbol is one binding of a name. Re-binding a name creates a new Symbol.
type Symbol struct {
	Name     string
	Kind     SymbolKind
	Node     ast.Stmt
	Position ast.Position
	Reads    int
}

type SymbolTable struct {
	symbols map[string]*Symbol
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		symbols: make(map[string]*Symbol),
	}
}

// Define binds name and returns the binding it replaced, if any.
func (st *SymbolTable) Define(name string, kind SymbolKind, node ast.Stmt, pos ast.Position) (*Symbol, *Symbol) {
	previous := st.symbols[name]
	symbol := &Symbol{
		Name:     name,
		Kind:     kind,
		Node:     node,
		Position: pos,
	}
	st.symbols[name] = symbol
	return symbol, previous
}

func (st *SymbolTable) Lookup(name string) *Symbol {
	return st.symbols[name]
}

// Names returns the bound names in sorted order.
func (st *SymbolTable) Names() []string {
	names := make([]string, 0, len(st.symbols))
	for name := range st.symbols {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Symbols returns the live bindings ordered by position.
func (st *SymbolTable) Symbols() []*Symbol {
	symbols := make([]*Symbol, 0, len(st.symbols))
	for _, symbol := range st.symbols {
		symbols = append(symbols, symbol)
	}
	sort.Slice(symbols, func(i, j int) bool {
		return symbols[i].Position.Offset < symbols[j].Position.Offset
	})
	return symbols
}
