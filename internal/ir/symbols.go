package ir

import (
	"sort"

	llvm "github.com/llir/llvm/ir"
)

// SymbolTable maps variable names to the stack slot holding their current
// value. Names are case-sensitive and there is a single flat scope.
type SymbolTable struct {
	slots map[string]*llvm.InstAlloca
}

// NewSymbolTable creates an empty table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{slots: make(map[string]*llvm.InstAlloca)}
}

// Bind associates name with slot, replacing any previous binding.
func (s *SymbolTable) Bind(name string, slot *llvm.InstAlloca) {
	s.slots[name] = slot
}

// Lookup returns the slot currently bound to name.
func (s *SymbolTable) Lookup(name string) (*llvm.InstAlloca, bool) {
	slot, ok := s.slots[name]
	return slot, ok
}

// Names returns the bound names in sorted order.
func (s *SymbolTable) Names() []string {
	names := make([]string, 0, len(s.slots))
	for name := range s.slots {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of bound names.
func (s *SymbolTable) Len() int {
	return len(s.slots)
}
