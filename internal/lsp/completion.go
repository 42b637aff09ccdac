package lsp

import (
	"sort"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"minic/internal/ast"
)

var keywords = []struct {
	name   string
	detail string
}{
	{"print", "print <expr>; writes the value and a newline"},
	{"input", "input <name>; reads an integer from standard input"},
}

// completionItems lists the keywords followed by the names program binds, in
// alphabetical order.
func completionItems(program *ast.Program) []protocol.CompletionItem {
	items := make([]protocol.CompletionItem, 0, len(keywords))

	keywordKind := protocol.CompletionItemKindKeyword
	for _, kw := range keywords {
		items = append(items, protocol.CompletionItem{
			Label:  kw.name,
			Kind:   &keywordKind,
			Detail: ptrString(kw.detail),
		})
	}

	if program == nil {
		return items
	}

	seen := make(map[string]bool)
	var names []string
	for _, stmt := range program.Statements {
		var name string
		switch s := stmt.(type) {
		case *ast.AssignStmt:
			name = s.Name.Value
		case *ast.InputStmt:
			name = s.Name.Value
		default:
			continue
		}
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	sort.Strings(names)

	variableKind := protocol.CompletionItemKindVariable
	for _, name := range names {
		items = append(items, protocol.CompletionItem{
			Label:  name,
			Kind:   &variableKind,
			Detail: ptrString("i32"),
		})
	}

	return items
}
