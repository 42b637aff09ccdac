package lsp

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"minic/internal/ast"
)

var log = commonlog.GetLogger("minic.lsp")

// Define the set of supported semantic token types (as required by the LSP spec)
var SemanticTokenTypes = []string{
	"variable",
	"keyword",
	"number",
	"operator",
}

// Define the set of supported semantic token modifiers (for extra tagging like declaration)
var SemanticTokenModifiers = []string{
	"declaration",
}

// document is the last known state of an open file
type document struct {
	content     string
	program     *ast.Program // nil while the text does not parse
	diagnostics []protocol.Diagnostic
}

// MinicHandler implements the LSP server handlers for minic
type MinicHandler struct {
	mu        sync.RWMutex
	documents map[protocol.DocumentUri]*document
}

// NewMinicHandler creates and returns a new MinicHandler instance
func NewMinicHandler() *MinicHandler {
	return &MinicHandler{
		documents: make(map[protocol.DocumentUri]*document),
	}
}

// Initialize responds to the LSP client's initialize request and advertises the server's capabilities
func (h *MinicHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Info("initialize")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			CompletionProvider: &protocol.CompletionOptions{
				ResolveProvider: ptrBool(false),
			},
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true),
			},
		},
	}, nil
}

// Initialized is called after the client receives the server's capabilities and completes initialization
func (h *MinicHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Info("initialized")
	return nil
}

// Shutdown handles the LSP shutdown request
func (h *MinicHandler) Shutdown(ctx *glsp.Context) error {
	log.Info("shutdown")
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

// SetTrace handles $/setTrace notifications
func (h *MinicHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

// TextDocumentDidOpen handles file open notifications from the editor
func (h *MinicHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	log.Infof("opened %s", params.TextDocument.URI)

	doc := h.update(params.TextDocument.URI, params.TextDocument.Text)
	sendDiagnosticNotification(ctx, params.TextDocument.URI, doc.diagnostics)
	return nil
}

// TextDocumentDidClose handles file close notifications from the editor
func (h *MinicHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	log.Infof("closed %s", params.TextDocument.URI)

	h.mu.Lock()
	delete(h.documents, params.TextDocument.URI)
	h.mu.Unlock()

	// Diagnostics of closed files are cleared
	sendDiagnosticNotification(ctx, params.TextDocument.URI, nil)
	return nil
}

// TextDocumentDidChange handles file change notifications from the editor.
// The server asks for full sync, so the last change carries the whole text.
func (h *MinicHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	log.Debugf("changed %s", params.TextDocument.URI)

	var text string
	found := false
	for _, change := range params.ContentChanges {
		switch c := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			text, found = c.Text, true
		case protocol.TextDocumentContentChangeEvent:
			if c.Range == nil {
				text, found = c.Text, true
			}
		}
	}
	if !found {
		return fmt.Errorf("no full-text change for %s", params.TextDocument.URI)
	}

	doc := h.update(params.TextDocument.URI, text)
	sendDiagnosticNotification(ctx, params.TextDocument.URI, doc.diagnostics)
	return nil
}

// TextDocumentCompletion offers the keywords and the variables the document binds
func (h *MinicHandler) TextDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	h.mu.RLock()
	doc := h.documents[params.TextDocument.URI]
	h.mu.RUnlock()

	var program *ast.Program
	if doc != nil {
		program = doc.program
	}

	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        completionItems(program),
	}, nil
}

// TextDocumentSemanticTokensFull handles semantic token requests for the entire document
func (h *MinicHandler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	log.Debugf("semantic tokens for %s", params.TextDocument.URI)

	doc, err := h.getOrLoad(ctx, params.TextDocument.URI)
	if err != nil {
		return nil, err
	}

	tokens := collectSemanticTokens(string(params.TextDocument.URI), doc.content, doc.program)

	var data []uint32
	var prevLine, prevStart uint32

	// Encode tokens into LSP wire format (using delta-line, delta-start compression)
	for _, token := range tokens {
		deltaLine := token.Line - prevLine
		var deltaStart uint32
		if deltaLine == 0 {
			deltaStart = token.StartChar - prevStart
		} else {
			deltaStart = token.StartChar
		}

		data = append(data, deltaLine, deltaStart, token.Length, uint32(token.TokenType), uint32(token.TokenModifiers))

		prevLine = token.Line
		prevStart = token.StartChar
	}

	return &protocol.SemanticTokens{
		Data: data,
	}, nil
}

// getOrLoad returns the open document, reading it from disk when the editor
// has not sent it yet.
func (h *MinicHandler) getOrLoad(ctx *glsp.Context, uri protocol.DocumentUri) (*document, error) {
	h.mu.RLock()
	doc, ok := h.documents[uri]
	h.mu.RUnlock()

	if ok {
		return doc, nil
	}

	path, err := uriToPath(uri)
	if err != nil {
		return nil, fmt.Errorf("failed to convert URI %s: %w", uri, err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	doc = h.update(uri, string(content))
	sendDiagnosticNotification(ctx, uri, doc.diagnostics)
	return doc, nil
}

func (h *MinicHandler) update(uri protocol.DocumentUri, content string) *document {
	path, err := uriToPath(uri)
	if err != nil {
		path = string(uri)
	}

	program, diagnostics := analyzeDocument(path, content)
	doc := &document{
		content:     content,
		program:     program,
		diagnostics: diagnostics,
	}

	h.mu.Lock()
	h.documents[uri] = doc
	h.mu.Unlock()

	return doc
}

// Convert URI to platform-local file path
func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}

	path := u.Path

	// On Windows, remove leading slash (e.g., /C:/...) to get C:/...
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}

	return filepath.FromSlash(path), nil
}

func sendDiagnosticNotification(ctx *glsp.Context, uri protocol.DocumentUri, diagnostics []protocol.Diagnostic) {
	if ctx == nil || ctx.Notify == nil {
		return
	}

	// An empty array clears previously published diagnostics
	if diagnostics == nil {
		diagnostics = []protocol.Diagnostic{}
	}

	log.Debugf("sending %d diagnostics for %s", len(diagnostics), uri)

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
