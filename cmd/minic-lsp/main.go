// SPDX-License-Identifier: Apache-2.0
package main

import (
	"os"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"minic/internal/lsp"
)

const lsName = "minic" // Name identifier for the language server

var (
	version = "0.1.0"        // Server version
	handler protocol.Handler // Protocol handler instance (wired up below)
)

func main() {
	// Configure debug logging (1 = debug level, nil = stderr)
	commonlog.Configure(1, nil)
	log := commonlog.GetLogger("minic.lsp.server")

	minicHandler := lsp.NewMinicHandler()

	handler = protocol.Handler{
		Initialize:                     minicHandler.Initialize,
		Initialized:                    minicHandler.Initialized,
		Shutdown:                       minicHandler.Shutdown,
		SetTrace:                       minicHandler.SetTrace,
		TextDocumentDidOpen:            minicHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           minicHandler.TextDocumentDidClose,
		TextDocumentDidChange:          minicHandler.TextDocumentDidChange,
		TextDocumentCompletion:         minicHandler.TextDocumentCompletion,
		TextDocumentSemanticTokensFull: minicHandler.TextDocumentSemanticTokensFull,
	}

	// The last argument disables glsp's internal debug logs
	s := server.NewServer(&handler, lsName, false)

	log.Infof("starting %s language server %s", lsName, version)

	// Editors talk to the server over standard input/output
	if err := s.RunStdio(); err != nil {
		log.Errorf("language server stopped: %s", err)
		os.Exit(1)
	}
}
