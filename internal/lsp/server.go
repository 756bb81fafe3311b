// Package lsp implements the SuperCollider language server: static
// completion/hover tables plus workspace commands that dispatch code to the
// sclang interpreter supervisor.
package lsp

import (
	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"github.com/rogervila/supercollider-vscode/internal/interp"
)

const serverName = "sclangd"

// Server holds the language server state: open documents and the interpreter
// supervisor every command routes through.
type Server struct {
	version string
	log     commonlog.Logger
	docs    *DocumentStore
	interp  *interp.Supervisor
	handler *protocol.Handler
}

// NewServer wires the protocol handler around the given supervisor and
// returns a glsp server ready to run over stdio.
func NewServer(sup *interp.Supervisor, version string) *server.Server {
	s := &Server{
		version: version,
		log:     commonlog.GetLogger(serverName),
		docs:    NewDocumentStore(),
		interp:  sup,
	}

	s.handler = &protocol.Handler{
		Initialize:              s.initialize,
		Initialized:             s.initialized,
		Shutdown:                s.shutdown,
		SetTrace:                s.setTrace,
		TextDocumentDidOpen:     s.textDocumentDidOpen,
		TextDocumentDidChange:   s.textDocumentDidChange,
		TextDocumentDidClose:    s.textDocumentDidClose,
		TextDocumentCompletion:  s.textDocumentCompletion,
		TextDocumentHover:       s.textDocumentHover,
		WorkspaceExecuteCommand: s.workspaceExecuteCommand,
	}

	return server.NewServer(s.handler, serverName, false)
}
