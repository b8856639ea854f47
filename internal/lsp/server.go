package lsp

import (
	"linemark/internal/bookmark"
	"linemark/internal/controller"
	"linemark/internal/document"
	"linemark/internal/highlight"
	"linemark/internal/view"

	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"
)

const lsName = "linemark"

var version = "0.1.0"

// Server wires the bookmark core to an LSP client: commands arrive over
// workspace/executeCommand, document lifecycle over textDocument and
// workspace file events, and views push back over linemark notifications.
type Server struct {
	handler    *protocol.Handler
	store      *bookmark.Store
	controller *controller.Controller
	hub        *view.Hub
	host       *Host
	manager    document.Manager
	surface    *mountSurface
	listView   *view.ListView
	ribbonView *view.RibbonView
}

// mountSurface delegates to the highlight surface implementation selected
// when the client connects.
type mountSurface struct {
	impl highlight.Surface
}

func (m *mountSurface) Apply(line int, add, remove []string) {
	m.impl.Apply(line, add, remove)
}

func (m *mountSurface) Reset() {
	m.impl.Reset()
}

// NewServer builds the LSP server around a loaded bookmark store.
func NewServer(store *bookmark.Store) (*server.Server, error) {
	manager := document.NewManager()
	host := NewHost(manager)
	surface := &mountSurface{impl: NewNotificationSurface(host)}
	hub := view.NewHub()

	ls := &Server{
		store:      store,
		controller: controller.New(store, highlight.NewProjector(surface), hub, host, host),
		hub:        hub,
		host:       host,
		manager:    manager,
		surface:    surface,
		listView:   view.NewListView(store, host, host),
		ribbonView: view.NewRibbonView(store, host),
	}

	ls.handler = &protocol.Handler{
		Initialize:              ls.initialize,
		Initialized:             ls.initialized,
		Shutdown:                ls.shutdown,
		SetTrace:                ls.setTrace,
		TextDocumentDidOpen:     ls.textDocumentDidOpen,
		TextDocumentDidChange:   ls.textDocumentDidChange,
		TextDocumentDidClose:    ls.textDocumentDidClose,
		WorkspaceExecuteCommand: ls.workspaceExecuteCommand,
		WorkspaceDidRenameFiles: ls.workspaceDidRenameFiles,
		WorkspaceDidDeleteFiles: ls.workspaceDidDeleteFiles,
	}

	return server.NewServer(ls.handler, lsName, false), nil
}
