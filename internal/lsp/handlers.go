package lsp

import (
	"linemark/internal/document"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func (ls *Server) initialize(
	context *glsp.Context,
	params *protocol.InitializeParams,
) (any, error) {
	ls.host.bind(context)

	// Clients that don't understand the linemark decoration channel opt
	// into the diagnostics fallback via initializationOptions.
	if opts, ok := params.InitializationOptions.(map[string]any); ok {
		if decorations, ok := opts["decorations"].(bool); ok && !decorations {
			ls.surface.impl = NewDiagnosticSurface(ls.host)
		}
	}

	capabilities := ls.handler.CreateServerCapabilities()
	syncKind := protocol.TextDocumentSyncKindIncremental
	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: &protocol.True,
		Change:    &syncKind,
	}
	capabilities.ExecuteCommandProvider = &protocol.ExecuteCommandOptions{
		Commands: commandNames(),
	}

	anyDocument := protocol.FileOperationRegistrationOptions{
		Filters: []protocol.FileOperationFilter{
			{Pattern: protocol.FileOperationPattern{Glob: "**/*"}},
		},
	}
	capabilities.Workspace = &protocol.ServerCapabilitiesWorkspace{
		FileOperations: &protocol.ServerCapabilitiesWorkspaceFileOperations{
			DidRename: &anyDocument,
			DidDelete: &anyDocument,
		},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &version,
		},
	}, nil
}

func (ls *Server) initialized(
	context *glsp.Context,
	params *protocol.InitializedParams,
) error {
	ls.host.bind(context)

	// First render of each view happens on registration.
	ls.hub.Register(ls.listView)
	ls.hub.Register(ls.ribbonView)
	return nil
}

func (ls *Server) shutdown(context *glsp.Context) error {
	ls.hub.Close()
	ls.manager.CloseAll()
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (ls *Server) setTrace(context *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *Server) textDocumentDidOpen(
	context *glsp.Context,
	params *protocol.DidOpenTextDocumentParams,
) error {
	ls.host.bind(context)

	uri := string(params.TextDocument.URI)
	ls.manager.Open(uri, params.TextDocument.Text)
	ls.host.setActive(uri)
	ls.controller.ActiveDocumentChanged()
	return nil
}

func (ls *Server) textDocumentDidChange(
	context *glsp.Context,
	params *protocol.DidChangeTextDocumentParams,
) error {
	ls.host.bind(context)

	uri := string(params.TextDocument.URI)
	doc, open := ls.manager.Get(uri)
	if !open {
		return nil
	}

	var changes []document.Change
	for _, change := range params.ContentChanges {
		switch contentChange := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			changes = append(changes, document.Change{NewText: contentChange.Text})

		case protocol.TextDocumentContentChangeEvent:
			c := document.Change{NewText: contentChange.Text}
			if contentChange.Range != nil {
				c.Range = &document.Range{
					Start: document.Position{
						Line:      int(contentChange.Range.Start.Line),
						Character: int(contentChange.Range.Start.Character),
					},
					End: document.Position{
						Line:      int(contentChange.Range.End.Line),
						Character: int(contentChange.Range.End.Character),
					},
				}
			}
			changes = append(changes, c)
		}
	}
	doc.ApplyChanges(changes)

	// Line bounds may have moved under the highlights.
	if active, _ := ls.host.ActiveDocument(); active == uri {
		ls.controller.ActiveDocumentChanged()
	}
	return nil
}

func (ls *Server) textDocumentDidClose(
	context *glsp.Context,
	params *protocol.DidCloseTextDocumentParams,
) error {
	ls.host.bind(context)

	uri := string(params.TextDocument.URI)
	ls.manager.Close(uri)
	if active, _ := ls.host.ActiveDocument(); active == uri {
		ls.host.setActive("")
		ls.controller.ActiveDocumentChanged()
	}
	return nil
}

func (ls *Server) workspaceDidRenameFiles(
	context *glsp.Context,
	params *protocol.RenameFilesParams,
) error {
	ls.host.bind(context)

	for _, file := range params.Files {
		// The client reopens the renamed document itself; the open
		// buffer under the old id is stale either way.
		ls.manager.Close(file.OldURI)
		ls.controller.DocumentRenamed(file.OldURI, file.NewURI)
	}
	return nil
}

func (ls *Server) workspaceDidDeleteFiles(
	context *glsp.Context,
	params *protocol.DeleteFilesParams,
) error {
	ls.host.bind(context)

	for _, file := range params.Files {
		ls.manager.Close(file.URI)
		ls.controller.DocumentDeleted(file.URI)
	}
	return nil
}
