package lsp

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"linemark/internal/bookmark"
	"linemark/internal/document"
	"linemark/internal/view"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// Host adapts the LSP transport to the narrow capability interfaces the
// core consumes: document lookup and content, cursor movement, notices and
// confirm dialogs, and the push channels for the list panel and ribbon.
// Documents are identified by their URI throughout.
type Host struct {
	manager document.Manager
	active  string
	ctx     *glsp.Context
	mu      sync.RWMutex
}

func NewHost(manager document.Manager) *Host {
	return &Host{manager: manager}
}

// bind captures the context of the current request so notifications and
// client calls issued by the core (possibly from a render goroutine) go
// out over the live connection.
func (h *Host) bind(ctx *glsp.Context) {
	h.mu.Lock()
	h.ctx = ctx
	h.mu.Unlock()
}

func (h *Host) context() *glsp.Context {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.ctx
}

func (h *Host) setActive(uri string) {
	h.mu.Lock()
	h.active = uri
	h.mu.Unlock()
}

func (h *Host) Exists(id string) bool {
	if _, open := h.manager.Get(id); open {
		return true
	}
	_, err := os.Stat(uriToPath(id))
	return err == nil
}

func (h *Host) ActiveDocument() (string, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.active, h.active != ""
}

// ReadDocument returns the open buffer for id, or its on-disk content for
// documents the host has not opened.
func (h *Host) ReadDocument(id string) (document.Document, error) {
	if doc, open := h.manager.Get(id); open {
		return doc, nil
	}

	content, err := os.ReadFile(uriToPath(id))
	if err != nil {
		return nil, fmt.Errorf("failed to read document %s: %w", id, err)
	}
	return document.NewTextDocument(string(content)), nil
}

// ShowDocument asks the client to open the document, focus it and place
// the cursor at pos.
func (h *Host) ShowDocument(id string, pos bookmark.Position) error {
	ctx := h.context()
	if ctx == nil {
		return fmt.Errorf("no client connection")
	}

	takeFocus := true
	cursor := protocol.Position{
		Line:      uint32(pos.Line),
		Character: uint32(pos.Column),
	}
	params := protocol.ShowDocumentParams{
		URI:       protocol.URI(id),
		TakeFocus: &takeFocus,
		Selection: &protocol.Range{Start: cursor, End: cursor},
	}

	var result protocol.ShowDocumentResult
	ctx.Call("window/showDocument", params, &result)
	if !result.Success {
		return fmt.Errorf("client failed to show document %s", id)
	}
	return nil
}

// Notice shows a transient message in the client.
func (h *Host) Notice(message string) {
	ctx := h.context()
	if ctx == nil {
		return
	}
	ctx.Notify("window/showMessage", protocol.ShowMessageParams{
		Type:    protocol.MessageTypeInfo,
		Message: message,
	})
}

// Confirm shows a blocking OK/Cancel dialog. A dismissed dialog counts as
// declined.
func (h *Host) Confirm(prompt string) bool {
	ctx := h.context()
	if ctx == nil {
		return false
	}

	params := protocol.ShowMessageRequestParams{
		Type:    protocol.MessageTypeWarning,
		Message: prompt,
		Actions: []protocol.MessageActionItem{
			{Title: "OK"},
			{Title: "Cancel"},
		},
	}

	var picked *protocol.MessageActionItem
	ctx.Call("window/showMessageRequest", params, &picked)
	return picked != nil && picked.Title == "OK"
}

// PublishBookmarkList pushes the rendered list panel content.
func (h *Host) PublishBookmarkList(items []view.ListItem) error {
	ctx := h.context()
	if ctx == nil {
		return fmt.Errorf("no client connection")
	}
	ctx.Notify("linemark/bookmarkList", bookmarkListParams{Bookmarks: items})
	return nil
}

// PublishRibbon pushes the bound-slot set for ribbon indicators.
func (h *Host) PublishRibbon(slots []string) error {
	ctx := h.context()
	if ctx == nil {
		return fmt.Errorf("no client connection")
	}
	ctx.Notify("linemark/ribbon", ribbonParams{Slots: slots})
	return nil
}

// RevealBookmarkList asks the client to reveal the list panel.
func (h *Host) RevealBookmarkList() {
	ctx := h.context()
	if ctx == nil {
		return
	}
	ctx.Notify("linemark/showBookmarkList", struct{}{})
}

type bookmarkListParams struct {
	Bookmarks []view.ListItem `json:"bookmarks"`
}

type ribbonParams struct {
	Slots []string `json:"slots"`
}

func uriToPath(uri string) string {
	return strings.TrimPrefix(uri, "file://")
}
