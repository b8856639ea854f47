package lsp

import (
	"fmt"
	"strings"

	"linemark/internal/bookmark"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

const (
	setCommandPrefix  = "set-bookmark-"
	jumpCommandPrefix = "jump-to-bookmark-"
	showListCommand   = "show-bookmark-list"
)

// commandNames lists the full command surface: one set and one jump
// command per slot, plus the list panel command.
func commandNames() []string {
	names := make([]string, 0, 2*len(bookmark.Slots)+1)
	for _, slot := range bookmark.Slots {
		names = append(names, setCommandPrefix+string(slot))
	}
	for _, slot := range bookmark.Slots {
		names = append(names, jumpCommandPrefix+string(slot))
	}
	return append(names, showListCommand)
}

func (ls *Server) workspaceExecuteCommand(
	context *glsp.Context,
	params *protocol.ExecuteCommandParams,
) (any, error) {
	ls.host.bind(context)

	switch {
	case params.Command == showListCommand:
		ls.host.RevealBookmarkList()
		ls.hub.NotifyAll()
		return nil, nil

	case strings.HasPrefix(params.Command, setCommandPrefix):
		slot := bookmark.Slot(strings.TrimPrefix(params.Command, setCommandPrefix))
		if !slot.Valid() {
			return nil, fmt.Errorf("unknown command: %s", params.Command)
		}
		uri, pos, err := cursorArguments(params.Arguments)
		if err != nil {
			// Position-dependent command without cursor context: report
			// and abort without touching state.
			ls.host.Notice("Set bookmark: no active document and cursor")
			return nil, nil
		}
		ls.controller.SetBookmark(slot, uri, pos.Line, pos.Column)
		return nil, nil

	case strings.HasPrefix(params.Command, jumpCommandPrefix):
		slot := bookmark.Slot(strings.TrimPrefix(params.Command, jumpCommandPrefix))
		if !slot.Valid() {
			return nil, fmt.Errorf("unknown command: %s", params.Command)
		}
		ls.controller.JumpToBookmark(slot)
		return nil, nil
	}

	return nil, fmt.Errorf("unknown command: %s", params.Command)
}

// cursorArguments decodes the [uri, line, character] arguments the client
// attaches to set commands from its active editor state.
func cursorArguments(args []any) (string, bookmark.Position, error) {
	if len(args) < 3 {
		return "", bookmark.Position{}, fmt.Errorf("expected 3 arguments, got %d", len(args))
	}

	uri, ok := args[0].(string)
	if !ok || uri == "" {
		return "", bookmark.Position{}, fmt.Errorf("invalid document argument: %v", args[0])
	}
	line, ok := args[1].(float64)
	if !ok || line < 0 {
		return "", bookmark.Position{}, fmt.Errorf("invalid line argument: %v", args[1])
	}
	column, ok := args[2].(float64)
	if !ok || column < 0 {
		return "", bookmark.Position{}, fmt.Errorf("invalid character argument: %v", args[2])
	}

	return uri, bookmark.Position{Line: int(line), Column: int(column)}, nil
}
