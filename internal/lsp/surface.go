package lsp

import (
	"sort"
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// The highlight surface implementation is picked once, when the client
// connects: clients that understand the linemark decoration notifications
// get line-level class deltas, everything else gets the diagnostics
// fallback. Neither is re-detected per call.

// NotificationSurface pushes minimal per-line class deltas over custom
// linemark notifications. The client applies them directly to its line
// rendering. It remembers the URI its decorations were applied under:
// by the time the projector resets for a document switch the active
// document has already moved on, and the clear must still target the
// document that carries the decorations.
type NotificationSurface struct {
	host *Host
	uri  string
}

func NewNotificationSurface(host *Host) *NotificationSurface {
	return &NotificationSurface{host: host}
}

type decorationDelta struct {
	URI    string   `json:"uri"`
	Line   int      `json:"line"`
	Add    []string `json:"add,omitempty"`
	Remove []string `json:"remove,omitempty"`
}

type clearDecorationsParams struct {
	URI string `json:"uri"`
}

func (s *NotificationSurface) Apply(line int, add, remove []string) {
	ctx := s.host.context()
	if ctx == nil {
		return
	}
	if s.uri == "" {
		s.uri, _ = s.host.ActiveDocument()
		if s.uri == "" {
			return
		}
	}
	ctx.Notify("linemark/decorations", decorationDelta{
		URI:    s.uri,
		Line:   line,
		Add:    add,
		Remove: remove,
	})
}

func (s *NotificationSurface) Reset() {
	// Clear the document that carries the decorations, then follow the
	// active document.
	if ctx := s.host.context(); ctx != nil && s.uri != "" {
		ctx.Notify("linemark/clearDecorations", clearDecorationsParams{URI: s.uri})
	}
	s.uri, _ = s.host.ActiveDocument()
}

// DiagnosticSurface is the fallback for hosts without the decoration
// channel: bookmarked lines are republished as information diagnostics.
// It keeps its own line set because diagnostics can only be replaced
// wholesale, not patched.
type DiagnosticSurface struct {
	host  *Host
	uri   string
	lines map[int][]string
}

func NewDiagnosticSurface(host *Host) *DiagnosticSurface {
	return &DiagnosticSurface{host: host, lines: make(map[int][]string)}
}

func (s *DiagnosticSurface) Apply(line int, add, remove []string) {
	classes := s.lines[line]
	for _, c := range remove {
		classes = deleteClass(classes, c)
	}
	classes = append(classes, add...)

	if len(classes) == 0 {
		delete(s.lines, line)
	} else {
		sort.Strings(classes)
		s.lines[line] = classes
	}

	s.publish()
}

func (s *DiagnosticSurface) Reset() {
	// Clear diagnostics on the document that carried them, then follow
	// the active document.
	s.lines = make(map[int][]string)
	s.publish()
	s.uri, _ = s.host.ActiveDocument()
}

func (s *DiagnosticSurface) publish() {
	ctx := s.host.context()
	if ctx == nil {
		return
	}
	if s.uri == "" {
		s.uri, _ = s.host.ActiveDocument()
		if s.uri == "" {
			return
		}
	}

	severity := protocol.DiagnosticSeverityInformation
	source := "linemark"
	diagnostics := []protocol.Diagnostic{}
	for line, classes := range s.lines {
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{Line: uint32(line), Character: 0},
				End:   protocol.Position{Line: uint32(line), Character: 0},
			},
			Severity: &severity,
			Source:   &source,
			Message:  "Bookmark " + strings.Join(classes, " "),
		})
	}

	ctx.Notify("textDocument/publishDiagnostics", protocol.PublishDiagnosticsParams{
		URI:         protocol.DocumentUri(s.uri),
		Diagnostics: diagnostics,
	})
}

func deleteClass(classes []string, class string) []string {
	out := classes[:0]
	for _, c := range classes {
		if c != class {
			out = append(out, c)
		}
	}
	return out
}
