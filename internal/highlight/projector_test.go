package highlight_test

import (
	"reflect"
	"sort"
	"testing"

	"linemark/internal/bookmark"
	"linemark/internal/highlight"
)

type surfaceCall struct {
	line   int
	add    []string
	remove []string
}

// recordingSurface captures every Apply/Reset for assertions.
type recordingSurface struct {
	calls  []surfaceCall
	resets int
}

func (s *recordingSurface) Apply(line int, add, remove []string) {
	s.calls = append(s.calls, surfaceCall{line: line, add: add, remove: remove})
}

func (s *recordingSurface) Reset() {
	s.resets++
}

func (s *recordingSurface) callsForLine(line int) []surfaceCall {
	var out []surfaceCall
	for _, c := range s.calls {
		if c.line == line {
			out = append(out, c)
		}
	}
	return out
}

func tenLines(int) int { return 10 }

func entries(pairs ...bookmark.SlotEntry) []bookmark.SlotEntry { return pairs }

func TestInitialProjectionAddsFullClassSet(t *testing.T) {
	surface := &recordingSurface{}
	p := highlight.NewProjector(surface)

	p.Project("a.md", entries(
		bookmark.SlotEntry{Slot: "1", Entry: bookmark.Entry{File: "a.md", Line: 3}},
	), 10, tenLines)

	calls := surface.callsForLine(3)
	if len(calls) != 1 {
		t.Fatalf("expected 1 call for line 3, got %d", len(calls))
	}
	want := []string{"bookmarked", "slot-highlight-1"}
	got := append([]string(nil), calls[0].add...)
	sort.Strings(got)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected added classes %v, got %v", want, got)
	}
	if calls[0].remove != nil {
		t.Errorf("expected no removals on a fresh line, got %v", calls[0].remove)
	}
}

// TestMoveEmitsMinimalDelta moves a bookmark from line 3 to line 7: line 3
// must be fully cleared, line 7 fully added, and no other line touched.
func TestMoveEmitsMinimalDelta(t *testing.T) {
	surface := &recordingSurface{}
	p := highlight.NewProjector(surface)

	p.Project("a.md", entries(
		bookmark.SlotEntry{Slot: "1", Entry: bookmark.Entry{File: "a.md", Line: 3}},
		bookmark.SlotEntry{Slot: "2", Entry: bookmark.Entry{File: "a.md", Line: 5}},
	), 10, tenLines)
	surface.calls = nil

	p.Project("a.md", entries(
		bookmark.SlotEntry{Slot: "1", Entry: bookmark.Entry{File: "a.md", Line: 7}},
		bookmark.SlotEntry{Slot: "2", Entry: bookmark.Entry{File: "a.md", Line: 5}},
	), 10, tenLines)

	removed := surface.callsForLine(3)
	if len(removed) != 1 {
		t.Fatalf("expected 1 call clearing line 3, got %d", len(removed))
	}
	if len(removed[0].add) != 0 || len(removed[0].remove) != 2 {
		t.Errorf("expected full clear of line 3, got add=%v remove=%v",
			removed[0].add, removed[0].remove)
	}

	added := surface.callsForLine(7)
	if len(added) != 1 {
		t.Fatalf("expected 1 call adding line 7, got %d", len(added))
	}
	if len(added[0].add) != 2 || len(added[0].remove) != 0 {
		t.Errorf("expected full add on line 7, got add=%v remove=%v",
			added[0].add, added[0].remove)
	}

	if untouched := surface.callsForLine(5); len(untouched) != 0 {
		t.Errorf("expected zero calls for unchanged line 5, got %d", len(untouched))
	}
}

// TestSharedLineGetsClassLevelDelta binds a second slot to an already
// highlighted line and expects only the new slot class to be added.
func TestSharedLineGetsClassLevelDelta(t *testing.T) {
	surface := &recordingSurface{}
	p := highlight.NewProjector(surface)

	p.Project("a.md", entries(
		bookmark.SlotEntry{Slot: "1", Entry: bookmark.Entry{File: "a.md", Line: 4}},
	), 10, tenLines)
	surface.calls = nil

	p.Project("a.md", entries(
		bookmark.SlotEntry{Slot: "1", Entry: bookmark.Entry{File: "a.md", Line: 4}},
		bookmark.SlotEntry{Slot: "3", Entry: bookmark.Entry{File: "a.md", Line: 4}},
	), 10, tenLines)

	calls := surface.callsForLine(4)
	if len(calls) != 1 {
		t.Fatalf("expected 1 delta call for line 4, got %d", len(calls))
	}
	if !reflect.DeepEqual(calls[0].add, []string{"slot-highlight-3"}) {
		t.Errorf("expected only slot-highlight-3 added, got %v", calls[0].add)
	}
	if len(calls[0].remove) != 0 {
		t.Errorf("expected no removals, got %v", calls[0].remove)
	}
}

func TestIdenticalProjectionEmitsNothing(t *testing.T) {
	surface := &recordingSurface{}
	p := highlight.NewProjector(surface)

	es := entries(bookmark.SlotEntry{Slot: "1", Entry: bookmark.Entry{File: "a.md", Line: 2}})
	p.Project("a.md", es, 10, tenLines)
	surface.calls = nil

	p.Project("a.md", es, 10, tenLines)
	if len(surface.calls) != 0 {
		t.Errorf("expected no calls for identical projection, got %d", len(surface.calls))
	}
}

// TestDocumentSwitchResetsSurface verifies switching documents clears the
// previous document's highlights before projecting the new one.
func TestDocumentSwitchResetsSurface(t *testing.T) {
	surface := &recordingSurface{}
	p := highlight.NewProjector(surface)

	p.Project("a.md", entries(
		bookmark.SlotEntry{Slot: "1", Entry: bookmark.Entry{File: "a.md", Line: 3}},
	), 10, tenLines)

	resetsBefore := surface.resets
	surface.calls = nil

	p.Project("b.md", entries(
		bookmark.SlotEntry{Slot: "2", Entry: bookmark.Entry{File: "b.md", Line: 1}},
	), 10, tenLines)

	if surface.resets != resetsBefore+1 {
		t.Errorf("expected a surface reset on document switch")
	}
	if len(surface.callsForLine(1)) != 1 {
		t.Errorf("expected projection onto the new document")
	}
}

// TestResolvedLinesAreClamped stores a bookmark past the end of the
// document and expects the highlight on the last real line.
func TestResolvedLinesAreClamped(t *testing.T) {
	surface := &recordingSurface{}
	p := highlight.NewProjector(surface)

	p.Project("a.md", entries(
		bookmark.SlotEntry{Slot: "1", Entry: bookmark.Entry{File: "a.md", Line: 100}},
	), 10, tenLines)

	if len(surface.callsForLine(9)) != 1 {
		t.Errorf("expected highlight clamped to line 9")
	}
}

func TestClearDropsState(t *testing.T) {
	surface := &recordingSurface{}
	p := highlight.NewProjector(surface)

	p.Project("a.md", entries(
		bookmark.SlotEntry{Slot: "1", Entry: bookmark.Entry{File: "a.md", Line: 3}},
	), 10, tenLines)

	p.Clear()
	if surface.resets == 0 {
		t.Error("expected surface reset on Clear")
	}

	// Re-projecting the same document must start from scratch.
	surface.calls = nil
	p.Project("a.md", entries(
		bookmark.SlotEntry{Slot: "1", Entry: bookmark.Entry{File: "a.md", Line: 3}},
	), 10, tenLines)
	if len(surface.callsForLine(3)) != 1 {
		t.Error("expected full re-add after Clear")
	}
}
