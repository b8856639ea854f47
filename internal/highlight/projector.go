package highlight

import (
	"sort"

	"linemark/internal/bookmark"

	"github.com/tliron/commonlog"
)

// Projector derives per-line decorations for the active document from the
// bookmark table and reconciles them against what is already applied,
// emitting a minimal add/remove delta. At most one document carries
// highlights at a time.
type Projector struct {
	surface Surface
	doc     string
	applied map[int][]string
	logger  commonlog.Logger
}

func NewProjector(surface Surface) *Projector {
	return &Projector{
		surface: surface,
		applied: make(map[int][]string),
		logger:  commonlog.GetLogger("linemark.highlight"),
	}
}

// Project recomputes highlights for the given document. entries must be
// the bookmark bindings for that document; lineCount and lineLen describe
// its live bounds. Switching documents fully clears the previous
// document's highlights first.
func (p *Projector) Project(docID string, entries []bookmark.SlotEntry, lineCount int, lineLen func(int) int) {
	if docID != p.doc {
		p.reset()
		p.doc = docID
	}

	want := make(map[int][]string)
	for _, se := range entries {
		pos := bookmark.Resolve(se.Entry, lineCount, lineLen)
		want[pos.Line] = append(want[pos.Line], SlotClass(string(se.Slot)))
	}
	for line, slots := range want {
		classes := append([]string{LineClass}, slots...)
		sort.Strings(classes)
		want[line] = classes
	}

	// Lines no longer highlighted are fully cleared.
	for line, classes := range p.applied {
		if _, keep := want[line]; !keep {
			p.surface.Apply(line, nil, classes)
			delete(p.applied, line)
		}
	}

	for line, classes := range want {
		prev, existed := p.applied[line]
		if !existed {
			p.surface.Apply(line, classes, nil)
			p.applied[line] = classes
			continue
		}

		add := diff(classes, prev)
		remove := diff(prev, classes)
		if len(add) > 0 || len(remove) > 0 {
			p.surface.Apply(line, add, remove)
			p.applied[line] = classes
		}
	}
}

// Clear drops all highlight state, for when no document is active or the
// active document became unavailable.
func (p *Projector) Clear() {
	p.reset()
	p.doc = ""
}

func (p *Projector) reset() {
	if len(p.applied) > 0 {
		p.logger.Debugf("clearing %d highlighted lines on %s", len(p.applied), p.doc)
	}
	p.surface.Reset()
	p.applied = make(map[int][]string)
}

// diff returns the elements of a that are not in b. Inputs are small
// sorted class lists.
func diff(a, b []string) []string {
	var out []string
	for _, s := range a {
		found := false
		for _, t := range b {
			if s == t {
				found = true
				break
			}
		}
		if !found {
			out = append(out, s)
		}
	}
	return out
}
