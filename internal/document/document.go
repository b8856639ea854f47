package document

import (
	"strings"
	"sync"
)

// TextDocument implements Document over an in-memory content string.
type TextDocument struct {
	content string
	lines   []string
	mu      sync.RWMutex
}

// NewTextDocument creates a document from its initial content.
func NewTextDocument(content string) *TextDocument {
	return &TextDocument{
		content: content,
		lines:   strings.Split(content, "\n"),
	}
}

func (d *TextDocument) Content() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.content
}

func (d *TextDocument) LineCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.lines)
}

// LineLength returns the length of the given line in bytes, or 0 if the
// line is out of bounds.
func (d *TextDocument) LineLength(line int) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if line < 0 || line >= len(d.lines) {
		return 0
	}
	return len(d.lines[line])
}

// Line returns the text of the given line without its trailing newline.
func (d *TextDocument) Line(line int) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if line < 0 || line >= len(d.lines) {
		return "", false
	}
	return d.lines[line], true
}

// ApplyChanges applies content changes in order. Ranged changes splice the
// content at byte offsets computed from their positions; a change without
// a range replaces the whole content.
func (d *TextDocument) ApplyChanges(changes []Change) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, change := range changes {
		if change.Range == nil {
			d.content = change.NewText
			continue
		}

		startOffset := d.positionToOffset(change.Range.Start)
		endOffset := d.positionToOffset(change.Range.End)
		if endOffset < startOffset {
			endOffset = startOffset
		}

		newContent := make([]byte, 0, len(d.content)-(endOffset-startOffset)+len(change.NewText))
		newContent = append(newContent, d.content[:startOffset]...)
		newContent = append(newContent, change.NewText...)
		newContent = append(newContent, d.content[endOffset:]...)
		d.content = string(newContent)
	}

	d.lines = strings.Split(d.content, "\n")
}

func (d *TextDocument) positionToOffset(pos Position) int {
	offset := 0
	currentLine := 0

	for offset < len(d.content) && currentLine < pos.Line {
		if d.content[offset] == '\n' {
			currentLine++
		}
		offset++
	}

	offset += pos.Character
	if offset > len(d.content) {
		offset = len(d.content)
	}

	return offset
}
