package document

// Position is a zero-based line/character position in a document.
type Position struct {
	Line      int
	Character int
}

// Range spans from Start (inclusive) to End (exclusive).
type Range struct {
	Start Position
	End   Position
}

// Change is a content change to apply to a document. A nil Range replaces
// the whole content.
type Change struct {
	Range   *Range
	NewText string
}

// Document is an open document whose live line bounds drive bookmark
// resolution, highlighting, and previews.
type Document interface {
	Content() string
	LineCount() int
	LineLength(line int) int
	Line(line int) (string, bool)
	ApplyChanges(changes []Change)
}

// Manager tracks the set of open documents.
type Manager interface {
	Open(id string, content string) Document
	Get(id string) (Document, bool)
	Close(id string)
	CloseAll()
}
