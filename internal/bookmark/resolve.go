package bookmark

// Position is a zero-based line/column location inside a document.
type Position struct {
	Line   int
	Column int
}

// Resolve clamps a stored entry against the live bounds of its document.
// The line is clamped to [0, lineCount-1] (an empty document resolves to
// line 0) and the column to [0, length of the resolved line]. The result
// is always recomputed fresh; stored entries are never mutated.
func Resolve(entry Entry, lineCount int, lineLen func(line int) int) Position {
	line := entry.Line
	if line < 0 {
		line = 0
	}
	if line >= lineCount {
		line = lineCount - 1
		if line < 0 {
			line = 0
		}
	}

	column := entry.Column
	if column < 0 {
		column = 0
	}
	if max := lineLen(line); column > max {
		column = max
	}

	return Position{Line: line, Column: column}
}
