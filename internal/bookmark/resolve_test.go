package bookmark_test

import (
	"linemark/internal/bookmark"
	"testing"
)

func fixedLineLen(n int) func(int) int {
	return func(int) int { return n }
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		entry     bookmark.Entry
		lineCount int
		lineLen   func(int) int
		want      bookmark.Position
	}{
		{
			name:      "line beyond end clamps to last line",
			entry:     bookmark.Entry{Line: 100, Column: 0},
			lineCount: 10,
			lineLen:   fixedLineLen(80),
			want:      bookmark.Position{Line: 9, Column: 0},
		},
		{
			name:      "column beyond line length clamps to length",
			entry:     bookmark.Entry{Line: 2, Column: 50},
			lineCount: 10,
			lineLen:   fixedLineLen(5),
			want:      bookmark.Position{Line: 2, Column: 5},
		},
		{
			name:      "empty document resolves to origin line",
			entry:     bookmark.Entry{Line: 4, Column: 7},
			lineCount: 0,
			lineLen:   fixedLineLen(0),
			want:      bookmark.Position{Line: 0, Column: 0},
		},
		{
			name:      "in-bounds position unchanged",
			entry:     bookmark.Entry{Line: 3, Column: 2},
			lineCount: 10,
			lineLen:   fixedLineLen(10),
			want:      bookmark.Position{Line: 3, Column: 2},
		},
		{
			name:      "negative values clamp to zero",
			entry:     bookmark.Entry{Line: -1, Column: -5},
			lineCount: 10,
			lineLen:   fixedLineLen(10),
			want:      bookmark.Position{Line: 0, Column: 0},
		},
		{
			name:      "column clamps against the resolved line",
			entry:     bookmark.Entry{Line: 99, Column: 30},
			lineCount: 3,
			lineLen: func(line int) int {
				if line == 2 {
					return 4
				}
				return 100
			},
			want: bookmark.Position{Line: 2, Column: 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := bookmark.Resolve(tt.entry, tt.lineCount, tt.lineLen)
			if got != tt.want {
				t.Errorf("Resolve() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestResolveDoesNotMutateEntry verifies resolution never changes the
// stored values.
func TestResolveDoesNotMutateEntry(t *testing.T) {
	entry := bookmark.Entry{File: "a.md", Line: 100, Column: 100}
	bookmark.Resolve(entry, 5, fixedLineLen(3))
	if entry.Line != 100 || entry.Column != 100 {
		t.Errorf("entry mutated by Resolve: %v", entry)
	}
}
