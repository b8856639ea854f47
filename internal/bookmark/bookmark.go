package bookmark

import "fmt"

// Slot identifies one of the nine numbered bookmark slots, "1" through "9".
type Slot string

// Slots lists all valid slots in ascending order.
var Slots = []Slot{"1", "2", "3", "4", "5", "6", "7", "8", "9"}

// Valid reports whether s is one of the nine slot identifiers.
func (s Slot) Valid() bool {
	return len(s) == 1 && s[0] >= '1' && s[0] <= '9'
}

// Entry is a saved position inside a document. Line and Column are stored
// exactly as authored; clamping against the live document happens at
// resolution time and never mutates the stored values.
type Entry struct {
	File   string `json:"file"`
	Line   int    `json:"line"`
	Column int    `json:"ch"`
}

// SameLocation reports whether two entries point at the identical position.
func (e Entry) SameLocation(other Entry) bool {
	return e.File == other.File && e.Line == other.Line && e.Column == other.Column
}

func (e Entry) String() string {
	return fmt.Sprintf("%s:%d:%d", e.File, e.Line, e.Column)
}

// SlotEntry pairs a slot with its bound entry for ordered iteration.
type SlotEntry struct {
	Slot  Slot
	Entry Entry
}
