package highlight

// Surface is a line-addressable decoration target provided by the host.
// Apply adjusts the visual classes attached to one line; Reset drops every
// decoration the surface currently shows. Implementations are selected
// once when the host connects, not re-detected per call.
type Surface interface {
	Apply(line int, add []string, remove []string)
	Reset()
}

// Classes attached to a bookmarked line: the generic marker class plus one
// class per slot bound to the line.
const LineClass = "bookmarked"

func SlotClass(slot string) string {
	return "slot-highlight-" + slot
}
