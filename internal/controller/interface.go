package controller

import (
	"linemark/internal/bookmark"
	"linemark/internal/document"
)

// Workspace is the narrow slice of the host's document surface the
// controller needs: locating documents, reading live content, tracking the
// visible document, and moving the cursor.
type Workspace interface {
	// Exists reports whether id still resolves to a document.
	Exists(id string) bool

	// ActiveDocument returns the id of the currently visible document.
	ActiveDocument() (string, bool)

	// ReadDocument returns the live content of a document, from the open
	// buffer if there is one or from disk otherwise.
	ReadDocument(id string) (document.Document, error)

	// ShowDocument opens or activates the document, places the cursor at
	// pos and makes it visible.
	ShowDocument(id string, pos bookmark.Position) error
}

// Notifier surfaces user-facing messages through the host.
type Notifier interface {
	// Notice shows a transient, non-blocking message.
	Notice(message string)

	// Confirm shows a blocking confirm dialog and reports whether the
	// user accepted.
	Confirm(prompt string) bool
}

// Observers is notified after every state change so registered views can
// re-render. Satisfied by view.Hub.
type Observers interface {
	NotifyAll()
}
