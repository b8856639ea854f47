package controller

import (
	"fmt"

	"linemark/internal/bookmark"
	"linemark/internal/highlight"

	"github.com/tliron/commonlog"
)

// Controller orchestrates bookmark commands and host lifecycle events. It
// holds no state of its own beyond references to its collaborators; the
// store is the single source of truth, and every change flows out through
// highlight projection and observer notification. The host dispatches
// events strictly sequentially, so no operation interleaves mid-mutation.
type Controller struct {
	store     *bookmark.Store
	projector *highlight.Projector
	observers Observers
	workspace Workspace
	notifier  Notifier
	logger    commonlog.Logger
}

func New(
	store *bookmark.Store,
	projector *highlight.Projector,
	observers Observers,
	workspace Workspace,
	notifier Notifier,
) *Controller {
	return &Controller{
		store:     store,
		projector: projector,
		observers: observers,
		workspace: workspace,
		notifier:  notifier,
		logger:    commonlog.GetLogger("linemark.controller"),
	}
}

// SetBookmark binds slot to the given position. An unbound slot is bound,
// a slot bound elsewhere is overwritten silently, and a slot bound to the
// exact same position is treated as a toggle: the user confirms and the
// slot is unbound. Setting and toggling share the same gesture, which is
// why only the destructive branch asks for confirmation.
func (c *Controller) SetBookmark(slot bookmark.Slot, docID string, line, column int) {
	entry := bookmark.Entry{File: docID, Line: line, Column: column}

	if prev := c.store.Get(slot); prev != nil && prev.SameLocation(entry) {
		if !c.notifier.Confirm(fmt.Sprintf("Remove bookmark %s?", slot)) {
			return
		}
		c.store.Remove(slot)
		c.notifier.Notice(fmt.Sprintf("Bookmark %s removed", slot))
		c.refresh()
		return
	}

	c.store.Set(slot, entry)
	c.logger.Infof("bookmark %s set to %s", slot, entry)
	c.refresh()
}

// RemoveBookmark unbinds slot after confirmation. An unbound slot is a
// no-op. The default keymap removes through the set-bookmark toggle, so
// no command is registered for this; it backs hosts that expose an
// explicit remove binding.
func (c *Controller) RemoveBookmark(slot bookmark.Slot) {
	if c.store.Get(slot) == nil {
		return
	}
	if !c.notifier.Confirm(fmt.Sprintf("Remove bookmark %s?", slot)) {
		return
	}
	c.store.Remove(slot)
	c.notifier.Notice(fmt.Sprintf("Bookmark %s removed", slot))
	c.refresh()
}

// JumpToBookmark opens the bookmarked document and moves the cursor to the
// resolved position. A dangling entry is reported but never deleted here;
// only the document-delete event prunes.
func (c *Controller) JumpToBookmark(slot bookmark.Slot) {
	entry := c.store.Get(slot)
	if entry == nil {
		c.notifier.Notice(fmt.Sprintf("Bookmark %s is not set", slot))
		return
	}

	if !c.workspace.Exists(entry.File) {
		c.notifier.Notice(fmt.Sprintf("Bookmark %s: document missing: %s", slot, entry.File))
		return
	}

	doc, err := c.workspace.ReadDocument(entry.File)
	if err != nil {
		c.logger.Errorf("failed to read %s: %v", entry.File, err)
		c.notifier.Notice(fmt.Sprintf("Bookmark %s: document missing: %s", slot, entry.File))
		return
	}

	pos := bookmark.Resolve(*entry, doc.LineCount(), doc.LineLength)
	if err := c.workspace.ShowDocument(entry.File, pos); err != nil {
		c.logger.Errorf("failed to show %s: %v", entry.File, err)
		c.notifier.Notice(fmt.Sprintf("Could not open %s", entry.File))
		return
	}

	c.refresh()
}

// DocumentRenamed rewrites bookmarks pointing at oldID to newID.
func (c *Controller) DocumentRenamed(oldID, newID string) {
	if !c.store.RenameDocument(oldID, newID) {
		return
	}
	c.logger.Infof("bookmarks moved from %s to %s", oldID, newID)
	c.refresh()
}

// DocumentDeleted prunes every bookmark pointing at the deleted document.
func (c *Controller) DocumentDeleted(id string) {
	if !c.store.RemoveByDocument(id) {
		return
	}
	c.logger.Infof("bookmarks for deleted document %s removed", id)
	c.refresh()
}

// ActiveDocumentChanged re-projects highlights onto the newly visible
// document, or clears them when none is visible.
func (c *Controller) ActiveDocumentChanged() {
	c.project()
}

func (c *Controller) refresh() {
	c.project()
	c.observers.NotifyAll()
}

func (c *Controller) project() {
	id, ok := c.workspace.ActiveDocument()
	if !ok {
		c.projector.Clear()
		return
	}

	doc, err := c.workspace.ReadDocument(id)
	if err != nil {
		c.logger.Errorf("failed to read active document %s: %v", id, err)
		c.projector.Clear()
		return
	}

	c.projector.Project(id, c.store.ForDocument(id), doc.LineCount(), doc.LineLength)
}
