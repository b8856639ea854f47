package view

import (
	"strings"
	"unicode/utf8"

	"linemark/internal/bookmark"
	"linemark/internal/document"
)

const previewLimit = 120

// DocumentReader provides live document content for previews and position
// resolution. Reads may fail for documents that no longer exist.
type DocumentReader interface {
	ReadDocument(id string) (document.Document, error)
}

// ListItem is one row of the bookmark list panel.
type ListItem struct {
	Slot    string `json:"slot"`
	File    string `json:"file"`
	Line    int    `json:"line"`
	Column  int    `json:"ch"`
	Preview string `json:"preview"`
	Missing bool   `json:"missing"`
}

// ListSink receives the rendered list panel content.
type ListSink interface {
	PublishBookmarkList(items []ListItem) error
}

// ListView renders the bookmark list panel: every bound slot with its
// resolved position and a single-line preview.
type ListView struct {
	store  *bookmark.Store
	reader DocumentReader
	sink   ListSink
}

func NewListView(store *bookmark.Store, reader DocumentReader, sink ListSink) *ListView {
	return &ListView{store: store, reader: reader, sink: sink}
}

func (v *ListView) Name() string { return "bookmark-list" }

func (v *ListView) Render() error {
	entries := v.store.All()
	items := make([]ListItem, 0, len(entries))

	for _, se := range entries {
		item := ListItem{
			Slot:   string(se.Slot),
			File:   se.Entry.File,
			Line:   se.Entry.Line,
			Column: se.Entry.Column,
		}

		doc, err := v.reader.ReadDocument(se.Entry.File)
		if err != nil {
			// A failed read degrades to "no preview"; the entry stays
			// listed so the user can decide what to do with it.
			item.Missing = true
			item.Preview = "no preview"
		} else {
			pos := bookmark.Resolve(se.Entry, doc.LineCount(), doc.LineLength)
			item.Line = pos.Line
			item.Column = pos.Column
			item.Preview = previewLine(doc, pos.Line)
		}

		items = append(items, item)
	}

	return v.sink.PublishBookmarkList(items)
}

func previewLine(doc document.Document, line int) string {
	text, ok := doc.Line(line)
	if !ok {
		return "no preview"
	}
	text = strings.TrimSpace(text)
	if len(text) > previewLimit {
		// Back off to a rune boundary so the cut never splits a
		// multi-byte character.
		cut := previewLimit
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		text = text[:cut]
	}
	return text
}
