package view

import "linemark/internal/bookmark"

// RibbonSink receives the set of bound slots for ribbon indicators.
type RibbonSink interface {
	PublishRibbon(slots []string) error
}

// RibbonView renders the ribbon indicator state: which slots are bound.
type RibbonView struct {
	store *bookmark.Store
	sink  RibbonSink
}

func NewRibbonView(store *bookmark.Store, sink RibbonSink) *RibbonView {
	return &RibbonView{store: store, sink: sink}
}

func (v *RibbonView) Name() string { return "ribbon" }

func (v *RibbonView) Render() error {
	entries := v.store.All()
	slots := make([]string, 0, len(entries))
	for _, se := range entries {
		slots = append(slots, string(se.Slot))
	}
	return v.sink.PublishRibbon(slots)
}
