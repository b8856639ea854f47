package bookmark

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/tliron/commonlog"
)

// Persister saves and loads the opaque settings blob the store serializes
// itself into. Implementations live outside this package.
type Persister interface {
	Save(blob []byte) error
	Load() ([]byte, error)
}

// settingsBlob is the persisted layout. Unknown top-level keys written by
// other components survive a load/save cycle only if they share this shape;
// consumers tolerate missing keys and ignore extra ones.
type settingsBlob struct {
	Bookmarks map[Slot]Entry `json:"bookmarks"`
}

// Store owns the canonical slot-to-entry mapping. All mutations are
// write-through: the full table is persisted before the call returns.
// Persistence failure is logged and does not roll back the in-memory
// state, which is authoritative for the running session. Mutations arrive
// strictly sequentially from the host event loop; the lock exists because
// view renders read the table from their own goroutines.
type Store struct {
	entries   map[Slot]Entry
	persister Persister
	logger    commonlog.Logger
	mu        sync.RWMutex
}

// NewStore creates an empty store backed by the given persister.
func NewStore(persister Persister) *Store {
	return &Store{
		entries:   make(map[Slot]Entry),
		persister: persister,
		logger:    commonlog.GetLogger("linemark.bookmark"),
	}
}

// Load merges persisted state over the empty table. A missing blob is not
// an error; invalid slots in the blob are skipped.
func (s *Store) Load() error {
	blob, err := s.persister.Load()
	if err != nil {
		return fmt.Errorf("failed to load bookmarks: %w", err)
	}
	if blob == nil {
		return nil
	}

	var data settingsBlob
	if err := json.Unmarshal(blob, &data); err != nil {
		return fmt.Errorf("failed to decode bookmarks: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for slot, entry := range data.Bookmarks {
		if !slot.Valid() {
			s.logger.Warningf("skipping persisted entry with invalid slot %q", slot)
			continue
		}
		s.entries[slot] = entry
	}
	return nil
}

// Set binds slot to entry, overwriting any previous binding. The previous
// entry is returned so callers can detect the toggle case.
func (s *Store) Set(slot Slot, entry Entry) *Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, existed := s.entries[slot]
	s.entries[slot] = entry
	s.persist()
	if !existed {
		return nil
	}
	return &prev
}

// Remove unbinds slot, returning the removed entry or nil if it was unbound.
func (s *Store) Remove(slot Slot) *Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, existed := s.entries[slot]
	if !existed {
		return nil
	}
	delete(s.entries, slot)
	s.persist()
	return &prev
}

// Get returns the entry bound to slot, or nil.
func (s *Store) Get(slot Slot) *Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, existed := s.entries[slot]
	if !existed {
		return nil
	}
	return &entry
}

// All returns every binding in ascending numeric slot order.
func (s *Store) All() []SlotEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.all()
}

// ForDocument returns the bindings whose entry points into the given
// document, in ascending slot order.
func (s *Store) ForDocument(id string) []SlotEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []SlotEntry
	for _, se := range s.all() {
		if se.Entry.File == id {
			matched = append(matched, se)
		}
	}
	return matched
}

func (s *Store) all() []SlotEntry {
	var all []SlotEntry
	for _, slot := range Slots {
		if entry, ok := s.entries[slot]; ok {
			all = append(all, SlotEntry{Slot: slot, Entry: entry})
		}
	}
	return all
}

// RenameDocument rewrites the document id in place on every matching entry,
// preserving slot identity. It reports whether any entry changed.
func (s *Store) RenameDocument(oldID, newID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := false
	for slot, entry := range s.entries {
		if entry.File == oldID {
			entry.File = newID
			s.entries[slot] = entry
			changed = true
		}
	}
	if changed {
		s.persist()
	}
	return changed
}

// RemoveByDocument deletes every entry bound into the given document and
// reports whether any entry was deleted.
func (s *Store) RemoveByDocument(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := false
	for slot, entry := range s.entries {
		if entry.File == id {
			delete(s.entries, slot)
			changed = true
		}
	}
	if changed {
		s.persist()
	}
	return changed
}

func (s *Store) persist() {
	blob, err := json.Marshal(settingsBlob{Bookmarks: s.entries})
	if err != nil {
		s.logger.Errorf("failed to encode bookmarks: %v", err)
		return
	}
	if err := s.persister.Save(blob); err != nil {
		// In-memory state stays authoritative; the next mutation
		// persists the full table again.
		s.logger.Errorf("failed to persist bookmarks: %v", err)
	}
}
