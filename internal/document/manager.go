package document

import "sync"

// MapManager is the default Manager, a mutex-guarded map of open documents.
type MapManager struct {
	docs map[string]Document
	mu   sync.RWMutex
}

func NewManager() *MapManager {
	return &MapManager{docs: make(map[string]Document)}
}

// Open registers a document under id. Reopening an id replaces the
// previous document, the host's content wins.
func (m *MapManager) Open(id string, content string) Document {
	m.mu.Lock()
	defer m.mu.Unlock()

	doc := NewTextDocument(content)
	m.docs[id] = doc
	return doc
}

func (m *MapManager) Get(id string) (Document, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	doc, exists := m.docs[id]
	return doc, exists
}

func (m *MapManager) Close(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.docs, id)
}

func (m *MapManager) CloseAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs = make(map[string]Document)
}
