package view

import (
	"sync"

	"github.com/tliron/commonlog"
)

// Hub fans out change notifications to registered views. Each view gets a
// capacity-1 kick channel drained by its own goroutine: a request arriving
// while a render is in flight parks in the buffer, and further requests are
// absorbed until that buffered one is consumed. At most one render runs per
// view at a time.
type Hub struct {
	observers map[View]*observerState
	mu        sync.Mutex
	wg        sync.WaitGroup
	logger    commonlog.Logger
}

type observerState struct {
	kick chan struct{}
	quit chan struct{}
}

func NewHub() *Hub {
	return &Hub{
		observers: make(map[View]*observerState),
		logger:    commonlog.GetLogger("linemark.view"),
	}
}

// Register adds a view and immediately requests its first render.
func (h *Hub) Register(v View) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, exists := h.observers[v]; exists {
		return
	}

	state := &observerState{
		kick: make(chan struct{}, 1),
		quit: make(chan struct{}),
	}
	h.observers[v] = state

	h.wg.Add(1)
	go h.drain(v, state)

	state.kick <- struct{}{}
}

// Unregister removes a view. Its drain goroutine exits after any in-flight
// render completes.
func (h *Hub) Unregister(v View) {
	h.mu.Lock()
	defer h.mu.Unlock()

	state, exists := h.observers[v]
	if !exists {
		return
	}
	delete(h.observers, v)
	close(state.quit)
}

// NotifyAll requests a render from every registered view.
func (h *Hub) NotifyAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, state := range h.observers {
		select {
		case state.kick <- struct{}{}:
		default:
			// A render is already in flight with one pending; this
			// request is absorbed into the pending one.
		}
	}
}

// Close unregisters every view and waits for render goroutines to finish.
func (h *Hub) Close() {
	h.mu.Lock()
	for v, state := range h.observers {
		delete(h.observers, v)
		close(state.quit)
	}
	h.mu.Unlock()

	h.wg.Wait()
}

func (h *Hub) drain(v View, state *observerState) {
	defer h.wg.Done()
	for {
		select {
		case <-state.quit:
			return
		case <-state.kick:
			// A kick buffered before quit closed can still win the
			// select; an unregistered view must not render again.
			select {
			case <-state.quit:
				return
			default:
			}
			if err := v.Render(); err != nil {
				h.logger.Errorf("render of %s failed: %v", v.Name(), err)
			}
		}
	}
}
