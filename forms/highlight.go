package forms

import (
	"sync"
	"time"
)

// Highlight durations: list rows glow a little longer than the
// creation success badge.
const (
	ListHighlightTTL = 5 * time.Second
	CreateBadgeTTL   = 3 * time.Second
)

// Highlights tracks recently added ids. Each id removes itself after
// the TTL via its own timer; no later state update is needed for the
// removal to happen.
type Highlights struct {
	mu     sync.Mutex
	ttl    time.Duration
	timers map[string]*time.Timer
}

func NewHighlights(ttl time.Duration) *Highlights {
	return &Highlights{ttl: ttl, timers: make(map[string]*time.Timer)}
}

// Observe diffs the previous id set against the current one and
// highlights every id that newly appeared.
func (h *Highlights) Observe(previous, current []string) {
	seen := make(map[string]bool, len(previous))
	for _, id := range previous {
		seen[id] = true
	}
	for _, id := range current {
		if !seen[id] {
			h.Add(id)
		}
	}
}

// Add highlights one id, restarting its expiry if already present.
func (h *Highlights) Add(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if t, ok := h.timers[id]; ok {
		t.Stop()
	}
	h.timers[id] = time.AfterFunc(h.ttl, func() {
		h.mu.Lock()
		delete(h.timers, id)
		h.mu.Unlock()
	})
}

// Has reports whether an id is currently highlighted.
func (h *Highlights) Has(id string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	_, ok := h.timers[id]
	return ok
}

// Stop cancels every pending expiry, for teardown.
func (h *Highlights) Stop() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, t := range h.timers {
		t.Stop()
		delete(h.timers, id)
	}
}
