package pangan

import (
	"sync"

	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/join"
)

// Hook function types for load and join events
type (
	// FallbackHook is called when a source cannot be used and is replaced,
	// with synthetic records for attributes or with no geometry.
	FallbackHook func(source string, err error)

	// SnapshotHook is called after a fresh snapshot is assembled.
	SnapshotHook func(snap *Snapshot)

	// LowMatchHook is called when a join matches fewer features than the
	// configured threshold.
	LowMatchHook func(result *join.Result)
)

// Hooks registers event callbacks. Callbacks run on the goroutine of the
// call that loaded the data, after the load completes.
type Hooks interface {
	OnFallback(fn FallbackHook)
	OnSnapshot(fn SnapshotHook)
	OnLowMatch(fn LowMatchHook)
}

// hooks manages event callbacks
type hooks struct {
	mu         sync.RWMutex
	onFallback []FallbackHook
	onSnapshot []SnapshotHook
	onLowMatch []LowMatchHook
}

func newHooks() *hooks {
	return &hooks{}
}

// OnFallback registers a callback for source fallbacks.
func (c *client) OnFallback(fn FallbackHook) {
	c.hooks.mu.Lock()
	defer c.hooks.mu.Unlock()
	c.hooks.onFallback = append(c.hooks.onFallback, fn)
}

// OnSnapshot registers a callback for new snapshots.
func (c *client) OnSnapshot(fn SnapshotHook) {
	c.hooks.mu.Lock()
	defer c.hooks.mu.Unlock()
	c.hooks.onSnapshot = append(c.hooks.onSnapshot, fn)
}

// OnLowMatch registers a callback for joins with too few matches.
func (c *client) OnLowMatch(fn LowMatchHook) {
	c.hooks.mu.Lock()
	defer c.hooks.mu.Unlock()
	c.hooks.onLowMatch = append(c.hooks.onLowMatch, fn)
}

func (h *hooks) fallback(source string, err error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, fn := range h.onFallback {
		fn(source, err)
	}
}

func (h *hooks) snapshot(snap *Snapshot) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, fn := range h.onSnapshot {
		fn(snap)
	}
}

func (h *hooks) lowMatch(result *join.Result) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, fn := range h.onLowMatch {
		fn(result)
	}
}

// events holds the hook calls of one load. They run after the client lock
// is released, so hooks may call back into the client.
type events struct {
	mu        sync.Mutex
	fallbacks []fallbackEvent
	snapshot  *Snapshot
}

type fallbackEvent struct {
	source string
	err    error
}

func (e *events) fallback(source string, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.fallbacks = append(e.fallbacks, fallbackEvent{source: source, err: err})
}

func (e *events) loaded(snap *Snapshot) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.snapshot = snap
}

func (e *events) fire(h *hooks) {
	e.mu.Lock()
	fallbacks, snap := e.fallbacks, e.snapshot
	e.mu.Unlock()

	for _, f := range fallbacks {
		h.fallback(f.source, f.err)
	}
	if snap != nil {
		h.snapshot(snap)
	}
}
