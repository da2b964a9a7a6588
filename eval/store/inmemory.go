package store

import (
	"context"
	"sync"
)

// DefaultCapacity bounds the in-memory history when no capacity is given.
const DefaultCapacity = 1000

// InMemoryHistory is a mutex-guarded ring buffer of evaluation entries.
// It is the default history backend.
type InMemoryHistory struct {
	mu      sync.Mutex
	entries []Entry
	start   int
	size    int
}

// NewInMemoryHistory creates a bounded in-memory history. A non-positive
// capacity falls back to DefaultCapacity.
func NewInMemoryHistory(capacity int) *InMemoryHistory {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &InMemoryHistory{entries: make([]Entry, capacity)}
}

func (h *InMemoryHistory) Append(_ context.Context, entry Entry) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	idx := (h.start + h.size) % len(h.entries)
	h.entries[idx] = entry
	if h.size < len(h.entries) {
		h.size++
	} else {
		h.start = (h.start + 1) % len(h.entries)
	}
	return nil
}

func (h *InMemoryHistory) Recent(_ context.Context, n int) ([]Entry, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if n <= 0 || n > h.size {
		n = h.size
	}
	out := make([]Entry, 0, n)
	for i := 0; i < n; i++ {
		idx := (h.start + h.size - 1 - i) % len(h.entries)
		out = append(out, h.entries[idx])
	}
	return out, nil
}

func (h *InMemoryHistory) Len(_ context.Context) (int, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.size, nil
}
