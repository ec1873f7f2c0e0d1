// Package history stores previously submitted inputbar lines and
// provides the up/down recall used by the inputbar mode. An optional
// IO implementation persists entries outside the session.
package history

import (
	"iter"
	"sync"
)

// IO persists history entries outside the session. Implementations own
// durability; the in-memory history never fails because of them.
type IO interface {
	// Append writes one submitted line to the store.
	Append(input string) error

	// Read returns all stored lines, oldest first.
	Read() ([]string, error)
}

// History is an append-only, in-order sequence of submitted lines with
// a recall cursor for Previous/Next navigation.
type History struct {
	mu     sync.Mutex
	items  []string
	cursor int // index into items; len(items) means "not recalling"
	io     IO
}

// New creates a history. io may be nil; when set, existing entries are
// read from it and later appends are passed through.
func New(io IO) *History {
	h := &History{io: io}
	h.reload()
	return h
}

func (h *History) reload() {
	h.items = h.items[:0]
	if h.io != nil {
		if stored, err := h.io.Read(); err == nil {
			h.items = append(h.items, stored...)
		}
	}
	h.cursor = len(h.items)
}

// Append records a submitted line verbatim. Empty input is ignored.
func (h *History) Append(input string) {
	if input == "" {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	h.items = append(h.items, input)
	h.cursor = len(h.items)
	if h.io != nil {
		// Best effort; the in-memory entry is already recorded.
		_ = h.io.Append(input)
	}
}

// Previous moves the recall cursor one entry back and returns it.
// Returns "", false at the oldest entry or when the history is empty.
func (h *History) Previous() (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.cursor == 0 || len(h.items) == 0 {
		return "", false
	}
	h.cursor--
	return h.items[h.cursor], true
}

// Next moves the recall cursor one entry forward and returns it.
// Returns "", false when the cursor steps past the newest entry.
func (h *History) Next() (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.cursor >= len(h.items)-1 {
		h.cursor = len(h.items)
		return "", false
	}
	h.cursor++
	return h.items[h.cursor], true
}

// Reset clears the recall cursor and, when an IO store is attached,
// re-reads the entries from it.
func (h *History) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.io != nil {
		h.reload()
		return
	}
	h.cursor = len(h.items)
}

// All iterates the entries oldest first. The sequence is restartable
// and reflects a snapshot taken when iteration begins.
func (h *History) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		h.mu.Lock()
		snapshot := make([]string, len(h.items))
		copy(snapshot, h.items)
		h.mu.Unlock()

		for _, item := range snapshot {
			if !yield(item) {
				return
			}
		}
	}
}

// Len returns the number of entries.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.items)
}
