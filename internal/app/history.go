package app

import "sarconf/internal/sar"

// History is a bounded ring of parameter snapshots used for undo.
// When full, pushing drops the oldest snapshot.
type History struct {
	buf   []sar.Params
	pos   int
	count int
}

// NewHistory creates a new ring with the given capacity.
func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = 1
	}
	return &History{
		buf: make([]sar.Params, capacity),
	}
}

// Push records a snapshot.
func (h *History) Push(p sar.Params) {
	h.buf[h.pos] = p
	h.pos = (h.pos + 1) % len(h.buf)
	if h.count < len(h.buf) {
		h.count++
	}
}

// Pop removes and returns the most recent snapshot.
func (h *History) Pop() (sar.Params, bool) {
	if h.count == 0 {
		return sar.Params{}, false
	}
	h.pos = (h.pos - 1 + len(h.buf)) % len(h.buf)
	h.count--
	p := h.buf[h.pos]
	h.buf[h.pos] = sar.Params{}
	return p, true
}

// Len returns the number of stored snapshots.
func (h *History) Len() int {
	return h.count
}
