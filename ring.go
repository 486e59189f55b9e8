package charstream

import "fmt"

// Ring is a fixed set of equally sized text slots handed out in rotation.
// It lets user types render themselves to short text without allocating a
// buffer per call: a claimed slot stays valid until the ring wraps around
// to it again. A Ring is not safe for concurrent use.
type Ring struct {
	buf  []byte
	size int
	next int
}

// NewRing returns a ring of count slots of size bytes each. Each slot
// holds at most size-1 bytes of text plus a NUL terminator.
func NewRing(size, count int) *Ring {
	size = max(size, 1)
	count = max(count, 1)
	return &Ring{buf: make([]byte, size*count), size: size}
}

// Claim returns the next slot, NUL-terminated at its last byte. When the
// ring is exhausted it starts again from the first slot.
func (r *Ring) Claim() []byte {
	if r.next+r.size > len(r.buf) {
		r.next = 0
	}
	slot := r.buf[r.next : r.next+r.size : r.next+r.size]
	slot[r.size-1] = 0
	r.next += r.size
	return slot
}

// Sprintf renders into the next slot. Output beyond size-1 bytes is
// dropped.
func (r *Ring) Sprintf(format string, args ...any) Text {
	slot := r.Claim()
	sw := slotWriter{buf: slot[:len(slot)-1]}
	_, _ = fmt.Fprintf(&sw, format, args...)
	slot[sw.n] = 0
	return Text(slot[:sw.n])
}

// slotWriter fills a fixed slice and silently drops the overflow.
type slotWriter struct {
	buf []byte
	n   int
}

func (w *slotWriter) Write(p []byte) (int, error) {
	w.n += copy(w.buf[w.n:], p)
	return len(p), nil
}
