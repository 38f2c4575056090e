package event

import (
	"sync"

	"github.com/eapache/queue"
)

// Buffer holds captured events in arrival order until the host's input
// layer drains them. The bridge appends under the adapter lock; the host
// may drain from any goroutine. One mutex guards the whole structure —
// pushes and drains are infrequent relative to their cost and must not
// interleave partially.
type Buffer struct {
	mu sync.Mutex
	q  *queue.Queue
}

// NewBuffer creates an empty buffer.
func NewBuffer() *Buffer {
	return &Buffer{q: queue.New()}
}

// Push appends an event at the tail. Events are never reordered or
// deduplicated.
func (b *Buffer) Push(ev Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.q.Add(ev)
}

// DrainAll atomically removes and returns the buffered events in capture
// order. Returns nil when the buffer is empty.
func (b *Buffer) DrainAll() []Event {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := b.q.Length()
	if n == 0 {
		return nil
	}
	out := make([]Event, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, b.q.Remove().(Event))
	}
	return out
}

// Len returns the number of buffered events.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.q.Length()
}

// Peek returns the event at position i without removing it. Used by tests
// and diagnostics; i must be < Len.
func (b *Buffer) Peek(i int) Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.q.Get(i).(Event)
}
