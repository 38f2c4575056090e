package eventloop

import "github.com/uibridge/uibridge/internal/logger"

// WakeSender injects synthetic ready-count notifications into an adapter's
// loop from any goroutine. It is a plain value: copy it freely, hand copies
// to other goroutines. It holds no ownership over the adapter.
type WakeSender struct {
	wakes chan<- int
}

// Notify enqueues a wake notification carrying the ready-descriptor count
// n. The bridge call pumping the loop returns n without touching the event
// buffer. Never blocks; delivery is in order, once per call.
func (s WakeSender) Notify(n int) {
	select {
	case s.wakes <- n:
	default:
		logger.Warnf("wake queue full, dropping notification n=%d", n)
	}
}
