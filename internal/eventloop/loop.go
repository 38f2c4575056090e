// Package eventloop bridges a select-style blocking wait with a
// window-system event loop. The Adapter owns the loop, the display
// connection and the clipboard capability; its Select method is a drop-in
// replacement for pselect(2) that additionally surfaces GUI activity
// through interrupted-call semantics.
package eventloop

import (
	"time"

	"github.com/uibridge/uibridge/internal/event"
	"github.com/uibridge/uibridge/internal/logger"
)

const (
	postQueueSize = 256
	wakeQueueSize = 64
)

// Loop is the window-system event queue the adapter pumps. Window events
// arrive through Post (the platform.EventSink contract); wake notifications
// arrive through a WakeSender. At most one goroutine pumps at a time,
// enforced by the adapter mutex.
type Loop struct {
	posts chan event.Event
	wakes chan int
	done  chan struct{}
}

// NewLoop creates an empty loop.
func NewLoop() *Loop {
	return &Loop{
		posts: make(chan event.Event, postQueueSize),
		wakes: make(chan int, wakeQueueSize),
		done:  make(chan struct{}),
	}
}

// Post enqueues a window event, preserving arrival order. Never blocks the
// delivering goroutine: when the queue is full the event is dropped.
func (l *Loop) Post(ev event.Event) {
	select {
	case l.posts <- ev:
	default:
		logger.Warnf("event queue full, dropping %s", ev.Kind)
	}
}

// Close marks the loop as having no more pending work. Any pump in
// progress, and every future pump, exits with the neutral outcome.
func (l *Loop) Close() {
	close(l.done)
}

// runUntil pumps queued events in arrival order, invoking fn for each.
// It returns when fn reports the pump should stop, when the deadline is
// reached, or when the loop is closed. Wake notifications are surfaced to
// fn as KindWake events.
func (l *Loop) runUntil(deadline time.Time, fn func(event.Event) bool) {
	timer := time.NewTimer(time.Until(deadline))
	defer timer.Stop()

	for {
		// Already-queued work is delivered even when the deadline has
		// expired, but each delivery re-checks the clock so a stream of
		// ignored events cannot extend the pump past the deadline.
		delivered := false
		select {
		case ev := <-l.posts:
			if fn(ev) {
				return
			}
			delivered = true
		case n := <-l.wakes:
			if fn(event.Event{Kind: event.KindWake, Ready: n}) {
				return
			}
			delivered = true
		default:
		}
		if delivered {
			if !time.Now().Before(deadline) {
				return
			}
			continue
		}

		select {
		case ev := <-l.posts:
			if fn(ev) {
				return
			}
		case n := <-l.wakes:
			if fn(event.Event{Kind: event.KindWake, Ready: n}) {
				return
			}
		case <-timer.C:
			return
		case <-l.done:
			return
		}
	}
}
