package eventloop

import (
	"time"

	"golang.org/x/sys/unix"

	"github.com/uibridge/uibridge/internal/event"
	"github.com/uibridge/uibridge/internal/logger"
)

// InputReadySignal is raised to the process whenever the bridge captures a
// qualifying window event, telling the host's input machinery that input
// is pending. Hosts must install a handler (or signal.Notify relay) before
// driving the bridge.
const InputReadySignal = unix.SIGIO

// Select stands in for pselect(2) in the host's main loop. Parameter and
// result shape mirror unix.Pselect: ready-descriptor count on success, or
// -1 with unix.EINTR when a window event interrupted the wait.
//
// With the window system inhibited the call is a verbatim passthrough to
// unix.Pselect and the event buffer is untouched. Otherwise one bounded
// pump of the loop runs until the first qualifying window event (captured
// to the buffer, InputReadySignal raised, EINTR returned), a wake
// notification (its ready-count returned, buffer untouched), or the
// deadline. A neutral exit falls back to a zero-timeout check of the
// original descriptor sets, preceded by the configured anti-spin sleep.
func (a *Adapter) Select(nfds int, r, w, e *unix.FdSet, timeout *unix.Timespec, sigmask *unix.Sigset_t) (int, error) {
	if a.Inhibited() {
		return unix.Pselect(nfds, r, w, e, timeout, sigmask)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	deadline := deadlineFrom(timeout)

	ready := 0
	interrupted := false
	a.loop.runUntil(deadline, func(ev event.Event) bool {
		switch {
		case ev.Kind == event.KindWake:
			ready = ev.Ready
			return true
		case ev.Qualifies():
			// One qualifying event per call: capture it, pretend the wait
			// was interrupted by a signal, and let the host re-poll.
			a.buffer.Push(ev)
			if err := raiseInputReady(); err != nil {
				logger.Errorf("failed to raise input-ready signal: %v", err)
			}
			interrupted = true
			return true
		}
		return false
	})

	if interrupted {
		return -1, unix.EINTR
	}
	if ready != 0 {
		logger.Debugf("bridge: wake ready=%d", ready)
		return ready, nil
	}

	if a.antiSpin > 0 {
		time.Sleep(a.antiSpin)
	}
	zero := unix.Timespec{}
	return unix.Pselect(nfds, r, w, e, &zero, sigmask)
}

func raiseInputReady() error {
	return unix.Kill(unix.Getpid(), InputReadySignal)
}
