// Package platform is the seam between the event-loop adapter and the
// window-system toolkit: window creation, the native connection dial,
// monitor enumeration and raw event delivery.
package platform

import (
	"github.com/uibridge/uibridge/internal/display"
	"github.com/uibridge/uibridge/internal/event"
)

// EventSink receives raw window-system events from a driver. The adapter's
// loop implements this; Post must be safe to call from the toolkit's
// delivery goroutine.
type EventSink interface {
	Post(ev event.Event)
}

// Driver abstracts one window-system toolkit binding.
type Driver interface {
	// Name returns a human-readable driver name.
	Name() string

	// Attach wires the sink that receives this driver's events. Must be
	// called before any event can be delivered; calling it again replaces
	// the sink.
	Attach(sink EventSink)

	// CreateWindow creates a toolkit window. Invisible windows are used to
	// force connection establishment without anything appearing on screen.
	CreateWindow(opts display.WindowOptions) (*display.Window, error)

	// OpenConnection establishes the native display connection through a
	// live window. Called at most once per process by the adapter.
	OpenConnection(w *display.Window) (*display.Connection, error)

	// Monitors enumerates the currently attached monitors. Each call
	// re-enumerates; the result is a fresh snapshot.
	Monitors() ([]*display.Monitor, error)

	// Close releases driver resources.
	Close() error
}
