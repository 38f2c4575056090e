package platform

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/uibridge/uibridge/internal/display"
	"github.com/uibridge/uibridge/internal/event"
)

// MemDriver is an in-memory driver with deterministic behavior. It backs
// tests and headless demo runs: windows are plain records, the connection
// has no transport, monitors are whatever the driver was seeded with, and
// events appear only when Emit is called.
type MemDriver struct {
	mu       sync.Mutex
	sink     EventSink
	monitors []*display.Monitor
	nextID   atomic.Uint64
	windows  map[event.WindowID]*display.Window
	closed   bool
}

// NewMemDriver creates a driver seeded with the given monitors. With no
// arguments the driver reports a single 1920x1080 primary monitor.
func NewMemDriver(monitors ...*display.Monitor) *MemDriver {
	if len(monitors) == 0 {
		monitors = []*display.Monitor{{
			ID:      "0",
			Name:    "mem-0",
			Width:   1920,
			Height:  1080,
			Primary: true,
			Scale:   1.0,
		}}
	}
	return &MemDriver{
		monitors: monitors,
		windows:  make(map[event.WindowID]*display.Window),
	}
}

func (d *MemDriver) Name() string { return "memory" }

func (d *MemDriver) Attach(sink EventSink) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sink = sink
}

func (d *MemDriver) CreateWindow(opts display.WindowOptions) (*display.Window, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return nil, fmt.Errorf("driver closed")
	}

	w := &display.Window{
		ID:      event.WindowID(d.nextID.Add(1)),
		Title:   opts.Title,
		Width:   opts.Width,
		Height:  opts.Height,
		Visible: opts.Visible,
	}
	d.windows[w.ID] = w
	return w, nil
}

func (d *MemDriver) OpenConnection(w *display.Window) (*display.Connection, error) {
	if w == nil {
		return nil, fmt.Errorf("connection requires a live window")
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.windows[w.ID]; !ok {
		return nil, fmt.Errorf("unknown window %d", w.ID)
	}
	return display.NewConnection(display.PlatformMemory, "", nil), nil
}

func (d *MemDriver) Monitors() ([]*display.Monitor, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.monitors) == 0 {
		return nil, fmt.Errorf("no monitors detected")
	}
	out := make([]*display.Monitor, len(d.monitors))
	copy(out, d.monitors)
	return out, nil
}

// SetMonitors replaces the seeded monitor list.
func (d *MemDriver) SetMonitors(monitors []*display.Monitor) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.monitors = monitors
}

// Emit delivers an event to the attached sink, as the toolkit would.
// Safe from any goroutine; a nop when no sink is attached.
func (d *MemDriver) Emit(ev event.Event) {
	d.mu.Lock()
	sink := d.sink
	d.mu.Unlock()
	if sink != nil {
		sink.Post(ev)
	}
}

// Window returns a previously created window by id.
func (d *MemDriver) Window(id event.WindowID) *display.Window {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.windows[id]
}

func (d *MemDriver) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
	return nil
}
