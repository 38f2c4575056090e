package eventloop

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/uibridge/uibridge/internal/clipboard"
	"github.com/uibridge/uibridge/internal/display"
	"github.com/uibridge/uibridge/internal/event"
	"github.com/uibridge/uibridge/internal/logger"
	"github.com/uibridge/uibridge/internal/platform"
)

const defaultResizeWait = 100 * time.Millisecond

// Adapter owns the window-system event loop, the native display connection
// and the clipboard capability. One instance exists per process by
// convention; construct it once and pass it to whatever owns the host's
// main loop. All window-management calls and the bridge serialize on one
// mutex — a single thread drives the UI at any moment.
type Adapter struct {
	mu     sync.Mutex
	loop   *Loop
	driver platform.Driver
	buffer *event.Buffer

	conn *display.Connection

	clipOnce sync.Once
	clip     clipboard.Clipboard
	clipPref string

	inhibited  atomic.Bool
	antiSpin   time.Duration
	resizeWait time.Duration
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithAntiSpinSleep sets the fixed sleep inserted before the neutral-path
// descriptor check, bounding CPU usage when the host polls in a tight loop.
// Zero disables the sleep.
func WithAntiSpinSleep(d time.Duration) Option {
	return func(a *Adapter) { a.antiSpin = d }
}

// WithResizeWait sets the default WaitForResize timeout.
func WithResizeWait(d time.Duration) Option {
	return func(a *Adapter) { a.resizeWait = d }
}

// WithInhibited sets the initial window-system inhibition state.
func WithInhibited(inhibited bool) Option {
	return func(a *Adapter) { a.inhibited.Store(inhibited) }
}

// WithClipboardBackend forces a clipboard backend (auto|wayland|x11|none).
func WithClipboardBackend(name string) Option {
	return func(a *Adapter) { a.clipPref = name }
}

// New creates an adapter bound to the given driver and event buffer and
// attaches its loop as the driver's event sink.
func New(driver platform.Driver, buffer *event.Buffer, opts ...Option) *Adapter {
	a := &Adapter{
		loop:       NewLoop(),
		driver:     driver,
		buffer:     buffer,
		clipPref:   "auto",
		resizeWait: defaultResizeWait,
	}
	for _, opt := range opts {
		opt(a)
	}
	driver.Attach(a.loop)
	return a
}

// SetInhibited flips the host-owned window-system inhibition flag. While
// set, Select bypasses the loop entirely.
func (a *Adapter) SetInhibited(inhibited bool) {
	a.inhibited.Store(inhibited)
}

// Inhibited reports the current inhibition state.
func (a *Adapter) Inhibited() bool {
	return a.inhibited.Load()
}

// OpenDisplayConnection establishes the native display connection by
// running an invisible window through the driver. Idempotent: the
// connection is created at most once and keeps its identity afterwards.
// An error here is unrecoverable — rendering cannot proceed without a
// display — and callers are expected to abort startup.
func (a *Adapter) OpenDisplayConnection() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.openConnectionLocked()
}

func (a *Adapter) openConnectionLocked() error {
	if a.conn != nil {
		return nil
	}

	w, err := a.driver.CreateWindow(display.WindowOptions{
		Title:   "uibridge-probe",
		Width:   1,
		Height:  1,
		Visible: false,
	})
	if err != nil {
		return fmt.Errorf("failed to create probe window: %w", err)
	}

	conn, err := a.driver.OpenConnection(w)
	if err != nil {
		return fmt.Errorf("failed to establish display connection: %w", err)
	}

	a.conn = conn
	logger.Debug("display connection established", "platform", conn.Platform())
	return nil
}

// Connection returns the display connection, establishing it on first
// demand.
func (a *Adapter) Connection() (*display.Connection, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.openConnectionLocked(); err != nil {
		return nil, err
	}
	return a.conn, nil
}

// BuildSurfaceFor constructs a renderable surface for a live window:
// graphics adapter and native widget from the connection, then the surface
// itself. Errors are unrecoverable for the same reason connection errors
// are.
func (a *Adapter) BuildSurfaceFor(w *display.Window) (*display.Surface, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.openConnectionLocked(); err != nil {
		return nil, err
	}

	gfx, err := a.conn.CreateGraphicsAdapter()
	if err != nil {
		return nil, fmt.Errorf("failed to create graphics adapter: %w", err)
	}
	widget, err := a.conn.CreateNativeWidget(w)
	if err != nil {
		return nil, fmt.Errorf("failed to create native widget: %w", err)
	}
	surface, err := display.NewSurface(a.conn, gfx, widget)
	if err != nil {
		return nil, fmt.Errorf("failed to create surface: %w", err)
	}
	return surface, nil
}

// WaitForResize pumps the loop until a resize event targets id or the
// timeout elapses, letting window geometry settle before rendering begins.
// Both exits are normal. A non-positive timeout uses the configured
// default.
func (a *Adapter) WaitForResize(id event.WindowID, timeout time.Duration) {
	if timeout <= 0 {
		timeout = a.resizeWait
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	deadline := time.Now().Add(timeout)
	a.loop.runUntil(deadline, func(ev event.Event) bool {
		return ev.Kind == event.KindResized && ev.Window == id
	})
}

// AvailableMonitors re-enumerates the attached monitors. The returned
// slice is a fresh snapshot on every call.
func (a *Adapter) AvailableMonitors() ([]*display.Monitor, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.driver.Monitors()
}

// PrimaryMonitor returns the designated primary monitor, or the first
// available one when none is designated. Fails only when no monitors exist
// at all — there is no display to target, which callers treat as
// unrecoverable.
func (a *Adapter) PrimaryMonitor() (*display.Monitor, error) {
	monitors, err := a.AvailableMonitors()
	if err != nil {
		return nil, err
	}
	return display.PrimaryOf(monitors)
}

// Clipboard returns the process's clipboard capability, selecting a
// platform backend on first use.
func (a *Adapter) Clipboard() clipboard.Clipboard {
	a.clipOnce.Do(func() {
		a.clip = clipboard.New(a.clipPref)
		logger.Debug("clipboard backend selected", "backend", a.clip.Name())
	})
	return a.clip
}

// WakeChannel returns a sender other goroutines use to end an in-progress
// bridge wait with a specific ready-count. Senders are freely copyable and
// deliberately not covered by the adapter mutex.
func (a *Adapter) WakeChannel() WakeSender {
	return WakeSender{wakes: a.loop.wakes}
}

// Buffer returns the event buffer the host drains after an interrupted
// bridge return.
func (a *Adapter) Buffer() *event.Buffer {
	return a.buffer
}

// Close shuts the loop down. Pending and future pumps exit neutrally.
func (a *Adapter) Close() error {
	a.loop.Close()
	return a.driver.Close()
}
