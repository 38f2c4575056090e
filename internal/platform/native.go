package platform

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/uibridge/uibridge/internal/display"
	"github.com/uibridge/uibridge/internal/event"
	"github.com/uibridge/uibridge/internal/logger"
)

// NativeDriver talks to the session's display server. It dials the Wayland
// socket when WAYLAND_DISPLAY is set and falls back to the X11 socket
// otherwise. Event delivery is the embedding toolkit's job: the toolkit
// posts into the attached sink, this driver only owns the connection and
// monitor enumeration.
type NativeDriver struct {
	mu      sync.Mutex
	sink    EventSink
	backend display.Backend
	nextID  atomic.Uint64
	windows map[event.WindowID]*display.Window
}

// NewNativeDriver creates a driver for the current session. Fails when
// neither a Wayland nor an X11 session is detectable.
func NewNativeDriver() (*NativeDriver, error) {
	if os.Getenv("WAYLAND_DISPLAY") == "" && os.Getenv("DISPLAY") == "" {
		return nil, fmt.Errorf("no display session: neither WAYLAND_DISPLAY nor DISPLAY is set")
	}

	backend, err := display.NewBackend()
	if err != nil {
		return nil, fmt.Errorf("monitor detection unavailable: %w", err)
	}

	return &NativeDriver{
		backend: backend,
		windows: make(map[event.WindowID]*display.Window),
	}, nil
}

func (d *NativeDriver) Name() string {
	if os.Getenv("WAYLAND_DISPLAY") != "" {
		return "wayland"
	}
	return "x11"
}

func (d *NativeDriver) Attach(sink EventSink) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sink = sink
}

// Sink returns the attached event sink. The embedding toolkit uses this to
// deliver window events into the adapter's loop.
func (d *NativeDriver) Sink() EventSink {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.sink
}

func (d *NativeDriver) CreateWindow(opts display.WindowOptions) (*display.Window, error) {
	w := &display.Window{
		ID:      event.WindowID(d.nextID.Add(1)),
		Title:   opts.Title,
		Width:   opts.Width,
		Height:  opts.Height,
		Visible: opts.Visible,
	}

	d.mu.Lock()
	d.windows[w.ID] = w
	d.mu.Unlock()

	logger.Debugf("platform: created window id=%d visible=%v", w.ID, w.Visible)
	return w, nil
}

func (d *NativeDriver) OpenConnection(w *display.Window) (*display.Connection, error) {
	if w == nil {
		return nil, fmt.Errorf("connection requires a live window")
	}

	if wl := os.Getenv("WAYLAND_DISPLAY"); wl != "" {
		socket := wl
		if !filepath.IsAbs(socket) {
			runtimeDir := os.Getenv("XDG_RUNTIME_DIR")
			if runtimeDir == "" {
				return nil, fmt.Errorf("XDG_RUNTIME_DIR not set")
			}
			socket = filepath.Join(runtimeDir, socket)
		}
		conn, err := net.Dial("unix", socket)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to wayland display %s: %w", socket, err)
		}
		logger.Debug("platform: wayland connection established", "socket", socket)
		return display.NewConnection(display.PlatformWayland, socket, conn), nil
	}

	socket, err := x11SocketPath(os.Getenv("DISPLAY"))
	if err != nil {
		return nil, err
	}
	conn, err := net.Dial("unix", socket)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X display %s: %w", socket, err)
	}
	logger.Debug("platform: x11 connection established", "socket", socket)
	return display.NewConnection(display.PlatformX11, socket, conn), nil
}

func (d *NativeDriver) Monitors() ([]*display.Monitor, error) {
	return d.backend.GetMonitors()
}

func (d *NativeDriver) Close() error {
	if d.backend != nil {
		return d.backend.Close()
	}
	return nil
}

// x11SocketPath maps a DISPLAY value like ":0" or ":0.1" to the unix socket
// the X server listens on.
func x11SocketPath(displayEnv string) (string, error) {
	if displayEnv == "" {
		return "", fmt.Errorf("DISPLAY not set")
	}
	num := strings.TrimPrefix(displayEnv, ":")
	if i := strings.IndexByte(num, '.'); i >= 0 {
		num = num[:i]
	}
	if num == "" {
		return "", fmt.Errorf("cannot parse DISPLAY value %q", displayEnv)
	}
	return "/tmp/.X11-unix/X" + num, nil
}
