// Package display models the native display side of the bridge: monitor
// enumeration, the lazily established display connection, and the graphics
// surface plumbing built on top of it.
package display

import (
	"fmt"
	"os/exec"

	"github.com/uibridge/uibridge/internal/logger"
)

// Monitor represents a physical display.
type Monitor struct {
	ID      string
	Name    string
	X       int32 // Position in global coordinate space
	Y       int32
	Width   int32
	Height  int32
	Primary bool
	Scale   float64
}

// Bounds returns the monitor's boundaries.
func (m *Monitor) Bounds() (x1, y1, x2, y2 int32) {
	return m.X, m.Y, m.X + m.Width, m.Y + m.Height
}

// Contains checks if a point is within this monitor.
func (m *Monitor) Contains(x, y int32) bool {
	return x >= m.X && x < m.X+m.Width && y >= m.Y && y < m.Y+m.Height
}

// Backend enumerates monitors through one detection method.
type Backend interface {
	GetMonitors() ([]*Monitor, error)
	Close() error
}

// NewBackend picks the first monitor-detection backend that works on this
// system. wlr-randr covers wlroots compositors; xrandr covers X11 and
// XWayland sessions.
func NewBackend() (Backend, error) {
	backends := []struct {
		name   string
		create func() (Backend, error)
	}{
		{"wlrRandrBackend", newWlrRandrBackend},
		{"xrandrBackend", newXrandrBackend},
	}

	for _, b := range backends {
		backend, err := b.create()
		if err == nil {
			logger.Debugf("display: using backend %s", b.name)
			return backend, nil
		}
		logger.Debugf("display: backend %s unavailable: %v", b.name, err)
	}

	return nil, fmt.Errorf("no display backend available")
}

// PrimaryOf returns the designated primary monitor, falling back to the
// first entry when none is marked. Returns an error only when the list is
// empty — there is no display to target at all.
func PrimaryOf(monitors []*Monitor) (*Monitor, error) {
	for _, m := range monitors {
		if m.Primary {
			return m, nil
		}
	}
	if len(monitors) > 0 {
		return monitors[0], nil
	}
	return nil, fmt.Errorf("no monitors detected")
}

// determinePrimaryMonitor marks the monitor at the global origin as primary,
// falling back to the first monitor.
func determinePrimaryMonitor(monitors []*Monitor) {
	for _, monitor := range monitors {
		monitor.Primary = false
	}

	for _, monitor := range monitors {
		if monitor.X == 0 && monitor.Y == 0 {
			monitor.Primary = true
			return
		}
	}

	if len(monitors) > 0 {
		monitors[0].Primary = true
	}
}

func commandAvailable(name string) error {
	if _, err := exec.LookPath(name); err != nil {
		return fmt.Errorf("%s not found in PATH", name)
	}
	return nil
}
