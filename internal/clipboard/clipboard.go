// Package clipboard provides the platform clipboard capability: a single
// read/write accessor selected lazily for the running session.
package clipboard

import (
	"os"
	"os/exec"

	"github.com/uibridge/uibridge/internal/logger"
)

// Clipboard reads and writes the system clipboard as text.
type Clipboard interface {
	// Name returns a human-readable backend name.
	Name() string

	// ReadText returns the current clipboard contents.
	ReadText() (string, error)

	// WriteText replaces the clipboard contents.
	WriteText(text string) error
}

// New selects a backend for the current session. backend is one of
// "auto", "wayland", "x11" or "none"; "auto" prefers the Wayland tools
// when a Wayland session is detected and falls back to X11. Selection
// never fails — when nothing usable exists the stub backend is returned
// and reads/writes report errors.
func New(backend string) Clipboard {
	switch backend {
	case "wayland":
		if c, err := newWaylandClipboard(); err == nil {
			return c
		}
		logger.Warn("wayland clipboard requested but wl-clipboard is unavailable")
		return stubClipboard{}
	case "x11":
		return x11Clipboard{}
	case "none":
		return stubClipboard{}
	}

	if os.Getenv("WAYLAND_DISPLAY") != "" {
		if c, err := newWaylandClipboard(); err == nil {
			return c
		}
		logger.Debug("wl-clipboard unavailable, falling back to x11 clipboard")
	}
	if os.Getenv("DISPLAY") != "" {
		return x11Clipboard{}
	}
	return stubClipboard{}
}

func commandAvailable(name string) error {
	_, err := exec.LookPath(name)
	return err
}
