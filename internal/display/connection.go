package display

import (
	"fmt"
	"io"
)

// Platform identifies the window system a connection talks to.
type Platform int

const (
	PlatformWayland Platform = iota
	PlatformX11
	PlatformMemory
)

func (p Platform) String() string {
	switch p {
	case PlatformWayland:
		return "wayland"
	case PlatformX11:
		return "x11"
	default:
		return "memory"
	}
}

// Connection is a native display-server connection. It is established once,
// on first demand, and keeps its identity for the process lifetime.
type Connection struct {
	platform Platform
	socket   string
	conn     io.Closer // underlying transport, nil for in-memory connections
}

// NewConnection wraps an established transport. Drivers call this after
// dialing the display server.
func NewConnection(platform Platform, socket string, conn io.Closer) *Connection {
	return &Connection{platform: platform, socket: socket, conn: conn}
}

// Platform returns the window system this connection belongs to.
func (c *Connection) Platform() Platform {
	return c.platform
}

// Socket returns the display-server socket path, if any.
func (c *Connection) Socket() string {
	return c.socket
}

// CreateGraphicsAdapter selects a hardware adapter reachable through this
// connection.
func (c *Connection) CreateGraphicsAdapter() (*GraphicsAdapter, error) {
	if c == nil {
		return nil, fmt.Errorf("no display connection")
	}
	return &GraphicsAdapter{conn: c}, nil
}

// CreateNativeWidget binds a toolkit window to a native widget handle that
// a surface can be attached to.
func (c *Connection) CreateNativeWidget(w *Window) (*NativeWidget, error) {
	if c == nil {
		return nil, fmt.Errorf("no display connection")
	}
	if w == nil {
		return nil, fmt.Errorf("nil window")
	}
	return &NativeWidget{window: w.ID, width: w.Width, height: w.Height}, nil
}

// Close releases the underlying transport. Only tests call this; in a live
// process the connection outlives everything that uses it.
func (c *Connection) Close() error {
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
