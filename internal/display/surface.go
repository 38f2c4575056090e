package display

import (
	"fmt"

	"github.com/uibridge/uibridge/internal/event"
)

// GraphicsAdapter is a hardware adapter selected through a display
// connection.
type GraphicsAdapter struct {
	conn *Connection
}

// NativeWidget is the window-system handle a surface renders into.
type NativeWidget struct {
	window event.WindowID
	width  int32
	height int32
}

// Window returns the toolkit window this widget is bound to.
func (n *NativeWidget) Window() event.WindowID {
	return n.window
}

// Surface is a renderable surface attached to a native widget.
type Surface struct {
	conn    *Connection
	adapter *GraphicsAdapter
	widget  *NativeWidget
}

// NewSurface attaches a surface to the widget through the given connection
// and adapter.
func NewSurface(conn *Connection, adapter *GraphicsAdapter, widget *NativeWidget) (*Surface, error) {
	if conn == nil || adapter == nil || widget == nil {
		return nil, fmt.Errorf("surface requires a connection, adapter and widget")
	}
	return &Surface{conn: conn, adapter: adapter, widget: widget}, nil
}

// Window returns the window the surface renders into.
func (s *Surface) Window() event.WindowID {
	return s.widget.window
}

// Size returns the widget dimensions the surface was created with.
func (s *Surface) Size() (width, height int32) {
	return s.widget.width, s.widget.height
}
