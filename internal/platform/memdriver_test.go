package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uibridge/uibridge/internal/display"
	"github.com/uibridge/uibridge/internal/event"
)

type recordingSink struct {
	events []event.Event
}

func (s *recordingSink) Post(ev event.Event) {
	s.events = append(s.events, ev)
}

func TestMemDriverWindows(t *testing.T) {
	drv := NewMemDriver()

	w1, err := drv.CreateWindow(display.WindowOptions{Title: "one"})
	require.NoError(t, err)
	w2, err := drv.CreateWindow(display.WindowOptions{Title: "two", Visible: true})
	require.NoError(t, err)

	assert.NotEqual(t, w1.ID, w2.ID)
	assert.Equal(t, w1, drv.Window(w1.ID))
	assert.Nil(t, drv.Window(999))
}

func TestMemDriverConnectionRequiresKnownWindow(t *testing.T) {
	drv := NewMemDriver()

	_, err := drv.OpenConnection(nil)
	assert.Error(t, err)

	_, err = drv.OpenConnection(&display.Window{ID: 42})
	assert.Error(t, err)

	w, err := drv.CreateWindow(display.WindowOptions{})
	require.NoError(t, err)
	conn, err := drv.OpenConnection(w)
	require.NoError(t, err)
	assert.Equal(t, display.PlatformMemory, conn.Platform())
}

func TestMemDriverEmitDeliversToSink(t *testing.T) {
	drv := NewMemDriver()
	sink := &recordingSink{}

	// No sink attached yet: emit must be a safe nop.
	drv.Emit(event.Event{Kind: event.KindResized})

	drv.Attach(sink)
	drv.Emit(event.Event{Kind: event.KindCursorMoved, Window: 3})

	require.Len(t, sink.events, 1)
	assert.Equal(t, event.KindCursorMoved, sink.events[0].Kind)
}

func TestMemDriverDefaultMonitor(t *testing.T) {
	drv := NewMemDriver()

	monitors, err := drv.Monitors()
	require.NoError(t, err)
	require.Len(t, monitors, 1)
	assert.True(t, monitors[0].Primary)
}

func TestMemDriverClosedRejectsWindows(t *testing.T) {
	drv := NewMemDriver()
	require.NoError(t, drv.Close())

	_, err := drv.CreateWindow(display.WindowOptions{})
	assert.Error(t, err)
}

func TestX11SocketPath(t *testing.T) {
	path, err := x11SocketPath(":0")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/.X11-unix/X0", path)

	path, err = x11SocketPath(":1.0")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/.X11-unix/X1", path)

	_, err = x11SocketPath("")
	assert.Error(t, err)

	_, err = x11SocketPath(":")
	assert.Error(t, err)
}
