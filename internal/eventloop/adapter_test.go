package eventloop

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uibridge/uibridge/internal/display"
	"github.com/uibridge/uibridge/internal/event"
	"github.com/uibridge/uibridge/internal/platform"
)

func TestOpenDisplayConnectionIdempotent(t *testing.T) {
	a, _ := newTestBridge(t)

	require.NoError(t, a.OpenDisplayConnection())
	first, err := a.Connection()
	require.NoError(t, err)

	require.NoError(t, a.OpenDisplayConnection())
	second, err := a.Connection()
	require.NoError(t, err)

	assert.Same(t, first, second, "connection identity must be stable")
}

func TestConnectionEstablishedOnFirstDemand(t *testing.T) {
	a, _ := newTestBridge(t)

	conn, err := a.Connection()
	require.NoError(t, err)
	require.NotNil(t, conn)
	assert.Equal(t, display.PlatformMemory, conn.Platform())
}

func TestBuildSurfaceFor(t *testing.T) {
	a, drv := newTestBridge(t)

	win, err := drv.CreateWindow(display.WindowOptions{Width: 640, Height: 480})
	require.NoError(t, err)

	surface, err := a.BuildSurfaceFor(win)
	require.NoError(t, err)

	assert.Equal(t, win.ID, surface.Window())
	w, h := surface.Size()
	assert.Equal(t, int32(640), w)
	assert.Equal(t, int32(480), h)
}

func TestBuildSurfaceForNilWindow(t *testing.T) {
	a, _ := newTestBridge(t)

	_, err := a.BuildSurfaceFor(nil)
	assert.Error(t, err)
}

func TestWaitForResizeReturnsOnMatchingEvent(t *testing.T) {
	a, drv := newTestBridge(t)

	go func() {
		time.Sleep(20 * time.Millisecond)
		drv.Emit(event.Event{Kind: event.KindResized, Window: 2, Width: 800, Height: 600})
	}()

	start := time.Now()
	a.WaitForResize(2, 500*time.Millisecond)

	assert.Less(t, time.Since(start), 400*time.Millisecond)
}

func TestWaitForResizeIgnoresOtherWindows(t *testing.T) {
	a, drv := newTestBridge(t)

	drv.Emit(event.Event{Kind: event.KindResized, Window: 99})

	start := time.Now()
	a.WaitForResize(2, 50*time.Millisecond)

	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}

func TestWaitForResizeDefaultTimeout(t *testing.T) {
	a, _ := newTestBridge(t, WithResizeWait(30*time.Millisecond))

	start := time.Now()
	a.WaitForResize(1, 0)

	elapsed := time.Since(start)
	assert.GreaterOrEqual(t, elapsed, 30*time.Millisecond)
	assert.Less(t, elapsed, time.Second)
}

func TestAvailableMonitorsFreshSnapshot(t *testing.T) {
	drv := platform.NewMemDriver(
		&display.Monitor{ID: "0", Name: "a", Width: 1920, Height: 1080, Primary: true, Scale: 1},
		&display.Monitor{ID: "1", Name: "b", X: 1920, Width: 2560, Height: 1440, Scale: 1},
	)
	a := New(drv, event.NewBuffer())
	t.Cleanup(func() { _ = a.Close() })

	first, err := a.AvailableMonitors()
	require.NoError(t, err)
	require.Len(t, first, 2)

	first[0] = nil // mutating the snapshot must not leak into the driver

	second, err := a.AvailableMonitors()
	require.NoError(t, err)
	require.Len(t, second, 2)
	assert.Equal(t, "a", second[0].Name)
}

func TestPrimaryMonitor(t *testing.T) {
	drv := platform.NewMemDriver(
		&display.Monitor{ID: "0", Name: "left", Width: 1920, Height: 1080, Scale: 1},
		&display.Monitor{ID: "1", Name: "right", X: 1920, Width: 1920, Height: 1080, Primary: true, Scale: 1},
	)
	a := New(drv, event.NewBuffer())
	t.Cleanup(func() { _ = a.Close() })

	primary, err := a.PrimaryMonitor()
	require.NoError(t, err)
	assert.Equal(t, "right", primary.Name)
}

func TestPrimaryMonitorFallsBackToFirst(t *testing.T) {
	drv := platform.NewMemDriver(
		&display.Monitor{ID: "0", Name: "only", Width: 1920, Height: 1080, Scale: 1},
	)
	a := New(drv, event.NewBuffer())
	t.Cleanup(func() { _ = a.Close() })

	primary, err := a.PrimaryMonitor()
	require.NoError(t, err)
	assert.Equal(t, "only", primary.Name)
}

func TestPrimaryMonitorNoMonitors(t *testing.T) {
	drv := platform.NewMemDriver()
	drv.SetMonitors(nil)
	a := New(drv, event.NewBuffer())
	t.Cleanup(func() { _ = a.Close() })

	_, err := a.PrimaryMonitor()
	assert.Error(t, err)
}

func TestClipboardIsProcessSingle(t *testing.T) {
	a, _ := newTestBridge(t, WithClipboardBackend("none"))

	first := a.Clipboard()
	second := a.Clipboard()

	assert.Equal(t, first, second)
	assert.Equal(t, "none", first.Name())
}

func TestWakeSenderCopiesShareTheLoop(t *testing.T) {
	a, _ := newTestBridge(t)

	one := a.WakeChannel()
	two := one // plain value copy

	go func() {
		time.Sleep(10 * time.Millisecond)
		two.Notify(7)
	}()

	r, _ := testPipe(t)
	fd := int(r.Fd())
	set := readSetFor(fd)
	ts := timeoutMS(500)

	n, err := a.Select(fd+1, &set, nil, nil, &ts, nil)
	require.NoError(t, err)
	assert.Equal(t, 7, n)
}

func TestInhibitionFlag(t *testing.T) {
	a, _ := newTestBridge(t)

	assert.False(t, a.Inhibited())
	a.SetInhibited(true)
	assert.True(t, a.Inhibited())
	a.SetInhibited(false)
	assert.False(t, a.Inhibited())
}
