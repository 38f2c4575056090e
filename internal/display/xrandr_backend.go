package display

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// xrandrBackend enumerates monitors with xrandr (X11 and XWayland sessions).
type xrandrBackend struct{}

func newXrandrBackend() (Backend, error) {
	if err := commandAvailable("xrandr"); err != nil {
		return nil, err
	}
	return &xrandrBackend{}, nil
}

func (x *xrandrBackend) GetMonitors() ([]*Monitor, error) {
	output, err := exec.Command("xrandr").Output()
	if err != nil {
		return nil, fmt.Errorf("failed to run xrandr: %w", err)
	}

	var monitors []*Monitor
	for _, line := range strings.Split(string(output), "\n") {
		if !strings.Contains(line, " connected") {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 3 {
			continue
		}

		monitor := &Monitor{
			ID:    parts[0],
			Name:  parts[0],
			Scale: 1.0,
		}

		// Geometry appears as "1920x1080+0+0"; the "primary" keyword may
		// precede it.
		for _, part := range parts[2:] {
			if part == "primary" {
				monitor.Primary = true
				continue
			}
			if w, h, px, py, ok := parseGeometry(part); ok {
				monitor.Width = w
				monitor.Height = h
				monitor.X = px
				monitor.Y = py
				break
			}
		}

		if monitor.Width > 0 && monitor.Height > 0 {
			monitors = append(monitors, monitor)
		}
	}

	if len(monitors) == 0 {
		return nil, fmt.Errorf("no connected monitors found")
	}

	hasPrimary := false
	for _, m := range monitors {
		if m.Primary {
			hasPrimary = true
			break
		}
	}
	if !hasPrimary {
		determinePrimaryMonitor(monitors)
	}

	return monitors, nil
}

func (x *xrandrBackend) Close() error {
	return nil
}

// parseGeometry parses xrandr's "WxH+X+Y" geometry format.
func parseGeometry(s string) (w, h, x, y int32, ok bool) {
	resPos := strings.Split(s, "+")
	if len(resPos) != 3 {
		return 0, 0, 0, 0, false
	}
	res := strings.Split(resPos[0], "x")
	if len(res) != 2 {
		return 0, 0, 0, 0, false
	}

	vals := make([]int, 0, 4)
	for _, part := range []string{res[0], res[1], resPos[1], resPos[2]} {
		v, err := strconv.Atoi(part)
		if err != nil {
			return 0, 0, 0, 0, false
		}
		vals = append(vals, v)
	}
	return int32(vals[0]), int32(vals[1]), int32(vals[2]), int32(vals[3]), true
}
