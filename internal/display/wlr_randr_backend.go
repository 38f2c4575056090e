package display

import (
	"encoding/json"
	"fmt"
	"os/exec"

	"github.com/uibridge/uibridge/internal/logger"
)

// wlrRandrBackend enumerates monitors with wlr-randr (wlroots compositors).
type wlrRandrBackend struct{}

func newWlrRandrBackend() (Backend, error) {
	if err := commandAvailable("wlr-randr"); err != nil {
		return nil, err
	}
	return &wlrRandrBackend{}, nil
}

func (w *wlrRandrBackend) GetMonitors() ([]*Monitor, error) {
	output, err := exec.Command("wlr-randr", "--json").Output()
	if err != nil {
		return nil, fmt.Errorf("failed to run wlr-randr: %w", err)
	}

	var outputs []struct {
		Name        string  `json:"name"`
		Enabled     bool    `json:"enabled"`
		Scale       float64 `json:"scale"`
		Primary     bool    `json:"primary"`
		CurrentMode struct {
			Width  int `json:"width"`
			Height int `json:"height"`
		} `json:"current_mode"`
		Position struct {
			X int `json:"x"`
			Y int `json:"y"`
		} `json:"position"`
	}
	if err := json.Unmarshal(output, &outputs); err != nil {
		return nil, fmt.Errorf("failed to parse wlr-randr output: %w", err)
	}

	var monitors []*Monitor
	for i, out := range outputs {
		if !out.Enabled {
			continue
		}
		if out.CurrentMode.Width == 0 || out.CurrentMode.Height == 0 {
			logger.Warnf("skipping monitor %s with invalid dimensions", out.Name)
			continue
		}

		scale := out.Scale
		if scale == 0 {
			scale = 1.0
		}

		monitors = append(monitors, &Monitor{
			ID:      fmt.Sprintf("%d", i),
			Name:    out.Name,
			X:       int32(out.Position.X),
			Y:       int32(out.Position.Y),
			Width:   int32(out.CurrentMode.Width),
			Height:  int32(out.CurrentMode.Height),
			Scale:   scale,
			Primary: out.Primary,
		})
	}

	if len(monitors) == 0 {
		return nil, fmt.Errorf("no active monitors found")
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

func (w *wlrRandrBackend) Close() error {
	return nil
}
