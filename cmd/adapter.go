package cmd

import (
	"fmt"
	"time"

	"github.com/uibridge/uibridge/internal/config"
	"github.com/uibridge/uibridge/internal/event"
	"github.com/uibridge/uibridge/internal/eventloop"
	"github.com/uibridge/uibridge/internal/platform"
)

var driverName string

func init() {
	rootCmd.PersistentFlags().StringVar(&driverName, "driver", "native",
		"Window-system driver (native, mem)")
}

// newAdapter builds the process adapter from config and flags. The caller
// owns it for the process lifetime and is responsible for Close.
func newAdapter() (*eventloop.Adapter, platform.Driver, error) {
	var (
		driver platform.Driver
		err    error
	)
	switch driverName {
	case "native":
		driver, err = platform.NewNativeDriver()
		if err != nil {
			return nil, nil, err
		}
	case "mem":
		driver = platform.NewMemDriver()
	default:
		return nil, nil, fmt.Errorf("unknown driver %q", driverName)
	}

	cfg := config.Get()
	adapter := eventloop.New(driver, event.NewBuffer(),
		eventloop.WithAntiSpinSleep(time.Duration(cfg.Bridge.AntiSpinSleepMS)*time.Millisecond),
		eventloop.WithResizeWait(time.Duration(cfg.Bridge.ResizeWaitMS)*time.Millisecond),
		eventloop.WithInhibited(cfg.Bridge.Inhibit),
		eventloop.WithClipboardBackend(cfg.Clipboard.Backend),
	)
	return adapter, driver, nil
}
