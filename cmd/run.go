package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"

	"github.com/uibridge/uibridge/internal/display"
	"github.com/uibridge/uibridge/internal/eventloop"
	"github.com/uibridge/uibridge/internal/logger"
)

var (
	runInhibit   bool
	runTimeoutMS int
	runCount     int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a demo host loop over the bridge",
	Long: `Drive the blocking-wait bridge the way a host main loop would: wait on
stdin through the bridge, drain captured window events on interruption,
and print readiness otherwise. Interrupt with Ctrl-C.`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().BoolVar(&runInhibit, "inhibit", false, "Inhibit the window system (verbatim pselect passthrough)")
	runCmd.Flags().IntVar(&runTimeoutMS, "timeout", 200, "Per-iteration wait timeout in milliseconds")
	runCmd.Flags().IntVar(&runCount, "count", 0, "Number of iterations (0 = until interrupted)")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	adapter, driver, err := newAdapter()
	if err != nil {
		return err
	}
	defer func() { _ = adapter.Close() }()

	if runInhibit {
		adapter.SetInhibited(true)
	}

	// The input-ready signal must be claimed before the bridge can raise
	// it, otherwise its default disposition terminates the process.
	inputReady := make(chan os.Signal, 1)
	signal.Notify(inputReady, eventloop.InputReadySignal)
	defer signal.Stop(inputReady)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	defer signal.Stop(interrupt)

	if !runInhibit {
		// A display is a startup invariant for interactive operation.
		if err := adapter.OpenDisplayConnection(); err != nil {
			logger.Fatalf("cannot continue without a display: %v", err)
		}

		win, err := driver.CreateWindow(display.WindowOptions{
			Title:   "uibridge",
			Width:   640,
			Height:  480,
			Visible: false,
		})
		if err != nil {
			logger.Fatalf("cannot create a window: %v", err)
		}
		if _, err := adapter.BuildSurfaceFor(win); err != nil {
			logger.Fatalf("cannot continue without a surface: %v", err)
		}
		adapter.WaitForResize(win.ID, 0)

		primary, err := adapter.PrimaryMonitor()
		if err != nil {
			logger.Fatalf("cannot continue without a monitor: %v", err)
		}
		logger.Info("bridge ready",
			"primary", primary.Name,
			"clipboard", adapter.Clipboard().Name())
	}

	stdinFD := int(os.Stdin.Fd())
	timeout := unix.NsecToTimespec((time.Duration(runTimeoutMS) * time.Millisecond).Nanoseconds())

	for i := 0; runCount == 0 || i < runCount; i++ {
		select {
		case <-interrupt:
			logger.Info("interrupted, shutting down")
			return nil
		default:
		}

		var readSet unix.FdSet
		readSet.Zero()
		readSet.Set(stdinFD)
		ts := timeout

		n, err := adapter.Select(stdinFD+1, &readSet, nil, nil, &ts, nil)
		switch {
		case errors.Is(err, unix.EINTR):
			<-inputReady
			for _, ev := range adapter.Buffer().DrainAll() {
				fmt.Printf("event: %s\n", ev)
			}
		case err != nil:
			return fmt.Errorf("bridge select failed: %w", err)
		case n > 0:
			fmt.Printf("descriptors ready: %d\n", n)
			if readSet.IsSet(stdinFD) {
				discardStdin()
			}
		}
	}

	return nil
}

func discardStdin() {
	buf := make([]byte, 4096)
	_, _ = os.Stdin.Read(buf)
}
