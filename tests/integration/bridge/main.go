// Integration smoke test for the blocking-wait bridge against the live
// session: establishes a real display connection, enumerates monitors and
// drives a few bridge iterations over stdin. Requires a Wayland or X11
// session; run manually, not under go test.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"golang.org/x/sys/unix"

	"github.com/uibridge/uibridge/internal/event"
	"github.com/uibridge/uibridge/internal/eventloop"
	"github.com/uibridge/uibridge/internal/platform"
)

var (
	iterations = flag.Int("n", 10, "bridge iterations to run")
	timeout    = flag.Duration("t", 200*time.Millisecond, "per-iteration timeout")
)

func main() {
	flag.Parse()

	driver, err := platform.NewNativeDriver()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FAIL: driver: %v\n", err)
		os.Exit(1)
	}

	adapter := eventloop.New(driver, event.NewBuffer())
	defer func() { _ = adapter.Close() }()

	inputReady := make(chan os.Signal, 1)
	signal.Notify(inputReady, eventloop.InputReadySignal)
	defer signal.Stop(inputReady)

	if err := adapter.OpenDisplayConnection(); err != nil {
		fmt.Fprintf(os.Stderr, "FAIL: display connection: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("OK: display connection established")

	monitors, err := adapter.AvailableMonitors()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FAIL: monitors: %v\n", err)
		os.Exit(1)
	}
	primary, err := adapter.PrimaryMonitor()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FAIL: primary monitor: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("OK: %d monitor(s), primary %s\n", len(monitors), primary.Name)

	stdinFD := int(os.Stdin.Fd())
	captured := 0
	for i := 0; i < *iterations; i++ {
		var readSet unix.FdSet
		readSet.Zero()
		readSet.Set(stdinFD)
		ts := unix.NsecToTimespec(timeout.Nanoseconds())

		n, err := adapter.Select(stdinFD+1, &readSet, nil, nil, &ts, nil)
		switch {
		case errors.Is(err, unix.EINTR):
			<-inputReady
			events := adapter.Buffer().DrainAll()
			captured += len(events)
			for _, ev := range events {
				fmt.Printf("  event: %s\n", ev)
			}
		case err != nil:
			fmt.Fprintf(os.Stderr, "FAIL: select: %v\n", err)
			os.Exit(1)
		case n > 0:
			fmt.Printf("  ready descriptors: %d\n", n)
		}
	}

	fmt.Printf("OK: %d iterations, %d events captured\n", *iterations, captured)
}
