package eventloop

import (
	"time"

	"golang.org/x/sys/unix"
)

// noTimeoutBound caps a nil pselect timeout. A wake or window event still
// ends the wait early; the bound only keeps the pump from parking forever.
const noTimeoutBound = time.Hour

// timespecDuration converts a pselect timeout to a duration. A nil timeout
// means "wait indefinitely" and maps to noTimeoutBound.
func timespecDuration(ts *unix.Timespec) time.Duration {
	if ts == nil {
		return noTimeoutBound
	}
	return time.Duration(ts.Sec)*time.Second + time.Duration(ts.Nsec)*time.Nanosecond
}

// deadlineFrom converts a pselect timeout into an absolute wake time,
// computed fresh per bridge call.
func deadlineFrom(ts *unix.Timespec) time.Time {
	return time.Now().Add(timespecDuration(ts))
}
