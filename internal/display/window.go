package display

import "github.com/uibridge/uibridge/internal/event"

// WindowOptions controls window creation.
type WindowOptions struct {
	Title   string
	Width   int32
	Height  int32
	Visible bool
}

// Window is a handle to a toolkit window. The adapter only needs identity
// and geometry; everything else stays with the toolkit.
type Window struct {
	ID      event.WindowID
	Title   string
	Width   int32
	Height  int32
	Visible bool
}
