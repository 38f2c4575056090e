// Package event defines the window-system events the bridge captures and
// the buffer that holds them until the host drains it.
package event

import "fmt"

// WindowID identifies the window an event originated from. The zero value
// means the event has no originating window.
type WindowID uint64

// Kind discriminates the event variants.
type Kind int

const (
	KindOther Kind = iota
	KindResized
	KindKeyboardInput
	KindTextInput
	KindModifiersChanged
	KindMouseButton
	KindCursorMoved
	KindFocusChanged
	KindMouseWheel
	KindCloseRequested
	KindWake
)

func (k Kind) String() string {
	switch k {
	case KindResized:
		return "resized"
	case KindKeyboardInput:
		return "keyboard_input"
	case KindTextInput:
		return "text_input"
	case KindModifiersChanged:
		return "modifiers_changed"
	case KindMouseButton:
		return "mouse_button"
	case KindCursorMoved:
		return "cursor_moved"
	case KindFocusChanged:
		return "focus_changed"
	case KindMouseWheel:
		return "mouse_wheel"
	case KindCloseRequested:
		return "close_requested"
	case KindWake:
		return "wake"
	default:
		return "other"
	}
}

// MouseButton identifies which button a KindMouseButton event refers to.
type MouseButton int

const (
	ButtonLeft MouseButton = iota
	ButtonRight
	ButtonMiddle
)

// Modifiers is a bitmask of held modifier keys.
type Modifiers uint32

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModSuper
)

// Event is a single window-system event, owned by value once captured. Only
// the fields relevant to the Kind are populated; everything else stays zero.
type Event struct {
	Kind   Kind
	Window WindowID

	// KindResized
	Width  int32
	Height int32

	// KindKeyboardInput, KindMouseButton
	Keycode uint32
	Button  MouseButton
	Pressed bool

	// KindTextInput
	Text rune

	// KindModifiersChanged
	Modifiers Modifiers

	// KindCursorMoved
	X float64
	Y float64

	// KindFocusChanged
	Focused bool

	// KindMouseWheel
	ScrollX float64
	ScrollY float64

	// KindWake: ready-descriptor count injected through a WakeSender
	Ready int
}

// Qualifies reports whether the event belongs to the set that interrupts a
// bridged wait and lands in the buffer. Wake notifications and unclassified
// toolkit events do not qualify.
func (e Event) Qualifies() bool {
	switch e.Kind {
	case KindResized, KindKeyboardInput, KindTextInput, KindModifiersChanged,
		KindMouseButton, KindCursorMoved, KindFocusChanged, KindMouseWheel,
		KindCloseRequested:
		return true
	}
	return false
}

func (e Event) String() string {
	switch e.Kind {
	case KindResized:
		return fmt.Sprintf("resized window=%d %dx%d", e.Window, e.Width, e.Height)
	case KindCursorMoved:
		return fmt.Sprintf("cursor_moved window=%d (%.1f, %.1f)", e.Window, e.X, e.Y)
	case KindWake:
		return fmt.Sprintf("wake ready=%d", e.Ready)
	default:
		return fmt.Sprintf("%s window=%d", e.Kind, e.Window)
	}
}
