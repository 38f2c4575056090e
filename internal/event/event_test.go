package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQualifies(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		want bool
	}{
		{"resized", KindResized, true},
		{"keyboard input", KindKeyboardInput, true},
		{"text input", KindTextInput, true},
		{"modifiers changed", KindModifiersChanged, true},
		{"mouse button", KindMouseButton, true},
		{"cursor moved", KindCursorMoved, true},
		{"focus changed", KindFocusChanged, true},
		{"mouse wheel", KindMouseWheel, true},
		{"close requested", KindCloseRequested, true},
		{"other", KindOther, false},
		{"wake", KindWake, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := Event{Kind: tt.kind}
			assert.Equal(t, tt.want, ev.Qualifies())
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "cursor_moved", KindCursorMoved.String())
	assert.Equal(t, "wake", KindWake.String())
	assert.Equal(t, "other", KindOther.String())
}
