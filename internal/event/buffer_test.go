package event

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferPushDrainOrder(t *testing.T) {
	b := NewBuffer()

	pushed := []Event{
		{Kind: KindResized, Window: 1, Width: 800, Height: 600},
		{Kind: KindCursorMoved, Window: 1, X: 10, Y: 20},
		{Kind: KindKeyboardInput, Window: 2, Keycode: 38, Pressed: true},
	}
	for _, ev := range pushed {
		b.Push(ev)
	}

	require.Equal(t, 3, b.Len())

	drained := b.DrainAll()
	require.Len(t, drained, 3)
	assert.Equal(t, pushed, drained)
	assert.Equal(t, 0, b.Len())
}

func TestBufferDrainEmpty(t *testing.T) {
	b := NewBuffer()
	assert.Nil(t, b.DrainAll())
}

func TestBufferDrainIsAtomic(t *testing.T) {
	b := NewBuffer()
	b.Push(Event{Kind: KindCloseRequested, Window: 7})

	first := b.DrainAll()
	second := b.DrainAll()

	require.Len(t, first, 1)
	assert.Nil(t, second)
}

func TestBufferConcurrentProducers(t *testing.T) {
	b := NewBuffer()

	const producers = 8
	const perProducer = 100

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(id WindowID) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				b.Push(Event{Kind: KindCursorMoved, Window: id})
			}
		}(WindowID(p))
	}
	wg.Wait()

	assert.Equal(t, producers*perProducer, b.Len())
}

func TestBufferPeek(t *testing.T) {
	b := NewBuffer()
	b.Push(Event{Kind: KindFocusChanged, Window: 3, Focused: true})
	b.Push(Event{Kind: KindMouseWheel, Window: 3, ScrollY: -1})

	assert.Equal(t, KindFocusChanged, b.Peek(0).Kind)
	assert.Equal(t, KindMouseWheel, b.Peek(1).Kind)
	assert.Equal(t, 2, b.Len(), "peek must not consume")
}
