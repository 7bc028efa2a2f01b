package event_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hackgame/arena/internal/core/event"
)

func TestBus_DeliversNextFrame(t *testing.T) {
	bus := event.NewBus()

	var got []event.MatchEnded
	event.Subscribe(bus, func(ev event.MatchEnded) { got = append(got, ev) })

	event.Emit(bus, event.MatchEnded{Winner: "player", Frame: 3})
	assert.Equal(t, 1, bus.Pending())

	bus.DispatchAll()
	assert.Empty(t, got, "events are not visible before the swap")

	bus.SwapBuffers()
	bus.DispatchAll()
	assert.Equal(t, []event.MatchEnded{{Winner: "player", Frame: 3}}, got)
	assert.Zero(t, bus.Pending())

	bus.SwapBuffers()
	bus.DispatchAll()
	assert.Len(t, got, 1, "dispatched events are not replayed")
}

func TestBus_RoutesByType(t *testing.T) {
	bus := event.NewBus()

	var destroyed, blocks int
	event.Subscribe(bus, func(event.EntityDestroyed) { destroyed++ })
	event.Subscribe(bus, func(event.BlockDestroyed) { blocks++ })

	event.Emit(bus, event.EntityDestroyed{Kind: "minion", Enemy: true})
	event.Emit(bus, event.EntityDestroyed{Kind: "enemy-bullet", Enemy: true})
	event.Emit(bus, event.BlockDestroyed{})

	bus.SwapBuffers()
	bus.DispatchAll()
	assert.Equal(t, 2, destroyed)
	assert.Equal(t, 1, blocks)
}

func TestEmit_NilBus(t *testing.T) {
	assert.NotPanics(t, func() {
		event.Emit[event.MatchEnded](nil, event.MatchEnded{})
	})
}
