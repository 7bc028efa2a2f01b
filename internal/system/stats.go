package system

import (
	"github.com/hackgame/arena/internal/core/event"
)

// Stats tallies destruction events for the HUD and the match record.
type Stats struct {
	Kills  int // enemy-side entities destroyed
	Blocks int // breakable blocks destroyed

	Ended  bool
	Winner string
	Frame  uint64 // frame the match ended on
}

// Subscribe hooks s to bus. Events arrive one frame late, at dispatch.
func (s *Stats) Subscribe(bus *event.Bus) {
	event.Subscribe(bus, func(e event.EntityDestroyed) {
		if e.Enemy {
			s.Kills++
		}
	})
	event.Subscribe(bus, func(event.BlockDestroyed) {
		s.Blocks++
	})
	event.Subscribe(bus, func(e event.MatchEnded) {
		s.Ended = true
		s.Winner = e.Winner
		s.Frame = e.Frame
	})
}
