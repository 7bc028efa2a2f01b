package system

import (
	"time"

	coresys "github.com/hackgame/arena/internal/core/system"
	"github.com/hackgame/arena/internal/world"
)

// TickSystem runs the tick pass: every live entity ticks once, in partition
// order. Spawns and removals made during the pass stay staged.
// Phase 2 (Update).
type TickSystem struct {
	level *world.Level
}

func NewTickSystem(level *world.Level) *TickSystem {
	return &TickSystem{level: level}
}

func (s *TickSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *TickSystem) Update(dt time.Duration) {
	s.level.State.Frame++
	s.level.SetDeltaTime(dt.Seconds())
	s.level.Registry.Each(func(e world.Entity) {
		e.Tick(s.level)
	})
}
