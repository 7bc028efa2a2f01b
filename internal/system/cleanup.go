package system

import (
	"time"

	"go.uber.org/zap"

	"github.com/hackgame/arena/internal/core/event"
	coresys "github.com/hackgame/arena/internal/core/system"
	"github.com/hackgame/arena/internal/world"
)

// CleanupSystem flushes the registry's staged additions and removals at
// frame end, then announces the match result once the end-of-game gate
// opens. Phase 3 (Cleanup).
type CleanupSystem struct {
	level     *world.Level
	log       *zap.Logger
	announced bool
}

func NewCleanupSystem(level *world.Level, log *zap.Logger) *CleanupSystem {
	return &CleanupSystem{level: level, log: log}
}

func (s *CleanupSystem) Phase() coresys.Phase { return coresys.PhaseCleanup }

func (s *CleanupSystem) Update(_ time.Duration) {
	s.level.Registry.Flush()

	st := s.level.State
	if s.announced || !st.GameEnded() {
		return
	}
	s.announced = true
	event.Emit(s.level.Events, event.MatchEnded{Winner: st.Winner(), Frame: st.Frame})
	s.log.Info("match ended", zap.String("winner", st.Winner()), zap.Uint64("frame", st.Frame))
}
