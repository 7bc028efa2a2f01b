package system

import (
	"context"
	"time"

	"go.uber.org/zap"

	coresys "github.com/hackgame/arena/internal/core/system"
	"github.com/hackgame/arena/internal/persist"
	"github.com/hackgame/arena/internal/world"
)

// MatchStore records finished matches.
type MatchStore interface {
	Save(ctx context.Context, row *persist.MatchRow) error
}

const saveTimeout = 5 * time.Second

// PersistenceSystem writes the match record once the end event has been
// dispatched, so the tallies include the final frame. Phase 5 (Persist).
type PersistenceSystem struct {
	level     *world.Level
	store     MatchStore
	stats     *Stats
	levelName string
	started   time.Time
	saved     bool
	log       *zap.Logger
}

func NewPersistenceSystem(level *world.Level, store MatchStore, stats *Stats, levelName string, log *zap.Logger) *PersistenceSystem {
	return &PersistenceSystem{
		level:     level,
		store:     store,
		stats:     stats,
		levelName: levelName,
		started:   time.Now(),
		log:       log,
	}
}

func (s *PersistenceSystem) Phase() coresys.Phase { return coresys.PhasePersist }

func (s *PersistenceSystem) Update(_ time.Duration) {
	if s.saved || !s.stats.Ended {
		return
	}
	s.save(s.stats.Winner)
}

// Saved reports whether the match record has been written.
func (s *PersistenceSystem) Saved() bool { return s.saved }

// SaveUnfinished records a match cut short by shutdown. No-op once saved.
func (s *PersistenceSystem) SaveUnfinished() {
	if s.saved {
		return
	}
	s.save(s.stats.Winner)
}

func (s *PersistenceSystem) save(winner string) {
	s.saved = true
	if s.store == nil {
		return
	}
	now := time.Now()
	row := &persist.MatchRow{
		Level:           s.levelName,
		Winner:          winner,
		Frames:          s.level.State.Frame,
		Duration:        now.Sub(s.started),
		PlayerHP:        hitpoints(s.level.Player),
		EnemyHP:         hitpoints(s.level.Enemy),
		Kills:           s.stats.Kills,
		BlocksDestroyed: s.stats.Blocks,
		StartedAt:       s.started,
		EndedAt:         now,
	}

	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()
	if err := s.store.Save(ctx, row); err != nil {
		s.log.Error("match save failed", zap.Error(err))
		return
	}
	s.log.Info("match saved",
		zap.String("id", row.ID.String()),
		zap.String("winner", winner),
		zap.Uint64("frames", row.Frames),
	)
}
