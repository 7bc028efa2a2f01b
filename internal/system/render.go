package system

import (
	"time"

	"go.uber.org/zap"

	coresys "github.com/hackgame/arena/internal/core/system"
	"github.com/hackgame/arena/internal/render"
	"github.com/hackgame/arena/internal/world"
)

// RenderSystem presents the flushed level. Phase 4 (Render).
type RenderSystem struct {
	level    *world.Level
	renderer render.Renderer
	control  *Control
	stats    *Stats
	log      *zap.Logger
	failures int
}

func NewRenderSystem(level *world.Level, renderer render.Renderer, control *Control, stats *Stats, log *zap.Logger) *RenderSystem {
	return &RenderSystem{level: level, renderer: renderer, control: control, stats: stats, log: log}
}

func (s *RenderSystem) Phase() coresys.Phase { return coresys.PhaseRender }

func (s *RenderSystem) Update(_ time.Duration) {
	if err := s.renderer.Render(s.level, s.HUD()); err != nil {
		s.failures++
		// Log the first failure and then every 100th; a broken terminal
		// would otherwise flood the log once per frame.
		if s.failures%100 == 1 {
			s.log.Warn("render failed", zap.Error(err), zap.Int("failures", s.failures))
		}
	}
}

// HUD snapshots the status line for the current frame.
func (s *RenderSystem) HUD() render.HUD {
	l := s.level
	hud := render.HUD{
		Frame:    l.State.Frame,
		PlayerHP: hitpoints(l.Player),
		EnemyHP:  hitpoints(l.Enemy),
		Kills:    s.stats.Kills,
		Blocks:   s.stats.Blocks,
		Paused:   s.control.Paused(),
	}
	if l.State.GameEnded() {
		hud.Winner = l.State.Winner()
	}
	return hud
}

func hitpoints(a world.Actor) int32 {
	if a == nil {
		return 0
	}
	return max(a.Hitpoints(), 0)
}
