package render

import (
	"github.com/hackgame/arena/internal/core/geom"
	"github.com/hackgame/arena/internal/world"
)

// Headless renders nowhere. It counts what would have been drawn, which is
// enough for batch accounting in tests and unattended runs.
type Headless struct {
	Frames  uint64
	Binds   int
	Plots   int
	LastHUD HUD

	frameBinds int
	framePlots int
}

func NewHeadless() *Headless { return &Headless{} }

func (h *Headless) Bind(world.BatchKey)  { h.frameBinds++ }
func (h *Headless) Plot(geom.Vec3, rune) { h.framePlots++ }

func (h *Headless) Render(l *world.Level, hud HUD) error {
	h.frameBinds, h.framePlots = 0, 0
	drawLevel(h, l)
	h.Binds, h.Plots = h.frameBinds, h.framePlots
	h.LastHUD = hud
	h.Frames++
	return nil
}
