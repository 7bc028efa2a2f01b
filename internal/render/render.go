// Package render draws a flushed level snapshot. Opaque batches are drawn
// first, then transparent ones, each in batch key order.
package render

import (
	"github.com/hackgame/arena/internal/world"
)

// HUD is the status shown next to the arena.
type HUD struct {
	Frame    uint64
	PlayerHP int32
	EnemyHP  int32
	Kills    int
	Blocks   int
	Paused   bool
	Winner   string
}

// Renderer presents one frame.
type Renderer interface {
	Render(l *world.Level, hud HUD) error
}

// drawLevel binds each batch once and draws its entities in order.
// Entities in the NoBatch group bind for themselves.
func drawLevel(c world.Canvas, l *world.Level) {
	for _, batches := range [2][]world.Batch{l.Registry.Opaque(), l.Registry.Transparent()} {
		for _, b := range batches {
			if b.Key != world.NoBatch {
				c.Bind(b.Key)
			}
			for _, e := range b.Entities {
				e.Draw(c)
			}
		}
	}
}
