package world

import (
	"go.uber.org/zap"

	"github.com/hackgame/arena/internal/core/collision"
	"github.com/hackgame/arena/internal/core/event"
	"github.com/hackgame/arena/internal/core/geom"
)

// Level is the per-level aggregate handed to every Tick: the registry, the
// tile grid, the unique actors and the frame clock.
type Level struct {
	Registry *Registry
	Grid     *TileGrid
	State    *SimulationState
	Events   *event.Bus

	// Player is always set on a built level. Enemy is optional.
	Player Actor
	Enemy  Actor

	dt  float64
	log *zap.Logger
}

func NewLevel(grid *TileGrid, bus *event.Bus, log *zap.Logger) *Level {
	if log == nil {
		log = zap.NewNop()
	}
	return &Level{
		Registry: NewRegistry(log.Named("registry")),
		Grid:     grid,
		State:    &SimulationState{},
		Events:   bus,
		log:      log,
	}
}

func (l *Level) Logger() *zap.Logger { return l.log }

// DeltaTime is the length of the current frame in seconds.
func (l *Level) DeltaTime() float64 { return l.dt }

func (l *Level) SetDeltaTime(seconds float64) { l.dt = seconds }

// TileCoordinates converts a ground-plane position into a clamped tile.
func (l *Level) TileCoordinates(p geom.Vec2) geom.Tile {
	return l.Grid.TileCoordinates(p)
}

func (l *Level) Add(e Entity)    { l.Registry.Add(e) }
func (l *Level) Remove(e Entity) { l.Registry.Remove(e) }

// Obstacles returns the circular bodies movers must avoid.
func (l *Level) Obstacles() []collision.Body {
	if l.Enemy == nil {
		return nil
	}
	return []collision.Body{l.Enemy}
}

// PlayerAlive reports whether there is a player that has not been destroyed.
func (l *Level) PlayerAlive() bool {
	return l.Player != nil && !l.Player.Destroyed()
}
