// Package level turns a parsed level file into a live world.Level.
package level

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/hackgame/arena/internal/core/event"
	"github.com/hackgame/arena/internal/core/geom"
	"github.com/hackgame/arena/internal/data"
	"github.com/hackgame/arena/internal/entity"
	"github.com/hackgame/arena/internal/world"
)

// Entity type tags understood in level files.
const (
	TypePlayer = "Player"
	TypeEnemy  = "Enemy1"
	TypeMinion = "Minion"
)

// Deps carries what the built entities need from the outside.
type Deps struct {
	TileSize  float64
	EnemyFire bool
	Volley    entity.VolleyPattern
	Events    *event.Bus
	Log       *zap.Logger
}

// Build creates the grid, the blocks, the floor and every entity of f, in
// file order. Exactly one Player and at most one Enemy are allowed. On error
// nothing is returned.
func Build(f *data.LevelFile, deps Deps) (*world.Level, error) {
	if deps.Log == nil {
		deps.Log = zap.NewNop()
	}
	if deps.TileSize <= 0 {
		return nil, fmt.Errorf("build %s: tile size %v", f.Name, deps.TileSize)
	}

	grid := world.NewTileGrid(deps.TileSize)
	grid.Allocate(f.Width, f.Height)
	l := world.NewLevel(grid, deps.Events, deps.Log)

	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			t := geom.Tile{X: x, Y: y}
			var b *entity.Block
			switch f.CellAt(x, y) {
			case data.CellBreakable:
				b = entity.NewBreakableBlock(t, deps.TileSize)
			case data.CellUnbreakable:
				b = entity.NewUnbreakableBlock(t, deps.TileSize)
			default:
				continue
			}
			grid.Set(t, b)
			l.Registry.InsertDirect(b)
		}
	}

	l.Registry.InsertDirect(entity.NewPlatform(f.Width, f.Height, deps.TileSize, f.InfinityPlatform))
	if f.InfinityPlatform {
		l.Registry.InsertDirect(entity.NewWalls(f.Width, f.Height, deps.TileSize))
	}

	for i, spec := range f.Entities {
		e, err := newEntity(spec, deps)
		if err != nil {
			return nil, fmt.Errorf("%s: entity %d: %w", f.Name, i, err)
		}
		switch a := e.(type) {
		case *entity.Player:
			if l.Player != nil {
				return nil, fmt.Errorf("%s: %w: more than one %s entity", f.Name, data.ErrInvalidLevel, TypePlayer)
			}
			l.Player = a
		case *entity.Enemy:
			if l.Enemy != nil {
				return nil, fmt.Errorf("%s: %w: more than one %s entity", f.Name, data.ErrInvalidLevel, TypeEnemy)
			}
			l.Enemy = a
		}
		l.Registry.InsertDirect(e)
	}
	if l.Player == nil {
		return nil, fmt.Errorf("%s: %w: no %s entity", f.Name, data.ErrInvalidLevel, TypePlayer)
	}

	deps.Log.Info("level built",
		zap.String("level", f.Name),
		zap.Int("width", f.Width),
		zap.Int("height", f.Height),
		zap.Int("blocks", grid.Occupied()),
		zap.Int("entities", l.Registry.Len()),
	)
	return l, nil
}

func newEntity(spec data.EntitySpec, deps Deps) (world.Entity, error) {
	p := spec.Position()
	pos := geom.Vec3{X: p.X, Y: p.Y, Z: p.Z}.Scale(deps.TileSize)

	switch spec.Type {
	case TypePlayer:
		speed := entity.DefaultPlayerSpeed
		if spec.Speed != nil {
			speed = *spec.Speed
		}
		return entity.NewPlayer(pos, speed), nil
	case TypeEnemy:
		return entity.NewEnemy(pos, deps.EnemyFire, deps.Volley), nil
	case TypeMinion:
		return entity.NewMinion(pos), nil
	}
	return nil, fmt.Errorf("%w: unknown type %q", data.ErrInvalidLevel, spec.Type)
}
