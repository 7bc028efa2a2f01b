package event

import (
	"github.com/hackgame/arena/internal/core/ecs"
	"github.com/hackgame/arena/internal/core/geom"
)

// EntityDestroyed fires when a damageable entity's hitpoints reach zero.
// ID is zero when the entity was destroyed before it ever went live.
type EntityDestroyed struct {
	ID    ecs.EntityID
	Kind  string
	Enemy bool
	Frame uint64
}

// BlockDestroyed fires when a breakable block leaves the grid.
type BlockDestroyed struct {
	Tile  geom.Tile
	Frame uint64
}

// MatchEnded fires once, when the end-of-game gate opens.
type MatchEnded struct {
	Winner string
	Frame  uint64
}
