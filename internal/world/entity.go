package world

import (
	"github.com/cespare/xxhash/v2"

	"github.com/hackgame/arena/internal/core/collision"
	"github.com/hackgame/arena/internal/core/geom"
)

// BatchKey groups entities that share draw state so the renderer can bind
// it once per group. Entities that switch state mid-draw use NoBatch and are
// drawn one by one.
type BatchKey uint64

const NoBatch BatchKey = 0

// ShaderKey derives the batch key for a named draw program.
func ShaderKey(name string) BatchKey {
	k := BatchKey(xxhash.Sum64String(name))
	if k == NoBatch {
		k = 1
	}
	return k
}

// Canvas is the drawing surface handed to entities by the renderer.
type Canvas interface {
	// Bind selects the draw program for following plots.
	Bind(key BatchKey)
	Plot(pos geom.Vec3, glyph rune)
}

// Entity is anything that lives in the registry.
// BatchKey and Transparent must return the same values for the whole
// lifetime of the entity; they decide its partition once.
type Entity interface {
	Tick(l *Level)
	Draw(c Canvas)
	BatchKey() BatchKey
	Transparent() bool
}

// Positioned entities expose a world position.
type Positioned interface {
	Entity
	Pos() geom.Vec3
}

// Damageable entities carry hitpoints and a side. HasCollision is evaluated
// regardless of hitpoints.
type Damageable interface {
	Entity
	Side() Side
	Hitpoints() int32
	Destroyed() bool
	Invulnerable() bool
	HasCollision(point geom.Vec3) bool
	Damage(l *Level, amount int32)
}

// Actor is a round, positioned, damageable entity: the player and the
// primary enemy. Actors double as circular obstacles for movers.
type Actor interface {
	Damageable
	Pos() geom.Vec3
	Footprint() collision.Circle
}
