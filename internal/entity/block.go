package entity

import (
	"github.com/hackgame/arena/internal/core/event"
	"github.com/hackgame/arena/internal/core/geom"
	"github.com/hackgame/arena/internal/world"
)

// Block is a static obstacle owning one grid cell. Breakable blocks have one
// hitpoint; unbreakable ones are invulnerable. Blocks are hit through the
// grid, not the target index, so they do not implement world.Damageable.
type Block struct {
	world.Health
	tile geom.Tile
	box  geom.AABB
}

func NewBreakableBlock(t geom.Tile, tileSize float64) *Block {
	return &Block{Health: world.NewHealth(world.SideEnemy, 1), tile: t, box: geom.TileBox(t, tileSize)}
}

func NewUnbreakableBlock(t geom.Tile, tileSize float64) *Block {
	return &Block{Health: world.NewHealth(world.SideEnemy, world.MaxHP), tile: t, box: geom.TileBox(t, tileSize)}
}

func (b *Block) Tile() geom.Tile          { return b.tile }
func (b *Block) Hitbox() geom.AABB        { return b.box }
func (b *Block) Breakable() bool          { return !b.Invulnerable() }
func (b *Block) Tick(*world.Level)        {}
func (b *Block) BatchKey() world.BatchKey { return KeyMain }
func (b *Block) Transparent() bool        { return false }

func (b *Block) Draw(c world.Canvas) {
	glyph := '#'
	if !b.Breakable() {
		glyph = '█'
	}
	c.Plot(b.box.Center().To3(0), glyph)
}

// Damage breaks the block: it leaves the grid at once and the registry at
// the next flush.
func (b *Block) Damage(l *world.Level, amount int32) {
	if !b.Apply(amount) {
		return
	}
	l.Grid.Clear(b.tile, b)
	l.Remove(b)
	event.Emit(l.Events, event.BlockDestroyed{Tile: b.tile, Frame: l.State.Frame})
}

// blockAt returns the block whose hitbox holds p, if any.
func blockAt(l *world.Level, p geom.Vec2) *Block {
	o := l.Grid.At(l.TileCoordinates(p))
	if o == nil || !o.Hitbox().ContainsInclusive(p) {
		return nil
	}
	b, _ := o.(*Block)
	return b
}
