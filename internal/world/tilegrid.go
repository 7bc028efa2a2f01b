package world

import (
	"math"

	"github.com/hackgame/arena/internal/core/geom"
)

// Obstacle is a static blocker that owns one grid cell.
type Obstacle interface {
	Hitbox() geom.AABB
}

// TileGrid maps tiles to the obstacle occupying them, if any.
// Dimensions are fixed after Allocate; cells empty out as blocks break.
// Accessed only from the game loop goroutine, no locks.
type TileGrid struct {
	cells    []Obstacle // flat array [x * height + y]
	width    int
	height   int
	tileSize float64
}

func NewTileGrid(tileSize float64) *TileGrid {
	return &TileGrid{tileSize: tileSize}
}

// Allocate resets the grid to width × height empty cells.
func (g *TileGrid) Allocate(width, height int) {
	g.width = width
	g.height = height
	g.cells = make([]Obstacle, width*height)
}

func (g *TileGrid) Width() int        { return g.width }
func (g *TileGrid) Height() int       { return g.height }
func (g *TileGrid) TileSize() float64 { return g.tileSize }

func (g *TileGrid) InBounds(t geom.Tile) bool {
	return t.X >= 0 && t.X < g.width && t.Y >= 0 && t.Y < g.height
}

// Extent is the world size of the grid on the ground plane.
func (g *TileGrid) Extent() geom.Vec2 {
	return geom.Vec2{X: float64(g.width) * g.tileSize, Y: float64(g.height) * g.tileSize}
}

func (g *TileGrid) index(t geom.Tile) int {
	return t.X*g.height + t.Y
}

// At returns the obstacle at t, or nil for empty or out-of-range tiles.
func (g *TileGrid) At(t geom.Tile) Obstacle {
	if !g.InBounds(t) {
		return nil
	}
	return g.cells[g.index(t)]
}

// Set places o at t. Out-of-range tiles are ignored.
func (g *TileGrid) Set(t geom.Tile, o Obstacle) {
	if !g.InBounds(t) {
		return
	}
	g.cells[g.index(t)] = o
}

// Clear empties t if it still holds o. Returns whether the cell changed.
func (g *TileGrid) Clear(t geom.Tile, o Obstacle) bool {
	if !g.InBounds(t) || g.cells[g.index(t)] != o {
		return false
	}
	g.cells[g.index(t)] = nil
	return true
}

// TileCoordinates converts a ground-plane position to the tile under it,
// clamped into the grid.
func (g *TileGrid) TileCoordinates(p geom.Vec2) geom.Tile {
	if g.width == 0 || g.height == 0 {
		return geom.Tile{}
	}
	inv := 1 / g.tileSize
	return geom.Tile{
		X: clampTile(p.X*inv, g.width),
		Y: clampTile(p.Y*inv, g.height),
	}
}

// clampTile maps v into [0, n-1]. NaN lands on 0.
func clampTile(v float64, n int) int {
	if math.IsNaN(v) {
		return 0
	}
	return int(geom.Clamp(v, 0, float64(n-1)))
}

// HitboxAt implements collision.Grid.
func (g *TileGrid) HitboxAt(t geom.Tile) (geom.AABB, bool) {
	o := g.At(t)
	if o == nil {
		return geom.AABB{}, false
	}
	return o.Hitbox(), true
}

// Occupied counts non-empty cells.
func (g *TileGrid) Occupied() int {
	n := 0
	for _, c := range g.cells {
		if c != nil {
			n++
		}
	}
	return n
}
