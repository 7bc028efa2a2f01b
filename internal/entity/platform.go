package entity

import (
	"github.com/hackgame/arena/internal/core/geom"
	"github.com/hackgame/arena/internal/world"
)

// infiniteMargin is how many tiles the infinity platform extends past the grid.
const infiniteMargin = 2

// Platform is the arena floor under the grid.
type Platform struct {
	width, height int
	tileSize      float64
	infinite      bool
}

func NewPlatform(width, height int, tileSize float64, infinite bool) *Platform {
	return &Platform{width: width, height: height, tileSize: tileSize, infinite: infinite}
}

func (p *Platform) Tick(*world.Level)        {}
func (p *Platform) BatchKey() world.BatchKey { return KeyMain }
func (p *Platform) Transparent() bool        { return false }

func (p *Platform) Draw(c world.Canvas) {
	lo, hiX, hiY := 0, p.width, p.height
	if p.infinite {
		lo, hiX, hiY = -infiniteMargin, p.width+infiniteMargin, p.height+infiniteMargin
	}
	for x := lo; x < hiX; x++ {
		for y := lo; y < hiY; y++ {
			center := geom.TileBox(geom.Tile{X: x, Y: y}, p.tileSize).Center()
			c.Plot(center.To3(-p.tileSize), '·')
		}
	}
}

// Walls frame the grid. Only levels with the infinity platform have them.
type Walls struct {
	width, height int
	tileSize      float64
}

func NewWalls(width, height int, tileSize float64) *Walls {
	return &Walls{width: width, height: height, tileSize: tileSize}
}

func (w *Walls) Tick(*world.Level)        {}
func (w *Walls) BatchKey() world.BatchKey { return KeyMain }
func (w *Walls) Transparent() bool        { return false }

func (w *Walls) Draw(c world.Canvas) {
	plot := func(x, y int) {
		center := geom.TileBox(geom.Tile{X: x, Y: y}, w.tileSize).Center()
		c.Plot(center.To3(0), '▒')
	}
	for x := -1; x <= w.width; x++ {
		plot(x, -1)
		plot(x, w.height)
	}
	for y := 0; y < w.height; y++ {
		plot(-1, y)
		plot(w.width, y)
	}
}
