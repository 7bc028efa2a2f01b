package collision_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hackgame/arena/internal/core/collision"
	"github.com/hackgame/arena/internal/core/geom"
)

const tile = 1.0

// fakeGrid is a 4x4 grid of unit tiles with blocks at the listed tiles.
type fakeGrid struct {
	blocked map[geom.Tile]bool
}

func newFakeGrid(tiles ...geom.Tile) *fakeGrid {
	g := &fakeGrid{blocked: make(map[geom.Tile]bool)}
	for _, t := range tiles {
		g.blocked[t] = true
	}
	return g
}

func (g *fakeGrid) TileCoordinates(p geom.Vec2) geom.Tile {
	return geom.Tile{
		X: int(geom.Clamp(p.X/tile, 0, 3)),
		Y: int(geom.Clamp(p.Y/tile, 0, 3)),
	}
}

func (g *fakeGrid) HitboxAt(t geom.Tile) (geom.AABB, bool) {
	if !g.blocked[t] {
		return geom.AABB{}, false
	}
	return geom.TileBox(t, tile), true
}

type fakeBody struct {
	circle    collision.Circle
	destroyed bool
}

func (b *fakeBody) Destroyed() bool             { return b.destroyed }
func (b *fakeBody) Footprint() collision.Circle { return b.circle }

func v(x, y float64) geom.Vec2 { return geom.Vec2{X: x, Y: y} }

func TestIntersect_VerticalTangent(t *testing.T) {
	p, ok := collision.Intersect(v(1, 1), v(0, -2), v(0, 0), 1)
	require.True(t, ok)
	assert.InDelta(t, 1.0, p.X, 1e-12)
	assert.InDelta(t, 0.0, p.Y, 1e-12)
}

func TestIntersect_VerticalMiss(t *testing.T) {
	_, ok := collision.Intersect(v(2, 1), v(0, -2), v(0, 0), 1)
	assert.False(t, ok)
}

func TestIntersect_DiagonalFromCenter(t *testing.T) {
	p, ok := collision.Intersect(v(0, 0), v(1, 1), v(0, 0), 1)
	require.True(t, ok)
	assert.InDelta(t, math.Sqrt(0.5), p.X, 1e-9)
	assert.InDelta(t, math.Sqrt(0.5), p.Y, 1e-9)
}

func TestIntersect_RootsOutsideSegment(t *testing.T) {
	_, ok := collision.Intersect(v(1, 1), v(2, 2), v(0, 0), 1)
	assert.False(t, ok)
}

func TestIntersect_PlusRootFirst(t *testing.T) {
	// Segment crosses the whole circle; both roots lie on it and the +√D
	// root (larger x) is reported even though the other is closer to pos.
	p, ok := collision.Intersect(v(-2, 0), v(4, 0), v(0, 0), 1)
	require.True(t, ok)
	assert.InDelta(t, 1.0, p.X, 1e-12)
	assert.InDelta(t, 0.0, p.Y, 1e-12)
}

func TestIntersect_FallsBackToMinusRoot(t *testing.T) {
	p, ok := collision.Intersect(v(-2, 0), v(1.5, 0), v(0, 0), 1)
	require.True(t, ok)
	assert.InDelta(t, -1.0, p.X, 1e-12)
}

func TestIntersect_EpsilonTolerance(t *testing.T) {
	// Segment ends a hair short of the circle; Epsilon still admits it.
	p, ok := collision.Intersect(v(-2, 0), v(1-5e-7, 0), v(0, 0), 1)
	require.True(t, ok)
	assert.InDelta(t, -1.0, p.X, 1e-12)

	_, ok = collision.Intersect(v(-2, 0), v(1-1e-3, 0), v(0, 0), 1)
	assert.False(t, ok)
}

func TestResolveAgainstGrid_NoObstacle(t *testing.T) {
	g := newFakeGrid()
	got := collision.ResolveAgainstGrid(g, v(0.5, 0.5), v(1, 0))
	assert.Equal(t, v(1, 0), got)
}

func TestResolveAgainstGrid_StopsAtFace(t *testing.T) {
	g := newFakeGrid(geom.Tile{X: 1, Y: 0})
	got := collision.ResolveAgainstGrid(g, v(0.5, 0.5), v(0.8, 0))

	dest := v(0.5, 0.5).Add(got)
	assert.Less(t, dest.X, 1.0)
	assert.InDelta(t, 1.0, dest.X, 1e-5)
	assert.Equal(t, 0.0, got.Y)
}

func TestResolveAgainstGrid_SlidesAlongWall(t *testing.T) {
	g := newFakeGrid(geom.Tile{X: 1, Y: 1})
	// Enters tile (1,1) through its left face while moving down.
	pos := v(0.9, 1.2)
	got := collision.ResolveAgainstGrid(g, pos, v(0.3, 0.3))

	dest := pos.Add(got)
	assert.Less(t, dest.X, 1.0)
	assert.InDelta(t, 1.5, dest.Y, 1e-12)
}

func TestResolveAgainstGrid_StartsInsideIsLeftAlone(t *testing.T) {
	g := newFakeGrid(geom.Tile{X: 1, Y: 1})
	got := collision.ResolveAgainstGrid(g, v(1.5, 1.5), v(0.1, 0))
	assert.Equal(t, v(0.1, 0), got)
}

func TestResolveAgainstCircle_StopsOnBoundary(t *testing.T) {
	body := &fakeBody{circle: collision.Circle{Center: v(0, 0), Radius: 0.5}}
	pos := v(-2, 0)
	got := collision.ResolveAgainstCircle(body, 0.1, pos, v(1.8, 0))

	dest := pos.Add(got)
	assert.InDelta(t, -0.6, dest.X, 1e-5)
	assert.InDelta(t, 0, dest.Y, 1e-12)
}

func TestResolveAgainstCircle_DestroyedIgnored(t *testing.T) {
	body := &fakeBody{circle: collision.Circle{Radius: 0.5}, destroyed: true}
	got := collision.ResolveAgainstCircle(body, 0.1, v(-2, 0), v(1.8, 0))
	assert.Equal(t, v(1.8, 0), got)

	got = collision.ResolveAgainstCircle(nil, 0.1, v(-2, 0), v(1.8, 0))
	assert.Equal(t, v(1.8, 0), got)
}

func TestResolveAgainstCircle_FarAwayUnchanged(t *testing.T) {
	body := &fakeBody{circle: collision.Circle{Center: v(5, 5), Radius: 0.5}}
	got := collision.ResolveAgainstCircle(body, 0.1, v(0, 0), v(1, 0))
	assert.Equal(t, v(1, 0), got)
}

func TestResolveMotion_GridThenCircle(t *testing.T) {
	g := newFakeGrid(geom.Tile{X: 2, Y: 0})
	body := &fakeBody{circle: collision.Circle{Center: v(1.85, 0.5), Radius: 0.2}}
	pos := v(0.5, 0.5)

	// The grid stops the mover just short of x=2, which is within reach of
	// the body; the circle step then pulls it back to the body's near side.
	got := collision.ResolveMotion(g, []collision.Body{body}, 0.05, pos, v(2, 0))
	dest := pos.Add(got)
	assert.InDelta(t, 1.6, dest.X, 1e-5)
}

func TestResolveMotion_NeverLengthens(t *testing.T) {
	g := newFakeGrid(geom.Tile{X: 1, Y: 1}, geom.Tile{X: 2, Y: 2}, geom.Tile{X: 0, Y: 3})
	bodies := []collision.Body{
		&fakeBody{circle: collision.Circle{Center: v(2.5, 0.5), Radius: 0.3}},
		&fakeBody{circle: collision.Circle{Center: v(0.5, 2.5), Radius: 0.4}},
	}

	for i := 0; i < 400; i++ {
		angle := float64(i) * 0.05
		pos := v(0.2+float64(i%7)*0.5, 0.3+float64(i%5)*0.6)
		offset := v(math.Cos(angle), math.Sin(angle)).Scale(0.1 + float64(i%9)*0.2)

		got := collision.ResolveMotion(g, bodies, 0.05, pos, offset)
		assert.LessOrEqual(t, got.Len(), offset.Len()+1e-12, "pos=%v offset=%v", pos, offset)
	}
}
