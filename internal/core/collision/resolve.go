package collision

import (
	"math"

	"github.com/hackgame/arena/internal/core/geom"
)

// Grid is the static obstacle lookup the resolver consults.
type Grid interface {
	TileCoordinates(p geom.Vec2) geom.Tile
	// HitboxAt reports the hitbox of the obstacle occupying t, if any.
	HitboxAt(t geom.Tile) (geom.AABB, bool)
}

// Circle is the footprint of a round obstacle on the ground plane.
type Circle struct {
	Center geom.Vec2
	Radius float64
}

// Body is a circular dynamic obstacle.
type Body interface {
	Destroyed() bool
	Footprint() Circle
}

// gridPasses bounds how many faces one step can be stopped against.
const gridPasses = 2

// ResolveAgainstGrid shrinks offset so the destination does not land inside
// the hitbox of the obstacle found at the destination tile. Only the axis of
// the last face crossed is shortened, so movers slide along walls. A mover
// that already starts inside a hitbox is left alone.
func ResolveAgainstGrid(g Grid, pos, offset geom.Vec2) geom.Vec2 {
	for range gridPasses {
		dest := pos.Add(offset)
		box, ok := g.HitboxAt(g.TileCoordinates(dest))
		if !ok || !box.ContainsInclusive(dest) {
			return offset
		}
		next, stopped := stopOutside(box, pos, offset)
		if !stopped {
			return offset
		}
		offset = next
	}
	return offset
}

// stopOutside shortens the component of offset that carried pos through the
// last face of box. Components only shrink toward zero, never flip sign.
func stopOutside(box geom.AABB, pos, offset geom.Vec2) (geom.Vec2, bool) {
	tx, ty := math.Inf(-1), math.Inf(-1)

	switch {
	case offset.X > 0 && pos.X <= box.Min.X:
		tx = (box.Min.X - pos.X) / offset.X
	case offset.X < 0 && pos.X >= box.Max.X:
		tx = (box.Max.X - pos.X) / offset.X
	}
	switch {
	case offset.Y > 0 && pos.Y <= box.Min.Y:
		ty = (box.Min.Y - pos.Y) / offset.Y
	case offset.Y < 0 && pos.Y >= box.Max.Y:
		ty = (box.Max.Y - pos.Y) / offset.Y
	}

	if math.IsInf(tx, -1) && math.IsInf(ty, -1) {
		return offset, false
	}

	if tx >= ty {
		if offset.X > 0 {
			offset.X = math.Max(0, box.Min.X-Epsilon-pos.X)
		} else {
			offset.X = math.Min(0, box.Max.X+Epsilon-pos.X)
		}
	} else {
		if offset.Y > 0 {
			offset.Y = math.Max(0, box.Min.Y-Epsilon-pos.Y)
		} else {
			offset.Y = math.Min(0, box.Max.Y+Epsilon-pos.Y)
		}
	}
	return offset, true
}

// ResolveAgainstCircle stops a mover of half-size pad at the boundary of a
// circular obstacle. Destroyed or nil bodies are ignored. When the distance
// test fires but no contact point exists, offset is returned unchanged.
func ResolveAgainstCircle(body Body, pad float64, pos, offset geom.Vec2) geom.Vec2 {
	if body == nil || body.Destroyed() {
		return offset
	}
	c := body.Footprint()

	dist := c.Radius + pad
	diff := pos.Add(offset).Sub(c.Center)
	if diff.Dot(diff) > dist*dist {
		return offset
	}

	if point, ok := Intersect(pos, offset, c.Center, dist+Epsilon); ok {
		return point.Sub(pos)
	}
	return offset
}

// ResolveMotion applies grid resolution, then each body in turn to the
// already shortened offset. The steps are sequential, not a combined solve.
// The result is never longer than the requested offset.
func ResolveMotion(g Grid, bodies []Body, pad float64, pos, offset geom.Vec2) geom.Vec2 {
	requested := offset.Len()

	if g != nil {
		offset = ResolveAgainstGrid(g, pos, offset)
	}
	for _, b := range bodies {
		offset = ResolveAgainstCircle(b, pad, pos, offset)
	}

	// A contact point may sit up to Epsilon past the segment end.
	if l := offset.Len(); l > requested {
		if requested == 0 {
			return geom.Vec2{}
		}
		offset = offset.Scale(requested / l)
	}
	return offset
}
