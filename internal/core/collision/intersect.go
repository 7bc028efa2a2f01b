package collision

import (
	"math"

	"github.com/hackgame/arena/internal/core/geom"
)

// Epsilon widens every bounds test so float rounding on the segment ends
// does not drop a contact.
const Epsilon = 1e-6

// Intersect finds a point where the segment pos→pos+offset meets the circle.
// The root computed with +√D is tried first, then the −√D root; the first one
// inside the segment's bounding box (grown by Epsilon) wins. This is not the
// root closest to pos. ok is false when neither qualifies.
func Intersect(pos, offset, center geom.Vec2, radius float64) (point geom.Vec2, ok bool) {
	cx, cy := center.X, center.Y
	end := pos.Add(offset)

	minX := math.Min(pos.X, end.X) - Epsilon
	minY := math.Min(pos.Y, end.Y) - Epsilon
	maxX := math.Max(pos.X, end.X) + Epsilon
	maxY := math.Max(pos.Y, end.Y) + Epsilon

	inside := func(x, y float64) bool {
		return x >= minX && x <= maxX && y >= minY && y <= maxY
	}

	// Vertical segment: the slope form below would divide by zero, so solve
	// the circle equation for y at x = pos.X.
	if offset.X == 0 {
		const A = 1.0
		B := -2 * cy
		C := (pos.X-cx)*(pos.X-cx) + cy*cy - radius*radius

		D := B*B - 4*A*C
		if D < 0 {
			return geom.Vec2{}, false
		}
		sqrtD := math.Sqrt(D)

		y1 := (-B + sqrtD) / (2 * A)
		y2 := (-B - sqrtD) / (2 * A)

		if inside(pos.X, y1) {
			return geom.Vec2{X: pos.X, Y: y1}, true
		}
		if inside(pos.X, y2) {
			return geom.Vec2{X: pos.X, Y: y2}, true
		}
		return geom.Vec2{}, false
	}

	a := offset.Y / offset.X
	b := pos.Y - a*pos.X

	A := a*a + 1
	B := 2 * (a*(b-cy) - cx)
	C := (b-cy)*(b-cy) + cx*cx - radius*radius

	D := B*B - 4*A*C
	if D < 0 {
		return geom.Vec2{}, false
	}
	sqrtD := math.Sqrt(D)

	x1 := (-B + sqrtD) / (2 * A)
	x2 := (-B - sqrtD) / (2 * A)
	y1 := a*x1 + b
	y2 := a*x2 + b

	if inside(x1, y1) {
		return geom.Vec2{X: x1, Y: y1}, true
	}
	if x1 != x2 && inside(x2, y2) {
		return geom.Vec2{X: x2, Y: y2}, true
	}
	return geom.Vec2{}, false
}
