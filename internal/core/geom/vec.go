package geom

import "math"

// Vec2 is a point or offset on the ground plane. X maps to world X, Y to world Z.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2        { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2        { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(s float64) Vec2   { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Dot(o Vec2) float64     { return v.X*o.X + v.Y*o.Y }
func (v Vec2) Len() float64           { return math.Hypot(v.X, v.Y) }
func (v Vec2) IsZero() bool           { return v.X == 0 && v.Y == 0 }
func (v Vec2) To3(y float64) Vec3     { return Vec3{v.X, y, v.Y} }
func (v Vec2) Tile(size float64) Vec2 { return Vec2{v.X / size, v.Y / size} }

// Normalize returns the unit vector, or the zero vector for zero input.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Rotate turns v counter-clockwise by angle radians.
func (v Vec2) Rotate(angle float64) Vec2 {
	s, c := math.Sincos(angle)
	return Vec2{v.X*c - v.Y*s, v.X*s + v.Y*c}
}

// Vec3 is a world position. Y is up; entities move on the XZ plane.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Dot(o Vec3) float64   { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// XZ projects the position onto the ground plane.
func (v Vec3) XZ() Vec2 { return Vec2{v.X, v.Z} }

// Tile is an integer grid coordinate.
type Tile struct {
	X, Y int
}

// AngleNormal is the direction horizontal angles are measured from.
var AngleNormal = Vec2{0, 1}

// InsideSphere reports whether point lies in the closed sphere around center.
func InsideSphere(point, center Vec3, radius float64) bool {
	d := point.Sub(center)
	return d.Dot(d) <= radius*radius
}

// HorizontalAngle returns the ground-plane angle from AngleNormal to the
// direction pos→lookAt. NaN when both points project to the same spot.
func HorizontalAngle(pos, lookAt Vec3) float64 {
	d := lookAt.XZ().Sub(pos.XZ())
	if d.IsZero() {
		return math.NaN()
	}
	d = d.Normalize()
	return math.Atan2(AngleNormal.X*d.Y-AngleNormal.Y*d.X, AngleNormal.Dot(d))
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
