package geom

// AABB is an axis-aligned box on the ground plane.
type AABB struct {
	Min, Max Vec2
}

// TileBox returns the square covered by tile t.
func TileBox(t Tile, size float64) AABB {
	min := Vec2{float64(t.X) * size, float64(t.Y) * size}
	return AABB{Min: min, Max: min.Add(Vec2{size, size})}
}

// ContainsInclusive treats points on the boundary as inside.
func (b AABB) ContainsInclusive(p Vec2) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

func (b AABB) Center() Vec2 {
	return b.Min.Add(b.Max).Scale(0.5)
}
