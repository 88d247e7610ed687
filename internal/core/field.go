package core

// Field is the fixed-size rectangular play-field.
// Entities leaving one edge re-enter from the opposite one.
type Field struct {
	W, H float64
}

// Center returns the middle of the field.
func (f Field) Center() Vec2 {
	return Vec2{X: f.W / 2, Y: f.H / 2}
}

// Wrap applies toroidal wrap to p with the given margin.
// Each axis is handled independently: a coordinate below -margin jumps to
// dim+margin and one above dim+margin jumps to -margin.
func (f Field) Wrap(p Vec2, margin float64) Vec2 {
	p.X = wrapAxis(p.X, f.W, margin)
	p.Y = wrapAxis(p.Y, f.H, margin)
	return p
}

func wrapAxis(v, dim, margin float64) float64 {
	if v < -margin {
		return dim + margin
	}
	if v > dim+margin {
		return -margin
	}
	return v
}

// Contains reports whether p lies within [-margin, dim+margin] on both axes.
func (f Field) Contains(p Vec2, margin float64) bool {
	return p.X >= -margin && p.X <= f.W+margin &&
		p.Y >= -margin && p.Y <= f.H+margin
}

// CirclesCollide reports whether two circles intersect.
// Touching circles (distance equal to the radius sum) do not collide.
func CirclesCollide(a Vec2, ra float64, b Vec2, rb float64) bool {
	r := ra + rb
	return b.Sub(a).LenSq() < r*r
}
