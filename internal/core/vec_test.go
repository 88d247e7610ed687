package core

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func nearVec(a, b Vec2) bool {
	return near(a.X, b.X) && near(a.Y, b.Y)
}

func TestVecArithmetic(t *testing.T) {
	a := V(3, 4)
	b := V(1, -2)

	if got := a.Add(b); got != V(4, 2) {
		t.Errorf("Add() = %v, expected (4, 2)", got)
	}
	if got := a.Sub(b); got != V(2, 6) {
		t.Errorf("Sub() = %v, expected (2, 6)", got)
	}
	if got := a.Scale(0.5); got != V(1.5, 2) {
		t.Errorf("Scale() = %v, expected (1.5, 2)", got)
	}
	if got := a.Len(); got != 5 {
		t.Errorf("Len() = %v, expected 5", got)
	}
	if got := a.LenSq(); got != 25 {
		t.Errorf("LenSq() = %v, expected 25", got)
	}
}

func TestVecNormalize(t *testing.T) {
	tests := []struct {
		name     string
		in       Vec2
		expected Vec2
	}{
		{"axis aligned", V(10, 0), V(1, 0)},
		{"3-4-5", V(3, 4), V(0.6, 0.8)},
		{"negative", V(0, -7), V(0, -1)},
		{"zero vector", V(0, 0), V(0, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.Normalize()
			if !nearVec(got, tc.expected) {
				t.Errorf("Normalize() = %v, expected %v", got, tc.expected)
			}
			if math.IsNaN(got.X) || math.IsNaN(got.Y) {
				t.Errorf("Normalize() produced NaN: %v", got)
			}
		})
	}
}

func TestVecDirectionTo(t *testing.T) {
	from := V(100, 100)

	if got := from.DirectionTo(V(100, 200)); !nearVec(got, V(0, 1)) {
		t.Errorf("DirectionTo() = %v, expected (0, 1)", got)
	}
	if got := from.DirectionTo(from); got != (Vec2{}) {
		t.Errorf("DirectionTo(self) = %v, expected zero vector", got)
	}
}

func TestVecRotateAndAngle(t *testing.T) {
	got := V(1, 0).Rotate(math.Pi / 2)
	if !nearVec(got, V(0, 1)) {
		t.Errorf("Rotate(π/2) = %v, expected (0, 1)", got)
	}
	if a := FromAngle(1.25).Angle(); !near(a, 1.25) {
		t.Errorf("FromAngle(1.25).Angle() = %v, expected 1.25", a)
	}
	if d := V(0, 0).Dist(V(6, 8)); d != 10 {
		t.Errorf("Dist() = %v, expected 10", d)
	}
}

func TestFieldWrap(t *testing.T) {
	f := Field{W: 1200, H: 900}

	tests := []struct {
		name     string
		in       Vec2
		margin   float64
		expected Vec2
	}{
		{"inside untouched", V(600, 450), 0, V(600, 450)},
		{"left edge exact", V(0, 10), 0, V(0, 10)},
		{"past left", V(-0.5, 10), 0, V(1200, 10)},
		{"past right", V(1200.1, 10), 0, V(0, 10)},
		{"past top", V(10, -1), 0, V(10, 900)},
		{"past bottom", V(10, 901), 0, V(10, 0)},
		{"inside margin kept", V(-30, 10), 45, V(-30, 10)},
		{"past margin left", V(-46, 10), 45, V(1245, 10)},
		{"past margin right", V(1246, 10), 45, V(-45, 10)},
		{"both axes", V(-50, 950), 45, V(1245, -45)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := f.Wrap(tc.in, tc.margin)
			if got != tc.expected {
				t.Errorf("Wrap(%v, %v) = %v, expected %v", tc.in, tc.margin, got, tc.expected)
			}
			if !f.Contains(got, tc.margin) {
				t.Errorf("Wrap(%v, %v) = %v lies outside the margin band", tc.in, tc.margin, got)
			}
		})
	}
}

func TestFieldWrapInvariantAtAnyVelocity(t *testing.T) {
	f := Field{W: 200, H: 100}
	velocities := []Vec2{V(7, 0), V(-13, 3), V(0.3, -9), V(199, 99)}

	for _, vel := range velocities {
		for _, margin := range []float64{0, 15, 45} {
			p := f.Center()
			for i := 0; i < 500; i++ {
				p = f.Wrap(p.Add(vel), margin)
				if !f.Contains(p, margin) {
					t.Fatalf("vel=%v margin=%v tick=%d: position %v escaped the field", vel, margin, i, p)
				}
			}
		}
	}
}

func TestCirclesCollide(t *testing.T) {
	tests := []struct {
		name     string
		a        Vec2
		ra       float64
		b        Vec2
		rb       float64
		expected bool
	}{
		{"same center", V(100, 100), 45, V(100, 100), 3, true},
		{"overlapping", V(0, 0), 5, V(8, 0), 5, true},
		{"touching", V(0, 0), 5, V(10, 0), 5, false},
		{"apart", V(0, 0), 5, V(20, 20), 5, false},
		{"diagonal overlap", V(0, 0), 3, V(3, 4), 2.5, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CirclesCollide(tc.a, tc.ra, tc.b, tc.rb); got != tc.expected {
				t.Errorf("CirclesCollide() = %v, expected %v", got, tc.expected)
			}
			if got := CirclesCollide(tc.b, tc.rb, tc.a, tc.ra); got != tc.expected {
				t.Errorf("CirclesCollide() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		in, expected float64
	}{
		{0, 0},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{5 * math.Pi, math.Pi},
	}
	for _, tc := range tests {
		if got := NormalizeAngle(tc.in); !near(got, tc.expected) {
			t.Errorf("NormalizeAngle(%v) = %v, expected %v", tc.in, got, tc.expected)
		}
	}
}
