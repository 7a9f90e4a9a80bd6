package core

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func vecEquals(a, b Vec3, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol &&
		math.Abs(a.Y-b.Y) <= tol &&
		math.Abs(a.Z-b.Z) <= tol
}

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	tests := []struct {
		name     string
		got      Vec3
		expected Vec3
	}{
		{"add", a.Add(b), NewVec3(5, -3, 9)},
		{"subtract", a.Subtract(b), NewVec3(-3, 7, -3)},
		{"multiply scalar", a.Multiply(2), NewVec3(2, 4, 6)},
		{"multiply vec", a.MultiplyVec(b), NewVec3(4, -10, 18)},
		{"negate", a.Negate(), NewVec3(-1, -2, -3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !vecEquals(tt.got, tt.expected, tolerance) {
				t.Errorf("Expected %v, got %v", tt.expected, tt.got)
			}
		})
	}
}

func TestVec3_DotAndCross(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	if dot := a.Dot(b); math.Abs(dot-12.0) > tolerance {
		t.Errorf("Expected dot product 12, got %f", dot)
	}

	cross := NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0))
	if !vecEquals(cross, NewVec3(0, 0, 1), tolerance) {
		t.Errorf("Expected x̂ × ŷ = ẑ, got %v", cross)
	}

	// Cross product is perpendicular to both operands
	c := a.Cross(b)
	if math.Abs(c.Dot(a)) > tolerance || math.Abs(c.Dot(b)) > tolerance {
		t.Errorf("Cross product %v not perpendicular to operands", c)
	}
}

func TestVec3_LengthAndNormalize(t *testing.T) {
	v := NewVec3(3, 4, 0)

	if length := v.Length(); math.Abs(length-5.0) > tolerance {
		t.Errorf("Expected length 5, got %f", length)
	}
	if lsq := v.LengthSquared(); math.Abs(lsq-25.0) > tolerance {
		t.Errorf("Expected squared length 25, got %f", lsq)
	}

	unit := v.Normalize()
	if math.Abs(unit.Length()-1.0) > tolerance {
		t.Errorf("Expected unit length, got %f", unit.Length())
	}
	if !vecEquals(unit, NewVec3(0.6, 0.8, 0), tolerance) {
		t.Errorf("Expected (0.6, 0.8, 0), got %v", unit)
	}

	// Zero vector normalizes to zero rather than NaN
	zero := Vec3{}.Normalize()
	if !vecEquals(zero, Vec3{}, 0) {
		t.Errorf("Expected zero vector, got %v", zero)
	}
}

func TestVec3_Channels(t *testing.T) {
	v := NewVec3(0.1, 0.2, 0.3)

	for i, expected := range []float64{0.1, 0.2, 0.3} {
		if got := v.Channel(i); got != expected {
			t.Errorf("Channel(%d): expected %f, got %f", i, expected, got)
		}
	}

	replaced := Vec3{}.WithChannel(1, 0.7)
	if !vecEquals(replaced, NewVec3(0, 0.7, 0), 0) {
		t.Errorf("Expected (0, 0.7, 0), got %v", replaced)
	}
}
