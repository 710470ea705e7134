package core

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestVec2Arithmetic(t *testing.T) {
	a := Vec2{X: 3, Y: 4}
	b := Vec2{X: -1, Y: 2}

	sum := a.Add(b)
	if sum.X != 2 || sum.Y != 6 {
		t.Errorf("Add: got %+v, want {2 6}", sum)
	}

	diff := a.Sub(b)
	if diff.X != 4 || diff.Y != 2 {
		t.Errorf("Sub: got %+v, want {4 2}", diff)
	}

	scaled := a.Scale(2)
	if scaled.X != 6 || scaled.Y != 8 {
		t.Errorf("Scale: got %+v, want {6 8}", scaled)
	}

	prod := a.Mul(b)
	if prod.X != -3 || prod.Y != 8 {
		t.Errorf("Mul: got %+v, want {-3 8}", prod)
	}
}

func TestVec2Length(t *testing.T) {
	v := Vec2{X: 3, Y: 4}
	if !almostEqual(v.Length(), 5) {
		t.Errorf("Length: got %f, want 5", v.Length())
	}
	if !almostEqual((Vec2{}).Length(), 0) {
		t.Error("zero vector should have zero length")
	}
}

func TestVec2Distance(t *testing.T) {
	a := Vec2{X: 1, Y: 1}
	b := Vec2{X: 4, Y: 5}
	if !almostEqual(a.Distance(b), 5) {
		t.Errorf("Distance: got %f, want 5", a.Distance(b))
	}
	if !almostEqual(a.Distance(a), 0) {
		t.Error("distance to self should be zero")
	}
}

func TestVec2Normalize(t *testing.T) {
	v := Vec2{X: 0, Y: 10}.Normalize()
	if !almostEqual(v.X, 0) || !almostEqual(v.Y, 1) {
		t.Errorf("Normalize: got %+v, want {0 1}", v)
	}

	zero := Vec2{}.Normalize()
	if zero.X != 0 || zero.Y != 0 {
		t.Errorf("Normalize of zero vector: got %+v, want {0 0}", zero)
	}
}

func TestHeadingVec(t *testing.T) {
	// Rotation 0 faces +Y
	fwd := HeadingVec(0)
	if !almostEqual(fwd.X, 0) || !almostEqual(fwd.Y, 1) {
		t.Errorf("HeadingVec(0): got %+v, want {0 1}", fwd)
	}

	// Quarter turn counterclockwise faces -X
	left := HeadingVec(math.Pi / 2)
	if !almostEqual(left.X, -1) || !almostEqual(left.Y, 0) {
		t.Errorf("HeadingVec(pi/2): got %+v, want {-1 0}", left)
	}

	// Heading is always unit length
	for _, rot := range []float64{0.3, 1.7, -2.4, 9.9} {
		if !almostEqual(HeadingVec(rot).Length(), 1) {
			t.Errorf("HeadingVec(%f) is not unit length", rot)
		}
	}
}

func TestClampF(t *testing.T) {
	if ClampF(5, 0, 3) != 3 {
		t.Error("ClampF should clamp to max")
	}
	if ClampF(-1, 0, 3) != 0 {
		t.Error("ClampF should clamp to min")
	}
	if ClampF(2, 0, 3) != 2 {
		t.Error("ClampF should pass through in-range values")
	}
}
