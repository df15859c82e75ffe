package types

import (
	"math"
	"testing"
)

func almostEqual(a, b, eps float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}

func vecAlmostEqual(a, b Vector3, eps float32) bool {
	return almostEqual(a[0], b[0], eps) && almostEqual(a[1], b[1], eps) && almostEqual(a[2], b[2], eps)
}

func TestVector3DotCross(t *testing.T) {
	a := XYZ(1, 0, 0)
	b := XYZ(0, 1, 0)

	if d := a.Dot(b); d != 0 {
		t.Fatalf("expected orthogonal vectors to have zero dot product; got %f", d)
	}

	c := a.Cross(b)
	exp := XYZ(0, 0, 1)
	if !vecAlmostEqual(c, exp, 1e-6) {
		t.Fatalf("expected cross product %v; got %v", exp, c)
	}
}

func TestVector3Normalize(t *testing.T) {
	v := XYZ(3, 4, 0)
	n := v.Normalize()
	if !almostEqual(n.Length(), 1, 1e-6) {
		t.Fatalf("expected unit length; got %f", n.Length())
	}

	zero := Vector3{}
	if n := zero.Normalize(); n != (Vector3{}) {
		t.Fatalf("expected normalizing the zero vector to stay zero; got %v", n)
	}
}

func TestVector3Axis(t *testing.T) {
	v := XYZ(1, 2, 3)
	for axis, want := range []float32{1, 2, 3} {
		if got := v.Axis(axis); got != want {
			t.Fatalf("axis %d: expected %f; got %f", axis, want, got)
		}
	}
}

func TestMinMaxVec3(t *testing.T) {
	a := XYZ(1, -1, 3)
	b := XYZ(-2, 4, 2)

	min := MinVec3(a, b)
	if exp := XYZ(-2, -1, 2); !vecAlmostEqual(min, exp, 1e-6) {
		t.Fatalf("expected min %v; got %v", exp, min)
	}

	max := MaxVec3(a, b)
	if exp := XYZ(1, 4, 3); !vecAlmostEqual(max, exp, 1e-6) {
		t.Fatalf("expected max %v; got %v", exp, max)
	}
}

func TestVector3Reciprocal(t *testing.T) {
	v := XYZ(2, 0, -4)
	r := v.Reciprocal()
	if !almostEqual(r[0], 0.5, 1e-6) {
		t.Fatalf("expected reciprocal x to be 0.5; got %f", r[0])
	}
	if !math.IsInf(float64(r[1]), 1) {
		t.Fatalf("expected reciprocal of a zero component to be +Inf; got %f", r[1])
	}
}
