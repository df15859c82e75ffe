package types

import (
	"math"

	"golang.org/x/image/math/f32"
)

// Vector3 is backed by the same memory layout as
// golang.org/x/image/math/f32.Vec3, so it can be indexed by axis
// (0=x, 1=y, 2=z) the way the BVH builder and AABB code need.
type Vector3 f32.Vec3

const floatCmpEpsilon float32 = 1e-8

// XYZ builds a Vector3 from its components.
func XYZ(x, y, z float32) Vector3 {
	return Vector3{x, y, z}
}

func (v Vector3) X() float32 { return v[0] }
func (v Vector3) Y() float32 { return v[1] }
func (v Vector3) Z() float32 { return v[2] }

// Add a vector.
func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{v[0] + o[0], v[1] + o[1], v[2] + o[2]}
}

// Subtract a vector.
func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{v[0] - o[0], v[1] - o[1], v[2] - o[2]}
}

// Multiply by a scalar.
func (v Vector3) Mul(s float32) Vector3 {
	return Vector3{v[0] * s, v[1] * s, v[2] * s}
}

// MulVec multiplies component-wise.
func (v Vector3) MulVec(o Vector3) Vector3 {
	return Vector3{v[0] * o[0], v[1] * o[1], v[2] * o[2]}
}

func (v Vector3) Div(s float32) Vector3 {
	return v.Mul(1 / s)
}

func (v Vector3) Negate() Vector3 {
	return Vector3{-v[0], -v[1], -v[2]}
}

// Calculate dot product of 2 vectors.
func (v Vector3) Dot(o Vector3) float32 {
	return v[0]*o[0] + v[1]*o[1] + v[2]*o[2]
}

// Calculate cross product of 2 vectors.
func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{
		v[1]*o[2] - v[2]*o[1],
		v[2]*o[0] - v[0]*o[2],
		v[0]*o[1] - v[1]*o[0],
	}
}

func (v Vector3) LengthSquared() float32 {
	return v.Dot(v)
}

// Get vector length.
func (v Vector3) Length() float32 {
	return float32(math.Sqrt(float64(v.LengthSquared())))
}

// Normalize the vector. Returns the zero vector instead of NaNs when v is
// (near) zero-length.
func (v Vector3) Normalize() Vector3 {
	l := v.Length()
	if l < floatCmpEpsilon {
		return Vector3{}
	}
	return v.Mul(1 / l)
}

// Axis returns the component along the given axis (0=x, 1=y, 2=z).
func (v Vector3) Axis(axis int) float32 {
	return v[axis]
}

// Reciprocal returns the component-wise reciprocal. Used to precompute a
// ray's inverse direction for the AABB slab test; dividing by zero here is
// intentional, it produces the ±Inf the slab test relies on for
// axis-aligned rays.
func (v Vector3) Reciprocal() Vector3 {
	return Vector3{1 / v[0], 1 / v[1], 1 / v[2]}
}

// MinVec3 returns the component-wise minimum of two vectors.
func MinVec3(a, b Vector3) Vector3 {
	out := a
	if b[0] < out[0] {
		out[0] = b[0]
	}
	if b[1] < out[1] {
		out[1] = b[1]
	}
	if b[2] < out[2] {
		out[2] = b[2]
	}
	return out
}

// MaxVec3 returns the component-wise maximum of two vectors.
func MaxVec3(a, b Vector3) Vector3 {
	out := a
	if b[0] > out[0] {
		out[0] = b[0]
	}
	if b[1] > out[1] {
		out[1] = b[1]
	}
	if b[2] > out[2] {
		out[2] = b[2]
	}
	return out
}
