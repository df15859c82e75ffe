package types

import "math"

// DefaultTMin biases ray origins forward just enough to avoid
// self-intersection against the surface a ray was spawned from.
const DefaultTMin float32 = 1e-4

// Ray is a parametric ray: point(t) = Origin + t*Direction. Direction is not
// required to be unit-length for intersection math, but must be unit when
// used as a primary or shadow ray.
type Ray struct {
	Origin    Vector3
	Direction Vector3

	// InverseDirection is the component-wise reciprocal of Direction,
	// precomputed once so the AABB slab test doesn't divide per node.
	InverseDirection Vector3

	TMin float32
	TMax float32
}

// NewRay builds a ray with the default t-window, precomputing the inverse
// direction for slab tests.
func NewRay(origin, direction Vector3) Ray {
	return Ray{
		Origin:           origin,
		Direction:        direction,
		InverseDirection: direction.Reciprocal(),
		TMin:             DefaultTMin,
		TMax:             float32(math.Inf(1)),
	}
}

// PointAt evaluates Origin + t*Direction.
func (r Ray) PointAt(t float32) Vector3 {
	return r.Origin.Add(r.Direction.Mul(t))
}
