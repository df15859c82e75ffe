package scene

import (
	"math"

	"github.com/lmarchetti/raytracer/types"
)

// QueryKind distinguishes a primary/reflection ray, which needs the closest
// hit and rejects a triangle's culled face outright, from a shadow ray,
// which only needs a yes/no answer and applies the mirrored half of the
// cull test so single-sided geometry still casts a shadow when the light is
// on its visible side.
type QueryKind int

const (
	QueryPrimary QueryKind = iota
	QueryShadow
)

const shadowBias float32 = 2e-4

// intersectSphere implements the analytic quadratic sphere test.
func intersectSphere(ray types.Ray, s Sphere, hit *types.HitRecord) bool {
	oc := ray.Origin.Sub(s.Origin)
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	disc := b*b - 4*a*c
	if disc < 0 {
		return false
	}

	sq := float32(math.Sqrt(float64(disc)))
	t := (-b - sq) / (2 * a)
	if t < ray.TMin || t > ray.TMax {
		t = (-b + sq) / (2 * a)
		if t < ray.TMin || t > ray.TMax {
			return false
		}
	}

	if t >= hit.T {
		return false
	}

	p := ray.PointAt(t)
	hit.T = t
	hit.Origin = p
	hit.Normal = p.Sub(s.Origin).Mul(1 / s.Radius)
	hit.MaterialIndex = s.MaterialIndex
	hit.DidHit = true
	return true
}

// intersectPlane implements the standard ray/plane test.
func intersectPlane(ray types.Ray, p Plane, hit *types.HitRecord) bool {
	denom := ray.Direction.Dot(p.Normal)
	if denom >= -floatEpsilon && denom <= floatEpsilon {
		return false
	}

	t := p.Origin.Sub(ray.Origin).Dot(p.Normal) / denom
	if t < ray.TMin || t > ray.TMax || t >= hit.T {
		return false
	}

	hit.T = t
	hit.Origin = ray.PointAt(t)
	hit.Normal = p.Normal
	hit.MaterialIndex = p.MaterialIndex
	hit.DidHit = true
	return true
}

const floatEpsilon float32 = 1e-8

// intersectTriangle is the Moller-Trumbore ray/triangle test. For a primary
// ray, cull rejects the face it names outright. For a shadow ray, cull
// instead rejects only the approach direction that would have produced
// that face's culled side, so a single-sided triangle still casts a
// shadow from the side it's actually visible from while still refusing to
// shadow from behind its culled side.
func intersectTriangle(ray types.Ray, v0, v1, v2, normal types.Vector3, cull CullMode, query QueryKind, hit *types.HitRecord) bool {
	edge1 := v1.Sub(v0)
	edge2 := v2.Sub(v0)

	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)
	if a > -floatEpsilon && a < floatEpsilon {
		return false
	}

	switch query {
	case QueryPrimary:
		switch cull {
		case CullBackFace:
			if a < 0 {
				return false
			}
		case CullFrontFace:
			if a > 0 {
				return false
			}
		}
	case QueryShadow:
		switch cull {
		case CullBackFace:
			if a > 0 {
				return false
			}
		case CullFrontFace:
			if a < 0 {
				return false
			}
		}
	}

	f := 1 / a
	s := ray.Origin.Sub(v0)
	u := f * s.Dot(h)
	if u < 0 || u > 1 {
		return false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0 || u+v > 1 {
		return false
	}

	t := f * edge2.Dot(q)
	if t < ray.TMin || t > ray.TMax || t >= hit.T {
		return false
	}

	hit.T = t
	hit.Origin = ray.PointAt(t)
	hit.Normal = normal
	hit.DidHit = true
	return true
}

// intersectAABB is the slab test used during BVH traversal. It returns the
// near intersection distance and whether the ray enters the box before
// ray.TMax and exits after ray.TMin.
func intersectAABB(ray types.Ray, min, max types.Vector3) (float32, bool) {
	tMin, tMax := ray.TMin, ray.TMax

	for axis := 0; axis < 3; axis++ {
		inv := ray.InverseDirection.Axis(axis)
		t1 := (min.Axis(axis) - ray.Origin.Axis(axis)) * inv
		t2 := (max.Axis(axis) - ray.Origin.Axis(axis)) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tMin {
			tMin = t1
		}
		if t2 < tMax {
			tMax = t2
		}
		if tMin > tMax {
			return 0, false
		}
	}

	return tMin, true
}
