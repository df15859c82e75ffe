package scene

import "github.com/lmarchetti/raytracer/types"

// CullMode controls which side(s) of a triangle are visible to a ray.
// Closest-hit and shadow (any-hit) queries interpret a cull mode
// asymmetrically -- see intersectTriangle in intersect.go.
type CullMode int

const (
	CullBackFace CullMode = iota
	CullFrontFace
	CullNone
)

// Sphere is an analytic sphere primitive.
type Sphere struct {
	Origin        types.Vector3
	Radius        float32
	MaterialIndex int
}

// Plane is an infinite analytic plane primitive.
type Plane struct {
	Origin        types.Vector3
	Normal        types.Vector3
	MaterialIndex int
}

// Triangle is a single analytic triangle, typically addressed indirectly
// through a TriangleMesh rather than constructed standalone.
type Triangle struct {
	V0, V1, V2    types.Vector3
	Normal        types.Vector3
	CullMode      CullMode
	MaterialIndex int
}

// NewTriangle builds a triangle and derives its unit normal from the
// winding of v0,v1,v2.
func NewTriangle(v0, v1, v2 types.Vector3, cull CullMode, materialIndex int) Triangle {
	normal := v1.Sub(v0).Cross(v2.Sub(v0)).Normalize()
	return Triangle{
		V0: v0, V1: v1, V2: v2,
		Normal:        normal,
		CullMode:      cull,
		MaterialIndex: materialIndex,
	}
}
