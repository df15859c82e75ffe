package scene

import (
	"fmt"

	"github.com/lmarchetti/raytracer/types"
)

// LightingMode selects how the renderer's calculateFinalColor composes n.l, radiance and
// material shade for a hit point.
type LightingMode int

const (
	LightingObservedArea LightingMode = iota
	LightingRadiance
	LightingBRDF
	LightingCombined
)

// Scene owns every piece of geometry, material and light needed to render
// a frame. It is read-only for the duration of a frame: workers only ever
// call ClosestHit/DoesHit concurrently, never mutate it.
type Scene struct {
	Camera *Camera

	Spheres []Sphere
	Planes  []Plane
	Meshes  []*TriangleMesh

	Materials []Material
	Lights    []Light

	Background types.ColorRGB
	Mode       LightingMode
}

func NewScene() *Scene {
	return &Scene{
		Mode: LightingCombined,
	}
}

// AddMaterial appends a material and returns its index for primitives to
// reference.
func (s *Scene) AddMaterial(m Material) int {
	s.Materials = append(s.Materials, m)
	return len(s.Materials) - 1
}

// AddSphere validates the material reference and appends the sphere.
func (s *Scene) AddSphere(sp Sphere) error {
	if err := s.checkMaterial(sp.MaterialIndex); err != nil {
		return err
	}
	s.Spheres = append(s.Spheres, sp)
	return nil
}

// AddPlane validates the material reference and appends the plane.
func (s *Scene) AddPlane(p Plane) error {
	if err := s.checkMaterial(p.MaterialIndex); err != nil {
		return err
	}
	s.Planes = append(s.Planes, p)
	return nil
}

// AddMesh validates the material reference and appends the mesh, rejecting
// the same *TriangleMesh if it has already been added.
func (s *Scene) AddMesh(m *TriangleMesh) error {
	for _, existing := range s.Meshes {
		if existing == m {
			return ErrPrimitiveAlreadyAdded
		}
	}
	if err := s.checkMaterial(m.MaterialIndex); err != nil {
		return err
	}
	s.Meshes = append(s.Meshes, m)
	return nil
}

// AddLight appends a light.
func (s *Scene) AddLight(l Light) {
	s.Lights = append(s.Lights, l)
}

func (s *Scene) checkMaterial(index int) error {
	if index < 0 {
		return ErrNoMaterial
	}
	if index >= len(s.Materials) {
		return fmt.Errorf("%w: index %d (scene has %d materials)", ErrUnknownMaterial, index, len(s.Materials))
	}
	return nil
}

// ClosestHit finds the nearest intersection of ray across every primitive
// in the scene and returns it; the record's DidHit reports whether anything
// was hit.
func (s *Scene) ClosestHit(ray types.Ray) types.HitRecord {
	hit := types.NewHitRecord()

	for _, sp := range s.Spheres {
		intersectSphere(ray, sp, &hit)
		ray.TMax = hit.T
	}
	for _, p := range s.Planes {
		intersectPlane(ray, p, &hit)
		ray.TMax = hit.T
	}
	for _, m := range s.Meshes {
		if m.ClosestHit(ray, &hit) {
			ray.TMax = hit.T
		}
	}

	return hit
}

// DoesHit is the any-hit (shadow) counterpart of ClosestHit: it returns as
// soon as any primitive blocks the ray, never computing a full HitRecord.
func (s *Scene) DoesHit(ray types.Ray) bool {
	probe := types.NewHitRecord()
	for _, sp := range s.Spheres {
		if intersectSphere(ray, sp, &probe) {
			return true
		}
	}
	for _, p := range s.Planes {
		if intersectPlane(ray, p, &probe) {
			return true
		}
	}
	for _, m := range s.Meshes {
		if m.AnyHit(ray) {
			return true
		}
	}
	return false
}
