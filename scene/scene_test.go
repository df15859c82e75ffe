package scene

import (
	"testing"

	"github.com/lmarchetti/raytracer/types"
)

func TestSceneAddPrimitiveRejectsUnknownMaterial(t *testing.T) {
	s := NewScene()
	err := s.AddSphere(Sphere{Origin: types.XYZ(0, 0, 0), Radius: 1, MaterialIndex: 0})
	if err == nil {
		t.Fatal("expected an error when referencing a material that hasn't been added")
	}
}

func TestSceneAddMeshRejectsDuplicate(t *testing.T) {
	s := NewScene()
	mat := s.AddMaterial(Material{Kind: MaterialSolidColor, Albedo: types.White})
	m := NewTriangleMesh(
		[]types.Vector3{types.XYZ(-1, -1, 0), types.XYZ(1, -1, 0), types.XYZ(0, 1, 0)},
		[]int{0, 1, 2},
		[]types.Vector3{types.XYZ(0, 0, 1)},
		CullNone, mat,
	)

	if err := s.AddMesh(m); err != nil {
		t.Fatal(err)
	}
	if err := s.AddMesh(m); err != ErrPrimitiveAlreadyAdded {
		t.Fatalf("expected ErrPrimitiveAlreadyAdded for a repeat add; got %v", err)
	}
}

func TestSceneClosestHitPicksNearerOfTwoOverlappingSpheres(t *testing.T) {
	s := NewScene()
	mat := s.AddMaterial(Material{Kind: MaterialSolidColor, Albedo: types.White})

	if err := s.AddSphere(Sphere{Origin: types.XYZ(0, 0, -5), Radius: 1, MaterialIndex: mat}); err != nil {
		t.Fatal(err)
	}
	if err := s.AddSphere(Sphere{Origin: types.XYZ(0, 0, -3), Radius: 1, MaterialIndex: mat}); err != nil {
		t.Fatal(err)
	}

	ray := types.NewRay(types.XYZ(0, 0, 0), types.XYZ(0, 0, -1))
	hit := s.ClosestHit(ray)

	if !hit.DidHit {
		t.Fatal("expected ray to hit one of the spheres")
	}
	if !almostEqual(hit.T, 2, 1e-4) {
		t.Fatalf("expected the nearer sphere at t=2 to win; got t=%f", hit.T)
	}
}

func TestSceneDoesHitStopsAtFirstBlocker(t *testing.T) {
	s := NewScene()
	mat := s.AddMaterial(Material{Kind: MaterialSolidColor, Albedo: types.White})
	if err := s.AddPlane(Plane{Origin: types.XYZ(0, -1, 0), Normal: types.XYZ(0, 1, 0), MaterialIndex: mat}); err != nil {
		t.Fatal(err)
	}

	shadowRay := types.NewRay(types.XYZ(0, 5, 0), types.XYZ(0, -1, 0))
	if !s.DoesHit(shadowRay) {
		t.Fatal("expected the shadow ray to be blocked by the plane")
	}

	clearRay := types.NewRay(types.XYZ(0, 5, 0), types.XYZ(1, 0, 0))
	if s.DoesHit(clearRay) {
		t.Fatal("expected a ray parallel to the plane to not be blocked")
	}
}
