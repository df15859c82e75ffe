package scene

import (
	"testing"

	"github.com/lmarchetti/raytracer/types"
)

func TestIntersectSphereUnitSphere(t *testing.T) {
	sp := Sphere{Origin: types.XYZ(0, 0, 0), Radius: 1, MaterialIndex: 0}
	ray := types.NewRay(types.XYZ(0, 0, 5), types.XYZ(0, 0, -1))

	hit := types.NewHitRecord()
	if !intersectSphere(ray, sp, &hit) {
		t.Fatal("expected ray through the sphere's center to hit")
	}
	if !almostEqual(hit.T, 4, 1e-4) {
		t.Fatalf("expected t=4; got %f", hit.T)
	}
	if !vecAlmostEqual(hit.Normal, types.XYZ(0, 0, 1), 1e-4) {
		t.Fatalf("expected normal (0,0,1); got %v", hit.Normal)
	}
}

func TestIntersectSphereMiss(t *testing.T) {
	sp := Sphere{Origin: types.XYZ(0, 0, 0), Radius: 1, MaterialIndex: 0}
	ray := types.NewRay(types.XYZ(5, 5, 5), types.XYZ(0, 0, -1))

	hit := types.NewHitRecord()
	if intersectSphere(ray, sp, &hit) {
		t.Fatal("expected a ray that misses the sphere to not hit")
	}
}

func TestIntersectPlane(t *testing.T) {
	p := Plane{Origin: types.XYZ(0, 0, 0), Normal: types.XYZ(0, 1, 0), MaterialIndex: 0}
	ray := types.NewRay(types.XYZ(0, 5, 0), types.XYZ(0, -1, 0))

	hit := types.NewHitRecord()
	if !intersectPlane(ray, p, &hit) {
		t.Fatal("expected the ray to hit the plane")
	}
	if !almostEqual(hit.T, 5, 1e-4) {
		t.Fatalf("expected t=5; got %f", hit.T)
	}
}

func TestIntersectPlaneParallelMisses(t *testing.T) {
	p := Plane{Origin: types.XYZ(0, 0, 0), Normal: types.XYZ(0, 1, 0), MaterialIndex: 0}
	ray := types.NewRay(types.XYZ(0, 5, 0), types.XYZ(1, 0, 0))

	hit := types.NewHitRecord()
	if intersectPlane(ray, p, &hit) {
		t.Fatal("expected a ray parallel to the plane to miss")
	}
}

func TestIntersectTriangleFrontFace(t *testing.T) {
	v0, v1, v2 := types.XYZ(-1, -1, 0), types.XYZ(1, -1, 0), types.XYZ(0, 1, 0)
	tri := NewTriangle(v0, v1, v2, CullNone, 0)
	ray := types.NewRay(types.XYZ(0, 0, 5), types.XYZ(0, 0, -1))

	hit := types.NewHitRecord()
	if !intersectTriangle(ray, tri.V0, tri.V1, tri.V2, tri.Normal, tri.CullMode, QueryPrimary, &hit) {
		t.Fatal("expected the ray to hit the triangle")
	}
	if !almostEqual(hit.T, 5, 1e-4) {
		t.Fatalf("expected t=5; got %f", hit.T)
	}
}

func TestIntersectTriangleBackfaceCullAsymmetry(t *testing.T) {
	v0, v1, v2 := types.XYZ(-1, -1, 0), types.XYZ(1, -1, 0), types.XYZ(0, 1, 0)
	tri := NewTriangle(v0, v1, v2, CullBackFace, 0)

	// Approach from behind the triangle (opposite its normal): a primary ray
	// is culled, but a shadow ray from this side is heading for a light on
	// the triangle's front, visible side, so it must still be blocked.
	ray := types.NewRay(types.XYZ(0, 0, -5), types.XYZ(0, 0, 1))

	primaryHit := types.NewHitRecord()
	if intersectTriangle(ray, tri.V0, tri.V1, tri.V2, tri.Normal, tri.CullMode, QueryPrimary, &primaryHit) {
		t.Fatal("expected a back-face-culled primary ray to miss")
	}

	shadowHit := types.NewHitRecord()
	if !intersectTriangle(ray, tri.V0, tri.V1, tri.V2, tri.Normal, tri.CullMode, QueryShadow, &shadowHit) {
		t.Fatal("expected a shadow ray heading for a light on the visible side to hit")
	}
}

func TestIntersectTriangleBackfaceCullShadowComplement(t *testing.T) {
	v0, v1, v2 := types.XYZ(-1, -1, 0), types.XYZ(1, -1, 0), types.XYZ(0, 1, 0)
	tri := NewTriangle(v0, v1, v2, CullBackFace, 0)

	// Approach from the triangle's front, visible side (the side a primary
	// ray would see, opposite the case above). A shadow ray from here heads
	// for a light behind the culled back face, so it must be rejected, or the
	// culled face would cast a shadow onto the front.
	ray := types.NewRay(types.XYZ(0, 0, 5), types.XYZ(0, 0, -1))

	shadowHit := types.NewHitRecord()
	if intersectTriangle(ray, tri.V0, tri.V1, tri.V2, tri.Normal, tri.CullMode, QueryShadow, &shadowHit) {
		t.Fatal("expected a shadow ray heading for a light behind the culled side to miss")
	}
}

func TestIntersectAABB(t *testing.T) {
	min, max := types.XYZ(-1, -1, -1), types.XYZ(1, 1, 1)
	ray := types.NewRay(types.XYZ(0, 0, 5), types.XYZ(0, 0, -1))

	tNear, ok := intersectAABB(ray, min, max)
	if !ok {
		t.Fatal("expected ray to hit the box")
	}
	if !almostEqual(tNear, 4, 1e-4) {
		t.Fatalf("expected tNear=4; got %f", tNear)
	}

	missRay := types.NewRay(types.XYZ(5, 5, 5), types.XYZ(0, 0, -1))
	if _, ok := intersectAABB(missRay, min, max); ok {
		t.Fatal("expected ray to miss the box")
	}
}
