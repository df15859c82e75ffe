package renderer

import (
	"testing"

	"github.com/lmarchetti/raytracer/scene"
	"github.com/lmarchetti/raytracer/types"
)

func buildLitSphereScene() *scene.Scene {
	s := scene.NewScene()
	mat := s.AddMaterial(scene.Material{Kind: scene.MaterialLambert, Albedo: types.RGB(0.8, 0.8, 0.8)})
	s.AddSphere(scene.Sphere{Origin: types.XYZ(0, 0, -5), Radius: 1, MaterialIndex: mat})
	// Direction is the direction the light travels, so a light shining
	// from in front of the sphere toward the back of the scene has a
	// negative Z component; DirectionToLight (the reverse) then points
	// toward the camera, illuminating the sphere's near face.
	s.AddLight(scene.Light{Kind: scene.LightDirectional, Direction: types.XYZ(0, 0, -1), Color: types.White, Intensity: 3})

	cam := scene.NewCamera(60)
	s.Camera = cam
	return s
}

func TestRenderPixelHitsCenterSphere(t *testing.T) {
	s := buildLitSphereScene()
	opts := DefaultOptions(64, 64)

	c := renderPixel(s, opts, 32, 32)
	if c == types.Black {
		t.Fatal("expected the center pixel, aimed straight at the sphere, to be lit")
	}
}

func TestRenderPixelMissesBackgroundAtCorner(t *testing.T) {
	s := buildLitSphereScene()
	s.Background = types.RGB(0.1, 0.2, 0.3)
	opts := DefaultOptions(64, 64)

	c := renderPixel(s, opts, 0, 0)
	if c != s.Background {
		t.Fatalf("expected a corner ray to miss the sphere and show the background; got %v", c)
	}
}

func TestRenderPixelShadowModeBlocksLight(t *testing.T) {
	// The point light sits off to the side of the sphere's near face, lighting
	// it at an angle. A small occluder is placed on the segment between the
	// hit point and the light, but off the camera ray itself, so it only
	// affects the shadow ray.
	s := scene.NewScene()
	mat := s.AddMaterial(scene.Material{Kind: scene.MaterialLambert, Albedo: types.White})
	s.AddSphere(scene.Sphere{Origin: types.XYZ(0, 0, -5), Radius: 1, MaterialIndex: mat})
	s.AddLight(scene.Light{Kind: scene.LightPoint, Origin: types.XYZ(2, 0, -2), Color: types.White, Intensity: 20})
	s.Camera = scene.NewCamera(60)

	opts := DefaultOptions(64, 64)
	opts.ShadowsEnabled = true

	lit := renderPixel(s, opts, 32, 32)
	if lit == types.Black {
		t.Fatal("expected the sphere's near face to be lit by the unoccluded point light")
	}

	occluderMat := s.AddMaterial(scene.Material{Kind: scene.MaterialLambert, Albedo: types.White})
	if err := s.AddSphere(scene.Sphere{Origin: types.XYZ(1, 0, -3), Radius: 0.4, MaterialIndex: occluderMat}); err != nil {
		t.Fatal(err)
	}

	shadowed := renderPixel(s, opts, 32, 32)
	if shadowed != types.Black {
		t.Fatalf("expected the occluder to fully shadow the sphere's near face; got %v", shadowed)
	}
}
