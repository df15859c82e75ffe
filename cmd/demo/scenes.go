package main

import (
	"github.com/lmarchetti/raytracer/scene"
	"github.com/lmarchetti/raytracer/types"
)

// buildDefaultScene assembles a small showcase scene: a diffuse floor
// plane, a metallic Cook-Torrance sphere, a Lambert-Phong sphere, and two
// lights, exercising the Lambert, Lambert-Phong and Cook-Torrance shading
// models without requiring an OBJ file.
func buildDefaultScene() *scene.Scene {
	s := scene.NewScene()
	s.Background = types.RGB(0.05, 0.05, 0.08)

	floor := s.AddMaterial(scene.Material{Kind: scene.MaterialLambert, Albedo: types.RGB(0.6, 0.6, 0.6)})
	metal := s.AddMaterial(scene.Material{Kind: scene.MaterialCookTorrance, Albedo: types.RGB(0.9, 0.7, 0.3), Metalness: 1, Roughness: 0.25})
	plastic := s.AddMaterial(scene.Material{Kind: scene.MaterialLambertPhong, Albedo: types.RGB(0.2, 0.4, 0.9), DiffuseReflectance: 0.7, SpecularReflectance: 0.3, Shininess: 32})

	must(s.AddPlane(scene.Plane{Origin: types.XYZ(0, -1, 0), Normal: types.XYZ(0, 1, 0), MaterialIndex: floor}))
	must(s.AddSphere(scene.Sphere{Origin: types.XYZ(-1.5, 0, -5), Radius: 1, MaterialIndex: metal}))
	must(s.AddSphere(scene.Sphere{Origin: types.XYZ(1.5, 0, -5), Radius: 1, MaterialIndex: plastic}))

	s.AddLight(scene.Light{Kind: scene.LightDirectional, Direction: types.XYZ(-0.3, -1, -0.2), Color: types.White, Intensity: 2.5})
	s.AddLight(scene.Light{Kind: scene.LightPoint, Origin: types.XYZ(0, 4, -2), Color: types.RGB(1, 0.9, 0.8), Intensity: 20})

	s.Camera = scene.NewCamera(60)
	s.Camera.Position = types.XYZ(0, 1, 2)
	s.Camera.Update()

	return s
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
