package renderer

import (
	"math"

	"github.com/lmarchetti/raytracer/scene"
	"github.com/lmarchetti/raytracer/types"
)

// shadowBiasDistance nudges a shadow ray's origin off the surface it was
// spawned from to avoid immediately re-hitting it.
const shadowBiasDistance = 2e-4

// renderPixel computes the final color of pixel (px,py) for a width x
// height frame and the given camera field of view.
func renderPixel(s *scene.Scene, opts Options, px, py uint32) types.ColorRGB {
	width, height := float32(opts.FrameW), float32(opts.FrameH)
	aspect := width / height
	tanHalfFOV := float32(math.Tan(float64(s.Camera.FOV) * math.Pi / 180 / 2))

	cx := (((2*(float32(px)+0.5))/width)-1) * aspect * tanHalfFOV
	cy := (1 - (2*(float32(py)+0.5))/height) * tanHalfFOV

	dir := types.XYZ(cx, cy, 1).Normalize()
	dir = s.Camera.CameraToWorld.TransformVector(dir)

	ray := types.NewRay(s.Camera.Position, dir)
	hit := s.ClosestHit(ray)

	final := s.Background
	if !hit.DidHit {
		return final
	}

	final = types.Black
	mat := s.Materials[hit.MaterialIndex]
	shadowOrigin := hit.Origin.Add(hit.Normal.Mul(shadowBiasDistance))
	viewDir := ray.Direction.Negate()

	for _, light := range s.Lights {
		lightDir, dist := light.DirectionToLight(shadowOrigin)
		observedArea := hit.Normal.Dot(lightDir)

		if opts.ShadowsEnabled {
			shadowRay := types.NewRay(shadowOrigin, lightDir)
			shadowRay.TMax = dist
			if s.DoesHit(shadowRay) {
				continue
			}
		}

		final = final.Add(calculateFinalColor(opts.LightingMode, light, lightDir, dist, observedArea, mat, hit, viewDir))
	}

	return final.MaxToOne()
}

// calculateFinalColor composes a single light's contribution to a hit
// point under one of the four lighting modes.
func calculateFinalColor(mode scene.LightingMode, light scene.Light, lightDir types.Vector3, dist, observedArea float32, mat scene.Material, hit types.HitRecord, viewDir types.Vector3) types.ColorRGB {
	switch mode {
	case scene.LightingObservedArea:
		if observedArea > 0 {
			return types.White.Mul(observedArea)
		}
		return types.Black
	case scene.LightingRadiance:
		return light.Radiance(dist)
	case scene.LightingBRDF:
		return mat.Shade(hit.Normal, lightDir, viewDir)
	default: // LightingCombined
		if observedArea <= 0 {
			return types.Black
		}
		return light.Radiance(dist).MulColor(mat.Shade(hit.Normal, lightDir, viewDir)).Mul(observedArea)
	}
}
