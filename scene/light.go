package scene

import "github.com/lmarchetti/raytracer/types"

// LightKind tags whether a Light behaves as a point source with
// inverse-square falloff or a directional source with constant radiance.
type LightKind int

const (
	LightPoint LightKind = iota
	LightDirectional
)

type Light struct {
	Kind LightKind
	// Origin is the light's position, used only when Kind is LightPoint.
	Origin types.Vector3
	// Direction is the direction the light travels (e.g. sunlight pointing
	// down has a negative Y component), used only when Kind is
	// LightDirectional. DirectionToLight returns its negation.
	Direction types.Vector3
	Color     types.ColorRGB
	Intensity float32
}

// DirectionToLight returns the unit direction from point p toward the light,
// and the distance to travel along it before reaching the light (1e30, an
// effectively infinite distance, for a directional light).
func (l Light) DirectionToLight(p types.Vector3) (types.Vector3, float32) {
	if l.Kind == LightDirectional {
		return l.Direction.Negate().Normalize(), float32(inf)
	}
	toLight := l.Origin.Sub(p)
	dist := toLight.Length()
	if dist < 1e-8 {
		return types.Vector3{}, 0
	}
	return toLight.Mul(1 / dist), dist
}

// Radiance returns the light's contribution at distance dist: constant for
// a directional light, attenuated by inverse-square falloff for a point
// light.
func (l Light) Radiance(dist float32) types.ColorRGB {
	if l.Kind == LightDirectional {
		return l.Color.Mul(l.Intensity)
	}
	return l.Color.Mul(l.Intensity / (dist * dist))
}

const inf = 1e30
