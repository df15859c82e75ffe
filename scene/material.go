package scene

import (
	"math"

	"github.com/lmarchetti/raytracer/types"
)

// MaterialKind tags which shading model a Material evaluates. Materials are
// a flat tagged union rather than an interface+vtable hierarchy, matching
// the way this codebase favors small concrete structs dispatched on a kind
// field over polymorphism when the set of variants is fixed and small.
type MaterialKind int

const (
	MaterialSolidColor MaterialKind = iota
	MaterialLambert
	MaterialLambertPhong
	MaterialCookTorrance
)

// Material holds the union of fields every shading model needs; only the
// fields relevant to Kind are meaningful.
type Material struct {
	Kind MaterialKind

	Albedo types.ColorRGB

	// LambertPhong
	DiffuseReflectance  float32
	SpecularReflectance float32
	Shininess           float32

	// CookTorrance
	Metalness float32
	Roughness float32
}

// Shade evaluates the material's BRDF (or, for MaterialSolidColor, ignores
// lighting entirely) given the unit normal n, the unit light direction l and
// the unit view direction v, all pointing away from the shaded point.
func (mat Material) Shade(n, l, v types.Vector3) types.ColorRGB {
	switch mat.Kind {
	case MaterialSolidColor:
		return mat.Albedo
	case MaterialLambert:
		return lambert(mat.Albedo)
	case MaterialLambertPhong:
		return lambertPhong(mat, n, l, v)
	case MaterialCookTorrance:
		return cookTorrance(mat, n, l, v)
	default:
		return types.Black
	}
}

// lambert is the classic diffuse-only BRDF: albedo/pi.
func lambert(albedo types.ColorRGB) types.ColorRGB {
	return albedo.Mul(1 / math.Pi)
}

// lambertPhong blends a Lambertian diffuse term with a Phong specular
// lobe, weighted by the material's reflectance coefficients.
func lambertPhong(mat Material, n, l, v types.Vector3) types.ColorRGB {
	diffuse := lambert(mat.Albedo).Mul(mat.DiffuseReflectance)

	r := reflect(l.Negate(), n)
	specAngle := maxFloat(r.Dot(v), 0)
	specPower := float32(math.Pow(float64(specAngle), float64(mat.Shininess)))
	specular := types.White.Mul(specPower * mat.SpecularReflectance)

	return diffuse.Add(specular)
}

// cookTorrance evaluates the microfacet specular term D*G*F/(4*NdotL*NdotV)
// plus a Lambertian diffuse term scaled by (1-F)*(1-metalness), using a GGX
// normal distribution, Smith-Schlick geometry term, and Fresnel-Schlick
// reflectance.
func cookTorrance(mat Material, n, l, v types.Vector3) types.ColorRGB {
	h := l.Add(v).Normalize()

	nDotL := maxFloat(n.Dot(l), 0)
	nDotV := maxFloat(n.Dot(v), 0)
	nDotH := maxFloat(n.Dot(h), 0)
	vDotH := maxFloat(v.Dot(h), 0)

	if nDotL <= 0 || nDotV <= 0 {
		return types.Black
	}

	alpha := mat.Roughness * mat.Roughness // UE4 squared-roughness convention

	d := ggxDistribution(nDotH, alpha)
	g := smithGeometry(nDotL, nDotV, mat.Roughness)

	f0 := types.White.Mul(0.04).Lerp(mat.Albedo, mat.Metalness)
	f := fresnelSchlick(vDotH, f0)

	specular := f.Mul(d * g / (4*nDotL*nDotV + 1e-7))

	kd := types.White.Sub(f).Mul(1 - mat.Metalness)
	diffuse := lambert(mat.Albedo).MulColor(kd)

	return diffuse.Add(specular)
}

// ggxDistribution is the Trowbridge-Reitz normal distribution function.
func ggxDistribution(nDotH, alpha float32) float32 {
	a2 := alpha * alpha
	d := nDotH*nDotH*(a2-1) + 1
	return a2 / (math.Pi * d * d)
}

// smithGeometry combines Schlick-GGX visibility terms for the light and
// view directions (Smith's method). k is the direct-lighting remapping of
// roughness, (roughness+1)^2/8, not the squared alpha used by the
// distribution term.
func smithGeometry(nDotL, nDotV, roughness float32) float32 {
	k := (roughness + 1) * (roughness + 1) / 8
	return schlickGGX(nDotL, k) * schlickGGX(nDotV, k)
}

func schlickGGX(nDotX, k float32) float32 {
	return nDotX / (nDotX*(1-k) + k)
}

// fresnelSchlick is the Schlick approximation to the Fresnel term.
func fresnelSchlick(cosTheta float32, f0 types.ColorRGB) types.ColorRGB {
	t := float32(math.Pow(float64(1-cosTheta), 5))
	return f0.Add(types.White.Sub(f0).Mul(t))
}

// reflect mirrors d around n, assuming both are unit vectors.
func reflect(d, n types.Vector3) types.Vector3 {
	return d.Sub(n.Mul(2 * d.Dot(n)))
}

func maxFloat(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
