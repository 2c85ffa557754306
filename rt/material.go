package rt

import "math"

// Material holds the Phong surface parameters plus an optional
// procedural pattern. All scalars are expected finite; RefractiveIndex
// is typically >= 1.
type Material struct {
	Color           Color
	Pattern         *Pattern
	Ambient         float64
	Diffuse         float64
	Specular        float64
	Shininess       float64
	Reflective      float64
	Transparency    float64
	RefractiveIndex float64
	CastShadow      bool
}

// NewMaterial returns the default material: matte white plastic, fully
// opaque, casting shadows.
func NewMaterial() Material {
	return Material{
		Color:           White,
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200.0,
		Reflective:      0.0,
		Transparency:    0.0,
		RefractiveIndex: 1.0,
		CastShadow:      true,
	}
}

// WithColor sets the base color.
func (m Material) WithColor(c Color) Material { m.Color = c; return m }

// WithPattern attaches a procedural pattern, which takes priority over
// Color when sampling the surface.
func (m Material) WithPattern(p Pattern) Material { m.Pattern = &p; return m }

// WithAmbient sets the ambient coefficient.
func (m Material) WithAmbient(v float64) Material { m.Ambient = v; return m }

// WithDiffuse sets the diffuse coefficient.
func (m Material) WithDiffuse(v float64) Material { m.Diffuse = v; return m }

// WithSpecular sets the specular coefficient.
func (m Material) WithSpecular(v float64) Material { m.Specular = v; return m }

// WithShininess sets the specular exponent.
func (m Material) WithShininess(v float64) Material { m.Shininess = v; return m }

// WithReflective sets the mirror-reflection coefficient.
func (m Material) WithReflective(v float64) Material { m.Reflective = v; return m }

// WithTransparency sets the dielectric transparency coefficient.
func (m Material) WithTransparency(v float64) Material { m.Transparency = v; return m }

// WithRefractiveIndex sets the index of refraction.
func (m Material) WithRefractiveIndex(v float64) Material { m.RefractiveIndex = v; return m }

// WithCastShadow toggles whether lighting() suppresses diffuse/specular
// contribution for points this material determines are in shadow.
func (m Material) WithCastShadow(v bool) Material { m.CastShadow = v; return m }

// Lighting evaluates direct Phong illumination from one point light.
// objectPoint is used for pattern sampling (pattern space is reached
// from object space); worldPoint is used for the light vector. This
// split is intentional: the reference implementation samples the
// pattern in object space but measures the light direction in world
// space, and the test suite depends on the distinction.
func (m Material) Lighting(light PointLight, objectPoint, worldPoint, eyev, normalv Tuple, inShadow bool) Color {
	baseColor := m.Color
	if m.Pattern != nil {
		baseColor = m.Pattern.PatternAt(objectPoint)
	}

	effectiveColor := baseColor.Mul(light.Intensity)
	lightv := light.Position.Sub(worldPoint).Normalize()
	ambient := effectiveColor.Scale(m.Ambient)

	cosLN := lightv.Dot(normalv)
	if cosLN < 0 || (inShadow && m.CastShadow) {
		return ambient
	}

	diffuse := effectiveColor.Scale(m.Diffuse * cosLN)

	reflectv := lightv.Neg().Reflect(normalv)
	cosRE := reflectv.Dot(eyev)

	specular := Black
	if cosRE > 0 {
		factor := math.Pow(cosRE, m.Shininess)
		specular = light.Intensity.Scale(m.Specular * factor)
	}

	return ambient.Add(diffuse).Add(specular)
}
