package rt

import "math"

// DefaultMaxRecursionDepth is the recursion bound reflected_color and
// refracted_color decrement on each bounce; it is the sole termination
// guarantee for mutually reflective/transparent surfaces.
const DefaultMaxRecursionDepth = 5

// World owns every Object and PointLight in a scene and provides the
// scene-wide intersect, shadow test, and recursive shading evaluator.
// A World is logically immutable during a render: any number of
// render workers may hold shared read-only references to it.
type World struct {
	Objects           []Object
	Lights            []PointLight
	MaxRecursionDepth int
}

// NewWorld returns an empty world with the default recursion depth.
func NewWorld() World {
	return World{MaxRecursionDepth: DefaultMaxRecursionDepth}
}

// DefaultWorld returns the canonical two-sphere, one-light world used
// throughout the test suite: a white light at (-10,10,-10), an outer
// matte sphere (color 0.8,1.0,0.6, diffuse 0.7, specular 0.2), and an
// inner sphere scaled to radius 0.5.
func DefaultWorld() World {
	outer := NewSphere()
	outer.Material = outer.Material.WithColor(Color{0.8, 1.0, 0.6}).WithDiffuse(0.7).WithSpecular(0.2)

	inner := NewSphere().SetTransform(Identity.Scale(0.5, 0.5, 0.5))

	light := NewPointLight(Point(-10, 10, -10), White)

	return NewWorld().WithObjects([]Object{outer, inner}).WithLights([]PointLight{light})
}

// WithObjects sets the world's objects.
func (w World) WithObjects(objects []Object) World { w.Objects = objects; return w }

// WithLights sets the world's lights.
func (w World) WithLights(lights []PointLight) World { w.Lights = lights; return w }

// Intersect intersects ray against every object in the world, pooling
// and returning the (unsorted) union of their Intersections.
func (w *World) Intersect(ray *Ray) Intersections {
	var xs Intersections
	for i := range w.Objects {
		xs = append(xs, w.Objects[i].Intersect(ray)...)
	}
	return xs
}

// ColorAt traces ray through the world, returning black on a miss and
// otherwise the recursively shaded color at the closest hit.
func (w *World) ColorAt(ray *Ray, depth int) Color {
	xs := w.Intersect(ray)
	hit, ok := xs.Hit()
	if !ok {
		return Black
	}
	state := PrepareComputations(hit, ray)
	return w.ShadeHit(state, depth)
}

// ShadeHit combines direct lighting from every light with recursive
// reflection and refraction, mixing the latter two by Schlick
// reflectance when the surface is both reflective and transparent.
func (w *World) ShadeHit(state State, depth int) Color {
	inShadow := false
	if len(w.Lights) > 0 {
		inShadow = w.IsShadowed(state.OverPt)
	}

	surface := Black
	for _, light := range w.Lights {
		objectPoint := state.Object.ToObjectSpace(state.Point)
		surface = surface.Add(state.Object.Material.Lighting(light, objectPoint, state.Point, state.EyeV, state.NormalV, inShadow))
	}

	reflected := w.ReflectedColor(state, depth)
	refracted := w.RefractedColor(state, depth)

	mat := state.Object.Material
	if mat.Reflective > 0 && mat.Transparency > 0 {
		reflectance := state.Schlick()
		return surface.Add(reflected.Scale(reflectance)).Add(refracted.Scale(1 - reflectance))
	}
	return surface.Add(reflected).Add(refracted)
}

// ReflectedColor spawns a mirror-reflection ray from OverPt along
// ReflectV and recurses, or returns black if the material isn't
// reflective or the recursion budget is exhausted. The reflected ray
// inherits the incoming ray's pre-hit index stack: reflection bounces
// back into the same medium the ray was already traveling through,
// rather than starting fresh in vacuum.
func (w *World) ReflectedColor(state State, depth int) Color {
	if state.Object.Material.Reflective == 0 || depth <= 0 {
		return Black
	}
	reflectRay := NewRay(state.OverPt, state.ReflectV)
	reflectRay.indices = append([]float64(nil), state.mediumStack...)
	color := w.ColorAt(reflectRay, depth-1)
	return color.Scale(state.Object.Material.Reflective)
}

// RefractedColor spawns a refraction ray from UnderPt, or returns
// black if the material is opaque, the recursion budget is exhausted,
// or the angle of incidence triggers total internal reflection.
func (w *World) RefractedColor(state State, depth int) Color {
	mat := state.Object.Material
	if mat.Transparency == 0 || depth <= 0 {
		return Black
	}

	nRatio := state.N1 / state.N2
	cosI := state.EyeV.Dot(state.NormalV)
	sin2t := nRatio * nRatio * (1 - cosI*cosI)
	if sin2t > 1.0 {
		return Black
	}

	cosT := math.Sqrt(1 - sin2t)
	direction := state.NormalV.Scale(nRatio*cosI - cosT).Sub(state.EyeV.Scale(nRatio))

	refractRay := NewRay(state.UnderPt, direction)
	refractRay.indices = []float64{state.N2}

	color := w.ColorAt(refractRay, depth-1)
	return color.Scale(mat.Transparency)
}

// IsShadowed casts a ray from point toward the first light only (per
// spec, multi-light shadowing is unspecified) and reports whether
// anything sits between point and the light.
func (w *World) IsShadowed(point Tuple) bool {
	if len(w.Lights) == 0 {
		return false
	}
	toLight := w.Lights[0].Position.Sub(point)
	distance := toLight.Length()
	direction := toLight.Normalize()

	ray := NewRay(point, direction)
	xs := w.Intersect(ray)
	hit, ok := xs.Hit()
	return ok && hit.T < distance
}
