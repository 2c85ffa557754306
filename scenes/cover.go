package scenes

import "github.com/whitted/raytracer/rt"

// Cover builds a reflective checkered floor with a glass sphere and a
// half-transparent sphere floating above it, lit from one corner. It exercises mirror reflection, a gradient pattern,
// and partial transparency together in a single frame.
func Cover() rt.World {
	floor := rt.NewPlaneObject().
		SetMaterial(rt.NewMaterial().
			WithPattern(rt.NewCheckersPattern(rt.White, rt.Black)).
			WithReflective(0.3))

	middle := rt.NewGlassSphere().
		SetTransform(rt.Identity.Translate(-1.3, 1.5, -4.0)).
		SetMaterial(rt.NewMaterial().
			WithPattern(rt.NewGradientPattern(rt.Color{R: 0, G: 0, B: 1}, rt.Black)).
			WithDiffuse(0.7).
			WithSpecular(0.3).
			WithReflective(1.0).
			WithTransparency(1.0).
			WithRefractiveIndex(1.5))

	left := rt.NewSphere().
		SetTransform(rt.Identity.Translate(0, 2, -6)).
		SetMaterial(rt.NewMaterial().
			WithTransparency(0.5).
			WithDiffuse(0.7).
			WithSpecular(0.3))

	light := rt.NewPointLight(rt.Point(-5, 10, -10), rt.White)

	return rt.NewWorld().
		WithObjects([]rt.Object{left, middle, floor}).
		WithLights([]rt.PointLight{light})
}
