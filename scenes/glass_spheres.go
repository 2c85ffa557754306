package scenes

import "github.com/whitted/raytracer/rt"

// GlassSpheres builds a checkered backdrop wall behind two pairs of
// nested glass spheres: an outer shell of radius 1 filled with a
// smaller, near-vacuum-indexed inner sphere, so light refracts through
// both surfaces. It exercises reflection, refraction, and Schlick
// mixing together on every primary ray that reaches a sphere.
func GlassSpheres() rt.World {
	wall := rt.NewPlaneObject().
		SetTransform(rt.Identity.RotateX(1.5707963267948966).Translate(0, 0, 10)).
		SetMaterial(rt.NewMaterial().
			WithPattern(rt.NewCheckersPattern(rt.Color{R: 0.15, G: 0.15, B: 0.15}, rt.Color{R: 0.85, G: 0.85, B: 0.85})).
			WithAmbient(0.8).
			WithDiffuse(0.2).
			WithSpecular(0))

	shellMaterial := rt.NewMaterial().
		WithDiffuse(0).
		WithAmbient(0).
		WithSpecular(0.9).
		WithShininess(300).
		WithTransparency(0.9).
		WithRefractiveIndex(1.5).
		WithReflective(0.9)

	outerLeft := rt.NewSphere().
		SetMaterial(shellMaterial).
		SetTransform(rt.Identity.Translate(-2, 0, 0))

	outerRight := rt.NewSphere().
		SetMaterial(shellMaterial).
		SetTransform(rt.Identity.Translate(2, 0, 0))

	innerMaterial := rt.NewMaterial().
		WithColor(rt.White).
		WithDiffuse(0).
		WithAmbient(0).
		WithSpecular(0.9).
		WithShininess(300).
		WithReflective(0.9).
		WithTransparency(0.9).
		WithRefractiveIndex(1.0000034)

	innerLeft := rt.NewSphere().
		SetMaterial(innerMaterial).
		SetTransform(rt.Identity.Scale(0.5, 0.5, 0.5).Translate(-2, 0, 0))

	innerRight := rt.NewSphere().
		SetMaterial(innerMaterial).
		SetTransform(rt.Identity.Scale(0.5, 0.5, 0.5).Translate(2, 0, 0))

	light := rt.NewPointLight(rt.Point(2, 10, -5), rt.Color{R: 0.9, G: 0.9, B: 0.9})

	return rt.NewWorld().
		WithObjects([]rt.Object{outerLeft, innerLeft, outerRight, innerRight, wall}).
		WithLights([]rt.PointLight{light})
}
