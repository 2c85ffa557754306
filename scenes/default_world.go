// Package scenes builds ready-to-render rt.World values for cmd/render
// and cmd/console. Each scene is a thin, named constructor so the CLI
// can select one by string without reaching into rt construction
// details.
package scenes

import "github.com/whitted/raytracer/rt"

// Names lists the scenes selectable by renderjob.Config.Scene.
var Names = []string{"default", "glass_spheres", "cover"}

// Build returns the named scene, or an error if name is unknown.
func Build(name string) (rt.World, error) {
	switch name {
	case "default", "":
		return Default(), nil
	case "glass_spheres":
		return GlassSpheres(), nil
	case "cover":
		return Cover(), nil
	default:
		return rt.World{}, &UnknownSceneError{Name: name}
	}
}

// UnknownSceneError reports a scene name that Build doesn't recognize.
type UnknownSceneError struct{ Name string }

func (e *UnknownSceneError) Error() string {
	return "scenes: unknown scene " + e.Name
}

// Default returns the canonical two-sphere world used by the engine's
// own test suite: a matte green outer sphere and a smaller opaque
// white inner one, lit from a single point light.
func Default() rt.World {
	return rt.DefaultWorld()
}
