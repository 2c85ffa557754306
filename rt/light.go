package rt

// PointLight is a light source with no area: a position and an
// intensity (color). The world supports any number of these, though
// shadow testing (§4.7) only consults the first.
type PointLight struct {
	Position  Tuple
	Intensity Color
}

// NewPointLight constructs a point light.
func NewPointLight(position Tuple, intensity Color) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}
