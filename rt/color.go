package rt

import "fmt"

// Color is a linear-RGB triple. Components may go negative or exceed 1
// as an intermediate value; clamping only happens at serialization time
// (see package ppm).
type Color struct {
	R, G, B float64
}

func (c Color) String() string {
	return fmt.Sprintf("Color(%.5f, %.5f, %.5f)", c.R, c.G, c.B)
}

// Black is the zero color, returned for misses and exhausted recursion.
var Black = Color{0, 0, 0}

// White is full intensity in all channels.
var White = Color{1, 1, 1}

// Equal compares two colors with the tight epsilon.
func (c Color) Equal(o Color) bool {
	return ApproxEq(c.R, o.R) && ApproxEq(c.G, o.G) && ApproxEq(c.B, o.B)
}

// Add sums two colors componentwise.
func (c Color) Add(o Color) Color {
	return Color{c.R + o.R, c.G + o.G, c.B + o.B}
}

// Sub subtracts two colors componentwise.
func (c Color) Sub(o Color) Color {
	return Color{c.R - o.R, c.G - o.G, c.B - o.B}
}

// Mul is the Hadamard (componentwise) product, used to tint a light's
// intensity by a surface color.
func (c Color) Mul(o Color) Color {
	return Color{c.R * o.R, c.G * o.G, c.B * o.B}
}

// Scale multiplies every channel by s.
func (c Color) Scale(s float64) Color {
	return Color{c.R * s, c.G * s, c.B * s}
}
