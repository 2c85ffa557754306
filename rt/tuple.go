// Package rt implements a Whitted-style recursive ray tracer: the
// intersection math, Phong shading, and the transform/refraction
// plumbing that makes reflection and refraction tractable.
package rt

import (
	"fmt"
	"math"
)

// TightEpsilon guards ray-math comparisons (self-intersection, tangency,
// discriminant sign checks). LooseEpsilon is for user-visible equality,
// e.g. in tests. Both are fixed design constants, not runtime config.
const (
	TightEpsilon = 1e-5
	LooseEpsilon = 1e-4
)

func approxEq(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}

// ApproxEq compares two floats with the tight epsilon, the precision
// ray/geometry math is guarded with throughout this package.
func ApproxEq(a, b float64) bool {
	return approxEq(a, b, TightEpsilon)
}

// Tuple is a 4-component x,y,z,w value. w distinguishes a Vector (w=0)
// from a Point (w=1); every other operation is defined uniformly over
// both so that affine transforms can treat them the same way.
type Tuple struct {
	X, Y, Z, W float64
}

func (t Tuple) String() string {
	return fmt.Sprintf("Tuple(%.5f, %.5f, %.5f, %.5f)", t.X, t.Y, t.Z, t.W)
}

// IsPoint reports whether w == 1.
func (t Tuple) IsPoint() bool { return t.W == 1.0 }

// IsVector reports whether w == 0.
func (t Tuple) IsVector() bool { return t.W == 0.0 }

// Equal compares two tuples component-wise with the tight epsilon.
func (t Tuple) Equal(o Tuple) bool {
	return ApproxEq(t.X, o.X) && ApproxEq(t.Y, o.Y) && ApproxEq(t.Z, o.Z) && ApproxEq(t.W, o.W)
}

// Add sums two tuples. Vector+Vector=Vector, Point+Vector=Point; adding
// two points is meaningless and left to the caller to avoid.
func (t Tuple) Add(o Tuple) Tuple {
	return Tuple{t.X + o.X, t.Y + o.Y, t.Z + o.Z, t.W + o.W}
}

// Sub subtracts two tuples. Point-Point=Vector, Point-Vector=Point,
// Vector-Vector=Vector.
func (t Tuple) Sub(o Tuple) Tuple {
	return Tuple{t.X - o.X, t.Y - o.Y, t.Z - o.Z, t.W - o.W}
}

// Neg negates every component, including w.
func (t Tuple) Neg() Tuple {
	return Tuple{-t.X, -t.Y, -t.Z, -t.W}
}

// Scale multiplies every component by s, including w.
func (t Tuple) Scale(s float64) Tuple {
	return Tuple{t.X * s, t.Y * s, t.Z * s, t.W * s}
}

// Length returns the Euclidean magnitude of the x,y,z components.
func (t Tuple) Length() float64 {
	return math.Sqrt(t.X*t.X + t.Y*t.Y + t.Z*t.Z)
}

// Normalize returns a unit-length tuple in the same direction. w is
// scaled along with the rest, which is a no-op for vectors (w=0) and
// leaves points well alone since points are never normalized.
func (t Tuple) Normalize() Tuple {
	length := t.Length()
	return Tuple{t.X / length, t.Y / length, t.Z / length, t.W / length}
}

// Dot returns the dot product of the x,y,z components.
func (t Tuple) Dot(o Tuple) float64 {
	return t.X*o.X + t.Y*o.Y + t.Z*o.Z
}

// Cross returns the cross product, defined only for vectors (w=0).
func (t Tuple) Cross(o Tuple) Tuple {
	return Vector(
		t.Y*o.Z-t.Z*o.Y,
		t.Z*o.X-t.X*o.Z,
		t.X*o.Y-t.Y*o.X,
	)
}

// Reflect reflects t around normal n: v - n*2*(v.n).
func (t Tuple) Reflect(n Tuple) Tuple {
	return t.Sub(n.Scale(2 * t.Dot(n)))
}

// Point constructs a point tuple (w=1).
func Point(x, y, z float64) Tuple {
	return Tuple{x, y, z, 1.0}
}

// Vector constructs a vector tuple (w=0).
func Vector(x, y, z float64) Tuple {
	return Tuple{x, y, z, 0.0}
}
