package rt

import "math"

// PatternKind tags which procedural color field a Pattern samples.
type PatternKind int

const (
	StripePattern PatternKind = iota
	GradientPattern
	RingPattern
	CheckersPattern
	TestPattern
)

// Pattern is a procedural color field in pattern space, reached from
// object space via its own transform. The inverse is cached at
// construction/SetTransform time so PatternAt never has to invert on
// the hot path.
type Pattern struct {
	Kind           PatternKind
	A, B           Color
	transform      Matrix
	transformInver Matrix
}

func newPattern(kind PatternKind, a, b Color) Pattern {
	return Pattern{Kind: kind, A: a, B: b, transform: Identity, transformInver: Identity}
}

// NewStripePattern alternates color bands along x.
func NewStripePattern(a, b Color) Pattern { return newPattern(StripePattern, a, b) }

// NewGradientPattern linearly interpolates between a and b along x.
func NewGradientPattern(a, b Color) Pattern { return newPattern(GradientPattern, a, b) }

// NewRingPattern alternates color bands by radial distance in the xz
// plane.
func NewRingPattern(a, b Color) Pattern { return newPattern(RingPattern, a, b) }

// NewCheckersPattern alternates color in a 3D checkerboard.
func NewCheckersPattern(a, b Color) Pattern { return newPattern(CheckersPattern, a, b) }

// NewTestPattern returns the point itself as a color; used to verify
// the object-space -> pattern-space transform plumbing.
func NewTestPattern() Pattern { return newPattern(TestPattern, Black, Black) }

// SetTransform replaces the pattern's transform, refreshing the cached
// inverse. This is the only entry point for mutating the transform.
func (p Pattern) SetTransform(m Matrix) Pattern {
	p.transform = m
	p.transformInver = m.Inverse()
	return p
}

// Transform returns the pattern's current transform.
func (p Pattern) Transform() Matrix { return p.transform }

// PatternAt samples the pattern at an object-space point by first
// mapping it into pattern space via the cached inverse transform.
func (p Pattern) PatternAt(objectPoint Tuple) Color {
	patternPoint := p.transformInver.MulTuple(objectPoint)
	switch p.Kind {
	case StripePattern:
		if math.Mod(math.Floor(patternPoint.X), 2) == 0 {
			return p.A
		}
		return p.B
	case GradientPattern:
		fraction := patternPoint.X - math.Floor(patternPoint.X)
		return p.A.Add(p.B.Sub(p.A).Scale(fraction))
	case RingPattern:
		dist := math.Sqrt(patternPoint.X*patternPoint.X + patternPoint.Z*patternPoint.Z)
		if math.Mod(math.Floor(dist), 2) == 0 {
			return p.A
		}
		return p.B
	case CheckersPattern:
		sum := math.Floor(patternPoint.X) + math.Floor(patternPoint.Y) + math.Floor(patternPoint.Z)
		if math.Mod(sum, 2) == 0 {
			return p.A
		}
		return p.B
	case TestPattern:
		return Color{patternPoint.X, patternPoint.Y, patternPoint.Z}
	default:
		panic("rt: unknown pattern kind")
	}
}
