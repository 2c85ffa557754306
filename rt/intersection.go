package rt

import (
	"math"
	"sort"
)

// Intersection is an ephemeral t-value paired with the object it was
// computed against. The Object reference is non-owning: its lifetime
// is bounded by the World that produced it.
type Intersection struct {
	T      float64
	Object *Object
}

// Intersections is an unordered (until Sort is called) collection of
// Intersection values for a single ray.
type Intersections []Intersection

// Sort orders the intersections ascending by T. NaN sorts to the end,
// matching the ordering the hit-selection rule depends on.
func (xs Intersections) Sort() {
	sort.Slice(xs, func(i, j int) bool {
		ti, tj := xs[i].T, xs[j].T
		if math.IsNaN(ti) {
			return false
		}
		if math.IsNaN(tj) {
			return true
		}
		return ti < tj
	})
}

// Hit returns the first intersection with t >= 0 in ascending-t order,
// sorting the collection first if it isn't already. Returns (zero,
// false) if there is no such intersection.
func (xs Intersections) Hit() (Intersection, bool) {
	xs.Sort()
	for _, x := range xs {
		if x.T >= 0 {
			return x, true
		}
	}
	return Intersection{}, false
}

// State is everything a shader needs, computed from a single chosen
// intersection and the ray that produced it.
type State struct {
	T        float64
	Object   *Object
	Point    Tuple
	EyeV     Tuple
	NormalV  Tuple
	Inside   bool
	OverPt   Tuple
	UnderPt  Tuple
	ReflectV Tuple
	N1, N2   float64

	// mediumStack is a snapshot of the ray's index stack as it stood
	// before this hit was processed, i.e. the medium a ray reflected
	// off this surface continues to travel through (reflection never
	// crosses the interface, so it must not inherit any push/pop this
	// hit performs).
	mediumStack []float64
}

// PrepareComputations computes shading state for hit against ray. For
// a transparent hit, it mutates ray's refractive-index stack per the
// protocol in spec.md §4.4: entering a medium of index k (k not
// already on the stack) pushes k; exiting (k already present) removes
// every occurrence of it. n1 is the medium being left (the stack's top
// before the push/removal), n2 is the one being entered (k if
// entering, the new top if exiting). Opaque hits never touch the
// stack: the ray doesn't transmit through them, so n1 and n2 are both
// just the ray's current medium.
func PrepareComputations(hit Intersection, ray *Ray) State {
	var s State
	s.T = hit.T
	s.Object = hit.Object
	s.Point = ray.Position(hit.T)
	s.EyeV = ray.Direction.Neg()
	s.NormalV = hit.Object.NormalAt(s.Point)

	if s.NormalV.Dot(s.EyeV) < 0 {
		s.Inside = true
		s.NormalV = s.NormalV.Neg()
	}

	s.OverPt = s.Point.Add(s.NormalV.Scale(TightEpsilon))
	s.UnderPt = s.Point.Sub(s.NormalV.Scale(TightEpsilon))
	s.ReflectV = ray.Direction.Reflect(s.NormalV)
	s.mediumStack = append([]float64(nil), ray.indices...)

	if hit.Object.Material.Transparency > 0 {
		s.N1, s.N2 = pushOrPopIndex(ray, hit.Object.Material.RefractiveIndex)
	} else {
		s.N1 = ray.topIndex()
		s.N2 = s.N1
	}

	return s
}

func pushOrPopIndex(ray *Ray, k float64) (n1, n2 float64) {
	entering := !ray.containsIndex(k)
	n1 = ray.topIndex()
	if entering {
		n2 = k
		ray.pushIndex(k)
	} else {
		ray.removeIndex(k)
		n2 = ray.topIndex()
	}
	return n1, n2
}

// Schlick computes the Fresnel reflectance approximation for a
// dielectric interface, used to mix reflected and refracted energy
// when a surface is both reflective and transparent.
func (s State) Schlick() float64 {
	cos := s.EyeV.Dot(s.NormalV)

	if s.N1 > s.N2 {
		n := s.N1 / s.N2
		sin2t := n * n * (1 - cos*cos)
		if sin2t > 1.0 {
			return 1.0
		}
		cos = math.Sqrt(1 - sin2t)
	}

	r0 := (s.N1 - s.N2) / (s.N1 + s.N2)
	r0 *= r0
	return r0 + (1-r0)*math.Pow(1-cos, 5)
}
