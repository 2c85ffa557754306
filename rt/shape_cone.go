package rt

import "math"

// coneIntersect mirrors cylinderIntersect with the cone's quadric
// coefficients. When a≈0 and b≈0 the ray runs parallel to a cone
// surface generator and only the caps can be hit; when only a≈0 the
// quadratic degenerates to a single linear root.
func coneIntersect(s Shape, ray *Ray) []float64 {
	a := ray.Direction.X*ray.Direction.X - ray.Direction.Y*ray.Direction.Y + ray.Direction.Z*ray.Direction.Z
	b := 2*ray.Origin.X*ray.Direction.X - 2*ray.Origin.Y*ray.Direction.Y + 2*ray.Origin.Z*ray.Direction.Z
	c := ray.Origin.X*ray.Origin.X - ray.Origin.Y*ray.Origin.Y + ray.Origin.Z*ray.Origin.Z

	aZero := math.Abs(a) < TightEpsilon
	bZero := math.Abs(b) < TightEpsilon

	var xs []float64
	switch {
	case aZero && bZero:
		return coneCapIntersections(s, ray)
	case aZero:
		t := -c / (2 * b)
		xs = append(xs, t)
	default:
		disc := b*b - 4*a*c
		if disc < 0 {
			return nil
		}
		sqrtDisc := math.Sqrt(disc)
		t0 := (-b - sqrtDisc) / (2 * a)
		t1 := (-b + sqrtDisc) / (2 * a)
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		y0 := ray.Origin.Y + t0*ray.Direction.Y
		if s.Min < y0 && y0 < s.Max {
			xs = append(xs, t0)
		}
		y1 := ray.Origin.Y + t1*ray.Direction.Y
		if s.Min < y1 && y1 < s.Max {
			xs = append(xs, t1)
		}
	}

	xs = append(xs, coneCapIntersections(s, ray)...)
	return xs
}

// coneCheckCap reports whether the ray, at parameter t, lies within
// radius |y| of the axis — the cap radius at height y.
func coneCheckCap(ray *Ray, t, y float64) bool {
	x := ray.Origin.X + t*ray.Direction.X
	z := ray.Origin.Z + t*ray.Direction.Z
	return x*x+z*z <= math.Abs(y)
}

func coneCapIntersections(s Shape, ray *Ray) []float64 {
	var xs []float64
	if !s.Closed || math.Abs(ray.Direction.Y) < TightEpsilon {
		return xs
	}
	t := (s.Min - ray.Origin.Y) / ray.Direction.Y
	if coneCheckCap(ray, t, s.Min) {
		xs = append(xs, t)
	}
	t = (s.Max - ray.Origin.Y) / ray.Direction.Y
	if coneCheckCap(ray, t, s.Max) {
		xs = append(xs, t)
	}
	return xs
}

// coneNormalAt returns a cap normal on a disc, else the side normal
// whose y-component opposes the sign of p.Y.
func coneNormalAt(s Shape, p Tuple) Tuple {
	dist := p.X*p.X + p.Z*p.Z
	if dist < 1.0 && p.Y >= s.Max-TightEpsilon {
		return Vector(0, 1, 0)
	}
	if dist < 1.0 && p.Y <= s.Min+TightEpsilon {
		return Vector(0, -1, 0)
	}
	y := math.Sqrt(dist)
	if p.Y > 0 {
		y = -y
	}
	return Vector(p.X, y, p.Z)
}
