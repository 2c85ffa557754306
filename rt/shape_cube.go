package rt

import "math"

// cubeIntersect runs the slab test on each axis of the axis-aligned
// cube [-1,1]^3: overall tmin is the max of the per-axis tmins, tmax
// is the min of the per-axis tmaxes; the ray misses if tmin > tmax.
func cubeIntersect(ray *Ray) []float64 {
	xtmin, xtmax := checkAxis(ray.Origin.X, ray.Direction.X)
	ytmin, ytmax := checkAxis(ray.Origin.Y, ray.Direction.Y)
	ztmin, ztmax := checkAxis(ray.Origin.Z, ray.Direction.Z)

	tmin := math.Max(xtmin, math.Max(ytmin, ztmin))
	tmax := math.Min(xtmax, math.Min(ytmax, ztmax))

	if tmin > tmax {
		return nil
	}
	return []float64{tmin, tmax}
}

func checkAxis(origin, direction float64) (tmin, tmax float64) {
	tminNumerator := -1 - origin
	tmaxNumerator := 1 - origin

	if math.Abs(direction) >= TightEpsilon {
		tmin = tminNumerator / direction
		tmax = tmaxNumerator / direction
	} else {
		tmin = tminNumerator * math.MaxFloat64
		tmax = tmaxNumerator * math.MaxFloat64
	}
	if tmin > tmax {
		tmin, tmax = tmax, tmin
	}
	return tmin, tmax
}

// cubeNormalAt picks the axis whose component has the largest absolute
// value and returns a unit vector along it, signed by that component.
func cubeNormalAt(p Tuple) Tuple {
	maxc := math.Max(math.Abs(p.X), math.Max(math.Abs(p.Y), math.Abs(p.Z)))
	switch maxc {
	case math.Abs(p.X):
		return Vector(p.X, 0, 0)
	case math.Abs(p.Y):
		return Vector(0, p.Y, 0)
	default:
		return Vector(0, 0, p.Z)
	}
}
