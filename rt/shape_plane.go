package rt

import "math"

// planeIntersect intersects the xz plane (y=0). A ray parallel to the
// plane (|dy| below epsilon) never crosses it.
func planeIntersect(ray *Ray) []float64 {
	if math.Abs(ray.Direction.Y) < TightEpsilon {
		return nil
	}
	t := -ray.Origin.Y / ray.Direction.Y
	return []float64{t}
}

// planeNormalAt is constant everywhere on the plane.
func planeNormalAt(Tuple) Tuple {
	return Vector(0, 1, 0)
}
