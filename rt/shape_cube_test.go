package rt

import "testing"

func TestCubeIntersectHits(t *testing.T) {
	cases := []struct {
		origin, direction  Tuple
		t1, t2             float64
	}{
		{Point(5, 0.5, 0), Vector(-1, 0, 0), 4, 6},
		{Point(-5, 0.5, 0), Vector(1, 0, 0), 4, 6},
		{Point(0.5, 5, 0), Vector(0, -1, 0), 4, 6},
		{Point(0.5, -5, 0), Vector(0, 1, 0), 4, 6},
		{Point(0.5, 0, 5), Vector(0, 0, -1), 4, 6},
		{Point(0.5, 0, -5), Vector(0, 0, 1), 4, 6},
		{Point(0, 0.5, 0), Vector(0, 0, 1), -1, 1},
	}
	for _, c := range cases {
		r := NewRay(c.origin, c.direction)
		xs := cubeIntersect(r)
		if len(xs) != 2 || !ApproxEq(xs[0], c.t1) || !ApproxEq(xs[1], c.t2) {
			t.Errorf("cubeIntersect(%v,%v) = %v, want [%v %v]", c.origin, c.direction, xs, c.t1, c.t2)
		}
	}
}

func TestCubeIntersectMisses(t *testing.T) {
	cases := []struct {
		origin, direction Tuple
	}{
		{Point(-2, 0, 0), Vector(0.2673, 0.5345, 0.8018)},
		{Point(0, -2, 0), Vector(0.8018, 0.2673, 0.5345)},
		{Point(0, 0, -2), Vector(0.5345, 0.8018, 0.2673)},
		{Point(2, 0, 2), Vector(0, 0, -1)},
		{Point(0, 2, 2), Vector(0, -1, 0)},
		{Point(2, 2, 0), Vector(-1, 0, 0)},
	}
	for _, c := range cases {
		r := NewRay(c.origin, c.direction)
		if xs := cubeIntersect(r); xs != nil {
			t.Errorf("cubeIntersect(%v,%v) = %v, want nil", c.origin, c.direction, xs)
		}
	}
}

func TestCubeNormalAt(t *testing.T) {
	cases := []struct {
		p    Tuple
		want Tuple
	}{
		{Point(1, 0.5, -0.8), Vector(1, 0, 0)},
		{Point(-1, -0.2, 0.9), Vector(-1, 0, 0)},
		{Point(-0.4, 1, -0.1), Vector(0, 1, 0)},
		{Point(0.3, -1, -0.7), Vector(0, -1, 0)},
		{Point(-0.6, 0.3, 1), Vector(0, 0, 1)},
		{Point(0.4, 0.4, -1), Vector(0, 0, -1)},
		{Point(1, 1, 1), Vector(1, 0, 0)},
		{Point(-1, -1, -1), Vector(-1, 0, 0)},
	}
	for _, c := range cases {
		if got := cubeNormalAt(c.p); !got.Equal(c.want) {
			t.Errorf("cubeNormalAt(%v) = %v, want %v", c.p, got, c.want)
		}
	}
}
