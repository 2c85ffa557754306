package rt

import "math"

// Translate, Scale, RotateX/Y/Z and Shear build affine transforms by
// fluent composition: each call pre-multiplies the accumulated matrix,
// so `Identity.RotateX(r).Scale(s).Translate(t)` reads "rotate, then
// scale, then translate" left to right but yields the matrix
// translate*scale*rotate, which is what applying it to a point does
// first to last in the written order.

// Translate returns translate(x,y,z) * m.
func (m Matrix) Translate(x, y, z float64) Matrix {
	t := Identity
	t[0][3] = x
	t[1][3] = y
	t[2][3] = z
	return t.MulMatrix(m)
}

// Scale returns scale(x,y,z) * m.
func (m Matrix) Scale(x, y, z float64) Matrix {
	s := Identity
	s[0][0] = x
	s[1][1] = y
	s[2][2] = z
	return s.MulMatrix(m)
}

// RotateX returns rotate_x(r) * m.
func (m Matrix) RotateX(r float64) Matrix {
	rot := Identity
	rot[1][1] = math.Cos(r)
	rot[1][2] = -math.Sin(r)
	rot[2][1] = math.Sin(r)
	rot[2][2] = math.Cos(r)
	return rot.MulMatrix(m)
}

// RotateY returns rotate_y(r) * m.
func (m Matrix) RotateY(r float64) Matrix {
	rot := Identity
	rot[0][0] = math.Cos(r)
	rot[0][2] = math.Sin(r)
	rot[2][0] = -math.Sin(r)
	rot[2][2] = math.Cos(r)
	return rot.MulMatrix(m)
}

// RotateZ returns rotate_z(r) * m.
func (m Matrix) RotateZ(r float64) Matrix {
	rot := Identity
	rot[0][0] = math.Cos(r)
	rot[0][1] = -math.Sin(r)
	rot[1][0] = math.Sin(r)
	rot[1][1] = math.Cos(r)
	return rot.MulMatrix(m)
}

// Shear returns shear(xy,xz,yx,yz,zx,zy) * m.
func (m Matrix) Shear(xy, xz, yx, yz, zx, zy float64) Matrix {
	sh := Identity
	sh[0][1] = xy
	sh[0][2] = xz
	sh[1][0] = yx
	sh[1][2] = yz
	sh[2][0] = zx
	sh[2][1] = zy
	return sh.MulMatrix(m)
}

// ViewTransform builds the matrix that places the camera at `from`,
// looking toward `to`, with `up` defining the roll. The orientation
// basis is {left, trueUp, -forward}; the camera is then translated by
// -from in that basis.
func ViewTransform(from, to, up Tuple) Matrix {
	forward := to.Sub(from).Normalize()
	upn := up.Normalize()
	left := forward.Cross(upn)
	trueUp := left.Cross(forward)

	orientation := Matrix{
		{left.X, left.Y, left.Z, 0},
		{trueUp.X, trueUp.Y, trueUp.Z, 0},
		{-forward.X, -forward.Y, -forward.Z, 0},
		{0, 0, 0, 1},
	}
	return orientation.MulMatrix(Identity.Translate(-from.X, -from.Y, -from.Z))
}
