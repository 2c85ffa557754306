package rt

import (
	"math"
	"testing"
)

func TestMatrixMulTuple(t *testing.T) {
	m := Matrix{
		{1, 2, 3, 4},
		{2, 4, 4, 2},
		{8, 6, 4, 1},
		{0, 0, 0, 1},
	}
	tup := Tuple{1, 2, 3, 1}
	got := m.MulTuple(tup)
	want := Tuple{18, 24, 33, 1}
	if got != want {
		t.Fatalf("MulTuple() = %v, want %v", got, want)
	}
}

func TestMatrixMulIdentity(t *testing.T) {
	m := Matrix{
		{0, 1, 2, 4},
		{1, 2, 4, 8},
		{2, 4, 8, 16},
		{4, 8, 16, 32},
	}
	if got := m.MulMatrix(Identity); !got.Equal(m) {
		t.Fatalf("A*I = %v, want %v", got, m)
	}
}

func TestMatrixTranspose(t *testing.T) {
	m := Matrix{
		{0, 9, 3, 0},
		{9, 8, 0, 8},
		{1, 8, 5, 3},
		{0, 0, 5, 8},
	}
	want := Matrix{
		{0, 9, 1, 0},
		{9, 8, 8, 0},
		{3, 0, 5, 5},
		{0, 8, 3, 8},
	}
	if got := m.Transpose(); !got.Equal(want) {
		t.Fatalf("Transpose() = %v, want %v", got, want)
	}
}

func TestMatrixDeterminant2x2(t *testing.T) {
	m := Matrix2{{1, 5}, {-3, 2}}
	if got, want := m.Determinant(), 17.0; got != want {
		t.Fatalf("Determinant() = %v, want %v", got, want)
	}
}

func TestMatrixDeterminant4x4(t *testing.T) {
	m := Matrix{
		{-2, -8, 3, 5},
		{-3, 1, 7, 3},
		{1, 2, -9, 6},
		{-6, 7, 7, -9},
	}
	if got, want := m.Determinant(), -4071.0; got != want {
		t.Fatalf("Determinant() = %v, want %v", got, want)
	}
}

func TestMatrixInverse(t *testing.T) {
	m := Matrix{
		{-5, 2, 6, -8},
		{1, -5, 1, 8},
		{7, 7, -6, -7},
		{1, -3, 7, 4},
	}
	want := Matrix{
		{0.21805, 0.45113, 0.24060, -0.04511},
		{-0.80827, -1.45677, -0.44361, 0.52068},
		{-0.07895, -0.22368, -0.05263, 0.19737},
		{-0.52256, -0.81391, -0.30075, 0.30639},
	}
	if got := m.Inverse(); !got.Equal(want) {
		t.Fatalf("Inverse() = %v, want %v", got, want)
	}
}

func TestMatrixInverseRoundtrip(t *testing.T) {
	a := Matrix{
		{3, -9, 7, 3},
		{3, -8, 2, -9},
		{-4, 4, 4, 1},
		{-6, 5, -1, 1},
	}
	b := Matrix{
		{8, 2, 2, 2},
		{3, -1, 7, 0},
		{7, 0, 5, 4},
		{6, -2, 0, 5},
	}
	c := a.MulMatrix(b)
	if got := c.MulMatrix(b.Inverse()); !got.Equal(a) {
		t.Fatalf("(A*B)*B^-1 = %v, want %v", got, a)
	}
}

func TestInvertSingularMatrixPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic inverting a singular matrix")
		}
	}()
	Matrix{}.Inverse()
}

func TestTransformComposition(t *testing.T) {
	p := Point(1, 0, 1)
	got := Identity.RotateX(math.Pi / 2).Scale(5, 5, 5).Translate(10, 5, 7).MulTuple(p)
	want := Point(15, 0, 7)
	if !got.Equal(want) {
		t.Fatalf("chained transform = %v, want %v", got, want)
	}
}

func TestTranslatePoint(t *testing.T) {
	transform := Identity.Translate(5, -3, 2)
	p := Point(-3, 4, 5)
	if got, want := transform.MulTuple(p), Point(2, 1, 7); !got.Equal(want) {
		t.Fatalf("Translate() = %v, want %v", got, want)
	}
}

func TestTranslateDoesNotAffectVectors(t *testing.T) {
	transform := Identity.Translate(5, -3, 2)
	v := Vector(-3, 4, 5)
	if got := transform.MulTuple(v); !got.Equal(v) {
		t.Fatalf("translating a vector should be a no-op, got %v", got)
	}
}

func TestScalePoint(t *testing.T) {
	transform := Identity.Scale(2, 3, 4)
	p := Point(-4, 6, 8)
	if got, want := transform.MulTuple(p), Point(-8, 18, 32); !got.Equal(want) {
		t.Fatalf("Scale() = %v, want %v", got, want)
	}
}

func TestRotateXHalfQuarter(t *testing.T) {
	p := Point(0, 1, 0)
	got := Identity.RotateX(math.Pi / 4).MulTuple(p)
	want := Point(0, math.Sqrt2/2, math.Sqrt2/2)
	if !got.Equal(want) {
		t.Fatalf("RotateX() = %v, want %v", got, want)
	}
}

func TestShearMovesXInProportionToY(t *testing.T) {
	transform := Identity.Shear(1, 0, 0, 0, 0, 0)
	p := Point(2, 3, 4)
	if got, want := transform.MulTuple(p), Point(5, 3, 4); !got.Equal(want) {
		t.Fatalf("Shear() = %v, want %v", got, want)
	}
}

func TestViewTransformDefaultOrientation(t *testing.T) {
	from := Point(0, 0, 0)
	to := Point(0, 0, -1)
	up := Vector(0, 1, 0)
	if got := ViewTransform(from, to, up); !got.Equal(Identity) {
		t.Fatalf("default view transform = %v, want identity", got)
	}
}

func TestViewTransformLooksInPositiveZDirection(t *testing.T) {
	from := Point(0, 0, 0)
	to := Point(0, 0, 1)
	up := Vector(0, 1, 0)
	got := ViewTransform(from, to, up)
	want := Identity.Scale(-1, 1, -1)
	if !got.Equal(want) {
		t.Fatalf("view transform = %v, want %v", got, want)
	}
}

func TestViewTransformMovesTheWorld(t *testing.T) {
	from := Point(0, 0, 8)
	to := Point(0, 0, 0)
	up := Vector(0, 1, 0)
	got := ViewTransform(from, to, up)
	want := Identity.Translate(0, 0, -8)
	if !got.Equal(want) {
		t.Fatalf("view transform = %v, want %v", got, want)
	}
}

func TestViewTransformArbitrary(t *testing.T) {
	from := Point(1, 3, 2)
	to := Point(4, -2, 8)
	up := Vector(1, 1, 0)
	want := Matrix{
		{-0.50709, 0.50709, 0.67612, -2.36643},
		{0.76772, 0.60609, 0.12122, -2.82843},
		{-0.35857, 0.59761, -0.71714, 0.00000},
		{0.00000, 0.00000, 0.00000, 1.00000},
	}
	if got := ViewTransform(from, to, up); !got.Equal(want) {
		t.Fatalf("view transform = %v, want %v", got, want)
	}
}
