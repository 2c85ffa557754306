package rt

import "testing"

func TestColorArithmetic(t *testing.T) {
	a := Color{0.9, 0.6, 0.75}
	b := Color{0.7, 0.1, 0.25}

	if got, want := a.Add(b), (Color{1.6, 0.7, 1.0}); !got.Equal(want) {
		t.Errorf("Add() = %v, want %v", got, want)
	}
	if got, want := a.Sub(b), (Color{0.2, 0.5, 0.5}); !got.Equal(want) {
		t.Errorf("Sub() = %v, want %v", got, want)
	}
	if got, want := (Color{1, 0.2, 0.4}).Scale(2), (Color{2, 0.4, 0.8}); !got.Equal(want) {
		t.Errorf("Scale() = %v, want %v", got, want)
	}
	c1 := Color{1, 0.2, 1.0}
	c2 := Color{0.9, 1, 0.1}
	if got, want := c1.Mul(c2), (Color{0.9, 0.2, 0.1}); !got.Equal(want) {
		t.Errorf("Mul() = %v, want %v", got, want)
	}
}
