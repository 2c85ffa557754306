package imgdiff

import (
	"testing"

	"github.com/whitted/raytracer/rt"
)

func solidCanvas(w, h int, c rt.Color) rt.Canvas {
	canvas := rt.NewCanvas(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			canvas.WritePixel(x, y, c)
		}
	}
	return canvas
}

func TestSSIMIdenticalCanvasesAreSimilar(t *testing.T) {
	a := solidCanvas(20, 20, rt.Color{R: 0.5, G: 0.4, B: 0.3})
	score, err := SSIM(a, a)
	if err != nil {
		t.Fatalf("SSIM() error = %v", err)
	}
	if score < 0.99 {
		t.Errorf("SSIM(a, a) = %v, want close to 1", score)
	}
}

func TestSSIMRejectsMismatchedSizes(t *testing.T) {
	a := rt.NewCanvas(20, 20)
	b := rt.NewCanvas(10, 10)
	if _, err := SSIM(a, b); err == nil {
		t.Fatal("SSIM() error = nil, want error for mismatched sizes")
	}
}

func TestSSIMRejectsTooSmallCanvases(t *testing.T) {
	a := rt.NewCanvas(5, 5)
	b := rt.NewCanvas(5, 5)
	if _, err := SSIM(a, b); err == nil {
		t.Fatal("SSIM() error = nil, want error for undersized canvases")
	}
}
