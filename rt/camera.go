package rt

import "math"

// Camera owns a view transform and maps pixel coordinates to primary
// rays. Derived fields (half-width/height, pixel size) are recomputed
// whenever the camera is constructed; NewCamera is the only entry
// point, so they can never drift from hsize/vsize/fov/transform.
type Camera struct {
	HSize, VSize int
	FieldOfView  float64

	transform        Matrix
	transformInverse Matrix

	halfWidth  float64
	halfHeight float64
	pixelSize  float64
}

// NewCamera constructs a camera for an hsize x vsize image with the
// given field of view (radians) and view transform.
func NewCamera(hsize, vsize int, fieldOfView float64, transform Matrix) Camera {
	halfView := math.Tan(fieldOfView / 2)
	aspect := float64(hsize) / float64(vsize)

	var halfWidth, halfHeight float64
	if aspect >= 1 {
		halfWidth = halfView
		halfHeight = halfView / aspect
	} else {
		halfWidth = halfView * aspect
		halfHeight = halfView
	}

	return Camera{
		HSize:            hsize,
		VSize:            vsize,
		FieldOfView:      fieldOfView,
		transform:        transform,
		transformInverse: transform.Inverse(),
		halfWidth:        halfWidth,
		halfHeight:       halfHeight,
		pixelSize:        (halfWidth * 2) / float64(hsize),
	}
}

// Transform returns the camera's current view transform.
func (c Camera) Transform() Matrix { return c.transform }

// PixelSize returns the world-space size of one pixel.
func (c Camera) PixelSize() float64 { return c.pixelSize }

// RayForPixel returns the primary ray through the center of pixel
// (px, py).
func (c Camera) RayForPixel(px, py int) *Ray {
	xoffset := (float64(px) + 0.5) * c.pixelSize
	yoffset := (float64(py) + 0.5) * c.pixelSize

	worldX := c.halfWidth - xoffset
	worldY := c.halfHeight - yoffset

	pixel := c.transformInverse.MulTuple(Point(worldX, worldY, -1))
	origin := c.transformInverse.MulTuple(Point(0, 0, 0))
	direction := pixel.Sub(origin).Normalize()

	return NewRay(origin, direction)
}

// Render iterates every pixel of the canvas, tracing a primary ray and
// writing the resulting color. Pixels are independent: color_at(x,y)
// is a pure function of (World, Camera, x, y), so any partition of the
// canvas across goroutines that gives each one disjoint coordinates is
// safe; this sequential version is the reference behavior.
func (c Camera) Render(world *World) Canvas {
	image := NewCanvas(c.HSize, c.VSize)
	depth := world.MaxRecursionDepth
	for y := 0; y < c.VSize; y++ {
		for x := 0; x < c.HSize; x++ {
			ray := c.RayForPixel(x, y)
			color := world.ColorAt(ray, depth)
			image.WritePixel(x, y, color)
		}
	}
	return image
}

// RenderTile renders only the rows [yStart, yEnd) into out, which the
// caller must have sized HSize x VSize already. This is the hook a
// parallel host uses to partition the canvas by row so that concurrent
// workers never write overlapping pixels.
func (c Camera) RenderTile(world *World, out *Canvas, yStart, yEnd int) {
	depth := world.MaxRecursionDepth
	for y := yStart; y < yEnd; y++ {
		for x := 0; x < c.HSize; x++ {
			ray := c.RayForPixel(x, y)
			color := world.ColorAt(ray, depth)
			out.WritePixel(x, y, color)
		}
	}
}
