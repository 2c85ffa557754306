// Package ppm serializes a rt.Canvas to the P3 (plain ASCII) Portable
// Pixmap format. Serialization is deliberately kept outside the rt
// package: the core hands back linear-RGB triples and never concerns
// itself with byte layout.
package ppm

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/whitted/raytracer/rt"
)

const maxLineWidth = 70

// Encode writes canvas to w as a P3 image: header, then pixel triples
// wrapped so no line exceeds 70 characters, terminated by a trailing
// newline.
func Encode(w io.Writer, canvas rt.Canvas) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", canvas.Width, canvas.Height); err != nil {
		return err
	}

	for y := 0; y < canvas.Height; y++ {
		var line strings.Builder
		for x := 0; x < canvas.Width; x++ {
			c := canvas.PixelAt(x, y)
			for _, component := range [3]float64{c.R, c.G, c.B} {
				token := strconv.Itoa(clampByte(component))
				if line.Len() > 0 && line.Len()+1+len(token) > maxLineWidth {
					if _, err := bw.WriteString(line.String() + "\n"); err != nil {
						return err
					}
					line.Reset()
				}
				if line.Len() > 0 {
					line.WriteByte(' ')
				}
				line.WriteString(token)
			}
		}
		if _, err := bw.WriteString(line.String() + "\n"); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// clampByte maps a linear-RGB component to [0,255]. The scaled value is
// truncated toward zero (not rounded) to match the reference writer this
// package is ported from, then clamped.
func clampByte(component float64) int {
	v := int(component * 255)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
