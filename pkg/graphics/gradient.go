package graphics

import (
	"image"
	"image/color"
)

// VerticalGradient returns a fully opaque width x height raster whose rows
// blend linearly from top (row 0) to bottom (last row). Every pixel of a row
// has the same color.
func VerticalGradient(width, height int, top, bottom color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	for y := 0; y < height; y++ {
		t := float64(y) / float64(max(1, height-1))
		c := color.RGBA{
			R: lerpChannel(top.R, bottom.R, t),
			G: lerpChannel(top.G, bottom.G, t),
			B: lerpChannel(top.B, bottom.B, t),
			A: 0xff,
		}
		row := img.Pix[y*img.Stride : y*img.Stride+width*4]
		for x := 0; x < width; x++ {
			row[x*4+0] = c.R
			row[x*4+1] = c.G
			row[x*4+2] = c.B
			row[x*4+3] = c.A
		}
	}

	return img
}

// lerpChannel truncates toward zero, so a falling channel never undershoots
// its end value.
func lerpChannel(from, to uint8, t float64) uint8 {
	v := float64(from) + (float64(to)-float64(from))*t
	return uint8(min(max(int(v), 0), 255))
}
