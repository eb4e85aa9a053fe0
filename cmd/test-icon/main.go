package main

import (
	"image"
	"image/color"
	"slices"

	"github.com/disintegration/imaging"

	"github.com/hrko/lens-icons/pkg/graphics"
	"github.com/hrko/lens-icons/pkg/iconset"
)

const (
	cellSize = 128
	gap      = 8
)

func main() {
	// shipped sizes plus both sides of the sparkle and highlight thresholds
	sizes := append([]int{31, 63, 64}, iconset.Sizes...)
	slices.Sort(sizes)

	icon := graphics.NewLensIcon()
	sheet := imaging.New(len(sizes)*(cellSize+gap)+gap, cellSize+2*gap, color.Black)

	for i, size := range sizes {
		img := imaging.Resize(icon.Render(size), cellSize, cellSize, imaging.NearestNeighbor)
		sheet = imaging.Paste(sheet, img, image.Pt(gap+i*(cellSize+gap), gap))
	}

	if err := imaging.Save(sheet, "test.png"); err != nil {
		panic(err)
	}
}
