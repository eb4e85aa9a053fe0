package graphics

import (
	"fmt"
	"image/color"

	"github.com/go-playground/colors"
)

const (
	violetHex = "#7c3aed"
	cyanHex   = "#22d3ee"
	whiteHex  = "#ffffff"

	highlightAlpha = 80
)

var (
	Violet = mustParseHEX(violetHex)
	Cyan   = mustParseHEX(cyanHex)
	White  = mustParseHEX(whiteHex)
)

func mustParseHEX(hex string) color.RGBA {
	c, err := parseHEX(hex)
	if err != nil {
		panic(err)
	}
	return c
}

func parseHEX(hex string) (color.RGBA, error) {
	h, err := colors.ParseHEX(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("parse color %q: %w", hex, err)
	}
	rgb := h.ToRGB()
	return color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 0xff}, nil
}

// withAlpha returns c as a non-premultiplied color with alpha a.
func withAlpha(c color.RGBA, a uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: a}
}
