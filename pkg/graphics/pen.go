package graphics

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
)

// Pen strokes outlines onto a canvas. Boxes are pixel boxes: the shape's
// boundary runs through the centres of the outermost pixels of the box and
// strokes are centred on that boundary.
type Pen interface {
	StrokeRect(box image.Rectangle, width int, c color.Color)
	// StrokeRoundedRect reports false, without drawing anything, when the
	// pen cannot round the corners of box.
	StrokeRoundedRect(box image.Rectangle, radius, width int, c color.Color) bool
	StrokeEllipse(box image.Rectangle, width int, c color.Color)
	// StrokeLine covers both end pixels.
	StrokeLine(from, to image.Point, width int, c color.Color)
	// SupportsAlpha reports whether translucent colors blend with the
	// canvas instead of replacing it.
	SupportsAlpha() bool
}

// GGPen draws with an anti-aliased gg context directly into an RGBA raster.
type GGPen struct {
	dc             *gg.Context
	RoundedCorners bool
}

func NewGGPen(img *image.RGBA) *GGPen {
	dc := gg.NewContextForRGBA(img)
	dc.SetLineCapButt()
	return &GGPen{dc: dc, RoundedCorners: true}
}

// StrokeRect fills the ring between the outer and inner edge of the stroke,
// so the corners stay square.
func (p *GGPen) StrokeRect(box image.Rectangle, width int, c color.Color) {
	x, y, w, h, ok := pathBounds(box)
	if !ok {
		return
	}
	half := float64(width) / 2

	p.dc.SetFillRule(gg.FillRuleEvenOdd)
	p.dc.DrawRectangle(x-half, y-half, w+2*half, h+2*half)
	if w > 2*half && h > 2*half {
		p.dc.DrawRectangle(x+half, y+half, w-2*half, h-2*half)
	}
	p.dc.SetColor(c)
	p.dc.Fill()
	p.dc.SetFillRule(gg.FillRuleWinding)
}

// StrokeRoundedRect fills the ring between two concentric rounded
// rectangles. gg's stroker bends small corner arcs out of shape.
func (p *GGPen) StrokeRoundedRect(box image.Rectangle, radius, width int, c color.Color) bool {
	if !p.RoundedCorners {
		return false
	}
	x, y, w, h, ok := pathBounds(box)
	if !ok {
		return false
	}
	r := float64(radius)
	if r <= 0 || 2*r > min(w, h) {
		return false
	}

	half := float64(width) / 2

	p.dc.SetFillRule(gg.FillRuleEvenOdd)
	p.dc.DrawRoundedRectangle(x-half, y-half, w+2*half, h+2*half, r+half)
	if w > 2*half && h > 2*half {
		if inner := r - half; inner > 0 {
			p.dc.DrawRoundedRectangle(x+half, y+half, w-2*half, h-2*half, inner)
		} else {
			p.dc.DrawRectangle(x+half, y+half, w-2*half, h-2*half)
		}
	}
	p.dc.SetColor(c)
	p.dc.Fill()
	p.dc.SetFillRule(gg.FillRuleWinding)
	return true
}

func (p *GGPen) StrokeEllipse(box image.Rectangle, width int, c color.Color) {
	x, y, w, h, ok := pathBounds(box)
	if !ok {
		return
	}
	p.dc.DrawEllipse(x+w/2, y+h/2, w/2, h/2)
	p.stroke(width, c)
}

func (p *GGPen) StrokeLine(from, to image.Point, width int, c color.Color) {
	x0, y0 := float64(from.X)+0.5, float64(from.Y)+0.5
	x1, y1 := float64(to.X)+0.5, float64(to.Y)+0.5

	// unit direction; a single point is treated as a horizontal dot
	ux, uy := 1.0, 0.0
	if l := math.Hypot(x1-x0, y1-y0); l > 0 {
		ux, uy = (x1-x0)/l, (y1-y0)/l
	}

	p.dc.DrawLine(x0-ux/2, y0-uy/2, x1+ux/2, y1+uy/2)
	p.stroke(width, c)
}

func (p *GGPen) SupportsAlpha() bool {
	return true
}

func (p *GGPen) stroke(width int, c color.Color) {
	p.dc.SetColor(c)
	p.dc.SetLineWidth(float64(width))
	p.dc.Stroke()
}

// pathBounds converts a pixel box into the rectangle through its boundary
// pixel centres. Boxes thinner than two pixels have no outline.
func pathBounds(box image.Rectangle) (x, y, w, h float64, ok bool) {
	if box.Dx() < 2 || box.Dy() < 2 {
		return 0, 0, 0, 0, false
	}
	x = float64(box.Min.X) + 0.5
	y = float64(box.Min.Y) + 0.5
	w = float64(box.Dx() - 1)
	h = float64(box.Dy() - 1)
	return x, y, w, h, true
}
