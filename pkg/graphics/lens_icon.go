package graphics

import (
	"image"
	"image/color"
)

// LensIcon draws the extension glyph: a selection frame and a magnifying
// lens over a vertical gradient, with a sparkle and an inner highlight on
// the larger sizes.
type LensIcon struct {
	Color struct {
		GradientTop    color.RGBA
		GradientBottom color.RGBA
		Stroke         color.RGBA
		Highlight      color.NRGBA
	}
	SparkleMinSize   int
	HighlightMinSize int
}

// LensGeometry holds the integer layout of a LensIcon at one size.
type LensGeometry struct {
	Size        int
	Stroke      int // frame and lens outline width
	Thin        int // sparkle line width
	Margin      int
	Radius      int // frame corner radius
	LensRadius  int
	CenterX     int
	CenterY     int
	SparkleHalf int
	SparkleX    int
	SparkleY    int
	InnerInset  int
}

func NewLensIcon() *LensIcon {
	l := &LensIcon{}
	l.SetDefault()
	return l
}

func (l *LensIcon) SetDefault() {
	l.Color.GradientTop = Violet
	l.Color.GradientBottom = Cyan
	l.Color.Stroke = White
	l.Color.Highlight = withAlpha(White, highlightAlpha)
	l.SparkleMinSize = 32
	l.HighlightMinSize = 64
}

func (l *LensIcon) Geometry(size int) LensGeometry {
	g := LensGeometry{
		Size:        size,
		Stroke:      max(1, size/12),
		Thin:        max(1, size/18),
		Margin:      max(2, size/8),
		Radius:      max(2, size/6),
		LensRadius:  size / 6,
		CenterX:     size / 2,
		CenterY:     size / 2,
		SparkleHalf: size / 14,
		InnerInset:  size / 20,
	}
	g.SparkleX = int(float64(g.CenterX) + 0.9*float64(g.LensRadius))
	g.SparkleY = int(float64(g.CenterY) - 0.9*float64(g.LensRadius))
	return g
}

// Frame is the selection frame's pixel box.
func (g LensGeometry) Frame() image.Rectangle {
	return insetBox(g.Size, g.Margin)
}

// Inset is the highlight's pixel box, InnerInset inside the frame.
func (g LensGeometry) Inset() image.Rectangle {
	return insetBox(g.Size, g.Margin+g.InnerInset)
}

func (g LensGeometry) InsetRadius() int {
	return max(2, g.Radius-g.InnerInset)
}

// Lens is the pixel box tightly enclosing the lens circle.
func (g LensGeometry) Lens() image.Rectangle {
	return image.Rectangle{
		Min: image.Pt(g.CenterX-g.LensRadius, g.CenterY-g.LensRadius),
		Max: image.Pt(g.CenterX+g.LensRadius+1, g.CenterY+g.LensRadius+1),
	}
}

// insetBox spans [d, size-d] inclusive. It is built literally so a margin
// larger than the canvas gives an empty box instead of a swapped one.
func insetBox(size, d int) image.Rectangle {
	return image.Rectangle{
		Min: image.Pt(d, d),
		Max: image.Pt(size-d+1, size-d+1),
	}
}

// Render draws the icon at size x size onto a fresh gradient raster.
func (l *LensIcon) Render(size int) *image.RGBA {
	img := VerticalGradient(size, size, l.Color.GradientTop, l.Color.GradientBottom)
	l.Draw(NewGGPen(img), size)
	return img
}

// Draw strokes the glyph for size with p. Later shapes paint over earlier
// ones, so the order below is part of the look.
func (l *LensIcon) Draw(p Pen, size int) {
	g := l.Geometry(size)

	if !p.StrokeRoundedRect(g.Frame(), g.Radius, g.Stroke, l.Color.Stroke) {
		p.StrokeRect(g.Frame(), g.Stroke, l.Color.Stroke)
	}

	p.StrokeEllipse(g.Lens(), g.Stroke, l.Color.Stroke)

	if size >= l.SparkleMinSize {
		l.drawSparkle(p, g)
	}

	if size >= l.HighlightMinSize {
		l.drawHighlight(p, g)
	}
}

func (l *LensIcon) drawSparkle(p Pen, g LensGeometry) {
	x, y, d := g.SparkleX, g.SparkleY, g.SparkleHalf
	p.StrokeLine(image.Pt(x-d, y), image.Pt(x+d, y), g.Thin, l.Color.Stroke)
	p.StrokeLine(image.Pt(x, y-d), image.Pt(x, y+d), g.Thin, l.Color.Stroke)
}

// drawHighlight is cosmetic: without alpha it falls back to an opaque
// stroke, and without rounded corners it is left out.
func (l *LensIcon) drawHighlight(p Pen, g LensGeometry) {
	c := l.Color.Highlight
	if !p.SupportsAlpha() {
		c.A = 0xff
	}
	p.StrokeRoundedRect(g.Inset(), g.InsetRadius(), 1, c)
}
