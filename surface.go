package folio

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Surface is the 2D drawing target the page renders onto. Coordinates are in
// screen pixels with the origin at the top-left.
type Surface interface {
	// Size returns the current pixel dimensions of the surface.
	Size() (width, height float64)
	// Clear erases the whole surface to transparent.
	Clear()
	// FillCircle draws a filled circle.
	FillCircle(cx, cy, r float64, c Color)
	// StrokeLine draws a line segment of the given width.
	StrokeLine(x0, y0, x1, y1, width float64, c Color)
	// FillRect draws a filled axis-aligned rectangle.
	FillRect(r Rect, c Color)
}

// TextSurface is implemented by surfaces that can draw labels.
type TextSurface interface {
	DrawText(s string, x, y float64, c Color)
}

var labelFace = text.NewGoXFace(basicfont.Face7x13)

// ImageSurface adapts an *ebiten.Image to Surface using the vector package.
type ImageSurface struct {
	Image *ebiten.Image
	// AntiAlias enables anti-aliased circles and lines.
	AntiAlias bool
}

// NewImageSurface wraps img. A nil image yields a surface that draws nothing.
func NewImageSurface(img *ebiten.Image) *ImageSurface {
	return &ImageSurface{Image: img, AntiAlias: true}
}

// Size returns the image bounds.
func (s *ImageSurface) Size() (float64, float64) {
	if s.Image == nil {
		return 0, 0
	}
	b := s.Image.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// Clear erases the image.
func (s *ImageSurface) Clear() {
	if s.Image == nil {
		return
	}
	s.Image.Clear()
}

// FillCircle draws a filled circle with vector.DrawFilledCircle.
func (s *ImageSurface) FillCircle(cx, cy, r float64, c Color) {
	if s.Image == nil || c.A <= 0 {
		return
	}
	vector.DrawFilledCircle(s.Image, float32(cx), float32(cy), float32(r), c.toRGBA(), s.AntiAlias)
}

// StrokeLine draws a line with vector.StrokeLine.
func (s *ImageSurface) StrokeLine(x0, y0, x1, y1, width float64, c Color) {
	if s.Image == nil || c.A <= 0 {
		return
	}
	vector.StrokeLine(s.Image, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), c.toRGBA(), s.AntiAlias)
}

// FillRect draws a filled rectangle with vector.DrawFilledRect.
func (s *ImageSurface) FillRect(r Rect, c Color) {
	if s.Image == nil || c.A <= 0 || r.Width <= 0 || r.Height <= 0 {
		return
	}
	vector.DrawFilledRect(s.Image, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), c.toRGBA(), false)
}

// DrawText draws s with its top-left corner at (x, y).
func (s *ImageSurface) DrawText(str string, x, y float64, c Color) {
	if s.Image == nil || c.A <= 0 {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c.toRGBA())
	text.Draw(s.Image, str, labelFace, op)
}
