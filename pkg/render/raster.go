package render

import (
	"image"
	"io"
	"math"

	"github.com/fogleman/gg"
)

// RasterSurface renders the pipeline's drawing calls into a raster image
// using a 2D graphics context. Color strings are parsed with ParseColor, so
// only hex notation and SVG color names are accepted on this surface.
type RasterSurface struct {
	dc     *gg.Context
	width  float64
	height float64

	// err holds the first color-parse failure; drawing continues so the
	// pipeline's call sequence stays intact, and the error surfaces on
	// encode.
	err error
}

// NewRasterSurface creates a raster surface with a white background.
func NewRasterSurface(width, height float64) *RasterSurface {
	dc := gg.NewContext(int(width), int(height))
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetRGB(0, 0, 0)
	return &RasterSurface{dc: dc, width: width, height: height}
}

// Size returns the surface dimensions.
func (s *RasterSurface) Size() (w, h float64) { return s.width, s.height }

// BeginLayer is a no-op; raster output has no grouping.
func (s *RasterSurface) BeginLayer(string) {}

// Line draws a straight stroke.
func (s *RasterSurface) Line(x1, y1, x2, y2 float64, st Stroke) {
	if !s.setColor(st.Color) {
		return
	}
	s.dc.SetLineWidth(st.Width)
	s.dc.DrawLine(x1, y1, x2, y2)
	s.dc.Stroke()
}

// Arc draws an unfilled circle outline.
func (s *RasterSurface) Arc(cx, cy, r float64, st Stroke) {
	if !s.setColor(st.Color) {
		return
	}
	s.dc.SetLineWidth(st.Width)
	s.dc.DrawCircle(cx, cy, r)
	s.dc.Stroke()
}

// Circle draws a filled circle with a black outline.
func (s *RasterSurface) Circle(cx, cy, r float64, fill string) {
	if !s.setColor(fill) {
		return
	}
	s.dc.DrawCircle(cx, cy, r)
	s.dc.FillPreserve()
	s.outline()
}

// SplitCircle draws the two-color bisected circle as two half-disks with a
// shared outline. The first color fills the lower half (the arc swept
// first), matching the SVG surface's sweep assignment.
func (s *RasterSurface) SplitCircle(cx, cy, r float64, first, second string) {
	if !s.setColor(first) {
		return
	}
	s.halfDisk(cx, cy, r, 0)
	if !s.setColor(second) {
		return
	}
	s.halfDisk(cx, cy, r, math.Pi)
	s.dc.DrawCircle(cx, cy, r)
	s.outline()
}

func (s *RasterSurface) halfDisk(cx, cy, r, start float64) {
	s.dc.DrawArc(cx, cy, r, start, start+math.Pi)
	s.dc.ClosePath()
	s.dc.Fill()
}

// Rect draws a filled rectangle with a black outline.
func (s *RasterSurface) Rect(x, y, w, h float64, fill string) {
	if !s.setColor(fill) {
		return
	}
	s.dc.DrawRectangle(x, y, w, h)
	s.dc.FillPreserve()
	s.outline()
}

// Polygon draws a filled closed polygon.
func (s *RasterSurface) Polygon(pts []Point, fill string) {
	if len(pts) == 0 || !s.setColor(fill) {
		return
	}
	s.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		s.dc.LineTo(p.X, p.Y)
	}
	s.dc.ClosePath()
	s.dc.Fill()
}

// Text draws s in black at the given baseline origin.
func (s *RasterSurface) Text(x, y float64, text string) {
	s.dc.SetRGB(0, 0, 0)
	s.dc.DrawString(text, x, y)
}

// TextExtents measures s with the context's current font face.
func (s *RasterSurface) TextExtents(text string) (w, h float64) {
	return s.dc.MeasureString(text)
}

// EncodePNG writes the rendered image as PNG. A color-parse failure during
// drawing is reported here.
func (s *RasterSurface) EncodePNG(w io.Writer) error {
	if s.err != nil {
		return s.err
	}
	return s.dc.EncodePNG(w)
}

// Image returns the rendered image and the first drawing error, if any.
func (s *RasterSurface) Image() (image.Image, error) {
	return s.dc.Image(), s.err
}

func (s *RasterSurface) setColor(c string) bool {
	col, err := ParseColor(c)
	if err != nil {
		if s.err == nil {
			s.err = err
		}
		return false
	}
	s.dc.SetRGB(col.R, col.G, col.B)
	return true
}

func (s *RasterSurface) outline() {
	s.dc.SetRGB(0, 0, 0)
	s.dc.SetLineWidth(1)
	s.dc.Stroke()
}
