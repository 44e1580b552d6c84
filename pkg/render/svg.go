package render

import (
	"bytes"
	"fmt"
	"io"
)

// SVGSurface renders the pipeline's drawing calls into an SVG 1.1 document.
// Elements are grouped by layer (<g id="edges">, <g id="vertices">,
// <g id="labels">) in call order, so document order reproduces the
// pipeline's occlusion rules.
type SVGSurface struct {
	width    float64
	height   float64
	fontSize string

	body  bytes.Buffer
	layer string
}

// NewSVGSurface creates an SVG surface of the given pixel dimensions. The
// font size string is embedded into the document stylesheet; it must have
// been validated by the caller.
func NewSVGSurface(width, height float64, font FontSize) *SVGSurface {
	return &SVGSurface{width: width, height: height, fontSize: font.String()}
}

// Size returns the surface dimensions.
func (s *SVGSurface) Size() (w, h float64) { return s.width, s.height }

// BeginLayer closes the current element group and opens a new one.
func (s *SVGSurface) BeginLayer(name string) {
	s.closeLayer()
	s.layer = name
	fmt.Fprintf(&s.body, "  <g id=%q>\n", name)
}

func (s *SVGSurface) closeLayer() {
	if s.layer != "" {
		s.body.WriteString("  </g>\n")
		s.layer = ""
	}
}

// Line draws a straight stroke.
func (s *SVGSurface) Line(x1, y1, x2, y2 float64, st Stroke) {
	fmt.Fprintf(&s.body,
		"    <line x1=\"%.4f\" y1=\"%.4f\" x2=\"%.4f\" y2=\"%.4f\" style=\"stroke: %s; stroke-width: %g\"/>\n",
		x1, y1, x2, y2, st.Color, st.Width)
}

// Arc draws an unfilled circle outline.
func (s *SVGSurface) Arc(cx, cy, r float64, st Stroke) {
	fmt.Fprintf(&s.body,
		"    <circle cx=\"%.4f\" cy=\"%.4f\" r=\"%.4f\" fill=\"none\" style=\"stroke: %s; stroke-width: %g\"/>\n",
		cx, cy, r, st.Color, st.Width)
}

// Circle draws a filled circle. The outline comes from the stylesheet.
func (s *SVGSurface) Circle(cx, cy, r float64, fill string) {
	fmt.Fprintf(&s.body,
		"    <circle cx=\"%.4f\" cy=\"%.4f\" r=\"%.4f\" fill=%q/>\n", cx, cy, r, fill)
}

// SplitCircle draws the two-color bisected circle: one semicircular path
// per color plus an unfilled outline on top. The first color takes the arc
// swept with SVG sweep flag 0, the second the opposite sweep, preserving
// the historical half assignment.
func (s *SVGSurface) SplitCircle(cx, cy, r float64, first, second string) {
	fmt.Fprintf(&s.body,
		"    <path d=\"M %.4f,%.4f A%.4f,%.4f 0 0,0 %.4f,%.4f L %.4f,%.4f\" fill=%q/>\n",
		cx-r, cy, r, r, cx+r, cy, cx-r, cy, first)
	fmt.Fprintf(&s.body,
		"    <path d=\"M %.4f,%.4f A%.4f,%.4f 0 0,1 %.4f,%.4f L %.4f,%.4f\" fill=%q/>\n",
		cx-r, cy, r, r, cx+r, cy, cx-r, cy, second)
	fmt.Fprintf(&s.body,
		"    <circle cx=\"%.4f\" cy=\"%.4f\" r=\"%.4f\" fill=\"none\"/>\n", cx, cy, r)
}

// Rect draws a filled rectangle.
func (s *SVGSurface) Rect(x, y, w, h float64, fill string) {
	fmt.Fprintf(&s.body,
		"    <rect x=\"%.4f\" y=\"%.4f\" width=\"%.4f\" height=\"%.4f\" fill=%q/>\n",
		x, y, w, h, fill)
}

// Polygon draws a filled closed path.
func (s *SVGSurface) Polygon(pts []Point, fill string) {
	if len(pts) == 0 {
		return
	}
	fmt.Fprintf(&s.body, "    <path d=\"M %.4f,%.4f", pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		fmt.Fprintf(&s.body, " L %.4f,%.4f", p.X, p.Y)
	}
	fmt.Fprintf(&s.body, " z\" fill=%q/>\n", fill)
}

// Text draws a text element at the given baseline origin.
func (s *SVGSurface) Text(x, y float64, text string) {
	fmt.Fprintf(&s.body, "    <text x=\"%.4f\" y=\"%.4f\">%s</text>\n", x, y, escapeText(text))
}

// TextExtents returns a zero width and a nominal height. Horizontal
// centering is delegated to the stylesheet's text-anchor rule, which the
// viewer applies with the real glyph metrics; only the vertical baseline
// adjustment is done numerically.
func (s *SVGSurface) TextExtents(string) (w, h float64) { return 0, 10 }

// WriteTo assembles the complete document and writes it to w.
func (s *SVGSurface) WriteTo(w io.Writer) (int64, error) {
	s.closeLayer()
	var doc bytes.Buffer
	doc.WriteString("<?xml version=\"1.0\" standalone=\"no\"?>\n")
	doc.WriteString("<!DOCTYPE svg PUBLIC \"-//W3C//DTD SVG 1.1//EN\"\n")
	doc.WriteString("\"http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd\">\n")
	fmt.Fprintf(&doc,
		"<svg width=\"%d\" height=\"%d\" version=\"1.1\" xmlns=\"http://www.w3.org/2000/svg\">\n",
		int(s.width), int(s.height))
	doc.WriteString("<!-- Created by graphport -->\n")
	doc.WriteString("<defs>\n  <style type=\"text/css\">\n    <![CDATA[\n")
	doc.WriteString("#vertices circle { stroke: black; stroke-width: 1 }\n")
	doc.WriteString("#vertices path { stroke: black; stroke-width: 1 }\n")
	doc.WriteString("#vertices rect { stroke: black; stroke-width: 1 }\n")
	fmt.Fprintf(&doc,
		"#labels text { text-anchor: middle; font-size: %s; font-family: sans-serif; font-weight: normal }\n",
		s.fontSize)
	doc.WriteString("    ]]>\n  </style>\n</defs>\n")
	doc.Write(s.body.Bytes())
	doc.WriteString("</svg>\n")
	return doc.WriteTo(w)
}

// Bytes assembles and returns the complete document.
func (s *SVGSurface) Bytes() []byte {
	var buf bytes.Buffer
	_, _ = s.WriteTo(&buf) // buffer writes cannot fail
	return buf.Bytes()
}

func escapeText(s string) string {
	var buf bytes.Buffer
	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}
