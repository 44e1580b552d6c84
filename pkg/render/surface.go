package render

// Point is a 2D coordinate on the output surface.
type Point struct {
	X float64
	Y float64
}

// Stroke describes how a line or arc is drawn.
type Stroke struct {
	Color string
	Width float64
}

// Surface is the drawing target of the render pipeline. Implementations
// translate the primitive calls into their output medium: an SVG document,
// a raster image, or anything else with lines, shapes and text.
//
// Calls arrive in the pipeline's fixed draw order; implementations that
// care about occlusion only need to honor call order. BeginLayer marks the
// three phases (edges, vertices, labels) so structured outputs can group
// their elements; implementations without grouping ignore it.
type Surface interface {
	// Size returns the surface dimensions in pixels.
	Size() (w, h float64)

	// BeginLayer starts a named element group ("edges", "vertices",
	// "labels").
	BeginLayer(name string)

	// Line draws a straight stroke from (x1,y1) to (x2,y2).
	Line(x1, y1, x2, y2 float64, s Stroke)

	// Arc draws an unfilled full-circle outline, used for self-loops.
	Arc(cx, cy, r float64, s Stroke)

	// Circle draws a filled circle with the surface's default outline.
	Circle(cx, cy, r float64, fill string)

	// SplitCircle draws a circle bisected into two filled halves. The
	// first color fills the half swept first, matching the historical
	// two-color vertex rendering.
	SplitCircle(cx, cy, r float64, first, second string)

	// Rect draws a filled axis-aligned rectangle with top-left (x,y).
	Rect(x, y, w, h float64, fill string)

	// Polygon draws a filled closed polygon, used for arrowheads.
	Polygon(pts []Point, fill string)

	// Text draws s with its baseline origin at (x,y).
	Text(x, y float64, s string)

	// TextExtents measures the rendered width and height of s.
	TextExtents(s string) (w, h float64)
}
