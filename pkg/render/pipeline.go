// Package render draws a graph with a computed layout onto a drawing
// surface. The draw order is fixed: edges first, then vertices, then
// labels, so vertices always overdraw the edge strokes that end at them.
//
// Every drawing parameter (color, size, shape, width, label, angle,
// distance) resolves through the same three-tier fallback: an explicit
// per-element sequence, a named element attribute, or the documented
// default. See Resolve.
//
// All angles are radians. The pipeline never mutates the graph or layout it
// is given; normalization works on a copy of the coordinates.
package render

import (
	"math"

	"github.com/graphport/graphport/pkg/errors"
	"github.com/graphport/graphport/pkg/graph"
	"github.com/graphport/graphport/pkg/layout"
)

// Arrowhead geometry: wing length in pixels and half-opening angle.
// The triangle is the same for every edge regardless of vertex size.
const (
	arrowLength = 15.0
	arrowAngle  = math.Pi / 10
)

// selfLoopAngle is the constant diagonal at which a self-loop arc is offset
// from its vertex center. Multiple loops on one vertex draw on top of each
// other; the pipeline makes no attempt to fan them out.
const selfLoopAngle = math.Pi / 4

// Render draws g onto surf using the given layout. A nil layout is computed
// with the algorithm named by opts.Layout (default "circle").
//
// Option validation and shape-code validation happen before the first
// drawing command; a validation failure leaves the surface untouched.
func Render(g *graph.Graph, l *layout.Layout, surf Surface, opts Options) error {
	o := opts.withDefaults()
	if err := o.validate(); err != nil {
		return err
	}

	if l == nil {
		f, err := layout.Get(o.Layout)
		if err != nil {
			return errors.Wrap(errors.ErrCodeValidation, err, "layout")
		}
		if l, err = f(g.VCount()); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "compute layout %q", o.Layout)
		}
	}
	if l.Len() < g.VCount() {
		return errors.New(errors.ErrCodeValidation,
			"layout has %d points for %d vertices", l.Len(), g.VCount())
	}

	n, m := g.VCount(), g.ECount()
	vs, es := g.Vs(), g.Es()

	colors, err := resolveStrings(n, orRef(o.Colors, "color"), vs, defaultVertexColor)
	if err != nil {
		return err
	}
	sizes, err := resolveFloats(n, orRef(o.Sizes, "size"), vs, o.VertexSize)
	if err != nil {
		return err
	}
	shapes, err := resolveInts(n, orRef(o.Shapes, "shape"), vs, defaultShape)
	if err != nil {
		return err
	}
	labels, err := resolveLabels(n, o.Labels, vs)
	if err != nil {
		return err
	}
	dists, err := resolveFloats(n, orRef(o.LabelDists, "label_dist"), vs, defaultLabelDist)
	if err != nil {
		return err
	}
	angles, err := resolveFloats(n, orRef(o.LabelAngles, "label_angle"), vs, defaultLabelAngle)
	if err != nil {
		return err
	}
	edgeColors, err := resolveStrings(m, orRef(o.EdgeColors, "color"), es, defaultEdgeColor)
	if err != nil {
		return err
	}
	edgeWidths, err := resolveFloats(m, orRef(o.EdgeWidths, "width"), es, defaultEdgeWidth)
	if err != nil {
		return err
	}

	// Fail fast on unknown shape codes: nothing may be drawn yet.
	for i, s := range shapes {
		switch s {
		case ShapeNone, ShapeCircle, ShapeSquare:
		default:
			return errors.New(errors.ErrCodeValidation, "vertex %d: unknown shape code %d", i, s)
		}
	}

	maxSize := 0.0
	for _, s := range sizes {
		if s > maxSize {
			maxSize = s
		}
	}

	w, h := surf.Size()
	pts := normalize(l, n, w, h, maxSize)
	directed := g.IsDirected()

	surf.BeginLayer("edges")
	for i, e := range g.Edges() {
		st := Stroke{Color: edgeColors[i], Width: edgeWidths[i]}
		if e.IsLoop() {
			drawSelfLoop(surf, pts[e.From], sizes[e.From], st)
			continue
		}
		src, tgt := pts[e.From], pts[e.To]
		angle := math.Atan2(tgt.Y-src.Y, tgt.X-src.X)
		end := tgt
		if directed {
			// Stop the stroke at the vertex boundary, not its center.
			end = Point{
				X: tgt.X - sizes[e.To]*math.Cos(angle),
				Y: tgt.Y - sizes[e.To]*math.Sin(angle),
			}
		}
		surf.Line(src.X, src.Y, end.X, end.Y, st)
		if directed {
			drawArrowhead(surf, end, angle, edgeColors[i])
		}
	}

	surf.BeginLayer("vertices")
	for i := 0; i < n; i++ {
		p := pts[i]
		switch shapes[i] {
		case ShapeNone:
		case ShapeCircle:
			if first, second, ok := splitColor(colors[i]); ok {
				surf.SplitCircle(p.X, p.Y, sizes[i], first, second)
			} else {
				surf.Circle(p.X, p.Y, sizes[i], colors[i])
			}
		case ShapeSquare:
			surf.Rect(p.X-sizes[i], p.Y-sizes[i], 2*sizes[i], 2*sizes[i], colors[i])
		}
	}

	surf.BeginLayer("labels")
	for i := 0; i < n; i++ {
		if labels[i] == "" {
			continue
		}
		tw, th := surf.TextExtents(labels[i])
		ax := pts[i].X + math.Cos(angles[i])*dists[i]*sizes[i] - tw/2
		ay := pts[i].Y + math.Sin(angles[i])*dists[i]*sizes[i] + th/2
		surf.Text(ax, ay, labels[i])
	}

	return nil
}

// normalize maps the first n layout points into the surface, leaving a
// margin of maxSize on every side. The scale is computed per axis; an axis
// with zero extent (all points identical along it) uses a denominator of 1
// so degenerate layouts never divide by zero. The bounding-box center lands
// at the surface center.
func normalize(l *layout.Layout, n int, w, h, maxSize float64) []Point {
	min, max := l.BoundingBox()
	sx, tx := normalizeAxis(min[0], max[0], w, maxSize)
	sy, ty := normalizeAxis(min[1], max[1], h, maxSize)

	pts := make([]Point, n)
	for i := range pts {
		pts[i] = Point{X: l.X(i)*sx + tx, Y: l.Y(i)*sy + ty}
	}
	return pts
}

// normalizeAxis computes the scale and translation for one axis. Applying
// it to the same bounding box twice yields the same parameters: the
// transform depends only on the box and the surface extent.
func normalizeAxis(min, max, extent, margin float64) (scale, translate float64) {
	span := max - min
	if span == 0 {
		span = 1
	}
	scale = (extent - 2*margin) / span
	center := (min + max) / 2
	translate = extent/2 - center*scale
	return scale, translate
}

func drawSelfLoop(surf Surface, p Point, size float64, st Stroke) {
	r := size * 2
	cx := p.X + math.Cos(selfLoopAngle)*r/2
	cy := p.Y - math.Sin(selfLoopAngle)*r/2
	surf.Arc(cx, cy, r/2, st)
}

func drawArrowhead(surf Surface, tip Point, angle float64, color string) {
	a1 := Point{
		X: tip.X - arrowLength*math.Cos(angle-arrowAngle),
		Y: tip.Y - arrowLength*math.Sin(angle-arrowAngle),
	}
	a2 := Point{
		X: tip.X - arrowLength*math.Cos(angle+arrowAngle),
		Y: tip.Y - arrowLength*math.Sin(angle+arrowAngle),
	}
	surf.Polygon([]Point{tip, a1, a2}, color)
}

// orRef substitutes the conventional attribute reference when a drawing
// parameter was left unset, so `--colors` defaults to the "color" attribute
// and so on.
func orRef(a Attr, name string) Attr {
	if a.kind == attrUnset {
		return Ref(name)
	}
	return a
}

// resolveLabels handles the label-specific defaults: the documented
// fallback is the vertex's 1-based ordinal, and Off() resolves every label
// to the empty string (labels disabled).
func resolveLabels(n int, a Attr, store Store) ([]string, error) {
	if a.IsOff() {
		return make([]string, n), nil
	}
	ordinal := DefaultFunc(func(i int) any { return i + 1 })
	return resolveStrings(n, orRef(a, "label"), store, ordinal)
}
