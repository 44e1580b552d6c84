package render

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/graphport/graphport/pkg/graph"
	"github.com/graphport/graphport/pkg/layout"
)

// DOTOptions configures DOT export.
type DOTOptions struct {
	// Name is the graph name in the DOT header. Empty defaults to "G".
	Name string
	// Layout pins vertex positions via pos attributes. When nil, Graphviz
	// picks positions itself.
	Layout *layout.Layout
	// LabelAttr names a vertex attribute used for node labels. Empty uses
	// vertex ids.
	LabelAttr string
}

// ToDOT converts a graph to Graphviz DOT format. Vertex color and shape
// attributes carry over when present; everything else uses Graphviz
// defaults. The resulting string can be rendered with [RenderDOT].
func ToDOT(g *graph.Graph, opts DOTOptions) string {
	name := opts.Name
	if name == "" {
		name = "G"
	}

	var buf bytes.Buffer
	edgeOp := "--"
	if g.IsDirected() {
		fmt.Fprintf(&buf, "digraph %q {\n", name)
		edgeOp = "->"
	} else {
		fmt.Fprintf(&buf, "graph %q {\n", name)
	}
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=red];\n")
	buf.WriteString("\n")

	labels, _ := g.Vs().AttrValues(opts.LabelAttr)
	colors, _ := g.Vs().AttrValues("color")
	for i := 0; i < g.VCount(); i++ {
		attrs := nodeAttrs(i, labels, colors, opts.Layout)
		fmt.Fprintf(&buf, "  %d [%s];\n", i, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %d %s %d;\n", e.From, edgeOp, e.To)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeAttrs(i int, labels, colors []any, l *layout.Layout) []string {
	label := fmt.Sprintf("%d", i)
	if i < len(labels) && labels[i] != nil {
		label = fmt.Sprintf("%v", labels[i])
	}
	attrs := []string{fmt.Sprintf("label=%q", label)}

	if i < len(colors) && colors[i] != nil {
		attrs = append(attrs, fmt.Sprintf("fillcolor=%q", colors[i]))
	}
	if l != nil && i < l.Len() {
		// DOT pos is in points with y growing upward, with a trailing
		// "!" to pin the position under layout engines that honor it.
		attrs = append(attrs, fmt.Sprintf("pos=\"%.4f,%.4f!\"", l.X(i), -l.Y(i)))
	}
	return attrs
}

// RenderDOT renders a DOT graph to the given format using Graphviz.
func RenderDOT(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderGraphviz draws a graph through the Graphviz engine instead of the
// built-in pipeline. When opts carries no explicit layout and names a known
// layout algorithm, positions are computed up front and pinned so output
// matches the built-in surfaces.
func RenderGraphviz(ctx context.Context, g *graph.Graph, l *layout.Layout, format graphviz.Format) ([]byte, error) {
	if l == nil {
		fn, err := layout.Get(DefaultLayout)
		if err != nil {
			return nil, err
		}
		if l, err = fn(g.VCount()); err != nil {
			return nil, err
		}
	}
	// Graphviz point coordinates are tiny at unit scale, so spread the
	// layout out before pinning.
	scaled := l.Copy()
	if err := scaled.Scale(pointScale(l)); err != nil {
		return nil, err
	}
	dot := ToDOT(g, DOTOptions{Layout: scaled, LabelAttr: "label"})
	return RenderDOT(ctx, dot, format)
}

func pointScale(l *layout.Layout) float64 {
	min, max := l.BoundingBox()
	span := 0.0
	for d := range min {
		span = math.Max(span, max[d]-min[d])
	}
	if span == 0 {
		return 1
	}
	return 100 / span
}
