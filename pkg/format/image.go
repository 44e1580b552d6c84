package format

import (
	"context"
	"io"

	"github.com/goccy/go-graphviz"

	"github.com/graphport/graphport/pkg/graph"
	"github.com/graphport/graphport/pkg/render"
)

// writeSVG renders the graph as an SVG document using the drawing options
// and layout in opts.
func writeSVG(g *graph.Graph, w io.Writer, opts WriteOptions) error {
	o := opts.Render
	if o.Width == 0 && o.Height == 0 {
		o.Width, o.Height = render.DefaultWidth, render.DefaultHeight
	}
	surf := render.NewSVGSurface(orDefault(o.Width, o.Height), orDefault(o.Height, o.Width), o.FontSize)
	if err := render.Render(g, opts.Layout, surf, o); err != nil {
		return err
	}
	_, err := surf.WriteTo(w)
	return err
}

// writePNG rasterizes the graph. Registered for use by the CLI and the
// HTTP surface rather than the extension table; .png is not a graph
// serialization format.
func writePNG(g *graph.Graph, w io.Writer, opts WriteOptions) error {
	o := opts.Render
	if o.Width == 0 && o.Height == 0 {
		o.Width, o.Height = render.DefaultWidth, render.DefaultHeight
	}
	surf := render.NewRasterSurface(orDefault(o.Width, o.Height), orDefault(o.Height, o.Width))
	if err := render.Render(g, opts.Layout, surf, o); err != nil {
		return err
	}
	return surf.EncodePNG(w)
}

// writeDOT emits Graphviz DOT text. Vertex positions are pinned only when
// the caller supplies a layout.
func writeDOT(g *graph.Graph, w io.Writer, opts WriteOptions) error {
	_, err := io.WriteString(w, render.ToDOT(g, render.DOTOptions{
		Layout:    opts.Layout,
		LabelAttr: opts.nameAttr(),
	}))
	return err
}

// WritePNG is the exported entry for raster output.
func WritePNG(g *graph.Graph, w io.Writer, opts WriteOptions) error {
	return writePNG(g, w, opts)
}

// WriteGraphviz renders through the Graphviz engine instead of the
// built-in pipeline.
func WriteGraphviz(ctx context.Context, g *graph.Graph, w io.Writer, f graphviz.Format, opts WriteOptions) error {
	out, err := render.RenderGraphviz(ctx, g, opts.Layout, f)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

// WriteGraphvizSVG is WriteGraphviz fixed to SVG output.
func WriteGraphvizSVG(ctx context.Context, g *graph.Graph, w io.Writer, opts WriteOptions) error {
	return WriteGraphviz(ctx, g, w, graphviz.SVG, opts)
}

func orDefault(v, alt float64) float64 {
	if v != 0 {
		return v
	}
	return alt
}
