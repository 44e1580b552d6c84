package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/goccy/go-graphviz"
	"github.com/spf13/cobra"

	"github.com/graphport/graphport/pkg/cache"
	"github.com/graphport/graphport/pkg/config"
	"github.com/graphport/graphport/pkg/errors"
	"github.com/graphport/graphport/pkg/format"
	"github.com/graphport/graphport/pkg/observability"
	"github.com/graphport/graphport/pkg/render"
)

const (
	engineBuiltin  = "builtin"  // the built-in drawing pipeline
	engineGraphviz = "graphviz" // layout and drawing through the dot engine
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output     string  // output file path, default input base + target extension
	target     string  // output format: svg, png, dot
	engine     string  // rendering engine: builtin or graphviz
	from       string  // input format override
	directed   bool    // directedness for formats that cannot express it
	layoutName string  // layout algorithm name
	width      float64 // surface width in pixels
	height     float64 // surface height in pixels
	vertexSize float64 // base vertex size in pixels
	fontSize   string  // label font size (pixels or CSS value)
	labelAttr  string  // vertex attribute for labels
	colorAttr  string  // vertex attribute for colors
	shapeAttr  string  // vertex attribute for shapes
	noLabels   bool    // suppress the label layer
	noCache    bool    // bypass the artifact cache
	configPath string  // config file override
}

// renderCommand creates the render command for drawing graph files.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <input>",
		Short: "Draw a graph file as SVG, PNG, or DOT",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateEngine(opts.engine); err != nil {
				return err
			}
			if err := validateTarget(opts.target); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: input name with the target extension)")
	cmd.Flags().StringVarP(&opts.target, "format", "f", "svg", "output format: svg (default), png, dot")
	cmd.Flags().StringVar(&opts.engine, "engine", engineBuiltin, "rendering engine: builtin (default), graphviz")
	cmd.Flags().StringVar(&opts.from, "from", "", "input format (default: resolve from extension)")
	cmd.Flags().BoolVar(&opts.directed, "directed", false, "treat the input as directed (edgelist, ncol, lgl, adjacency)")
	cmd.Flags().StringVar(&opts.layoutName, "layout", "", "layout algorithm: circle, grid, random, star")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "surface width in pixels")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "surface height in pixels")
	cmd.Flags().Float64Var(&opts.vertexSize, "vertex-size", 0, "base vertex size in pixels")
	cmd.Flags().StringVar(&opts.fontSize, "font-size", "", "label font size")
	cmd.Flags().StringVar(&opts.labelAttr, "label-attr", "", "vertex attribute holding labels")
	cmd.Flags().StringVar(&opts.colorAttr, "color-attr", "", "vertex attribute holding colors")
	cmd.Flags().StringVar(&opts.shapeAttr, "shape-attr", "", "vertex attribute holding shape codes")
	cmd.Flags().BoolVar(&opts.noLabels, "no-labels", false, "suppress the label layer")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the artifact cache")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file (default: ~/.config/graphport/config.toml)")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, input string, opts *renderOpts) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	g, err := c.readGraph(input, convertOpts{from: opts.from, directed: opts.directed})
	if err != nil {
		return err
	}

	renderOptions := buildRenderOptions(cfg.Render, opts)
	writeOpts := format.WriteOptions{Render: renderOptions}

	store := c.newCache(ctx, cfg.Cache, opts.noCache)
	defer store.Close()

	raw, err := os.ReadFile(input)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "read %q", input)
	}
	// Attr values marshal opaquely, so the raw flag values join the key too.
	key := cache.ArtifactKey(cache.Hash(raw), opts.target, opts.engine, renderOptions,
		opts.labelAttr, opts.colorAttr, opts.shapeAttr, opts.noLabels)
	ttl := time.Duration(cfg.Cache.TTLHours) * time.Hour

	output := opts.output
	if output == "" {
		output = outputPath(input, opts.target)
	}

	if data, hit, err := store.Get(ctx, key); err == nil && hit {
		if err := os.WriteFile(output, data, 0644); err != nil {
			return err
		}
		printSuccess("Rendered %s", input)
		printStats(g.VCount(), g.ECount(), true)
		printFile(output)
		return nil
	}

	spin := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s", input))
	spin.Start()

	var buf bytes.Buffer
	renderStart := time.Now()
	observability.Render().OnRenderStart(ctx, opts.target)
	switch {
	case opts.engine == engineGraphviz && opts.target != "dot":
		gvFormat := graphviz.SVG
		if opts.target == "png" {
			gvFormat = graphviz.PNG
		}
		err = format.WriteGraphviz(ctx, g, &buf, gvFormat, writeOpts)
	case opts.target == "png":
		err = format.WritePNG(g, &buf, writeOpts)
	default:
		err = format.WriteTo(g, &buf, format.Format(opts.target), writeOpts)
	}
	observability.Render().OnRenderComplete(ctx, opts.target, time.Since(renderStart), err)
	if err != nil {
		spin.StopWithError(fmt.Sprintf("Render failed: %s", errors.UserMessage(err)))
		return err
	}
	spin.Stop()

	if err := os.WriteFile(output, buf.Bytes(), 0644); err != nil {
		return err
	}
	if err := store.Set(ctx, key, buf.Bytes(), ttl); err != nil {
		c.Logger.Warn("cache set failed", "error", err)
	}

	printSuccess("Rendered %s", input)
	printStats(g.VCount(), g.ECount(), false)
	printFile(output)
	return nil
}

// buildRenderOptions merges config defaults with command-line flags.
func buildRenderOptions(defaults config.Render, opts *renderOpts) render.Options {
	o := render.Options{
		Width:      defaults.Width,
		Height:     defaults.Height,
		VertexSize: defaults.VertexSize,
		Layout:     defaults.Layout,
	}
	if defaults.FontSize > 0 {
		o.FontSize = render.FontSize{Px: defaults.FontSize}
	}
	if opts.width != 0 {
		o.Width = opts.width
	}
	if opts.height != 0 {
		o.Height = opts.height
	}
	if opts.vertexSize != 0 {
		o.VertexSize = opts.vertexSize
	}
	if opts.layoutName != "" {
		o.Layout = opts.layoutName
	}
	if opts.fontSize != "" {
		o.FontSize = render.ParseFontSize(opts.fontSize)
	}
	if opts.labelAttr != "" {
		o.Labels = render.Ref(opts.labelAttr)
	}
	if opts.colorAttr != "" {
		o.Colors = render.Ref(opts.colorAttr)
	}
	if opts.shapeAttr != "" {
		o.Shapes = render.Ref(opts.shapeAttr)
	}
	if opts.noLabels {
		o.Labels = render.Off()
	}
	return o
}

// outputPath swaps the input extension for the target's.
func outputPath(input, target string) string {
	base := strings.TrimSuffix(input, fileExt(input))
	return base + "." + target
}

func fileExt(path string) string {
	if i := strings.LastIndex(path, "."); i >= 0 && !strings.ContainsAny(path[i:], "/\\") {
		return path[i:]
	}
	return ""
}

func validateEngine(engine string) error {
	switch engine {
	case engineBuiltin, engineGraphviz:
		return nil
	default:
		return errors.New(errors.ErrCodeValidation, "unknown engine %q (want builtin or graphviz)", engine)
	}
}

func validateTarget(target string) error {
	switch target {
	case "svg", "png", "dot":
		return nil
	default:
		return errors.New(errors.ErrCodeValidation, "unknown render format %q (want svg, png, or dot)", target)
	}
}
