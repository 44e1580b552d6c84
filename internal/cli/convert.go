package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/graphport/graphport/pkg/errors"
	"github.com/graphport/graphport/pkg/format"
	"github.com/graphport/graphport/pkg/graph"
)

// convertOpts holds the command-line flags for the convert command.
type convertOpts struct {
	from     string // input format token, empty means resolve from the path
	to       string // output format token, empty means resolve from the path
	directed bool   // directedness for formats that cannot express it
	index    int    // graph index for multi-graph containers
	level    int    // compression level for compressed envelopes
	names    string // vertex name attribute override
	weights  string // edge weight attribute override
}

// convertCommand creates the convert command.
func (c *CLI) convertCommand() *cobra.Command {
	var opts convertOpts

	cmd := &cobra.Command{
		Use:   "convert <input> <output>",
		Short: "Convert a graph file between formats",
		Long: `Convert reads a graph from the input file and writes it to the output
file. Formats are resolved from the file extensions unless overridden with
--from and --to; .txt and .dat inputs are identified from their content.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runConvert(args[0], args[1], opts)
		},
	}

	cmd.Flags().StringVar(&opts.from, "from", "", "input format (default: resolve from extension)")
	cmd.Flags().StringVar(&opts.to, "to", "", "output format (default: resolve from extension)")
	cmd.Flags().BoolVar(&opts.directed, "directed", false, "treat the input as directed (edgelist, ncol, lgl, adjacency)")
	cmd.Flags().IntVar(&opts.index, "index", 0, "graph index for multi-graph containers (graphml)")
	cmd.Flags().IntVar(&opts.level, "compression-level", 0, "gzip level 1-9 for compressed formats (default 9)")
	cmd.Flags().StringVar(&opts.names, "name-attr", "", "vertex attribute holding names")
	cmd.Flags().StringVar(&opts.weights, "weight-attr", "", "edge attribute holding weights")

	return cmd
}

func (c *CLI) runConvert(input, output string, opts convertOpts) error {
	g, err := c.readGraph(input, opts)
	if err != nil {
		return err
	}

	var to format.Format
	if opts.to != "" {
		if to, err = format.Parse(opts.to); err != nil {
			return err
		}
	}

	writeOpts := format.WriteOptions{
		CompressionLevel: opts.level,
		Names:            opts.names,
		Weights:          opts.weights,
	}
	p := newProgress(c.Logger)
	if err := format.Write(g, output, to, writeOpts); err != nil {
		return err
	}
	p.done(fmt.Sprintf("Wrote %s", output))

	printSuccess("Converted %s", input)
	printStats(g.VCount(), g.ECount(), false)
	printFile(output)
	return nil
}

// readGraph loads the input, falling back to an interactive format picker
// when content sniffing finds a genuinely ambiguous file.
func (c *CLI) readGraph(input string, opts convertOpts) (*graph.Graph, error) {
	var from format.Format
	var err error
	if opts.from != "" {
		if from, err = format.Parse(opts.from); err != nil {
			return nil, err
		}
	}

	readOpts := format.ReadOptions{Directed: opts.directed, Index: opts.index}
	g, err := format.Read(input, from, readOpts)
	if err == nil {
		return g, nil
	}
	if !errors.Is(err, errors.ErrCodeAmbiguousFormat) || !isInteractive() {
		return nil, err
	}

	picked, pickErr := pickFormat(input)
	if pickErr != nil {
		return nil, err
	}
	return format.Read(input, picked, readOpts)
}
