package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/graphport/graphport/pkg/graph"
)

// infoCommand creates the info command printing a summary of a graph file.
func (c *CLI) infoCommand() *cobra.Command {
	var opts convertOpts

	cmd := &cobra.Command{
		Use:   "info <input>",
		Short: "Print a summary of a graph file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := c.readGraph(args[0], opts)
			if err != nil {
				return err
			}
			printGraphInfo(args[0], g)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.from, "from", "", "input format (default: resolve from extension)")
	cmd.Flags().BoolVar(&opts.directed, "directed", false, "treat the input as directed (edgelist, ncol, lgl, adjacency)")
	cmd.Flags().IntVar(&opts.index, "index", 0, "graph index for multi-graph containers (graphml)")

	return cmd
}

func printGraphInfo(path string, g *graph.Graph) {
	fmt.Println(StyleTitle.Render(path))

	kind := "undirected"
	if g.IsDirected() {
		kind = "directed"
	}
	printKeyValue("type", kind)
	printKeyValue("vertices", fmt.Sprintf("%d", g.VCount()))
	printKeyValue("edges", fmt.Sprintf("%d", g.ECount()))

	if names := attrNames(g); len(names) > 0 {
		printKeyValue("attributes", strings.Join(names, ", "))
	}
}

// attrNames collects graph, vertex, and edge attribute names with a
// g/v/e prefix marking their scope.
func attrNames(g *graph.Graph) []string {
	var names []string
	for _, n := range g.AttrNames() {
		names = append(names, "g:"+n)
	}
	for _, n := range g.Vs().AttrNames() {
		names = append(names, "v:"+n)
	}
	for _, n := range g.Es().AttrNames() {
		names = append(names, "e:"+n)
	}
	sort.Strings(names)
	return names
}
