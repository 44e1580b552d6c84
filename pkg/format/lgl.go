package format

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/graphport/graphport/pkg/graph"
)

// readLGL parses the LGL connectivity format: a "# source" line opens a
// block, and each following line names one neighbor of that source with an
// optional weight. Vertex names become the "name" attribute; weights the
// "weight" edge attribute.
func readLGL(r io.Reader, opts ReadOptions) (*graph.Graph, error) {
	ids := map[string]int{}
	var names []any
	intern := func(name string) int {
		if id, ok := ids[name]; ok {
			return id
		}
		id := len(names)
		ids[name] = id
		names = append(names, name)
		return id
	}

	var edges []graph.Edge
	var weights []any
	weighted := false
	source := -1

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		if strings.HasPrefix(text, "#") {
			name := strings.TrimSpace(text[1:])
			if name == "" {
				return nil, fmt.Errorf("line %d: empty source name", line)
			}
			source = intern(name)
			continue
		}
		if source < 0 {
			return nil, fmt.Errorf("line %d: neighbor before any # source line", line)
		}
		fields := strings.Fields(text)
		switch len(fields) {
		case 1:
			weights = append(weights, nil)
		case 2:
			w, err := strconv.ParseFloat(fields[1], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad weight %q", line, fields[1])
			}
			weights = append(weights, w)
			weighted = true
		default:
			return nil, fmt.Errorf("line %d: expected 1 or 2 fields, got %d", line, len(fields))
		}
		edges = append(edges, graph.Edge{From: source, To: intern(fields[0])})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	g, err := graph.New(len(names), edges, opts.Directed)
	if err != nil {
		return nil, err
	}
	if err := g.Vs().SetAttr(NameAttr, names); err != nil {
		return nil, err
	}
	if weighted {
		if err := g.Es().SetAttr(WeightAttr, weights); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// writeLGL groups edges by source vertex, emitting each source once as a
// "# name" line followed by its neighbors.
func writeLGL(g *graph.Graph, w io.Writer, opts WriteOptions) error {
	names := vertexNames(g, opts.nameAttr())
	weights, weighted := g.Es().AttrValues(opts.weightAttr())

	edges := g.Edges()
	bySource := make([][]int, g.VCount())
	for i, e := range edges {
		bySource[e.From] = append(bySource[e.From], i)
	}

	bw := bufio.NewWriter(w)
	for from, idx := range bySource {
		if len(idx) == 0 {
			continue
		}
		fmt.Fprintf(bw, "# %s\n", names[from])
		for _, i := range idx {
			to := edges[i].To
			if weighted && i < len(weights) && weights[i] != nil {
				fmt.Fprintf(bw, "%s %v\n", names[to], weights[i])
			} else {
				fmt.Fprintf(bw, "%s\n", names[to])
			}
		}
	}
	return bw.Flush()
}
