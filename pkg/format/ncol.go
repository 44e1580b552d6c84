package format

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/graphport/graphport/pkg/graph"
)

// readNCOL parses the NCOL edge-list format: one "source target [weight]"
// triple per line, with symbolic vertex names. Names become the "name"
// vertex attribute in first-seen order; a third field becomes the "weight"
// edge attribute.
func readNCOL(r io.Reader, opts ReadOptions) (*graph.Graph, error) {
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

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		switch len(fields) {
		case 0:
			continue
		case 2:
			weights = append(weights, nil)
		case 3:
			w, err := strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad weight %q", line, fields[2])
			}
			weights = append(weights, w)
			weighted = true
		default:
			return nil, fmt.Errorf("line %d: expected 2 or 3 fields, got %d", line, len(fields))
		}
		edges = append(edges, graph.Edge{From: intern(fields[0]), To: intern(fields[1])})
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

// writeNCOL emits one edge per line using the vertex name attribute, the
// numeric vertex id when a name is missing, and the edge weight attribute
// when present.
func writeNCOL(g *graph.Graph, w io.Writer, opts WriteOptions) error {
	names := vertexNames(g, opts.nameAttr())
	weights, weighted := g.Es().AttrValues(opts.weightAttr())

	bw := bufio.NewWriter(w)
	for i, e := range g.Edges() {
		if weighted && i < len(weights) && weights[i] != nil {
			fmt.Fprintf(bw, "%s %s %v\n", names[e.From], names[e.To], weights[i])
		} else {
			fmt.Fprintf(bw, "%s %s\n", names[e.From], names[e.To])
		}
	}
	return bw.Flush()
}

// vertexNames resolves the display name of every vertex: the named
// attribute when set, the decimal id otherwise.
func vertexNames(g *graph.Graph, attr string) []string {
	names := make([]string, g.VCount())
	vals, _ := g.Vs().AttrValues(attr)
	for i := range names {
		if i < len(vals) && vals[i] != nil {
			names[i] = fmt.Sprintf("%v", vals[i])
		} else {
			names[i] = strconv.Itoa(i)
		}
	}
	return names
}
