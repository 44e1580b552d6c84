package format

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/graphport/graphport/pkg/graph"
)

// readEdgelist parses one "source target" pair of integer vertex ids per
// line. Blank lines are skipped; the graph grows to cover the largest id
// seen.
func readEdgelist(r io.Reader, opts ReadOptions) (*graph.Graph, error) {
	var edges []graph.Edge
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: expected 2 fields, got %d", line, len(fields))
		}
		from, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: bad vertex id %q", line, fields[0])
		}
		to, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: bad vertex id %q", line, fields[1])
		}
		edges = append(edges, graph.Edge{From: from, To: to})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return graph.New(0, edges, opts.Directed)
}

func writeEdgelist(g *graph.Graph, w io.Writer, _ WriteOptions) error {
	bw := bufio.NewWriter(w)
	for _, e := range g.Edges() {
		fmt.Fprintf(bw, "%d %d\n", e.From, e.To)
	}
	return bw.Flush()
}
