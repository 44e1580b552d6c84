package format

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/graphport/graphport/pkg/graph"
)

// readAdjacency parses a whitespace-separated square matrix of edge
// counts. Entry (i, j) holds the number of edges from i to j. For an
// undirected graph only the upper triangle (including the diagonal) is
// consulted so edges are not doubled.
func readAdjacency(r io.Reader, opts ReadOptions) (*graph.Graph, error) {
	var matrix [][]int
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		row := make([]int, len(fields))
		for j, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("row %d: bad count %q", len(matrix)+1, f)
			}
			if v < 0 {
				return nil, fmt.Errorf("row %d: negative count %d", len(matrix)+1, v)
			}
			row[j] = v
		}
		matrix = append(matrix, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	n := len(matrix)
	var edges []graph.Edge
	for i, row := range matrix {
		if len(row) != n {
			return nil, fmt.Errorf("row %d has %d entries, want %d", i+1, len(row), n)
		}
		for j, count := range row {
			if !opts.Directed && j < i {
				continue
			}
			for k := 0; k < count; k++ {
				edges = append(edges, graph.Edge{From: i, To: j})
			}
		}
	}
	return graph.New(n, edges, opts.Directed)
}

// writeAdjacency emits the full square matrix of edge counts. An
// undirected edge contributes to both (i, j) and (j, i); a loop counts
// once on the diagonal.
func writeAdjacency(g *graph.Graph, w io.Writer, _ WriteOptions) error {
	n := g.VCount()
	matrix := make([][]int, n)
	for i := range matrix {
		matrix[i] = make([]int, n)
	}
	for _, e := range g.Edges() {
		matrix[e.From][e.To]++
		if !g.IsDirected() && !e.IsLoop() {
			matrix[e.To][e.From]++
		}
	}

	bw := bufio.NewWriter(w)
	for _, row := range matrix {
		for j, v := range row {
			if j > 0 {
				bw.WriteByte(' ')
			}
			fmt.Fprintf(bw, "%d", v)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
