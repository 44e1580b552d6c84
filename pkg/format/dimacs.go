package format

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/graphport/graphport/pkg/graph"
)

// readDIMACS parses the DIMACS max-flow format: a "p max n m" problem
// line, "n <id> s|t" source/target designations, and "a <from> <to> <cap>"
// arc lines with 1-based ids. Capacities become the "capacity" edge
// attribute; the source and target vertex ids become the "source" and
// "target" graph attributes. Comment lines start with "c".
func readDIMACS(r io.Reader, _ ReadOptions) (*graph.Graph, error) {
	n := -1
	var edges []graph.Edge
	var capacities []any
	source, target := -1, -1

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || fields[0] == "c" {
			continue
		}
		switch fields[0] {
		case "p":
			if n >= 0 {
				return nil, fmt.Errorf("line %d: duplicate problem line", line)
			}
			if len(fields) != 4 || fields[1] != "max" {
				return nil, fmt.Errorf("line %d: expected \"p max <n> <m>\"", line)
			}
			v, err := strconv.Atoi(fields[2])
			if err != nil || v < 0 {
				return nil, fmt.Errorf("line %d: bad vertex count %q", line, fields[2])
			}
			n = v
		case "n":
			if len(fields) != 3 {
				return nil, fmt.Errorf("line %d: expected \"n <id> s|t\"", line)
			}
			id, err := strconv.Atoi(fields[1])
			if err != nil || id < 1 || id > n {
				return nil, fmt.Errorf("line %d: bad vertex id %q", line, fields[1])
			}
			switch fields[2] {
			case "s":
				source = id - 1
			case "t":
				target = id - 1
			default:
				return nil, fmt.Errorf("line %d: bad designation %q", line, fields[2])
			}
		case "a":
			if n < 0 {
				return nil, fmt.Errorf("line %d: arc before problem line", line)
			}
			if len(fields) != 4 {
				return nil, fmt.Errorf("line %d: expected \"a <from> <to> <capacity>\"", line)
			}
			from, err1 := strconv.Atoi(fields[1])
			to, err2 := strconv.Atoi(fields[2])
			if err1 != nil || err2 != nil || from < 1 || to < 1 || from > n || to > n {
				return nil, fmt.Errorf("line %d: bad endpoints", line)
			}
			cpty, err := strconv.ParseFloat(fields[3], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad capacity %q", line, fields[3])
			}
			edges = append(edges, graph.Edge{From: from - 1, To: to - 1})
			capacities = append(capacities, cpty)
		default:
			return nil, fmt.Errorf("line %d: unknown line type %q", line, fields[0])
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("no problem line")
	}

	g, err := graph.New(n, edges, true)
	if err != nil {
		return nil, err
	}
	if len(edges) > 0 {
		if err := g.Es().SetAttr("capacity", capacities); err != nil {
			return nil, err
		}
	}
	if source >= 0 {
		g.SetAttr("source", source)
	}
	if target >= 0 {
		g.SetAttr("target", target)
	}
	return g, nil
}

// writeDIMACS emits the max-flow form read by readDIMACS. Missing
// capacities default to 1.
func writeDIMACS(g *graph.Graph, w io.Writer, _ WriteOptions) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "p max %d %d\n", g.VCount(), g.ECount())
	if s, ok := g.Attr("source"); ok {
		if id, ok := s.(int); ok {
			fmt.Fprintf(bw, "n %d s\n", id+1)
		}
	}
	if t, ok := g.Attr("target"); ok {
		if id, ok := t.(int); ok {
			fmt.Fprintf(bw, "n %d t\n", id+1)
		}
	}
	caps, _ := g.Es().AttrValues("capacity")
	for i, e := range g.Edges() {
		c := any(1)
		if i < len(caps) && caps[i] != nil {
			c = caps[i]
		}
		fmt.Fprintf(bw, "a %d %d %v\n", e.From+1, e.To+1, c)
	}
	return bw.Flush()
}
