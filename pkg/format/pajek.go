package format

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/graphport/graphport/pkg/graph"
)

// readPajek parses the Pajek .net format: a *Vertices header with 1-based
// ids and optional quoted labels, followed by *Arcs (directed) and/or
// *Edges (undirected) sections of endpoint pairs with an optional weight.
// A file with at least one arc loads as a directed graph. There is no
// writer for this format.
func readPajek(r io.Reader, _ ReadOptions) (*graph.Graph, error) {
	const (
		sectionNone = iota
		sectionVertices
		sectionArcs
		sectionEdges
	)

	n := -1
	var names []any
	named := false
	var edges []graph.Edge
	var weights []any
	weighted := false
	hasArcs := false
	section := sectionNone

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "%") {
			continue
		}
		if strings.HasPrefix(text, "*") {
			word := strings.ToLower(strings.Fields(text)[0])
			switch word {
			case "*vertices":
				fields := strings.Fields(text)
				if len(fields) < 2 {
					return nil, fmt.Errorf("line %d: *Vertices without a count", line)
				}
				v, err := strconv.Atoi(fields[1])
				if err != nil || v < 0 {
					return nil, fmt.Errorf("line %d: bad vertex count %q", line, fields[1])
				}
				n = v
				names = make([]any, n)
				section = sectionVertices
			case "*arcs":
				section = sectionArcs
			case "*edges":
				section = sectionEdges
			case "*arcslist", "*edgeslist", "*matrix":
				return nil, fmt.Errorf("line %d: unsupported section %s", line, word)
			default:
				return nil, fmt.Errorf("line %d: unknown section %s", line, word)
			}
			continue
		}

		switch section {
		case sectionVertices:
			id, label, ok := parsePajekVertex(text)
			if !ok || id < 1 || id > n {
				return nil, fmt.Errorf("line %d: bad vertex line %q", line, text)
			}
			if label != "" {
				names[id-1] = label
				named = true
			}
		case sectionArcs, sectionEdges:
			fields := strings.Fields(text)
			if len(fields) < 2 {
				return nil, fmt.Errorf("line %d: bad edge line %q", line, text)
			}
			from, err1 := strconv.Atoi(fields[0])
			to, err2 := strconv.Atoi(fields[1])
			if err1 != nil || err2 != nil || from < 1 || to < 1 || from > n || to > n {
				return nil, fmt.Errorf("line %d: bad endpoints %q", line, text)
			}
			if len(fields) >= 3 {
				wt, err := strconv.ParseFloat(fields[2], 64)
				if err != nil {
					return nil, fmt.Errorf("line %d: bad weight %q", line, fields[2])
				}
				weights = append(weights, wt)
				weighted = true
			} else {
				weights = append(weights, nil)
			}
			edges = append(edges, graph.Edge{From: from - 1, To: to - 1})
			if section == sectionArcs {
				hasArcs = true
			}
		default:
			return nil, fmt.Errorf("line %d: data before any section header", line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("no *Vertices section")
	}

	g, err := graph.New(n, edges, hasArcs)
	if err != nil {
		return nil, err
	}
	if named {
		if err := g.Vs().SetAttr(NameAttr, names); err != nil {
			return nil, err
		}
	}
	if weighted {
		if err := g.Es().SetAttr(WeightAttr, weights); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// parsePajekVertex splits an "id "label"" vertex line. The label may also
// be a bare word; trailing coordinate fields are ignored.
func parsePajekVertex(text string) (id int, label string, ok bool) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return 0, "", false
	}
	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, "", false
	}
	rest := strings.TrimSpace(text[len(fields[0]):])
	if rest == "" {
		return id, "", true
	}
	if rest[0] == '"' {
		end := strings.IndexByte(rest[1:], '"')
		if end < 0 {
			return 0, "", false
		}
		return id, rest[1 : end+1], true
	}
	return id, strings.Fields(rest)[0], true
}
