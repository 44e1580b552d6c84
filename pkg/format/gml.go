package format

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/graphport/graphport/pkg/graph"
)

// gmlValue is one parsed GML value: a float64, an int, a string, or a
// nested gmlList.
type gmlValue any

// gmlList preserves key order and repeated keys, both of which GML allows.
type gmlList []gmlEntry

type gmlEntry struct {
	key   string
	value gmlValue
}

func (l gmlList) get(key string) (gmlValue, bool) {
	for _, e := range l {
		if e.key == key {
			return e.value, true
		}
	}
	return nil, false
}

func (l gmlList) all(key string) []gmlValue {
	var out []gmlValue
	for _, e := range l {
		if e.key == key {
			out = append(out, e.value)
		}
	}
	return out
}

// readGML parses the GML key-value format. The top-level "graph" list
// holds "node" and "edge" sublists; node "id" values map to dense vertex
// ids in order of appearance, and remaining scalar keys become attributes.
func readGML(r io.Reader, opts ReadOptions) (*graph.Graph, error) {
	top, err := parseGML(r)
	if err != nil {
		return nil, err
	}
	gv, ok := top.get("graph")
	if !ok {
		return nil, fmt.Errorf("no graph block")
	}
	gl, ok := gv.(gmlList)
	if !ok {
		return nil, fmt.Errorf("graph is not a list")
	}

	directed := opts.Directed
	if d, ok := gl.get("directed"); ok {
		if di, ok := d.(int); ok {
			directed = di != 0
		}
	}

	nodes := gl.all("node")
	ids := make(map[int]int, len(nodes))
	vattrs := map[string][]any{}
	for i, nv := range nodes {
		nl, ok := nv.(gmlList)
		if !ok {
			return nil, fmt.Errorf("node %d is not a list", i)
		}
		id, ok := nl.get("id")
		if !ok {
			return nil, fmt.Errorf("node %d has no id", i)
		}
		gid, ok := id.(int)
		if !ok {
			return nil, fmt.Errorf("node %d: id is not an integer", i)
		}
		if _, dup := ids[gid]; dup {
			return nil, fmt.Errorf("duplicate node id %d", gid)
		}
		ids[gid] = i
		for _, e := range nl {
			if e.key == "id" {
				continue
			}
			if _, nested := e.value.(gmlList); nested {
				continue
			}
			col, ok := vattrs[e.key]
			if !ok {
				col = make([]any, len(nodes))
				vattrs[e.key] = col
			}
			col[i] = e.value
		}
	}

	edgeLists := gl.all("edge")
	edges := make([]graph.Edge, len(edgeLists))
	eattrs := map[string][]any{}
	for i, ev := range edgeLists {
		el, ok := ev.(gmlList)
		if !ok {
			return nil, fmt.Errorf("edge %d is not a list", i)
		}
		from, err := gmlEndpoint(el, "source", ids, i)
		if err != nil {
			return nil, err
		}
		to, err := gmlEndpoint(el, "target", ids, i)
		if err != nil {
			return nil, err
		}
		edges[i] = graph.Edge{From: from, To: to}
		for _, e := range el {
			if e.key == "source" || e.key == "target" {
				continue
			}
			if _, nested := e.value.(gmlList); nested {
				continue
			}
			col, ok := eattrs[e.key]
			if !ok {
				col = make([]any, len(edgeLists))
				eattrs[e.key] = col
			}
			col[i] = e.value
		}
	}

	g, err := graph.New(len(nodes), edges, directed)
	if err != nil {
		return nil, err
	}
	for name, col := range vattrs {
		if err := g.Vs().SetAttr(name, col); err != nil {
			return nil, err
		}
	}
	for name, col := range eattrs {
		if err := g.Es().SetAttr(name, col); err != nil {
			return nil, err
		}
	}
	for _, e := range gl {
		if e.key == "node" || e.key == "edge" || e.key == "directed" {
			continue
		}
		if _, nested := e.value.(gmlList); nested {
			continue
		}
		g.SetAttr(e.key, e.value)
	}
	return g, nil
}

func gmlEndpoint(el gmlList, key string, ids map[int]int, edge int) (int, error) {
	v, ok := el.get(key)
	if !ok {
		return 0, fmt.Errorf("edge %d has no %s", edge, key)
	}
	gid, ok := v.(int)
	if !ok {
		return 0, fmt.Errorf("edge %d: %s is not an integer", edge, key)
	}
	id, ok := ids[gid]
	if !ok {
		return 0, fmt.Errorf("edge %d: unknown %s id %d", edge, key, gid)
	}
	return id, nil
}

// writeGML emits the graph as a GML document with dense vertex ids.
func writeGML(g *graph.Graph, w io.Writer, _ WriteOptions) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("graph [\n")
	if g.IsDirected() {
		bw.WriteString("  directed 1\n")
	}
	for _, name := range g.AttrNames() {
		v, _ := g.Attr(name)
		fmt.Fprintf(bw, "  %s %s\n", name, gmlScalar(v))
	}

	vcols := attrColumns(g.Vs().AttrNames(), g.Vs().AttrValues)
	for i := 0; i < g.VCount(); i++ {
		fmt.Fprintf(bw, "  node [\n    id %d\n", i)
		for _, c := range vcols {
			if v := c.values[i]; v != nil {
				fmt.Fprintf(bw, "    %s %s\n", c.name, gmlScalar(v))
			}
		}
		bw.WriteString("  ]\n")
	}

	ecols := attrColumns(g.Es().AttrNames(), g.Es().AttrValues)
	for i, e := range g.Edges() {
		fmt.Fprintf(bw, "  edge [\n    source %d\n    target %d\n", e.From, e.To)
		for _, c := range ecols {
			if v := c.values[i]; v != nil {
				fmt.Fprintf(bw, "    %s %s\n", c.name, gmlScalar(v))
			}
		}
		bw.WriteString("  ]\n")
	}
	bw.WriteString("]\n")
	return bw.Flush()
}

func gmlScalar(v any) string {
	switch x := v.(type) {
	case int, int64:
		return fmt.Sprintf("%d", x)
	case float32, float64:
		return fmt.Sprintf("%g", x)
	case bool:
		if x {
			return "1"
		}
		return "0"
	default:
		return strconv.Quote(fmt.Sprintf("%v", x))
	}
}

// parseGML tokenizes and parses a whole document into the top-level list.
func parseGML(r io.Reader) (gmlList, error) {
	tokens, err := tokenizeGML(r)
	if err != nil {
		return nil, err
	}
	list, rest, err := parseGMLList(tokens)
	if err != nil {
		return nil, err
	}
	if len(rest) > 0 {
		return nil, fmt.Errorf("unexpected %q after document end", rest[0])
	}
	return list, nil
}

func parseGMLList(tokens []string) (gmlList, []string, error) {
	var list gmlList
	for len(tokens) > 0 {
		key := tokens[0]
		if key == "]" {
			return list, tokens, nil
		}
		if key == "[" {
			return nil, nil, fmt.Errorf("value without a key")
		}
		tokens = tokens[1:]
		if len(tokens) == 0 {
			return nil, nil, fmt.Errorf("key %q has no value", key)
		}

		tok := tokens[0]
		tokens = tokens[1:]
		switch {
		case tok == "[":
			inner, rest, err := parseGMLList(tokens)
			if err != nil {
				return nil, nil, err
			}
			if len(rest) == 0 || rest[0] != "]" {
				return nil, nil, fmt.Errorf("unterminated list for key %q", key)
			}
			tokens = rest[1:]
			list = append(list, gmlEntry{key: key, value: inner})
		case strings.HasPrefix(tok, `"`):
			list = append(list, gmlEntry{key: key, value: strings.Trim(tok, `"`)})
		default:
			if i, err := strconv.Atoi(tok); err == nil {
				list = append(list, gmlEntry{key: key, value: i})
				continue
			}
			f, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("key %q: bad value %q", key, tok)
			}
			list = append(list, gmlEntry{key: key, value: f})
		}
	}
	return list, tokens, nil
}

// tokenizeGML splits the input into keys, brackets, numbers, and quoted
// strings (returned with their quotes so the parser can tell them from
// bare words). Comments run from # to end of line.
func tokenizeGML(r io.Reader) ([]string, error) {
	var tokens []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		for len(line) > 0 {
			line = strings.TrimLeft(line, " \t")
			if line == "" || line[0] == '#' {
				break
			}
			switch line[0] {
			case '[', ']':
				tokens = append(tokens, string(line[0]))
				line = line[1:]
			case '"':
				end := strings.IndexByte(line[1:], '"')
				if end < 0 {
					return nil, fmt.Errorf("unterminated string in %q", line)
				}
				tokens = append(tokens, line[:end+2])
				line = line[end+2:]
			default:
				end := strings.IndexAny(line, " \t[]\"")
				if end < 0 {
					end = len(line)
				}
				tokens = append(tokens, line[:end])
				line = line[end:]
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return tokens, nil
}
