package format

import (
	"encoding/xml"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/graphport/graphport/pkg/graph"
)

const graphmlNS = "http://graphml.graphdrawing.org/xmlns"

type xmlDocument struct {
	XMLName xml.Name   `xml:"graphml"`
	Xmlns   string     `xml:"xmlns,attr"`
	Keys    []xmlKey   `xml:"key"`
	Graphs  []xmlGraph `xml:"graph"`
}

type xmlKey struct {
	ID   string `xml:"id,attr"`
	For  string `xml:"for,attr"`
	Name string `xml:"attr.name,attr"`
	Type string `xml:"attr.type,attr"`
}

type xmlGraph struct {
	ID          string    `xml:"id,attr,omitempty"`
	EdgeDefault string    `xml:"edgedefault,attr"`
	Data        []xmlData `xml:"data"`
	Nodes       []xmlNode `xml:"node"`
	Edges       []xmlEdge `xml:"edge"`
}

type xmlNode struct {
	ID   string    `xml:"id,attr"`
	Data []xmlData `xml:"data"`
}

type xmlEdge struct {
	Source string    `xml:"source,attr"`
	Target string    `xml:"target,attr"`
	Data   []xmlData `xml:"data"`
}

type xmlData struct {
	Key   string `xml:"key,attr"`
	Value string `xml:",chardata"`
}

// readGraphML parses a GraphML document. When the document holds several
// graphs, opts.Index selects one. Directedness comes from the edgedefault
// attribute; attribute values are converted per the declared key type.
func readGraphML(r io.Reader, opts ReadOptions) (*graph.Graph, error) {
	var doc xmlDocument
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse graphml: %w", err)
	}
	if opts.Index < 0 || opts.Index >= len(doc.Graphs) {
		return nil, fmt.Errorf("graph index %d out of range (document has %d)", opts.Index, len(doc.Graphs))
	}
	gx := doc.Graphs[opts.Index]

	keys := map[string]xmlKey{}
	for _, k := range doc.Keys {
		keys[k.ID] = k
	}

	ids := make(map[string]int, len(gx.Nodes))
	for i, n := range gx.Nodes {
		if _, dup := ids[n.ID]; dup {
			return nil, fmt.Errorf("duplicate node id %q", n.ID)
		}
		ids[n.ID] = i
	}

	edges := make([]graph.Edge, len(gx.Edges))
	for i, e := range gx.Edges {
		from, ok := ids[e.Source]
		if !ok {
			return nil, fmt.Errorf("edge %d: unknown source %q", i, e.Source)
		}
		to, ok := ids[e.Target]
		if !ok {
			return nil, fmt.Errorf("edge %d: unknown target %q", i, e.Target)
		}
		edges[i] = graph.Edge{From: from, To: to}
	}

	g, err := graph.New(len(gx.Nodes), edges, gx.EdgeDefault == "directed")
	if err != nil {
		return nil, err
	}

	for _, d := range gx.Data {
		name, v, err := convertData(keys, d)
		if err != nil {
			return nil, err
		}
		g.SetAttr(name, v)
	}
	if err := readElementData(keys, len(gx.Nodes), func(i int) []xmlData { return gx.Nodes[i].Data },
		func(name string, vals []any) error { return g.Vs().SetAttr(name, vals) }); err != nil {
		return nil, err
	}
	if err := readElementData(keys, len(gx.Edges), func(i int) []xmlData { return gx.Edges[i].Data },
		func(name string, vals []any) error { return g.Es().SetAttr(name, vals) }); err != nil {
		return nil, err
	}
	return g, nil
}

// readElementData collects per-element <data> entries into dense
// attribute columns, leaving nil holes where an element has no entry.
func readElementData(keys map[string]xmlKey, n int, data func(int) []xmlData, set func(string, []any) error) error {
	cols := map[string][]any{}
	for i := 0; i < n; i++ {
		for _, d := range data(i) {
			name, v, err := convertData(keys, d)
			if err != nil {
				return err
			}
			col, ok := cols[name]
			if !ok {
				col = make([]any, n)
				cols[name] = col
			}
			col[i] = v
		}
	}
	names := make([]string, 0, len(cols))
	for name := range cols {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := set(name, cols[name]); err != nil {
			return err
		}
	}
	return nil
}

func convertData(keys map[string]xmlKey, d xmlData) (string, any, error) {
	k, ok := keys[d.Key]
	if !ok {
		// Undeclared key: keep the raw string under the key id.
		return d.Key, d.Value, nil
	}
	name := k.Name
	if name == "" {
		name = k.ID
	}
	switch k.Type {
	case "int", "long":
		v, err := strconv.Atoi(d.Value)
		if err != nil {
			return "", nil, fmt.Errorf("key %q: bad integer %q", name, d.Value)
		}
		return name, v, nil
	case "float", "double":
		v, err := strconv.ParseFloat(d.Value, 64)
		if err != nil {
			return "", nil, fmt.Errorf("key %q: bad number %q", name, d.Value)
		}
		return name, v, nil
	case "boolean":
		v, err := strconv.ParseBool(d.Value)
		if err != nil {
			return "", nil, fmt.Errorf("key %q: bad boolean %q", name, d.Value)
		}
		return name, v, nil
	default:
		return name, d.Value, nil
	}
}

// writeGraphML emits a single-graph GraphML document. Every attribute gets
// a declared key; the attr.type is inferred from the first non-nil value.
func writeGraphML(g *graph.Graph, w io.Writer, _ WriteOptions) error {
	doc := xmlDocument{Xmlns: graphmlNS}

	gx := xmlGraph{ID: "G", EdgeDefault: "undirected"}
	if g.IsDirected() {
		gx.EdgeDefault = "directed"
	}

	for _, name := range g.AttrNames() {
		v, _ := g.Attr(name)
		doc.Keys = append(doc.Keys, xmlKey{
			ID: "g_" + name, For: "graph", Name: name, Type: attrType(v),
		})
		gx.Data = append(gx.Data, xmlData{Key: "g_" + name, Value: attrString(v)})
	}

	vcols := attrColumns(g.Vs().AttrNames(), g.Vs().AttrValues)
	for _, c := range vcols {
		doc.Keys = append(doc.Keys, xmlKey{
			ID: "v_" + c.name, For: "node", Name: c.name, Type: c.typ,
		})
	}
	ecols := attrColumns(g.Es().AttrNames(), g.Es().AttrValues)
	for _, c := range ecols {
		doc.Keys = append(doc.Keys, xmlKey{
			ID: "e_" + c.name, For: "edge", Name: c.name, Type: c.typ,
		})
	}

	gx.Nodes = make([]xmlNode, g.VCount())
	for i := range gx.Nodes {
		gx.Nodes[i].ID = "n" + strconv.Itoa(i)
		for _, c := range vcols {
			if v := c.values[i]; v != nil {
				gx.Nodes[i].Data = append(gx.Nodes[i].Data,
					xmlData{Key: "v_" + c.name, Value: attrString(v)})
			}
		}
	}
	gx.Edges = make([]xmlEdge, g.ECount())
	for i, e := range g.Edges() {
		gx.Edges[i].Source = "n" + strconv.Itoa(e.From)
		gx.Edges[i].Target = "n" + strconv.Itoa(e.To)
		for _, c := range ecols {
			if v := c.values[i]; v != nil {
				gx.Edges[i].Data = append(gx.Edges[i].Data,
					xmlData{Key: "e_" + c.name, Value: attrString(v)})
			}
		}
	}
	doc.Graphs = []xmlGraph{gx}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

type attrColumn struct {
	name   string
	typ    string
	values []any
}

func attrColumns(names []string, get func(string) ([]any, bool)) []attrColumn {
	cols := make([]attrColumn, 0, len(names))
	for _, name := range names {
		vals, ok := get(name)
		if !ok {
			continue
		}
		typ := "string"
		for _, v := range vals {
			if v != nil {
				typ = attrType(v)
				break
			}
		}
		cols = append(cols, attrColumn{name: name, typ: typ, values: vals})
	}
	return cols
}

func attrType(v any) string {
	switch v.(type) {
	case int, int64:
		return "long"
	case float32, float64:
		return "double"
	case bool:
		return "boolean"
	default:
		return "string"
	}
}

func attrString(v any) string {
	return fmt.Sprintf("%v", v)
}
