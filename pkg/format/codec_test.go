package format

import (
	"bytes"
	"strings"
	"testing"

	"github.com/graphport/graphport/pkg/graph"
)

func TestEdgelistRoundTrip(t *testing.T) {
	in := "0 1\n1 2\n2 0\n"
	g, err := readEdgelist(strings.NewReader(in), ReadOptions{Directed: true})
	if err != nil {
		t.Fatalf("readEdgelist() error = %v", err)
	}
	if g.VCount() != 3 || g.ECount() != 3 || !g.IsDirected() {
		t.Fatalf("got %d vertices, %d edges, directed=%v", g.VCount(), g.ECount(), g.IsDirected())
	}

	var buf bytes.Buffer
	if err := writeEdgelist(g, &buf, WriteOptions{}); err != nil {
		t.Fatalf("writeEdgelist() error = %v", err)
	}
	if buf.String() != in {
		t.Errorf("round trip = %q, want %q", buf.String(), in)
	}
}

func TestEdgelistSkipsBlankLines(t *testing.T) {
	g, err := readEdgelist(strings.NewReader("0 1\n\n1 2\n"), ReadOptions{})
	if err != nil {
		t.Fatalf("readEdgelist() error = %v", err)
	}
	if g.ECount() != 2 {
		t.Errorf("edges = %d, want 2", g.ECount())
	}
}

func TestEdgelistBadLine(t *testing.T) {
	if _, err := readEdgelist(strings.NewReader("0 1 2\n"), ReadOptions{}); err == nil {
		t.Error("expected error for 3-field line")
	}
	if _, err := readEdgelist(strings.NewReader("a b\n"), ReadOptions{}); err == nil {
		t.Error("expected error for non-numeric ids")
	}
}

func TestAdjacencyRoundTrip(t *testing.T) {
	g, err := graph.New(3, []graph.Edge{{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 2}}, true)
	if err != nil {
		t.Fatalf("graph.New() error = %v", err)
	}
	var buf bytes.Buffer
	if err := writeAdjacency(g, &buf, WriteOptions{}); err != nil {
		t.Fatalf("writeAdjacency() error = %v", err)
	}
	want := "0 1 0\n0 0 1\n0 0 1\n"
	if buf.String() != want {
		t.Fatalf("matrix = %q, want %q", buf.String(), want)
	}

	back, err := readAdjacency(&buf, ReadOptions{Directed: true})
	if err != nil {
		t.Fatalf("readAdjacency() error = %v", err)
	}
	if back.VCount() != 3 || back.ECount() != 3 {
		t.Errorf("got %d vertices, %d edges", back.VCount(), back.ECount())
	}
}

func TestAdjacencyUndirectedNotDoubled(t *testing.T) {
	g, err := graph.New(2, []graph.Edge{{From: 0, To: 1}}, false)
	if err != nil {
		t.Fatalf("graph.New() error = %v", err)
	}
	var buf bytes.Buffer
	if err := writeAdjacency(g, &buf, WriteOptions{}); err != nil {
		t.Fatalf("writeAdjacency() error = %v", err)
	}
	if buf.String() != "0 1\n1 0\n" {
		t.Fatalf("matrix = %q", buf.String())
	}
	back, err := readAdjacency(&buf, ReadOptions{})
	if err != nil {
		t.Fatalf("readAdjacency() error = %v", err)
	}
	if back.ECount() != 1 {
		t.Errorf("edges = %d, want 1", back.ECount())
	}
}

func TestAdjacencyRaggedRowRejected(t *testing.T) {
	if _, err := readAdjacency(strings.NewReader("0 1\n1\n"), ReadOptions{}); err == nil {
		t.Error("expected error for ragged matrix")
	}
}

func TestNCOLRoundTrip(t *testing.T) {
	in := "a b 2.5\nb c\n"
	g, err := readNCOL(strings.NewReader(in), ReadOptions{})
	if err != nil {
		t.Fatalf("readNCOL() error = %v", err)
	}
	if g.VCount() != 3 || g.ECount() != 2 {
		t.Fatalf("got %d vertices, %d edges", g.VCount(), g.ECount())
	}
	names, ok := g.Vs().AttrValues(NameAttr)
	if !ok || names[0] != "a" || names[1] != "b" || names[2] != "c" {
		t.Fatalf("names = %v", names)
	}
	weights, ok := g.Es().AttrValues(WeightAttr)
	if !ok || weights[0] != 2.5 || weights[1] != nil {
		t.Fatalf("weights = %v", weights)
	}

	var buf bytes.Buffer
	if err := writeNCOL(g, &buf, WriteOptions{}); err != nil {
		t.Fatalf("writeNCOL() error = %v", err)
	}
	if buf.String() != in {
		t.Errorf("round trip = %q, want %q", buf.String(), in)
	}
}

func TestNCOLFallsBackToIds(t *testing.T) {
	g, err := graph.New(2, []graph.Edge{{From: 0, To: 1}}, false)
	if err != nil {
		t.Fatalf("graph.New() error = %v", err)
	}
	var buf bytes.Buffer
	if err := writeNCOL(g, &buf, WriteOptions{}); err != nil {
		t.Fatalf("writeNCOL() error = %v", err)
	}
	if buf.String() != "0 1\n" {
		t.Errorf("output = %q, want %q", buf.String(), "0 1\n")
	}
}

func TestLGLRoundTrip(t *testing.T) {
	in := "# a\nb 1.5\nc\n# b\nc\n"
	g, err := readLGL(strings.NewReader(in), ReadOptions{})
	if err != nil {
		t.Fatalf("readLGL() error = %v", err)
	}
	if g.VCount() != 3 || g.ECount() != 3 {
		t.Fatalf("got %d vertices, %d edges", g.VCount(), g.ECount())
	}

	var buf bytes.Buffer
	if err := writeLGL(g, &buf, WriteOptions{}); err != nil {
		t.Fatalf("writeLGL() error = %v", err)
	}
	if buf.String() != in {
		t.Errorf("round trip = %q, want %q", buf.String(), in)
	}
}

func TestLGLNeighborBeforeSource(t *testing.T) {
	if _, err := readLGL(strings.NewReader("b\n# a\n"), ReadOptions{}); err == nil {
		t.Error("expected error for neighbor before # line")
	}
}

func TestGraphMLRoundTrip(t *testing.T) {
	g, err := graph.New(3, []graph.Edge{{From: 0, To: 1}, {From: 1, To: 2}}, true)
	if err != nil {
		t.Fatalf("graph.New() error = %v", err)
	}
	g.SetAttr("title", "test graph")
	if err := g.Vs().SetAttr("name", []any{"a", "b", "c"}); err != nil {
		t.Fatalf("SetAttr() error = %v", err)
	}
	if err := g.Vs().SetAttr("rank", []any{1, 2, nil}); err != nil {
		t.Fatalf("SetAttr() error = %v", err)
	}
	if err := g.Es().SetAttr("weight", []any{0.5, 2.0}); err != nil {
		t.Fatalf("SetAttr() error = %v", err)
	}

	var buf bytes.Buffer
	if err := writeGraphML(g, &buf, WriteOptions{}); err != nil {
		t.Fatalf("writeGraphML() error = %v", err)
	}

	back, err := readGraphML(&buf, ReadOptions{})
	if err != nil {
		t.Fatalf("readGraphML() error = %v", err)
	}
	if back.VCount() != 3 || back.ECount() != 2 || !back.IsDirected() {
		t.Fatalf("got %d vertices, %d edges, directed=%v",
			back.VCount(), back.ECount(), back.IsDirected())
	}
	if title, _ := back.Attr("title"); title != "test graph" {
		t.Errorf("title = %v", title)
	}
	names, _ := back.Vs().AttrValues("name")
	if names[2] != "c" {
		t.Errorf("names = %v", names)
	}
	ranks, _ := back.Vs().AttrValues("rank")
	if ranks[0] != 1 || ranks[2] != nil {
		t.Errorf("ranks = %v", ranks)
	}
	weights, _ := back.Es().AttrValues("weight")
	if weights[0] != 0.5 || weights[1] != 2.0 {
		t.Errorf("weights = %v", weights)
	}
}

func TestGraphMLIndexOutOfRange(t *testing.T) {
	doc := `<?xml version="1.0"?><graphml xmlns="http://graphml.graphdrawing.org/xmlns">
<graph edgedefault="undirected"><node id="n0"/></graph></graphml>`
	if _, err := readGraphML(strings.NewReader(doc), ReadOptions{Index: 1}); err == nil {
		t.Error("expected error for out-of-range index")
	}
}

func TestGraphMLUnknownEndpoint(t *testing.T) {
	doc := `<graphml xmlns="x"><graph edgedefault="directed">
<node id="n0"/><edge source="n0" target="n9"/></graph></graphml>`
	if _, err := readGraphML(strings.NewReader(doc), ReadOptions{}); err == nil {
		t.Error("expected error for unknown edge target")
	}
}

func TestGMLRoundTrip(t *testing.T) {
	g, err := graph.New(3, []graph.Edge{{From: 0, To: 1}, {From: 1, To: 2}}, true)
	if err != nil {
		t.Fatalf("graph.New() error = %v", err)
	}
	g.SetAttr("title", "net")
	if err := g.Vs().SetAttr("label", []any{"a", "b", "c"}); err != nil {
		t.Fatalf("SetAttr() error = %v", err)
	}
	if err := g.Es().SetAttr("weight", []any{1.5, 2.0}); err != nil {
		t.Fatalf("SetAttr() error = %v", err)
	}

	var buf bytes.Buffer
	if err := writeGML(g, &buf, WriteOptions{}); err != nil {
		t.Fatalf("writeGML() error = %v", err)
	}

	back, err := readGML(&buf, ReadOptions{})
	if err != nil {
		t.Fatalf("readGML() error = %v", err)
	}
	if back.VCount() != 3 || back.ECount() != 2 || !back.IsDirected() {
		t.Fatalf("got %d vertices, %d edges, directed=%v",
			back.VCount(), back.ECount(), back.IsDirected())
	}
	if title, _ := back.Attr("title"); title != "net" {
		t.Errorf("title = %v", title)
	}
	labels, _ := back.Vs().AttrValues("label")
	if labels[1] != "b" {
		t.Errorf("labels = %v", labels)
	}
	weights, _ := back.Es().AttrValues("weight")
	if weights[0] != 1.5 {
		t.Errorf("weights = %v", weights)
	}
}

func TestGMLSparseIds(t *testing.T) {
	in := `graph [
  node [ id 10 ]
  node [ id 20 ]
  edge [ source 20 target 10 ]
]`
	g, err := readGML(strings.NewReader(in), ReadOptions{})
	if err != nil {
		t.Fatalf("readGML() error = %v", err)
	}
	if g.VCount() != 2 || g.ECount() != 1 {
		t.Fatalf("got %d vertices, %d edges", g.VCount(), g.ECount())
	}
	e := g.Edges()[0]
	if e.From != 1 || e.To != 0 {
		t.Errorf("edge = %v, want {1 0}", e)
	}
}

func TestPajekRead(t *testing.T) {
	in := `*Vertices 3
1 "alpha"
2 "beta"
3 "gamma"
*Arcs
1 2 2.0
2 3
`
	g, err := readPajek(strings.NewReader(in), ReadOptions{})
	if err != nil {
		t.Fatalf("readPajek() error = %v", err)
	}
	if g.VCount() != 3 || g.ECount() != 2 || !g.IsDirected() {
		t.Fatalf("got %d vertices, %d edges, directed=%v", g.VCount(), g.ECount(), g.IsDirected())
	}
	names, _ := g.Vs().AttrValues(NameAttr)
	if names[0] != "alpha" || names[2] != "gamma" {
		t.Errorf("names = %v", names)
	}
	weights, _ := g.Es().AttrValues(WeightAttr)
	if weights[0] != 2.0 || weights[1] != nil {
		t.Errorf("weights = %v", weights)
	}
}

func TestPajekEdgesSectionIsUndirected(t *testing.T) {
	in := "*Vertices 2\n*Edges\n1 2\n"
	g, err := readPajek(strings.NewReader(in), ReadOptions{})
	if err != nil {
		t.Fatalf("readPajek() error = %v", err)
	}
	if g.IsDirected() {
		t.Error("graph with only *Edges must be undirected")
	}
}

func TestPajekErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "NoVertices", in: "*Arcs\n1 2\n"},
		{name: "OutOfRangeEndpoint", in: "*Vertices 2\n*Edges\n1 5\n"},
		{name: "DataBeforeSection", in: "1 2\n"},
		{name: "UnsupportedSection", in: "*Vertices 2\n*Matrix\n0 1\n1 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := readPajek(strings.NewReader(tt.in), ReadOptions{}); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestDIMACSRoundTrip(t *testing.T) {
	in := "c comment\np max 4 3\nn 1 s\nn 4 t\na 1 2 5\na 2 3 3\na 3 4 4\n"
	g, err := readDIMACS(strings.NewReader(in), ReadOptions{})
	if err != nil {
		t.Fatalf("readDIMACS() error = %v", err)
	}
	if g.VCount() != 4 || g.ECount() != 3 || !g.IsDirected() {
		t.Fatalf("got %d vertices, %d edges, directed=%v", g.VCount(), g.ECount(), g.IsDirected())
	}
	if s, _ := g.Attr("source"); s != 0 {
		t.Errorf("source = %v, want 0", s)
	}
	if tt, _ := g.Attr("target"); tt != 3 {
		t.Errorf("target = %v, want 3", tt)
	}
	caps, _ := g.Es().AttrValues("capacity")
	if caps[0] != 5.0 {
		t.Errorf("capacities = %v", caps)
	}

	var buf bytes.Buffer
	if err := writeDIMACS(g, &buf, WriteOptions{}); err != nil {
		t.Fatalf("writeDIMACS() error = %v", err)
	}
	back, err := readDIMACS(&buf, ReadOptions{})
	if err != nil {
		t.Fatalf("readDIMACS() reparse error = %v", err)
	}
	if back.ECount() != 3 {
		t.Errorf("reparsed edges = %d, want 3", back.ECount())
	}
}

func TestGobRoundTrip(t *testing.T) {
	g, err := graph.New(3, []graph.Edge{{From: 0, To: 1}, {From: 2, To: 2}}, true)
	if err != nil {
		t.Fatalf("graph.New() error = %v", err)
	}
	g.SetAttr("title", "snapshot")
	if err := g.Vs().SetAttr("size", []any{1.0, 2.0, 3.0}); err != nil {
		t.Fatalf("SetAttr() error = %v", err)
	}

	var buf bytes.Buffer
	if err := writeGob(g, &buf, WriteOptions{}); err != nil {
		t.Fatalf("writeGob() error = %v", err)
	}
	back, err := readGob(&buf, ReadOptions{})
	if err != nil {
		t.Fatalf("readGob() error = %v", err)
	}
	if back.VCount() != 3 || back.ECount() != 2 || !back.IsDirected() {
		t.Fatalf("got %d vertices, %d edges, directed=%v",
			back.VCount(), back.ECount(), back.IsDirected())
	}
	if title, _ := back.Attr("title"); title != "snapshot" {
		t.Errorf("title = %v", title)
	}
	sizes, _ := back.Vs().AttrValues("size")
	if sizes[2] != 3.0 {
		t.Errorf("sizes = %v", sizes)
	}
}

func TestWriteSVGProducesDocument(t *testing.T) {
	g, err := graph.New(3, []graph.Edge{{From: 0, To: 1}}, false)
	if err != nil {
		t.Fatalf("graph.New() error = %v", err)
	}
	var buf bytes.Buffer
	if err := writeSVG(g, &buf, WriteOptions{}); err != nil {
		t.Fatalf("writeSVG() error = %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "</svg>") {
		t.Errorf("not an SVG document:\n%s", out)
	}
}

func TestWriteDOTProducesGraph(t *testing.T) {
	g, err := graph.New(2, []graph.Edge{{From: 0, To: 1}}, true)
	if err != nil {
		t.Fatalf("graph.New() error = %v", err)
	}
	var buf bytes.Buffer
	if err := writeDOT(g, &buf, WriteOptions{}); err != nil {
		t.Fatalf("writeDOT() error = %v", err)
	}
	if !strings.Contains(buf.String(), "digraph") {
		t.Errorf("not a DOT digraph:\n%s", buf.String())
	}
}
