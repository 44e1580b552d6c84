package format

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/graphport/graphport/pkg/errors"
	"github.com/graphport/graphport/pkg/graph"
	"github.com/klauspost/compress/gzip"
)

func mixedGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.New(5, []graph.Edge{
		{From: 0, To: 1}, {From: 0, To: 2}, {From: 1, To: 3},
		{From: 2, To: 3}, {From: 3, To: 4}, {From: 4, To: 4},
	}, true)
	if err != nil {
		t.Fatalf("graph.New() error = %v", err)
	}
	g.SetAttr("title", "mixed")
	if err := g.Vs().SetAttr("name", []any{"a", "b", "c", "d", "e"}); err != nil {
		t.Fatalf("SetAttr() error = %v", err)
	}
	if err := g.Es().SetAttr("weight", []any{1.0, 2.0, 3.0, 4.0, 5.0, 6.0}); err != nil {
		t.Fatalf("SetAttr() error = %v", err)
	}
	return g
}

func TestCompressedRoundTrip(t *testing.T) {
	g := mixedGraph(t)
	path := filepath.Join(t.TempDir(), "g.graphmlz")

	if err := Write(g, path, "", WriteOptions{}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	// The envelope is plain gzip, so standard tooling can unzip it.
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if _, err := gzip.NewReader(bytes.NewReader(raw)); err != nil {
		t.Fatalf("output is not valid gzip: %v", err)
	}

	back, err := Read(path, "", ReadOptions{})
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if back.VCount() != g.VCount() || back.ECount() != g.ECount() || back.IsDirected() != g.IsDirected() {
		t.Fatalf("got %d vertices, %d edges, directed=%v",
			back.VCount(), back.ECount(), back.IsDirected())
	}
	if title, _ := back.Attr("title"); title != "mixed" {
		t.Errorf("title = %v", title)
	}
	names, _ := back.Vs().AttrValues("name")
	if names[4] != "e" {
		t.Errorf("names = %v", names)
	}
	weights, _ := back.Es().AttrValues("weight")
	if weights[5] != 6.0 {
		t.Errorf("weights = %v", weights)
	}
}

func TestCompressedLevelValidation(t *testing.T) {
	g := mixedGraph(t)
	var buf bytes.Buffer

	for _, level := range []int{-1, 10} {
		err := WriteCompressed(g, &buf, level, writeGraphML, WriteOptions{})
		if err == nil {
			t.Errorf("level %d: expected error, got nil", level)
			continue
		}
		if !errors.Is(err, errors.ErrCodeValidation) {
			t.Errorf("level %d: error code = %v, want %v", level, errors.GetCode(err), errors.ErrCodeValidation)
		}
	}

	// Level 1 and the default both produce readable envelopes.
	for _, level := range []int{0, 1} {
		buf.Reset()
		if err := WriteCompressed(g, &buf, level, writeGraphML, WriteOptions{}); err != nil {
			t.Fatalf("level %d: WriteCompressed() error = %v", level, err)
		}
		if _, err := ReadCompressed(&buf, readGraphML, ReadOptions{}); err != nil {
			t.Fatalf("level %d: ReadCompressed() error = %v", level, err)
		}
	}
}

func TestCompressedInnerFailurePropagates(t *testing.T) {
	g := mixedGraph(t)
	var buf bytes.Buffer
	boom := errors.New(errors.ErrCodeInternal, "codec exploded")
	failing := func(*graph.Graph, io.Writer, WriteOptions) error { return boom }

	err := WriteCompressed(g, &buf, 0, failing, WriteOptions{})
	if err == nil {
		t.Fatal("WriteCompressed() expected error, got nil")
	}
	if !errors.Is(err, errors.ErrCodeInternal) {
		t.Errorf("inner error not propagated: %v", err)
	}
	if buf.Len() != 0 {
		t.Error("failed write must not emit output")
	}
}
