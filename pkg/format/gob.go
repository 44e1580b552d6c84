package format

import (
	"encoding/gob"
	"fmt"
	"io"

	"github.com/graphport/graphport/pkg/graph"
)

// snapshot is the stable on-disk shape for the binary serialization token.
// It captures everything a graph owns so a round trip is lossless.
type snapshot struct {
	N        int
	Directed bool
	Edges    []graph.Edge
	Attrs    map[string]any
	VAttrs   map[string][]any
	EAttrs   map[string][]any
}

func init() {
	// Attribute values are dynamically typed; register the scalar types
	// the codecs produce so they survive the trip.
	gob.Register(int(0))
	gob.Register(int64(0))
	gob.Register(float64(0))
	gob.Register(false)
	gob.Register("")
}

// writeGob serializes the graph in the native binary format.
func writeGob(g *graph.Graph, w io.Writer, _ WriteOptions) error {
	s := snapshot{
		N:        g.VCount(),
		Directed: g.IsDirected(),
		Edges:    g.Edges(),
		Attrs:    map[string]any{},
		VAttrs:   map[string][]any{},
		EAttrs:   map[string][]any{},
	}
	for _, name := range g.AttrNames() {
		s.Attrs[name], _ = g.Attr(name)
	}
	for _, name := range g.Vs().AttrNames() {
		s.VAttrs[name], _ = g.Vs().AttrValues(name)
	}
	for _, name := range g.Es().AttrNames() {
		s.EAttrs[name], _ = g.Es().AttrValues(name)
	}
	return gob.NewEncoder(w).Encode(s)
}

// readGob restores a graph written by writeGob.
func readGob(r io.Reader, _ ReadOptions) (*graph.Graph, error) {
	var s snapshot
	if err := gob.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	g, err := graph.New(s.N, s.Edges, s.Directed)
	if err != nil {
		return nil, err
	}
	for name, v := range s.Attrs {
		g.SetAttr(name, v)
	}
	for name, vals := range s.VAttrs {
		if err := g.Vs().SetAttr(name, vals); err != nil {
			return nil, err
		}
	}
	for name, vals := range s.EAttrs {
		if err := g.Es().SetAttr(name, vals); err != nil {
			return nil, err
		}
	}
	return g, nil
}
