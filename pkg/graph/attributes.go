package graph

import (
	"fmt"
	"maps"
	"slices"
)

// SetAttr sets a graph-level attribute.
func (g *Graph) SetAttr(name string, value any) {
	if g.attrs == nil {
		g.attrs = map[string]any{}
	}
	g.attrs[name] = value
}

// Attr returns a graph-level attribute and whether it exists.
func (g *Graph) Attr(name string) (any, bool) {
	v, ok := g.attrs[name]
	return v, ok
}

// DelAttr removes a graph-level attribute. Removing a missing attribute is
// a no-op.
func (g *Graph) DelAttr(name string) { delete(g.attrs, name) }

// AttrNames returns the graph-level attribute names in sorted order.
func (g *Graph) AttrNames() []string {
	return slices.Sorted(maps.Keys(g.attrs))
}

// Vs returns the vertex attribute view.
func (g *Graph) Vs() VertexSeq { return VertexSeq{g: g} }

// Es returns the edge attribute view.
func (g *Graph) Es() EdgeSeq { return EdgeSeq{g: g} }

// VertexSeq is a view over the per-vertex attribute table. It satisfies the
// attribute store interface consumed by the render pipeline.
type VertexSeq struct {
	g *Graph
}

// Len returns the vertex count.
func (s VertexSeq) Len() int { return s.g.n }

// AttrValues returns the index-aligned values of a vertex attribute and
// whether the attribute exists.
func (s VertexSeq) AttrValues(name string) ([]any, bool) {
	vals, ok := s.g.vattrs[name]
	return vals, ok
}

// SetAttr sets a vertex attribute. The value slice must have exactly one
// entry per vertex.
func (s VertexSeq) SetAttr(name string, values []any) error {
	if len(values) != s.g.n {
		return fmt.Errorf("vertex attribute %q: %d values for %d vertices: %w",
			name, len(values), s.g.n, ErrAttrLength)
	}
	if s.g.vattrs == nil {
		s.g.vattrs = map[string][]any{}
	}
	s.g.vattrs[name] = slices.Clone(values)
	return nil
}

// DelAttr removes a vertex attribute. Removing a missing attribute is a
// no-op.
func (s VertexSeq) DelAttr(name string) { delete(s.g.vattrs, name) }

// AttrNames returns the vertex attribute names in sorted order.
func (s VertexSeq) AttrNames() []string {
	return slices.Sorted(maps.Keys(s.g.vattrs))
}

// EdgeSeq is a view over the per-edge attribute table. It satisfies the
// attribute store interface consumed by the render pipeline.
type EdgeSeq struct {
	g *Graph
}

// Len returns the edge count.
func (s EdgeSeq) Len() int { return len(s.g.edges) }

// AttrValues returns the index-aligned values of an edge attribute and
// whether the attribute exists.
func (s EdgeSeq) AttrValues(name string) ([]any, bool) {
	vals, ok := s.g.eattrs[name]
	return vals, ok
}

// SetAttr sets an edge attribute. The value slice must have exactly one
// entry per edge.
func (s EdgeSeq) SetAttr(name string, values []any) error {
	if len(values) != len(s.g.edges) {
		return fmt.Errorf("edge attribute %q: %d values for %d edges: %w",
			name, len(values), len(s.g.edges), ErrAttrLength)
	}
	if s.g.eattrs == nil {
		s.g.eattrs = map[string][]any{}
	}
	s.g.eattrs[name] = slices.Clone(values)
	return nil
}

// DelAttr removes an edge attribute. Removing a missing attribute is a
// no-op.
func (s EdgeSeq) DelAttr(name string) { delete(s.g.eattrs, name) }

// AttrNames returns the edge attribute names in sorted order.
func (s EdgeSeq) AttrNames() []string {
	return slices.Sorted(maps.Keys(s.g.eattrs))
}
