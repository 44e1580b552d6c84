// Package graph implements the in-memory graph structure consumed by the
// rendering pipeline and the format codecs.
//
// Vertices are dense integers 0..n-1. Deleting vertices reassigns the ids of
// the remaining vertices so they stay dense; callers must not retain vertex
// ids across mutation. Edges are ordered pairs of vertex ids; for undirected
// graphs the order carries no meaning but is preserved for round-trips.
//
// Graph, vertex and edge attributes are stored in name-keyed tables. Vertex
// and edge attribute values are index-aligned slices, accessed through the
// Vs and Es views.
//
// Graph is not safe for concurrent mutation without external
// synchronization. Concurrent readers are fine.
package graph

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrNegativeCount is returned by New and AddVertices when the vertex
	// count is negative.
	ErrNegativeCount = errors.New("vertex count must not be negative")

	// ErrVertexOutOfRange is returned when an operation references a vertex
	// id outside 0..n-1.
	ErrVertexOutOfRange = errors.New("vertex id out of range")

	// ErrEdgeOutOfRange is returned when an operation references an edge
	// index outside 0..m-1.
	ErrEdgeOutOfRange = errors.New("edge index out of range")

	// ErrAttrLength is returned when a vertex or edge attribute slice does
	// not match the current vertex or edge count.
	ErrAttrLength = errors.New("attribute length must match element count")
)

// Edge is a directed or undirected connection between two vertex ids.
type Edge struct {
	From int
	To   int
}

// IsLoop reports whether the edge connects a vertex to itself.
func (e Edge) IsLoop() bool { return e.From == e.To }

// Graph is a graph with dense integer vertex ids and attribute tables.
// The zero value is an empty undirected graph; use New to create a graph
// with vertices and edges in one step.
type Graph struct {
	n        int
	directed bool
	edges    []Edge

	attrs  map[string]any
	vattrs map[string][]any
	eattrs map[string][]any
}

// New creates a graph with n vertices and the given edges. If an edge
// endpoint is larger than n-1, the vertex count is raised to cover it,
// matching the permissive construction rules of common edge-list inputs.
func New(n int, edges []Edge, directed bool) (*Graph, error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}
	g := &Graph{n: n, directed: directed}
	if err := g.AddEdges(edges...); err != nil {
		return nil, err
	}
	return g, nil
}

// NewDirected creates an empty directed graph with n vertices.
func NewDirected(n int) (*Graph, error) { return New(n, nil, true) }

// NewUndirected creates an empty undirected graph with n vertices.
func NewUndirected(n int) (*Graph, error) { return New(n, nil, false) }

// VCount returns the number of vertices.
func (g *Graph) VCount() int { return g.n }

// ECount returns the number of edges.
func (g *Graph) ECount() int { return len(g.edges) }

// IsDirected reports whether the graph is directed.
func (g *Graph) IsDirected() bool { return g.directed }

// Edges returns a copy of the edge list in insertion order.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// Edge returns the edge at index i.
func (g *Graph) Edge(i int) (Edge, error) {
	if i < 0 || i >= len(g.edges) {
		return Edge{}, fmt.Errorf("edge %d: %w", i, ErrEdgeOutOfRange)
	}
	return g.edges[i], nil
}

// AddVertices appends k new vertices. Existing vertex attributes are padded
// with nil values for the new vertices.
func (g *Graph) AddVertices(k int) error {
	if k < 0 {
		return ErrNegativeCount
	}
	g.n += k
	for name, vals := range g.vattrs {
		g.vattrs[name] = append(vals, make([]any, k)...)
	}
	return nil
}

// AddEdges appends edges. Endpoints beyond the current vertex count grow the
// graph; negative endpoints are rejected. Edge attributes are padded with
// nil values for the new edges.
func (g *Graph) AddEdges(edges ...Edge) error {
	for _, e := range edges {
		if e.From < 0 || e.To < 0 {
			return fmt.Errorf("edge (%d,%d): %w", e.From, e.To, ErrVertexOutOfRange)
		}
		if m := max(e.From, e.To) + 1; m > g.n {
			if err := g.AddVertices(m - g.n); err != nil {
				return err
			}
		}
	}
	g.edges = append(g.edges, edges...)
	for name, vals := range g.eattrs {
		g.eattrs[name] = append(vals, make([]any, len(edges))...)
	}
	return nil
}

// DeleteVertices removes the given vertices, all their incident edges, and
// reassigns the remaining vertex ids so they stay dense. Attribute tables
// are compacted accordingly. Duplicate ids in the argument are allowed.
func (g *Graph) DeleteVertices(ids ...int) error {
	drop := make([]bool, g.n)
	for _, id := range ids {
		if id < 0 || id >= g.n {
			return fmt.Errorf("vertex %d: %w", id, ErrVertexOutOfRange)
		}
		drop[id] = true
	}

	// remap[old] is the new id, or -1 for dropped vertices.
	remap := make([]int, g.n)
	next := 0
	for old := range remap {
		if drop[old] {
			remap[old] = -1
			continue
		}
		remap[old] = next
		next++
	}

	keptEdges := make([]Edge, 0, len(g.edges))
	keptEdgeIdx := make([]int, 0, len(g.edges))
	for i, e := range g.edges {
		if drop[e.From] || drop[e.To] {
			continue
		}
		keptEdges = append(keptEdges, Edge{From: remap[e.From], To: remap[e.To]})
		keptEdgeIdx = append(keptEdgeIdx, i)
	}

	for name, vals := range g.vattrs {
		kept := make([]any, 0, next)
		for old, v := range vals {
			if !drop[old] {
				kept = append(kept, v)
			}
		}
		g.vattrs[name] = kept
	}
	for name, vals := range g.eattrs {
		kept := make([]any, 0, len(keptEdgeIdx))
		for _, i := range keptEdgeIdx {
			kept = append(kept, vals[i])
		}
		g.eattrs[name] = kept
	}

	g.n = next
	g.edges = keptEdges
	return nil
}

// Degree returns the number of edges incident to v. Self-loops count twice,
// and for directed graphs both in- and out-edges count.
func (g *Graph) Degree(v int) (int, error) {
	if v < 0 || v >= g.n {
		return 0, fmt.Errorf("vertex %d: %w", v, ErrVertexOutOfRange)
	}
	d := 0
	for _, e := range g.edges {
		if e.From == v {
			d++
		}
		if e.To == v {
			d++
		}
	}
	return d, nil
}

// Neighbors returns the ids of all vertices adjacent to v, in edge insertion
// order. For directed graphs both directions are included.
func (g *Graph) Neighbors(v int) ([]int, error) {
	if v < 0 || v >= g.n {
		return nil, fmt.Errorf("vertex %d: %w", v, ErrVertexOutOfRange)
	}
	var ns []int
	for _, e := range g.edges {
		switch {
		case e.From == v:
			ns = append(ns, e.To)
		case e.To == v:
			ns = append(ns, e.From)
		}
	}
	return ns, nil
}

// Validate checks structural invariants: every edge endpoint must be a valid
// vertex id and every attribute table must be index-aligned with its
// element count. It returns the first violation found.
func (g *Graph) Validate() error {
	for i, e := range g.edges {
		if e.From < 0 || e.From >= g.n || e.To < 0 || e.To >= g.n {
			return fmt.Errorf("edge %d (%d,%d): %w", i, e.From, e.To, ErrVertexOutOfRange)
		}
	}
	for name, vals := range g.vattrs {
		if len(vals) != g.n {
			return fmt.Errorf("vertex attribute %q has %d values for %d vertices: %w",
				name, len(vals), g.n, ErrAttrLength)
		}
	}
	for name, vals := range g.eattrs {
		if len(vals) != len(g.edges) {
			return fmt.Errorf("edge attribute %q has %d values for %d edges: %w",
				name, len(vals), len(g.edges), ErrAttrLength)
		}
	}
	return nil
}

// Summary returns a one-line human-readable description of the graph.
func (g *Graph) Summary() string {
	kind := "undirected"
	if g.directed {
		kind = "directed"
	}
	return fmt.Sprintf("%d vertices, %d edges, %s", g.n, len(g.edges), kind)
}
