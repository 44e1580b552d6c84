// Package layout provides per-vertex coordinate collections and the named
// layout algorithms that produce them.
//
// A Layout is index-aligned with the vertex ids of the graph it was computed
// for: row i holds the coordinates of vertex i. Dimensionality (2 or 3) is
// fixed at creation. Mutation happens only through Scale and Translate,
// which apply uniformly to every point; there is no partial-update API.
package layout

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrBadDimension is returned by New when the dimensionality is not 2
	// or 3, or when a coordinate row does not match it.
	ErrBadDimension = errors.New("layout dimension must be 2 or 3")

	// ErrBadArgCount is returned by Scale and Translate when the number of
	// arguments is neither 1 nor the layout's dimensionality.
	ErrBadArgCount = errors.New("argument count must be 1 or the layout dimension")
)

// Layout is an ordered sequence of per-vertex coordinate rows.
type Layout struct {
	coords [][]float64
	dim    int
}

// New creates a layout from coordinate rows. The dimensionality is taken
// from the first row and every row must match it. An empty coordinate set
// produces a 2D layout with no points.
func New(coords [][]float64) (*Layout, error) {
	if len(coords) == 0 {
		return &Layout{dim: 2}, nil
	}
	dim := len(coords[0])
	if dim != 2 && dim != 3 {
		return nil, fmt.Errorf("row 0 has %d coordinates: %w", dim, ErrBadDimension)
	}
	rows := make([][]float64, len(coords))
	for i, row := range coords {
		if len(row) != dim {
			return nil, fmt.Errorf("row %d has %d coordinates, want %d: %w",
				i, len(row), dim, ErrBadDimension)
		}
		rows[i] = slices.Clone(row)
	}
	return &Layout{coords: rows, dim: dim}, nil
}

// Len returns the number of coordinate rows.
func (l *Layout) Len() int { return len(l.coords) }

// Dim returns the dimensionality (2 or 3).
func (l *Layout) Dim() int { return l.dim }

// At returns the coordinate row of vertex i. The returned slice aliases the
// layout's storage; treat it as read-only.
func (l *Layout) At(i int) []float64 { return l.coords[i] }

// X returns the first coordinate of vertex i.
func (l *Layout) X(i int) float64 { return l.coords[i][0] }

// Y returns the second coordinate of vertex i.
func (l *Layout) Y(i int) float64 { return l.coords[i][1] }

// Copy returns an independent deep copy of the layout.
func (l *Layout) Copy() *Layout {
	rows := make([][]float64, len(l.coords))
	for i, row := range l.coords {
		rows[i] = slices.Clone(row)
	}
	return &Layout{coords: rows, dim: l.dim}
}

// BoundingBox returns the per-axis minima and maxima over all points.
// For an empty layout both slices are all zeros.
func (l *Layout) BoundingBox() (min, max []float64) {
	min = make([]float64, l.dim)
	max = make([]float64, l.dim)
	if len(l.coords) == 0 {
		return min, max
	}
	copy(min, l.coords[0])
	copy(max, l.coords[0])
	for _, row := range l.coords[1:] {
		for d, v := range row {
			if v < min[d] {
				min[d] = v
			}
			if v > max[d] {
				max[d] = v
			}
		}
	}
	return min, max
}

// Scale multiplies every point by the given factors. One factor scales all
// axes uniformly; otherwise one factor per axis is required.
func (l *Layout) Scale(factors ...float64) error {
	f, err := l.expand(factors)
	if err != nil {
		return err
	}
	for _, row := range l.coords {
		for d := range row {
			row[d] *= f[d]
		}
	}
	return nil
}

// Translate shifts every point by the given deltas. One delta shifts all
// axes uniformly; otherwise one delta per axis is required.
func (l *Layout) Translate(deltas ...float64) error {
	d, err := l.expand(deltas)
	if err != nil {
		return err
	}
	for _, row := range l.coords {
		for k := range row {
			row[k] += d[k]
		}
	}
	return nil
}

// Center translates the layout so the center of its bounding box lands at
// the origin.
func (l *Layout) Center() error {
	min, max := l.BoundingBox()
	deltas := make([]float64, l.dim)
	for d := range deltas {
		deltas[d] = -(min[d] + max[d]) / 2
	}
	return l.Translate(deltas...)
}

func (l *Layout) expand(args []float64) ([]float64, error) {
	switch len(args) {
	case 1:
		out := make([]float64, l.dim)
		for d := range out {
			out[d] = args[0]
		}
		return out, nil
	case l.dim:
		return args, nil
	default:
		return nil, fmt.Errorf("%d arguments for dimension %d: %w",
			len(args), l.dim, ErrBadArgCount)
	}
}
