package layout

import (
	"fmt"
	"math"
	"math/rand"
	"slices"
)

// Func computes a layout for a graph with n vertices.
type Func func(n int) (*Layout, error)

// algorithms maps layout names (and their historical aliases) to
// implementations. The table is fixed at init; name resolution is a plain
// map lookup, never reflection.
var algorithms = map[string]Func{
	"circle":   Circle,
	"circular": Circle,
	"random":   func(n int) (*Layout, error) { return Random(n, nil) },
	"grid":     Grid,
	"star":     Star,
}

// Get returns the named layout algorithm. Names are matched exactly against
// the registry table.
func Get(name string) (Func, error) {
	f, ok := algorithms[name]
	if !ok {
		return nil, fmt.Errorf("unknown layout algorithm %q (known: %v)", name, Names())
	}
	return f, nil
}

// Names returns the registered layout names in sorted order.
func Names() []string {
	names := make([]string, 0, len(algorithms))
	for name := range algorithms {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Circle places the vertices evenly on the unit circle, starting at angle 0
// and proceeding counter-clockwise.
func Circle(n int) (*Layout, error) {
	coords := make([][]float64, n)
	for i := range coords {
		a := 2 * math.Pi * float64(i) / float64(max(n, 1))
		coords[i] = []float64{math.Cos(a), math.Sin(a)}
	}
	return New(coords)
}

// Random places the vertices uniformly at random in the unit square. A nil
// rng falls back to the shared source.
func Random(n int, rng *rand.Rand) (*Layout, error) {
	next := rand.Float64
	if rng != nil {
		next = rng.Float64
	}
	coords := make([][]float64, n)
	for i := range coords {
		coords[i] = []float64{next(), next()}
	}
	return New(coords)
}

// Grid places the vertices on a square grid with unit spacing, row-major.
func Grid(n int) (*Layout, error) {
	side := int(math.Ceil(math.Sqrt(float64(n))))
	coords := make([][]float64, n)
	for i := range coords {
		coords[i] = []float64{float64(i % max(side, 1)), float64(i / max(side, 1))}
	}
	return New(coords)
}

// Star places vertex 0 at the origin and the remaining vertices evenly on
// the unit circle around it.
func Star(n int) (*Layout, error) {
	coords := make([][]float64, n)
	if n > 0 {
		coords[0] = []float64{0, 0}
	}
	for i := 1; i < n; i++ {
		a := 2 * math.Pi * float64(i-1) / float64(n-1)
		coords[i] = []float64{math.Cos(a), math.Sin(a)}
	}
	return New(coords)
}
