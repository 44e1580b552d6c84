// Package pkg provides the core libraries for Graphport graph conversion
// and rendering.
//
// # Overview
//
// Graphport reads graphs in a dozen serialization formats, converts between
// them, and draws them. The pkg directory is organized as:
//
//  1. [graph] - In-memory graph structure with attribute stores
//  2. [format] - Format resolution and the codec dispatch table
//  3. [layout] - Coordinate layouts (circle, grid, random, star)
//  4. [render] - The drawing pipeline and its output surfaces
//  5. [cache] - Rendered artifact cache (file, redis, null backends)
//  6. [config] - TOML user configuration
//  7. [errors] - Coded errors shared by every layer
//
// # Architecture
//
// The typical data flow through Graphport:
//
//	graph file (.gml, .graphml, .ncol, ...)
//	         ↓
//	    [format] package (resolve format, parse into a graph)
//	         ↓
//	    [layout] package (assign vertex coordinates)
//	         ↓
//	    [render] package (draw edges, vertices, labels)
//	         ↓
//	    SVG/PNG/DOT output
//
// # Quick Start
//
// Read a graph, lay it out, and render it:
//
//	import (
//	    "os"
//	    "github.com/graphport/graphport/pkg/format"
//	    "github.com/graphport/graphport/pkg/render"
//	)
//
//	// 1. Read (format resolved from the extension)
//	g, _ := format.Read("karate.gml", "", format.ReadOptions{})
//
//	// 2. Render to SVG with the circle layout
//	out, _ := os.Create("karate.svg")
//	defer out.Close()
//	_ = format.WriteTo(g, out, format.SVG, format.WriteOptions{
//	    Render: render.Options{Layout: "circle"},
//	})
//
// # Main Packages
//
// [graph] - Edge-list graph with dense vertex ids, a directedness flag, and
// attribute stores at graph, vertex, and edge scope.
//
// [format] - One pair of entry points (Read, Write) over a static codec
// table. Formats resolve from file extensions; plain-text .txt and .dat
// files are identified from their first lines.
//
// [layout] - Deterministic coordinate generators registered by name.
//
// [render] - The drawing pipeline: per-vertex and per-edge visual
// properties resolve from literals, sequences, or attribute references, and
// the result is drawn on an SVG, raster, or Graphviz surface in a fixed
// layer order.
//
// [cache] - Content-addressed artifact cache so repeated renders of the
// same input are served without drawing.
//
// [observability] - Optional hooks for metrics on render and cache events.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/format/...   # Specific package
//
// [graph]: https://pkg.go.dev/github.com/graphport/graphport/pkg/graph
// [format]: https://pkg.go.dev/github.com/graphport/graphport/pkg/format
// [layout]: https://pkg.go.dev/github.com/graphport/graphport/pkg/layout
// [render]: https://pkg.go.dev/github.com/graphport/graphport/pkg/render
// [cache]: https://pkg.go.dev/github.com/graphport/graphport/pkg/cache
// [config]: https://pkg.go.dev/github.com/graphport/graphport/pkg/config
// [errors]: https://pkg.go.dev/github.com/graphport/graphport/pkg/errors
// [observability]: https://pkg.go.dev/github.com/graphport/graphport/pkg/observability
package pkg
