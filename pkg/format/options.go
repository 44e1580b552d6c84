package format

import (
	"github.com/graphport/graphport/pkg/layout"
	"github.com/graphport/graphport/pkg/render"
)

// Attribute names used by the codecs that carry vertex names and edge
// weights (NCOL, LGL, Pajek).
const (
	NameAttr   = "name"
	WeightAttr = "weight"
)

// ReadOptions is passed through to the resolved reader unchanged. Fields a
// codec does not understand are ignored by it.
type ReadOptions struct {
	// Directed sets the directedness for formats that cannot express it
	// themselves (edge list, NCOL, LGL, adjacency). Formats with an
	// explicit directedness marker (GraphML, GML, Pajek) ignore it.
	Directed bool

	// Index selects which graph to load from containers that can hold
	// several (GraphML).
	Index int
}

// WriteOptions is passed through to the resolved writer unchanged.
type WriteOptions struct {
	// CompressionLevel applies to compressed envelopes, 1 (fastest) to 9
	// (smallest). Zero means the default of 9.
	CompressionLevel int

	// Render configures the SVG and DOT writers; other codecs ignore it.
	Render render.Options

	// Layout pins vertex positions for the SVG and DOT writers. When nil
	// the layout named in Render is computed.
	Layout *layout.Layout

	// Names and Weights override the attribute names consulted for vertex
	// names and edge weights. Empty means NameAttr and WeightAttr.
	Names   string
	Weights string
}

func (o WriteOptions) nameAttr() string {
	if o.Names != "" {
		return o.Names
	}
	return NameAttr
}

func (o WriteOptions) weightAttr() string {
	if o.Weights != "" {
		return o.Weights
	}
	return WeightAttr
}
