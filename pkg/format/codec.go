package format

import (
	"io"
	"slices"

	"github.com/graphport/graphport/pkg/graph"
)

// ReadFunc parses one serialization format from a stream.
type ReadFunc func(r io.Reader, opts ReadOptions) (*graph.Graph, error)

// WriteFunc serializes a graph to a stream.
type WriteFunc func(g *graph.Graph, w io.Writer, opts WriteOptions) error

// Codec pairs the reader and writer for one format. A nil slot means the
// operation is unsupported for that format; this is a checked state, not a
// bug.
type Codec struct {
	Read  ReadFunc
	Write WriteFunc
}

// codecs is the static dispatch table. It is fixed at init; adding a format
// means adding a token and a table entry, nothing else.
var codecs = map[Format]Codec{
	NCOL:      {Read: readNCOL, Write: writeNCOL},
	LGL:       {Read: readLGL, Write: writeLGL},
	GraphML:   {Read: readGraphML, Write: writeGraphML},
	GraphMLz:  {Read: readGraphMLz, Write: writeGraphMLz},
	GML:       {Read: readGML, Write: writeGML},
	Pajek:     {Read: readPajek},
	DIMACS:    {Read: readDIMACS, Write: writeDIMACS},
	Adjacency: {Read: readAdjacency, Write: writeAdjacency},
	Edgelist:  {Read: readEdgelist, Write: writeEdgelist},
	Pickle:    {Read: readGob, Write: writeGob},
	SVG:       {Write: writeSVG},
	DOT:       {Write: writeDOT},
}

// Formats returns all known tokens in sorted order.
func Formats() []Format {
	out := make([]Format, 0, len(codecs))
	for f := range codecs {
		out = append(out, f)
	}
	slices.Sort(out)
	return out
}

// CanRead reports whether the format has a registered reader.
func CanRead(f Format) bool { return codecs[f].Read != nil }

// CanWrite reports whether the format has a registered writer.
func CanWrite(f Format) bool { return codecs[f].Write != nil }
