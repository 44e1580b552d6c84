package format

import (
	"io"
	"os"

	"github.com/graphport/graphport/pkg/errors"
	"github.com/graphport/graphport/pkg/graph"
)

// Read loads a graph from the file at path. An empty format triggers
// resolution from the path; a non-empty format is used unchanged. The
// reader slot is checked before the file is opened, so an unsupported
// operation never touches the filesystem.
func Read(path string, f Format, opts ReadOptions) (*graph.Graph, error) {
	if f == "" {
		var err error
		if f, err = Resolve(path); err != nil {
			return nil, err
		}
	}
	rd, err := reader(f)
	if err != nil {
		return nil, err
	}

	src, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %q", path)
	}
	defer src.Close()

	g, err := rd(src, opts)
	if err != nil {
		if errors.GetCode(err) != "" {
			return nil, err
		}
		return nil, errors.Wrap(errors.ErrCodeParse, err, "read %q as %s", path, f)
	}
	return g, nil
}

// ReadFrom parses a graph from a stream. The format must be explicit;
// there is no path to resolve it from.
func ReadFrom(r io.Reader, f Format, opts ReadOptions) (*graph.Graph, error) {
	rd, err := reader(f)
	if err != nil {
		return nil, err
	}
	g, err := rd(r, opts)
	if err != nil {
		if errors.GetCode(err) != "" {
			return nil, err
		}
		return nil, errors.Wrap(errors.ErrCodeParse, err, "read stream as %s", f)
	}
	return g, nil
}

func reader(f Format) (ReadFunc, error) {
	c, ok := codecs[f]
	if !ok {
		return nil, errors.New(errors.ErrCodeUnknownFormat, "unknown format %q", f)
	}
	if c.Read == nil {
		return nil, errors.New(errors.ErrCodeUnsupportedOp, "no reader for format %s", f)
	}
	return c.Read, nil
}
