package format

import (
	"io"
	"os"

	"github.com/graphport/graphport/pkg/errors"
	"github.com/graphport/graphport/pkg/graph"
)

// Write serializes g to the file at path. An empty format is resolved from
// the path extension. The writer slot is checked before the file is
// created, so an unsupported operation never touches the filesystem.
func Write(g *graph.Graph, path string, f Format, opts WriteOptions) error {
	if f == "" {
		var err error
		if f, err = resolveForWrite(path); err != nil {
			return err
		}
	}
	wr, err := writer(f)
	if err != nil {
		return err
	}

	dst, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %q", path)
	}
	if err := wr(g, dst, opts); err != nil {
		dst.Close()
		if errors.GetCode(err) != "" {
			return err
		}
		return errors.Wrap(errors.ErrCodeInternal, err, "write %q as %s", path, f)
	}
	if err := dst.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "close %q", path)
	}
	return nil
}

// WriteTo serializes g to a stream in an explicit format.
func WriteTo(g *graph.Graph, w io.Writer, f Format, opts WriteOptions) error {
	wr, err := writer(f)
	if err != nil {
		return err
	}
	if err := wr(g, w, opts); err != nil {
		if errors.GetCode(err) != "" {
			return err
		}
		return errors.Wrap(errors.ErrCodeInternal, err, "write stream as %s", f)
	}
	return nil
}

// resolveForWrite resolves from the extension only. Content sniffing makes
// no sense for a file about to be overwritten.
func resolveForWrite(path string) (Format, error) {
	f, err := Resolve(path)
	if err != nil && errors.Is(err, errors.ErrCodeAmbiguousFormat) {
		return "", errors.New(errors.ErrCodeUnknownFormat, "cannot identify format of %q", path)
	}
	return f, err
}

func writer(f Format) (WriteFunc, error) {
	c, ok := codecs[f]
	if !ok {
		return nil, errors.New(errors.ErrCodeUnknownFormat, "unknown format %q", f)
	}
	if c.Write == nil {
		return nil, errors.New(errors.ErrCodeUnsupportedOp, "no writer for format %s", f)
	}
	return c.Write, nil
}
