package format

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/klauspost/compress/gzip"

	"github.com/graphport/graphport/pkg/errors"
	"github.com/graphport/graphport/pkg/graph"
)

// DefaultCompressionLevel is the gzip level used when none is given.
const DefaultCompressionLevel = 9

// WriteCompressed composes any writer with a gzip envelope: the inner
// writer runs against a scoped temporary file, whose bytes are then
// compressed into w. The temporary file is removed on every exit path; a
// removal failure after the operation already failed is logged instead of
// masking the original error.
func WriteCompressed(g *graph.Graph, w io.Writer, level int, inner WriteFunc, opts WriteOptions) (err error) {
	if level == 0 {
		level = DefaultCompressionLevel
	}
	if level < gzip.BestSpeed || level > gzip.BestCompression {
		return errors.New(errors.ErrCodeValidation, "compression level %d out of range [1, 9]", level)
	}

	tmp, cleanup, err := scopedTempFile()
	if err != nil {
		return err
	}
	defer func() { cleanup(&err) }()

	f, err := os.Create(tmp)
	if err != nil {
		return errors.Wrap(errors.ErrCodeTempResource, err, "open temporary file")
	}
	if err := inner(g, f, opts); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeTempResource, err, "close temporary file")
	}

	src, err := os.Open(tmp)
	if err != nil {
		return errors.Wrap(errors.ErrCodeTempResource, err, "reopen temporary file")
	}
	defer src.Close()

	zw, err := gzip.NewWriterLevel(w, level)
	if err != nil {
		return errors.Wrap(errors.ErrCodeValidation, err, "compression level %d", level)
	}
	if _, err := io.Copy(zw, src); err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}

// ReadCompressed reverses WriteCompressed: the source is decompressed into
// a scoped temporary file, which the inner reader then parses. Cleanup is
// guaranteed the same way.
func ReadCompressed(r io.Reader, inner ReadFunc, opts ReadOptions) (g *graph.Graph, err error) {
	tmp, cleanup, err := scopedTempFile()
	if err != nil {
		return nil, err
	}
	defer func() { cleanup(&err) }()

	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	f, err := os.Create(tmp)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeTempResource, err, "open temporary file")
	}
	if _, err := io.Copy(f, zr); err != nil {
		f.Close()
		return nil, err
	}
	if err := f.Close(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeTempResource, err, "close temporary file")
	}

	src, err := os.Open(tmp)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeTempResource, err, "reopen temporary file")
	}
	defer src.Close()
	return inner(src, opts)
}

// scopedTempFile creates a temporary file and returns its path plus a
// cleanup func. The cleanup removes the file unconditionally; when removal
// itself fails it either surfaces a temp-resource error (no earlier
// failure) or logs a warning (an earlier failure takes precedence).
func scopedTempFile() (string, func(*error), error) {
	f, err := os.CreateTemp("", "graphport-*")
	if err != nil {
		return "", nil, errors.Wrap(errors.ErrCodeTempResource, err, "create temporary file")
	}
	path := f.Name()
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", nil, errors.Wrap(errors.ErrCodeTempResource, err, "create temporary file")
	}

	cleanup := func(errp *error) {
		rmErr := os.Remove(path)
		if rmErr == nil || os.IsNotExist(rmErr) {
			return
		}
		if *errp != nil {
			log.Warn("failed to remove temporary file", "path", path, "error", rmErr)
			return
		}
		*errp = errors.Wrap(errors.ErrCodeTempResource, rmErr, "remove temporary file")
	}
	return path, cleanup, nil
}

func writeGraphMLz(g *graph.Graph, w io.Writer, opts WriteOptions) error {
	return WriteCompressed(g, w, opts.CompressionLevel, writeGraphML, opts)
}

func readGraphMLz(r io.Reader, opts ReadOptions) (*graph.Graph, error) {
	return ReadCompressed(r, readGraphML, opts)
}
