// Package format reads and writes graphs in the supported serialization
// formats through a single pair of entry points. Callers name a file; the
// package picks the right codec from the extension (or, for plain-text
// extensions, from the first few lines of content) and routes the call
// through a static dispatch table.
package format

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/graphport/graphport/pkg/errors"
)

// Format identifies a supported graph serialization format. It is a pure
// dispatch key; codecs are looked up in the static table, never by name
// inspection.
type Format string

const (
	NCOL      Format = "ncol"
	LGL       Format = "lgl"
	GraphML   Format = "graphml"
	GraphMLz  Format = "graphmlz"
	GML       Format = "gml"
	Pajek     Format = "pajek"
	DIMACS    Format = "dimacs"
	Adjacency Format = "adjacency"
	Edgelist  Format = "edgelist"
	Pickle    Format = "pickle"
	SVG       Format = "svg"
	DOT       Format = "dot"
)

// aliases maps the historical alternate spellings onto canonical tokens.
var aliases = map[string]Format{
	"ncol":      NCOL,
	"lgl":       LGL,
	"graphml":   GraphML,
	"graphmlz":  GraphMLz,
	"gml":       GML,
	"net":       Pajek,
	"pajek":     Pajek,
	"dimacs":    DIMACS,
	"adjacency": Adjacency,
	"adj":       Adjacency,
	"edgelist":  Edgelist,
	"edge":      Edgelist,
	"edges":     Edgelist,
	"pickle":    Pickle,
	"svg":       SVG,
	"dot":       DOT,
	"gv":        DOT,
}

// extFormats maps filename extensions to tokens. Extensions resolve by
// exact case-insensitive match; .txt and .dat fall through to content
// sniffing instead.
var extFormats = map[string]Format{
	".ncol":      NCOL,
	".lgl":       LGL,
	".graphml":   GraphML,
	".graphmlz":  GraphMLz,
	".gml":       GML,
	".net":       Pajek,
	".pajek":     Pajek,
	".dimacs":    DIMACS,
	".adj":       Adjacency,
	".adjacency": Adjacency,
	".edgelist":  Edgelist,
	".edge":      Edgelist,
	".edges":     Edgelist,
	".pickle":    Pickle,
	".svg":       SVG,
	".dot":       DOT,
	".gv":        DOT,
}

// Parse normalizes a user-supplied format name to its canonical token.
func Parse(name string) (Format, error) {
	f, ok := aliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", errors.New(errors.ErrCodeUnknownFormat, "unknown format %q", name)
	}
	return f, nil
}

// Resolve determines the serialization format of the file at path. The
// extension decides for all unambiguous cases; .txt and .dat files are
// sniffed by structure. An empty extension or an extension outside the
// table fails with an unknown-format error carrying the path.
func Resolve(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := extFormats[ext]; ok {
		return f, nil
	}
	if ext == ".txt" || ext == ".dat" {
		return sniff(path)
	}
	return "", errors.New(errors.ErrCodeUnknownFormat, "cannot identify format of %q", path)
}

// sniff distinguishes an edge list from an adjacency matrix by reading at
// most three lines. An edge list has exactly two numeric fields per line
// for more than two lines; anything whose first line does not look like an
// edge row is taken to be a matrix row. A file with exactly two such rows
// is a 2x2 matrix or a two-edge list and cannot be classified.
func sniff(path string) (Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeUnknownFormat, err, "sniff %q", path)
	}
	defer f.Close()
	return sniffContent(f, path)
}

func sniffContent(r io.Reader, path string) (Format, error) {
	sc := bufio.NewScanner(r)

	first, ok := sniffLine(sc)
	if !ok || len(first) != 2 || !allNumeric(first) {
		return Adjacency, nil
	}

	second, ok := sniffLine(sc)
	if !ok {
		return Edgelist, nil
	}
	if len(second) != 2 {
		return "", errors.New(errors.ErrCodeUnknownFormat,
			"cannot identify format of %q: line 2 has %d fields", path, len(second))
	}

	third, ok := sniffLine(sc)
	if !ok || len(third) == 0 {
		return "", errors.New(errors.ErrCodeAmbiguousFormat,
			"%q could be a 2x2 adjacency matrix or a two-edge list", path)
	}
	return Edgelist, nil
}

func sniffLine(sc *bufio.Scanner) ([]string, bool) {
	if !sc.Scan() {
		return nil, false
	}
	return strings.Fields(sc.Text()), true
}

func allNumeric(fields []string) bool {
	for _, f := range fields {
		if _, err := strconv.ParseFloat(f, 64); err != nil {
			return false
		}
	}
	return true
}
