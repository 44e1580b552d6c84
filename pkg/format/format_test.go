package format

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/graphport/graphport/pkg/errors"
	"github.com/graphport/graphport/pkg/graph"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Format
		wantErr bool
	}{
		{name: "Canonical", in: "graphml", want: GraphML},
		{name: "PajekAlias", in: "net", want: Pajek},
		{name: "AdjAlias", in: "adj", want: Adjacency},
		{name: "EdgesAlias", in: "edges", want: Edgelist},
		{name: "CaseInsensitive", in: "GML", want: GML},
		{name: "Unknown", in: "csv", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestResolveByExtension(t *testing.T) {
	// Extension resolution never opens the file, so the paths need not
	// exist.
	tests := []struct {
		path string
		want Format
	}{
		{path: "a.ncol", want: NCOL},
		{path: "a.lgl", want: LGL},
		{path: "a.graphml", want: GraphML},
		{path: "a.graphmlz", want: GraphMLz},
		{path: "a.gml", want: GML},
		{path: "a.net", want: Pajek},
		{path: "a.pajek", want: Pajek},
		{path: "a.dimacs", want: DIMACS},
		{path: "a.adj", want: Adjacency},
		{path: "a.edgelist", want: Edgelist},
		{path: "a.edges", want: Edgelist},
		{path: "a.edge", want: Edgelist},
		{path: "a.pickle", want: Pickle},
		{path: "a.svg", want: SVG},
		{path: "a.dot", want: DOT},
		{path: "UPPER.GRAPHML", want: GraphML},
		{path: "/some/dir/with.dots/b.gml", want: GML},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := Resolve(tt.path)
			if err != nil {
				t.Fatalf("Resolve(%q) error = %v", tt.path, err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestResolveUnknownExtension(t *testing.T) {
	_, err := Resolve("graph.csv")
	if err == nil {
		t.Fatal("Resolve() expected error, got nil")
	}
	if !errors.Is(err, errors.ErrCodeUnknownFormat) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeUnknownFormat)
	}
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestResolveSniffing(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		want     Format
		wantCode errors.Code
	}{
		{
			name:    "EdgeListThreeLines",
			content: "0 1\n1 2\n2 0\n",
			want:    Edgelist,
		},
		{
			name:     "TwoByTwoAmbiguous",
			content:  "0 1\n1 0\n",
			wantCode: errors.ErrCodeAmbiguousFormat,
		},
		{
			name:     "BlankThirdLineAmbiguous",
			content:  "0 1\n1 0\n\n",
			wantCode: errors.ErrCodeAmbiguousFormat,
		},
		{
			name:    "WideFirstLineIsMatrix",
			content: "0 1 0\n1 0 1\n0 1 0\n",
			want:    Adjacency,
		},
		{
			name:    "NonNumericFirstLineIsMatrix",
			content: "a b\nc d\n",
			want:    Adjacency,
		},
		{
			name:    "EmptyFileIsMatrix",
			content: "",
			want:    Adjacency,
		},
		{
			name:    "SingleEdgeLine",
			content: "3 4\n",
			want:    Edgelist,
		},
		{
			name:     "MismatchedSecondLine",
			content:  "0 1\n1 2 3\n",
			wantCode: errors.ErrCodeUnknownFormat,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTemp(t, "data.txt", tt.content)
			got, err := Resolve(path)
			if tt.wantCode != "" {
				if err == nil {
					t.Fatalf("Resolve() = %v, expected error", got)
				}
				if !errors.Is(err, tt.wantCode) {
					t.Errorf("error code = %v, want %v", errors.GetCode(err), tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Resolve() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveSniffsDatToo(t *testing.T) {
	path := writeTemp(t, "data.dat", "0 1\n1 2\n2 0\n")
	got, err := Resolve(path)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got != Edgelist {
		t.Errorf("Resolve() = %v, want %v", got, Edgelist)
	}
}

func TestWritePajekUnsupported(t *testing.T) {
	g, err := graph.New(2, []graph.Edge{{From: 0, To: 1}}, false)
	if err != nil {
		t.Fatalf("graph.New() error = %v", err)
	}
	path := filepath.Join(t.TempDir(), "out.net")

	err = Write(g, path, "", WriteOptions{})
	if err == nil {
		t.Fatal("Write() expected error, got nil")
	}
	if !errors.Is(err, errors.ErrCodeUnsupportedOp) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeUnsupportedOp)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("unsupported write must not create the target file")
	}
}

func TestReadSVGUnsupported(t *testing.T) {
	_, err := Read("in.svg", "", ReadOptions{})
	if err == nil {
		t.Fatal("Read() expected error, got nil")
	}
	if !errors.Is(err, errors.ErrCodeUnsupportedOp) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeUnsupportedOp)
	}
}

func TestFormatsTable(t *testing.T) {
	if CanWrite(Pajek) {
		t.Error("pajek must have no writer")
	}
	if !CanRead(Pajek) {
		t.Error("pajek must have a reader")
	}
	if CanRead(SVG) {
		t.Error("svg must have no reader")
	}
	if !CanWrite(SVG) {
		t.Error("svg must have a writer")
	}
	for _, f := range Formats() {
		if !CanRead(f) && !CanWrite(f) {
			t.Errorf("format %s has neither reader nor writer", f)
		}
	}
}
