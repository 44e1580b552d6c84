package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/graphport/graphport/pkg/layout"
)

func TestRootCommandRegistersSubcommands(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	want := []string{"convert", "render", "info", "formats", "serve", "cache", "completion"}
	have := make(map[string]bool)
	for _, cmd := range root.Commands() {
		have[cmd.Name()] = true
	}
	for _, name := range want {
		if !have[name] {
			t.Errorf("missing subcommand %q", name)
		}
	}
}

func TestRenderLayoutHelpMatchesRegistry(t *testing.T) {
	c := New(io.Discard, LogInfo)
	var usage string
	for _, cmd := range c.RootCommand().Commands() {
		if cmd.Name() == "render" {
			usage = cmd.Flags().Lookup("layout").Usage
		}
	}
	if usage == "" {
		t.Fatal("render command has no --layout flag")
	}

	_, names, ok := strings.Cut(usage, ": ")
	if !ok {
		t.Fatalf("--layout usage %q does not list algorithms", usage)
	}
	for _, name := range strings.Split(names, ", ") {
		if _, err := layout.Get(name); err != nil {
			t.Errorf("--layout help names %q: %v", name, err)
		}
	}
}

func TestCacheDirHonorsXDG(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-test")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir error: %v", err)
	}
	if dir != filepath.Join("/tmp/xdg-test", appName) {
		t.Errorf("cacheDir = %q, want XDG path", dir)
	}
}

func TestConvertCommand(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.edges")
	output := filepath.Join(dir, "out.gml")
	if err := os.WriteFile(input, []byte("0 1\n1 2\n"), 0o644); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetArgs([]string{"convert", input, output, "--directed"})
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)

	if err := root.Execute(); err != nil {
		t.Fatalf("convert failed: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.Contains(string(data), "directed 1") {
		t.Errorf("gml output missing directed flag:\n%s", data)
	}
}

func TestConvertUnknownFormatFlag(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetArgs([]string{"convert", "a.edges", "b.gml", "--from", "nonsense"})
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)

	if err := root.Execute(); err == nil {
		t.Error("expected error for unknown --from format")
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		target string
		want   string
	}{
		{"SwapsExtension", "graph.gml", "svg", "graph.svg"},
		{"NoExtension", "graph", "png", "graph.png"},
		{"DottedDir", "a.b/graph", "svg", "a.b/graph.svg"},
		{"NestedPath", "out/karate.graphml", "dot", "out/karate.dot"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outputPath(tt.input, tt.target); got != tt.want {
				t.Errorf("outputPath(%q, %q) = %q, want %q", tt.input, tt.target, got, tt.want)
			}
		})
	}
}

func TestValidateEngine(t *testing.T) {
	if err := validateEngine("builtin"); err != nil {
		t.Errorf("builtin rejected: %v", err)
	}
	if err := validateEngine("graphviz"); err != nil {
		t.Errorf("graphviz rejected: %v", err)
	}
	if err := validateEngine("crayon"); err == nil {
		t.Error("expected error for unknown engine")
	}
}

func TestValidateTarget(t *testing.T) {
	for _, ok := range []string{"svg", "png", "dot"} {
		if err := validateTarget(ok); err != nil {
			t.Errorf("%s rejected: %v", ok, err)
		}
	}
	if err := validateTarget("gif"); err == nil {
		t.Error("expected error for unknown target")
	}
}

func TestRenderCommandWritesSVG(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.edges")
	output := filepath.Join(dir, "out.svg")
	if err := os.WriteFile(input, []byte("0 1\n1 2\n2 0\n"), 0o644); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetArgs([]string{"render", input, "-o", output, "--no-cache", "--layout", "circle"})
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)

	if err := root.Execute(); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.Contains(string(data), "<svg") {
		t.Error("output is not an SVG document")
	}
}

func TestInfoCommand(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.edges")
	if err := os.WriteFile(input, []byte("0 1\n"), 0o644); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetArgs([]string{"info", input})
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)

	if err := root.Execute(); err != nil {
		t.Fatalf("info failed: %v", err)
	}
}
