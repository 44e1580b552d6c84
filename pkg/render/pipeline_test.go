package render

import (
	"math"
	"testing"

	"github.com/graphport/graphport/pkg/errors"
	"github.com/graphport/graphport/pkg/graph"
	"github.com/graphport/graphport/pkg/layout"
)

// recordingSurface counts drawing calls so tests can assert on the
// pipeline's output structure without parsing any image format.
type recordingSurface struct {
	width, height float64

	layers   []string
	lines    int
	arcs     int
	circles  int
	splits   int
	rects    int
	polygons int
	texts    []string
	points   []Point
}

func newRecordingSurface(w, h float64) *recordingSurface {
	return &recordingSurface{width: w, height: h}
}

func (s *recordingSurface) Size() (float64, float64) { return s.width, s.height }
func (s *recordingSurface) BeginLayer(name string)   { s.layers = append(s.layers, name) }
func (s *recordingSurface) Line(x1, y1, x2, y2 float64, _ Stroke) {
	s.lines++
	s.points = append(s.points, Point{X: x1, Y: y1}, Point{X: x2, Y: y2})
}
func (s *recordingSurface) Arc(cx, cy, r float64, _ Stroke) { s.arcs++ }
func (s *recordingSurface) Circle(cx, cy, r float64, _ string) {
	s.circles++
	s.points = append(s.points, Point{X: cx, Y: cy})
}
func (s *recordingSurface) SplitCircle(cx, cy, r float64, _, _ string) { s.splits++ }
func (s *recordingSurface) Rect(x, y, w, h float64, _ string)          { s.rects++ }
func (s *recordingSurface) Polygon(pts []Point, _ string)              { s.polygons++ }
func (s *recordingSurface) Text(x, y float64, text string)             { s.texts = append(s.texts, text) }
func (s *recordingSurface) TextExtents(text string) (float64, float64) {
	return float64(len(text)) * 8, 10
}

func (s *recordingSurface) drawn() bool {
	return s.lines+s.arcs+s.circles+s.splits+s.rects+s.polygons+len(s.texts) > 0
}

func triangle(directed bool) *graph.Graph {
	g, _ := graph.New(3, []graph.Edge{{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 0}}, directed)
	return g
}

func TestRenderDirectedTriangle(t *testing.T) {
	g := triangle(true)
	surf := newRecordingSurface(400, 400)

	if err := Render(g, nil, surf, Options{}); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if surf.lines != 3 {
		t.Errorf("lines = %d, want 3", surf.lines)
	}
	if surf.polygons != 3 {
		t.Errorf("arrowheads = %d, want 3", surf.polygons)
	}
	if surf.arcs != 0 {
		t.Errorf("self-loop arcs = %d, want 0", surf.arcs)
	}
	if surf.circles != 3 {
		t.Errorf("circles = %d, want 3", surf.circles)
	}

	want := []string{"edges", "vertices", "labels"}
	if len(surf.layers) != 3 {
		t.Fatalf("layers = %v, want %v", surf.layers, want)
	}
	for i, l := range want {
		if surf.layers[i] != l {
			t.Errorf("layer %d = %q, want %q", i, surf.layers[i], l)
		}
	}
}

func TestRenderSelfLoopAddsArc(t *testing.T) {
	g := triangle(true)
	if err := g.AddEdges(graph.Edge{From: 1, To: 1}); err != nil {
		t.Fatalf("AddEdges() error = %v", err)
	}
	surf := newRecordingSurface(400, 400)

	if err := Render(g, nil, surf, Options{}); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if surf.arcs != 1 {
		t.Errorf("self-loop arcs = %d, want 1", surf.arcs)
	}
	if surf.lines != 3 {
		t.Errorf("lines = %d, want 3", surf.lines)
	}
	if surf.polygons != 3 {
		t.Errorf("arrowheads = %d, want 3 (loops have none)", surf.polygons)
	}
}

func TestRenderUndirectedHasNoArrowheads(t *testing.T) {
	surf := newRecordingSurface(400, 400)
	if err := Render(triangle(false), nil, surf, Options{}); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if surf.polygons != 0 {
		t.Errorf("arrowheads = %d, want 0", surf.polygons)
	}
}

func TestRenderValidation(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{name: "SemicolonFontSize", opts: Options{FontSize: FontSize{Raw: "16px;"}}},
		{name: "NegativeVertexSize", opts: Options{VertexSize: -1}},
		{name: "UnknownShapeCode", opts: Options{Shapes: Lit(7)}},
		{name: "UnknownLayout", opts: Options{Layout: "banana"}},
		{name: "NegativeWidth", opts: Options{Width: -10, Height: 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			surf := newRecordingSurface(400, 400)
			err := Render(triangle(true), nil, surf, tt.opts)
			if err == nil {
				t.Fatal("Render() expected error, got nil")
			}
			if !errors.Is(err, errors.ErrCodeValidation) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeValidation)
			}
			if surf.drawn() {
				t.Error("surface was drawn on despite validation failure")
			}
		})
	}
}

func TestRenderShortLayoutRejected(t *testing.T) {
	l, err := layout.New([][]float64{{0, 0}, {1, 1}})
	if err != nil {
		t.Fatalf("layout.New() error = %v", err)
	}
	surf := newRecordingSurface(400, 400)
	if err := Render(triangle(true), l, surf, Options{}); err == nil {
		t.Fatal("Render() expected error for short layout, got nil")
	}
}

func TestRenderDefaultLabels(t *testing.T) {
	surf := newRecordingSurface(400, 400)
	if err := Render(triangle(false), nil, surf, Options{}); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	want := []string{"1", "2", "3"}
	if len(surf.texts) != len(want) {
		t.Fatalf("labels = %v, want %v", surf.texts, want)
	}
	for i, l := range want {
		if surf.texts[i] != l {
			t.Errorf("label %d = %q, want %q", i, surf.texts[i], l)
		}
	}
}

func TestRenderLabelsOff(t *testing.T) {
	surf := newRecordingSurface(400, 400)
	if err := Render(triangle(false), nil, surf, Options{Labels: Off()}); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if len(surf.texts) != 0 {
		t.Errorf("labels = %v, want none", surf.texts)
	}
}

func TestRenderShapes(t *testing.T) {
	surf := newRecordingSurface(400, 400)
	opts := Options{Shapes: Seq(ShapeNone, ShapeCircle, ShapeSquare)}
	if err := Render(triangle(false), nil, surf, opts); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if surf.circles != 1 || surf.rects != 1 {
		t.Errorf("circles = %d rects = %d, want 1 and 1", surf.circles, surf.rects)
	}
}

func TestRenderSplitColor(t *testing.T) {
	surf := newRecordingSurface(400, 400)
	opts := Options{Colors: Lit("red blue")}
	if err := Render(triangle(false), nil, surf, opts); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if surf.splits != 3 {
		t.Errorf("split circles = %d, want 3", surf.splits)
	}
	if surf.circles != 0 {
		t.Errorf("plain circles = %d, want 0", surf.circles)
	}
}

func TestRenderDegenerateLayout(t *testing.T) {
	// All vertices at the same point: the zero-extent axes must not
	// produce NaN or infinite coordinates.
	l, err := layout.New([][]float64{{2, 2}, {2, 2}, {2, 2}})
	if err != nil {
		t.Fatalf("layout.New() error = %v", err)
	}
	surf := newRecordingSurface(400, 400)
	if err := Render(triangle(false), l, surf, Options{}); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	for _, p := range surf.points {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			t.Fatalf("non-finite coordinate %v", p)
		}
	}
	// Every coincident vertex lands at the surface center.
	for _, p := range surf.points {
		if p.X != 200 || p.Y != 200 {
			t.Errorf("point = %v, want (200, 200)", p)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	sx1, tx1 := normalizeAxis(-1, 1, 400, 10)
	sx2, tx2 := normalizeAxis(-1, 1, 400, 10)
	if sx1 != sx2 || tx1 != tx2 {
		t.Errorf("normalizeAxis not stable: (%v,%v) vs (%v,%v)", sx1, tx1, sx2, tx2)
	}
	// The mapped bounding box is centered with the requested margin.
	lo, hi := -1*sx1+tx1, 1*sx1+tx1
	if math.Abs(lo-10) > 1e-9 || math.Abs(hi-390) > 1e-9 {
		t.Errorf("mapped extent = [%v, %v], want [10, 390]", lo, hi)
	}
}

func TestOptionsDimensionDefaulting(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
		wantW, wantH  float64
	}{
		{name: "BothZero", width: 0, height: 0, wantW: 400, wantH: 400},
		{name: "WidthZero", width: 0, height: 250, wantW: 250, wantH: 250},
		{name: "HeightZero", width: 300, height: 0, wantW: 300, wantH: 300},
		{name: "BothSet", width: 640, height: 480, wantW: 640, wantH: 480},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := Options{Width: tt.width, Height: tt.height}.withDefaults()
			if o.Width != tt.wantW || o.Height != tt.wantH {
				t.Errorf("withDefaults() = %gx%g, want %gx%g", o.Width, o.Height, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestFontSizeString(t *testing.T) {
	tests := []struct {
		name string
		fs   FontSize
		want string
	}{
		{name: "Default", fs: FontSize{}, want: "16px"},
		{name: "Pixels", fs: FontSize{Px: 12}, want: "12px"},
		{name: "Raw", fs: FontSize{Raw: "1.2em"}, want: "1.2em"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fs.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
