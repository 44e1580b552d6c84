package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/graphport/graphport/pkg/errors"
)

// Defaults applied at the call boundary when the corresponding option is
// unset. There is no ambient configuration inside the pipeline; callers that
// want configurable defaults populate Options from their own config before
// calling Render.
const (
	DefaultWidth      = 400.0
	DefaultHeight     = 400.0
	DefaultVertexSize = 10.0
	DefaultFontSizePx = 16.0
	DefaultLayout     = "circle"

	defaultVertexColor = "red"
	defaultEdgeColor   = "black"
	defaultEdgeWidth   = 1.0
	defaultShape       = ShapeCircle
	defaultLabelDist   = 1.0
)

// defaultLabelAngle is the angle of the label anchor offset, in radians.
var defaultLabelAngle = -math.Pi / 4

// Vertex shape codes. Any other value is rejected before drawing starts.
const (
	ShapeNone   = 0 // vertex is not drawn
	ShapeCircle = 1 // filled circle; a two-color value splits it into halves
	ShapeSquare = 2 // axis-aligned square with side 2*size
)

// FontSize is a font size given either as a pixel count or as a raw CSS
// size string written into the output verbatim.
type FontSize struct {
	Px  float64
	Raw string
}

// String renders the font size as a CSS value.
func (f FontSize) String() string {
	if f.Raw != "" {
		return f.Raw
	}
	px := f.Px
	if px == 0 {
		px = DefaultFontSizePx
	}
	return fmt.Sprintf("%gpx", px)
}

// ParseFontSize interprets s as a pixel count when it is a bare number or
// ends in "px", otherwise as a raw CSS size.
func ParseFontSize(s string) FontSize {
	if px, err := strconv.ParseFloat(strings.TrimSuffix(s, "px"), 64); err == nil {
		return FontSize{Px: px}
	}
	return FontSize{Raw: s}
}

// validate rejects raw size strings that would break the output syntax.
// A semicolon would terminate the CSS declaration it is embedded in.
func (f FontSize) validate() error {
	if strings.Contains(f.Raw, ";") {
		return errors.New(errors.ErrCodeValidation, "font size must not contain a semicolon")
	}
	return nil
}

// Options controls one render call. The zero value renders a 400x400
// surface with the documented defaults for every property.
type Options struct {
	// Width and Height of the output surface in pixels. Both zero means
	// 400x400; when exactly one is zero it inherits the other.
	Width  float64
	Height float64

	// VertexSize is the base vertex size in pixels, used for the default
	// size and for layout margin computation.
	VertexSize float64

	FontSize FontSize

	// Layout names the registered layout algorithm used when Render is
	// called with a nil layout.
	Layout string

	// Per-vertex drawing parameters. Unset values resolve through the
	// "label", "color", "shape" and "size" vertex attributes with the
	// documented defaults.
	Labels Attr
	Colors Attr
	Shapes Attr
	Sizes  Attr

	// LabelDists and LabelAngles place each label anchor at
	// dist*size along angle from the vertex center.
	LabelDists  Attr
	LabelAngles Attr

	// Per-edge drawing parameters. Unset values resolve through the
	// "color" and "width" edge attributes.
	EdgeColors Attr
	EdgeWidths Attr
}

// withDefaults returns a copy with dimension and size defaulting applied.
func (o Options) withDefaults() Options {
	switch {
	case o.Width == 0 && o.Height == 0:
		o.Width, o.Height = DefaultWidth, DefaultHeight
	case o.Width == 0:
		o.Width = o.Height
	case o.Height == 0:
		o.Height = o.Width
	}
	if o.VertexSize == 0 {
		o.VertexSize = DefaultVertexSize
	}
	if o.Layout == "" {
		o.Layout = DefaultLayout
	}
	return o
}

// validate checks the documented option constraints. It runs before any
// drawing command is issued.
func (o Options) validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return errors.New(errors.ErrCodeValidation,
			"width and height must be positive (got %gx%g)", o.Width, o.Height)
	}
	if o.VertexSize < 0 {
		return errors.New(errors.ErrCodeValidation, "vertex size must not be negative")
	}
	return o.FontSize.validate()
}
