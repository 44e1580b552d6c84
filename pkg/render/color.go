package render

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// splitColor detects the two-color vertex encoding: a color value holding
// two colors separated by a space. The first color fills the first-swept
// half of the circle, the second the other; which visual half is "first" is
// left to the surface, matching the historical behavior.
func splitColor(c string) (first, second string, ok bool) {
	i := strings.IndexByte(c, ' ')
	if i < 0 {
		return "", "", false
	}
	return c[:i], c[i+1:], true
}

// ParseColor turns a color string into RGB. It accepts hex notation
// ("#ff0000", "#f00") and SVG 1.1 color names ("red", "steelblue").
// Raster surfaces need concrete channels; the SVG surface passes color
// strings through verbatim and never calls this.
func ParseColor(s string) (colorful.Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		if len(s) == 4 { // #rgb shorthand
			s = fmt.Sprintf("#%c%c%c%c%c%c", s[1], s[1], s[2], s[2], s[3], s[3])
		}
		return colorful.Hex(s)
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return colorful.Color{
			R: float64(c.R) / 255,
			G: float64(c.G) / 255,
			B: float64(c.B) / 255,
		}, nil
	}
	return colorful.Color{}, fmt.Errorf("unknown color %q", s)
}
