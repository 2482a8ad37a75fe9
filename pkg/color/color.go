// Package color normalizes the color notations found in graph exchange files.
//
// JSON and Graphology documents carry colors as free-form strings (hex,
// CSS names, rgb() notation), while GEXF and GraphML carry them as separate
// r, g and b channels. Every importer and exporter funnels colors through
// [Normalize] and [RGB.String] so that one canonical form, rgb(r,g,b), is
// stored in the graph model and written back to string-based formats.
//
// Hex parsing and rendering use go-colorful; CSS color names come from
// golang.org/x/image/colornames.
package color

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"

	errs "github.com/matzehuels/graphbridge/pkg/errors"
)

// RGB is a normalized 8-bit color triple.
type RGB struct {
	R, G, B uint8
}

// String returns the canonical form, e.g. "rgb(255,0,0)".
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

// Hex returns the color as "#rrggbb".
func (c RGB) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}

// FromComponents builds a color from raw channel values, rounding and
// clamping each to 0..255.
func FromComponents(r, g, b float64) RGB {
	return RGB{R: clampChannel(r), G: clampChannel(g), B: clampChannel(b)}
}

// ParseError reports a color string that could not be understood.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid color %q", e.Input)
}

var rgbFunc = regexp.MustCompile(`^rgba?\(\s*([^,\s]+)\s*,\s*([^,\s]+)\s*,\s*([^,\s)]+)\s*(?:,\s*[^,)]+\s*)?\)$`)

// Normalize parses hex ("#f00", "#ff0000", "#ff0000cc", "ff0000"), CSS
// named ("red") and functional ("rgb(255, 0, 0)", "rgba(100%,0%,0%,0.5)")
// colors. Alpha is discarded.
//
// Failures wrap a [*ParseError] with [errs.ErrCodeInvalidColor].
func Normalize(s string) (RGB, error) {
	in := strings.ToLower(strings.TrimSpace(s))
	if in == "" {
		return RGB{}, invalid(s)
	}

	if c, ok := colornames.Map[in]; ok {
		return RGB{R: c.R, G: c.G, B: c.B}, nil
	}

	if m := rgbFunc.FindStringSubmatch(in); m != nil {
		var out [3]uint8
		for i, raw := range m[1:4] {
			v, ok := parseChannel(raw)
			if !ok {
				return RGB{}, invalid(s)
			}
			out[i] = v
		}
		return RGB{R: out[0], G: out[1], B: out[2]}, nil
	}

	if c, ok := parseHex(in); ok {
		return c, nil
	}
	return RGB{}, invalid(s)
}

// NormalizeAny normalizes a decoded JSON value. Only strings are colors.
func NormalizeAny(v any) (RGB, error) {
	switch t := v.(type) {
	case string:
		return Normalize(t)
	case fmt.Stringer:
		return Normalize(t.String())
	default:
		return RGB{}, invalid(fmt.Sprint(v))
	}
}

// parseHex accepts #rgb, #rgba, #rrggbb and #rrggbbaa. Without the "#"
// only the three and six digit forms are hex.
func parseHex(s string) (RGB, bool) {
	h, hashed := strings.CutPrefix(s, "#")
	switch len(h) {
	case 4, 8:
		if !hashed {
			return RGB{}, false
		}
		h = h[:len(h)-len(h)/4]
	case 3, 6:
	default:
		return RGB{}, false
	}
	for _, r := range h {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return RGB{}, false
		}
	}
	c, err := colorful.Hex("#" + h)
	if err != nil {
		return RGB{}, false
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, true
}

func parseChannel(raw string) (uint8, bool) {
	if pct, ok := strings.CutSuffix(raw, "%"); ok {
		f, err := strconv.ParseFloat(pct, 64)
		if err != nil {
			return 0, false
		}
		return clampChannel(f * 255 / 100), true
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return clampChannel(f), true
}

func clampChannel(f float64) uint8 {
	if math.IsNaN(f) || f <= 0 {
		return 0
	}
	if f >= 255 {
		return 255
	}
	return uint8(math.Round(f))
}

func invalid(s string) error {
	return errs.Wrap(errs.ErrCodeInvalidColor, &ParseError{Input: s}, "parse color")
}
