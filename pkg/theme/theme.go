// Package theme defines the color palettes used by the collection
// experiences and the scroll-driven blending between them.
//
// Each collection page declares an ordered list of themes (hero, collection,
// finale, ...). As the visitor scrolls, the active palette is a linear blend
// of the two themes bounding the current scroll progress.
package theme

import (
	"fmt"
	"image/color"
	"strings"
)

// Color is a normalized RGB triple. Channels are in [0, 1].
type Color struct {
	R, G, B float64
}

// ParseHex parses a "#RRGGBB" hex string into a Color.
// The leading '#' is optional; parsing is case-insensitive.
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return Color{}, fmt.Errorf("invalid hex color %q: want 6 hex digits", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(h, "%02x%02x%02x", &r, &g, &b); err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}, nil
}

// MustHex parses a hex color and panics on failure.
// Intended for package-level palette literals only.
func MustHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex formats the color as "#RRGGBB".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", clampByte(c.R), clampByte(c.G), clampByte(c.B))
}

// RGBA converts the color to an opaque image/color.RGBA for rendering.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: clampByte(c.R), G: clampByte(c.G), B: clampByte(c.B), A: 255}
}

// WithAlpha converts the color to an image/color.RGBA with the given
// opacity in [0, 1]. Channels are premultiplied as ebiten expects.
func (c Color) WithAlpha(a float64) color.RGBA {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	return color.RGBA{
		R: clampByte(c.R * a),
		G: clampByte(c.G * a),
		B: clampByte(c.B * a),
		A: clampByte(a),
	}
}

// Lerp returns the channel-wise linear interpolation between c and other
// at fraction t. t=0 yields c, t=1 yields other.
func (c Color) Lerp(other Color, t float64) Color {
	return Color{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
	}
}

func clampByte(v float64) uint8 {
	v *= 255.0
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// Theme is a named palette for one phase of a collection experience.
// Themes are defined at load time and never mutated afterwards.
type Theme struct {
	Name       string
	Primary    Color
	Secondary  Color
	Accent     Color
	Background Color
}
