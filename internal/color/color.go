package color

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Color represents an RGBA color. The R, G, B, A uint8 fields are the source of truth;
// all output formats are derived from them. Two colors are equal iff all four
// components are equal, so Color is usable as a map key.
type Color struct {
	R, G, B, A uint8
}

// RGB returns an opaque Color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xff}
}

// ParseHex parses a hex color string like "#EB6F92" or "#EB6F9280" into a Color.
// Six-digit colors are opaque. Every character after the optional "#" must be a
// hex digit.
func ParseHex(s string) (Color, error) {
	digits := strings.TrimPrefix(s, "#")
	if len(digits) != 6 && len(digits) != 8 {
		return Color{}, fmt.Errorf("invalid hex color %q: must be 6 or 8 hex digits", s)
	}
	b, err := hex.DecodeString(digits)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	c := Color{R: b[0], G: b[1], B: b[2], A: 0xff}
	if len(b) == 4 {
		c.A = b[3]
	}
	return c, nil
}

// Hex returns the canonical textual form of the color: "#RRGGBB" for opaque
// colors and "#RRGGBBAA" otherwise, always uppercase.
func (c Color) Hex() string {
	if c.Opaque() {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

// Opaque reports whether the alpha channel is fully opaque.
func (c Color) Opaque() bool {
	return c.A == 0xff
}

// CSS returns the color as an rgb() or rgba() string, e.g. "rgb(235, 111, 146)".
func (c Color) CSS() string {
	if c.Opaque() {
		return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %.2f)", c.R, c.G, c.B, float64(c.A)/255.0)
}
