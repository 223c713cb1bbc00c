package color

import "math"

// Lightness returns the perceptual lightness of c in [0, 1], the L axis of
// OKLab. Alpha is ignored.
func Lightness(c Color) float64 {
	r := linear(c.R)
	g := linear(c.G)
	b := linear(c.B)

	// cone responses
	l := math.Cbrt(0.4122214708*r + 0.5363325363*g + 0.0514459929*b)
	m := math.Cbrt(0.2119034982*r + 0.6806995451*g + 0.1073969566*b)
	s := math.Cbrt(0.0883024619*r + 0.2817188376*g + 0.6299787005*b)

	return 0.2104542553*l + 0.7936177850*m - 0.0040720468*s
}

// IsLight reports whether dark text reads better than light text on c.
func IsLight(c Color) bool {
	return Lightness(c) > 0.65
}

func linear(v uint8) float64 {
	f := float64(v) / 255
	if f <= 0.04045 {
		return f / 12.92
	}
	return math.Pow((f+0.055)/1.055, 2.4)
}
