package render

import "math"

// GlyphPolicy maps a cell value to a single display rune. Policies are
// total: every float64, NaN included, yields exactly one rune.
type GlyphPolicy func(v float64) rune

// BinaryGlyphs treats the map as an editable canvas: empty vs painted.
// Zero and below is empty, matching the erase value.
func BinaryGlyphs(v float64) rune {
	if math.IsNaN(v) || v <= 0 {
		return '░'
	}
	return '█'
}

// BandGlyphs shades continuous data, typically noise in [-1, 1], into
// four density bands. NaN falls into the lowest band.
func BandGlyphs(v float64) rune {
	switch {
	case math.IsNaN(v):
		return '░'
	case v <= -0.5:
		return '░'
	case v <= 0:
		return '▒'
	case v <= 0.5:
		return '▓'
	default:
		return '█'
	}
}
