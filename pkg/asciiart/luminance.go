package asciiart

/*
Luminance returns the perceptual brightness (0-255) of an RGB triple using the ITU-R BT.601 luma weights:

	0.299r + 0.587g + 0.114b

The weighted sum is accumulated in integers and divided once, so pure white maps to exactly 255 and pure black to 0.
*/
func Luminance(r, g, b uint8) float64 {
	return float64(299*int(r)+587*int(g)+114*int(b)) / 1000
}

/*
CharFor maps a luminance value (0-255) onto a glyph of the ramp, which is ordered from darkest to lightest:

	idx = floor(luminance / 255 * (len(glyphs) - 1))

clamped to the ramp. When inverted is set the luminance is mirrored (255 - luminance) first, so
CharFor(l, glyphs, true) == CharFor(255-l, glyphs, false) holds exactly.

An empty ramp yields the zero rune; resolved charsets are never empty.
*/
func CharFor(luminance float64, glyphs []rune, inverted bool) rune {
	if len(glyphs) == 0 {
		return 0
	}

	return glyphs[charIndex(luminance, len(glyphs), inverted)]
}

// charIndex is CharFor without the lookup, for callers that keep per-glyph data alongside the ramp.
func charIndex(luminance float64, n int, inverted bool) int {
	if inverted {
		luminance = 255 - luminance
	}

	idx := int(luminance / 255 * float64(n-1))
	return min(max(idx, 0), n-1)
}
