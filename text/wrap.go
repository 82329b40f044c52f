package text

import "unicode"

// wrap splits a shaped paragraph into lines no wider than width.
// Lines break after whitespace. A word wider than width is broken between
// glyphs. A width of zero or less disables wrapping.
func wrap(glyphs []shapedGlyph, width float32) [][]shapedGlyph {
	if width <= 0 || len(glyphs) == 0 {
		return [][]shapedGlyph{glyphs}
	}

	var lines [][]shapedGlyph
	start := 0
	lastBreak := -1
	var x float32
	for i, g := range glyphs {
		if x+g.advance > width && i > start && !unicode.IsSpace(g.r) {
			cut := i
			if lastBreak >= start {
				cut = lastBreak + 1
			}
			lines = append(lines, glyphs[start:cut])
			start = cut
			lastBreak = -1
			x = 0
			for _, h := range glyphs[start:i] {
				x += h.advance
			}
		}
		x += g.advance
		if unicode.IsSpace(g.r) {
			lastBreak = i
		}
	}
	return append(lines, glyphs[start:])
}

// lineWidth returns the advance of glyphs ignoring trailing whitespace.
func lineWidth(glyphs []shapedGlyph) float32 {
	end := len(glyphs)
	for end > 0 && unicode.IsSpace(glyphs[end-1].r) {
		end--
	}
	var w float32
	for _, g := range glyphs[:end] {
		w += g.advance
	}
	return w
}
