package text

import (
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
)

// shapeBasic maps runes to glyphs one by one and applies pair kerning from
// the font's kern table when present.
func (e *fontEntry) shapeBasic(runes []rune, size float32) []shapedGlyph {
	if len(runes) == 0 {
		return nil
	}
	var buf sfnt.Buffer
	ppem := floatToFixed(size)
	out := make([]shapedGlyph, len(runes))

	var prev sfnt.GlyphIndex
	for i, r := range runes {
		gi, err := e.sfnt.GlyphIndex(&buf, r)
		if err != nil {
			gi = 0
		}
		adv, err := e.sfnt.GlyphAdvance(&buf, gi, ppem, xfont.HintingNone)
		if err != nil {
			adv = 0
		}
		if i > 0 {
			if k, err := e.sfnt.Kern(&buf, prev, gi, ppem, xfont.HintingNone); err == nil {
				out[i-1].advance += fixedToFloat(k)
			}
		}
		out[i] = shapedGlyph{id: uint16(gi), r: r, advance: fixedToFloat(adv)}
		prev = gi
	}
	return out
}
