package text

import (
	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/text/unicode/bidi"
)

// shapeAdvanced runs HarfBuzz shaping over one paragraph.
func (fs *FontSystem) shapeAdvanced(e *fontEntry, runes []rune, size float32) []shapedGlyph {
	if len(runes) == 0 {
		return nil
	}

	// font.Face is not safe for concurrent use; the Font it wraps is.
	face := gtfont.NewFace(e.gotext)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: paragraphDirection(string(runes)),
		Face:      face,
		Size:      floatToFixed(size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := fs.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	fs.shaperPool.Put(hb)

	out := make([]shapedGlyph, len(output.Glyphs))
	for i, g := range output.Glyphs {
		var r rune
		if idx := g.TextIndex(); idx >= 0 && idx < len(runes) {
			r = runes[idx]
		}
		out[i] = shapedGlyph{
			id:      uint16(g.GlyphID), //nolint:gosec // glyph ids of TrueType fonts fit in uint16
			r:       r,
			xOff:    fixedToFloat(g.XOffset),
			yOff:    fixedToFloat(g.YOffset),
			advance: fixedToFloat(g.Advance),
		}
	}
	return out
}

// paragraphDirection reports whether a paragraph reads right-to-left.
// The first bidi run decides, matching the paragraph embedding level.
func paragraphDirection(s string) di.Direction {
	p := bidi.Paragraph{}
	if _, err := p.SetString(s, bidi.DefaultDirection(bidi.Neutral)); err != nil {
		return di.DirectionLTR
	}
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return di.DirectionLTR
	}
	run := ordering.Run(0)
	if run.Direction() == bidi.RightToLeft {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
