// Package text lays out strings for the hcal renderer.
//
// A [FontSystem] owns the registered fonts (the Go font family is built in)
// and implements [Shaper]: given a string, attributes and pixel metrics it
// returns a [Buffer] of positioned glyphs wrapped to a box. Two shaping
// modes exist. [ShapingBasic] maps runes to glyphs one by one with kerning;
// [ShapingAdvanced] runs HarfBuzz via go-text/typesetting for ligatures,
// marks and right-to-left paragraphs.
//
// An [Atlas] caches rasterized glyph coverage as horizontal spans keyed by
// font, glyph and pixel size. Entries not used for a number of frames are
// dropped by [Atlas.Trim].
package text
