package text

// Shaper lays out text into a Buffer.
type Shaper interface {
	Layout(req LayoutRequest) *Buffer
}

// LayoutRequest describes one piece of text to lay out.
// Width and Height bound the box in pixels; zero means unbounded.
type LayoutRequest struct {
	Text    string
	Attrs   Attrs
	Shaping Shaping
	Metrics Metrics
	Width   float32
	Height  float32
}

// Glyph is a positioned glyph. X and Y are relative to the top-left corner
// of the buffer; Y is the baseline including any vertical shaping offset.
type Glyph struct {
	ID      uint16
	Rune    rune
	X, Y    float32
	Advance float32
}

// Line is one laid-out line of text.
type Line struct {
	Glyphs []Glyph

	// Width is the advance of the line without trailing whitespace.
	Width float32

	// Baseline is the y coordinate of the baseline from the buffer top.
	Baseline float32
}

// Buffer is the result of laying out text.
type Buffer struct {
	Lines   []Line
	Metrics Metrics
	Width   float32
	Height  float32

	// FontID identifies the font the glyph ids refer to.
	FontID uint64
}

// GlyphCount returns the number of glyphs across all lines.
func (b *Buffer) GlyphCount() int {
	if b == nil {
		return 0
	}
	n := 0
	for i := range b.Lines {
		n += len(b.Lines[i].Glyphs)
	}
	return n
}

// shapedGlyph is the output of a shaping pass before line placement.
type shapedGlyph struct {
	id      uint16
	r       rune
	xOff    float32
	yOff    float32
	advance float32
}
