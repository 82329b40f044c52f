// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"math"
	"sort"

	"github.com/gogpu/hcal"
	"github.com/gogpu/hcal/text"
)

// maxGlyphID is the last id the generator hands out. Running past it means
// glyphs are leaking.
const maxGlyphID = math.MaxUint64 / 2

// GlyphID identifies a cached glyph. Ids are generated monotonically and
// never reused.
type GlyphID uint64

// Raw returns the numeric id.
func (id GlyphID) Raw() uint64 { return uint64(id) }

// GlyphInfo describes a piece of text placed in window fractions.
type GlyphInfo struct {
	// InBoundsOff shifts the text inside its box, in window fractions.
	InBoundsOff [2]float32

	// Size is the box size in window fractions.
	Size [2]float32

	Text    string
	Attrs   text.Attrs
	Shaping text.Shaping
	Color   Color

	// Scale multiplies the area scale derived from Size.
	Scale float32

	// XOffset is the left edge of the box in window fractions.
	XOffset float32

	// YOffset is the top edge of the box in window fractions measured from
	// the top, that is 1 - pos.y - size.y for a bottom-left position.
	YOffset float32
}

type compiledGlyph struct {
	buffer *text.Buffer
	info   GlyphInfo
}

// GlyphBuilder builds a GlyphInfo fluently.
//
//	id := render.NewGlyphBuilder("Today", [2]float32{0.1, 0.8}, [2]float32{0.3, 0.1}).
//	    Color(render.White).
//	    Build(r)
type GlyphBuilder struct {
	info GlyphInfo
}

// NewGlyphBuilder starts a glyph at pos with size, both in window fractions
// with the origin at the bottom left. Defaults: regular sans, basic
// shaping, black, scale 1.
func NewGlyphBuilder(s string, pos, size [2]float32) *GlyphBuilder {
	return &GlyphBuilder{info: GlyphInfo{
		Size:    size,
		Text:    s,
		Attrs:   text.DefaultAttrs(),
		Shaping: text.ShapingBasic,
		Color:   Black,
		Scale:   1,
		XOffset: pos[0],
		YOffset: 1 - pos[1] - size[1],
	}}
}

// InBoundsOff sets the offset of the text inside its box.
func (b *GlyphBuilder) InBoundsOff(off [2]float32) *GlyphBuilder {
	b.info.InBoundsOff = off
	return b
}

// Attrs sets the font attributes.
func (b *GlyphBuilder) Attrs(a text.Attrs) *GlyphBuilder {
	b.info.Attrs = a
	return b
}

// Shaping sets the shaping mode.
func (b *GlyphBuilder) Shaping(s text.Shaping) *GlyphBuilder {
	b.info.Shaping = s
	return b
}

// Scale sets the scale multiplier.
func (b *GlyphBuilder) Scale(scale float32) *GlyphBuilder {
	b.info.Scale = scale
	return b
}

// Color sets the text color.
func (b *GlyphBuilder) Color(c Color) *GlyphBuilder {
	b.info.Color = c
	return b
}

// Info returns the built GlyphInfo.
func (b *GlyphBuilder) Info() GlyphInfo {
	return b.info
}

// Build adds the glyph to r and returns its id.
func (b *GlyphBuilder) Build(r *Renderer) GlyphID {
	return r.AddGlyph(b.info)
}

// AddGlyph lays out info against the current window size and caches it.
func (r *Renderer) AddGlyph(info GlyphInfo) GlyphID {
	w, h := r.dims.Get()

	r.glyphMu.Lock()
	defer r.glyphMu.Unlock()
	buf := r.layoutGlyph(info, w, h)
	id := r.nextGlyphID()
	r.glyphs[id] = &compiledGlyph{buffer: buf, info: info}
	return id
}

// RemoveGlyph drops a glyph. It reports whether the id was cached.
func (r *Renderer) RemoveGlyph(id GlyphID) bool {
	r.glyphMu.Lock()
	defer r.glyphMu.Unlock()
	if _, ok := r.glyphs[id]; !ok {
		return false
	}
	delete(r.glyphs, id)
	return true
}

// ClearGlyphs drops every cached glyph.
func (r *Renderer) ClearGlyphs() {
	r.glyphMu.Lock()
	defer r.glyphMu.Unlock()
	clear(r.glyphs)
}

// RescaleGlyphs lays out every cached glyph again against the current
// window size.
func (r *Renderer) RescaleGlyphs() {
	w, h := r.dims.Get()

	r.glyphMu.Lock()
	defer r.glyphMu.Unlock()
	for _, g := range r.glyphs {
		g.buffer = r.layoutGlyph(g.info, w, h)
	}
	hcal.Logger().Debug("glyphs rescaled", "count", len(r.glyphs), "width", w, "height", h)
}

// GlyphCount returns the number of cached glyphs.
func (r *Renderer) GlyphCount() int {
	r.glyphMu.Lock()
	defer r.glyphMu.Unlock()
	return len(r.glyphs)
}

// GlyphBuffer returns the laid-out buffer of a cached glyph.
func (r *Renderer) GlyphBuffer(id GlyphID) (*text.Buffer, bool) {
	r.glyphMu.Lock()
	defer r.glyphMu.Unlock()
	g, ok := r.glyphs[id]
	if !ok {
		return nil, false
	}
	return g.buffer, true
}

func (r *Renderer) nextGlyphID() GlyphID {
	gen := r.glyphIDs.Add(1) - 1
	if gen > maxGlyphID {
		panic(fmt.Sprintf("render: exceeded max glyph id (%d)", gen))
	}
	return GlyphID(gen)
}

// layoutGlyph lays out info in pixel space. The font size follows the box
// width and the line height the box height.
func (r *Renderer) layoutGlyph(info GlyphInfo, width, height uint32) *text.Buffer {
	bw := info.Size[0] * float32(width)
	bh := info.Size[1] * float32(height)
	return r.shaper.Layout(text.LayoutRequest{
		Text:    info.Text,
		Attrs:   info.Attrs,
		Shaping: info.Shaping,
		Metrics: text.Metrics{FontSize: bw, LineHeight: bh},
		Width:   bw,
		Height:  bh,
	})
}

// textAreas builds the draw descriptors of all cached glyphs in id order.
func (r *Renderer) textAreas(width, height uint32) []TextArea {
	r.glyphMu.Lock()
	defer r.glyphMu.Unlock()

	ids := make([]GlyphID, 0, len(r.glyphs))
	for id := range r.glyphs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	w, h := float32(width), float32(height)
	areas := make([]TextArea, 0, len(ids))
	for _, id := range ids {
		g := r.glyphs[id]
		info := g.info
		scale := info.Scale
		if scale <= 0 {
			scale = 1
		}
		areas = append(areas, TextArea{
			Buffer: g.buffer,
			Left:   w * (info.XOffset + info.InBoundsOff[0]),
			Top:    h * (info.YOffset + info.InBoundsOff[1]*info.YOffset),
			Scale:  max(info.Size[0], info.Size[1]) * scale,
			Bounds: TextBounds{
				Left:   int32(w * info.XOffset),
				Top:    int32(h * info.YOffset),
				Right:  int32(w * (info.XOffset + info.Size[0])),
				Bottom: int32(h * (info.YOffset + info.Size[1])),
			},
			Color: info.Color,
		})
	}
	return areas
}
