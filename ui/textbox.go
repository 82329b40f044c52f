package ui

import "github.com/gogpu/hcal/render"

// TextBox is a colored rectangle that owns glyphs in the renderer's glyph
// cache. The glyphs are drawn by the renderer, not through the model.
type TextBox struct {
	Position      [2]float32
	Width, Height float32
	Coloring      [6]render.Color

	// Texts are the glyph ids owned by the box.
	Texts []render.GlyphID
}

var _ Component = (*TextBox)(nil)

// AddText builds g into the glyph cache of ctx.Renderer and records the id
// in the box.
func (b *TextBox) AddText(ctx *Context, g *render.GlyphBuilder) render.GlyphID {
	id := g.Build(ctx.Renderer)
	b.Texts = append(b.Texts, id)
	return id
}

// Release removes the box's glyphs from the glyph cache. Call it when the
// box is discarded; Container.Clear does not.
func (b *TextBox) Release(ctx *Context) {
	if ctx != nil && ctx.Renderer != nil {
		for _, id := range b.Texts {
			ctx.Renderer.RemoveGlyph(id)
		}
	}
	b.Texts = nil
}

// BuildModel implements Component. It returns the box quad.
func (b *TextBox) BuildModel() render.Model {
	return quadModel(b.Position, b.Width, b.Height, b.Coloring)
}

// Pos implements Component.
func (b *TextBox) Pos() [2]float32 { return b.Position }

// Dims implements Component.
func (b *TextBox) Dims() [2]float32 { return [2]float32{b.Width, b.Height} }

// OnClick implements Component. A TextBox ignores clicks.
func (b *TextBox) OnClick(*Context) {}

// OnScroll implements Component. A TextBox ignores scrolling.
func (b *TextBox) OnScroll(*Context, float64, float64) {}

// OnHover implements Component. A TextBox ignores hover changes.
func (b *TextBox) OnHover(*Context, HoverMode) {}

// Button is a clickable TextBox carrying arbitrary data.
type Button struct {
	Inner *TextBox
	Data  any

	// Action runs on click with the button itself, so it can change the
	// box or the data.
	Action func(b *Button, ctx *Context)
}

var _ Component = (*Button)(nil)

// BuildModel implements Component by delegating to the inner box.
func (b *Button) BuildModel() render.Model { return b.Inner.BuildModel() }

// Pos implements Component.
func (b *Button) Pos() [2]float32 { return b.Inner.Pos() }

// Dims implements Component.
func (b *Button) Dims() [2]float32 { return b.Inner.Dims() }

// OnClick runs the button's action.
func (b *Button) OnClick(ctx *Context) {
	if b.Action != nil {
		b.Action(b, ctx)
	}
}

// OnScroll implements Component. A Button ignores scrolling.
func (b *Button) OnScroll(*Context, float64, float64) {}

// OnHover implements Component. A Button ignores hover changes.
func (b *Button) OnHover(*Context, HoverMode) {}

// Release releases the inner box's glyphs.
func (b *Button) Release(ctx *Context) {
	b.Inner.Release(ctx)
}
