// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"math"

	"github.com/gogpu/hcal/text"
)

// TextBounds is a pixel clip rectangle, top-left origin.
type TextBounds struct {
	Left, Top, Right, Bottom int32
}

// TextArea places a laid-out buffer on screen. Left and Top are in pixels
// from the top-left corner; Scale multiplies the buffer's geometry.
type TextArea struct {
	Buffer *text.Buffer
	Left   float32
	Top    float32
	Scale  float32
	Bounds TextBounds
	Color  Color
}

// Resolution is the render target size in pixels.
type Resolution struct {
	Width, Height uint32
}

// TextRenderer draws text areas into a frame.
type TextRenderer interface {
	// Prepare converts areas to GPU data for the next Render.
	Prepare(areas []TextArea, res Resolution) error

	// Render draws the prepared text into pass.
	Render(pass Pass) error

	// Trim releases cached data unused for too long. Called once per
	// frame after submission.
	Trim()
}

// spanTextRenderer draws glyph coverage as one-pixel-high quads through a
// premultiplied-alpha pipeline. Coverage comes from a text.Atlas, so no
// texture bindings are required from the Device.
type spanTextRenderer struct {
	device   Device
	pipeline Pipeline
	atlas    *text.Atlas

	staging []byte
	count   uint32
	buf     Buffer
}

func newSpanTextRenderer(device Device, pipeline Pipeline, atlas *text.Atlas) *spanTextRenderer {
	return &spanTextRenderer{device: device, pipeline: pipeline, atlas: atlas}
}

// Prepare implements TextRenderer.
func (t *spanTextRenderer) Prepare(areas []TextArea, res Resolution) error {
	t.staging = t.staging[:0]
	t.count = 0
	t.buf = nil
	if res.Width == 0 || res.Height == 0 {
		return nil
	}
	w, h := float32(res.Width), float32(res.Height)

	for _, area := range areas {
		b := area.Buffer
		if b == nil || area.Scale <= 0 {
			continue
		}
		size := b.Metrics.FontSize * area.Scale
		if size <= 0 {
			continue
		}
		col := area.Color.Premultiplied()
		clip := area.Bounds

		for _, line := range b.Lines {
			for _, g := range line.Glyphs {
				mask, err := t.atlas.Mask(b.FontID, g.ID, size)
				if err != nil {
					return fmt.Errorf("render: rasterize glyph %d: %w", g.ID, err)
				}
				ox := float32(math.Round(float64(area.Left + g.X*area.Scale)))
				oy := float32(math.Round(float64(area.Top + g.Y*area.Scale)))
				for _, s := range mask.Spans {
					x0 := max(ox+float32(s.X0), float32(clip.Left))
					x1 := min(ox+float32(s.X1), float32(clip.Right))
					y0 := max(oy+float32(s.Y), float32(clip.Top))
					y1 := min(oy+float32(s.Y)+1, float32(clip.Bottom))
					if x0 >= x1 || y0 >= y1 {
						continue
					}
					a := float32(s.Alpha) / 255
					c := [4]float32{col[0] * a, col[1] * a, col[2] * a, col[3] * a}
					t.staging = appendQuad(t.staging,
						2*x0/w-1, 1-2*y0/h,
						2*x1/w-1, 1-2*y1/h,
						c)
					t.count += 6
				}
			}
		}
	}

	if t.count == 0 {
		return nil
	}
	buf, err := t.device.CreateVertexBuffer("text coverage vertices", t.staging)
	if err != nil {
		return fmt.Errorf("render: upload text vertices: %w", err)
	}
	t.buf = buf
	return nil
}

// Render implements TextRenderer.
func (t *spanTextRenderer) Render(pass Pass) error {
	if t.buf == nil || t.count == 0 {
		return nil
	}
	pass.Draw(t.pipeline, t.buf, t.count)
	return nil
}

// Trim implements TextRenderer.
func (t *spanTextRenderer) Trim() {
	t.atlas.Trim()
}
