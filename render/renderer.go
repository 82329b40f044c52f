// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/hcal"
	"github.com/gogpu/hcal/text"
)

// Renderer draws the models of each frame and owns the glyph cache.
//
// All methods are safe for concurrent use; frames are serialized.
type Renderer struct {
	device Device
	shaper text.Shaper
	text   TextRenderer
	config Config

	genericPipeline Pipeline
	circlePipeline  Pipeline

	dims Dimensions

	glyphMu  sync.Mutex
	glyphs   map[GlyphID]*compiledGlyph
	glyphIDs atomic.Uint64

	frameMu sync.Mutex
	batch   batch
	frames  atomic.Uint64
}

// NewRenderer creates a Renderer drawing to device with the window size
// width x height. It creates the generic-color and circle-color pipelines
// and, unless overridden, the text coverage pipeline.
func NewRenderer(device Device, width, height uint32, opts ...Option) (*Renderer, error) {
	if device == nil {
		return nil, ErrNilDevice
	}
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.fonts == nil && (o.shaper == nil || o.textRenderer == nil) {
		fs, err := text.NewFontSystem()
		if err != nil {
			return nil, fmt.Errorf("render: load fonts: %w", err)
		}
		o.fonts = fs
	}
	if o.shaper == nil {
		o.shaper = o.fonts
	}

	r := &Renderer{
		device: device,
		shaper: o.shaper,
		config: o.config,
		glyphs: make(map[GlyphID]*compiledGlyph),
	}
	r.dims.Set(width, height)

	format := device.SurfaceFormat()
	var err error
	r.genericPipeline, err = device.CreatePipeline(PipelineDesc{
		Label:         "ui color generic",
		Shader:        genericColorShader,
		VertexEntry:   vertexEntry,
		FragmentEntry: fragmentEntry,
		VertexLayout:  GenericColorLayout(),
		Format:        format,
	})
	if err != nil {
		return nil, fmt.Errorf("render: create generic pipeline: %w", err)
	}
	r.circlePipeline, err = device.CreatePipeline(PipelineDesc{
		Label:         "ui color circle",
		Shader:        circleColorShader,
		VertexEntry:   vertexEntry,
		FragmentEntry: fragmentEntry,
		VertexLayout:  CircleColorLayout(),
		Format:        format,
	})
	if err != nil {
		return nil, fmt.Errorf("render: create circle pipeline: %w", err)
	}

	r.text = o.textRenderer
	if r.text == nil {
		premul := gputypes.BlendStatePremultiplied()
		textPipeline, err := device.CreatePipeline(PipelineDesc{
			Label:         "text coverage",
			Shader:        genericColorShader,
			VertexEntry:   vertexEntry,
			FragmentEntry: fragmentEntry,
			VertexLayout:  GenericColorLayout(),
			Format:        format,
			Blend:         &premul,
		})
		if err != nil {
			return nil, fmt.Errorf("render: create text pipeline: %w", err)
		}
		r.text = newSpanTextRenderer(device, textPipeline, text.NewAtlas(o.fonts, o.config.Atlas))
	}

	hcal.Logger().Info("renderer created", "width", width, "height", height, "format", format)
	return r, nil
}

// Dimensions returns the current window size.
func (r *Renderer) Dimensions() (width, height uint32) {
	return r.dims.Get()
}

// Config returns the renderer configuration.
func (r *Renderer) Config() Config {
	return r.config
}

// Frames returns the number of frames submitted.
func (r *Renderer) Frames() uint64 {
	return r.frames.Load()
}

// Resize stores the new window size, reconfigures the device surface and
// lays out all glyphs again. Call it on every resize before the next
// Render. A device error means rendering must stop.
func (r *Renderer) Resize(width, height uint32) error {
	if width == 0 || height == 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if err := r.device.Resize(width, height); err != nil {
		return fmt.Errorf("render: resize surface: %w", err)
	}
	r.dims.Set(width, height)
	r.RescaleGlyphs()
	return nil
}

// Render draws one frame: the generic-color vertices, then the circle-color
// vertices, then all cached glyphs. Errors come from the device or the
// text renderer; the frame is lost and the caller should stop rendering.
func (r *Renderer) Render(models []Model) error {
	r.frameMu.Lock()
	defer r.frameMu.Unlock()

	w, h := r.dims.Get()
	areas := r.textAreas(w, h)
	if err := r.text.Prepare(areas, Resolution{Width: w, Height: h}); err != nil {
		return fmt.Errorf("render: prepare text: %w", err)
	}

	r.batch.reset()
	r.batch.add(models)
	genericBuf, err := r.upload("ui color generic vertices", r.batch.generic)
	if err != nil {
		return err
	}
	circleBuf, err := r.upload("ui color circle vertices", r.batch.circle)
	if err != nil {
		return err
	}

	err = r.device.Frame(r.config.ClearColor, func(pass Pass) error {
		if genericBuf != nil {
			pass.Draw(r.genericPipeline, genericBuf, r.batch.genericCount)
		}
		if circleBuf != nil {
			pass.Draw(r.circlePipeline, circleBuf, r.batch.circleCount)
		}
		return r.text.Render(pass)
	})
	if err != nil {
		return fmt.Errorf("render: submit frame: %w", err)
	}
	r.text.Trim()

	n := r.frames.Add(1)
	hcal.Logger().Debug("frame rendered",
		"frame", n,
		"generic", r.batch.genericCount,
		"circle", r.batch.circleCount,
		"text_areas", len(areas))
	return nil
}

// upload creates a vertex buffer for data, or returns nil when data is
// empty.
func (r *Renderer) upload(label string, data []byte) (Buffer, error) {
	if len(data) == 0 {
		return nil, nil
	}
	buf, err := r.device.CreateVertexBuffer(label, data)
	if err != nil {
		return nil, fmt.Errorf("render: upload %s: %w", label, err)
	}
	return buf, nil
}
