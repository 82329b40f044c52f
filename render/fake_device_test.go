// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/hcal/text"
)

type fakePipeline struct{ label string }

func (p *fakePipeline) Label() string { return p.label }

type fakeBuffer struct {
	label string
	data  []byte
}

func (b *fakeBuffer) Size() uint64 { return uint64(len(b.data)) }

// drawCall is one recorded Pass.Draw.
type drawCall struct {
	Pipeline string
	Buffer   string
	Count    uint32
}

// recordingDevice is a Device that records what a Renderer asks of it.
type recordingDevice struct {
	pipelines []PipelineDesc
	buffers   []*fakeBuffer
	draws     []drawCall
	clears    []gputypes.Color
	resizes   [][2]uint32
	events    []string

	pipelineErr error
	bufferErr   error
	frameErr    error
	resizeErr   error
}

var errFake = errors.New("fake device failure")

func (d *recordingDevice) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatBGRA8Unorm
}

func (d *recordingDevice) CreatePipeline(desc PipelineDesc) (Pipeline, error) {
	if d.pipelineErr != nil {
		return nil, d.pipelineErr
	}
	d.pipelines = append(d.pipelines, desc)
	return &fakePipeline{label: desc.Label}, nil
}

func (d *recordingDevice) CreateVertexBuffer(label string, data []byte) (Buffer, error) {
	if d.bufferErr != nil {
		return nil, d.bufferErr
	}
	b := &fakeBuffer{label: label, data: append([]byte(nil), data...)}
	d.buffers = append(d.buffers, b)
	d.events = append(d.events, "upload "+label)
	return b, nil
}

func (d *recordingDevice) Resize(width, height uint32) error {
	if d.resizeErr != nil {
		return d.resizeErr
	}
	d.resizes = append(d.resizes, [2]uint32{width, height})
	return nil
}

func (d *recordingDevice) Frame(clear gputypes.Color, record func(Pass) error) error {
	d.clears = append(d.clears, clear)
	d.events = append(d.events, "begin frame")
	if err := record(recordingPass{d}); err != nil {
		return err
	}
	if d.frameErr != nil {
		return d.frameErr
	}
	d.events = append(d.events, "submit")
	return nil
}

type recordingPass struct{ d *recordingDevice }

func (p recordingPass) Draw(pl Pipeline, buf Buffer, n uint32) {
	c := drawCall{Pipeline: pl.Label(), Count: n}
	if fb, ok := buf.(*fakeBuffer); ok {
		c.Buffer = fb.label
	}
	p.d.draws = append(p.d.draws, c)
	p.d.events = append(p.d.events, "draw "+c.Pipeline)
}

// recordingTextRenderer records the text areas it is asked to prepare.
type recordingTextRenderer struct {
	dev     *recordingDevice
	areas   [][]TextArea
	res     []Resolution
	renders int
	trims   int
	prepErr error
}

func (t *recordingTextRenderer) Prepare(areas []TextArea, res Resolution) error {
	if t.prepErr != nil {
		return t.prepErr
	}
	t.areas = append(t.areas, append([]TextArea(nil), areas...))
	t.res = append(t.res, res)
	return nil
}

func (t *recordingTextRenderer) Render(Pass) error {
	t.renders++
	if t.dev != nil {
		t.dev.events = append(t.dev.events, "text pass")
	}
	return nil
}

func (t *recordingTextRenderer) Trim() {
	t.trims++
	if t.dev != nil {
		t.dev.events = append(t.dev.events, "trim")
	}
}

// sizeShaper records layout requests and returns an empty buffer carrying
// the requested metrics.
type sizeShaper struct {
	reqs []text.LayoutRequest
}

func (s *sizeShaper) Layout(req text.LayoutRequest) *text.Buffer {
	s.reqs = append(s.reqs, req)
	return &text.Buffer{Metrics: req.Metrics, Width: req.Width, Height: req.Height}
}
