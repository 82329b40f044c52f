// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/gogpu/hcal/text"
)

func decodeFloats(b []byte) []float32 {
	out := make([]float32, len(b)/4)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return out
}

// newTestRenderer returns a renderer with recording collaborators.
func newTestRenderer(t *testing.T, width, height uint32) (*Renderer, *recordingDevice, *recordingTextRenderer, *sizeShaper) {
	t.Helper()
	dev := &recordingDevice{}
	tr := &recordingTextRenderer{dev: dev}
	sh := &sizeShaper{}
	r, err := NewRenderer(dev, width, height, WithTextRenderer(tr), WithShaper(sh))
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}
	return r, dev, tr, sh
}

func quad(kind VertexKind) Model {
	vs := make([]Vertex, 6)
	for i := range vs {
		if kind == VertexCircleColor {
			vs[i] = CircleColor([2]float32{float32(i), 0}, [4]float32{0, 0, 1, 1}, 1, 0.1)
		} else {
			vs[i] = GenericColor([2]float32{float32(i), 0}, [4]float32{1, 0, 0, 1})
		}
	}
	return Model{Vertices: vs}
}

func TestNewRendererErrors(t *testing.T) {
	if _, err := NewRenderer(nil, 10, 10); !errors.Is(err, ErrNilDevice) {
		t.Errorf("nil device error = %v, want ErrNilDevice", err)
	}
	if _, err := NewRenderer(&recordingDevice{}, 0, 10); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("zero width error = %v, want ErrInvalidDimensions", err)
	}
	if _, err := NewRenderer(&recordingDevice{pipelineErr: errFake}, 10, 10); !errors.Is(err, errFake) {
		t.Errorf("pipeline error = %v, want wrapped errFake", err)
	}
}

func TestNewRendererPipelines(t *testing.T) {
	dev := &recordingDevice{}
	if _, err := NewRenderer(dev, 640, 480); err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}
	if len(dev.pipelines) != 3 {
		t.Fatalf("pipelines = %d, want 3", len(dev.pipelines))
	}

	generic, circle, txt := dev.pipelines[0], dev.pipelines[1], dev.pipelines[2]
	if generic.Blend != nil || circle.Blend != nil {
		t.Error("geometry pipelines should replace the target")
	}
	if txt.Blend == nil {
		t.Error("text pipeline should blend")
	}
	if generic.VertexLayout.ArrayStride != genericColorStride {
		t.Errorf("generic stride = %d, want %d", generic.VertexLayout.ArrayStride, genericColorStride)
	}
	if circle.VertexLayout.ArrayStride != circleColorStride {
		t.Errorf("circle stride = %d, want %d", circle.VertexLayout.ArrayStride, circleColorStride)
	}
	for _, p := range dev.pipelines {
		if p.VertexEntry != "main_vert" || p.FragmentEntry != "main_frag" {
			t.Errorf("%s entry points = %q/%q", p.Label, p.VertexEntry, p.FragmentEntry)
		}
		if p.Shader == "" {
			t.Errorf("%s has no shader source", p.Label)
		}
	}
}

func TestRenderPartitionsAndOrders(t *testing.T) {
	r, dev, tr, _ := newTestRenderer(t, 800, 600)

	models := []Model{quad(VertexGenericColor), quad(VertexCircleColor), quad(VertexGenericColor)}
	if err := r.Render(models); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	wantDraws := []drawCall{
		{Pipeline: "ui color generic", Buffer: "ui color generic vertices", Count: 12},
		{Pipeline: "ui color circle", Buffer: "ui color circle vertices", Count: 6},
	}
	if diff := cmp.Diff(wantDraws, dev.draws); diff != "" {
		t.Errorf("draws mismatch (-want +got):\n%s", diff)
	}

	wantEvents := []string{
		"upload ui color generic vertices",
		"upload ui color circle vertices",
		"begin frame",
		"draw ui color generic",
		"draw ui color circle",
		"text pass",
		"submit",
		"trim",
	}
	if diff := cmp.Diff(wantEvents, dev.events); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
	if tr.trims != 1 || tr.renders != 1 {
		t.Errorf("text renders/trims = %d/%d, want 1/1", tr.renders, tr.trims)
	}
	if r.Frames() != 1 {
		t.Errorf("Frames() = %d, want 1", r.Frames())
	}
}

func TestRenderPacksVertices(t *testing.T) {
	r, dev, _, _ := newTestRenderer(t, 800, 600)

	m := Model{Vertices: []Vertex{
		GenericColor([2]float32{-0.5, 0.25}, [4]float32{0.1, 0.2, 0.3, 0.4}),
		CircleColor([2]float32{0.5, -0.25}, [4]float32{1, 1, 1, 1}, 0.9, 0.2),
	}}
	if err := r.Render([]Model{m}); err != nil {
		t.Fatal(err)
	}
	if len(dev.buffers) != 2 {
		t.Fatalf("buffers = %d, want 2", len(dev.buffers))
	}

	gotGeneric := decodeFloats(dev.buffers[0].data)
	wantGeneric := []float32{-0.5, 0.25, 0.1, 0.2, 0.3, 0.4}
	if diff := cmp.Diff(wantGeneric, gotGeneric); diff != "" {
		t.Errorf("generic vertex mismatch (-want +got):\n%s", diff)
	}
	gotCircle := decodeFloats(dev.buffers[1].data)
	wantCircle := []float32{0.5, -0.25, 1, 1, 1, 1, 0.9, 0.2}
	if diff := cmp.Diff(wantCircle, gotCircle); diff != "" {
		t.Errorf("circle vertex mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderEmptyFrame(t *testing.T) {
	r, dev, tr, _ := newTestRenderer(t, 800, 600)

	if err := r.Render(nil); err != nil {
		t.Fatal(err)
	}
	if len(dev.draws) != 0 {
		t.Errorf("draws = %v, want none for empty buffers", dev.draws)
	}
	if len(dev.buffers) != 0 {
		t.Errorf("buffers = %d, want 0", len(dev.buffers))
	}
	if tr.renders != 1 {
		t.Errorf("text pass ran %d times, want 1", tr.renders)
	}
	if diff := cmp.Diff(LightGray.GPU(), dev.clears[0]); diff != "" {
		t.Errorf("clear color mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderErrors(t *testing.T) {
	t.Run("frame", func(t *testing.T) {
		r, dev, tr, _ := newTestRenderer(t, 800, 600)
		dev.frameErr = errFake
		if err := r.Render([]Model{quad(VertexGenericColor)}); !errors.Is(err, errFake) {
			t.Errorf("Render() error = %v, want wrapped errFake", err)
		}
		if tr.trims != 0 {
			t.Error("atlas trimmed after a failed frame")
		}
	})
	t.Run("upload", func(t *testing.T) {
		r, dev, _, _ := newTestRenderer(t, 800, 600)
		dev.bufferErr = errFake
		if err := r.Render([]Model{quad(VertexCircleColor)}); !errors.Is(err, errFake) {
			t.Errorf("Render() error = %v, want wrapped errFake", err)
		}
	})
	t.Run("prepare", func(t *testing.T) {
		r, _, tr, _ := newTestRenderer(t, 800, 600)
		tr.prepErr = errFake
		if err := r.Render(nil); !errors.Is(err, errFake) {
			t.Errorf("Render() error = %v, want wrapped errFake", err)
		}
	})
}

func TestWithClearColor(t *testing.T) {
	dev := &recordingDevice{}
	r, err := NewRenderer(dev, 10, 10,
		WithClearColor(White),
		WithTextRenderer(&recordingTextRenderer{}),
		WithShaper(&sizeShaper{}))
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Render(nil); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(White.GPU(), dev.clears[0]); diff != "" {
		t.Errorf("clear color mismatch (-want +got):\n%s", diff)
	}
}

func TestResize(t *testing.T) {
	r, dev, _, sh := newTestRenderer(t, 800, 600)
	r.AddGlyph(GlyphInfo{Text: "a", Size: [2]float32{0.5, 0.25}})

	if err := r.Resize(400, 200); err != nil {
		t.Fatalf("Resize() error = %v", err)
	}
	if w, h := r.Dimensions(); w != 400 || h != 200 {
		t.Errorf("Dimensions() = %dx%d, want 400x200", w, h)
	}
	if diff := cmp.Diff([][2]uint32{{400, 200}}, dev.resizes); diff != "" {
		t.Errorf("device resizes mismatch (-want +got):\n%s", diff)
	}
	last := sh.reqs[len(sh.reqs)-1]
	if last.Metrics.FontSize != 200 || last.Metrics.LineHeight != 50 {
		t.Errorf("rescaled metrics = %+v, want font 200 line 50", last.Metrics)
	}

	if err := r.Resize(0, 200); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("Resize(0, 200) error = %v, want ErrInvalidDimensions", err)
	}

	dev.resizeErr = errFake
	if err := r.Resize(100, 100); !errors.Is(err, errFake) {
		t.Errorf("Resize() error = %v, want wrapped errFake", err)
	}
	if w, h := r.Dimensions(); w != 400 || h != 200 {
		t.Errorf("failed resize changed dimensions to %dx%d", w, h)
	}
}

func TestRenderTextAreas(t *testing.T) {
	r, _, tr, _ := newTestRenderer(t, 800, 400)

	id := NewGlyphBuilder("x", [2]float32{0.25, 0.25}, [2]float32{0.5, 0.25}).
		InBoundsOff([2]float32{0.125, 0.5}).
		Color(White).
		Build(r)
	if err := r.Render(nil); err != nil {
		t.Fatal(err)
	}

	buf, ok := r.GlyphBuffer(id)
	if !ok {
		t.Fatal("glyph not cached")
	}
	want := []TextArea{{
		Buffer: buf,
		Left:   300,
		Top:    300,
		Scale:  0.5,
		Bounds: TextBounds{Left: 200, Top: 200, Right: 600, Bottom: 300},
		Color:  White,
	}}
	opts := cmp.Options{
		cmpopts.EquateApprox(0, 1e-4),
		cmp.Comparer(func(a, b *text.Buffer) bool { return a == b }),
	}
	if diff := cmp.Diff(want, tr.areas[0], opts); diff != "" {
		t.Errorf("text areas mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Resolution{Width: 800, Height: 400}, tr.res[0]); diff != "" {
		t.Errorf("resolution mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderWithFonts(t *testing.T) {
	dev := &recordingDevice{}
	r, err := NewRenderer(dev, 800, 400)
	if err != nil {
		t.Fatal(err)
	}
	NewGlyphBuilder("Hi", [2]float32{0.25, 0.25}, [2]float32{0.5, 0.25}).Build(r)

	for i := 0; i < 2; i++ {
		if err := r.Render([]Model{quad(VertexGenericColor)}); err != nil {
			t.Fatalf("Render() error = %v", err)
		}
	}

	var textDraws []drawCall
	for _, d := range dev.draws {
		if d.Pipeline == "text coverage" {
			textDraws = append(textDraws, d)
		}
	}
	if len(textDraws) != 2 {
		t.Fatalf("text draws = %d, want one per frame", len(textDraws))
	}
	if c := textDraws[0].Count; c == 0 || c%6 != 0 {
		t.Errorf("text vertex count = %d, want a positive multiple of 6", c)
	}
	if textDraws[0].Count != textDraws[1].Count {
		t.Errorf("text vertex count changed between identical frames: %d vs %d", textDraws[0].Count, textDraws[1].Count)
	}
}
