package ebitenhost

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/gogpu/gputypes"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/hcal/render"
)

// ErrNoTarget is returned by Frame outside of Game.Draw.
var ErrNoTarget = errors.New("ebitenhost: no target image")

// Vertex strides of the two UI layouts.
const (
	genericStride = 24
	circleStride  = 32
)

// maxBatch is the largest vertex count one DrawTriangles call can index.
const maxBatch = 65535

const circleShaderSource = `//kage:unit pixels

package main

var Radius float
var Border float

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	d := length(srcPos)
	if d > Radius {
		discard()
	}
	if Border > 0 && d < Radius-Border {
		discard()
	}
	return color
}
`

// quadCorners are the quad-local corners in UI winding order.
var quadCorners = [6][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, -1}, {-1, 1}, {1, 1}}

type pipelineKind uint8

const (
	kindGeneric pipelineKind = iota
	kindCircle
)

type pipeline struct {
	label         string
	kind          pipelineKind
	premultiplied bool
}

func (p *pipeline) Label() string { return p.label }

type buffer struct {
	data []byte
}

func (b *buffer) Size() uint64 { return uint64(len(b.data)) }

// Device is a render.Device drawing into the ebiten screen image.
type Device struct {
	white  *ebiten.Image
	circle *ebiten.Shader

	target *ebiten.Image

	// scratch buffers reused across draws.
	vertices []ebiten.Vertex
	indices  []uint16
}

var _ render.Device = (*Device)(nil)

// NewDevice returns a Device. It must be called after ebiten is
// initialized enough to create images, which holds inside RunGame and
// before it on desktop.
func NewDevice() (*Device, error) {
	shader, err := ebiten.NewShader([]byte(circleShaderSource))
	if err != nil {
		return nil, fmt.Errorf("ebitenhost: compile circle shader: %w", err)
	}
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &Device{
		white:  white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		circle: shader,
	}, nil
}

// SurfaceFormat implements render.Device.
func (d *Device) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// CreatePipeline implements render.Device. The WGSL source is not used;
// the vertex layout selects the draw path.
func (d *Device) CreatePipeline(desc render.PipelineDesc) (render.Pipeline, error) {
	p := &pipeline{label: desc.Label, premultiplied: desc.Blend != nil}
	switch desc.VertexLayout.ArrayStride {
	case genericStride:
		p.kind = kindGeneric
	case circleStride:
		p.kind = kindCircle
	default:
		return nil, fmt.Errorf("ebitenhost: pipeline %s: unsupported vertex stride %d", desc.Label, desc.VertexLayout.ArrayStride)
	}
	return p, nil
}

// CreateVertexBuffer implements render.Device.
func (d *Device) CreateVertexBuffer(_ string, data []byte) (render.Buffer, error) {
	return &buffer{data: append([]byte(nil), data...)}, nil
}

// Resize implements render.Device. ebiten resizes the screen image itself.
func (d *Device) Resize(width, height uint32) error {
	if width == 0 || height == 0 {
		return fmt.Errorf("%w: %dx%d", render.ErrInvalidDimensions, width, height)
	}
	return nil
}

// Frame implements render.Device. It draws into the image set by begin.
func (d *Device) Frame(clear gputypes.Color, record func(render.Pass) error) error {
	if d.target == nil {
		return ErrNoTarget
	}
	d.target.Fill(clearColor(clear))
	return record(pass{d})
}

// begin sets the image the next frames draw into.
func (d *Device) begin(target *ebiten.Image) {
	d.target = target
}

type pass struct{ d *Device }

func (p pass) Draw(pl render.Pipeline, buf render.Buffer, vertexCount uint32) {
	rp, ok := pl.(*pipeline)
	if !ok {
		panic(fmt.Sprintf("ebitenhost: foreign pipeline %T", pl))
	}
	b, ok := buf.(*buffer)
	if !ok {
		panic(fmt.Sprintf("ebitenhost: foreign buffer %T", buf))
	}
	switch rp.kind {
	case kindCircle:
		p.d.drawCircles(b.data, vertexCount)
	default:
		p.d.drawGeneric(b.data, vertexCount, rp.premultiplied)
	}
}

func (d *Device) targetSize() (w, h float32) {
	s := d.target.Bounds().Size()
	return float32(s.X), float32(s.Y)
}

func (d *Device) drawGeneric(data []byte, count uint32, premultiplied bool) {
	w, h := d.targetSize()
	d.vertices = decodeGeneric(d.vertices[:0], data, count, w, h)

	op := &ebiten.DrawTrianglesOptions{}
	if premultiplied {
		op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	}
	for start := 0; start < len(d.vertices); start += maxBatch {
		end := min(start+maxBatch, len(d.vertices))
		vs := d.vertices[start:end]
		d.target.DrawTriangles(vs, d.sequence(len(vs)), d.white, op)
	}
}

func (d *Device) drawCircles(data []byte, count uint32) {
	w, h := d.targetSize()
	for q := uint32(0); q+6 <= count; q += 6 {
		off := int(q) * circleStride
		if off+6*circleStride > len(data) {
			return
		}
		vs, radius, border := decodeCircleQuad(d.vertices[:0], data[off:off+6*circleStride], w, h)
		d.vertices = vs
		op := &ebiten.DrawTrianglesShaderOptions{
			Uniforms: map[string]any{
				"Radius": radius,
				"Border": border,
			},
		}
		d.target.DrawTrianglesShader(vs, d.sequence(6), d.circle, op)
	}
}

// sequence returns the indices 0..n-1.
func (d *Device) sequence(n int) []uint16 {
	for len(d.indices) < n {
		d.indices = append(d.indices, uint16(len(d.indices)))
	}
	return d.indices[:n]
}

// toPixels converts normalized device coordinates to target pixels.
func toPixels(x, y, w, h float32) (float32, float32) {
	return (x + 1) / 2 * w, (1 - y) / 2 * h
}

func f32(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}

// decodeGeneric appends count generic-color vertices from data.
func decodeGeneric(dst []ebiten.Vertex, data []byte, count uint32, w, h float32) []ebiten.Vertex {
	for i := 0; i < int(count) && (i+1)*genericStride <= len(data); i++ {
		v := data[i*genericStride:]
		x, y := toPixels(f32(v[0:]), f32(v[4:]), w, h)
		dst = append(dst, ebiten.Vertex{
			DstX:   x,
			DstY:   y,
			SrcX:   1,
			SrcY:   1,
			ColorR: f32(v[8:]),
			ColorG: f32(v[12:]),
			ColorB: f32(v[16:]),
			ColorA: f32(v[20:]),
		})
	}
	return dst
}

// decodeCircleQuad decodes one six-vertex circle quad. The source
// position carries the quad-local corner for the shader.
func decodeCircleQuad(dst []ebiten.Vertex, data []byte, w, h float32) ([]ebiten.Vertex, float32, float32) {
	var radius, border float32
	for i := 0; i < 6; i++ {
		v := data[i*circleStride:]
		x, y := toPixels(f32(v[0:]), f32(v[4:]), w, h)
		dst = append(dst, ebiten.Vertex{
			DstX:   x,
			DstY:   y,
			SrcX:   quadCorners[i][0],
			SrcY:   quadCorners[i][1],
			ColorR: f32(v[8:]),
			ColorG: f32(v[12:]),
			ColorB: f32(v[16:]),
			ColorA: f32(v[20:]),
		})
		radius, border = f32(v[24:]), f32(v[28:])
	}
	return dst, radius, border
}

// clearColor converts a clear value to a premultiplied 16-bit color.
func clearColor(c gputypes.Color) color.RGBA64 {
	a := clamp01(c.A)
	return color.RGBA64{
		R: uint16(clamp01(c.R) * a * 0xffff),
		G: uint16(clamp01(c.G) * a * 0xffff),
		B: uint16(clamp01(c.B) * a * 0xffff),
		A: uint16(a * 0xffff),
	}
}

func clamp01(v float64) float64 {
	return max(0, min(v, 1))
}
