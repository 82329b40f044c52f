// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/gputypes"
)

// Vertex buffer strides in bytes.
const (
	// genericColorStride is pos (2 x f32) + color (4 x f32).
	genericColorStride = 24

	// circleColorStride adds radius and border thickness (2 x f32).
	circleColorStride = 32
)

// GenericColorLayout returns the vertex buffer layout of generic-color
// vertices: position at location 0, color at location 1.
func GenericColorLayout() gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: genericColorStride,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
			{Format: gputypes.VertexFormatFloat32x4, Offset: 8, ShaderLocation: 1},
		},
	}
}

// CircleColorLayout returns the vertex buffer layout of circle-color
// vertices: position, color, radius and border thickness at locations 0-3.
func CircleColorLayout() gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: circleColorStride,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
			{Format: gputypes.VertexFormatFloat32x4, Offset: 8, ShaderLocation: 1},
			{Format: gputypes.VertexFormatFloat32, Offset: 24, ShaderLocation: 2},
			{Format: gputypes.VertexFormatFloat32, Offset: 28, ShaderLocation: 3},
		},
	}
}

// batch holds the packed vertex data of one frame. The byte slices are
// reused across frames to avoid per-frame allocation.
type batch struct {
	generic      []byte
	genericCount uint32
	circle       []byte
	circleCount  uint32
}

func (b *batch) reset() {
	b.generic = b.generic[:0]
	b.circle = b.circle[:0]
	b.genericCount = 0
	b.circleCount = 0
}

// add partitions the vertices of models by kind, preserving order.
func (b *batch) add(models []Model) {
	for i := range models {
		for _, v := range models[i].Vertices {
			switch v.Kind {
			case VertexCircleColor:
				b.circle = appendCircleColor(b.circle, v)
				b.circleCount++
			default:
				b.generic = appendGenericColor(b.generic, v.Pos, v.Color)
				b.genericCount++
			}
		}
	}
}

func appendGenericColor(dst []byte, pos [2]float32, color [4]float32) []byte {
	dst = appendFloat32(dst, pos[0])
	dst = appendFloat32(dst, pos[1])
	for _, c := range color {
		dst = appendFloat32(dst, c)
	}
	return dst
}

func appendCircleColor(dst []byte, v Vertex) []byte {
	dst = appendGenericColor(dst, v.Pos, v.Color)
	dst = appendFloat32(dst, v.Radius)
	return appendFloat32(dst, v.BorderThickness)
}

// appendQuad appends six generic-color vertices covering the rectangle
// (x0,y0)-(x1,y1) in the winding used by all UI quads.
func appendQuad(dst []byte, x0, y0, x1, y1 float32, color [4]float32) []byte {
	dst = appendGenericColor(dst, [2]float32{x0, y0}, color)
	dst = appendGenericColor(dst, [2]float32{x1, y0}, color)
	dst = appendGenericColor(dst, [2]float32{x1, y1}, color)
	dst = appendGenericColor(dst, [2]float32{x0, y0}, color)
	dst = appendGenericColor(dst, [2]float32{x0, y1}, color)
	return appendGenericColor(dst, [2]float32{x1, y1}, color)
}

func appendFloat32(dst []byte, v float32) []byte {
	return binary.LittleEndian.AppendUint32(dst, math.Float32bits(v))
}
