// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

// VertexKind tags the variant a Vertex belongs to.
type VertexKind uint8

const (
	// VertexGenericColor is a flat colored vertex.
	VertexGenericColor VertexKind = iota

	// VertexCircleColor is a vertex of a quad drawn as a circle or ring.
	VertexCircleColor
)

// String returns the kind name.
func (k VertexKind) String() string {
	switch k {
	case VertexGenericColor:
		return "generic-color"
	case VertexCircleColor:
		return "circle-color"
	default:
		return "unknown"
	}
}

// Vertex is one vertex of UI geometry in normalized device coordinates.
// Radius and BorderThickness are only meaningful for VertexCircleColor.
type Vertex struct {
	Kind            VertexKind
	Pos             [2]float32
	Color           [4]float32
	Radius          float32
	BorderThickness float32
}

// GenericColor returns a flat colored vertex.
func GenericColor(pos [2]float32, color [4]float32) Vertex {
	return Vertex{Kind: VertexGenericColor, Pos: pos, Color: color}
}

// CircleColor returns a circle vertex. Radius and border thickness are in
// quad-local units, where 1 reaches the edge of the quad. A border
// thickness of zero fills the circle.
func CircleColor(pos [2]float32, color [4]float32, radius, borderThickness float32) Vertex {
	return Vertex{
		Kind:            VertexCircleColor,
		Pos:             pos,
		Color:           color,
		Radius:          radius,
		BorderThickness: borderThickness,
	}
}

// Model is the geometry one component emits: a triangle list.
type Model struct {
	Vertices []Vertex
}

// Clone returns a deep copy of m.
func (m Model) Clone() Model {
	if m.Vertices == nil {
		return Model{}
	}
	v := make([]Vertex, len(m.Vertices))
	copy(v, m.Vertices)
	return Model{Vertices: v}
}
