package ui

import "github.com/gogpu/hcal/render"

// Uniform returns the per-vertex coloring of a single-color quad.
func Uniform(c render.Color) [6]render.Color {
	return [6]render.Color{c, c, c, c, c, c}
}

// quadCorners converts a box in window fractions to the six device-space
// corners of its two triangles:
// (x0,y0) (x1,y0) (x1,y1) (x0,y0) (x0,y1) (x1,y1).
func quadCorners(pos [2]float32, width, height float32) [6][2]float32 {
	x0 := 2*pos[0] - 1
	y0 := 2*pos[1] - 1
	x1 := x0 + 2*width
	y1 := y0 + 2*height
	return [6][2]float32{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y0}, {x0, y1}, {x1, y1}}
}

func quadModel(pos [2]float32, width, height float32, coloring [6]render.Color) render.Model {
	corners := quadCorners(pos, width, height)
	vs := make([]render.Vertex, 6)
	for i, p := range corners {
		vs[i] = render.GenericColor(p, coloring[i].Array())
	}
	return render.Model{Vertices: vs}
}

// ColorBox is a plain colored rectangle.
type ColorBox struct {
	Position      [2]float32
	Width, Height float32

	// Coloring holds one color per vertex, in quad winding order.
	Coloring [6]render.Color
}

var _ Component = (*ColorBox)(nil)

// BuildModel implements Component. It returns the box quad.
func (b *ColorBox) BuildModel() render.Model {
	return quadModel(b.Position, b.Width, b.Height, b.Coloring)
}

// Pos implements Component.
func (b *ColorBox) Pos() [2]float32 { return b.Position }

// Dims implements Component.
func (b *ColorBox) Dims() [2]float32 { return [2]float32{b.Width, b.Height} }

// OnClick implements Component. A ColorBox ignores clicks.
func (b *ColorBox) OnClick(*Context) {}

// OnScroll implements Component. A ColorBox ignores scrolling.
func (b *ColorBox) OnScroll(*Context, float64, float64) {}

// OnHover implements Component. A ColorBox ignores hover changes.
func (b *ColorBox) OnHover(*Context, HoverMode) {}

// CircleBox is a circle or ring inscribed in a rectangle. Radius and
// BorderThickness are relative to the half extent of the rectangle; a
// BorderThickness of zero fills the circle.
type CircleBox struct {
	Position        [2]float32
	Width, Height   float32
	Color           render.Color
	Radius          float32
	BorderThickness float32
}

var _ Component = (*CircleBox)(nil)

// BuildModel implements Component. It returns one circle-color quad.
func (b *CircleBox) BuildModel() render.Model {
	corners := quadCorners(b.Position, b.Width, b.Height)
	vs := make([]render.Vertex, 6)
	for i, p := range corners {
		vs[i] = render.CircleColor(p, b.Color.Array(), b.Radius, b.BorderThickness)
	}
	return render.Model{Vertices: vs}
}

// Pos implements Component.
func (b *CircleBox) Pos() [2]float32 { return b.Position }

// Dims implements Component.
func (b *CircleBox) Dims() [2]float32 { return [2]float32{b.Width, b.Height} }

// OnClick implements Component. A CircleBox ignores clicks.
func (b *CircleBox) OnClick(*Context) {}

// OnScroll implements Component. A CircleBox ignores scrolling.
func (b *CircleBox) OnScroll(*Context, float64, float64) {}

// OnHover implements Component. A CircleBox ignores hover changes.
func (b *CircleBox) OnHover(*Context, HoverMode) {}
