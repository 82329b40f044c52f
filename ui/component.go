package ui

import "github.com/gogpu/hcal/render"

// Context is passed to component callbacks. It replaces process-wide
// globals: everything a component may touch is reachable from here.
type Context struct {
	// App is the application value, opaque to ui.
	App any

	// Renderer owns the glyph cache. It may be nil in tests.
	Renderer *render.Renderer
}

// HoverMode tells a component whether the pointer entered or left it.
type HoverMode uint8

const (
	HoverEnter HoverMode = iota
	HoverExit
)

// String returns the mode name.
func (m HoverMode) String() string {
	if m == HoverExit {
		return "exit"
	}
	return "enter"
}

// Component is a UI element with cached geometry.
//
// Methods are called with the component's lock held: BuildModel and the
// input callbacks exclusively, Pos and Dims shared.
type Component interface {
	// BuildModel returns the component's current geometry.
	BuildModel() render.Model

	// Pos returns the bottom-left corner in window fractions.
	Pos() [2]float32

	// Dims returns width and height in window fractions.
	Dims() [2]float32

	OnClick(ctx *Context)
	OnScroll(ctx *Context, dx, dy float64)
	OnHover(ctx *Context, mode HoverMode)
}

// Drawer is implemented by components with a per-frame side effect, run
// after their model is collected.
type Drawer interface {
	Draw(ctx *Context)
}

// contains reports whether pos lies inside the component's bounds,
// edges included.
func contains(c Component, pos [2]float32) bool {
	p, d := c.Pos(), c.Dims()
	return pos[0] >= p[0] && pos[1] >= p[1] &&
		pos[0] <= p[0]+d[0] && pos[1] <= p[1]+d[1]
}
