package screen

import "github.com/gogpu/hcal/ui"

// Window is the host window a System drives.
type Window interface {
	// Size returns the inner size in pixels.
	Size() (width, height uint32)

	// SetCursorPosition moves the pointer to (x, y) in window pixels.
	SetCursorPosition(x, y int)
}

// Context is passed to every screen callback.
type Context struct {
	ui.Context

	Window Window
	System *System
}

// uiContext returns the context handed to components.
func (c *Context) uiContext() *ui.Context {
	return &c.Context
}

// dimensions returns the window size, preferring the renderer's view of it.
func (c *Context) dimensions() (width, height uint32) {
	if c.Renderer != nil {
		return c.Renderer.Dimensions()
	}
	if c.Window != nil {
		return c.Window.Size()
	}
	return 0, 0
}

// Screen is one full-window page of the application.
//
// A System calls the methods of one screen from one goroutine at a time.
type Screen interface {
	// Init is called once when the screen is committed to the stack.
	Init(ctx *Context)

	// Deinit is called once when the screen leaves the stack.
	Deinit(ctx *Context)

	// OnActive is called whenever the screen becomes the top.
	OnActive(ctx *Context)

	// OnDeactive is called whenever the screen stops being the top.
	OnDeactive(ctx *Context)

	// Tick is called every frame the screen is ticked.
	Tick(ctx *Context)

	// OnResize is called after the window size changed.
	OnResize(ctx *Context)

	// OnKeyPress receives key events of the top screen.
	OnKeyPress(ctx *Context, key Key, down bool)

	// OnCharReceive receives typed characters of the top screen.
	OnCharReceive(r rune)

	// OnScroll receives wheel deltas of the top screen.
	OnScroll(dx, dy float64)

	IsClosable() bool
	IsTickAlways() bool

	// IsTransparent reports whether the screen below stays visible and
	// therefore also receives resizes.
	IsTransparent() bool

	Kind() Kind

	// Container returns the components of the screen.
	Container() *ui.Container

	// Clone returns an independent copy of a prototype screen.
	Clone() Screen
}

// Base supplies the optional parts of Screen. Embed it and set its fields;
// the embedding type still implements OnActive, OnDeactive, Tick,
// Container and Clone.
type Base struct {
	Closable    bool
	TickAlways  bool
	Transparent bool
	ScreenKind  Kind
}

func (Base) Init(*Context)             {}
func (Base) Deinit(*Context)           {}
func (Base) OnResize(*Context)         {}
func (Base) OnCharReceive(rune)        {}
func (Base) OnScroll(float64, float64) {}

func (b Base) IsClosable() bool    { return b.Closable }
func (b Base) IsTickAlways() bool  { return b.TickAlways }
func (b Base) IsTransparent() bool { return b.Transparent }
func (b Base) Kind() Kind          { return b.ScreenKind }

// OnKeyPress pops the screen on Escape release when Closable is set.
func (b Base) OnKeyPress(ctx *Context, key Key, down bool) {
	if key == KeyEscape && !down && b.Closable && ctx.System != nil {
		ctx.System.Pop()
	}
}
