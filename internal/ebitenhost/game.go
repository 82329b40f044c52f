package ebitenhost

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gogpu/hcal"
	"github.com/gogpu/hcal/render"
	"github.com/gogpu/hcal/screen"
	"github.com/gogpu/hcal/ui"
)

// Config configures a Game.
type Config struct {
	Title         string
	Width, Height int

	// App is handed to screens and components as the context value.
	App any

	RendererOptions []render.Option
}

// Game is an ebiten.Game driving a screen stack.
type Game struct {
	device   *Device
	renderer *render.Renderer
	sys      *screen.System
	ctx      *screen.Context

	width, height int
	cursor        [2]int
	chars         []rune
	models        []render.Model

	// err stops the loop at the next Update.
	err error
}

var _ ebiten.Game = (*Game)(nil)

// NewGame creates the device, renderer and screen system for cfg.
func NewGame(cfg Config) (*Game, error) {
	dev, err := NewDevice()
	if err != nil {
		return nil, err
	}
	return newGame(dev, cfg)
}

func newGame(dev *Device, cfg Config) (*Game, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", render.ErrInvalidDimensions, cfg.Width, cfg.Height)
	}
	r, err := render.NewRenderer(dev, uint32(cfg.Width), uint32(cfg.Height), cfg.RendererOptions...)
	if err != nil {
		return nil, err
	}
	g := &Game{
		device:   dev,
		renderer: r,
		sys:      screen.NewSystem(),
		width:    cfg.Width,
		height:   cfg.Height,
	}
	g.ctx = &screen.Context{
		Context: ui.Context{App: cfg.App, Renderer: r},
		Window:  window{g},
		System:  g.sys,
	}
	return g, nil
}

// System returns the screen stack.
func (g *Game) System() *screen.System { return g.sys }

// Renderer returns the renderer.
func (g *Game) Renderer() *render.Renderer { return g.renderer }

// Context returns the context passed to screens.
func (g *Game) Context() *screen.Context { return g.ctx }

// Run opens the window and blocks until the screen stack is empty, the
// window is closed or rendering fails.
func Run(g *Game, cfg Config) error {
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if g.err != nil {
		return g.err
	}
	g.pollKeys()
	g.pollPointer()
	return g.step()
}

// step ticks the screen stack. It ends the game once the stack is empty.
func (g *Game) step() error {
	g.models = g.sys.Tick(g.ctx)
	if g.sys.Len() == 0 {
		hcal.Logger().Info("screen stack empty, stopping")
		return ebiten.Termination
	}
	return nil
}

func (g *Game) pollKeys() {
	for k, sk := range keyMap {
		if inpututil.IsKeyJustPressed(k) {
			g.sys.PressKey(g.ctx, sk, true)
		}
		if inpututil.IsKeyJustReleased(k) {
			g.sys.PressKey(g.ctx, sk, false)
		}
	}
	g.chars = ebiten.AppendInputChars(g.chars[:0])
	for _, r := range g.chars {
		g.sys.ReceiveChar(r)
	}
}

func (g *Game) pollPointer() {
	x, y := ebiten.CursorPosition()
	if x != g.cursor[0] || y != g.cursor[1] {
		g.cursor = [2]int{x, y}
		g.sys.OnMouseMove(g.ctx, float64(x), float64(y))
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.sys.OnMouseClick(g.ctx, float64(x), float64(y))
	}
	if dx, dy := ebiten.Wheel(); dx != 0 || dy != 0 {
		g.sys.OnScroll(g.ctx, dx, dy)
	}
}

// Draw implements ebiten.Game.
func (g *Game) Draw(target *ebiten.Image) {
	g.device.begin(target)
	if err := g.renderer.Render(g.models); err != nil {
		hcal.Logger().Warn("render failed", "err", err)
		g.err = err
	}
}

// Layout implements ebiten.Game. The screen image always matches the
// window in pixels.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return g.width, g.height
	}
	if outsideWidth != g.width || outsideHeight != g.height {
		if err := g.renderer.Resize(uint32(outsideWidth), uint32(outsideHeight)); err != nil {
			hcal.Logger().Warn("resize failed", "err", err)
			g.err = err
			return g.width, g.height
		}
		g.width, g.height = outsideWidth, outsideHeight
	}
	return outsideWidth, outsideHeight
}

// window adapts the Game to screen.Window.
type window struct{ g *Game }

func (w window) Size() (uint32, uint32) {
	return uint32(w.g.width), uint32(w.g.height)
}

// SetCursorPosition records (x, y) as the pointer position. ebiten cannot
// move the system cursor, so only hover tracking sees the change until the
// pointer moves again.
func (w window) SetCursorPosition(x, y int) {
	w.g.cursor = [2]int{x, y}
}
