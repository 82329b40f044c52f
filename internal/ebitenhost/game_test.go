package ebitenhost

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/hcal/render"
	"github.com/gogpu/hcal/screen"
	"github.com/gogpu/hcal/ui"
)

type idleScreen struct {
	screen.Base
	container *ui.Container
	resized   *int
}

func (s *idleScreen) OnActive(*screen.Context)   {}
func (s *idleScreen) OnDeactive(*screen.Context) {}
func (s *idleScreen) Tick(*screen.Context)       {}
func (s *idleScreen) OnResize(*screen.Context)   { *s.resized++ }
func (s *idleScreen) Container() *ui.Container   { return s.container }

func (s *idleScreen) Clone() screen.Screen {
	c := *s
	return &c
}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g, err := newGame(&Device{}, Config{Width: 320, Height: 240, App: "app"})
	if err != nil {
		t.Fatalf("newGame() error = %v", err)
	}
	return g
}

func TestNewGameInvalidSize(t *testing.T) {
	if _, err := newGame(&Device{}, Config{Width: 0, Height: 10}); !errors.Is(err, render.ErrInvalidDimensions) {
		t.Errorf("newGame() error = %v", err)
	}
}

func TestGameContext(t *testing.T) {
	g := newTestGame(t)
	ctx := g.Context()
	if ctx.App != "app" || ctx.Renderer != g.Renderer() || ctx.System != g.System() {
		t.Errorf("context not wired: %+v", ctx)
	}
	if w, h := ctx.Window.Size(); w != 320 || h != 240 {
		t.Errorf("Window.Size() = %dx%d", w, h)
	}
	ctx.Window.SetCursorPosition(160, 120)
	if g.cursor != [2]int{160, 120} {
		t.Errorf("cursor = %v", g.cursor)
	}
}

func TestGameStepTerminates(t *testing.T) {
	g := newTestGame(t)
	resized := 0
	g.System().Push(&idleScreen{container: ui.NewContainer(), resized: &resized})
	if err := g.step(); err != nil {
		t.Fatalf("step() error = %v", err)
	}
	g.System().Pop()
	if err := g.step(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("step() on an empty stack = %v, want ebiten.Termination", err)
	}
}

func TestGameLayoutResizes(t *testing.T) {
	g := newTestGame(t)
	resized := 0
	g.System().Push(&idleScreen{container: ui.NewContainer(), resized: &resized})
	_ = g.step()

	if w, h := g.Layout(320, 240); w != 320 || h != 240 {
		t.Fatalf("Layout() = %dx%d", w, h)
	}
	if w, h := g.Layout(640, 480); w != 640 || h != 480 {
		t.Fatalf("Layout() = %dx%d", w, h)
	}
	if w, h := g.Renderer().Dimensions(); w != 640 || h != 480 {
		t.Errorf("renderer dimensions = %dx%d", w, h)
	}
	_ = g.step()
	if resized != 1 {
		t.Errorf("OnResize calls = %d, want 1", resized)
	}

	if w, h := g.Layout(0, 0); w != 640 || h != 480 {
		t.Errorf("Layout(0, 0) = %dx%d, want the last size", w, h)
	}
}
