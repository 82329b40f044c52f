package demo

import (
	"github.com/gogpu/hcal/config"
	"github.com/gogpu/hcal/render"
	"github.com/gogpu/hcal/screen"
	"github.com/gogpu/hcal/ui"
)

// KindDetail is the kind of DetailScreen.
var KindDetail = screen.KindOther("event-detail")

// Dialog geometry, in window fractions.
var (
	dialogPos  = [2]float32{0.25, 0.3}
	dialogDims = [2]float32{0.5, 0.4}
)

// buttonRow is the height of the strip under the panel holding the close
// button.
const buttonRow = 0.08

// DetailScreen is a closable dialog describing one event. Escape or the
// close button pops it.
type DetailScreen struct {
	screen.Base

	Theme config.Theme
	Event Event

	container *ui.Container
	texts     []*ui.TextBox
}

var _ screen.Screen = (*DetailScreen)(nil)

// NewDetailScreen returns a dialog prototype for e.
func NewDetailScreen(theme config.Theme, e Event) *DetailScreen {
	return &DetailScreen{
		Base: screen.Base{
			Closable:    true,
			Transparent: true,
			ScreenKind:  KindDetail,
		},
		Theme:     theme,
		Event:     e,
		container: ui.NewContainer(),
	}
}

// OnActive builds the dialog. Glyphs are dropped whenever the dialog is
// covered, so it is rebuilt on every activation.
func (s *DetailScreen) OnActive(ctx *screen.Context) {
	s.release(ctx)
	s.build(ctx)
}

func (s *DetailScreen) OnDeactive(ctx *screen.Context) { s.release(ctx) }
func (s *DetailScreen) Deinit(ctx *screen.Context)     { s.release(ctx) }
func (s *DetailScreen) Tick(*screen.Context)           {}

func (s *DetailScreen) Container() *ui.Container { return s.container }

func (s *DetailScreen) Clone() screen.Screen {
	c := *s
	c.container = ui.NewContainer()
	c.texts = nil
	return &c
}

func (s *DetailScreen) release(ctx *screen.Context) {
	for _, t := range s.texts {
		t.Release(&ctx.Context)
	}
	s.texts = nil
	s.container.Clear()
}

// line returns a text box for row i of the dialog, counted from the top.
func (s *DetailScreen) line(ctx *screen.Context, i int, label string, scale float32) *ui.TextBox {
	const rowHeight = 0.07
	b := &ui.TextBox{
		Position: [2]float32{
			dialogPos[0] + 0.04,
			dialogPos[1] + dialogDims[1] - float32(i+1)*rowHeight - 0.02,
		},
		Width:    dialogDims[0] - 0.08,
		Height:   rowHeight,
		Coloring: ui.Uniform(render.Color(s.Theme.Background)),
	}
	if ctx.Renderer != nil {
		b.AddText(&ctx.Context, render.NewGlyphBuilder(label, b.Position, [2]float32{b.Width, b.Height}).
			Color(render.Color(s.Theme.Foreground)).
			Scale(scale))
	}
	s.texts = append(s.texts, b)
	return b
}

func (s *DetailScreen) build(ctx *screen.Context) {
	accent := render.Color(s.Theme.Accent)

	// The panel stops above the close button so clicks reach it.
	s.container.Add(&ui.ColorBox{
		Position: [2]float32{dialogPos[0], dialogPos[1] + buttonRow},
		Width:    dialogDims[0],
		Height:   dialogDims[1] - buttonRow,
		Coloring: ui.Uniform(render.Color(s.Theme.Background)),
	})
	s.container.Add(&ui.CircleBox{
		Position:        [2]float32{dialogPos[0] + 0.01, dialogPos[1] + dialogDims[1] - 0.06},
		Width:           0.025,
		Height:          0.025,
		Color:           accent,
		Radius:          1,
		BorderThickness: 0.3,
	})
	s.container.Add(s.line(ctx, 0, s.Event.Title, 1.2))
	s.container.Add(s.line(ctx, 1, s.Event.Span(), 1))
	s.container.Add(s.line(ctx, 2, s.Event.Location, 1))

	closeBox := &ui.TextBox{
		Position: [2]float32{dialogPos[0] + dialogDims[0] - 0.12, dialogPos[1]},
		Width:    0.12,
		Height:   buttonRow - margin,
		Coloring: ui.Uniform(accent),
	}
	if ctx.Renderer != nil {
		closeBox.AddText(&ctx.Context, render.NewGlyphBuilder("Close", closeBox.Position, [2]float32{closeBox.Width, closeBox.Height}).
			Color(render.Color(s.Theme.Background)))
	}
	s.texts = append(s.texts, closeBox)
	s.container.Add(&ui.Button{
		Inner: closeBox,
		Action: func(_ *ui.Button, uctx *ui.Context) {
			if sys := systemOf(uctx); sys != nil {
				sys.Pop()
			}
		},
	})
}
