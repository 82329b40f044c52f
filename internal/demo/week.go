package demo

import (
	"fmt"
	"slices"
	"time"

	"github.com/gogpu/hcal"
	"github.com/gogpu/hcal/config"
	"github.com/gogpu/hcal/render"
	"github.com/gogpu/hcal/screen"
	"github.com/gogpu/hcal/ui"
)

// App is the context value the demo screens expect in ui.Context.App.
type App struct {
	System *screen.System
}

func systemOf(ctx *ui.Context) *screen.System {
	if app, ok := ctx.App.(*App); ok {
		return app.System
	}
	return nil
}

// WeekScreen shows seven day columns with one button per event. It ticks
// even when covered, so it stays drawn under dialogs. It has no background
// box: the renderer's clear color shows through.
type WeekScreen struct {
	screen.Base

	Theme  config.Theme
	Monday time.Time
	Events []Event

	container *ui.Container
	texts     []*ui.TextBox
}

var _ screen.Screen = (*WeekScreen)(nil)

// NewWeekScreen returns a week view prototype.
func NewWeekScreen(theme config.Theme, monday time.Time, events []Event) *WeekScreen {
	return &WeekScreen{
		Base:      screen.Base{TickAlways: true, ScreenKind: screen.KindOther("week")},
		Theme:     theme,
		Monday:    monday,
		Events:    events,
		container: ui.NewContainer(),
	}
}

func (s *WeekScreen) Init(ctx *screen.Context) {
	s.build(ctx)
	hcal.Logger().Debug("week screen built",
		"monday", s.Monday.Format(time.DateOnly),
		"components", s.container.Len())
}

func (s *WeekScreen) Deinit(ctx *screen.Context) {
	for _, t := range s.texts {
		t.Release(&ctx.Context)
	}
	s.texts = nil
	s.container.Clear()
}

func (s *WeekScreen) OnActive(*screen.Context)   {}
func (s *WeekScreen) OnDeactive(*screen.Context) {}
func (s *WeekScreen) Tick(*screen.Context)       {}

func (s *WeekScreen) Container() *ui.Container { return s.container }

func (s *WeekScreen) Clone() screen.Screen {
	c := *s
	c.Events = slices.Clone(s.Events)
	c.container = ui.NewContainer()
	c.texts = nil
	return &c
}

// addText adds a text box and, when a renderer is present, its label.
func (s *WeekScreen) addText(ctx *screen.Context, b *ui.TextBox, label string) {
	if ctx.Renderer != nil && label != "" {
		b.AddText(&ctx.Context, render.NewGlyphBuilder(label, b.Position, [2]float32{b.Width, b.Height}).
			Color(render.Color(s.Theme.Foreground)))
	}
	s.texts = append(s.texts, b)
}

func (s *WeekScreen) build(ctx *screen.Context) {
	bg := render.Color(s.Theme.Background)
	accent := render.Color(s.Theme.Accent)

	for h := firstHour; h < lastHour; h += 2 {
		f := float32(h-firstHour) / (lastHour - firstHour)
		b := &ui.TextBox{
			Position: [2]float32{margin, gridTop() - f*gridHeight() - 0.03},
			Width:    gutterWidth - 2*margin,
			Height:   0.03,
			Coloring: ui.Uniform(bg),
		}
		s.addText(ctx, b, fmt.Sprintf("%02d:00", h))
		s.container.Add(b)
	}

	today, hasToday := dayIndex(s.Monday, time.Now())
	for d := 0; d < 7; d++ {
		day := s.Monday.AddDate(0, 0, d)
		b := &ui.TextBox{
			Position: [2]float32{columnX(d) + margin/2, 1 - headerHeight},
			Width:    columnWidth - margin,
			Height:   headerHeight - margin,
			Coloring: ui.Uniform(shade(bg, 1.4)),
		}
		s.addText(ctx, b, day.Format("Mon 2"))
		s.container.Add(b)

		if hasToday && d == today {
			s.container.Add(&ui.CircleBox{
				Position: [2]float32{columnX(d) + margin, 1 - headerHeight + margin},
				Width:    0.02,
				Height:   0.02,
				Color:    accent,
				Radius:   1,
			})
		}
	}

	for _, e := range s.Events {
		pos, dims, ok := eventRect(e, s.Monday)
		if !ok {
			continue
		}
		inner := &ui.TextBox{
			Position: pos,
			Width:    dims[0],
			Height:   dims[1],
			Coloring: ui.Uniform(accent),
		}
		s.addText(ctx, inner, e.Title)
		theme := s.Theme
		s.container.Add(&ui.Button{
			Inner: inner,
			Data:  e,
			Action: func(b *ui.Button, uctx *ui.Context) {
				sys := systemOf(uctx)
				if sys == nil {
					return
				}
				sys.Push(NewDetailScreen(theme, b.Data.(Event)))
			},
		})
	}
}

// shade scales the color channels of c by f, keeping alpha.
func shade(c render.Color, f float32) render.Color {
	return render.Color{
		R: min(c.R*f, 1),
		G: min(c.G*f, 1),
		B: min(c.B*f, 1),
		A: c.A,
	}
}
