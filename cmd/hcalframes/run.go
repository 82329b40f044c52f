package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal/noop"

	"github.com/gogpu/hcal"
	"github.com/gogpu/hcal/config"
	"github.com/gogpu/hcal/internal/demo"
	"github.com/gogpu/hcal/internal/gpu"
	"github.com/gogpu/hcal/render"
	"github.com/gogpu/hcal/screen"
	"github.com/gogpu/hcal/ui"
)

type options struct {
	frames   int
	clickAt  int
	resizeAt int

	// now anchors the rendered week.
	now time.Time
}

type result struct {
	Stats  gpu.Stats
	Glyphs int
	Depth  int
}

// window is a fixed-size window without a pointer.
type window struct {
	width, height uint32
}

func (w *window) Size() (uint32, uint32)     { return w.width, w.height }
func (w *window) SetCursorPosition(int, int) {}

// openNoop opens the first adapter of the noop backend. close releases the
// device and instance.
func openNoop() (*gpu.Device, func(), error) {
	api := noop.API{}
	instance, err := api.CreateInstance(nil)
	if err != nil {
		return nil, nil, fmt.Errorf("create instance: %w", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		return nil, nil, errors.New("noop backend reported no adapters")
	}
	open, err := adapters[0].Adapter.Open(0, gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		return nil, nil, fmt.Errorf("open adapter: %w", err)
	}
	dev, err := gpu.NewDevice(open.Device, open.Queue)
	if err != nil {
		open.Device.Destroy()
		instance.Destroy()
		return nil, nil, err
	}
	return dev, func() {
		dev.Destroy()
		open.Device.Destroy()
		instance.Destroy()
	}, nil
}

// run renders opts.frames frames of the week screen.
func run(cfg config.File, opts options) (result, error) {
	if opts.now.IsZero() {
		opts.now = time.Now()
	}
	dev, closeDevice, err := openNoop()
	if err != nil {
		return result{}, err
	}
	defer closeDevice()

	win := &window{width: uint32(cfg.Window.Width), height: uint32(cfg.Window.Height)}
	if err := dev.Resize(win.width, win.height); err != nil {
		return result{}, err
	}
	r, err := render.NewRenderer(dev, win.width, win.height, cfg.RendererOptions()...)
	if err != nil {
		return result{}, err
	}

	sys := screen.NewSystem()
	ctx := &screen.Context{
		Context: ui.Context{App: &demo.App{System: sys}, Renderer: r},
		Window:  win,
		System:  sys,
	}
	monday := demo.StartOfWeek(opts.now)
	events := demo.SampleWeek(monday)
	sys.Push(demo.NewWeekScreen(cfg.Theme, monday, events))

	for i := 0; i < opts.frames; i++ {
		if i == opts.resizeAt {
			win.width, win.height = win.height, win.width
			if err := r.Resize(win.width, win.height); err != nil {
				return result{}, err
			}
		}
		models := sys.Tick(ctx)
		if i == opts.clickAt {
			hit := clickEvent(ctx, sys, events[0], monday, win)
			hcal.Logger().Debug("clicked first event", "frame", i, "hit", hit)
		}
		if err := r.Render(models); err != nil {
			return result{}, fmt.Errorf("frame %d: %w", i, err)
		}
	}
	return result{Stats: dev.Stats(), Glyphs: r.GlyphCount(), Depth: sys.Len()}, nil
}

// clickEvent clicks the center of e, converting window fractions to
// pixels with the origin at the top left.
func clickEvent(ctx *screen.Context, sys *screen.System, e demo.Event, monday time.Time, win *window) bool {
	c, ok := demo.EventCenter(e, monday)
	if !ok {
		return false
	}
	x := float64(c[0]) * float64(win.width)
	y := (1 - float64(c[1])) * float64(win.height)
	return sys.OnMouseClick(ctx, x, y)
}
