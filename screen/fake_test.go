package screen

import (
	"fmt"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/hcal/render"
	"github.com/gogpu/hcal/ui"
)

type nopPipeline struct{}

func (nopPipeline) Label() string { return "nop" }

type nopBuffer struct{}

func (nopBuffer) Size() uint64 { return 0 }

type nopPass struct{}

func (nopPass) Draw(render.Pipeline, render.Buffer, uint32) {}

type nopDevice struct{}

func (nopDevice) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatBGRA8Unorm
}

func (nopDevice) CreatePipeline(render.PipelineDesc) (render.Pipeline, error) {
	return nopPipeline{}, nil
}

func (nopDevice) CreateVertexBuffer(string, []byte) (render.Buffer, error) {
	return nopBuffer{}, nil
}

func (nopDevice) Resize(uint32, uint32) error { return nil }

func (nopDevice) Frame(_ gputypes.Color, record func(render.Pass) error) error {
	return record(nopPass{})
}

// fakeWindow records cursor moves.
type fakeWindow struct {
	w, h    uint32
	cursors [][2]int
}

func (w *fakeWindow) Size() (uint32, uint32) { return w.w, w.h }

func (w *fakeWindow) SetCursorPosition(x, y int) {
	w.cursors = append(w.cursors, [2]int{x, y})
}

// eventLog collects lifecycle events of all screens in a test.
type eventLog struct {
	events []string
}

func (l *eventLog) add(format string, args ...any) {
	l.events = append(l.events, fmt.Sprintf(format, args...))
}

func (l *eventLog) take() []string {
	out := l.events
	l.events = nil
	return out
}

// recScreen logs every callback it receives.
type recScreen struct {
	Base
	name      string
	log       *eventLog
	container *ui.Container

	// Optional hooks run after the event is logged.
	onInit   func(ctx *Context)
	onActive func(ctx *Context)
	onDeinit func(ctx *Context)
}

func newRecScreen(name string, log *eventLog, color render.Color) *recScreen {
	c := ui.NewContainer()
	c.Add(&ui.ColorBox{Width: 0.5, Height: 0.5, Coloring: ui.Uniform(color)})
	return &recScreen{name: name, log: log, container: c}
}

func (s *recScreen) OnDeactive(*Context)  { s.log.add("%s deactive", s.name) }
func (s *recScreen) Tick(*Context)        { s.log.add("%s tick", s.name) }
func (s *recScreen) OnResize(*Context)    { s.log.add("%s resize", s.name) }
func (s *recScreen) OnCharReceive(r rune) { s.log.add("%s char %c", s.name, r) }

func (s *recScreen) Init(ctx *Context) {
	s.log.add("%s init", s.name)
	if s.onInit != nil {
		s.onInit(ctx)
	}
}

func (s *recScreen) Deinit(ctx *Context) {
	s.log.add("%s deinit", s.name)
	if s.onDeinit != nil {
		s.onDeinit(ctx)
	}
}

func (s *recScreen) OnActive(ctx *Context) {
	s.log.add("%s active", s.name)
	if s.onActive != nil {
		s.onActive(ctx)
	}
}

func (s *recScreen) OnKeyPress(_ *Context, key Key, down bool) {
	s.log.add("%s key %v %v", s.name, key, down)
}

func (s *recScreen) OnScroll(dx, dy float64) {
	s.log.add("%s scroll %v %v", s.name, dx, dy)
}

func (s *recScreen) Container() *ui.Container { return s.container }

func (s *recScreen) Clone() Screen {
	c := *s
	return &c
}

type testEnv struct {
	sys    *System
	ctx    *Context
	window *fakeWindow
	log    *eventLog
}

func newTestEnv(t *testing.T, w, h uint32) *testEnv {
	t.Helper()
	r, err := render.NewRenderer(nopDevice{}, w, h)
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}
	env := &testEnv{
		sys:    NewSystem(),
		window: &fakeWindow{w: w, h: h},
		log:    &eventLog{},
	}
	env.ctx = &Context{
		Context: ui.Context{Renderer: r},
		Window:  env.window,
		System:  env.sys,
	}
	return env
}

func (e *testEnv) screen(name string, color render.Color) *recScreen {
	return newRecScreen(name, e.log, color)
}

func (e *testEnv) resize(t *testing.T, w, h uint32) {
	t.Helper()
	if err := e.ctx.Renderer.Resize(w, h); err != nil {
		t.Fatalf("Resize() error = %v", err)
	}
	e.window.w, e.window.h = w, h
}

// once returns a hook that runs fn on its first call only. Clones of a
// screen share the returned hook.
func once(fn func(ctx *Context)) func(ctx *Context) {
	done := false
	return func(ctx *Context) {
		if done {
			return
		}
		done = true
		fn(ctx)
	}
}

// stackNames returns the names of the desired and committed screens,
// bottom first.
func stackNames(sys *System) (desired, committed []string) {
	sys.desiredMu.RLock()
	for _, s := range sys.desired {
		desired = append(desired, s.(*recScreen).name)
	}
	sys.desiredMu.RUnlock()

	sys.mu.RLock()
	defer sys.mu.RUnlock()
	for _, info := range sys.screens {
		info.screen.with(func(s Screen) {
			committed = append(committed, s.(*recScreen).name)
		})
	}
	return desired, committed
}
