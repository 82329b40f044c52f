package ui

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/hcal/render"
)

// probe is a Component that counts calls.
type probe struct {
	pos, dims [2]float32
	color     render.Color

	builds  int
	clicks  int
	scrolls int
	hovers  []HoverMode
	draws   int

	// onBuild runs inside BuildModel.
	onBuild func()
}

func (p *probe) BuildModel() render.Model {
	p.builds++
	if p.onBuild != nil {
		p.onBuild()
	}
	return quadModel(p.pos, p.dims[0], p.dims[1], Uniform(p.color))
}

func (p *probe) Pos() [2]float32                     { return p.pos }
func (p *probe) Dims() [2]float32                    { return p.dims }
func (p *probe) OnClick(*Context)                    { p.clicks++ }
func (p *probe) OnScroll(*Context, float64, float64) { p.scrolls++ }
func (p *probe) OnHover(_ *Context, m HoverMode)     { p.hovers = append(p.hovers, m) }
func (p *probe) Draw(*Context)                       { p.draws++ }

func TestAddBuildsImmediately(t *testing.T) {
	ct := NewContainer()
	p := &probe{dims: [2]float32{0.5, 0.5}}
	ct.Add(p)

	if p.builds != 1 {
		t.Errorf("builds after Add = %d, want 1", p.builds)
	}
	if ct.Len() != 1 {
		t.Errorf("Len() = %d, want 1", ct.Len())
	}
}

func TestBuildModelsCachesUntilInput(t *testing.T) {
	ct := NewContainer()
	p := &probe{dims: [2]float32{0.5, 0.5}}
	ct.Add(p)
	ctx := &Context{}

	first := ct.BuildModels(ctx)
	second := ct.BuildModels(ctx)
	if p.builds != 1 {
		t.Fatalf("builds = %d, want 1 while clean", p.builds)
	}
	if &first[0].Vertices[0] != &second[0].Vertices[0] {
		t.Error("clean builds should return the identical cached model")
	}
	if p.draws != 2 {
		t.Errorf("draw hook ran %d times, want 2", p.draws)
	}

	if !ct.OnMouseClick(ctx, [2]float32{0.25, 0.25}) {
		t.Fatal("click inside the component was not dispatched")
	}
	ct.BuildModels(ctx)
	if p.builds != 2 {
		t.Errorf("builds after click = %d, want 2", p.builds)
	}
	ct.BuildModels(ctx)
	if p.builds != 2 {
		t.Errorf("builds after a clean frame = %d, want 2", p.builds)
	}
}

func TestBuildModelsOrder(t *testing.T) {
	ct := NewContainer()
	red := render.Color{R: 1, A: 1}
	blue := render.Color{B: 1, A: 1}
	ct.Add(&ColorBox{Width: 0.1, Height: 0.1, Coloring: Uniform(red)})
	ct.Add(&ColorBox{Width: 0.1, Height: 0.1, Coloring: Uniform(blue)})

	models := ct.BuildModels(&Context{})
	if len(models) != 2 {
		t.Fatalf("models = %d, want 2", len(models))
	}
	if models[0].Vertices[0].Color != red.Array() || models[1].Vertices[0].Color != blue.Array() {
		t.Error("models not in insertion order")
	}
}

func TestHitTestFirstMatch(t *testing.T) {
	ct := NewContainer()
	a := &probe{pos: [2]float32{0, 0}, dims: [2]float32{0.6, 0.6}}
	b := &probe{pos: [2]float32{0.4, 0.4}, dims: [2]float32{0.6, 0.6}}
	ct.Add(a)
	ct.Add(b)

	ct.OnMouseClick(&Context{}, [2]float32{0.5, 0.5})
	if a.clicks != 1 || b.clicks != 0 {
		t.Errorf("clicks a=%d b=%d, want the first added to win", a.clicks, b.clicks)
	}

	ct.OnMouseClick(&Context{}, [2]float32{0.9, 0.9})
	if b.clicks != 1 {
		t.Errorf("b clicks = %d, want 1 outside the overlap", b.clicks)
	}
}

func TestHitTestInclusiveBounds(t *testing.T) {
	tests := []struct {
		name string
		pos  [2]float32
		want bool
	}{
		{"origin corner", [2]float32{0.25, 0.25}, true},
		{"far corner", [2]float32{0.75, 0.75}, true},
		{"inside", [2]float32{0.5, 0.3}, true},
		{"left of", [2]float32{0.2, 0.5}, false},
		{"above", [2]float32{0.5, 0.8}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ct := NewContainer()
			ct.Add(&probe{pos: [2]float32{0.25, 0.25}, dims: [2]float32{0.5, 0.5}})
			if got := ct.OnMouseClick(&Context{}, tt.pos); got != tt.want {
				t.Errorf("OnMouseClick(%v) = %v, want %v", tt.pos, got, tt.want)
			}
		})
	}
}

func TestClickOutOfBoundsPixel(t *testing.T) {
	// A quad at (0,0) size (0.5,0.5) in a 200x200 window; a click at pixel
	// (300,300) is fraction (1.5,1.5) and reaches nothing.
	ct := NewContainer()
	p := &probe{dims: [2]float32{0.5, 0.5}}
	ct.Add(p)

	pos := [2]float32{300.0 / 200, 300.0 / 200}
	if ct.OnMouseClick(&Context{}, pos) {
		t.Error("click outside the window was dispatched")
	}
	if p.clicks != 0 {
		t.Errorf("clicks = %d, want 0", p.clicks)
	}
}

func TestMarkDuringRebuildSurvives(t *testing.T) {
	ct := NewContainer()
	p := &probe{dims: [2]float32{1, 1}}
	ct.Add(p)
	e := ct.snapshot()[0]

	e.markDirty()
	p.onBuild = func() {
		if got := e.state.Load(); got != stateRebuilding {
			t.Errorf("state during build = %d, want rebuilding", got)
		}
		e.markDirty()
	}
	ct.BuildModels(&Context{})
	if !e.isDirty() {
		t.Fatal("mark during rebuild was lost")
	}

	p.onBuild = nil
	ct.BuildModels(&Context{})
	if e.isDirty() {
		t.Error("entry still dirty after a clean rebuild")
	}
	if p.builds != 3 {
		t.Errorf("builds = %d, want 3", p.builds)
	}
}

func TestConcurrentMarkAndBuild(t *testing.T) {
	ct := NewContainer()
	ct.Add(&ColorBox{Width: 1, Height: 1})
	e := ct.snapshot()[0]

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			e.markDirty()
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			ct.BuildModels(&Context{})
		}
	}()
	wg.Wait()

	ct.BuildModels(&Context{})
	if e.isDirty() {
		t.Error("entry dirty after a final build with no concurrent marks")
	}
}

func TestClear(t *testing.T) {
	ct := NewContainer()
	ct.Add(&probe{dims: [2]float32{1, 1}})
	ct.Add(&probe{dims: [2]float32{1, 1}})
	ct.Clear()
	if ct.Len() != 0 {
		t.Errorf("Len() = %d after Clear", ct.Len())
	}
	if got := ct.BuildModels(&Context{}); len(got) != 0 {
		t.Errorf("BuildModels() = %d models after Clear", len(got))
	}
}

func TestCallbackMayMutateContainer(t *testing.T) {
	ct := NewContainer()
	btn := &Button{
		Inner: &TextBox{Width: 0.5, Height: 0.5},
		Action: func(b *Button, ctx *Context) {
			ct.Add(&ColorBox{Width: 0.1, Height: 0.1})
		},
	}
	ct.Add(btn)
	ct.OnMouseClick(&Context{}, [2]float32{0.1, 0.1})
	if ct.Len() != 2 {
		t.Errorf("Len() = %d, want 2", ct.Len())
	}
}

func TestOnScroll(t *testing.T) {
	ct := NewContainer()
	p := &probe{dims: [2]float32{0.5, 0.5}}
	ct.Add(p)
	ct.Scroll().SetBounds(0, 0, -1, 0)

	if !ct.OnScroll(&Context{}, [2]float32{0.1, 0.1}, 0, -0.4) {
		t.Fatal("scroll not dispatched")
	}
	ct.OnScroll(&Context{}, [2]float32{0.9, 0.9}, 0, -0.8)
	if p.scrolls != 1 {
		t.Errorf("scrolls = %d, want 1", p.scrolls)
	}
	if x, y := ct.Scroll().Offset(); x != 0 || y != -1 {
		t.Errorf("Offset() = (%v, %v), want (0, -1)", x, y)
	}
	ct.BuildModels(&Context{})
	if p.builds != 2 {
		t.Errorf("builds = %d, want a rebuild after scroll", p.builds)
	}
}

func TestOnMouseMoveHover(t *testing.T) {
	ct := NewContainer()
	a := &probe{pos: [2]float32{0, 0}, dims: [2]float32{0.4, 0.4}}
	b := &probe{pos: [2]float32{0.5, 0.5}, dims: [2]float32{0.4, 0.4}}
	ct.Add(a)
	ct.Add(b)
	ctx := &Context{}

	ct.OnMouseMove(ctx, [2]float32{0.1, 0.1})
	ct.OnMouseMove(ctx, [2]float32{0.2, 0.2})
	ct.OnMouseMove(ctx, [2]float32{0.6, 0.6})
	ct.OnMouseMove(ctx, [2]float32{0.45, 0.45})

	if diff := cmp.Diff([]HoverMode{HoverEnter, HoverExit}, a.hovers); diff != "" {
		t.Errorf("a hovers mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]HoverMode{HoverEnter, HoverExit}, b.hovers); diff != "" {
		t.Errorf("b hovers mismatch (-want +got):\n%s", diff)
	}
}
