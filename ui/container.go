package ui

import (
	"sync"

	"github.com/gogpu/hcal/render"
)

// Container is the ordered component list of one screen.
//
// Insertion order is paint order and hit-test order. Hit testing scans in
// insertion order and stops at the first component under the pointer, so
// of two overlapping components the one added first receives input even
// though the one added later is painted over it.
//
// Container is safe for concurrent use. Callbacks run without the list
// lock held, so they may add to or clear the container.
type Container struct {
	mu      sync.RWMutex
	entries []*entry

	hoverMu sync.Mutex
	hovered *entry

	scroll ScrollData
}

// NewContainer returns an empty Container.
func NewContainer() *Container {
	return &Container{}
}

// Add builds c's model, caches it and appends c.
func (ct *Container) Add(c Component) {
	e := newEntry(c)
	ct.mu.Lock()
	ct.entries = append(ct.entries, e)
	ct.mu.Unlock()
}

// Clear removes all components. Components are not notified; those owning
// resources (such as TextBox glyphs) must be released by their owner.
func (ct *Container) Clear() {
	ct.mu.Lock()
	ct.entries = nil
	ct.mu.Unlock()

	ct.hoverMu.Lock()
	ct.hovered = nil
	ct.hoverMu.Unlock()
}

// Len returns the number of components.
func (ct *Container) Len() int {
	ct.mu.RLock()
	defer ct.mu.RUnlock()
	return len(ct.entries)
}

// Scroll returns the container's scroll state.
func (ct *Container) Scroll() *ScrollData {
	return &ct.scroll
}

func (ct *Container) snapshot() []*entry {
	ct.mu.RLock()
	defer ct.mu.RUnlock()
	out := make([]*entry, len(ct.entries))
	copy(out, ct.entries)
	return out
}

// BuildModels returns one model per component in insertion order,
// rebuilding dirty ones, and runs each Drawer's Draw hook.
func (ct *Container) BuildModels(ctx *Context) []render.Model {
	entries := ct.snapshot()
	models := make([]render.Model, 0, len(entries))
	for _, e := range entries {
		models = append(models, e.buildModel())
		if d, ok := e.comp.(Drawer); ok {
			e.mu.RLock()
			d.Draw(ctx)
			e.mu.RUnlock()
		}
	}
	return models
}

// hit returns the first component containing pos.
func (ct *Container) hit(pos [2]float32) *entry {
	for _, e := range ct.snapshot() {
		if e.contains(pos) {
			return e
		}
	}
	return nil
}

// OnMouseClick sends a click at pos to the first component under it and
// marks that component dirty. It reports whether a component was hit.
func (ct *Container) OnMouseClick(ctx *Context, pos [2]float32) bool {
	e := ct.hit(pos)
	if e == nil {
		return false
	}
	e.update(func(c Component) { c.OnClick(ctx) })
	return true
}

// OnScroll scrolls the container by (dx, dy) within its bounds and sends
// the scroll to the first component under pos, marking it dirty. It
// reports whether a component was hit.
func (ct *Container) OnScroll(ctx *Context, pos [2]float32, dx, dy float64) bool {
	ct.scroll.ScrollBy(dx, dy)
	e := ct.hit(pos)
	if e == nil {
		return false
	}
	e.update(func(c Component) { c.OnScroll(ctx, dx, dy) })
	return true
}

// OnMouseMove tracks which component is under the pointer. When it
// changes, the old one receives HoverExit and the new one HoverEnter; both
// are marked dirty.
func (ct *Container) OnMouseMove(ctx *Context, pos [2]float32) {
	e := ct.hit(pos)

	ct.hoverMu.Lock()
	prev := ct.hovered
	if prev == e {
		ct.hoverMu.Unlock()
		return
	}
	ct.hovered = e
	ct.hoverMu.Unlock()

	if prev != nil {
		prev.update(func(c Component) { c.OnHover(ctx, HoverExit) })
	}
	if e != nil {
		e.update(func(c Component) { c.OnHover(ctx, HoverEnter) })
	}
}
