package screen

import (
	"sync"
	"sync/atomic"

	"github.com/gogpu/hcal"
	"github.com/gogpu/hcal/render"
)

// noOffset marks that the desired stack has not changed since the last
// reconciliation.
const noOffset = -1

// lockedScreen serializes the callbacks of one committed screen.
type lockedScreen struct {
	mu     sync.Mutex
	screen Screen
}

func (l *lockedScreen) with(fn func(s Screen)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn(l.screen)
}

type screenInfo struct {
	screen *lockedScreen
	active bool

	// Window size the screen last saw, or -1 before the first frame.
	lastWidth, lastHeight int64
}

// System is the screen stack manager. Create it with NewSystem.
//
// Push, Pop, Replace and the stack queries only touch the desired stack and
// may be called from any goroutine. Tick and the input methods operate on
// the committed stack and are meant for the frame-driver goroutine.
type System struct {
	mu      sync.RWMutex
	screens []*screenInfo

	desiredMu sync.RWMutex
	desired   []Screen

	// lowestOffset is the lowest desired-stack index changed since the last
	// Tick, or noOffset.
	lowestOffset atomic.Int64

	pointerMu  sync.Mutex
	pointer    [2]float64
	hasPointer bool
}

// NewSystem returns an empty System.
func NewSystem() *System {
	s := &System{}
	s.lowestOffset.Store(noOffset)
	return s
}

// Push adds s on top of the desired stack. Tick commits a clone of it.
func (sys *System) Push(s Screen) {
	sys.desiredMu.Lock()
	n := int64(len(sys.desired))
	sys.desired = append(sys.desired, s)
	sys.desiredMu.Unlock()

	sys.lowestOffset.CompareAndSwap(noOffset, n)
}

// Pop removes the top of the desired stack. Popping an empty stack does
// nothing.
func (sys *System) Pop() {
	sys.desiredMu.Lock()
	if len(sys.desired) == 0 {
		sys.desiredMu.Unlock()
		return
	}
	sys.desired[len(sys.desired)-1] = nil
	sys.desired = sys.desired[:len(sys.desired)-1]
	n := int64(len(sys.desired))
	sys.desiredMu.Unlock()

	for {
		cur := sys.lowestOffset.Load()
		if cur != noOffset && cur <= n {
			return
		}
		if sys.lowestOffset.CompareAndSwap(cur, n) {
			return
		}
	}
}

// Replace pops the top screen and pushes s.
func (sys *System) Replace(s Screen) {
	sys.Pop()
	sys.Push(s)
}

// CloseClosableScreens pops screens while the top one is closable.
func (sys *System) CloseClosableScreens() {
	for sys.IsCurrentClosable() {
		sys.Pop()
	}
}

// Len returns the depth of the desired stack.
func (sys *System) Len() int {
	sys.desiredMu.RLock()
	defer sys.desiredMu.RUnlock()
	return len(sys.desired)
}

func (sys *System) desiredTop() Screen {
	sys.desiredMu.RLock()
	defer sys.desiredMu.RUnlock()
	if len(sys.desired) == 0 {
		return nil
	}
	return sys.desired[len(sys.desired)-1]
}

// IsCurrentClosable reports whether the top of the desired stack is
// closable.
func (sys *System) IsCurrentClosable() bool {
	top := sys.desiredTop()
	return top != nil && top.IsClosable()
}

// IsCurrentInGame reports whether the top of the desired stack is of kind
// KindInGame.
func (sys *System) IsCurrentInGame() bool {
	top := sys.desiredTop()
	return top != nil && top.Kind().Equal(KindInGame)
}

// IsAnyInGame reports whether any desired screen is of kind KindInGame.
func (sys *System) IsAnyInGame() bool {
	sys.desiredMu.RLock()
	defer sys.desiredMu.RUnlock()
	for i := len(sys.desired) - 1; i >= 0; i-- {
		if sys.desired[i].Kind().Equal(KindInGame) {
			return true
		}
	}
	return false
}

// CurrentKind returns the kind of the top desired screen, or KindOther("")
// when the stack is empty.
func (sys *System) CurrentKind() Kind {
	top := sys.desiredTop()
	if top == nil {
		return KindOther("")
	}
	return top.Kind()
}

// Tick reconciles the committed stack with the desired one, delivers
// activation and resize callbacks, ticks the visible screens and returns
// their models in stack order.
func (sys *System) Tick(ctx *Context) []render.Model {
	// The offset is claimed before any callback runs. Pushes and pops made
	// from lifecycle callbacks set a fresh one and are committed by the next
	// pass, so the stacks match when Tick returns.
	for lowest := sys.lowestOffset.Swap(noOffset); lowest != noOffset; lowest = sys.lowestOffset.Swap(noOffset) {
		sys.commit(ctx, lowest)
	}

	sys.mu.Lock()
	defer sys.mu.Unlock()

	n := len(sys.screens)
	if n == 0 {
		return nil
	}

	current := sys.screens[n-1]
	var lastTransparent bool
	current.screen.with(func(s Screen) {
		if !current.active {
			current.active = true
			s.OnActive(ctx)
		}
		lastTransparent = s.IsTransparent()
	})

	w, h := ctx.dimensions()
	if current.lastWidth != int64(w) || current.lastHeight != int64(h) {
		if current.lastWidth != -1 && current.lastHeight != -1 {
			sys.resize(ctx, lastTransparent)
		} else {
			current.lastWidth, current.lastHeight = int64(w), int64(h)
		}
	}

	var models []render.Model
	for i, info := range sys.screens {
		info.screen.with(func(s Screen) {
			if !s.IsTickAlways() && i != n-1 {
				return
			}
			s.Tick(ctx)
			if c := s.Container(); c != nil {
				models = append(models, c.BuildModels(ctx.uiContext())...)
			}
		})
	}
	return models
}

// resize sends OnResize to the screens that are visible: tick-always ones,
// the top, and the one under a transparent top. sys.mu must be held.
func (sys *System) resize(ctx *Context, lastTransparent bool) {
	n := len(sys.screens)
	for i, info := range sys.screens {
		var resized bool
		info.screen.with(func(s Screen) {
			if s.IsTickAlways() || i == n-1 || (lastTransparent && i == n-2) {
				s.OnResize(ctx)
				resized = true
			}
		})
		if resized {
			w, h := ctx.dimensions()
			info.lastWidth, info.lastHeight = int64(w), int64(h)
		}
	}
	hcal.Logger().Debug("screens resized", "depth", n)
}

// commit replaces the committed screens at or above lowest with clones of
// the desired ones.
func (sys *System) commit(ctx *Context, lowest int64) {
	sys.mu.Lock()
	defer sys.mu.Unlock()

	wasClosable := false
	if n := len(sys.screens); n > 0 {
		sys.screens[n-1].screen.with(func(s Screen) {
			wasClosable = s.IsClosable()
		})
	}

	removed := 0
	if lowest <= int64(len(sys.screens)) {
		for int64(len(sys.screens)) > lowest {
			info := sys.screens[len(sys.screens)-1]
			sys.screens[len(sys.screens)-1] = nil
			sys.screens = sys.screens[:len(sys.screens)-1]
			info.screen.with(func(s Screen) {
				if info.active {
					s.OnDeactive(ctx)
				}
				s.Deinit(ctx)
			})
			removed++
		}
	}

	sys.desiredMu.RLock()
	var added []Screen
	if lowest < int64(len(sys.desired)) {
		added = append(added, sys.desired[lowest:]...)
	}
	sys.desiredMu.RUnlock()

	for _, proto := range added {
		var prev *screenInfo
		if n := len(sys.screens); n > 0 {
			prev = sys.screens[n-1]
		}
		current := &screenInfo{
			screen:     &lockedScreen{screen: proto.Clone()},
			lastWidth:  -1,
			lastHeight: -1,
		}
		sys.screens = append(sys.screens, current)

		if prev != nil && prev.active {
			prev.active = false
			prev.screen.with(func(s Screen) {
				s.OnDeactive(ctx)
				if !s.IsTickAlways() && ctx.Renderer != nil {
					ctx.Renderer.ClearGlyphs()
				}
			})
		}
		current.screen.with(func(s Screen) {
			s.Init(ctx)
			current.active = true
			s.OnActive(ctx)
		})
	}

	if !wasClosable && ctx.Window != nil {
		w, h := ctx.dimensions()
		ctx.Window.SetCursorPosition(int(w/2), int(h/2))
	}

	hcal.Logger().Debug("screen stack committed",
		"offset", lowest,
		"removed", removed,
		"added", len(added),
		"depth", len(sys.screens))
}

// top returns the committed top screen, or nil.
func (sys *System) top() *lockedScreen {
	sys.mu.RLock()
	defer sys.mu.RUnlock()
	if len(sys.screens) == 0 {
		return nil
	}
	return sys.screens[len(sys.screens)-1].screen
}

// PressKey delivers a key event to the committed top screen. Releasing
// Escape on a closable top pops it instead.
func (sys *System) PressKey(ctx *Context, key Key, down bool) {
	top := sys.top()
	if top == nil {
		return
	}
	top.mu.Lock()
	if key == KeyEscape && !down && top.screen.IsClosable() {
		top.mu.Unlock()
		sys.Pop()
		return
	}
	defer top.mu.Unlock()
	top.screen.OnKeyPress(ctx, key, down)
}

// ReceiveChar delivers a typed character to the committed top screen.
func (sys *System) ReceiveChar(r rune) {
	if top := sys.top(); top != nil {
		top.with(func(s Screen) { s.OnCharReceive(r) })
	}
}

// normalize converts window pixels, origin top-left, to window fractions,
// origin bottom-left.
func normalize(ctx *Context, x, y float64) ([2]float32, bool) {
	w, h := ctx.dimensions()
	if w == 0 || h == 0 {
		return [2]float32{}, false
	}
	return [2]float32{float32(x / float64(w)), float32(1 - y/float64(h))}, true
}

// OnMouseClick sends a click at pixel (x, y) to the top screen's
// components. It reports whether a component was hit.
func (sys *System) OnMouseClick(ctx *Context, x, y float64) bool {
	pos, ok := normalize(ctx, x, y)
	if !ok {
		return false
	}
	top := sys.top()
	if top == nil {
		return false
	}
	var hit bool
	top.with(func(s Screen) {
		if c := s.Container(); c != nil {
			hit = c.OnMouseClick(ctx.uiContext(), pos)
		}
	})
	return hit
}

// OnMouseMove records the pointer at pixel (x, y) and updates hover state
// of the top screen's components.
func (sys *System) OnMouseMove(ctx *Context, x, y float64) {
	sys.pointerMu.Lock()
	sys.pointer = [2]float64{x, y}
	sys.hasPointer = true
	sys.pointerMu.Unlock()

	pos, ok := normalize(ctx, x, y)
	if !ok {
		return
	}
	if top := sys.top(); top != nil {
		top.with(func(s Screen) {
			if c := s.Container(); c != nil {
				c.OnMouseMove(ctx.uiContext(), pos)
			}
		})
	}
}

// OnScroll delivers a wheel delta to the top screen, then to the component
// under the last known pointer position.
func (sys *System) OnScroll(ctx *Context, dx, dy float64) {
	top := sys.top()
	if top == nil {
		return
	}

	sys.pointerMu.Lock()
	p, hasPointer := sys.pointer, sys.hasPointer
	sys.pointerMu.Unlock()

	top.with(func(s Screen) {
		s.OnScroll(dx, dy)
		if !hasPointer {
			return
		}
		pos, ok := normalize(ctx, p[0], p[1])
		if !ok {
			return
		}
		if c := s.Container(); c != nil {
			c.OnScroll(ctx.uiContext(), pos, dx, dy)
		}
	})
}
