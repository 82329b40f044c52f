package ui

import (
	"sync"
	"sync/atomic"

	"github.com/gogpu/hcal/render"
)

// Dirty states of a cached model.
const (
	stateClean int32 = iota
	stateDirty
	stateRebuilding
)

// entry wraps one component of a Container with its cached model.
//
// The state machine is clean -> dirty (markDirty, any time),
// dirty -> rebuilding (claimed by one builder), rebuilding -> clean. A mark
// that lands while rebuilding moves the state back to dirty and the final
// transition fails, so the next build rebuilds again.
type entry struct {
	mu   sync.RWMutex
	comp Component

	modelMu sync.Mutex
	model   render.Model

	state atomic.Int32
}

func newEntry(c Component) *entry {
	e := &entry{comp: c}
	e.model = c.BuildModel()
	return e
}

func (e *entry) markDirty() {
	e.state.Store(stateDirty)
}

func (e *entry) isDirty() bool {
	return e.state.Load() != stateClean
}

// buildModel returns the cached model, rebuilding it first when dirty.
// The returned model is shared with the cache and must not be modified.
func (e *entry) buildModel() render.Model {
	if !e.state.CompareAndSwap(stateDirty, stateRebuilding) {
		e.modelMu.Lock()
		defer e.modelMu.Unlock()
		return e.model
	}

	e.mu.Lock()
	m := e.comp.BuildModel()
	e.mu.Unlock()

	e.modelMu.Lock()
	e.model = m
	e.modelMu.Unlock()

	e.state.CompareAndSwap(stateRebuilding, stateClean)
	return m
}

func (e *entry) contains(pos [2]float32) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return contains(e.comp, pos)
}

// update runs fn with the component locked and marks the entry dirty.
func (e *entry) update(fn func(c Component)) {
	e.mu.Lock()
	fn(e.comp)
	e.mu.Unlock()
	e.markDirty()
}
