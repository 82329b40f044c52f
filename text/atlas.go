package text

import (
	"sync"
	"sync/atomic"

	"golang.org/x/image/math/fixed"
)

// AtlasConfig holds configuration for an Atlas.
type AtlasConfig struct {
	// Capacity is the maximum number of cached glyph masks.
	// Default: 4096
	Capacity int

	// FrameLifetime is the number of frames an entry may go unused before
	// Trim drops it.
	// Default: 64
	FrameLifetime int
}

// DefaultAtlasConfig returns the default atlas configuration.
func DefaultAtlasConfig() AtlasConfig {
	return AtlasConfig{
		Capacity:      4096,
		FrameLifetime: 64,
	}
}

// AtlasKey identifies a cached mask.
type AtlasKey struct {
	FontID uint64
	Glyph  uint16

	// Size is the pixel size in 26.6 fixed point, so nearby float sizes
	// share an entry.
	Size int32
}

// Rasterizer produces glyph coverage masks. FontSystem implements it.
type Rasterizer interface {
	Rasterize(fontID uint64, gid uint16, size float32) (*Mask, error)
}

type atlasEntry struct {
	mask      *Mask
	lastFrame uint64
}

// AtlasStats reports atlas counters.
type AtlasStats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// Atlas caches glyph coverage masks between frames.
//
// Atlas is safe for concurrent use.
type Atlas struct {
	raster Rasterizer
	config AtlasConfig

	mu      sync.Mutex
	entries map[AtlasKey]*atlasEntry
	frame   uint64

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// NewAtlas creates an atlas that rasterizes misses with raster.
// Non-positive config fields take their defaults.
func NewAtlas(raster Rasterizer, config AtlasConfig) *Atlas {
	def := DefaultAtlasConfig()
	if config.Capacity <= 0 {
		config.Capacity = def.Capacity
	}
	if config.FrameLifetime <= 0 {
		config.FrameLifetime = def.FrameLifetime
	}
	return &Atlas{
		raster:  raster,
		config:  config,
		entries: make(map[AtlasKey]*atlasEntry),
	}
}

// Mask returns the coverage of glyph gid at size, rasterizing it on a miss.
func (a *Atlas) Mask(fontID uint64, gid uint16, size float32) (*Mask, error) {
	key := AtlasKey{FontID: fontID, Glyph: gid, Size: int32(floatToFixed(size))}

	a.mu.Lock()
	if e, ok := a.entries[key]; ok {
		e.lastFrame = a.frame
		a.mu.Unlock()
		a.hits.Add(1)
		return e.mask, nil
	}
	a.mu.Unlock()
	a.misses.Add(1)

	mask, err := a.raster.Rasterize(fontID, gid, fixedToFloat(fixed.Int26_6(key.Size)))
	if err != nil {
		return nil, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if len(a.entries) >= a.config.Capacity {
		a.evictOldestLocked()
	}
	a.entries[key] = &atlasEntry{mask: mask, lastFrame: a.frame}
	return mask, nil
}

// Trim ends the current frame and drops entries unused for longer than the
// configured frame lifetime.
func (a *Atlas) Trim() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.frame++
	lifetime := uint64(a.config.FrameLifetime) //nolint:gosec // FrameLifetime is positive
	for k, e := range a.entries {
		if a.frame-e.lastFrame > lifetime {
			delete(a.entries, k)
			a.evictions.Add(1)
		}
	}
}

// Len returns the number of cached masks.
func (a *Atlas) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.entries)
}

// Stats returns the atlas counters.
func (a *Atlas) Stats() AtlasStats {
	return AtlasStats{
		Hits:      a.hits.Load(),
		Misses:    a.misses.Load(),
		Evictions: a.evictions.Load(),
	}
}

func (a *Atlas) evictOldestLocked() {
	var (
		oldest AtlasKey
		found  bool
		frame  uint64
	)
	for k, e := range a.entries {
		if !found || e.lastFrame < frame {
			oldest, frame, found = k, e.lastFrame, true
		}
	}
	if found {
		delete(a.entries, oldest)
		a.evictions.Add(1)
	}
}
