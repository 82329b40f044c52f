package ui

import "sync"

// ScrollData is the scroll offset of a container, clamped to bounds.
// The zero value has all bounds at zero, so nothing scrolls until
// SetBounds is called.
type ScrollData struct {
	mu               sync.Mutex
	minX, maxX       float64
	minY, maxY       float64
	offsetX, offsetY float64
}

// SetBounds sets the allowed offset range and clamps the current offset.
// Swapped bounds are reordered.
func (s *ScrollData) SetBounds(minX, maxX, minY, maxY float64) {
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.minX, s.maxX, s.minY, s.maxY = minX, maxX, minY, maxY
	s.offsetX = clamp(s.offsetX, minX, maxX)
	s.offsetY = clamp(s.offsetY, minY, maxY)
}

// Bounds returns the allowed offset range.
func (s *ScrollData) Bounds() (minX, maxX, minY, maxY float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.minX, s.maxX, s.minY, s.maxY
}

// ScrollBy moves the offset by (dx, dy) and returns the clamped result.
func (s *ScrollData) ScrollBy(dx, dy float64) (x, y float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.offsetX = clamp(s.offsetX+dx, s.minX, s.maxX)
	s.offsetY = clamp(s.offsetY+dy, s.minY, s.maxY)
	return s.offsetX, s.offsetY
}

// Offset returns the current offset.
func (s *ScrollData) Offset() (x, y float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.offsetX, s.offsetY
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}
