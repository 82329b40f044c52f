// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "sync/atomic"

// Dimensions is a window size packed into one atomic word, so readers never
// observe a width from one resize with a height from another.
type Dimensions struct {
	packed atomic.Uint64
}

// NewDimensions returns Dimensions holding width and height.
func NewDimensions(width, height uint32) *Dimensions {
	d := &Dimensions{}
	d.Set(width, height)
	return d
}

// Get returns the current width and height.
func (d *Dimensions) Get() (width, height uint32) {
	v := d.packed.Load()
	return uint32(v >> 32), uint32(v) //nolint:gosec // unpacking two halves
}

// Set stores width and height.
func (d *Dimensions) Set(width, height uint32) {
	d.packed.Store(uint64(width)<<32 | uint64(height))
}
