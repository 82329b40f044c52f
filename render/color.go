// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "github.com/gogpu/gputypes"

// Color is a straight-alpha RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float32
}

// Common colors.
var (
	Black = Color{0, 0, 0, 1}
	White = Color{1, 1, 1, 1}

	// LightGray is the default clear color.
	LightGray = Color{0.384, 0.396, 0.412, 1}
)

// RGB8 returns an opaque color from 8-bit components.
func RGB8(r, g, b uint8) Color {
	return RGBA8(r, g, b, 255)
}

// RGBA8 returns a color from 8-bit components.
func RGBA8(r, g, b, a uint8) Color {
	return Color{float32(r) / 255, float32(g) / 255, float32(b) / 255, float32(a) / 255}
}

// Array returns the color as the vertex attribute layout.
func (c Color) Array() [4]float32 {
	return [4]float32{c.R, c.G, c.B, c.A}
}

// Premultiplied returns the color with RGB multiplied by alpha.
func (c Color) Premultiplied() [4]float32 {
	return [4]float32{c.R * c.A, c.G * c.A, c.B * c.A, c.A}
}

// GPU converts the color to a render pass clear value.
func (c Color) GPU() gputypes.Color {
	return gputypes.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B), A: float64(c.A)}
}
