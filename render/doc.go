// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render batches UI geometry into GPU vertex buffers and keeps the
// glyph cache of laid-out text.
//
// # Key Principle
//
// render RECEIVES a GPU device from the host, it does NOT create one. The
// host wraps its device in a [Device] (see internal/gpu for gogpu/wgpu HAL
// and internal/ebitenhost for ebiten) and passes it to [NewRenderer].
//
// # Frame
//
// [Renderer.Render] takes the models collected for a frame and:
//
//  1. builds a [TextArea] for every cached glyph from its fractional
//     position and the current pixel [Dimensions], and prepares them
//  2. partitions the vertices by kind into a generic-color and a
//     circle-color buffer
//  3. uploads the non-empty buffers
//  4. records one draw per buffer on its pipeline, then the text pass
//  5. trims the text atlas after the frame is submitted
//
// # Coordinates
//
// Model vertices are in normalized device coordinates. UI code works in
// window fractions with the origin at the bottom left and converts with
// `2*f - 1`. Text areas are in pixels with the origin at the top left.
//
// # Glyph cache
//
// [Renderer.AddGlyph] lays out text immediately against the current window
// size and returns a [GlyphID]. Ids are never reused. Call
// [Renderer.Resize] on every window resize; it re-lays out all glyphs.
package render
