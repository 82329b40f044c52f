// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/hcal/text"
)

// Config holds Renderer settings.
type Config struct {
	// ClearColor is the color each frame starts from.
	// Default: LightGray
	ClearColor gputypes.Color

	// Atlas configures the glyph coverage cache of the default text
	// renderer.
	Atlas text.AtlasConfig
}

// DefaultConfig returns the default renderer configuration.
func DefaultConfig() Config {
	return Config{
		ClearColor: LightGray.GPU(),
		Atlas:      text.DefaultAtlasConfig(),
	}
}

// Option configures a Renderer during creation.
//
// Example:
//
//	r, err := render.NewRenderer(dev, 800, 600,
//	    render.WithClearColor(render.White),
//	    render.WithAtlasLifetime(32),
//	)
type Option func(*options)

type options struct {
	config       Config
	fonts        *text.FontSystem
	shaper       text.Shaper
	textRenderer TextRenderer
}

func defaultOptions() options {
	return options{config: DefaultConfig()}
}

// WithConfig replaces the whole configuration.
func WithConfig(c Config) Option {
	return func(o *options) {
		o.config = c
	}
}

// WithClearColor sets the frame clear color.
func WithClearColor(c Color) Option {
	return func(o *options) {
		o.config.ClearColor = c.GPU()
	}
}

// WithAtlasLifetime sets how many frames an unused glyph mask survives.
func WithAtlasLifetime(frames int) Option {
	return func(o *options) {
		o.config.Atlas.FrameLifetime = frames
	}
}

// WithAtlasCapacity sets the maximum number of cached glyph masks.
func WithAtlasCapacity(n int) Option {
	return func(o *options) {
		o.config.Atlas.Capacity = n
	}
}

// WithFontSystem sets the fonts used for layout and rasterization.
// Without it the Renderer creates a FontSystem with the Go fonts.
func WithFontSystem(fs *text.FontSystem) Option {
	return func(o *options) {
		o.fonts = fs
	}
}

// WithShaper overrides the text layout collaborator.
func WithShaper(s text.Shaper) Option {
	return func(o *options) {
		o.shaper = s
	}
}

// WithTextRenderer overrides the text draw collaborator.
func WithTextRenderer(tr TextRenderer) Option {
	return func(o *options) {
		o.textRenderer = tr
	}
}
