// Package config loads application settings from YAML.
//
// A missing key keeps its default; unknown keys are errors.
//
//	window:
//	  title: hcal
//	  width: 1280
//	  height: 720
//	renderer:
//	  clear_color: "#626569"
//	  atlas_capacity: 4096
//	  atlas_lifetime: 64
//	theme:
//	  background: "#202124"
//	  foreground: "#e8eaed"
//	  accent: "#8ab4f8"
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/hcal/render"
	"github.com/gogpu/hcal/text"
)

var (
	// ErrInvalidColor is returned for a color that is not #rrggbb or
	// #rrggbbaa.
	ErrInvalidColor = errors.New("config: invalid color")

	// ErrInvalidSize is returned for a non-positive window size or atlas
	// setting.
	ErrInvalidSize = errors.New("config: invalid size")
)

// File is the content of a configuration file.
type File struct {
	Window   Window   `yaml:"window"`
	Renderer Renderer `yaml:"renderer"`
	Theme    Theme    `yaml:"theme"`
}

// Window holds the initial window settings.
type Window struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// Renderer holds render.Renderer settings.
type Renderer struct {
	ClearColor    Color `yaml:"clear_color"`
	AtlasCapacity int   `yaml:"atlas_capacity"`
	AtlasLifetime int   `yaml:"atlas_lifetime"`
}

// Theme holds the colors screens draw with.
type Theme struct {
	Background Color `yaml:"background"`
	Foreground Color `yaml:"foreground"`
	Accent     Color `yaml:"accent"`
}

// Default returns the settings used when no file is given.
func Default() File {
	atlas := text.DefaultAtlasConfig()
	return File{
		Window: Window{Title: "hcal", Width: 1280, Height: 720},
		Renderer: Renderer{
			ClearColor:    Color(render.LightGray),
			AtlasCapacity: atlas.Capacity,
			AtlasLifetime: atlas.FrameLifetime,
		},
		Theme: Theme{
			Background: Color(render.RGB8(0x20, 0x21, 0x24)),
			Foreground: Color(render.RGB8(0xe8, 0xea, 0xed)),
			Accent:     Color(render.RGB8(0x8a, 0xb4, 0xf8)),
		},
	}
}

// Load reads and parses the file at path.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("config: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return File{}, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse parses YAML data over the defaults. Empty data yields Default().
func Parse(data []byte) (File, error) {
	f := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return File{}, fmt.Errorf("config: parse: %w", err)
	}
	if err := f.Validate(); err != nil {
		return File{}, err
	}
	return f, nil
}

// Validate checks sizes and limits.
func (f File) Validate() error {
	if f.Window.Width <= 0 || f.Window.Height <= 0 {
		return fmt.Errorf("%w: window %dx%d", ErrInvalidSize, f.Window.Width, f.Window.Height)
	}
	if f.Renderer.AtlasCapacity <= 0 {
		return fmt.Errorf("%w: atlas_capacity %d", ErrInvalidSize, f.Renderer.AtlasCapacity)
	}
	if f.Renderer.AtlasLifetime <= 0 {
		return fmt.Errorf("%w: atlas_lifetime %d", ErrInvalidSize, f.Renderer.AtlasLifetime)
	}
	return nil
}

// Encode writes f as YAML.
func (f File) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	return enc.Close()
}

// RendererOptions returns the render options for f.
func (f File) RendererOptions() []render.Option {
	return []render.Option{
		render.WithClearColor(render.Color(f.Renderer.ClearColor)),
		render.WithAtlasCapacity(f.Renderer.AtlasCapacity),
		render.WithAtlasLifetime(f.Renderer.AtlasLifetime),
	}
}
