// Package hcal is the UI core of the hcal calendar client.
//
// # Overview
//
// hcal is a retained-mode UI toolkit. A stack of screens owns trees of UI
// components; components emit cached triangle geometry that is rebuilt only
// when marked dirty; a renderer batches the geometry of each frame into GPU
// vertex buffers and keeps a cache of laid-out text.
//
// # Architecture
//
// The module is organized into:
//   - screen: the screen stack manager (push, pop, replace, tick, input routing)
//   - ui: components, the Container with its dirty state machine
//   - render: vertices, glyph cache, the Renderer and its Device abstraction
//   - text: fonts, shaping and the glyph coverage atlas
//   - config: YAML settings for the renderer and theme
//   - internal/gpu: a render.Device on top of gogpu/wgpu HAL
//   - internal/ebitenhost: a render.Device and event loop on top of ebiten
//
// # Frame loop
//
// A host drives one goroutine per window:
//
//	models := sys.Tick(ctx)
//	if err := renderer.Render(models); err != nil {
//	    return err
//	}
//
// Input events are forwarded with System.PressKey, System.ReceiveChar,
// System.OnMouseClick and System.OnScroll. On window resize the host calls
// Renderer.Resize before the next Render.
//
// # Logging
//
// hcal is silent by default. See [SetLogger].
package hcal
