// Package ebitenhost runs the UI core in an ebiten window.
//
// Device implements render.Device with ebiten triangle draws: flat and text
// vertices go through DrawTriangles, circle quads through a Kage shader.
// Game adapts ebiten's Update/Draw/Layout loop to a screen.System and a
// render.Renderer, translating keyboard, character, pointer, wheel and
// resize input.
package ebitenhost
