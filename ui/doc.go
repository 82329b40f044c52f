// Package ui holds the component tree of a screen.
//
// A [Container] owns an ordered list of [Component]s. Each component's
// geometry is built once when added and cached; input that reaches a
// component through the container (click, scroll, hover) marks it dirty and
// the next [Container.BuildModels] rebuilds it.
//
// Positions and sizes are fractions of the window in [0, 1] with the origin
// at the bottom left. Pointer positions passed to the container use the same
// convention.
package ui
