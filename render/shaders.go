// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import _ "embed"

// Entry points shared by all UI shaders.
const (
	vertexEntry   = "main_vert"
	fragmentEntry = "main_frag"
)

//go:embed shaders/ui_color_generic.wgsl
var genericColorShader string

//go:embed shaders/ui_color_circle.wgsl
var circleColorShader string

// GenericColorShader returns the WGSL source of the generic-color pipeline.
// The text coverage pipeline uses it too.
func GenericColorShader() string { return genericColorShader }

// CircleColorShader returns the WGSL source of the circle-color pipeline.
func CircleColorShader() string { return circleColorShader }
