// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "errors"

var (
	// ErrNilDevice is returned when a Renderer is created without a Device.
	ErrNilDevice = errors.New("render: nil device")

	// ErrInvalidDimensions is returned for a zero width or height.
	ErrInvalidDimensions = errors.New("render: invalid dimensions")
)
