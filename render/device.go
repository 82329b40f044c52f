// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// DeviceHandle provides GPU device access from the host application.
//
// Device backends are built from a DeviceHandle: the host owns the GPU
// device, queue and surface, and render only records into them.
//
// DeviceHandle is an alias for gpucontext.DeviceProvider.
type DeviceHandle = gpucontext.DeviceProvider

// NullDeviceHandle is a DeviceHandle that provides nil implementations.
type NullDeviceHandle struct{}

// Device returns nil for the null device.
func (NullDeviceHandle) Device() gpucontext.Device { return nil }

// Queue returns nil for the null device.
func (NullDeviceHandle) Queue() gpucontext.Queue { return nil }

// Adapter returns nil for the null device.
func (NullDeviceHandle) Adapter() gpucontext.Adapter { return nil }

// SurfaceFormat returns undefined format for the null device.
func (NullDeviceHandle) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

var _ DeviceHandle = NullDeviceHandle{}

// SurfaceFormatOf returns the surface format of h, defaulting to
// BGRA8Unorm when the host reports none.
func SurfaceFormatOf(h DeviceHandle) gputypes.TextureFormat {
	if h == nil {
		return gputypes.TextureFormatBGRA8Unorm
	}
	if f := h.SurfaceFormat(); f != gputypes.TextureFormatUndefined {
		return f
	}
	return gputypes.TextureFormatBGRA8Unorm
}

// PipelineDesc describes a render pipeline with a single vertex buffer and
// a single color target.
type PipelineDesc struct {
	Label string

	// Shader is WGSL source containing both entry points.
	Shader        string
	VertexEntry   string
	FragmentEntry string
	VertexLayout  gputypes.VertexBufferLayout
	Format        gputypes.TextureFormat

	// Blend is the color target blend state. Nil replaces the target.
	Blend *gputypes.BlendState
}

// Pipeline is an opaque render pipeline created by a Device.
type Pipeline interface {
	Label() string
}

// Buffer is an opaque vertex buffer created by a Device.
type Buffer interface {
	// Size returns the buffer size in bytes.
	Size() uint64
}

// Pass records draw commands of one frame.
type Pass interface {
	// Draw draws vertexCount vertices of buf with pipeline p.
	Draw(p Pipeline, buf Buffer, vertexCount uint32)
}

// Device is the GPU collaborator of a Renderer.
//
// Vertex buffers belong to the frame they are created for: the device
// releases them once the next Frame has been submitted.
type Device interface {
	// SurfaceFormat returns the color format of the render target.
	SurfaceFormat() gputypes.TextureFormat

	// CreatePipeline compiles a render pipeline.
	CreatePipeline(desc PipelineDesc) (Pipeline, error)

	// CreateVertexBuffer creates a vertex buffer holding data.
	CreateVertexBuffer(label string, data []byte) (Buffer, error)

	// Resize reconfigures the render target.
	Resize(width, height uint32) error

	// Frame clears the target to clear, runs record inside one render pass
	// and submits the result.
	Frame(clear gputypes.Color, record func(Pass) error) error
}
