// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"fmt"
	"sync"
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/hcal"
	"github.com/gogpu/hcal/render"
)

// fenceTimeout bounds the wait for one frame.
const fenceTimeout = 5 * time.Second

type pipeline struct {
	label  string
	module hal.ShaderModule
	layout hal.PipelineLayout
	raw    hal.RenderPipeline
}

func (p *pipeline) Label() string { return p.label }

type buffer struct {
	raw  hal.Buffer
	size uint64
}

func (b *buffer) Size() uint64 { return b.size }

// Stats reports device resource counts.
type Stats struct {
	Frames      uint64
	Pipelines   int
	LiveBuffers int
}

// Option configures a Device.
type Option func(*Device)

// WithFormat sets the color target format. The default is BGRA8Unorm.
func WithFormat(f gputypes.TextureFormat) Option {
	return func(d *Device) {
		if f != gputypes.TextureFormatUndefined {
			d.format = f
		}
	}
}

// Device is a render.Device backed by a HAL device and queue.
type Device struct {
	device hal.Device
	queue  hal.Queue
	format gputypes.TextureFormat

	mu        sync.Mutex
	pipelines []*pipeline

	// Buffers created for the next frame, and those of the last submitted
	// frame.
	pending  []hal.Buffer
	inflight []hal.Buffer

	width, height uint32
	targetTex     hal.Texture
	targetView    hal.TextureView
	externalView  hal.TextureView

	frames uint64
}

var _ render.Device = (*Device)(nil)

// NewDevice returns a Device drawing with device and queue.
func NewDevice(device hal.Device, queue hal.Queue, opts ...Option) (*Device, error) {
	if device == nil || queue == nil {
		return nil, ErrNilHALDevice
	}
	d := &Device{
		device: device,
		queue:  queue,
		format: gputypes.TextureFormatBGRA8Unorm,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// NewDeviceForProvider returns a Device for a host provider exposing
// HalDevice() any and HalQueue() any. The color format defaults to the
// provider's surface format.
func NewDeviceForProvider(p render.DeviceHandle, opts ...Option) (*Device, error) {
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := p.(halProvider)
	if !ok {
		return nil, ErrNotHALProvider
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok {
		return nil, fmt.Errorf("%w: HalDevice is %T", ErrNotHALProvider, hp.HalDevice())
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok {
		return nil, fmt.Errorf("%w: HalQueue is %T", ErrNotHALProvider, hp.HalQueue())
	}
	opts = append([]Option{WithFormat(render.SurfaceFormatOf(p))}, opts...)
	return NewDevice(device, queue, opts...)
}

// SurfaceFormat implements render.Device.
func (d *Device) SurfaceFormat() gputypes.TextureFormat {
	return d.format
}

// CreatePipeline implements render.Device.
func (d *Device) CreatePipeline(desc render.PipelineDesc) (render.Pipeline, error) {
	module, err := createShaderModule(d.device, desc.Label+" shader", desc.Shader)
	if err != nil {
		return nil, err
	}
	layout, err := d.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label: desc.Label + " layout",
	})
	if err != nil {
		d.device.DestroyShaderModule(module)
		return nil, fmt.Errorf("create pipeline layout %s: %w", desc.Label, err)
	}

	raw, err := d.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  desc.Label,
		Layout: layout,
		Vertex: hal.VertexState{
			Module:     module,
			EntryPoint: desc.VertexEntry,
			Buffers:    []gputypes.VertexBufferLayout{desc.VertexLayout},
		},
		Fragment: &hal.FragmentState{
			Module:     module,
			EntryPoint: desc.FragmentEntry,
			Targets: []gputypes.ColorTargetState{
				{
					Format:    desc.Format,
					Blend:     desc.Blend,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		d.device.DestroyPipelineLayout(layout)
		d.device.DestroyShaderModule(module)
		return nil, fmt.Errorf("create render pipeline %s: %w", desc.Label, err)
	}

	p := &pipeline{label: desc.Label, module: module, layout: layout, raw: raw}
	d.mu.Lock()
	d.pipelines = append(d.pipelines, p)
	d.mu.Unlock()
	return p, nil
}

// CreateVertexBuffer implements render.Device. The buffer is released after
// the frame following its first use has been submitted.
func (d *Device) CreateVertexBuffer(label string, data []byte) (render.Buffer, error) {
	raw, err := d.device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  uint64(len(data)),
		Usage: gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", label, err)
	}
	d.queue.WriteBuffer(raw, 0, data)

	d.mu.Lock()
	d.pending = append(d.pending, raw)
	d.mu.Unlock()
	return &buffer{raw: raw, size: uint64(len(data))}, nil
}

// Resize recreates the offscreen color target at width x height.
func (d *Device) Resize(width, height uint32) error {
	if width == 0 || height == 0 {
		return fmt.Errorf("%w: %dx%d", render.ErrInvalidDimensions, width, height)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.width == width && d.height == height && d.targetTex != nil {
		return nil
	}
	d.destroyTarget()

	tex, err := d.device.CreateTexture(&hal.TextureDescriptor{
		Label:         "hcal color target",
		Size:          hal.Extent3D{Width: width, Height: height, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        d.format,
		Usage:         gputypes.TextureUsageRenderAttachment | gputypes.TextureUsageCopySrc,
	})
	if err != nil {
		return fmt.Errorf("create color target: %w", err)
	}
	view, err := d.device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label: "hcal color target view",
	})
	if err != nil {
		d.device.DestroyTexture(tex)
		return fmt.Errorf("create color target view: %w", err)
	}
	d.targetTex, d.targetView = tex, view
	d.width, d.height = width, height
	return nil
}

// SetTargetView makes the next frames draw into view instead of the
// offscreen target. A nil view restores the offscreen target. The device
// does not take ownership of view.
func (d *Device) SetTargetView(view hal.TextureView) {
	d.mu.Lock()
	d.externalView = view
	d.mu.Unlock()
}

// Size returns the size of the offscreen target.
func (d *Device) Size() (width, height uint32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.width, d.height
}

func (d *Device) currentView() hal.TextureView {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.externalView != nil {
		return d.externalView
	}
	return d.targetView
}

type pass struct {
	rp hal.RenderPassEncoder
}

func (p pass) Draw(pl render.Pipeline, buf render.Buffer, vertexCount uint32) {
	rp, ok := pl.(*pipeline)
	if !ok {
		panic(fmt.Sprintf("gpu: foreign pipeline %T", pl))
	}
	b, ok := buf.(*buffer)
	if !ok {
		panic(fmt.Sprintf("gpu: foreign buffer %T", buf))
	}
	p.rp.SetPipeline(rp.raw)
	p.rp.SetVertexBuffer(0, b.raw, 0)
	p.rp.Draw(vertexCount, 1, 0, 0)
}

// Frame implements render.Device. It records one render pass clearing the
// target, submits it and waits for completion.
func (d *Device) Frame(clear gputypes.Color, record func(render.Pass) error) error {
	view := d.currentView()
	if view == nil {
		return ErrNoTarget
	}

	encoder, err := d.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: "hcal frame encoder",
	})
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("hcal frame"); err != nil {
		return fmt.Errorf("begin encoding: %w", err)
	}

	rp := encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: "hcal ui pass",
		ColorAttachments: []hal.RenderPassColorAttachment{{
			View:       view,
			LoadOp:     gputypes.LoadOpClear,
			StoreOp:    gputypes.StoreOpStore,
			ClearValue: clear,
		}},
	})
	recordErr := record(pass{rp: rp})
	rp.End()

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("end encoding: %w", err)
	}
	defer d.device.FreeCommandBuffer(cmdBuf)
	if recordErr != nil {
		return recordErr
	}

	fence, err := d.device.CreateFence()
	if err != nil {
		return fmt.Errorf("create fence: %w", err)
	}
	defer d.device.DestroyFence(fence)

	if err := d.queue.Submit([]hal.CommandBuffer{cmdBuf}, fence, 1); err != nil {
		return fmt.Errorf("submit: %w", err)
	}
	if err := waitResult(d.device.Wait(fence, 1, fenceTimeout)); err != nil {
		return err
	}

	d.mu.Lock()
	released := len(d.inflight)
	for _, b := range d.inflight {
		d.device.DestroyBuffer(b)
	}
	d.inflight, d.pending = d.pending, nil
	d.frames++
	n := d.frames
	d.mu.Unlock()

	hcal.Logger().Debug("gpu frame submitted", "frame", n, "released_buffers", released)
	return nil
}

// Stats returns resource counts.
func (d *Device) Stats() Stats {
	d.mu.Lock()
	defer d.mu.Unlock()
	return Stats{
		Frames:      d.frames,
		Pipelines:   len(d.pipelines),
		LiveBuffers: len(d.pending) + len(d.inflight),
	}
}

// Destroy releases all resources created by the device. The HAL device
// and queue stay with their owner.
func (d *Device) Destroy() {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, b := range d.pending {
		d.device.DestroyBuffer(b)
	}
	for _, b := range d.inflight {
		d.device.DestroyBuffer(b)
	}
	d.pending, d.inflight = nil, nil
	for _, p := range d.pipelines {
		d.device.DestroyRenderPipeline(p.raw)
		d.device.DestroyPipelineLayout(p.layout)
		d.device.DestroyShaderModule(p.module)
	}
	d.pipelines = nil
	d.destroyTarget()
}

// destroyTarget releases the offscreen target. d.mu must be held.
func (d *Device) destroyTarget() {
	if d.targetView != nil {
		d.device.DestroyTextureView(d.targetView)
		d.targetView = nil
	}
	if d.targetTex != nil {
		d.device.DestroyTexture(d.targetTex)
		d.targetTex = nil
	}
	d.width, d.height = 0, 0
}

// waitResult converts the result of a fence wait into an error.
func waitResult(ok bool, err error) error {
	switch {
	case err != nil:
		return fmt.Errorf("wait for GPU: %w", err)
	case !ok:
		return fmt.Errorf("%w after %v", ErrFrameTimeout, fenceTimeout)
	}
	return nil
}
