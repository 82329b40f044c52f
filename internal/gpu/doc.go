// Package gpu implements render.Device on top of the wgpu HAL.
//
// The device draws into a single color target per frame. By default that is
// an offscreen texture owned by the device and sized by Resize; a host that
// presents to a surface installs the surface view for each frame with
// SetTargetView.
//
// WGSL shaders are compiled to SPIR-V with naga before they reach the HAL.
// Every frame is submitted with a fence and waited on, so a frame's vertex
// buffers can be released once the following frame has been submitted.
//
// Tests and headless drivers run the device on the noop backend
// (github.com/gogpu/wgpu/hal/noop).
package gpu
