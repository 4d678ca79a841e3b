// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package gpu uploads coverage meshes to a wgpu device.
//
// The package covers what a renderer needs to draw an extracted triangle
// strip: packing pathmesh.OutputVertex streams into tightly packed vertex
// records, creating and filling vertex buffers through wgpu/hal, the
// matching vertex buffer layout, and the bundled WGSL coverage shader
// compiled to SPIR-V with naga. Pipelines, render passes, and presentation
// stay with the caller.
//
// Buffers use a shared device, typically obtained from a
// gpucontext.DeviceProvider:
//
//	device, queue, err := gpu.DeviceFromProvider(provider)
//	if err != nil { ... }
//	buf, n, err := gpu.UploadStrip(device, queue, verts, "glyph_mesh")
//	if err != nil { ... }
//	defer gpu.ReleaseStrip(device, buf)
//
// A strip of n vertices draws with a triangle-strip topology and n as the
// vertex count; coverage arrives in the fragment stage through location 1.
package gpu

import (
	_ "embed"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga"
	"github.com/gogpu/pathmesh"
	"github.com/gogpu/wgpu/hal"
)

//go:embed shaders/mesh.wgsl
var meshShaderSource string

// StripVertexStride is the byte stride per vertex in the strip buffer.
// Layout per vertex:
//
//	position (vec2<f32>) = 8 bytes (location 0)
//	coverage (f32)       = 4 bytes (location 1)
//
// Total = 12 bytes per vertex.
const StripVertexStride = 12

// StripVertex is the upload record for one mesh vertex: a device-space
// pixel-center position and its antialiasing coverage. The fields mirror
// pathmesh.OutputVertex; the type pins the packed GPU layout.
type StripVertex struct {
	X, Y     float32
	Coverage float32
}

// PackStrip packs output vertices into little-endian vertex data ready for
// WriteBuffer. Returns nil for an empty mesh.
func PackStrip(verts []pathmesh.OutputVertex) []byte {
	if len(verts) == 0 {
		return nil
	}
	buf := make([]byte, len(verts)*StripVertexStride)
	offset := 0
	for i := range verts {
		v := &verts[i]
		binary.LittleEndian.PutUint32(buf[offset:offset+4], math.Float32bits(v.X))
		binary.LittleEndian.PutUint32(buf[offset+4:offset+8], math.Float32bits(v.Y))
		binary.LittleEndian.PutUint32(buf[offset+8:offset+12], math.Float32bits(v.Coverage))
		offset += StripVertexStride
	}
	return buf
}

// VertexLayout returns the vertex buffer layout for the strip pipeline.
func VertexLayout() gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: StripVertexStride,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0}, // position
			{Format: gputypes.VertexFormatFloat32, Offset: 8, ShaderLocation: 1},   // coverage
		},
	}
}

// UploadStrip creates a vertex buffer holding the packed strip and writes
// the vertex data through the queue. The returned count is the number of
// vertices in the buffer. An empty strip returns (nil, 0, nil); drawing
// nothing is a valid outcome, not an error. Release the buffer with
// ReleaseStrip when done.
func UploadStrip(device hal.Device, queue hal.Queue, verts []pathmesh.OutputVertex, label string) (hal.Buffer, int, error) {
	data := PackStrip(verts)
	if len(data) == 0 {
		return nil, 0, nil
	}
	if label == "" {
		label = "pathmesh_strip"
	}
	buf, err := device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  uint64(len(data)),
		Usage: gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("gpu: create %s: %w", label, err)
	}
	queue.WriteBuffer(buf, 0, data)
	return buf, len(verts), nil
}

// ReleaseStrip destroys a buffer returned by UploadStrip. Safe to call with
// a nil buffer or nil device.
func ReleaseStrip(device hal.Device, buf hal.Buffer) {
	if device == nil || buf == nil {
		return
	}
	device.DestroyBuffer(buf)
}

// DeviceFromProvider extracts the HAL device and queue from a shared GPU
// context. The provider must additionally implement HalDevice() any and
// HalQueue() any returning hal.Device and hal.Queue, the convention the
// gogpu libraries use for device sharing.
func DeviceFromProvider(provider gpucontext.DeviceProvider) (hal.Device, hal.Queue, error) {
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, nil, fmt.Errorf("gpu: provider does not expose HAL types")
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, nil, fmt.Errorf("gpu: provider HalDevice is not hal.Device")
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, nil, fmt.Errorf("gpu: provider HalQueue is not hal.Queue")
	}
	return device, queue, nil
}

// MeshShaderSource returns the bundled WGSL coverage shader. The vertex
// stage maps pixel positions to clip space through the MeshParams viewport;
// the fragment stage multiplies the fill color by the interpolated coverage.
func MeshShaderSource() string {
	return meshShaderSource
}

// MeshParamsSize is the byte size of the shader's MeshParams uniform block,
// including WGSL struct padding.
const MeshParamsSize = 32

// PackMeshParams packs the MeshParams uniform block: a premultiplied RGBA
// fill color followed by the viewport size in device pixels. The returned
// slice is MeshParamsSize bytes (the trailing 8 bytes are struct padding).
func PackMeshParams(viewportW, viewportH float32, color [4]float32) []byte {
	buf := make([]byte, MeshParamsSize)
	for i, c := range color {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(c))
	}
	binary.LittleEndian.PutUint32(buf[16:], math.Float32bits(viewportW))
	binary.LittleEndian.PutUint32(buf[20:], math.Float32bits(viewportH))
	return buf
}

// CompileMeshShader compiles the bundled WGSL coverage shader to SPIR-V
// words. SPIR-V is little-endian 32-bit words.
func CompileMeshShader() ([]uint32, error) {
	if meshShaderSource == "" {
		return nil, fmt.Errorf("gpu: mesh shader source is empty")
	}
	spirvBytes, err := naga.Compile(meshShaderSource)
	if err != nil {
		return nil, fmt.Errorf("gpu: compile mesh shader: %w", err)
	}
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return words, nil
}

// NewMeshShaderModule compiles the coverage shader and creates a HAL shader
// module from the SPIR-V words.
func NewMeshShaderModule(device hal.Device) (hal.ShaderModule, error) {
	words, err := CompileMeshShader()
	if err != nil {
		return nil, err
	}
	module, err := device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "pathmesh_strip_shader",
		Source: hal.ShaderSource{SPIRV: words},
	})
	if err != nil {
		return nil, fmt.Errorf("gpu: create mesh shader module: %w", err)
	}
	return module, nil
}
