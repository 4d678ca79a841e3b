// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pathmesh

import (
	"math"
	"strings"
)

// VertexFormat is a bitmask of per-vertex attributes flowing through the
// rasterization protocol. The driver negotiates the format with the engine
// before building vertex buffers.
type VertexFormat uint32

const (
	// AttrNone selects no attributes.
	AttrNone VertexFormat = 0

	// AttrXY carries the device-space position.
	AttrXY VertexFormat = 1 << 0

	// AttrZ carries the depth component.
	AttrZ VertexFormat = 1 << 1

	// AttrDiffuse carries the diffuse color slot.
	AttrDiffuse VertexFormat = 1 << 2

	// AttrSpecular carries the specular color slot.
	AttrSpecular VertexFormat = 1 << 3

	// AttrUV1 carries the first texture coordinate pair.
	AttrUV1 VertexFormat = 1 << 4

	// AttrUV2 carries the second texture coordinate pair.
	AttrUV2 VertexFormat = 1 << 5
)

// CoverageSlot is the vertex attribute that carries antialiasing coverage.
// Engines write the coverage value's raw float bits into this slot.
const CoverageSlot = AttrDiffuse

// Has reports whether all attributes in q are present in f.
func (f VertexFormat) Has(q VertexFormat) bool {
	return f&q == q
}

// String returns the attribute names joined with "|", or "None".
func (f VertexFormat) String() string {
	if f == AttrNone {
		return "None"
	}
	var names []string
	for _, a := range [...]struct {
		bit  VertexFormat
		name string
	}{
		{AttrXY, "XY"},
		{AttrZ, "Z"},
		{AttrDiffuse, "Diffuse"},
		{AttrSpecular, "Specular"},
		{AttrUV1, "UV1"},
		{AttrUV2, "UV2"},
	} {
		if f.Has(a.bit) {
			names = append(names, a.name)
		}
	}
	return strings.Join(names, "|")
}

// DeviceVertex is the engine's device-space vertex record. Positions are
// relative to pixel corners. The Diffuse slot holds the antialiasing
// coverage as raw float32 bits when the format includes CoverageSlot.
type DeviceVertex struct {
	X, Y, Z float32
	Diffuse uint32
	U0, V0  float32
	U1, V1  float32
}

// OutputVertex is one vertex of the extracted coverage mesh: a pixel-center
// position and a coverage value in [0, 1].
type OutputVertex struct {
	X, Y     float32
	Coverage float32
}

// CoverageBits packs a coverage value into the Diffuse slot encoding.
func CoverageBits(c float32) uint32 {
	return math.Float32bits(c)
}

// ExtractVertices converts an engine vertex buffer into output vertices.
// Positions shift by +0.5 from pixel corners to pixel centers, and the
// coverage is recovered from the Diffuse slot by bit reinterpretation.
// A nil or empty buffer yields no vertices; that is a valid result, not
// an error.
func ExtractVertices(buf *VertexBuffer) []OutputVertex {
	if buf == nil || len(buf.Vertices) == 0 {
		return nil
	}
	out := make([]OutputVertex, len(buf.Vertices))
	for i, v := range buf.Vertices {
		out[i] = OutputVertex{
			X:        v.X + 0.5,
			Y:        v.Y + 0.5,
			Coverage: math.Float32frombits(v.Diffuse),
		}
	}
	return out
}
