// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pathmesh

import (
	"math"
	"testing"
)

func TestExtractVertices(t *testing.T) {
	buf := &VertexBuffer{
		Format: AttrXY | AttrDiffuse,
		Vertices: []DeviceVertex{
			{X: 10, Y: 20, Diffuse: math.Float32bits(0.75)},
		},
	}

	out := ExtractVertices(buf)
	if len(out) != 1 {
		t.Fatalf("len = %d, want 1", len(out))
	}
	got := out[0]
	if got.X != 10.5 || got.Y != 20.5 {
		t.Errorf("position = (%v, %v), want (10.5, 20.5)", got.X, got.Y)
	}
	if got.Coverage != 0.75 {
		t.Errorf("coverage = %v, want 0.75", got.Coverage)
	}
}

func TestExtractVerticesBitReinterpretation(t *testing.T) {
	// The diffuse slot carries raw float bits; a numeric conversion of the
	// integer value would give a wildly different coverage.
	bits := math.Float32bits(1.0) // 0x3F800000
	buf := &VertexBuffer{Vertices: []DeviceVertex{{Diffuse: bits}}}

	out := ExtractVertices(buf)
	if out[0].Coverage != 1.0 {
		t.Errorf("coverage = %v, want 1.0", out[0].Coverage)
	}
}

func TestExtractVerticesEmpty(t *testing.T) {
	if got := ExtractVertices(nil); len(got) != 0 {
		t.Errorf("ExtractVertices(nil) len = %d, want 0", len(got))
	}
	if got := ExtractVertices(&VertexBuffer{}); len(got) != 0 {
		t.Errorf("ExtractVertices(empty) len = %d, want 0", len(got))
	}
}

func TestCoverageBitsRoundTrip(t *testing.T) {
	for _, c := range []float32{0, 0.25, 0.5, 0.75, 1} {
		buf := &VertexBuffer{Vertices: []DeviceVertex{{Diffuse: CoverageBits(c)}}}
		out := ExtractVertices(buf)
		if out[0].Coverage != c {
			t.Errorf("coverage round trip = %v, want %v", out[0].Coverage, c)
		}
	}
}

func TestVertexFormatHas(t *testing.T) {
	f := AttrXY | AttrDiffuse
	if !f.Has(AttrXY) {
		t.Error("Has(AttrXY) = false")
	}
	if !f.Has(AttrXY | AttrDiffuse) {
		t.Error("Has(AttrXY|AttrDiffuse) = false")
	}
	if f.Has(AttrUV1) {
		t.Error("Has(AttrUV1) = true")
	}
	if !f.Has(AttrNone) {
		t.Error("Has(AttrNone) = false, want true for any format")
	}
}

func TestVertexFormatString(t *testing.T) {
	tests := []struct {
		f    VertexFormat
		want string
	}{
		{AttrNone, "None"},
		{AttrXY, "XY"},
		{AttrXY | AttrDiffuse, "XY|Diffuse"},
		{AttrXY | AttrZ | AttrUV2, "XY|Z|UV2"},
	}
	for _, tt := range tests {
		if got := tt.f.String(); got != tt.want {
			t.Errorf("VertexFormat(%#x).String() = %q, want %q", uint32(tt.f), got, tt.want)
		}
	}
}

func TestCoverageSlotIsDiffuse(t *testing.T) {
	if CoverageSlot != AttrDiffuse {
		t.Errorf("CoverageSlot = %v, want AttrDiffuse", CoverageSlot)
	}
}
