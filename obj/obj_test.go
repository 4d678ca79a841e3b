// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package obj

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/pathmesh"
	"github.com/gogpu/pathmesh/enginetest"
)

func TestEncode(t *testing.T) {
	verts := []pathmesh.OutputVertex{
		{X: 10.5, Y: 20.5, Coverage: 0.75},
		{X: 30.5, Y: 20.5, Coverage: 1},
		{X: 10.5, Y: 40.5, Coverage: 0.5},
		{X: 30.5, Y: 40.5, Coverage: 0.25},
		{X: 50.5, Y: 40.5, Coverage: 0},
	}
	want := `v 10.5 20.5 0 0.75 0.75 0.75
v 30.5 20.5 0 1 1 1
v 10.5 40.5 0 0.5 0.5 0.5
v 30.5 40.5 0 0.25 0.25 0.25
v 50.5 40.5 0 0 0 0
f 1 2 3
f 3 2 4
f 3 4 5
`

	var sb strings.Builder
	if err := Encode(&sb, verts); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if got := sb.String(); got != want {
		t.Errorf("Encode() =\n%s\nwant\n%s", got, want)
	}
}

func TestEncodeShortStrip(t *testing.T) {
	verts := []pathmesh.OutputVertex{
		{X: 1, Y: 2, Coverage: 1},
		{X: 3, Y: 4, Coverage: 1},
	}

	var sb strings.Builder
	if err := Encode(&sb, verts); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	got := sb.String()
	if strings.Contains(got, "f ") {
		t.Errorf("Encode() emitted faces for a two-vertex strip:\n%s", got)
	}
	if want := "v 1 2 0 1 1 1\nv 3 4 0 1 1 1\n"; got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestEncodeEmpty(t *testing.T) {
	var sb strings.Builder
	if err := Encode(&sb, nil); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if got := sb.String(); got != "" {
		t.Errorf("Encode() = %q, want empty", got)
	}
}

type failWriter struct {
	err error
}

func (w failWriter) Write(p []byte) (int, error) {
	return 0, w.err
}

func TestEncodeWriterError(t *testing.T) {
	sink := errors.New("sink closed")
	verts := []pathmesh.OutputVertex{{X: 1, Y: 2, Coverage: 1}}

	err := Encode(failWriter{err: sink}, verts)
	if err == nil {
		t.Fatal("Encode() error = nil, want write failure")
	}
	if !errors.Is(err, sink) {
		t.Errorf("Encode() error = %v, want wrapped %v", err, sink)
	}
}

func TestSave(t *testing.T) {
	verts := []pathmesh.OutputVertex{
		{X: 0, Y: 0, Coverage: 1},
		{X: 4, Y: 0, Coverage: 1},
		{X: 0, Y: 4, Coverage: 1},
	}
	path := filepath.Join(t.TempDir(), "mesh.obj")

	if err := Save(path, verts); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	want := "v 0 0 0 1 1 1\nv 4 0 0 1 1 1\nv 0 4 0 1 1 1\nf 1 2 3\n"
	if string(data) != want {
		t.Errorf("Save() wrote %q, want %q", string(data), want)
	}
}

func TestSaveBadPath(t *testing.T) {
	err := Save(filepath.Join(t.TempDir(), "missing", "mesh.obj"), nil)
	if err == nil {
		t.Fatal("Save() error = nil, want create failure")
	}
}

func TestEncodeRasterizedPath(t *testing.T) {
	b := pathmesh.NewPathBuilder(pathmesh.WithEngine(&enginetest.BoundsEngine{}))
	verts, err := b.Rectangle(10, 10, 20, 20).Rasterize(pathmesh.ClipRect{Width: 64, Height: 64})
	if err != nil {
		t.Fatalf("Rasterize() error = %v", err)
	}

	var sb strings.Builder
	if err := Encode(&sb, verts); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	want := `v 10.5 10.5 0 1 1 1
v 30.5 10.5 0 1 1 1
v 10.5 30.5 0 1 1 1
v 30.5 30.5 0 1 1 1
f 1 2 3
f 3 2 4
`
	if got := sb.String(); got != want {
		t.Errorf("Encode() =\n%s\nwant\n%s", got, want)
	}
}
