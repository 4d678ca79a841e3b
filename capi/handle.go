// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// The handle surface backs the C ABI exports in capi.go; the package only
// links as a cgo c-archive/c-shared artifact, so keep it out of nocgo builds.

//go:build cgo

package main

import (
	"runtime/cgo"

	"github.com/gogpu/pathmesh"
	"github.com/gogpu/pathmesh/obj"
)

// Status codes shared with pathmesh_abi.h. Keep the two lists in sync.
const (
	statusOK        = 0
	statusRasterize = 1
	statusAlloc     = 2
	statusBadArg    = 3
	statusIO        = 4
)

// newBuilderHandle allocates a path builder behind an opaque handle. The
// builder rasterizes through the process's default registered engine.
func newBuilderHandle() uintptr {
	return uintptr(cgo.NewHandle(pathmesh.NewPathBuilder()))
}

// lookupBuilder resolves a handle to its builder. Zero, stale, and foreign
// handles yield ok=false; Value panics on a stale handle, and the recover
// turns that into a bad-handle report instead of a crash.
func lookupBuilder(h uintptr) (b *pathmesh.PathBuilder, ok bool) {
	if h == 0 {
		return nil, false
	}
	defer func() {
		if recover() != nil {
			b, ok = nil, false
		}
	}()
	b, ok = cgo.Handle(h).Value().(*pathmesh.PathBuilder)
	return b, ok && b != nil
}

// deleteBuilderHandle releases a handle. Unknown handles are ignored; using
// a handle after deleting it reports a bad handle.
func deleteBuilderHandle(h uintptr) {
	if _, ok := lookupBuilder(h); !ok {
		return
	}
	cgo.Handle(h).Delete()
}

func builderMoveTo(h uintptr, x, y float32) {
	if b, ok := lookupBuilder(h); ok {
		b.MoveTo(x, y)
	}
}

func builderLineTo(h uintptr, x, y float32) {
	if b, ok := lookupBuilder(h); ok {
		b.LineTo(x, y)
	}
}

func builderCurveTo(h uintptr, x1, y1, x2, y2, x3, y3 float32) {
	if b, ok := lookupBuilder(h); ok {
		b.CurveTo(x1, y1, x2, y2, x3, y3)
	}
}

func builderClose(h uintptr) {
	if b, ok := lookupBuilder(h); ok {
		b.Close()
	}
}

// builderSetFillMode applies a fill mode by wire value. Values outside the
// defined modes are ignored, matching the lenient authoring surface.
func builderSetFillMode(h uintptr, mode int) {
	b, ok := lookupBuilder(h)
	if !ok {
		return
	}
	switch mode {
	case int(pathmesh.FillAlternate):
		b.FillMode(pathmesh.FillAlternate)
	case int(pathmesh.FillWinding):
		b.FillMode(pathmesh.FillWinding)
	}
}

// builderRasterize runs the rasterization protocol for the handle's path.
// An empty mesh comes back as (nil, statusOK); every engine-side failure,
// including a missing engine, reports statusRasterize.
func builderRasterize(h uintptr, clip pathmesh.ClipRect) ([]pathmesh.OutputVertex, int) {
	b, ok := lookupBuilder(h)
	if !ok {
		return nil, statusBadArg
	}
	verts, err := b.Rasterize(clip)
	if err != nil {
		return nil, statusRasterize
	}
	return verts, statusOK
}

// builderWriteObj writes a previously produced vertex buffer as OBJ text.
func builderWriteObj(h uintptr, path string, verts []pathmesh.OutputVertex) int {
	if _, ok := lookupBuilder(h); !ok {
		return statusBadArg
	}
	if err := obj.Save(path, verts); err != nil {
		return statusIO
	}
	return statusOK
}
