// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command capi exports the pathmesh authoring handle as a stable C ABI.
//
// Build it as a C library:
//
//	go build -buildmode=c-shared -o libpathmesh.so ./capi
//	go build -buildmode=c-archive -o libpathmesh.a ./capi
//
// The C surface is declared in pathmesh_abi.h; the generated header adds
// prototypes for the exported entry points. Callers author a path through
// an opaque handle and receive a malloc'd triangle-strip vertex array that
// they release with pathmesh_free_vertices:
//
//	uintptr_t h = pathmesh_new();
//	pathmesh_move_to(h, 10, 10);
//	pathmesh_line_to(h, 90, 10);
//	pathmesh_line_to(h, 50, 80);
//	pathmesh_close(h);
//	pathmesh_vertex *verts; size_t n;
//	int rc = pathmesh_rasterize(h, 0, 0, 128, 128, &verts, &n);
//	...
//	pathmesh_free_vertices(verts);
//	pathmesh_delete(h);
//
// A rasterization engine must be registered in the Go side of the binary
// (blank import of a backend package, or an explicit RegisterEngine call)
// before pathmesh_rasterize runs; without one it reports
// PATHMESH_ERR_RASTERIZE.
//
// Handles are not safe for concurrent use. Callers serialize access to each
// handle, the same contract as the Go PathBuilder.
package main

/*
#include <stdint.h>
#include <stdlib.h>
#include "pathmesh_abi.h"
*/
import "C"

import (
	"unsafe"

	"github.com/gogpu/pathmesh"
)

//export pathmesh_new
func pathmesh_new() C.uintptr_t {
	return C.uintptr_t(newBuilderHandle())
}

//export pathmesh_delete
func pathmesh_delete(h C.uintptr_t) {
	deleteBuilderHandle(uintptr(h))
}

//export pathmesh_move_to
func pathmesh_move_to(h C.uintptr_t, x, y C.float) {
	builderMoveTo(uintptr(h), float32(x), float32(y))
}

//export pathmesh_line_to
func pathmesh_line_to(h C.uintptr_t, x, y C.float) {
	builderLineTo(uintptr(h), float32(x), float32(y))
}

//export pathmesh_curve_to
func pathmesh_curve_to(h C.uintptr_t, x1, y1, x2, y2, x3, y3 C.float) {
	builderCurveTo(uintptr(h),
		float32(x1), float32(y1),
		float32(x2), float32(y2),
		float32(x3), float32(y3))
}

//export pathmesh_close
func pathmesh_close(h C.uintptr_t) {
	builderClose(uintptr(h))
}

//export pathmesh_set_fill_mode
func pathmesh_set_fill_mode(h C.uintptr_t, mode C.int) {
	builderSetFillMode(uintptr(h), int(mode))
}

//export pathmesh_rasterize
func pathmesh_rasterize(h C.uintptr_t, clipX, clipY, clipWidth, clipHeight C.int32_t, outVerts **C.pathmesh_vertex, outLen *C.size_t) C.int {
	if outVerts == nil || outLen == nil {
		return C.int(statusBadArg)
	}
	*outVerts = nil
	*outLen = 0

	clip := pathmesh.ClipRect{
		X:      int32(clipX),
		Y:      int32(clipY),
		Width:  int32(clipWidth),
		Height: int32(clipHeight),
	}
	verts, status := builderRasterize(uintptr(h), clip)
	if status != statusOK || len(verts) == 0 {
		return C.int(status)
	}

	p := C.pathmesh_alloc(C.size_t(len(verts)) * C.sizeof_pathmesh_vertex)
	if p == nil {
		return C.int(statusAlloc)
	}
	out := unsafe.Slice((*C.pathmesh_vertex)(p), len(verts))
	for i, v := range verts {
		out[i] = C.pathmesh_vertex{
			x:        C.float(v.X),
			y:        C.float(v.Y),
			coverage: C.float(v.Coverage),
		}
	}
	*outVerts = (*C.pathmesh_vertex)(p)
	*outLen = C.size_t(len(verts))
	return C.int(statusOK)
}

//export pathmesh_free_vertices
func pathmesh_free_vertices(verts *C.pathmesh_vertex) {
	if verts != nil {
		C.free(unsafe.Pointer(verts))
	}
}

//export pathmesh_write_obj
func pathmesh_write_obj(h C.uintptr_t, path *C.char, verts *C.pathmesh_vertex, length C.size_t) C.int {
	if path == nil || (verts == nil && length != 0) {
		return C.int(statusBadArg)
	}
	mesh := make([]pathmesh.OutputVertex, int(length))
	if length > 0 {
		in := unsafe.Slice(verts, int(length))
		for i := range in {
			mesh[i] = pathmesh.OutputVertex{
				X:        float32(in[i].x),
				Y:        float32(in[i].y),
				Coverage: float32(in[i].coverage),
			}
		}
	}
	return C.int(builderWriteObj(uintptr(h), C.GoString(path), mesh))
}

// main never runs; it satisfies the c-archive and c-shared build modes.
func main() {}
