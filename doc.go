// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package pathmesh converts authored vector paths into device-space
// triangle-strip meshes with per-vertex antialiasing coverage.
//
// # Overview
//
// pathmesh is the authoring boundary in front of a hardware rasterization
// engine. It owns the path data model (points tagged with per-point kinds),
// drives the engine through a fixed rasterization protocol, and converts the
// engine's vertex buffer into a stream of output vertices that carry a
// pixel-center position and a coverage value in [0, 1]. The engine itself
// (curve flattening, fill rules, coverage computation) lives behind the
// [Engine] interface and is supplied by a backend package.
//
// # Quick Start
//
//	import "github.com/gogpu/pathmesh"
//
//	// Author a path with the fluent builder.
//	b := pathmesh.NewPathBuilder(pathmesh.WithEngine(engine))
//	b.MoveTo(10, 10).LineTo(30, 10).LineTo(10, 30).Close()
//
//	// Rasterize against a device clip.
//	verts, err := b.Rasterize(pathmesh.ClipRect{Width: 64, Height: 64})
//
//	// Walk the triangle strip.
//	mesh := pathmesh.NewMesh(verts)
//	for _, f := range mesh.Faces() {
//	    // f holds three 1-based vertex indices.
//	}
//
// # Architecture
//
// The library is organized into:
//   - Public API: Path, PathBuilder, Driver, Mesh, the Engine contract
//   - obj/: Wavefront OBJ export of coverage meshes
//   - svgpath/: SVG path-data parsing into Path
//   - gpu/: vertex layout, buffer upload and shader compilation for
//     consuming meshes with gogpu/wgpu
//   - enginetest/: in-memory engines for tests and examples
//   - capi/: C ABI exposing the builder handle to non-Go hosts
//
// # Coordinate System
//
// Authoring space is untransformed user coordinates. The driver hands the
// engine a world-to-device transform; engine output is device space with
// positions relative to pixel corners. Extraction shifts positions by +0.5
// so output vertices sit on pixel centers.
package pathmesh

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
