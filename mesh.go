// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pathmesh

// Mesh interprets a vertex stream as a triangle strip and derives its
// faces. A stream of n vertices describes max(0, n-2) faces; consecutive
// faces alternate winding so that all come out with consistent orientation.
//
// Faces and vertex indices are 1-based, matching mesh interchange formats.
type Mesh struct {
	Vertices []OutputVertex
}

// NewMesh wraps a vertex stream in strip order.
func NewMesh(verts []OutputVertex) Mesh {
	return Mesh{Vertices: verts}
}

// FaceCount returns the number of triangles in the strip.
func (m Mesh) FaceCount() int {
	if len(m.Vertices) < 3 {
		return 0
	}
	return len(m.Vertices) - 2
}

// Face returns the 1-based vertex indices of face n, for n in
// [1, FaceCount()]. Odd-numbered faces run (n, n+1, n+2); even-numbered
// faces swap the leading pair to keep the winding consistent.
func (m Mesh) Face(n int) [3]int {
	if n%2 == 1 {
		return [3]int{n, n + 1, n + 2}
	}
	return [3]int{n + 1, n, n + 2}
}

// Faces returns all faces of the strip in order.
func (m Mesh) Faces() [][3]int {
	count := m.FaceCount()
	if count == 0 {
		return nil
	}
	faces := make([][3]int, count)
	for i := range faces {
		faces[i] = m.Face(i + 1)
	}
	return faces
}
