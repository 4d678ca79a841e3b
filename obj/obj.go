// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package obj exports coverage meshes as Wavefront OBJ text.
//
// Each vertex becomes a "v x y 0 c c c" line: positions on the device-space
// pixel grid, z fixed at zero, and the antialiasing coverage replicated into
// the RGB vertex-color channels so coverage is visible as grayscale in any
// OBJ viewer. Faces follow the triangle-strip derivation of pathmesh.Mesh,
// one "f a b c" line per triangle with 1-based indices.
package obj

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gogpu/pathmesh"
)

// Encode writes the vertex stream to w in OBJ form. A stream of fewer than
// three vertices produces vertex lines but no faces.
func Encode(w io.Writer, verts []pathmesh.OutputVertex) error {
	bw := bufio.NewWriter(w)
	for _, v := range verts {
		c := ftoa(v.Coverage)
		if _, err := fmt.Fprintf(bw, "v %s %s 0 %s %s %s\n", ftoa(v.X), ftoa(v.Y), c, c, c); err != nil {
			return fmt.Errorf("obj: write vertex: %w", err)
		}
	}
	for _, face := range pathmesh.NewMesh(verts).Faces() {
		if _, err := fmt.Fprintf(bw, "f %d %d %d\n", face[0], face[1], face[2]); err != nil {
			return fmt.Errorf("obj: write face: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("obj: flush: %w", err)
	}
	return nil
}

// Save writes the vertex stream as an OBJ file at path.
func Save(path string, verts []pathmesh.OutputVertex) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("obj: create file: %w", err)
	}

	if err := Encode(f, verts); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// ftoa formats a coordinate with the shortest representation that parses
// back to the same float32.
func ftoa(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}
