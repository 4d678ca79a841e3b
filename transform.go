// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pathmesh

import (
	"github.com/chewxy/math32"
	"golang.org/x/image/math/f32"
)

// Transform maps authoring space to device space. It wraps a row-major 2x3
// affine matrix ([f32.Aff3]):
//
//	| A  B  C |    x' = A*x + B*y + C
//	| D  E  F |    y' = D*x + E*y + F
type Transform f32.Aff3

// Identity returns the identity transformation.
func Identity() Transform {
	return Transform{1, 0, 0, 0, 1, 0}
}

// Translate creates a translation transformation.
func Translate(x, y float32) Transform {
	return Transform{1, 0, x, 0, 1, y}
}

// Scale creates a scaling transformation about the origin.
func Scale(sx, sy float32) Transform {
	return Transform{sx, 0, 0, 0, sy, 0}
}

// Rotate creates a rotation by angle radians about the origin.
func Rotate(angle float32) Transform {
	sin, cos := math32.Sincos(angle)
	return Transform{cos, -sin, 0, sin, cos, 0}
}

// Mul returns the composition t*u: u is applied first, then t.
func (t Transform) Mul(u Transform) Transform {
	return Transform{
		t[0]*u[0] + t[1]*u[3],
		t[0]*u[1] + t[1]*u[4],
		t[0]*u[2] + t[1]*u[5] + t[2],
		t[3]*u[0] + t[4]*u[3],
		t[3]*u[1] + t[4]*u[4],
		t[3]*u[2] + t[4]*u[5] + t[5],
	}
}

// Apply transforms a point.
func (t Transform) Apply(p Point) Point {
	return Point{
		X: t[0]*p.X + t[1]*p.Y + t[2],
		Y: t[3]*p.X + t[4]*p.Y + t[5],
	}
}

// IsIdentity reports whether the transform leaves points unchanged.
func (t Transform) IsIdentity() bool {
	return t == Identity()
}

// Aff3 returns the transform as an [f32.Aff3] matrix.
func (t Transform) Aff3() f32.Aff3 {
	return f32.Aff3(t)
}
