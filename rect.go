// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pathmesh

import (
	"fmt"
	"math"
)

// Rect is an axis-aligned bounding rectangle in authoring or device space.
type Rect struct {
	MinX, MinY float32
	MaxX, MaxY float32
}

// EmptyRect returns an empty rectangle (inverted bounds for union operations).
func EmptyRect() Rect {
	return Rect{
		MinX: math.MaxFloat32,
		MinY: math.MaxFloat32,
		MaxX: -math.MaxFloat32,
		MaxY: -math.MaxFloat32,
	}
}

// IsEmpty returns true if the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.MinX >= r.MaxX || r.MinY >= r.MaxY
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		MinX: min(r.MinX, other.MinX),
		MinY: min(r.MinY, other.MinY),
		MaxX: max(r.MaxX, other.MaxX),
		MaxY: max(r.MaxY, other.MaxY),
	}
}

// UnionPoint expands the rectangle to include the point.
func (r Rect) UnionPoint(x, y float32) Rect {
	return Rect{
		MinX: min(r.MinX, x),
		MinY: min(r.MinY, y),
		MaxX: max(r.MaxX, x),
		MaxY: max(r.MaxY, y),
	}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float32 {
	if r.IsEmpty() {
		return 0
	}
	return r.MaxX - r.MinX
}

// Height returns the height of the rectangle.
func (r Rect) Height() float32 {
	if r.IsEmpty() {
		return 0
	}
	return r.MaxY - r.MinY
}

// ClipRect is an integral device-space clip rectangle. The driver passes it
// to the engine verbatim; clipping policy belongs to the engine.
type ClipRect struct {
	X, Y          int32
	Width, Height int32
}

// Empty reports whether the clip encloses no pixels.
func (c ClipRect) Empty() bool {
	return c.Width <= 0 || c.Height <= 0
}

// String returns the clip in "x,y wxh" form.
func (c ClipRect) String() string {
	return fmt.Sprintf("%d,%d %dx%d", c.X, c.Y, c.Width, c.Height)
}
