// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pathmesh

// Point represents a position in authoring space.
type Point struct {
	X, Y float32
}

// Pt is a convenience function to create a Point.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// PointKind tags one path point with its role in the figure. The values are
// the wire encoding consumed by rasterization engines: the low three bits
// carry the segment type, the high bit marks a point that also closes its
// figure.
type PointKind uint8

const (
	// KindStart begins a new figure.
	KindStart PointKind = 0x00

	// KindLine continues the figure with a straight segment to this point.
	KindLine PointKind = 0x01

	// KindBezier is one of three consecutive control points of a cubic
	// Bezier segment. Control points always appear in groups of three.
	KindBezier PointKind = 0x03

	// KindCloseSubpath flags a point that also closes its figure.
	// It is combined with a segment type, normally KindLine.
	KindCloseSubpath PointKind = 0x80

	// kindTypeMask extracts the segment type from a kind byte.
	kindTypeMask PointKind = 0x07
)

// Type returns the segment type with the close flag stripped.
func (k PointKind) Type() PointKind {
	return k & kindTypeMask
}

// ClosesSubpath reports whether this point also closes its figure.
func (k PointKind) ClosesSubpath() bool {
	return k&KindCloseSubpath != 0
}

// String returns a human-readable name for the kind.
func (k PointKind) String() string {
	var s string
	switch k.Type() {
	case KindStart:
		s = "Start"
	case KindLine:
		s = "Line"
	case KindBezier:
		s = "Bezier"
	default:
		s = "Unknown"
	}
	if k.ClosesSubpath() {
		s += "|Close"
	}
	return s
}

// FillMode selects how overlapping figures determine the filled region.
type FillMode uint8

const (
	// FillAlternate fills using the even-odd rule. This is the default.
	FillAlternate FillMode = iota

	// FillWinding fills using the non-zero winding rule.
	FillWinding
)

// String returns a human-readable name for the fill mode.
func (m FillMode) String() string {
	switch m {
	case FillAlternate:
		return "Alternate"
	case FillWinding:
		return "Winding"
	default:
		return "Unknown"
	}
}
