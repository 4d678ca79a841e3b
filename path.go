// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pathmesh

// Path is an authored vector path. It stores positions and per-point kinds
// in two parallel slices that always have equal length: element i of the
// kind stream describes element i of the point stream.
//
// The authoring operations are deliberately lenient. Out-of-order calls
// (LineTo before any MoveTo, Close with no open figure) never fail; the
// stream is recorded as authored and sequencing is the engine's concern.
//
// Path is not safe for concurrent use.
type Path struct {
	points []Point
	kinds  []PointKind

	fillMode FillMode

	// Current figure state for Close.
	hasInitial bool
	initial    Point

	bounds  Rect
	figures int
}

// NewPath creates a new empty path with the default Alternate fill mode.
func NewPath() *Path {
	return &Path{
		points: make([]Point, 0, 16),
		kinds:  make([]PointKind, 0, 16),
		bounds: EmptyRect(),
	}
}

// Reset clears the path for reuse without deallocating memory.
// The fill mode is kept.
func (p *Path) Reset() {
	p.points = p.points[:0]
	p.kinds = p.kinds[:0]
	p.hasInitial = false
	p.initial = Point{}
	p.bounds = EmptyRect()
	p.figures = 0
}

// MoveTo begins a new figure at (x, y). The point becomes the figure's
// initial point, which a later Close returns to.
func (p *Path) MoveTo(x, y float32) {
	p.points = append(p.points, Point{X: x, Y: y})
	p.kinds = append(p.kinds, KindStart)
	p.initial = Point{X: x, Y: y}
	p.hasInitial = true
	p.bounds = p.bounds.UnionPoint(x, y)
	p.figures++
}

// LineTo continues the current figure with a straight segment to (x, y).
func (p *Path) LineTo(x, y float32) {
	p.points = append(p.points, Point{X: x, Y: y})
	p.kinds = append(p.kinds, KindLine)
	p.bounds = p.bounds.UnionPoint(x, y)
}

// CurveTo continues the current figure with a cubic Bezier segment.
// (x1, y1) and (x2, y2) are the control points, (x3, y3) the endpoint.
// All three points are appended atomically with KindBezier tags.
func (p *Path) CurveTo(x1, y1, x2, y2, x3, y3 float32) {
	p.points = append(p.points,
		Point{X: x1, Y: y1},
		Point{X: x2, Y: y2},
		Point{X: x3, Y: y3},
	)
	p.kinds = append(p.kinds, KindBezier, KindBezier, KindBezier)
	p.bounds = p.bounds.UnionPoint(x1, y1)
	p.bounds = p.bounds.UnionPoint(x2, y2)
	p.bounds = p.bounds.UnionPoint(x3, y3)
}

// Close closes the current figure by appending its initial point tagged as
// a closing line segment. With no open figure, Close is a no-op: calling it
// on an empty path or twice in a row records nothing.
func (p *Path) Close() {
	if !p.hasInitial {
		return
	}
	p.points = append(p.points, p.initial)
	p.kinds = append(p.kinds, KindLine|KindCloseSubpath)
	p.hasInitial = false
}

// SetFillMode selects the fill rule the engine applies to this path.
func (p *Path) SetFillMode(m FillMode) {
	p.fillMode = m
}

// FillMode returns the fill rule for this path.
func (p *Path) FillMode() FillMode {
	return p.fillMode
}

// Points returns the point stream. The slice is a view over the path's
// backing array, not a copy.
func (p *Path) Points() []Point {
	return p.points
}

// Kinds returns the kind stream. The slice is a view over the path's
// backing array, not a copy.
func (p *Path) Kinds() []PointKind {
	return p.kinds
}

// Len returns the number of points in the path.
func (p *Path) Len() int {
	return len(p.points)
}

// IsEmpty returns true if the path has no points.
func (p *Path) IsEmpty() bool {
	return len(p.points) == 0
}

// FigureCount returns the number of figures the path has started.
func (p *Path) FigureCount() int {
	return p.figures
}

// Bounds returns the bounding rectangle of the path's points.
// Bezier control points are included, so this is a conservative
// approximation of the drawn extent.
func (p *Path) Bounds() Rect {
	return p.bounds
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := &Path{
		points:     make([]Point, len(p.points)),
		kinds:      make([]PointKind, len(p.kinds)),
		fillMode:   p.fillMode,
		hasInitial: p.hasInitial,
		initial:    p.initial,
		bounds:     p.bounds,
		figures:    p.figures,
	}
	copy(result.points, p.points)
	copy(result.kinds, p.kinds)
	return result
}

// Transform remaps every point of the path in place and recomputes the
// bounds. The figure state follows along so a pending Close still returns
// to the transformed initial point.
func (p *Path) Transform(t Transform) {
	if t.IsIdentity() {
		return
	}
	p.bounds = EmptyRect()
	for i, pt := range p.points {
		q := t.Apply(pt)
		p.points[i] = q
		p.bounds = p.bounds.UnionPoint(q.X, q.Y)
	}
	p.initial = t.Apply(p.initial)
}
