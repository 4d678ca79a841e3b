// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pathmesh

// PathBuilder is the externally-visible authoring handle: a fluent path
// authoring surface bound to a rasterization driver. All authoring methods
// return the builder for chaining.
//
// Engine resolution happens at Rasterize time: an engine bound with
// WithEngine wins, then a registered engine named via WithEngineName, then
// the default registered engine. With none of these, Rasterize returns
// ErrNoEngine.
//
// PathBuilder is not safe for concurrent use.
type PathBuilder struct {
	path *Path
	cfg  builderConfig

	// Driver cached across Rasterize calls so engine scratch storage is
	// reused. Rebuilt if engine resolution changes.
	driver       *Driver
	driverEngine Engine
}

// NewPathBuilder creates a builder with an empty path.
func NewPathBuilder(opts ...BuilderOption) *PathBuilder {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return &PathBuilder{path: NewPath(), cfg: cfg}
}

// MoveTo begins a new figure.
func (b *PathBuilder) MoveTo(x, y float32) *PathBuilder {
	b.path.MoveTo(x, y)
	return b
}

// LineTo continues the figure with a straight segment.
func (b *PathBuilder) LineTo(x, y float32) *PathBuilder {
	b.path.LineTo(x, y)
	return b
}

// CurveTo continues the figure with a cubic Bezier segment.
func (b *PathBuilder) CurveTo(x1, y1, x2, y2, x3, y3 float32) *PathBuilder {
	b.path.CurveTo(x1, y1, x2, y2, x3, y3)
	return b
}

// Close closes the current figure.
func (b *PathBuilder) Close() *PathBuilder {
	b.path.Close()
	return b
}

// FillMode selects the fill rule for the path.
func (b *PathBuilder) FillMode(m FillMode) *PathBuilder {
	b.path.SetFillMode(m)
	return b
}

// Rectangle appends a closed rectangle.
func (b *PathBuilder) Rectangle(x, y, w, h float32) *PathBuilder {
	b.path.Rectangle(x, y, w, h)
	return b
}

// RoundedRectangle appends a closed rounded rectangle.
func (b *PathBuilder) RoundedRectangle(x, y, w, h, r float32) *PathBuilder {
	b.path.RoundedRectangle(x, y, w, h, r)
	return b
}

// Circle appends a closed circle.
func (b *PathBuilder) Circle(cx, cy, r float32) *PathBuilder {
	b.path.Circle(cx, cy, r)
	return b
}

// Ellipse appends a closed ellipse.
func (b *PathBuilder) Ellipse(cx, cy, rx, ry float32) *PathBuilder {
	b.path.Ellipse(cx, cy, rx, ry)
	return b
}

// Arc appends an open elliptical arc.
func (b *PathBuilder) Arc(cx, cy, rx, ry, startAngle, sweep float32) *PathBuilder {
	b.path.Arc(cx, cy, rx, ry, startAngle, sweep)
	return b
}

// Polygon appends a closed regular polygon.
func (b *PathBuilder) Polygon(cx, cy, radius float32, sides int) *PathBuilder {
	b.path.Polygon(cx, cy, radius, sides)
	return b
}

// Path returns the authored path. The builder keeps ownership; mutating
// the builder mutates the returned path.
func (b *PathBuilder) Path() *Path {
	return b.path
}

// Reset clears the authored path for reuse. The engine binding and driver
// are kept.
func (b *PathBuilder) Reset() *PathBuilder {
	b.path.Reset()
	return b
}

// resolveEngine picks the engine for rasterization.
func (b *PathBuilder) resolveEngine() (Engine, error) {
	if b.cfg.engine != nil {
		return b.cfg.engine, nil
	}
	if b.cfg.engineName != "" {
		if e, ok := RegisteredEngine(b.cfg.engineName); ok {
			return e, nil
		}
		return nil, ErrNoEngine
	}
	if e := DefaultEngine(); e != nil {
		return e, nil
	}
	return nil, ErrNoEngine
}

// Rasterize runs the rasterization protocol for the authored path against
// the device clip and returns the coverage mesh vertices.
func (b *PathBuilder) Rasterize(clip ClipRect) ([]OutputVertex, error) {
	e, err := b.resolveEngine()
	if err != nil {
		return nil, err
	}
	if b.driver == nil || b.driverEngine != e {
		b.driver = NewDriver(e, b.cfg.driverOpts...)
		b.driverEngine = e
	}
	return b.driver.Rasterize(b.path, clip)
}
