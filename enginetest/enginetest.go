// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package enginetest provides in-memory rasterization engines for testing
// code built on pathmesh without a real engine backend.
//
// ScriptEngine replays a canned vertex stream and records every protocol
// call, FailEngine injects an error at a chosen protocol step, BoundsEngine
// produces a four-vertex strip over the transformed bounding box, and
// Recorder wraps any engine to observe the calls flowing through it.
package enginetest

import (
	"log/slog"

	"github.com/gogpu/pathmesh"
)

// Vertex builds a device vertex with coverage packed into the diffuse slot,
// the layout pathmesh.ExtractVertices expects.
func Vertex(x, y, coverage float32) pathmesh.DeviceVertex {
	return pathmesh.DeviceVertex{X: x, Y: y, Diffuse: pathmesh.CoverageBits(coverage)}
}

// ScriptEngine is an engine that replays a canned vertex stream. It records
// the protocol calls it receives and snapshots the bound state so tests can
// assert on both. The zero value replays an empty fill.
//
// ScriptEngine retains the geometry slices passed to BindGeometry. That is
// fine for tests, where the path outlives the assertion, but it is not how
// a production engine may behave.
type ScriptEngine struct {
	// Format is the input vertex format reported to the driver. The zero
	// value defaults to XY|Diffuse.
	Format pathmesh.VertexFormat

	// Vertices is the stream Flush hands back. Leaving it empty makes the
	// engine report an empty fill.
	Vertices []pathmesh.DeviceVertex

	// Calls lists the protocol calls in the order they arrived, using the
	// step names "configure", "bind", "format", "builder", "begin",
	// "submit", "flush" and "release".
	Calls []string

	// Viewport, Clip and Geometry snapshot the most recent bound state.
	Viewport pathmesh.ClipRect
	Clip     pathmesh.ClipRect
	Geometry pathmesh.Geometry

	// Released counts Release calls across all builders.
	Released int

	// Logger is the most recent logger handed over by pathmesh.SetLogger.
	Logger *slog.Logger
}

func (e *ScriptEngine) record(call string) {
	e.Calls = append(e.Calls, call)
}

// ConfigureDevice implements pathmesh.Engine.
func (e *ScriptEngine) ConfigureDevice(viewport, clip pathmesh.ClipRect) error {
	e.record("configure")
	e.Viewport = viewport
	e.Clip = clip
	return nil
}

// BindGeometry implements pathmesh.Engine.
func (e *ScriptEngine) BindGeometry(g pathmesh.Geometry, scratch *pathmesh.Scratch) error {
	e.record("bind")
	e.Geometry = g
	scratch.Reset()
	scratch.Grow(len(g.Points))
	return nil
}

// InputVertexFormat implements pathmesh.Engine.
func (e *ScriptEngine) InputVertexFormat() (pathmesh.VertexFormat, error) {
	e.record("format")
	if e.Format == pathmesh.AttrNone {
		return pathmesh.AttrXY | pathmesh.AttrDiffuse, nil
	}
	return e.Format, nil
}

// NewVertexBufferBuilder implements pathmesh.Engine.
func (e *ScriptEngine) NewVertexBufferBuilder(in, out pathmesh.VertexFormat, coverage pathmesh.VertexFormat, scratch *pathmesh.Scratch) (pathmesh.VertexBufferBuilder, error) {
	e.record("builder")
	return &scriptBuilder{engine: e, format: in}, nil
}

// SetLogger stores the propagated logger so tests can observe it.
func (e *ScriptEngine) SetLogger(l *slog.Logger) {
	e.Logger = l
}

type scriptBuilder struct {
	engine *ScriptEngine
	format pathmesh.VertexFormat
}

func (b *scriptBuilder) Begin() error {
	b.engine.record("begin")
	return nil
}

func (b *scriptBuilder) SubmitGeometry() error {
	b.engine.record("submit")
	return nil
}

func (b *scriptBuilder) Flush() (*pathmesh.VertexBuffer, error) {
	b.engine.record("flush")
	if len(b.engine.Vertices) == 0 {
		return nil, nil
	}
	return &pathmesh.VertexBuffer{
		Format:   b.format,
		Vertices: b.engine.Vertices,
	}, nil
}

func (b *scriptBuilder) Release() {
	b.engine.record("release")
	b.engine.Released++
}

// FailEngine is an engine that fails at one protocol step and behaves like
// an empty ScriptEngine everywhere else. Use it to exercise error paths.
type FailEngine struct {
	// Step is the protocol step that fails.
	Step pathmesh.ProtocolStep

	// Err is the error returned at Step.
	Err error

	// Calls lists the protocol calls in order, including the failing one.
	Calls []string

	// Released counts Release calls.
	Released int
}

// NewFailEngine returns an engine that fails at the given protocol step
// with err.
func NewFailEngine(step pathmesh.ProtocolStep, err error) *FailEngine {
	return &FailEngine{Step: step, Err: err}
}

func (e *FailEngine) at(step pathmesh.ProtocolStep) error {
	e.Calls = append(e.Calls, step.String())
	if step == e.Step {
		return e.Err
	}
	return nil
}

// ConfigureDevice implements pathmesh.Engine.
func (e *FailEngine) ConfigureDevice(viewport, clip pathmesh.ClipRect) error {
	return e.at(pathmesh.StepConfigure)
}

// BindGeometry implements pathmesh.Engine.
func (e *FailEngine) BindGeometry(g pathmesh.Geometry, scratch *pathmesh.Scratch) error {
	return e.at(pathmesh.StepBind)
}

// InputVertexFormat implements pathmesh.Engine.
func (e *FailEngine) InputVertexFormat() (pathmesh.VertexFormat, error) {
	if err := e.at(pathmesh.StepFormat); err != nil {
		return pathmesh.AttrNone, err
	}
	return pathmesh.AttrXY | pathmesh.AttrDiffuse, nil
}

// NewVertexBufferBuilder implements pathmesh.Engine.
func (e *FailEngine) NewVertexBufferBuilder(in, out pathmesh.VertexFormat, coverage pathmesh.VertexFormat, scratch *pathmesh.Scratch) (pathmesh.VertexBufferBuilder, error) {
	if err := e.at(pathmesh.StepBuilder); err != nil {
		return nil, err
	}
	return &failBuilder{engine: e}, nil
}

type failBuilder struct {
	engine *FailEngine
}

func (b *failBuilder) Begin() error {
	return b.engine.at(pathmesh.StepBegin)
}

func (b *failBuilder) SubmitGeometry() error {
	return b.engine.at(pathmesh.StepSubmit)
}

func (b *failBuilder) Flush() (*pathmesh.VertexBuffer, error) {
	if err := b.engine.at(pathmesh.StepFlush); err != nil {
		return nil, err
	}
	return nil, nil
}

func (b *failBuilder) Release() {
	b.engine.Calls = append(b.engine.Calls, "release")
	b.engine.Released++
}

// BoundsEngine is a degenerate stand-in for a real engine: it emits a
// four-vertex full-coverage strip covering the transformed path's bounding
// box. That is enough to smoke-test an integration end to end without
// pulling in a rasterizer. Paths whose bounds have zero area produce an
// empty fill.
type BoundsEngine struct {
	bounds pathmesh.Rect
	empty  bool
}

// ConfigureDevice implements pathmesh.Engine.
func (e *BoundsEngine) ConfigureDevice(viewport, clip pathmesh.ClipRect) error {
	return nil
}

// BindGeometry implements pathmesh.Engine. It runs the geometry through its
// transform into the scratch space and keeps the resulting bounds.
func (e *BoundsEngine) BindGeometry(g pathmesh.Geometry, scratch *pathmesh.Scratch) error {
	scratch.Reset()
	scratch.Grow(len(g.Points))
	bounds := pathmesh.EmptyRect()
	for _, pt := range g.Points {
		q := g.Transform.Apply(pt)
		scratch.Points = append(scratch.Points, q)
		bounds = bounds.UnionPoint(q.X, q.Y)
	}
	scratch.Kinds = append(scratch.Kinds, g.Kinds...)
	e.bounds = bounds
	e.empty = len(g.Points) == 0 || bounds.Width() <= 0 || bounds.Height() <= 0
	return nil
}

// InputVertexFormat implements pathmesh.Engine.
func (e *BoundsEngine) InputVertexFormat() (pathmesh.VertexFormat, error) {
	return pathmesh.AttrXY | pathmesh.AttrDiffuse, nil
}

// NewVertexBufferBuilder implements pathmesh.Engine.
func (e *BoundsEngine) NewVertexBufferBuilder(in, out pathmesh.VertexFormat, coverage pathmesh.VertexFormat, scratch *pathmesh.Scratch) (pathmesh.VertexBufferBuilder, error) {
	return &boundsBuilder{engine: e, format: in}, nil
}

type boundsBuilder struct {
	engine *BoundsEngine
	format pathmesh.VertexFormat
}

func (b *boundsBuilder) Begin() error { return nil }

func (b *boundsBuilder) SubmitGeometry() error { return nil }

func (b *boundsBuilder) Flush() (*pathmesh.VertexBuffer, error) {
	if b.engine.empty {
		return nil, nil
	}
	r := b.engine.bounds
	return &pathmesh.VertexBuffer{
		Format: b.format,
		Vertices: []pathmesh.DeviceVertex{
			Vertex(r.MinX, r.MinY, 1),
			Vertex(r.MaxX, r.MinY, 1),
			Vertex(r.MinX, r.MaxY, 1),
			Vertex(r.MaxX, r.MaxY, 1),
		},
	}, nil
}

func (b *boundsBuilder) Release() {}

// Recorder wraps another engine and records the protocol calls flowing
// through it, using the same call names as ScriptEngine.
type Recorder struct {
	// Engine is the engine being observed.
	Engine pathmesh.Engine

	// Calls lists the observed calls in order.
	Calls []string
}

// NewRecorder returns a Recorder observing e.
func NewRecorder(e pathmesh.Engine) *Recorder {
	return &Recorder{Engine: e}
}

func (r *Recorder) record(call string) {
	r.Calls = append(r.Calls, call)
}

// ConfigureDevice implements pathmesh.Engine.
func (r *Recorder) ConfigureDevice(viewport, clip pathmesh.ClipRect) error {
	r.record("configure")
	return r.Engine.ConfigureDevice(viewport, clip)
}

// BindGeometry implements pathmesh.Engine.
func (r *Recorder) BindGeometry(g pathmesh.Geometry, scratch *pathmesh.Scratch) error {
	r.record("bind")
	return r.Engine.BindGeometry(g, scratch)
}

// InputVertexFormat implements pathmesh.Engine.
func (r *Recorder) InputVertexFormat() (pathmesh.VertexFormat, error) {
	r.record("format")
	return r.Engine.InputVertexFormat()
}

// NewVertexBufferBuilder implements pathmesh.Engine.
func (r *Recorder) NewVertexBufferBuilder(in, out pathmesh.VertexFormat, coverage pathmesh.VertexFormat, scratch *pathmesh.Scratch) (pathmesh.VertexBufferBuilder, error) {
	r.record("builder")
	inner, err := r.Engine.NewVertexBufferBuilder(in, out, coverage, scratch)
	if err != nil {
		return nil, err
	}
	return &recorderBuilder{recorder: r, inner: inner}, nil
}

type recorderBuilder struct {
	recorder *Recorder
	inner    pathmesh.VertexBufferBuilder
}

func (b *recorderBuilder) Begin() error {
	b.recorder.record("begin")
	return b.inner.Begin()
}

func (b *recorderBuilder) SubmitGeometry() error {
	b.recorder.record("submit")
	return b.inner.SubmitGeometry()
}

func (b *recorderBuilder) Flush() (*pathmesh.VertexBuffer, error) {
	b.recorder.record("flush")
	return b.inner.Flush()
}

func (b *recorderBuilder) Release() {
	b.recorder.record("release")
	b.inner.Release()
}
