// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pathmesh

import "log/slog"

// generatedAttrs are the attributes the engine adds on top of its input
// format. In this configuration the engine generates none; coverage rides
// the existing diffuse slot.
const generatedAttrs = AttrNone

// Driver runs the rasterization protocol against one engine. It owns the
// scratch storage lent to the engine, so a Driver must not be used from
// multiple goroutines at once; create one driver per goroutine instead.
type Driver struct {
	engine  Engine
	cfg     driverConfig
	scratch Scratch
}

// NewDriver creates a driver bound to the given engine.
func NewDriver(e Engine, opts ...DriverOption) *Driver {
	cfg := defaultDriverConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Driver{engine: e, cfg: cfg}
}

// Engine returns the engine this driver is bound to.
func (d *Driver) Engine() Engine {
	return d.engine
}

// Transform returns the world-to-device transform the driver binds with
// the geometry.
func (d *Driver) Transform() Transform {
	return d.cfg.transform
}

func (d *Driver) logger() *slog.Logger {
	if d.cfg.logger != nil {
		return d.cfg.logger
	}
	return Logger()
}

// fail reports an aborted protocol run and wraps the engine's error with
// the step it failed at.
func (d *Driver) fail(step ProtocolStep, err error) error {
	d.logger().Warn("pathmesh: rasterization aborted", "step", step, "error", err)
	return &EngineError{Step: step, Err: err}
}

// Rasterize runs the full protocol for one path against a device clip and
// returns the extracted coverage mesh vertices in triangle-strip order.
//
// An empty path short-circuits to an empty result without touching the
// engine. An engine failure at any step aborts the remaining steps,
// releases the builder, and surfaces as a single *EngineError. An empty
// vertex buffer from the engine is a valid result, not an error.
func (d *Driver) Rasterize(p *Path, clip ClipRect) ([]OutputVertex, error) {
	if p == nil {
		return nil, ErrNilPath
	}

	log := d.logger()

	if p.IsEmpty() {
		log.Debug("pathmesh: empty path, skipping rasterization")
		return nil, nil
	}

	viewport := d.cfg.viewport
	if viewport.Empty() {
		viewport = clip
	}

	if err := d.engine.ConfigureDevice(viewport, clip); err != nil {
		return nil, d.fail(StepConfigure, err)
	}

	g := Geometry{
		Points:    p.Points(),
		Kinds:     p.Kinds(),
		FillMode:  p.FillMode(),
		Transform: d.cfg.transform,
	}
	if err := d.engine.BindGeometry(g, &d.scratch); err != nil {
		return nil, d.fail(StepBind, err)
	}

	in, err := d.engine.InputVertexFormat()
	if err != nil {
		return nil, d.fail(StepFormat, err)
	}
	log.Debug("pathmesh: format negotiated", "format", in)

	builder, err := d.engine.NewVertexBufferBuilder(in, in|generatedAttrs, CoverageSlot, &d.scratch)
	if err != nil {
		return nil, d.fail(StepBuilder, err)
	}
	defer builder.Release()

	if err := builder.Begin(); err != nil {
		return nil, d.fail(StepBegin, err)
	}
	if err := builder.SubmitGeometry(); err != nil {
		return nil, d.fail(StepSubmit, err)
	}
	buf, err := builder.Flush()
	if err != nil {
		return nil, d.fail(StepFlush, err)
	}

	verts := ExtractVertices(buf)
	if len(verts) == 0 {
		log.Warn("pathmesh: engine produced an empty fill",
			"points", p.Len(), "clip", clip.String())
	} else {
		log.Debug("pathmesh: rasterized",
			"points", p.Len(), "vertices", len(verts))
	}
	return verts, nil
}
