// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pathmesh

import "log/slog"

// DriverOption configures a Driver during creation.
//
// Example:
//
//	// Default: identity transform, viewport follows the clip.
//	d := pathmesh.NewDriver(engine)
//
//	// Scaled output into a fixed viewport:
//	d := pathmesh.NewDriver(engine,
//	    pathmesh.WithTransform(pathmesh.Scale(2, 2)),
//	    pathmesh.WithViewport(pathmesh.ClipRect{Width: 512, Height: 512}))
type DriverOption func(*driverConfig)

// driverConfig holds optional configuration for Driver creation.
type driverConfig struct {
	transform Transform
	viewport  ClipRect
	logger    *slog.Logger
}

// defaultDriverConfig returns the default driver configuration.
func defaultDriverConfig() driverConfig {
	return driverConfig{
		transform: Identity(),
	}
}

// WithTransform sets the world-to-device transform the driver binds with
// the geometry. The default is the identity transform.
func WithTransform(t Transform) DriverOption {
	return func(c *driverConfig) {
		c.transform = t
	}
}

// WithViewport sets a fixed device viewport. By default the viewport
// follows the clip rectangle passed to Rasterize.
func WithViewport(v ClipRect) DriverOption {
	return func(c *driverConfig) {
		c.viewport = v
	}
}

// WithLogger sets a logger for this driver only, overriding the package
// logger configured with SetLogger.
func WithLogger(l *slog.Logger) DriverOption {
	return func(c *driverConfig) {
		c.logger = l
	}
}

// BuilderOption configures a PathBuilder during creation.
type BuilderOption func(*builderConfig)

// builderConfig holds optional configuration for PathBuilder creation.
type builderConfig struct {
	engine     Engine
	engineName string
	driverOpts []DriverOption
}

// WithEngine binds an explicit engine to the builder. It takes precedence
// over named and registered engines.
func WithEngine(e Engine) BuilderOption {
	return func(c *builderConfig) {
		c.engine = e
	}
}

// WithEngineName binds the builder to a registered engine by name. The
// lookup happens at Rasterize time, so registration order does not matter.
func WithEngineName(name string) BuilderOption {
	return func(c *builderConfig) {
		c.engineName = name
	}
}

// WithDriverOptions forwards driver options to the driver the builder
// creates for rasterization.
func WithDriverOptions(opts ...DriverOption) BuilderOption {
	return func(c *builderConfig) {
		c.driverOpts = append(c.driverOpts, opts...)
	}
}
