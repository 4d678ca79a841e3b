// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pathmesh

import "errors"

// ErrNoEngine indicates that no rasterization engine is bound to the
// builder and none is registered as a default.
var ErrNoEngine = errors.New("pathmesh: no rasterization engine available")

// ErrNilPath indicates a nil path was passed to the driver.
var ErrNilPath = errors.New("pathmesh: nil path")

// ProtocolStep identifies one step of the rasterization protocol.
// It is recorded in EngineError so callers can tell where a rasterization
// attempt failed.
type ProtocolStep uint8

const (
	// StepConfigure binds the viewport and clip to the engine.
	StepConfigure ProtocolStep = iota

	// StepBind hands the path geometry to the engine.
	StepBind

	// StepFormat negotiates the engine's input vertex format.
	StepFormat

	// StepBuilder constructs the vertex buffer builder.
	StepBuilder

	// StepBegin starts the build pass.
	StepBegin

	// StepSubmit feeds the bound geometry through the builder.
	StepSubmit

	// StepFlush finalizes the build and yields the vertex buffer.
	StepFlush
)

// String returns the protocol step name.
func (s ProtocolStep) String() string {
	switch s {
	case StepConfigure:
		return "configure"
	case StepBind:
		return "bind"
	case StepFormat:
		return "format"
	case StepBuilder:
		return "builder"
	case StepBegin:
		return "begin"
	case StepSubmit:
		return "submit"
	case StepFlush:
		return "flush"
	default:
		return "unknown"
	}
}

// EngineError reports a failure from the rasterization engine. The driver
// aborts the remaining protocol steps and returns a single EngineError; the
// underlying engine error is available via Unwrap.
type EngineError struct {
	Step ProtocolStep
	Err  error
}

// Error implements the error interface.
func (e *EngineError) Error() string {
	return "pathmesh: rasterization failed at " + e.Step.String() + ": " + e.Err.Error()
}

// Unwrap returns the engine's underlying error.
func (e *EngineError) Unwrap() error {
	return e.Err
}
