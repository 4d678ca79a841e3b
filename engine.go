// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pathmesh

import (
	"errors"
	"sort"
	"sync"
)

// Geometry is the path snapshot the driver binds to the engine: the raw
// point and kind streams, the fill rule, and the world-to-device transform.
// The slices alias the path's storage and must not be retained past the
// rasterization call.
type Geometry struct {
	Points    []Point
	Kinds     []PointKind
	FillMode  FillMode
	Transform Transform
}

// Scratch is reusable working storage a driver lends to its engine during
// rasterization. Engines use it for flattened points and kinds so repeated
// rasterization on one driver does not reallocate. Buffers grow as needed
// and are retained across calls.
type Scratch struct {
	Points []Point
	Kinds  []PointKind
}

// Reset empties the scratch buffers, keeping their capacity.
func (s *Scratch) Reset() {
	s.Points = s.Points[:0]
	s.Kinds = s.Kinds[:0]
}

// Grow ensures the scratch buffers have capacity for at least n entries.
func (s *Scratch) Grow(n int) {
	if cap(s.Points) < n {
		pts := make([]Point, len(s.Points), n)
		copy(pts, s.Points)
		s.Points = pts
	}
	if cap(s.Kinds) < n {
		kinds := make([]PointKind, len(s.Kinds), n)
		copy(kinds, s.Kinds)
		s.Kinds = kinds
	}
}

// VertexBuffer is the engine's rasterization result: a triangle strip of
// device vertices in the negotiated format. An empty buffer is a valid
// result for paths that cover no pixels.
type VertexBuffer struct {
	Format   VertexFormat
	Vertices []DeviceVertex
}

// Engine is a rasterization engine behind the driver protocol. pathmesh
// defines only this boundary; flattening, fill rules and coverage
// computation are entirely the engine's concern.
//
// Implementations are provided by backend packages and typically registered
// via blank import:
//
//	import _ "example.com/somebackend" // registers its engine
//
// An Engine may be shared between drivers only if its implementation
// documents that as safe.
type Engine interface {
	// ConfigureDevice binds the target viewport and clip for the next
	// rasterization.
	ConfigureDevice(viewport, clip ClipRect) error

	// BindGeometry hands the path geometry to the engine. The engine may
	// use the scratch buffers for flattening workspace.
	BindGeometry(g Geometry, scratch *Scratch) error

	// InputVertexFormat reports the vertex attributes the engine consumes
	// for the bound geometry.
	InputVertexFormat() (VertexFormat, error)

	// NewVertexBufferBuilder constructs a builder producing vertices in
	// the out format, with antialiasing coverage in the coverage slot.
	NewVertexBufferBuilder(in, out VertexFormat, coverage VertexFormat, scratch *Scratch) (VertexBufferBuilder, error)
}

// VertexBufferBuilder accumulates the engine's output for one rasterization.
// The driver creates one builder per Rasterize call and always releases it,
// whether the build succeeds or fails.
type VertexBufferBuilder interface {
	// Begin starts the build pass.
	Begin() error

	// SubmitGeometry feeds the bound geometry through the engine.
	SubmitGeometry() error

	// Flush finalizes the build and returns the vertex buffer.
	// A nil buffer means the fill was empty; that is success.
	Flush() (*VertexBuffer, error)

	// Release frees builder resources. Release is idempotent and safe to
	// call after a failed step.
	Release()
}

var (
	enginesMu   sync.RWMutex
	engines     = make(map[string]Engine)
	defaultName string
)

// RegisterEngine registers a rasterization engine under a name. The most
// recently registered engine becomes the default used by builders with no
// explicit engine. Registering a second engine under the same name replaces
// the first.
//
// Typical usage via init in backend packages:
//
//	func init() {
//	    pathmesh.RegisterEngine("hw", newHardwareEngine())
//	}
func RegisterEngine(name string, e Engine) error {
	if e == nil {
		return errors.New("pathmesh: engine must not be nil")
	}
	if name == "" {
		return errors.New("pathmesh: engine name must not be empty")
	}
	enginesMu.Lock()
	engines[name] = e
	defaultName = name
	enginesMu.Unlock()
	propagateLogger(e, Logger())
	return nil
}

// RegisteredEngine returns the engine registered under name.
func RegisteredEngine(name string) (Engine, bool) {
	enginesMu.RLock()
	e, ok := engines[name]
	enginesMu.RUnlock()
	return e, ok
}

// DefaultEngine returns the most recently registered engine, or nil if none
// is registered.
func DefaultEngine() Engine {
	enginesMu.RLock()
	defer enginesMu.RUnlock()
	if defaultName == "" {
		return nil
	}
	return engines[defaultName]
}

// EngineNames returns the names of all registered engines in sorted order.
func EngineNames() []string {
	enginesMu.RLock()
	names := make([]string, 0, len(engines))
	for name := range engines {
		names = append(names, name)
	}
	enginesMu.RUnlock()
	sort.Strings(names)
	return names
}
