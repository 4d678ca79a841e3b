// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pathmesh

import "testing"

func TestNewPath(t *testing.T) {
	p := NewPath()
	if p == nil {
		t.Fatal("NewPath() returned nil")
	}
	if !p.IsEmpty() {
		t.Error("new path should be empty")
	}
	if p.Len() != 0 {
		t.Errorf("Len() = %d, want 0", p.Len())
	}
	if p.FillMode() != FillAlternate {
		t.Errorf("FillMode() = %v, want FillAlternate", p.FillMode())
	}
	if p.FigureCount() != 0 {
		t.Errorf("FigureCount() = %d, want 0", p.FigureCount())
	}
}

func TestPathMoveTo(t *testing.T) {
	p := NewPath()
	p.MoveTo(10, 20)

	if p.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", p.Len())
	}
	if p.Kinds()[0] != KindStart {
		t.Errorf("kind = %v, want KindStart", p.Kinds()[0])
	}
	if got := p.Points()[0]; got != (Point{10, 20}) {
		t.Errorf("point = %v, want {10 20}", got)
	}
	if p.FigureCount() != 1 {
		t.Errorf("FigureCount() = %d, want 1", p.FigureCount())
	}
}

func TestPathLineTo(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(100, 50)

	if p.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", p.Len())
	}
	if p.Kinds()[1] != KindLine {
		t.Errorf("kind[1] = %v, want KindLine", p.Kinds()[1])
	}
	if got := p.Points()[1]; got != (Point{100, 50}) {
		t.Errorf("point[1] = %v, want {100 50}", got)
	}
}

func TestPathCurveToAtomic(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.CurveTo(25, 100, 75, 100, 100, 0)

	// MoveTo adds 1, CurveTo adds exactly 3.
	if p.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", p.Len())
	}
	for i := 1; i <= 3; i++ {
		if p.Kinds()[i] != KindBezier {
			t.Errorf("kind[%d] = %v, want KindBezier", i, p.Kinds()[i])
		}
	}
	wantPoints := []Point{{0, 0}, {25, 100}, {75, 100}, {100, 0}}
	for i, want := range wantPoints {
		if p.Points()[i] != want {
			t.Errorf("point[%d] = %v, want %v", i, p.Points()[i], want)
		}
	}
}

func TestPathCloseRoundTrip(t *testing.T) {
	p := NewPath()
	p.MoveTo(10, 10)
	p.LineTo(30, 10)
	p.LineTo(10, 30)
	p.Close()

	wantPoints := []Point{{10, 10}, {30, 10}, {10, 30}, {10, 10}}
	wantKinds := []PointKind{KindStart, KindLine, KindLine, KindLine | KindCloseSubpath}

	if p.Len() != len(wantPoints) {
		t.Fatalf("Len() = %d, want %d", p.Len(), len(wantPoints))
	}
	for i := range wantPoints {
		if p.Points()[i] != wantPoints[i] {
			t.Errorf("point[%d] = %v, want %v", i, p.Points()[i], wantPoints[i])
		}
		if p.Kinds()[i] != wantKinds[i] {
			t.Errorf("kind[%d] = %v, want %v", i, p.Kinds()[i], wantKinds[i])
		}
	}
}

func TestPathCloseWithoutFigure(t *testing.T) {
	p := NewPath()
	p.Close()

	if !p.IsEmpty() {
		t.Errorf("Close() on empty path recorded %d points, want 0", p.Len())
	}
}

func TestPathCloseTwice(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.Close()
	p.Close()

	// The second Close has no open figure and must record nothing.
	if p.Len() != 3 {
		t.Errorf("Len() = %d, want 3", p.Len())
	}
}

func TestPathCloseReopensAfterMoveTo(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.Close()
	p.MoveTo(20, 20)
	p.LineTo(30, 20)
	p.Close()

	if p.Len() != 6 {
		t.Fatalf("Len() = %d, want 6", p.Len())
	}
	last := p.Kinds()[5]
	if !last.ClosesSubpath() {
		t.Errorf("kind[5] = %v, want close flag set", last)
	}
	if got := p.Points()[5]; got != (Point{20, 20}) {
		t.Errorf("close point = %v, want {20 20}", got)
	}
	if p.FigureCount() != 2 {
		t.Errorf("FigureCount() = %d, want 2", p.FigureCount())
	}
}

func TestPathLineToBeforeMoveTo(t *testing.T) {
	// Out-of-order authoring is recorded as-is, never rejected.
	p := NewPath()
	p.LineTo(5, 5)

	if p.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", p.Len())
	}
	if p.Kinds()[0] != KindLine {
		t.Errorf("kind[0] = %v, want KindLine", p.Kinds()[0])
	}

	// A Close before any MoveTo still has nothing to close.
	p.Close()
	if p.Len() != 1 {
		t.Errorf("Len() after Close = %d, want 1", p.Len())
	}
}

func TestPathSecondMoveToReplacesInitial(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.MoveTo(50, 50)
	p.LineTo(60, 50)
	p.Close()

	// Close must return to the latest figure start, not the first.
	last := p.Points()[p.Len()-1]
	if last != (Point{50, 50}) {
		t.Errorf("close point = %v, want {50 50}", last)
	}
}

func TestPathStreamsStayParallel(t *testing.T) {
	ops := []struct {
		name  string
		apply func(*Path)
	}{
		{"MoveTo", func(p *Path) { p.MoveTo(1, 2) }},
		{"LineTo", func(p *Path) { p.LineTo(3, 4) }},
		{"CurveTo", func(p *Path) { p.CurveTo(1, 1, 2, 2, 3, 3) }},
		{"Close", func(p *Path) { p.Close() }},
		{"CloseNoFigure", func(p *Path) { p.Close(); p.Close() }},
		{"Rectangle", func(p *Path) { p.Rectangle(0, 0, 10, 10) }},
		{"Ellipse", func(p *Path) { p.Ellipse(5, 5, 3, 2) }},
	}

	p := NewPath()
	for _, op := range ops {
		op.apply(p)
		if len(p.Points()) != len(p.Kinds()) {
			t.Fatalf("after %s: %d points, %d kinds", op.name, len(p.Points()), len(p.Kinds()))
		}
	}
}

func TestPathSetFillMode(t *testing.T) {
	p := NewPath()
	p.SetFillMode(FillWinding)
	if p.FillMode() != FillWinding {
		t.Errorf("FillMode() = %v, want FillWinding", p.FillMode())
	}
}

func TestPathBounds(t *testing.T) {
	p := NewPath()
	p.MoveTo(10, 20)
	p.LineTo(-5, 40)
	p.CurveTo(0, 0, 50, 60, 30, 30)

	b := p.Bounds()
	want := Rect{MinX: -5, MinY: 0, MaxX: 50, MaxY: 60}
	if b != want {
		t.Errorf("Bounds() = %+v, want %+v", b, want)
	}
}

func TestPathReset(t *testing.T) {
	p := NewPath()
	p.SetFillMode(FillWinding)
	p.MoveTo(0, 0)
	p.LineTo(10, 10)
	p.Reset()

	if !p.IsEmpty() {
		t.Error("path should be empty after Reset")
	}
	if p.FigureCount() != 0 {
		t.Errorf("FigureCount() = %d, want 0", p.FigureCount())
	}
	if p.FillMode() != FillWinding {
		t.Error("Reset should keep the fill mode")
	}

	// Close after Reset has no figure to close.
	p.Close()
	if !p.IsEmpty() {
		t.Error("Close after Reset should record nothing")
	}
}

func TestPathClone(t *testing.T) {
	p := NewPath()
	p.SetFillMode(FillWinding)
	p.MoveTo(1, 2)
	p.LineTo(3, 4)

	c := p.Clone()
	c.LineTo(5, 6)
	c.Close()

	if p.Len() != 2 {
		t.Errorf("original Len() = %d after mutating clone, want 2", p.Len())
	}
	if c.Len() != 4 {
		t.Errorf("clone Len() = %d, want 4", c.Len())
	}
	if c.FillMode() != FillWinding {
		t.Errorf("clone FillMode() = %v, want FillWinding", c.FillMode())
	}
	// The clone's Close must return to the original figure start.
	if got := c.Points()[3]; got != (Point{1, 2}) {
		t.Errorf("clone close point = %v, want {1 2}", got)
	}
}

func TestPathTransform(t *testing.T) {
	p := NewPath()
	p.MoveTo(1, 0)
	p.LineTo(2, 0)

	p.Transform(Translate(10, 20))

	if got := p.Points()[0]; got != (Point{11, 20}) {
		t.Errorf("point[0] = %v, want {11 20}", got)
	}
	if got := p.Points()[1]; got != (Point{12, 20}) {
		t.Errorf("point[1] = %v, want {12 20}", got)
	}

	b := p.Bounds()
	want := Rect{MinX: 11, MinY: 20, MaxX: 12, MaxY: 20}
	if b != want {
		t.Errorf("Bounds() = %+v, want %+v", b, want)
	}

	// A pending Close must return to the transformed start.
	p.Close()
	if got := p.Points()[2]; got != (Point{11, 20}) {
		t.Errorf("close point = %v, want {11 20}", got)
	}
}

func TestPointKindString(t *testing.T) {
	tests := []struct {
		kind PointKind
		want string
	}{
		{KindStart, "Start"},
		{KindLine, "Line"},
		{KindBezier, "Bezier"},
		{KindLine | KindCloseSubpath, "Line|Close"},
		{PointKind(0x07), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("PointKind(%#x).String() = %q, want %q", uint8(tt.kind), got, tt.want)
		}
	}
}

func TestPointKindType(t *testing.T) {
	k := KindLine | KindCloseSubpath
	if k.Type() != KindLine {
		t.Errorf("Type() = %v, want KindLine", k.Type())
	}
	if !k.ClosesSubpath() {
		t.Error("ClosesSubpath() = false, want true")
	}
	if KindBezier.ClosesSubpath() {
		t.Error("KindBezier.ClosesSubpath() = true, want false")
	}
}

func TestFillModeString(t *testing.T) {
	if got := FillAlternate.String(); got != "Alternate" {
		t.Errorf("FillAlternate.String() = %q, want %q", got, "Alternate")
	}
	if got := FillWinding.String(); got != "Winding" {
		t.Errorf("FillWinding.String() = %q, want %q", got, "Winding")
	}
	if got := FillMode(9).String(); got != "Unknown" {
		t.Errorf("FillMode(9).String() = %q, want %q", got, "Unknown")
	}
}
