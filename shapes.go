// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pathmesh

import "github.com/chewxy/math32"

// bezierCircleK is the control point distance for approximating a quarter
// circle with a cubic Bezier: k = 4 * (sqrt(2) - 1) / 3.
const bezierCircleK = 0.5522847498

// Rectangle appends a closed rectangular figure.
func (p *Path) Rectangle(x, y, w, h float32) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// RoundedRectangle appends a closed rectangle with corner radius r.
// The radius is clamped to half the smaller dimension; r <= 0 falls back
// to a plain rectangle.
func (p *Path) RoundedRectangle(x, y, w, h, r float32) {
	maxR := min(w, h) / 2
	if r > maxR {
		r = maxR
	}
	if r <= 0 {
		p.Rectangle(x, y, w, h)
		return
	}

	kr := float32(bezierCircleK) * r

	p.MoveTo(x+r, y)

	p.LineTo(x+w-r, y)
	p.CurveTo(x+w-r+kr, y, x+w, y+r-kr, x+w, y+r)

	p.LineTo(x+w, y+h-r)
	p.CurveTo(x+w, y+h-r+kr, x+w-r+kr, y+h, x+w-r, y+h)

	p.LineTo(x+r, y+h)
	p.CurveTo(x+r-kr, y+h, x, y+h-r+kr, x, y+h-r)

	p.LineTo(x, y+r)
	p.CurveTo(x, y+r-kr, x+r-kr, y, x+r, y)

	p.Close()
}

// Circle appends a closed circular figure.
func (p *Path) Circle(cx, cy, r float32) {
	p.Ellipse(cx, cy, r, r)
}

// Ellipse appends a closed elliptical figure built from four quarter arcs.
func (p *Path) Ellipse(cx, cy, rx, ry float32) {
	kx := float32(bezierCircleK) * rx
	ky := float32(bezierCircleK) * ry

	p.MoveTo(cx+rx, cy)

	p.CurveTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry) // to bottom
	p.CurveTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy) // to left
	p.CurveTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry) // to top
	p.CurveTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy) // to right (start)

	p.Close()
}

// Arc appends an open elliptical arc swept from startAngle by sweep radians
// (positive sweeps clockwise in a y-down coordinate system). The arc starts
// a new figure; follow with Close to seal it.
func (p *Path) Arc(cx, cy, rx, ry, startAngle, sweep float32) {
	sin, cos := math32.Sincos(startAngle)
	p.MoveTo(cx+rx*cos, cy+ry*sin)

	if sweep == 0 {
		return
	}

	// Split into segments of at most a quarter turn for a tight
	// cubic approximation.
	numArcs := int(math32.Ceil(math32.Abs(sweep) / (math32.Pi / 2)))
	if numArcs < 1 {
		numArcs = 1
	}

	arcAngle := sweep / float32(numArcs)
	currentAngle := startAngle

	for i := 0; i < numArcs; i++ {
		nextAngle := currentAngle + arcAngle
		p.arcSegment(cx, cy, rx, ry, currentAngle, nextAngle)
		currentAngle = nextAngle
	}
}

// arcSegment appends a cubic Bezier approximation of one arc segment.
func (p *Path) arcSegment(cx, cy, rx, ry, startAngle, endAngle float32) {
	angle := endAngle - startAngle
	tanHalf := math32.Tan(angle / 2)
	alpha := math32.Sin(angle) * (math32.Sqrt(4+3*tanHalf*tanHalf) - 1) / 3

	sin1, cos1 := math32.Sincos(startAngle)
	x1 := cx + rx*cos1
	y1 := cy + ry*sin1

	sin2, cos2 := math32.Sincos(endAngle)
	x4 := cx + rx*cos2
	y4 := cy + ry*sin2

	x2 := x1 - alpha*rx*sin1
	y2 := y1 + alpha*ry*cos1
	x3 := x4 + alpha*rx*sin2
	y3 := y4 - alpha*ry*cos2

	p.CurveTo(x2, y2, x3, y3, x4, y4)
}

// Polygon appends a closed regular polygon with the given number of sides,
// first vertex at the top.
func (p *Path) Polygon(cx, cy, radius float32, sides int) {
	if sides < 3 {
		return
	}

	angleStep := 2 * math32.Pi / float32(sides)
	startAngle := float32(-math32.Pi / 2)

	for i := 0; i < sides; i++ {
		sin, cos := math32.Sincos(startAngle + float32(i)*angleStep)
		x := cx + radius*cos
		y := cy + radius*sin
		if i == 0 {
			p.MoveTo(x, y)
		} else {
			p.LineTo(x, y)
		}
	}
	p.Close()
}
