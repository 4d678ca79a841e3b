// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package svgpath parses SVG path data into pathmesh paths.
//
// The SVG 1.1 command set is supported: absolute and relative moves, lines,
// horizontal and vertical lines, cubic and quadratic Beziers with their
// smooth shorthands, elliptical arcs and closepath. Quadratic segments are
// elevated to cubics and arcs are approximated by cubic segments spanning
// at most a quarter turn, so every parsed path lowers to the
// move/line/curve/close vocabulary of pathmesh.Path.
//
// One deviation from SVG: arc flags must be separated from the following
// number by whitespace or a comma ("A 25 25 0 0 1 50 25", not "0150,25").
package svgpath

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/chewxy/math32"

	"github.com/gogpu/pathmesh"
)

var (
	pathLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Number", Pattern: `[-+]?(?:\d+\.\d*|\.\d+|\d+)(?:[eE][-+]?\d+)?`},
		{Name: "Command", Pattern: `[MmLlHhVvCcSsQqTtAaZz]`},
		{Name: "Sep", Pattern: `[\s,]+`},
	})

	pathParser = participle.MustBuild[pathData](
		participle.Lexer(pathLexer),
		participle.Elide("Sep"),
	)
)

type pathData struct {
	Commands []pathCommand `parser:"@@*"`
}

type pathCommand struct {
	Letter string    `parser:"@Command"`
	Args   []float32 `parser:"@Number*"`
}

// arity maps a command letter to its argument count per repetition.
var arity = map[byte]int{
	'M': 2, 'L': 2, 'H': 1, 'V': 1,
	'C': 6, 'S': 4, 'Q': 4, 'T': 2,
	'A': 7, 'Z': 0,
}

// Parse parses SVG path data into a new path. Empty data yields an empty
// path; malformed data yields an error and no path.
func Parse(data string) (*pathmesh.Path, error) {
	p := pathmesh.NewPath()
	if err := ParseInto(p, data); err != nil {
		return nil, err
	}
	return p, nil
}

// MustParse is like Parse but panics on malformed data. It simplifies path
// literals in tests and examples.
func MustParse(data string) *pathmesh.Path {
	p, err := Parse(data)
	if err != nil {
		panic(err)
	}
	return p
}

// ParseInto parses SVG path data and appends the lowered commands to p,
// reusing its storage. On error p may hold a prefix of the parsed data.
func ParseInto(p *pathmesh.Path, data string) error {
	ast, err := pathParser.ParseString("", data)
	if err != nil {
		return fmt.Errorf("svgpath: parse: %w", err)
	}
	if len(ast.Commands) == 0 {
		return nil
	}
	if first := ast.Commands[0].Letter[0]; first != 'M' && first != 'm' {
		return fmt.Errorf("svgpath: path data must begin with a moveto, got %q", ast.Commands[0].Letter)
	}

	lw := lowerer{path: p}
	for _, cmd := range ast.Commands {
		if err := lw.lower(cmd); err != nil {
			return err
		}
	}
	return nil
}

// lowerer tracks authoring state while commands lower onto the path.
type lowerer struct {
	path  *pathmesh.Path
	cur   pathmesh.Point
	start pathmesh.Point
	open  bool

	// prev is the canonical letter of the previous segment ('C' after any
	// cubic, 'Q' after any quadratic), driving the S and T control-point
	// reflections.
	prev      byte
	cubicCtrl pathmesh.Point
	quadCtrl  pathmesh.Point
}

func (l *lowerer) lower(cmd pathCommand) error {
	letter := cmd.Letter[0]
	relative := letter >= 'a'
	upper := letter
	if relative {
		upper -= 'a' - 'A'
	}

	if upper == 'Z' {
		if len(cmd.Args) != 0 {
			return fmt.Errorf("svgpath: %s takes no arguments, got %d", cmd.Letter, len(cmd.Args))
		}
		l.path.Close()
		l.cur = l.start
		l.open = false
		l.prev = 'Z'
		return nil
	}

	n := arity[upper]
	if len(cmd.Args) == 0 || len(cmd.Args)%n != 0 {
		return fmt.Errorf("svgpath: %s needs arguments in groups of %d, got %d", cmd.Letter, n, len(cmd.Args))
	}
	for i := 0; i < len(cmd.Args); i += n {
		if err := l.segment(upper, relative, i > 0, cmd.Args[i:i+n]); err != nil {
			return err
		}
	}
	return nil
}

// segment lowers one argument group. A repeated moveto group continues as
// a lineto, per SVG.
func (l *lowerer) segment(upper byte, relative, repeat bool, args []float32) error {
	switch upper {
	case 'M':
		pt := l.abs(relative, args[0], args[1])
		if repeat {
			l.lineTo(pt)
			break
		}
		l.path.MoveTo(pt.X, pt.Y)
		l.cur = pt
		l.start = pt
		l.open = true
		l.prev = 'M'

	case 'L':
		l.lineTo(l.abs(relative, args[0], args[1]))

	case 'H':
		x := args[0]
		if relative {
			x += l.cur.X
		}
		l.lineTo(pathmesh.Pt(x, l.cur.Y))

	case 'V':
		y := args[0]
		if relative {
			y += l.cur.Y
		}
		l.lineTo(pathmesh.Pt(l.cur.X, y))

	case 'C':
		c1 := l.abs(relative, args[0], args[1])
		c2 := l.abs(relative, args[2], args[3])
		l.curveTo(c1, c2, l.abs(relative, args[4], args[5]))

	case 'S':
		c1 := l.reflect(l.cubicCtrl, l.prev == 'C')
		c2 := l.abs(relative, args[0], args[1])
		l.curveTo(c1, c2, l.abs(relative, args[2], args[3]))

	case 'Q':
		q := l.abs(relative, args[0], args[1])
		l.quadTo(q, l.abs(relative, args[2], args[3]))

	case 'T':
		q := l.reflect(l.quadCtrl, l.prev == 'Q')
		l.quadTo(q, l.abs(relative, args[0], args[1]))

	case 'A':
		large, err := arcFlag(args[3])
		if err != nil {
			return err
		}
		sweep, err := arcFlag(args[4])
		if err != nil {
			return err
		}
		l.arc(args[0], args[1], args[2], large, sweep, l.abs(relative, args[5], args[6]))
	}
	return nil
}

// ensureOpen starts a new figure at the current point when a drawing
// command follows a closepath without an intervening moveto.
func (l *lowerer) ensureOpen() {
	if l.open {
		return
	}
	l.path.MoveTo(l.cur.X, l.cur.Y)
	l.start = l.cur
	l.open = true
}

func (l *lowerer) abs(relative bool, x, y float32) pathmesh.Point {
	if relative {
		return pathmesh.Pt(l.cur.X+x, l.cur.Y+y)
	}
	return pathmesh.Pt(x, y)
}

// reflect mirrors the previous control point about the current point. When
// the previous segment did not set one, the current point stands in.
func (l *lowerer) reflect(ctrl pathmesh.Point, valid bool) pathmesh.Point {
	if !valid {
		return l.cur
	}
	return pathmesh.Pt(2*l.cur.X-ctrl.X, 2*l.cur.Y-ctrl.Y)
}

func (l *lowerer) lineTo(pt pathmesh.Point) {
	l.ensureOpen()
	l.path.LineTo(pt.X, pt.Y)
	l.cur = pt
	l.prev = 'L'
}

func (l *lowerer) curveTo(c1, c2, end pathmesh.Point) {
	l.ensureOpen()
	l.path.CurveTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)
	l.cubicCtrl = c2
	l.cur = end
	l.prev = 'C'
}

// quadTo elevates a quadratic segment to the cubic with the same shape.
func (l *lowerer) quadTo(q, end pathmesh.Point) {
	l.ensureOpen()
	c1 := pathmesh.Pt(l.cur.X+2*(q.X-l.cur.X)/3, l.cur.Y+2*(q.Y-l.cur.Y)/3)
	c2 := pathmesh.Pt(end.X+2*(q.X-end.X)/3, end.Y+2*(q.Y-end.Y)/3)
	l.path.CurveTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)
	l.quadCtrl = q
	l.cur = end
	l.prev = 'Q'
}

func arcFlag(v float32) (bool, error) {
	switch v {
	case 0:
		return false, nil
	case 1:
		return true, nil
	}
	return false, fmt.Errorf("svgpath: arc flag must be 0 or 1, got %g", v)
}

// arc lowers an elliptical arc via the endpoint-to-center conversion of
// SVG 1.1 appendix F.6, then approximates each slice of at most a quarter
// turn with one cubic segment.
func (l *lowerer) arc(rx, ry, rotDeg float32, large, sweep bool, end pathmesh.Point) {
	// Identical endpoints mean no segment at all.
	if l.cur == end {
		return
	}
	// A zero radius collapses the arc to a straight line.
	if rx == 0 || ry == 0 {
		l.lineTo(end)
		return
	}
	l.ensureOpen()
	rx = math32.Abs(rx)
	ry = math32.Abs(ry)

	sinPhi, cosPhi := math32.Sincos(rotDeg * math32.Pi / 180)

	// F.6.5.1: midpoint form in the ellipse-aligned frame.
	dx := (l.cur.X - end.X) / 2
	dy := (l.cur.Y - end.Y) / 2
	x1p := cosPhi*dx + sinPhi*dy
	y1p := -sinPhi*dx + cosPhi*dy

	// F.6.6.3: scale radii up when no ellipse can reach both endpoints.
	if lambda := x1p*x1p/(rx*rx) + y1p*y1p/(ry*ry); lambda > 1 {
		s := math32.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	// F.6.5.2: center in the aligned frame.
	num := rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p
	den := rx*rx*y1p*y1p + ry*ry*x1p*x1p
	radicand := num / den
	if radicand < 0 {
		radicand = 0
	}
	coef := math32.Sqrt(radicand)
	if large == sweep {
		coef = -coef
	}
	cxp := coef * rx * y1p / ry
	cyp := -coef * ry * x1p / rx

	// F.6.5.3: back to user space.
	cx := cosPhi*cxp - sinPhi*cyp + (l.cur.X+end.X)/2
	cy := sinPhi*cxp + cosPhi*cyp + (l.cur.Y+end.Y)/2

	// F.6.5.5 and F.6.5.6: start angle and sweep extent.
	theta := angleFrom(1, 0, (x1p-cxp)/rx, (y1p-cyp)/ry)
	dTheta := angleFrom((x1p-cxp)/rx, (y1p-cyp)/ry, (-x1p-cxp)/rx, (-y1p-cyp)/ry)
	if !sweep && dTheta > 0 {
		dTheta -= 2 * math32.Pi
	}
	if sweep && dTheta < 0 {
		dTheta += 2 * math32.Pi
	}

	segments := max(1, int(math32.Ceil(math32.Abs(dTheta)/(math32.Pi/2))))
	delta := dTheta / float32(segments)
	tanHalf := math32.Tan(delta / 2)
	alpha := math32.Sin(delta) * (math32.Sqrt(4+3*tanHalf*tanHalf) - 1) / 3

	pt := l.cur
	for range segments {
		next := theta + delta

		sin1, cos1 := math32.Sincos(theta)
		sin2, cos2 := math32.Sincos(next)
		d1 := ellipseDeriv(rx, ry, sinPhi, cosPhi, sin1, cos1)
		d2 := ellipseDeriv(rx, ry, sinPhi, cosPhi, sin2, cos2)
		p2 := pathmesh.Pt(
			cx+rx*cos2*cosPhi-ry*sin2*sinPhi,
			cy+rx*cos2*sinPhi+ry*sin2*cosPhi,
		)

		l.path.CurveTo(
			pt.X+alpha*d1.X, pt.Y+alpha*d1.Y,
			p2.X-alpha*d2.X, p2.Y-alpha*d2.Y,
			p2.X, p2.Y,
		)
		pt = p2
		theta = next
	}

	l.cur = end
	l.prev = 'L'
}

// ellipseDeriv is the derivative of the rotated-ellipse parameterization
// with respect to the angle.
func ellipseDeriv(rx, ry, sinPhi, cosPhi, sinT, cosT float32) pathmesh.Point {
	return pathmesh.Pt(
		-rx*sinT*cosPhi-ry*cosT*sinPhi,
		-rx*sinT*sinPhi+ry*cosT*cosPhi,
	)
}

// angleFrom returns the signed angle from vector u to vector v.
func angleFrom(ux, uy, vx, vy float32) float32 {
	dot := ux*vx + uy*vy
	norm := math32.Sqrt((ux*ux + uy*uy) * (vx*vx + vy*vy))
	cos := dot / norm
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	a := math32.Acos(cos)
	if ux*vy-uy*vx < 0 {
		return -a
	}
	return a
}
