package overlay

import (
	"fmt"
	"math"
	"strings"

	"github.com/golang/geo/r2"
)

// CmdKind tells the drawing surface which path command to execute.
type CmdKind int

const (
	MoveTo CmdKind = iota
	LineTo
	QuadTo
	CubicTo
	ClosePath
)

// Cmd is one path command. QuadTo uses P1 as control and P2 as endpoint;
// CubicTo uses P1/P2 as controls and P3 as endpoint; MoveTo and LineTo only
// use P1.
type Cmd struct {
	Kind       CmdKind
	P1, P2, P3 r2.Point
}

// Path is a finite command sequence describing one stroke or fill outline.
type Path struct {
	Cmds []Cmd
}

func (p *Path) MoveTo(pt r2.Point) {
	p.Cmds = append(p.Cmds, Cmd{Kind: MoveTo, P1: pt})
}

func (p *Path) LineTo(pt r2.Point) {
	p.Cmds = append(p.Cmds, Cmd{Kind: LineTo, P1: pt})
}

func (p *Path) QuadTo(ctrl, end r2.Point) {
	p.Cmds = append(p.Cmds, Cmd{Kind: QuadTo, P1: ctrl, P2: end})
}

func (p *Path) CubicTo(c1, c2, end r2.Point) {
	p.Cmds = append(p.Cmds, Cmd{Kind: CubicTo, P1: c1, P2: c2, P3: end})
}

func (p *Path) Close() {
	p.Cmds = append(p.Cmds, Cmd{Kind: ClosePath})
}

func (p Path) Empty() bool {
	return len(p.Cmds) == 0
}

const flattenSteps = 16

// flatten samples the path into a polyline, one point per command step for
// lines and flattenSteps per curve. Used for length and bounds.
func (p Path) flatten() []r2.Point {
	pts := []r2.Point{}
	cur := r2.Point{}
	start := r2.Point{}

	for _, c := range p.Cmds {
		switch c.Kind {
		case MoveTo:
			cur = c.P1
			start = c.P1
			pts = append(pts, cur)
		case LineTo:
			cur = c.P1
			pts = append(pts, cur)
		case QuadTo:
			for i := 1; i <= flattenSteps; i++ {
				t := float64(i) / flattenSteps
				pts = append(pts, quadPoint(cur, c.P1, c.P2, t))
			}
			cur = c.P2
		case CubicTo:
			for i := 1; i <= flattenSteps; i++ {
				t := float64(i) / flattenSteps
				pts = append(pts, cubicPoint(cur, c.P1, c.P2, c.P3, t))
			}
			cur = c.P3
		case ClosePath:
			cur = start
			pts = append(pts, cur)
		}
	}

	return pts
}

func quadPoint(p0, c, p1 r2.Point, t float64) r2.Point {
	u := 1 - t
	return p0.Mul(u * u).Add(c.Mul(2 * u * t)).Add(p1.Mul(t * t))
}

func cubicPoint(p0, c1, c2, p1 r2.Point, t float64) r2.Point {
	u := 1 - t
	return p0.Mul(u * u * u).
		Add(c1.Mul(3 * u * u * t)).
		Add(c2.Mul(3 * u * t * t)).
		Add(p1.Mul(t * t * t))
}

// Length approximates the path length by chord sampling. The animator uses it
// to size the dash pattern for the stroke-reveal effect.
func (p Path) Length() float64 {
	pts := p.flatten()
	total := 0.0

	for i := 1; i < len(pts); i++ {
		total += pts[i].Sub(pts[i-1]).Norm()
	}

	return total
}

// Bounds returns the axis-aligned bounding rect of the sampled path.
func (p Path) Bounds() r2.Rect {
	pts := p.flatten()

	if len(pts) == 0 {
		return r2.EmptyRect()
	}

	return r2.RectFromPoints(pts...)
}

// Data encodes the path as SVG path data.
func (p Path) Data() string {
	var b strings.Builder

	for i, c := range p.Cmds {
		if i > 0 {
			b.WriteByte(' ')
		}

		switch c.Kind {
		case MoveTo:
			fmt.Fprintf(&b, "M %.2f %.2f", c.P1.X, c.P1.Y)
		case LineTo:
			fmt.Fprintf(&b, "L %.2f %.2f", c.P1.X, c.P1.Y)
		case QuadTo:
			fmt.Fprintf(&b, "Q %.2f %.2f %.2f %.2f", c.P1.X, c.P1.Y, c.P2.X, c.P2.Y)
		case CubicTo:
			fmt.Fprintf(&b, "C %.2f %.2f %.2f %.2f %.2f %.2f", c.P1.X, c.P1.Y, c.P2.X, c.P2.Y, c.P3.X, c.P3.Y)
		case ClosePath:
			b.WriteString("Z")
		}
	}

	return b.String()
}

func mid(a, b r2.Point) r2.Point {
	return a.Add(b).Mul(0.5)
}

func rotate(p r2.Point, rad float64) r2.Point {
	sin, cos := math.Sincos(rad)
	return r2.Point{X: p.X*cos - p.Y*sin, Y: p.X*sin + p.Y*cos}
}
