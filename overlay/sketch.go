package overlay

import (
	"math"
	"math/rand"

	"github.com/golang/geo/r2"
)

// Base extents in pixels at size 1. The annotation's size multiplier scales
// these along with the stroke width.
const (
	circleRadius    = 26.0
	checkUnit       = 12.0
	xHalfExtent     = 11.0
	arrowHeadLength = 16.0
	highlightRadius = 30.0
)

const (
	circleSegments     = 24
	circleRadiusWobble = 0.08
	pointJitter        = 2.0
)

// Sketch is the synthesized geometry for one annotation. Strokes animate via
// the dash-offset reveal; Filled marks the first stroke as a filled outline
// whose fill opacity tracks draw progress; Disc is set for highlights, which
// have no path at all.
type Sketch struct {
	Kind    Kind
	Strokes []Path
	Filled  bool
	Disc    *Disc
}

// Disc is a soft filled glow. Radius animates with the pulse after reveal.
type Disc struct {
	Center r2.Point
	Radius float64
}

func (s Sketch) Empty() bool {
	return len(s.Strokes) == 0 && s.Disc == nil
}

// Sketcher synthesizes hand-drawn-looking paths. Each call re-rolls the
// wobble, so callers must synthesize once per annotation and reuse the result
// (the timeline does this when it builds its items).
type Sketcher struct {
	rng    *rand.Rand
	wobble bool
}

// NewSketcher returns a synthesizer seeded for reproducible output. With
// wobble disabled the same command structure is produced without jitter.
func NewSketcher(seed int64, wobble bool) *Sketcher {
	return &Sketcher{rng: rand.New(rand.NewSource(seed)), wobble: wobble}
}

// jitter returns a uniform offset in [-n, n], or 0 when wobble is off.
func (s *Sketcher) jitter(n float64) float64 {
	if !s.wobble {
		return 0
	}

	return (s.rng.Float64()*2 - 1) * n
}

func (s *Sketcher) jitterPoint(p r2.Point, n float64) r2.Point {
	return r2.Point{X: p.X + s.jitter(n), Y: p.Y + s.jitter(n)}
}

// Sketch dispatches on the annotation kind. Unknown kinds return an empty
// sketch; non-positive sizes collapse the geometry onto the anchor without
// failing.
func (s *Sketcher) Sketch(kind Kind, anchor, target r2.Point, size float64) Sketch {
	if size < 0 {
		size = 0
	}

	switch kind {
	case Circle:
		return Sketch{Kind: kind, Strokes: []Path{s.circle(anchor, circleRadius*size)}}
	case Checkmark:
		return Sketch{Kind: kind, Strokes: []Path{s.checkmark(anchor, checkUnit*size)}}
	case XMark:
		return Sketch{Kind: kind, Strokes: s.xMark(anchor, xHalfExtent*size)}
	case Arrow:
		return Sketch{Kind: kind, Strokes: s.arrow(anchor, target, arrowHeadLength*size)}
	case Pointer:
		return Sketch{Kind: kind, Strokes: []Path{s.pointer(anchor, size)}, Filled: true}
	case Highlight:
		return Sketch{Kind: kind, Disc: &Disc{Center: anchor, Radius: highlightRadius * size}}
	}

	return Sketch{Kind: kind}
}

// circle samples evenly spaced points around the ring, perturbs each radius
// and position, and smooths the result with quadratic segments through the
// chord midpoints so the wobble reads as a loose pen stroke.
func (s *Sketcher) circle(center r2.Point, radius float64) Path {
	pts := make([]r2.Point, circleSegments)

	for i := range pts {
		angle := float64(i) / circleSegments * 2 * math.Pi
		r := radius * (1 + s.jitter(circleRadiusWobble))
		pts[i] = s.jitterPoint(r2.Point{
			X: center.X + math.Cos(angle)*r,
			Y: center.Y + math.Sin(angle)*r,
		}, pointJitter)
	}

	var p Path
	p.MoveTo(mid(pts[circleSegments-1], pts[0]))

	for i := range pts {
		next := pts[(i+1)%circleSegments]
		p.QuadTo(pts[i], mid(pts[i], next))
	}

	p.Close()
	return p
}

// checkmark is a short downstroke into a longer upstroke, drawn as two
// quadratic segments sharing the low point.
func (s *Sketcher) checkmark(anchor r2.Point, unit float64) Path {
	a := s.jitterPoint(r2.Point{X: anchor.X - 0.9*unit, Y: anchor.Y - 0.1*unit}, pointJitter)
	b := s.jitterPoint(r2.Point{X: anchor.X - 0.25*unit, Y: anchor.Y + 0.7*unit}, pointJitter)
	c := s.jitterPoint(r2.Point{X: anchor.X + 1.1*unit, Y: anchor.Y - 0.9*unit}, pointJitter)

	var p Path
	p.MoveTo(a)
	p.QuadTo(s.jitterPoint(mid(a, b), pointJitter), b)
	p.QuadTo(s.jitterPoint(mid(b, c), pointJitter), c)
	return p
}

// xMark returns two independent diagonal strokes. They stay separate paths
// because the animator offsets the second stroke in time.
func (s *Sketcher) xMark(anchor r2.Point, half float64) []Path {
	jit := pointJitter * 1.5

	var first Path
	first.MoveTo(s.jitterPoint(r2.Point{X: anchor.X - half, Y: anchor.Y - half}, jit))
	first.LineTo(s.jitterPoint(r2.Point{X: anchor.X + half, Y: anchor.Y + half}, jit))

	var second Path
	second.MoveTo(s.jitterPoint(r2.Point{X: anchor.X + half, Y: anchor.Y - half}, jit))
	second.LineTo(s.jitterPoint(r2.Point{X: anchor.X - half, Y: anchor.Y + half}, jit))

	return []Path{first, second}
}

// arrow is a curved shaft plus a separate two-segment head. The head angle is
// taken from the shaft tangent at the endpoint, opening at +-30 degrees.
func (s *Sketcher) arrow(from, to r2.Point, headLen float64) []Path {
	ctrl := s.jitterPoint(mid(from, to), 6)

	var shaft Path
	shaft.MoveTo(from)
	shaft.QuadTo(ctrl, to)

	// Tangent at the quad endpoint runs from the control to the endpoint.
	dir := to.Sub(ctrl)
	if dir.Norm() == 0 {
		dir = to.Sub(from)
	}
	if dir.Norm() > 0 {
		dir = dir.Normalize()
	}

	left := to.Sub(rotate(dir, math.Pi/6).Mul(headLen))
	right := to.Sub(rotate(dir, -math.Pi/6).Mul(headLen))

	var head Path
	head.MoveTo(s.jitterPoint(left, pointJitter))
	head.LineTo(to)
	head.LineTo(s.jitterPoint(right, pointJitter))

	return []Path{shaft, head}
}

// pointer is a closed teardrop pin: two symmetric cubic halves meeting at a
// tip below the anchor with a rounded top above it. Rendered filled.
func (s *Sketcher) pointer(anchor r2.Point, size float64) Path {
	u := 1.0 * size
	tip := r2.Point{X: anchor.X, Y: anchor.Y + 14*u}
	top := r2.Point{X: anchor.X, Y: anchor.Y - 16*u}

	var p Path
	p.MoveTo(tip)
	p.CubicTo(
		s.jitterPoint(r2.Point{X: anchor.X - 12*u, Y: anchor.Y + 2*u}, pointJitter),
		s.jitterPoint(r2.Point{X: anchor.X - 12*u, Y: anchor.Y - 16*u}, pointJitter),
		top,
	)
	p.CubicTo(
		s.jitterPoint(r2.Point{X: anchor.X + 12*u, Y: anchor.Y - 16*u}, pointJitter),
		s.jitterPoint(r2.Point{X: anchor.X + 12*u, Y: anchor.Y + 2*u}, pointJitter),
		tip,
	)
	p.Close()
	return p
}
