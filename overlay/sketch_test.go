package overlay

import (
	"testing"

	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allKinds = []Kind{Circle, Checkmark, XMark, Arrow, Highlight, Pointer}

func TestSketchKnownKindsProduceGeometry(t *testing.T) {
	s := NewSketcher(1, true)
	anchor := r2.Point{X: 100, Y: 100}
	target := r2.Point{X: 180, Y: 140}

	for _, kind := range allKinds {
		sketch := s.Sketch(kind, anchor, target, 1)
		assert.False(t, sketch.Empty(), "kind %s", kind)
	}
}

func TestSketchUnknownKindEmpty(t *testing.T) {
	s := NewSketcher(1, true)
	sketch := s.Sketch(Kind("sparkle"), r2.Point{X: 10, Y: 10}, r2.Point{}, 1)

	assert.True(t, sketch.Empty())
}

func TestSketchDegenerateSize(t *testing.T) {
	s := NewSketcher(1, false)
	anchor := r2.Point{X: 50, Y: 50}

	for _, size := range []float64{0, -3} {
		for _, kind := range allKinds {
			sketch := s.Sketch(kind, anchor, anchor, size)

			for _, stroke := range sketch.Strokes {
				b := stroke.Bounds()
				assert.LessOrEqual(t, b.X.Hi-b.X.Lo, 0.01, "kind %s size %v", kind, size)
				assert.LessOrEqual(t, b.Y.Hi-b.Y.Lo, 0.01, "kind %s size %v", kind, size)
			}

			if sketch.Disc != nil {
				assert.Equal(t, 0.0, sketch.Disc.Radius)
			}
		}
	}
}

func TestSketchBoundsScaleWithSizeExact(t *testing.T) {
	s := NewSketcher(1, false)
	anchor := r2.Point{X: 0, Y: 0}

	one := s.Sketch(Circle, anchor, anchor, 1).Strokes[0].Bounds()
	two := s.Sketch(Circle, anchor, anchor, 2).Strokes[0].Bounds()

	assert.InDelta(t, 2*(one.X.Hi-one.X.Lo), two.X.Hi-two.X.Lo, 1e-6)
}

func TestSketchBoundsScaleWithSizeWobbled(t *testing.T) {
	s := NewSketcher(7, true)
	anchor := r2.Point{X: 0, Y: 0}

	one := s.Sketch(Circle, anchor, anchor, 1).Strokes[0].Bounds()
	two := s.Sketch(Circle, anchor, anchor, 2).Strokes[0].Bounds()

	ratio := (two.X.Hi - two.X.Lo) / (one.X.Hi - one.X.Lo)
	assert.InDelta(t, 2, ratio, 0.5)
}

func TestSketchNoWobbleIsSeedIndependent(t *testing.T) {
	anchor := r2.Point{X: 30, Y: 40}
	target := r2.Point{X: 90, Y: 10}

	for _, kind := range allKinds {
		a := NewSketcher(1, false).Sketch(kind, anchor, target, 1)
		b := NewSketcher(99, false).Sketch(kind, anchor, target, 1)

		require.Equal(t, len(a.Strokes), len(b.Strokes))
		for i := range a.Strokes {
			assert.Equal(t, a.Strokes[i].Data(), b.Strokes[i].Data(), "kind %s", kind)
		}
	}
}

func TestSketchSameSeedDeterministic(t *testing.T) {
	anchor := r2.Point{X: 30, Y: 40}

	a := NewSketcher(42, true).Sketch(Circle, anchor, anchor, 1)
	b := NewSketcher(42, true).Sketch(Circle, anchor, anchor, 1)

	assert.Equal(t, a.Strokes[0].Data(), b.Strokes[0].Data())
}

func TestXMarkHasTwoIndependentStrokes(t *testing.T) {
	s := NewSketcher(1, true)
	sketch := s.Sketch(XMark, r2.Point{X: 50, Y: 50}, r2.Point{}, 1)

	require.Len(t, sketch.Strokes, 2)
	assert.NotEqual(t, sketch.Strokes[0].Data(), sketch.Strokes[1].Data())
}

func TestArrowShaftAndHead(t *testing.T) {
	s := NewSketcher(1, false)
	from := r2.Point{X: 0, Y: 0}
	to := r2.Point{X: 100, Y: 0}

	sketch := s.Sketch(Arrow, from, to, 1)
	require.Len(t, sketch.Strokes, 2)

	shaft := sketch.Strokes[0]
	require.Equal(t, MoveTo, shaft.Cmds[0].Kind)
	assert.Equal(t, from, shaft.Cmds[0].P1)

	// Head endpoints sit headLength behind the tip at +-30 degrees.
	head := sketch.Strokes[1]
	require.Len(t, head.Cmds, 3)
	for _, end := range []r2.Point{head.Cmds[0].P1, head.Cmds[2].P1} {
		assert.InDelta(t, arrowHeadLength, end.Sub(to).Norm(), 1e-6)
	}
}

func TestZeroLengthArrowDoesNotPanic(t *testing.T) {
	s := NewSketcher(1, false)
	p := r2.Point{X: 40, Y: 40}

	sketch := s.Sketch(Arrow, p, p, 1)
	require.Len(t, sketch.Strokes, 2)
}

func TestCircleIsClosedAndSmooth(t *testing.T) {
	s := NewSketcher(1, true)
	sketch := s.Sketch(Circle, r2.Point{X: 0, Y: 0}, r2.Point{}, 1)

	cmds := sketch.Strokes[0].Cmds
	require.Equal(t, MoveTo, cmds[0].Kind)
	require.Equal(t, ClosePath, cmds[len(cmds)-1].Kind)

	for _, c := range cmds[1 : len(cmds)-1] {
		assert.Equal(t, QuadTo, c.Kind)
	}
}

func TestPointerIsClosedFill(t *testing.T) {
	s := NewSketcher(1, true)
	sketch := s.Sketch(Pointer, r2.Point{X: 10, Y: 10}, r2.Point{}, 1)

	assert.True(t, sketch.Filled)
	cmds := sketch.Strokes[0].Cmds
	assert.Equal(t, ClosePath, cmds[len(cmds)-1].Kind)
}
