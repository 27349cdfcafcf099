package overlay

import (
	"testing"

	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathLengthStraightLine(t *testing.T) {
	var p Path
	p.MoveTo(r2.Point{X: 0, Y: 0})
	p.LineTo(r2.Point{X: 10, Y: 0})

	assert.InDelta(t, 10, p.Length(), 1e-9)
}

func TestPathLengthDegenerateQuad(t *testing.T) {
	// Control collinear with the endpoints: arc length equals the chord.
	var p Path
	p.MoveTo(r2.Point{X: 0, Y: 0})
	p.QuadTo(r2.Point{X: 5, Y: 0}, r2.Point{X: 10, Y: 0})

	assert.InDelta(t, 10, p.Length(), 1e-6)
}

func TestPathBounds(t *testing.T) {
	var p Path
	p.MoveTo(r2.Point{X: 2, Y: 3})
	p.LineTo(r2.Point{X: 12, Y: 3})
	p.LineTo(r2.Point{X: 12, Y: 23})

	b := p.Bounds()
	assert.InDelta(t, 2, b.X.Lo, 1e-9)
	assert.InDelta(t, 12, b.X.Hi, 1e-9)
	assert.InDelta(t, 3, b.Y.Lo, 1e-9)
	assert.InDelta(t, 23, b.Y.Hi, 1e-9)
}

func TestPathBoundsEmpty(t *testing.T) {
	var p Path
	assert.True(t, p.Bounds().IsEmpty())
}

func TestPathData(t *testing.T) {
	var p Path
	p.MoveTo(r2.Point{X: 0, Y: 0})
	p.LineTo(r2.Point{X: 10, Y: 5})
	p.QuadTo(r2.Point{X: 12, Y: 6}, r2.Point{X: 14, Y: 8})
	p.Close()

	require.Equal(t, "M 0.00 0.00 L 10.00 5.00 Q 12.00 6.00 14.00 8.00 Z", p.Data())
}

func TestPathCubicFlattenEndsAtEndpoint(t *testing.T) {
	var p Path
	p.MoveTo(r2.Point{X: 0, Y: 0})
	p.CubicTo(r2.Point{X: 0, Y: 10}, r2.Point{X: 10, Y: 10}, r2.Point{X: 10, Y: 0})

	pts := p.flatten()
	require.NotEmpty(t, pts)

	last := pts[len(pts)-1]
	assert.InDelta(t, 10, last.X, 1e-9)
	assert.InDelta(t, 0, last.Y, 1e-9)
}
