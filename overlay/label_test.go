package overlay

import (
	"testing"

	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/assert"
)

func TestPlaceLabelCentersUnderAnchor(t *testing.T) {
	anchor := r2.Point{X: 400, Y: 200}
	l := placeLabel("check this", anchor, 800)

	assert.InDelta(t, anchor.X, l.X+l.W/2, 1e-9)
	assert.Equal(t, anchor.Y+labelDropY, l.Y)
}

func TestPlaceLabelClampsLeftMargin(t *testing.T) {
	l := placeLabel("a long enough label", r2.Point{X: 5, Y: 50}, 800)

	assert.Equal(t, labelMarginLeft, l.X)
}

func TestPlaceLabelClampsRightMargin(t *testing.T) {
	imageWidth := 400.0
	l := placeLabel("a long enough label", r2.Point{X: 395, Y: 50}, imageWidth)

	assert.Equal(t, imageWidth-labelMarginEnd, l.X)
}

func TestPlaceLabelTailStaysInsideBubble(t *testing.T) {
	// Anchor far outside the clamped bubble: the tail clamps to the edge.
	l := placeLabel("hi", r2.Point{X: 780, Y: 50}, 800)

	assert.GreaterOrEqual(t, l.TailX, l.X+labelTailHalf)
	assert.LessOrEqual(t, l.TailX, l.X+l.W-labelTailHalf)
}

func TestEstimateTextWidthGrowsWithText(t *testing.T) {
	assert.Greater(t,
		estimateTextWidth("a much longer label", labelFontSize),
		estimateTextWidth("short", labelFontSize))
}
