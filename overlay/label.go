package overlay

import (
	"github.com/golang/geo/r2"
)

const (
	labelFontSize   = 13.0
	labelPadX       = 8.0
	labelHeight     = 24.0
	labelMarginLeft = 20.0
	labelMarginEnd  = 100.0
	labelDropY      = 24.0
	labelSlide      = 15.0
	labelTailHalf   = 6.0
)

// LabelLayout is the resolved placement of one speech-bubble tag. X/Y is the
// bubble's top-left in pixels; TailX is where the tail tip points back at the
// annotation anchor (clamped into the bubble).
type LabelLayout struct {
	Text       string
	X, Y, W, H float64
	TailX      float64
}

// estimateTextWidth is a rough proportional-font heuristic; exact metrics
// live in the rendering surface, not here.
func estimateTextWidth(text string, fontSize float64) float64 {
	return float64(len([]rune(text))) * fontSize * 0.6
}

// placeLabel centers the bubble under the anchor, then clamps the horizontal
// position so the bubble never starts inside the left margin nor extends past
// imageWidth - labelMarginEnd.
func placeLabel(text string, anchor r2.Point, imageWidth float64) LabelLayout {
	w := estimateTextWidth(text, labelFontSize) + 2*labelPadX
	x := anchor.X - w/2

	maxX := imageWidth - labelMarginEnd
	if x > maxX {
		x = maxX
	}
	if x < labelMarginLeft {
		x = labelMarginLeft
	}

	tail := anchor.X
	if tail < x+labelTailHalf {
		tail = x + labelTailHalf
	}
	if tail > x+w-labelTailHalf {
		tail = x + w - labelTailHalf
	}

	return LabelLayout{
		Text:  text,
		X:     x,
		Y:     anchor.Y + labelDropY,
		W:     w,
		H:     labelHeight,
		TailX: tail,
	}
}
