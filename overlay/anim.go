package overlay

import (
	"math"
	"time"
)

// Timing holds the animation durations for one rendering pass. Tests shrink
// these to run timer-driven assertions in milliseconds.
type Timing struct {
	Draw        time.Duration // stroke reveal window per annotation
	LabelFade   time.Duration // label pop-in after the draw completes
	Buffer      time.Duration // settle time added to the aggregate completion
	Stagger     time.Duration // per-index delay for annotations without one
	PulsePeriod time.Duration // full cycle of the highlight pulse
}

func DefaultTiming() Timing {
	return Timing{
		Draw:        500 * time.Millisecond,
		LabelFade:   300 * time.Millisecond,
		Buffer:      200 * time.Millisecond,
		Stagger:     350 * time.Millisecond,
		PulsePeriod: 1600 * time.Millisecond,
	}
}

// StrokeWindow is one stroke's share of the draw window, as fractions of
// Timing.Draw. End may exceed 1 (the arrow head finishes past the base
// window; the aggregate buffer absorbs the overhang).
type StrokeWindow struct {
	Start, End float64
}

// strokeWindows maps a kind onto its stroke timelines. The X's second stroke
// starts at 40% so the two diagonals visually cross mid-draw; the arrow head
// waits for 70% shaft progress.
func strokeWindows(kind Kind, strokes int) []StrokeWindow {
	switch kind {
	case XMark:
		return []StrokeWindow{{0, 0.6}, {0.4, 1.0}}
	case Arrow:
		return []StrokeWindow{{0, 1.0}, {0.7, 1.1}}
	}

	windows := make([]StrokeWindow, strokes)
	for i := range windows {
		windows[i] = StrokeWindow{0, 1}
	}
	return windows
}

// Progress evaluates the stroke at u, where u is elapsed draw time as a
// fraction of Timing.Draw. Eased so the stroke starts fast and settles.
func (w StrokeWindow) Progress(u float64) float64 {
	if w.End <= w.Start {
		if u >= w.End {
			return 1
		}
		return 0
	}

	return easeOutCubic(clamp01((u - w.Start) / (w.End - w.Start)))
}

// maxWindowEnd is the draw-window fraction at which every stroke is done.
func maxWindowEnd(windows []StrokeWindow) float64 {
	end := 1.0
	for _, w := range windows {
		if w.End > end {
			end = w.End
		}
	}
	return end
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func easeOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// easeOutBack overshoots slightly before settling, giving labels their pop.
func easeOutBack(t float64) float64 {
	const c1 = 1.70158
	const c3 = c1 + 1

	u := t - 1
	return 1 + c3*u*u*u + c1*u*u
}

const (
	pulseMin = 1.0
	pulseMax = 1.15
)

// pulseScale oscillates between pulseMin and pulseMax, starting at rest so
// the transition out of the reveal is seamless.
func pulseScale(sincePulseStart, period time.Duration) float64 {
	if period <= 0 || sincePulseStart < 0 {
		return pulseMin
	}

	phase := float64(sincePulseStart) / float64(period) * 2 * math.Pi
	amp := (pulseMax - pulseMin) / 2

	return pulseMin + amp*(1-math.Cos(phase))
}
