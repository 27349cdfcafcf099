package overlay

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/golang/geo/r2"
)

const defaultStrokeWidth = 3.5

// Options configures one rendering pass.
type Options struct {
	Timing        Timing            // zero value -> DefaultTiming
	Palette       map[string]string // per-name hex overrides
	DisableWobble bool              // perfectly smooth geometry, same timing
	Seed          int64             // wobble seed; 0 derives from wall clock
	StrokeWidth   float64           // base stroke width at size 1
}

// Item is one annotation resolved against the image: pixel anchor, memoized
// sketch, stroke timelines, and optional label layout. Geometry is
// synthesized exactly once here so re-reads never re-roll the wobble.
type Item struct {
	Annotation  Annotation
	Index       int
	Delay       time.Duration
	Anchor      r2.Point
	Target      r2.Point
	Sketch      Sketch
	Windows     []StrokeWindow
	Label       *LabelLayout
	ColorHex    string
	StrokeWidth float64
}

// Timeline owns the annotation list for one rendering pass.
type Timeline struct {
	Items  []Item
	Width  float64
	Height float64
	Timing Timing
}

// Build converts percentage coordinates to pixels, assigns missing delays by
// index stagger, and synthesizes every sketch up front. Unknown kinds keep
// their slot (and their delay) but carry empty geometry.
func Build(annotations []Annotation, imageWidth, imageHeight float64, opts Options) *Timeline {
	timing := opts.Timing
	if timing == (Timing{}) {
		timing = DefaultTiming()
	}

	strokeWidth := opts.StrokeWidth
	if strokeWidth <= 0 {
		strokeWidth = defaultStrokeWidth
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	sketcher := NewSketcher(seed, !opts.DisableWobble)

	t := &Timeline{
		Items:  make([]Item, 0, len(annotations)),
		Width:  imageWidth,
		Height: imageHeight,
		Timing: timing,
	}

	for i, raw := range annotations {
		a := raw.normalized()

		delay := time.Duration(i) * timing.Stagger
		if a.Delay != nil && *a.Delay >= 0 {
			delay = time.Duration(*a.Delay) * time.Millisecond
		}

		anchor := r2.Point{X: a.X / 100 * imageWidth, Y: a.Y / 100 * imageHeight}
		target := r2.Point{X: *a.ToX / 100 * imageWidth, Y: *a.ToY / 100 * imageHeight}

		sketch := sketcher.Sketch(a.Kind, anchor, target, a.Size)

		item := Item{
			Annotation:  a,
			Index:       i,
			Delay:       delay,
			Anchor:      anchor,
			Target:      target,
			Sketch:      sketch,
			Windows:     strokeWindows(a.Kind, len(sketch.Strokes)),
			ColorHex:    ColorHex(a.Color, opts.Palette),
			StrokeWidth: strokeWidth * a.Size,
		}

		if a.Label != "" && a.Kind.Known() {
			layout := placeLabel(a.Label, anchor, imageWidth)
			item.Label = &layout
		}

		t.Items = append(t.Items, item)
	}

	return t
}

// Duration is the aggregate completion instant:
// max(delay) + draw + label fade + buffer. Unknown kinds count their delay so
// the pass timing is unaffected by skipped entries. Empty passes complete
// immediately.
func (t *Timeline) Duration() time.Duration {
	if len(t.Items) == 0 {
		return 0
	}

	var maxDelay time.Duration
	for _, item := range t.Items {
		if item.Delay > maxDelay {
			maxDelay = item.Delay
		}
	}

	return maxDelay + t.Timing.Draw + t.Timing.LabelFade + t.Timing.Buffer
}

// Phase is an item's forward-only animation state.
type Phase int

const (
	Pending Phase = iota
	Drawing
	Drawn
)

// ItemState samples one item at a point in time. Strokes holds per-stroke
// reveal progress; LabelProgress is the raw pop-in fraction (easing applied
// by LabelScale/LabelOffsetY); PulseScale stays 1 for everything but drawn
// highlights.
type ItemState struct {
	Phase            Phase
	Strokes          []float64
	FillOpacity      float64
	HighlightOpacity float64
	LabelProgress    float64
	PulseScale       float64
}

// LabelScale maps pop-in progress to the bubble scale (0.8 -> 1, overshoot).
func LabelScale(progress float64) float64 {
	return 0.8 + 0.2*easeOutBack(clamp01(progress))
}

// LabelOffsetY maps pop-in progress to the upward slide (15px -> 0).
func LabelOffsetY(progress float64) float64 {
	return labelSlide * (1 - easeOutBack(clamp01(progress)))
}

const highlightOpacity = 0.35

// StateAt samples every item at elapsed time since the pass started. Pure;
// the player never calls it, frame export and tests do.
func (t *Timeline) StateAt(elapsed time.Duration) []ItemState {
	states := make([]ItemState, len(t.Items))

	for i, item := range t.Items {
		states[i] = t.itemStateAt(item, elapsed)
	}

	return states
}

func (t *Timeline) itemStateAt(item Item, elapsed time.Duration) ItemState {
	state := ItemState{
		Strokes:    make([]float64, len(item.Sketch.Strokes)),
		PulseScale: 1,
	}

	sinceStart := elapsed - item.Delay
	if sinceStart < 0 {
		return state
	}

	u := float64(sinceStart) / float64(t.Timing.Draw)

	state.Phase = Drawing
	if u >= maxWindowEnd(item.Windows) {
		state.Phase = Drawn
	}

	for s, w := range item.Windows {
		state.Strokes[s] = w.Progress(u)
	}

	reveal := easeOutCubic(clamp01(u))

	if item.Sketch.Filled {
		state.FillOpacity = reveal
	}

	if item.Sketch.Disc != nil {
		state.HighlightOpacity = reveal * highlightOpacity

		sincePulse := sinceStart - t.Timing.Draw
		if sincePulse >= 0 {
			state.Phase = Drawn
			state.PulseScale = pulseScale(sincePulse, t.Timing.PulsePeriod)
		}
	}

	if item.Label != nil {
		sinceLabel := sinceStart - t.Timing.Draw
		if sinceLabel >= 0 {
			state.LabelProgress = clamp01(float64(sinceLabel) / float64(t.Timing.LabelFade))
		}
	}

	return state
}

// ErrStarted is returned when a player is started twice.
var ErrStarted = errors.New("overlay: player already started")

// Player schedules a timeline's callback events against the wall clock. All
// timers are owned by the player and die together on Stop, so discarding a
// pass mid-flight leaves nothing behind.
type Player struct {
	OnAnnotationStart func(Annotation, int)
	OnComplete        func()

	timeline *Timeline

	mu      sync.Mutex
	timers  []*time.Timer
	started bool
	stopped bool
	done    chan struct{}
}

func NewPlayer(t *Timeline) *Player {
	return &Player{timeline: t, done: make(chan struct{})}
}

// Start schedules every per-annotation start event plus the single completion
// event. Cancelling ctx tears the player down like Stop. An empty timeline
// completes immediately.
func (p *Player) Start(ctx context.Context) error {
	p.mu.Lock()

	if p.started {
		p.mu.Unlock()
		return ErrStarted
	}
	p.started = true

	for _, item := range p.timeline.Items {
		if p.OnAnnotationStart == nil || !item.Annotation.Kind.Known() {
			continue
		}

		annotation, index := item.Annotation, item.Index
		p.timers = append(p.timers, time.AfterFunc(item.Delay, func() {
			p.fireStart(annotation, index)
		}))
	}

	p.timers = append(p.timers, time.AfterFunc(p.timeline.Duration(), p.finish))

	p.mu.Unlock()

	if ctx != nil && ctx.Done() != nil {
		go func() {
			select {
			case <-ctx.Done():
				p.Stop()
			case <-p.done:
			}
		}()
	}

	return nil
}

func (p *Player) fireStart(a Annotation, index int) {
	p.mu.Lock()
	stopped := p.stopped
	p.mu.Unlock()

	if !stopped {
		p.OnAnnotationStart(a, index)
	}
}

func (p *Player) finish() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	close(p.done)
	cb := p.OnComplete
	p.mu.Unlock()

	if cb != nil {
		cb()
	}
}

// Stop cancels every pending event. Safe to call more than once; no callback
// fires after it returns.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stopped {
		return
	}
	p.stopped = true

	for _, timer := range p.timers {
		timer.Stop()
	}

	close(p.done)
}

// Done is closed once the pass completes or is stopped.
func (p *Player) Done() <-chan struct{} {
	return p.done
}
