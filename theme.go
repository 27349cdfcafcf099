package main

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/scrawldev/scrawl/overlay"
)

// Theme is the optional YAML config: palette overrides plus timing knobs.
// Zero fields fall back to the overlay defaults.
type Theme struct {
	Colors      map[string]string `yaml:"colors"`
	DrawMS      int               `yaml:"draw_ms"`
	LabelMS     int               `yaml:"label_ms"`
	BufferMS    int               `yaml:"buffer_ms"`
	StaggerMS   int               `yaml:"stagger_ms"`
	PulseMS     int               `yaml:"pulse_ms"`
	StrokeWidth float64           `yaml:"stroke_width"`
}

func loadTheme(path string) (Theme, error) {
	var theme Theme

	if path == "" {
		return theme, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return theme, err
	}

	if err := yaml.Unmarshal(data, &theme); err != nil {
		return theme, err
	}

	return theme, nil
}

func (t Theme) timing() overlay.Timing {
	timing := overlay.DefaultTiming()

	if t.DrawMS > 0 {
		timing.Draw = time.Duration(t.DrawMS) * time.Millisecond
	}
	if t.LabelMS > 0 {
		timing.LabelFade = time.Duration(t.LabelMS) * time.Millisecond
	}
	if t.BufferMS > 0 {
		timing.Buffer = time.Duration(t.BufferMS) * time.Millisecond
	}
	if t.StaggerMS > 0 {
		timing.Stagger = time.Duration(t.StaggerMS) * time.Millisecond
	}
	if t.PulseMS > 0 {
		timing.PulsePeriod = time.Duration(t.PulseMS) * time.Millisecond
	}

	return timing
}

func (t Theme) options(seed int64, plain bool) overlay.Options {
	return overlay.Options{
		Timing:        t.timing(),
		Palette:       t.Colors,
		DisableWobble: plain,
		Seed:          seed,
		StrokeWidth:   t.StrokeWidth,
	}
}
