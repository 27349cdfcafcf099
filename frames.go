package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/scrawldev/scrawl/overlay"
)

type FramesCmd struct {
	Width  float64 `short:"W" default:"1000" help:"Overlay width in pixels"`
	Height float64 `short:"H" default:"750" help:"Overlay height in pixels"`

	Count   int    `short:"c" default:"12" help:"Number of snapshots across the pass"`
	OutDir  string `short:"o" type:"path" default:"frames" help:"Directory for the snapshot files"`
	Base    string `short:"n" default:"frame" help:"Base name of the snapshot files"`
	Plain   bool   `help:"Disable the hand-drawn wobble"`

	Annotations string `arg:"" name:"annotations" type:"existingfile" help:"Annotation descriptors JSON"`
}

// Run writes Count static SVG snapshots spanning the whole pass. The
// timeline is read-only once built, so the snapshots render concurrently.
func (c *FramesCmd) Run() error {
	data, err := os.ReadFile(c.Annotations)
	if err != nil {
		return err
	}

	annotations, err := overlay.ParseAnnotations(data)
	if err != nil {
		return err
	}

	theme, err := loadTheme(cli.Theme)
	if err != nil {
		return err
	}

	if c.Count < 2 {
		return fmt.Errorf("need at least 2 frames, got %d", c.Count)
	}

	if err := os.MkdirAll(c.OutDir, os.ModePerm); err != nil {
		return err
	}

	timeline := overlay.Build(annotations, c.Width, c.Height, theme.options(cli.Seed, c.Plain))
	total := timeline.Duration()

	var g errgroup.Group
	g.SetLimit(4)

	for i := 0; i < c.Count; i++ {
		at := time.Duration(float64(total) * float64(i) / float64(c.Count-1))
		name := filepath.Join(c.OutDir, fmt.Sprintf("%s-%03d.svg", c.Base, i))

		g.Go(func() error {
			f, err := os.Create(name)
			if err != nil {
				return err
			}
			defer f.Close()

			return timeline.WriteSVG(f, overlay.SVGOptions{At: &at})
		})
	}

	return g.Wait()
}
