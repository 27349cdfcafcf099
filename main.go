package main

import (
	"github.com/alecthomas/kong"
)

var cli struct {
	Theme string `help:"YAML theme file overriding palette colors and timings" type:"existingfile"`
	Seed  int64  `help:"Wobble seed for reproducible output. 0 picks one from the clock"`

	Render RenderCmd `cmd:"" help:"Render an annotation overlay to svg, html, png or jpg"`
	Frames FramesCmd `cmd:"" help:"Export static overlay snapshots at evenly spaced times"`
	Import ImportCmd `cmd:"" help:"Convert a PDF's own annotations into overlay descriptors"`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("scrawl"),
		kong.Description("Animated hand-drawn annotation overlays for images and PDF pages."))

	endIfErr(ctx.Run())
}
