package main

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"mime"
	"os"
	"path/filepath"
	"time"

	"github.com/gen2brain/go-fitz"

	"github.com/scrawldev/scrawl/overlay"
)

type RenderCmd struct {
	Width  float64 `short:"W" default:"1000" help:"Overlay width in pixels when no backdrop is given"`
	Height float64 `short:"H" default:"750" help:"Overlay height in pixels when no backdrop is given"`

	Image string `type:"existingfile" help:"Backdrop image (png or jpg)"`
	PDF   string `type:"existingfile" help:"Backdrop PDF; the page is rasterized under the overlay"`
	Page  int    `short:"p" default:"1" help:"PDF page to rasterize"`
	DPI   int    `short:"d" default:"120" help:"Rasterization DPI for PDF backdrops"`

	Format  string `short:"f" enum:"svg,html,png,jpg" default:"svg" help:"Output format"`
	Output  string `short:"o" type:"path" help:"Output file (default: stdout)"`
	At      int    `default:"-1" help:"Freeze the pass at this elapsed time in ms instead of animating"`
	Quality int    `short:"q" default:"90" help:"Image quality. Only applies to jpg output"`
	Plain   bool   `help:"Disable the hand-drawn wobble"`

	Annotations string `arg:"" name:"annotations" type:"existingfile" help:"Annotation descriptors JSON"`
}

// backdrop is a resolved render target: its pixel dimensions plus the encoded
// image bytes to embed, when there are any.
type backdrop struct {
	width, height float64
	data          []byte
	mimeType      string
}

func (c *RenderCmd) Run() error {
	data, err := os.ReadFile(c.Annotations)
	if err != nil {
		return err
	}

	annotations, err := overlay.ParseAnnotations(data)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", c.Annotations, err)
	}

	theme, err := loadTheme(cli.Theme)
	if err != nil {
		return err
	}

	bd, err := c.resolveBackdrop()
	if err != nil {
		return err
	}

	timeline := overlay.Build(annotations, bd.width, bd.height, theme.options(cli.Seed, c.Plain))

	svgOpts := overlay.SVGOptions{Backdrop: bd.data, BackdropMIME: bd.mimeType}
	if c.At >= 0 {
		at := time.Duration(c.At) * time.Millisecond
		svgOpts.At = &at
	} else if c.Format == "png" || c.Format == "jpg" {
		// A screenshot captures a single instant; default to the finished pass.
		at := timeline.Duration()
		svgOpts.At = &at
	}

	out, err := openOutput(c.Output)
	if err != nil {
		return err
	}
	defer out.Close()

	switch c.Format {
	case "svg":
		return timeline.WriteSVG(out, svgOpts)
	case "html":
		return timeline.WriteHTML(out, svgOpts)
	case "png", "jpg":
		var svg bytes.Buffer
		if err := timeline.WriteSVG(&svg, svgOpts); err != nil {
			return err
		}
		return screenshotSVG(svg.String(), c.Format, c.Quality, out)
	}

	return fmt.Errorf("unsupported format %q", c.Format)
}

func (c *RenderCmd) resolveBackdrop() (backdrop, error) {
	switch {
	case c.PDF != "":
		return pdfBackdrop(c.PDF, c.Page, c.DPI)
	case c.Image != "":
		return imageBackdrop(c.Image)
	}

	return backdrop{width: c.Width, height: c.Height}, nil
}

func imageBackdrop(path string) (backdrop, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return backdrop{}, err
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return backdrop{}, fmt.Errorf("decoding %s: %w", path, err)
	}

	mimeType := mime.TypeByExtension(filepath.Ext(path))
	if mimeType == "" {
		mimeType = "image/png"
	}

	return backdrop{
		width:    float64(cfg.Width),
		height:   float64(cfg.Height),
		data:     data,
		mimeType: mimeType,
	}, nil
}

func pdfBackdrop(path string, page, dpi int) (backdrop, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return backdrop{}, err
	}
	defer doc.Close()

	if page < 1 || page > doc.NumPage() {
		return backdrop{}, fmt.Errorf("page %d out of range (document has %d)", page, doc.NumPage())
	}

	img, err := doc.ImageDPI(page-1, float64(dpi))
	if err != nil {
		return backdrop{}, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return backdrop{}, err
	}

	bounds := img.Bounds()

	return backdrop{
		width:    float64(bounds.Dx()),
		height:   float64(bounds.Dy()),
		data:     buf.Bytes(),
		mimeType: "image/png",
	}, nil
}
