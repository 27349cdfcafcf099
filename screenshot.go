package main

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image/jpeg"
	"image/png"
	"io"

	"github.com/chromedp/chromedp"
)

// screenshotSVG rasterizes an SVG document through headless Chrome. The SVG
// is loaded as a base64 data URI so nothing touches the filesystem.
func screenshotSVG(svg, format string, quality int, out io.Writer) error {
	dataURI := "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(svg))

	opts := append(chromedp.DefaultExecAllocatorOptions[:], chromedp.Headless)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(), opts...)
	defer cancelAlloc()

	ctx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	var shot []byte
	tasks := chromedp.Tasks{
		chromedp.Navigate(dataURI),
		chromedp.WaitVisible(`svg`, chromedp.ByQuery),
		chromedp.Screenshot(`svg`, &shot, chromedp.ByQuery),
	}

	if err := chromedp.Run(ctx, tasks); err != nil {
		return fmt.Errorf("chromedp: %w", err)
	}

	if len(shot) == 0 {
		return fmt.Errorf("empty screenshot buffer")
	}

	switch format {
	case "png":
		_, err := out.Write(shot)
		return err
	case "jpg":
		img, err := png.Decode(bytes.NewReader(shot))
		if err != nil {
			return fmt.Errorf("decoding screenshot: %w", err)
		}
		return jpeg.Encode(out, img, &jpeg.Options{Quality: quality})
	}

	return fmt.Errorf("unsupported screenshot format %q", format)
}
