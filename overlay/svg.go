package overlay

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"strings"
	"time"
)

const (
	strokeEase = "0.33 1 0.68 1"    // ease-out cubic
	labelEase  = "0.34 1.56 0.64 1" // back-out overshoot
)

// SVGOptions controls one overlay render. With At nil the output is a
// self-animating SVG; with At set it is a static snapshot of the pass at that
// elapsed time.
type SVGOptions struct {
	Backdrop     []byte // encoded image embedded under the overlay
	BackdropMIME string
	At           *time.Duration
}

// WriteSVG renders the timeline as an SVG overlay the same pixel size as the
// target image. The annotation group carries pointer-events:none so the
// overlay never intercepts interaction meant for what is underneath it.
func (t *Timeline) WriteSVG(w io.Writer, opts SVGOptions) error {
	var buf bytes.Buffer

	fmt.Fprintf(&buf,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">`+"\n",
		t.Width, t.Height, t.Width, t.Height)

	if len(opts.Backdrop) > 0 {
		mime := opts.BackdropMIME
		if mime == "" {
			mime = "image/png"
		}
		fmt.Fprintf(&buf,
			`<image x="0" y="0" width="%.0f" height="%.0f" preserveAspectRatio="none" href="data:%s;base64,%s"/>`+"\n",
			t.Width, t.Height, mime, base64.StdEncoding.EncodeToString(opts.Backdrop))
	}

	buf.WriteString(`<g pointer-events="none">` + "\n")

	var states []ItemState
	if opts.At != nil {
		states = t.StateAt(*opts.At)
	}

	for i, item := range t.Items {
		if item.Sketch.Empty() {
			continue
		}

		if opts.At != nil {
			t.writeStaticItem(&buf, item, states[i])
		} else {
			t.writeAnimatedItem(&buf, item)
		}
	}

	buf.WriteString("</g>\n</svg>\n")

	_, err := w.Write(buf.Bytes())
	return err
}

func (t *Timeline) writeAnimatedItem(buf *bytes.Buffer, item Item) {
	delayMS := item.Delay.Milliseconds()
	drawMS := t.Timing.Draw.Milliseconds()

	if item.Sketch.Disc != nil {
		d := item.Sketch.Disc
		fmt.Fprintf(buf, `<circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s" opacity="0">`+"\n",
			d.Center.X, d.Center.Y, d.Radius, item.ColorHex)
		fmt.Fprintf(buf,
			`<animate attributeName="opacity" from="0" to="%.2f" begin="%dms" dur="%dms" fill="freeze"/>`+"\n",
			highlightOpacity, delayMS, drawMS)
		fmt.Fprintf(buf,
			`<animate attributeName="r" values="%.2f;%.2f;%.2f" begin="%dms" dur="%dms" repeatCount="indefinite"/>`+"\n",
			d.Radius, d.Radius*pulseMax, d.Radius, delayMS+drawMS, t.Timing.PulsePeriod.Milliseconds())
		buf.WriteString("</circle>\n")
	}

	for s, stroke := range item.Sketch.Strokes {
		window := item.Windows[s]
		length := stroke.Length()
		begin := delayMS + int64(window.Start*float64(drawMS))
		dur := int64((window.End - window.Start) * float64(drawMS))

		fill := "none"
		if item.Sketch.Filled && s == 0 {
			fill = item.ColorHex
		}

		fmt.Fprintf(buf,
			`<path d="%s" fill="%s" fill-opacity="0" stroke="%s" stroke-width="%.2f" stroke-linecap="round" stroke-linejoin="round" stroke-dasharray="%.1f" stroke-dashoffset="%.1f">`+"\n",
			stroke.Data(), fill, item.ColorHex, item.StrokeWidth, length, length)
		fmt.Fprintf(buf,
			`<animate attributeName="stroke-dashoffset" from="%.1f" to="0" begin="%dms" dur="%dms" calcMode="spline" keyTimes="0;1" keySplines="%s" fill="freeze"/>`+"\n",
			length, begin, dur, strokeEase)
		if fill != "none" {
			fmt.Fprintf(buf,
				`<animate attributeName="fill-opacity" from="0" to="1" begin="%dms" dur="%dms" fill="freeze"/>`+"\n",
				delayMS, drawMS)
		}
		buf.WriteString("</path>\n")
	}

	if item.Label != nil {
		begin := delayMS + drawMS
		dur := t.Timing.LabelFade.Milliseconds()

		t.openLabelGroup(buf, item, 0, 0, 1)
		fmt.Fprintf(buf,
			`<animate attributeName="opacity" from="0" to="1" begin="%dms" dur="%dms" fill="freeze"/>`+"\n",
			begin, dur)
		fmt.Fprintf(buf,
			`<animateTransform attributeName="transform" type="translate" from="0 %.0f" to="0 0" begin="%dms" dur="%dms" additive="sum" fill="freeze" calcMode="spline" keyTimes="0;1" keySplines="%s"/>`+"\n",
			labelSlide, begin, dur, labelEase)
		fmt.Fprintf(buf,
			`<animateTransform attributeName="transform" type="scale" from="0.8" to="1" begin="%dms" dur="%dms" additive="sum" fill="freeze" calcMode="spline" keyTimes="0;1" keySplines="%s"/>`+"\n",
			begin, dur, labelEase)
		t.closeLabelGroup(buf, item)
	}
}

func (t *Timeline) writeStaticItem(buf *bytes.Buffer, item Item, state ItemState) {
	if item.Sketch.Disc != nil && state.HighlightOpacity > 0 {
		d := item.Sketch.Disc
		fmt.Fprintf(buf, `<circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s" opacity="%.3f"/>`+"\n",
			d.Center.X, d.Center.Y, d.Radius*state.PulseScale, item.ColorHex, state.HighlightOpacity)
	}

	for s, stroke := range item.Sketch.Strokes {
		progress := state.Strokes[s]
		if progress <= 0 {
			continue
		}

		length := stroke.Length()

		fill := "none"
		fillOpacity := 0.0
		if item.Sketch.Filled && s == 0 {
			fill = item.ColorHex
			fillOpacity = state.FillOpacity
		}

		fmt.Fprintf(buf,
			`<path d="%s" fill="%s" fill-opacity="%.3f" stroke="%s" stroke-width="%.2f" stroke-linecap="round" stroke-linejoin="round" stroke-dasharray="%.1f" stroke-dashoffset="%.1f"/>`+"\n",
			stroke.Data(), fill, fillOpacity, item.ColorHex, item.StrokeWidth, length, length*(1-progress))
	}

	if item.Label != nil && state.LabelProgress > 0 {
		t.openLabelGroup(buf, item, state.LabelProgress, LabelOffsetY(state.LabelProgress), LabelScale(state.LabelProgress))
		t.closeLabelGroup(buf, item)
	}
}

// openLabelGroup emits the bubble group translated to the label center with
// contents in center-local coordinates, so the scale animation pivots on the
// bubble rather than the document origin.
func (t *Timeline) openLabelGroup(buf *bytes.Buffer, item Item, opacity, offsetY, scale float64) {
	l := item.Label
	cx := l.X + l.W/2
	cy := l.Y + l.H/2

	if scale != 1 || offsetY != 0 {
		fmt.Fprintf(buf, `<g transform="translate(%.2f %.2f) scale(%.3f)" opacity="%.3f">`+"\n",
			cx, cy+offsetY, scale, opacity)
	} else {
		fmt.Fprintf(buf, `<g transform="translate(%.2f %.2f)" opacity="%.3f">`+"\n", cx, cy, opacity)
	}
}

func (t *Timeline) closeLabelGroup(buf *bytes.Buffer, item Item) {
	l := item.Label
	cx := l.X + l.W/2
	halfW := l.W / 2
	halfH := l.H / 2
	tailX := l.TailX - cx

	fmt.Fprintf(buf, `<path d="M %.2f %.2f L %.2f %.2f L %.2f %.2f Z" fill="%s"/>`+"\n",
		tailX, -halfH-labelTailHalf, tailX-labelTailHalf, -halfH+1, tailX+labelTailHalf, -halfH+1, item.ColorHex)
	fmt.Fprintf(buf, `<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="6" fill="%s"/>`+"\n",
		-halfW, -halfH, l.W, l.H, item.ColorHex)
	fmt.Fprintf(buf,
		`<text x="0" y="4.5" text-anchor="middle" font-family="sans-serif" font-size="%.0f" fill="%s">%s</text>`+"\n",
		labelFontSize, textColorFor(item.ColorHex), escapeXML(l.Text))
	buf.WriteString("</g>\n")
}

// WriteHTML wraps the SVG in a minimal standalone preview page.
func (t *Timeline) WriteHTML(w io.Writer, opts SVGOptions) error {
	var svg bytes.Buffer
	if err := t.WriteSVG(&svg, opts); err != nil {
		return err
	}

	var buf bytes.Buffer
	buf.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>scrawl overlay</title>\n")
	buf.WriteString("<style>body{margin:0;background:#111;display:flex;justify-content:center;align-items:center;min-height:100vh}</style>\n")
	buf.WriteString("</head>\n<body>\n")
	buf.Write(svg.Bytes())
	buf.WriteString("</body>\n</html>\n")

	_, err := w.Write(buf.Bytes())
	return err
}

func escapeXML(s string) string {
	var b strings.Builder

	for _, r := range s {
		switch r {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			b.WriteString("&quot;")
		case '\'':
			b.WriteString("&apos;")
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}
