package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/golang/geo/r2"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/mgmeyers/unipdf/v3/core"
	"github.com/mgmeyers/unipdf/v3/model"

	"github.com/scrawldev/scrawl/overlay"
)

type ImportCmd struct {
	Page   int    `short:"p" default:"1" help:"Page whose annotations are converted"`
	Output string `short:"o" type:"path" help:"Output file (default: stdout)"`

	InputPDF string `arg:"" name:"input" type:"existingfile" help:"Path to input PDF"`
}

// Run reads the PDF's own annotation objects and emits overlay descriptors:
// percentage coordinates against the page box, the nearest palette color, and
// a marker kind mapped from the PDF annotation type. Unsupported types are
// skipped.
func (c *ImportCmd) Run() error {
	f, err := os.Open(c.InputPDF)
	if err != nil {
		return err
	}
	defer f.Close()

	reader, err := model.NewPdfReader(f)
	if err != nil {
		return err
	}

	page, err := reader.GetPage(c.Page)
	if err != nil {
		return err
	}

	annotations, err := page.GetAnnotations()
	if err != nil {
		return err
	}

	box := page.MediaBox
	converted := []overlay.Annotation{}

	for _, annotation := range annotations {
		a, ok := convertAnnotation(annotation, box)
		if !ok {
			continue
		}

		converted = append(converted, a)
	}

	out, err := openOutput(c.Output)
	if err != nil {
		return err
	}
	defer out.Close()

	encoded, err := json.MarshalIndent(map[string][]overlay.Annotation{"annotations": converted}, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, string(encoded))
	return err
}

func convertAnnotation(annotation *model.PdfAnnotation, box *model.PdfRectangle) (overlay.Annotation, bool) {
	ctx := annotation.GetContext()

	kind := overlayKind(ctx)
	if kind == "" {
		return overlay.Annotation{}, false
	}

	a := overlay.Annotation{Kind: kind, Size: 1}

	if name := paletteNameFor(ctx); name != "" {
		a.Color = name
	}

	if annotation.Contents != nil {
		a.Label = removeNul(annotation.Contents.String())
	}

	if line, isLine := ctx.(*model.PdfAnnotationLine); isLine {
		from, to, err := lineEndpoints(line)
		if err != nil {
			return overlay.Annotation{}, false
		}

		a.X, a.Y = toPercent(from, box)
		toX, toY := toPercent(to, box)
		a.ToX, a.ToY = &toX, &toY

		return a, true
	}

	center, ok := annotationCenter(annotation, ctx)
	if !ok {
		return overlay.Annotation{}, false
	}

	a.X, a.Y = toPercent(center, box)
	return a, true
}

// overlayKind maps PDF annotation types onto overlay marker kinds.
func overlayKind(ctx model.PdfModel) overlay.Kind {
	switch ctx.(type) {
	case *model.PdfAnnotationHighlight:
		return overlay.Highlight
	case *model.PdfAnnotationStrikeOut:
		return overlay.XMark
	case *model.PdfAnnotationUnderline:
		return overlay.Checkmark
	case *model.PdfAnnotationSquare:
		return overlay.Circle
	case *model.PdfAnnotationText:
		return overlay.Pointer
	case *model.PdfAnnotationLine:
		return overlay.Arrow
	}

	return ""
}

// toPercent converts PDF user-space coordinates (origin bottom-left) into the
// overlay's top-left percentage space.
func toPercent(p r2.Point, box *model.PdfRectangle) (float64, float64) {
	w := box.Width()
	h := box.Height()

	if w <= 0 || h <= 0 {
		return 0, 0
	}

	x := (p.X - box.Llx) / w * 100
	y := (1 - (p.Y-box.Lly)/h) * 100

	return x, y
}

// annotationCenter finds the center of the annotation's footprint: the union
// of its quad-point rects for text markup, or its Rect for everything else.
func annotationCenter(annotation *model.PdfAnnotation, ctx model.PdfModel) (r2.Point, bool) {
	if rects := quadPointRects(ctx); len(rects) > 0 {
		union := rects[0]
		for _, r := range rects[1:] {
			union = union.Union(r)
		}
		return union.Center(), true
	}

	rect, ok := annotation.Rect.(*core.PdfObjectArray)
	if !ok {
		return r2.Point{}, false
	}

	coords, err := rect.ToFloat64Array()
	if err != nil || len(coords) < 4 {
		return r2.Point{}, false
	}

	return r2.Point{X: (coords[0] + coords[2]) / 2, Y: (coords[1] + coords[3]) / 2}, true
}

func quadPointRects(ctx model.PdfModel) []r2.Rect {
	qp := quadPoints(ctx)
	if qp == nil {
		return nil
	}

	coords, err := qp.GetAsFloat64Slice()
	if err != nil {
		return nil
	}

	rects := []r2.Rect{}
	pts := []r2.Point{}

	for i := 0; i+1 < len(coords); i += 2 {
		pts = append(pts, r2.Point{X: coords[i], Y: coords[i+1]})

		if len(pts) == 4 {
			rects = append(rects, r2.RectFromPoints(pts[0], pts[1], pts[2], pts[3]))
			pts = pts[:0]
		}
	}

	return rects
}

func quadPoints(ctx model.PdfModel) *core.PdfObjectArray {
	switch a := ctx.(type) {
	case *model.PdfAnnotationHighlight:
		if arr, ok := a.QuadPoints.(*core.PdfObjectArray); ok {
			return arr
		}
	case *model.PdfAnnotationStrikeOut:
		if arr, ok := a.QuadPoints.(*core.PdfObjectArray); ok {
			return arr
		}
	case *model.PdfAnnotationUnderline:
		if arr, ok := a.QuadPoints.(*core.PdfObjectArray); ok {
			return arr
		}
	}

	return nil
}

func lineEndpoints(line *model.PdfAnnotationLine) (r2.Point, r2.Point, error) {
	arr, ok := line.L.(*core.PdfObjectArray)
	if !ok {
		return r2.Point{}, r2.Point{}, fmt.Errorf("line annotation without L array")
	}

	coords, err := arr.ToFloat64Array()
	if err != nil {
		return r2.Point{}, r2.Point{}, err
	}
	if len(coords) < 4 {
		return r2.Point{}, r2.Point{}, fmt.Errorf("line annotation with %d coordinates", len(coords))
	}

	return r2.Point{X: coords[0], Y: coords[1]}, r2.Point{X: coords[2], Y: coords[3]}, nil
}

// paletteNameFor buckets the annotation's color into the overlay palette.
func paletteNameFor(ctx model.PdfModel) string {
	c := annotationColorObj(ctx)
	if c == nil {
		return ""
	}

	arr, ok := c.(*core.PdfObjectArray)
	if !ok {
		return ""
	}

	clr, err := arr.ToFloat64Array()
	if err != nil || len(clr) < 3 {
		return ""
	}

	return overlay.NearestPaletteName(colorful.Color{R: clr[0], G: clr[1], B: clr[2]})
}

func annotationColorObj(ctx model.PdfModel) core.PdfObject {
	switch a := ctx.(type) {
	case *model.PdfAnnotationHighlight:
		return a.C
	case *model.PdfAnnotationStrikeOut:
		return a.C
	case *model.PdfAnnotationUnderline:
		return a.C
	case *model.PdfAnnotationSquare:
		return a.C
	case *model.PdfAnnotationText:
		return a.C
	case *model.PdfAnnotationLine:
		return a.C
	}

	return nil
}
