package overlay

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Kind is the closed set of marker shapes an annotation can render as.
type Kind string

const (
	Circle    Kind = "circle"
	Checkmark Kind = "checkmark"
	XMark     Kind = "x"
	Arrow     Kind = "arrow"
	Highlight Kind = "highlight"
	Pointer   Kind = "pointer"
)

// Known reports whether k is one of the renderable kinds. Unknown kinds are
// kept in the timeline for timing purposes but draw nothing.
func (k Kind) Known() bool {
	switch k {
	case Circle, Checkmark, XMark, Arrow, Highlight, Pointer:
		return true
	}
	return false
}

// Annotation is one semantic marker to draw over an image. Positions are in
// percent of the image dimensions, (0,0) at the top-left. ToX/ToY only apply
// to arrows; absent values collapse to the anchor. Delay is in milliseconds;
// when nil the timeline assigns an index-based stagger.
type Annotation struct {
	ID        string   `json:"id,omitempty"`
	Kind      Kind     `json:"type"`
	X         float64  `json:"x"`
	Y         float64  `json:"y"`
	ToX       *float64 `json:"toX,omitempty"`
	ToY       *float64 `json:"toY,omitempty"`
	Size      float64  `json:"size,omitempty"`
	Color     string   `json:"color,omitempty"`
	Label     string   `json:"label,omitempty"`
	Delay     *int     `json:"delay,omitempty"`
	Narration string   `json:"narration,omitempty"`
}

type annotationList struct {
	Annotations []Annotation `json:"annotations"`
}

// ParseAnnotations decodes a descriptor payload. Both the wrapped form
// {"annotations": [...]} and a bare array are accepted.
func ParseAnnotations(data []byte) ([]Annotation, error) {
	var wrapped annotationList
	if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.Annotations != nil {
		return wrapped.Annotations, nil
	}

	var direct []Annotation
	if err := json.Unmarshal(data, &direct); err != nil {
		return nil, err
	}

	return direct, nil
}

// normalized fills the defaults an item needs before layout: an ID for stable
// keying, a positive-by-convention size, a palette color, and arrow endpoints.
func (a Annotation) normalized() Annotation {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}

	if a.Size == 0 {
		a.Size = 1
	}

	if a.Color == "" {
		a.Color = defaultColorName
	}

	if a.ToX == nil {
		x := a.X
		a.ToX = &x
	}

	if a.ToY == nil {
		y := a.Y
		a.ToY = &y
	}

	return a
}
