package overlay

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

const defaultColorName = "green"

// Named palette the upstream descriptors use. Kept deliberately small; the
// import path maps arbitrary colors onto it via NearestPaletteName.
var palette = map[string]string{
	"green":  "#22c55e",
	"yellow": "#eab308",
	"red":    "#ef4444",
	"blue":   "#3b82f6",
	"white":  "#ffffff",
	"cyan":   "#06b6d4",
	"orange": "#f97316",
	"purple": "#a855f7",
}

// ColorHex resolves a palette name to its hex value, falling back to the
// default color for unknown names. overrides may remap individual names.
func ColorHex(name string, overrides map[string]string) string {
	if overrides != nil {
		if hex, ok := overrides[name]; ok {
			return hex
		}
	}

	if hex, ok := palette[name]; ok {
		return hex
	}

	return palette[defaultColorName]
}

// textColorFor picks a readable label text color for a bubble fill, using
// perceived luminance rather than HSL lightness so yellow gets dark text.
func textColorFor(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return "#ffffff"
	}

	luminance := 0.299*c.R + 0.587*c.G + 0.114*c.B

	if luminance > 0.6 {
		return "#1a1a1a"
	}

	return "#ffffff"
}

// NearestPaletteName buckets an arbitrary color into the palette by HSL
// thresholds. Low-saturation and very light colors land on white.
func NearestPaletteName(c colorful.Color) string {
	h, s, l := c.Hsl()

	if l > 0.9 || s < 0.2 {
		return "white"
	}
	if h < 20 {
		return "red"
	}
	if h < 45 {
		return "orange"
	}
	if h < 70 {
		return "yellow"
	}
	if h < 160 {
		return "green"
	}
	if h < 200 {
		return "cyan"
	}
	if h < 260 {
		return "blue"
	}
	if h < 345 {
		return "purple"
	}
	return "red"
}
