package overlay

import (
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorHex(t *testing.T) {
	assert.Equal(t, "#22c55e", ColorHex("green", nil))
	assert.Equal(t, "#ef4444", ColorHex("red", nil))
}

func TestColorHexUnknownFallsBack(t *testing.T) {
	assert.Equal(t, palette[defaultColorName], ColorHex("mauve", nil))
}

func TestColorHexOverride(t *testing.T) {
	overrides := map[string]string{"green": "#00ff00"}

	assert.Equal(t, "#00ff00", ColorHex("green", overrides))
	assert.Equal(t, "#ef4444", ColorHex("red", overrides))
}

func TestNearestPaletteName(t *testing.T) {
	cases := []struct {
		hex  string
		want string
	}{
		{"#ff0000", "red"},
		{"#22c55e", "green"},
		{"#3b82f6", "blue"},
		{"#eab308", "yellow"},
		{"#a855f7", "purple"},
		{"#fafafa", "white"},
		{"#808080", "white"}, // low saturation buckets to white
	}

	for _, tc := range cases {
		c, err := colorful.Hex(tc.hex)
		require.NoError(t, err)
		assert.Equal(t, tc.want, NearestPaletteName(c), "hex %s", tc.hex)
	}
}

func TestTextColorForContrast(t *testing.T) {
	assert.Equal(t, "#1a1a1a", textColorFor("#ffffff"))
	assert.Equal(t, "#1a1a1a", textColorFor("#eab308"))
	assert.Equal(t, "#ffffff", textColorFor("#3b82f6"))
}
