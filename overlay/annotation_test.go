package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAnnotationsWrapped(t *testing.T) {
	data := []byte(`{"annotations":[{"id":"1","type":"circle","x":10,"y":20}]}`)

	annotations, err := ParseAnnotations(data)
	require.NoError(t, err)
	require.Len(t, annotations, 1)
	assert.Equal(t, Circle, annotations[0].Kind)
	assert.Equal(t, 10.0, annotations[0].X)
}

func TestParseAnnotationsBareArray(t *testing.T) {
	data := []byte(`[{"type":"checkmark","x":50,"y":50,"color":"green"}]`)

	annotations, err := ParseAnnotations(data)
	require.NoError(t, err)
	require.Len(t, annotations, 1)
	assert.Equal(t, Checkmark, annotations[0].Kind)
}

func TestParseAnnotationsInvalid(t *testing.T) {
	_, err := ParseAnnotations([]byte(`{"annotations": "nope"`))
	assert.Error(t, err)
}

func TestNormalizedDefaults(t *testing.T) {
	a := Annotation{Kind: Arrow, X: 30, Y: 40}.normalized()

	assert.NotEmpty(t, a.ID)
	assert.Equal(t, 1.0, a.Size)
	assert.Equal(t, defaultColorName, a.Color)
	require.NotNil(t, a.ToX)
	require.NotNil(t, a.ToY)
	assert.Equal(t, 30.0, *a.ToX)
	assert.Equal(t, 40.0, *a.ToY)
}

func TestNormalizedKeepsExplicitValues(t *testing.T) {
	toX, toY := 80.0, 90.0
	a := Annotation{ID: "a1", Kind: Arrow, X: 1, Y: 2, ToX: &toX, ToY: &toY, Size: 2, Color: "red"}.normalized()

	assert.Equal(t, "a1", a.ID)
	assert.Equal(t, 2.0, a.Size)
	assert.Equal(t, "red", a.Color)
	assert.Equal(t, 80.0, *a.ToX)
}

func TestKindKnown(t *testing.T) {
	for _, kind := range allKinds {
		assert.True(t, kind.Known(), "kind %s", kind)
	}

	assert.False(t, Kind("sparkle").Known())
	assert.False(t, Kind("").Known())
}
