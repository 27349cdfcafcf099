package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCmdSVG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "overlay.svg")

	cmd := RenderCmd{
		Width:       640,
		Height:      480,
		Format:      "svg",
		Output:      out,
		At:          -1,
		Annotations: filepath.Join("testdata", "kitchen.json"),
	}
	require.NoError(t, cmd.Run())

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	svg := string(data)
	assert.Contains(t, svg, `width="640" height="480"`)
	assert.Contains(t, svg, `stroke="#ef4444"`)
	assert.Contains(t, svg, "shutoff valve")
	assert.Contains(t, svg, `repeatCount="indefinite"`)
}

func TestRenderCmdStaticSnapshot(t *testing.T) {
	out := filepath.Join(t.TempDir(), "overlay.svg")

	cmd := RenderCmd{
		Width:       640,
		Height:      480,
		Format:      "svg",
		Output:      out,
		At:          10000,
		Annotations: filepath.Join("testdata", "kitchen.json"),
	}
	require.NoError(t, cmd.Run())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "<animate")
}

func TestFramesCmdWritesSnapshots(t *testing.T) {
	dir := t.TempDir()

	cmd := FramesCmd{
		Width:       320,
		Height:      240,
		Count:       4,
		OutDir:      dir,
		Base:        "frame",
		Annotations: filepath.Join("testdata", "kitchen.json"),
	}
	require.NoError(t, cmd.Run())

	matches, err := filepath.Glob(filepath.Join(dir, "frame-*.svg"))
	require.NoError(t, err)
	assert.Len(t, matches, 4)
}
