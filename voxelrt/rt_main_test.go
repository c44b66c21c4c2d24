package main

import (
	"context"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gekko3d/rayvox"
	"github.com/gekko3d/rayvox/voxelrt/rt/app"
)

func TestParseArgsDefaults(t *testing.T) {
	cfg, opt, err := parseArgs(nil, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, rayvox.DefaultConfig(), cfg)
	assert.False(t, opt.headless)
	assert.Equal(t, "frame.png", opt.out)
}

func TestParseArgsPositionalDistance(t *testing.T) {
	cfg, _, err := parseArgs([]string{"-scene", "analytic", "200"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 200, cfg.Camera.RenderDistance)
	assert.Equal(t, rayvox.SceneAnalytic, cfg.Scene)

	// the flag wins over the positional value
	cfg, _, err = parseArgs([]string{"-distance", "30", "200"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Camera.RenderDistance)
}

func TestParseArgsErrors(t *testing.T) {
	_, _, err := parseArgs([]string{"far"}, io.Discard)
	assert.ErrorContains(t, err, `render distance "far"`)

	_, _, err = parseArgs([]string{"1", "2"}, io.Discard)
	assert.Error(t, err)

	_, _, err = parseArgs([]string{"-scene", "mesh"}, io.Discard)
	assert.ErrorIs(t, err, rayvox.ErrInvalidConfig)

	_, _, err = parseArgs([]string{"-config", filepath.Join(t.TempDir(), "missing.yaml")}, io.Discard)
	assert.Error(t, err)
}

func TestParseArgsConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rayvox.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: 64\nheight: 32\nscene: analytic\n"), 0o644))

	cfg, _, err := parseArgs([]string{"-config", path, "-height", "48", "-headless", "-out", "x.png"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.Width)
	assert.Equal(t, 48, cfg.Height)
	assert.Equal(t, rayvox.SceneAnalytic, cfg.Scene)
}

func TestRenderToFile(t *testing.T) {
	cfg := rayvox.DefaultConfig()
	cfg.Width, cfg.Height = 24, 16
	cfg.World.Size, cfg.World.Extent = 16, 16
	cfg.Debug = true

	a, err := app.NewApp(cfg, rayvox.NewNopLogger())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "frame.png")
	require.NoError(t, renderToFile(context.Background(), a, path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 24, img.Bounds().Dx())
	assert.Equal(t, 16, img.Bounds().Dy())
}
