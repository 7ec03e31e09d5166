package services

import (
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"photo-gallery/pkg/config"
)

// writeJPEG writes a gradient JPEG so resize tests exercise a real decode.
func writeJPEG(t *testing.T, path string, width, height int) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{
				R: uint8((x * 255) / width),
				G: uint8((y * 255) / height),
				B: 128,
				A: 255,
			})
		}
	}

	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, jpeg.Encode(f, img, nil))
	require.NoError(t, f.Close())
}

// testConfig returns a config rooted in a fresh temp directory with the
// input directory already created.
func testConfig(t *testing.T) *config.Config {
	t.Helper()

	dir := t.TempDir()
	cfg := &config.Config{
		Input:     filepath.Join(dir, "input"),
		Output:    filepath.Join(dir, "output"),
		Theme:     config.ThemeConfig{ImageColumns: 4, CollectionColumns: 3},
		Thumbnail: config.Size{Width: 300, Height: 200},
	}
	require.NoError(t, os.MkdirAll(cfg.Input, 0755))
	return cfg
}
