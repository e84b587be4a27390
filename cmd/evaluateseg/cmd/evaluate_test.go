package cmd

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/tiff"
)

func writeGray16TIFF(t *testing.T, path string, w, h int, fill func(x, y int) uint16) {
	t.Helper()
	img := image.NewGray16(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetGray16(x, y, color.Gray16{Y: fill(x, y)})
		}
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, tiff.Encode(f, img, nil))
}

func TestReadLabelVolume_RoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "labels.tif")
	writeGray16TIFF(t, path, 2, 2, func(x, y int) uint16 { return uint16(y*2 + x + 1) })

	lv, err := readLabelVolume(path)
	require.NoError(t, err)
	assert.Equal(t, 1, lv.Depth)
	assert.Equal(t, 2, lv.Height)
	assert.Equal(t, 2, lv.Width)
	assert.Equal(t, uint64(1), lv.At(0, 0, 0))
	assert.Equal(t, uint64(4), lv.At(0, 1, 1))
	assert.Equal(t, uint64(3), lv.At(0, 1, 0))
}

func TestRootCommand_RunsEndToEnd(t *testing.T) {
	dir := t.TempDir()
	gtPath := filepath.Join(dir, "gt.tif")
	segPath := filepath.Join(dir, "seg.tif")
	writeGray16TIFF(t, gtPath, 2, 2, func(x, y int) uint16 { return uint16(y*2 + x + 1) })
	writeGray16TIFF(t, segPath, 2, 2, func(x, y int) uint16 { return uint16(y*2 + x + 1) })

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"-g", gtPath, "-s", segPath})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "rand_split: 1")
}

func TestRootCommand_RequiresBothFlags(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"-g", "only-one.tif"})

	assert.Error(t, rootCmd.Execute())
}
