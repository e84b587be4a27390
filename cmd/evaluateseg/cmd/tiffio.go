package cmd

import (
	"image"
	"os"

	"golang.org/x/image/tiff"

	"github.com/voxelgraph/waterz/affinity"
)

// readLabelVolume decodes a TIFF-encoded label image and casts it to a
// single-slice (D=1) 64-bit unsigned label volume (spec §6: "casts them to
// 64-bit unsigned"). Multi-page volumetric TIFFs and other array-I/O
// conversions are the array-conversion layer spec §1 treats as an external
// collaborator; golang.org/x/image/tiff's exported Decode only surfaces a
// TIFF's first page, so a 3D ground truth/segmentation pair is expected
// here as one TIFF per z-slice pair, not as a single multi-page file.
func readLabelVolume(path string) (*affinity.LabelVolume, error) {
	f, err := os.Open(path) //nolint:gosec // operator-supplied path, expected
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := tiff.Decode(f)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	data := make([]uint64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			data[y*w+x] = pixelLabel(img, bounds.Min.X+x, bounds.Min.Y+y)
		}
	}

	return affinity.NewLabelVolume(1, h, w, data)
}

// pixelLabel extracts a label value from one pixel, preferring the exact
// grayscale sample depth a segmentation TIFF is typically encoded with over
// the RGBA() fallback every image.Image supports, which yields the red
// channel scaled to the 16-bit range.
func pixelLabel(img image.Image, x, y int) uint64 {
	switch im := img.(type) {
	case *image.Gray16:
		return uint64(im.Gray16At(x, y).Y)
	case *image.Gray:
		return uint64(im.GrayAt(x, y).Y)
	default:
		r, _, _, _ := img.At(x, y).RGBA()

		return uint64(r)
	}
}
