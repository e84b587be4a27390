package fragment

import (
	"github.com/voxelgraph/waterz/affinity"
	"github.com/voxelgraph/waterz/internal/unionfind"
)

// direction is one of the (up to) six edges incident to a voxel: an axis
// (0=z, 1=y, 2=x) and a sign (-1 for the incoming/negative neighbor, +1 for
// the outgoing/positive neighbor).
type direction struct {
	axis int
	sign int
}

// directionOrder fixes the tie-break order required by spec §4.1 step 3:
// axis order z<y<x, negative direction before positive within an axis.
var directionOrder = [6]direction{
	{axis: 0, sign: -1}, {axis: 0, sign: +1},
	{axis: 1, sign: -1}, {axis: 1, sign: +1},
	{axis: 2, sign: -1}, {axis: 2, sign: +1},
}

// Segment runs the InitialSegmenter over aff, producing a dense fragment
// labeling. aff is clamped internally with (affLow, affHigh); the caller's
// volume is not mutated and the original, unclamped values remain available
// to the caller for later agglomeration scoring.
//
// An empty volume (any dimension 0) is rejected by affinity.NewAffinityVolume
// before it ever reaches here. The only errors returned are ErrNilVolume and
// the threshold errors of affinity.ValidateThresholds; out-of-range
// affinities are clamped without complaint.
//
// Complexity: O(V) time (six neighbor probes per voxel, amortized O(α(V))
// union-find operations), O(V) space for the disjoint-set and output label
// volume.
func Segment(aff *affinity.AffinityVolume, affLow, affHigh float32) (*affinity.LabelVolume, error) {
	if aff == nil {
		return nil, ErrNilVolume
	}
	if err := affinity.ValidateThresholds(affLow, affHigh); err != nil {
		return nil, err
	}

	clamped := aff.Clamp(affLow, affHigh)
	d, h, w := clamped.Depth, clamped.Height, clamped.Width
	n := d * h * w

	dsu := unionfind.New(n)
	background := make([]bool, n)

	idx := func(z, y, x int) int { return (z*h+y)*w + x }

	// Step 2+3: raster scan, compute each voxel's steepest-ascent neighbor,
	// union with it (or mark background if no positive edge exists).
	for z := 0; z < d; z++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				best := float32(0)
				bestNeighbor := -1
				for _, dir := range directionOrder {
					nz, ny, nx := z, y, x
					switch dir.axis {
					case 0:
						nz += dir.sign
					case 1:
						ny += dir.sign
					case 2:
						nx += dir.sign
					}
					if nz < 0 || nz >= d || ny < 0 || ny >= h || nx < 0 || nx >= w {
						continue
					}
					var a float32
					if dir.sign < 0 {
						// Incoming edge: A[axis, z, y, x] is the affinity
						// between (z,y,x) and its negative neighbor.
						a = clamped.At(dir.axis, z, y, x)
					} else {
						// Outgoing edge: the same physical edge is stored at
						// the positive neighbor's position.
						a = clamped.At(dir.axis, nz, ny, nx)
					}
					if a > best {
						best = a
						bestNeighbor = idx(nz, ny, nx)
					}
				}
				p := idx(z, y, x)
				if best == 0 {
					background[p] = true
					continue
				}
				dsu.Union(p, bestNeighbor)
			}
		}
	}

	// Step 4/5: compact surviving roots to dense labels in first-appearance
	// raster order; background voxels get label 0.
	labels, err := affinity.NewEmptyLabelVolume(d, h, w)
	if err != nil {
		return nil, err
	}
	rootToLabel := make(map[int]uint64)
	var next uint64 = 1
	for z := 0; z < d; z++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				p := idx(z, y, x)
				if background[p] {
					continue
				}
				root := dsu.Find(p)
				label, ok := rootToLabel[root]
				if !ok {
					label = next
					rootToLabel[root] = label
					next++
				}
				labels.Set(z, y, x, label)
			}
		}
	}

	return labels, nil
}
