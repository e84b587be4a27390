package region

import "github.com/voxelgraph/waterz/affinity"

// BuildFromLabels constructs a Graph from a fragment (or region) labeling
// and the affinity volume it was derived from, per spec §4.2: region sizes
// are tallied in one pass over the labels, then edges and their
// aggregations are built in one pass over the three affinity slabs.
//
// Only the affinities selected by mask are accumulated per edge; contact
// area is always tracked.
//
// Complexity: O(V) time (one tally pass, one 3-slab pass, O(1) amortized
// work per sample), O(R + E) space for the resulting graph.
func BuildFromLabels(labels *affinity.LabelVolume, aff *affinity.AffinityVolume, mask AggregationMask) (*Graph, error) {
	if labels == nil || aff == nil {
		return nil, ErrNilVolume
	}
	if err := aff.CheckShapeMatches(labels); err != nil {
		return nil, err
	}

	g := NewGraph(mask)

	d, h, w := labels.Depth, labels.Height, labels.Width

	// Tally region sizes in one pass.
	sizes := make(map[int]uint64)
	for z := 0; z < d; z++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				lbl := labels.At(z, y, x)
				if lbl == 0 {
					continue
				}
				sizes[int(lbl)]++
			}
		}
	}
	for id, size := range sizes {
		g.AddRegion(id, size)
	}

	// Build edges and aggregations in one pass over the three affinity
	// slabs. Each physical edge is visited exactly once: when processing
	// voxel (z,y,x), we look at its negative neighbor along axis c, which
	// is exactly the voxel pair A[c,z,y,x] describes.
	for c := 0; c < 3; c++ {
		for z := 0; z < d; z++ {
			for y := 0; y < h; y++ {
				for x := 0; x < w; x++ {
					nz, ny, nx := z, y, x
					switch c {
					case 0:
						nz--
					case 1:
						ny--
					case 2:
						nx--
					}
					if nz < 0 || ny < 0 || nx < 0 {
						continue
					}
					u := labels.At(z, y, x)
					v := labels.At(nz, ny, nx)
					if u == 0 || v == 0 || u == v {
						continue
					}
					edge, err := g.EnsureEdge(int(u), int(v))
					if err != nil {
						return nil, err
					}
					edge.ContactArea++
					g.Sample(&edge.Agg, aff.At(c, z, y, x))
				}
			}
		}
	}

	return g, nil
}
