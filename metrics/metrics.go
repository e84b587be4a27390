package metrics

import (
	"math"

	"github.com/voxelgraph/waterz/affinity"
)

// Scores holds the four agreement metrics between a predicted and a ground
// truth labeling (spec §4.5): perfect agreement reports 1 for both Rand
// components and 0 for both VOI components (spec §8 P1).
type Scores struct {
	RandSplit float64
	RandMerge float64
	VOISplit  float64
	VOIMerge  float64
}

// pairKey identifies one (labelA, labelB) contingency cell.
type pairKey struct{ a, b uint64 }

// Compute builds the contingency table between a and b and derives Rand and
// VOI scores from it. Voxels where either volume reads background (0) are
// excluded from every sum, per spec §4.5.
//
// Complexity: O(V) to build the table, O(P) to sum it, where P is the
// number of distinct (labelA, labelB) pairs observed (P <= V).
func Compute(a, b *affinity.LabelVolume) (Scores, error) {
	if a == nil || b == nil {
		return Scores{}, ErrShapeMismatch
	}
	if !a.Shape.Equal(b.Shape) {
		return Scores{}, ErrShapeMismatch
	}

	pairCounts := make(map[pairKey]uint64)
	marginalA := make(map[uint64]uint64)
	marginalB := make(map[uint64]uint64)

	d, h, w := a.Depth, a.Height, a.Width
	var total uint64
	for z := 0; z < d; z++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				la, lb := a.At(z, y, x), b.At(z, y, x)
				if la == 0 || lb == 0 {
					continue
				}
				pairCounts[pairKey{la, lb}]++
				marginalA[la]++
				marginalB[lb]++
				total++
			}
		}
	}

	if total == 0 {
		return Scores{RandSplit: 1, RandMerge: 1, VOISplit: 0, VOIMerge: 0}, nil
	}

	n := float64(total)

	var sumNab2, sumNa2, sumNb2 float64
	for _, na := range marginalA {
		sumNa2 += float64(na) * float64(na)
	}
	for _, nb := range marginalB {
		sumNb2 += float64(nb) * float64(nb)
	}

	var voiSplit, voiMerge float64
	for key, nab := range pairCounts {
		sumNab2 += float64(nab) * float64(nab)

		pab := float64(nab) / n
		na := float64(marginalA[key.a])
		nb := float64(marginalB[key.b])

		voiSplit -= pab * math.Log(float64(nab)/nb)
		voiMerge -= pab * math.Log(float64(nab)/na)
	}

	scores := Scores{
		RandSplit: sumNab2 / sumNb2,
		RandMerge: sumNab2 / sumNa2,
		VOISplit:  voiSplit,
		VOIMerge:  voiMerge,
	}

	return scores, nil
}
