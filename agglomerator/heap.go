package agglomerator

import "github.com/voxelgraph/waterz/region"

// edgeItem is one priority-queue entry: an edge, the score it was pushed
// with, the edge's Stale version at push time, and a monotonic sequence
// number for FIFO tie-breaking among equal scores.
type edgeItem struct {
	edge    *region.Edge
	score   float64
	version uint32
	seq     uint64
}

// edgePQ is a min-heap of *edgeItem ordered by score ascending, ties broken
// by push order — the same lazy-decrease-key idiom as the teacher's
// Dijkstra nodePQ, here keyed by edge score instead of path distance. An
// entry whose version no longer matches edge.Stale is stale and is
// discarded by the caller rather than removed from the heap directly.
type edgePQ []*edgeItem

func (pq edgePQ) Len() int { return len(pq) }

func (pq edgePQ) Less(i, j int) bool {
	if pq[i].score != pq[j].score {
		return pq[i].score < pq[j].score
	}

	return pq[i].seq < pq[j].seq
}

func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *edgePQ) Push(x any) { *pq = append(*pq, x.(*edgeItem)) }

func (pq *edgePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
