package agglomerator

import (
	"container/heap"
	"context"
	"math/rand"

	"github.com/voxelgraph/waterz/affinity"
	"github.com/voxelgraph/waterz/internal/unionfind"
	"github.com/voxelgraph/waterz/region"
	"github.com/voxelgraph/waterz/scoring"
	"github.com/voxelgraph/waterz/telemetry"
)

// Sequence is a lazy, stateful iterator over agglomeration thresholds: each
// call to Next runs the merge loop forward until a snapshot is due.
type Sequence struct {
	r *runner
}

// NewSequence validates its inputs, computes every edge's initial score,
// and seeds the priority queue, ready for Next to be called once per
// threshold in thresholds.
//
// fragments is the initial fragment labeling g was built from; each
// Snapshot is derived from it by mapping every fragment id through the
// disjoint-set's current roots.
func NewSequence(g *region.Graph, tree *scoring.Tree, fragments *affinity.LabelVolume, thresholds []float64, opts ...Option) (*Sequence, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if tree == nil {
		return nil, ErrNilTree
	}
	if fragments == nil {
		return nil, ErrNilFragments
	}
	if len(thresholds) == 0 {
		return nil, ErrEmptyThresholds
	}
	for i := 1; i < len(thresholds); i++ {
		if thresholds[i] < thresholds[i-1] {
			return nil, ErrThresholdsNotSorted
		}
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	ids := g.RegionIDs()
	maxID := 0
	for _, id := range ids {
		if id > maxID {
			maxID = id
		}
	}
	dsu := unionfind.New(maxID + 1)
	for _, id := range ids {
		reg, _ := g.Region(id)
		dsu.SetSize(id, int(reg.Size))
	}

	r := &runner{
		graph:        g,
		tree:         tree,
		fragments:    fragments,
		dsu:          dsu,
		thresholds:   thresholds,
		rand:         cfg.Rand,
		trackHistory: cfg.TrackMergeHistory,
		trackGraph:   cfg.TrackRegionGraph,
		telemetry:    cfg.Telemetry,
	}

	edges := g.Edges()
	pq := make(edgePQ, 0, len(edges))
	for _, e := range edges {
		score := r.scoreOf(e)
		e.Score = score
		pq = append(pq, &edgeItem{edge: e, score: score, version: e.Stale, seq: r.nextSeq})
		r.nextSeq++
	}
	heap.Init(&pq)
	r.pq = pq

	return &Sequence{r: r}, nil
}

// Next advances the sequence to the next threshold, running the merge loop
// until a snapshot is due for it. ctx is checked for cancellation only at
// this boundary, never in the middle of a merge. Returns ok=false once
// every threshold has been emitted.
func (s *Sequence) Next(ctx context.Context) (snap *Snapshot, ok bool, err error) {
	return s.r.advance(ctx)
}

// MergeHistory returns the merge history accumulated so far, or nil if
// WithMergeHistory was not supplied to NewSequence.
func (s *Sequence) MergeHistory() []MergeEvent {
	if !s.r.trackHistory {
		return nil
	}

	return s.r.history
}

// RegionGraph returns the region graph in its current (mutated-in-place)
// state, or nil if WithRegionGraphDump was not supplied to NewSequence.
func (s *Sequence) RegionGraph() *region.Graph {
	if !s.r.trackGraph {
		return nil
	}

	return s.r.graph
}

// runner holds the mutable state of a single agglomeration run.
type runner struct {
	graph     *region.Graph
	tree      *scoring.Tree
	fragments *affinity.LabelVolume
	dsu       *unionfind.DSU
	pq        edgePQ

	thresholds   []float64
	thresholdIdx int

	rand         *rand.Rand
	trackHistory bool
	trackGraph   bool
	history      []MergeEvent
	telemetry    *telemetry.Counters

	nextSeq uint64
}

// scoreOf evaluates the scoring tree against e using the disjoint set's
// current sizes for its two endpoints.
func (r *runner) scoreOf(e *region.Edge) float64 {
	return r.tree.Eval(&scoring.Context{
		SizeU: uint64(r.dsu.Size(e.U)),
		SizeV: uint64(r.dsu.Size(e.V)),
		Edge:  e,
		Rand:  r.rand,
	})
}

// pushEdge recomputes e's score and pushes a fresh, non-stale heap entry
// for it.
func (r *runner) pushEdge(e *region.Edge) {
	score := r.scoreOf(e)
	e.Score = score
	heap.Push(&r.pq, &edgeItem{edge: e, score: score, version: e.Stale, seq: r.nextSeq})
	r.nextSeq++
}

// advance runs the main loop for the current threshold (spec §4.4): pop
// the cheapest live edge; if it is stale, discard and continue; if its
// score exceeds the threshold, push it back and emit a snapshot; otherwise
// merge its two regions and continue.
func (r *runner) advance(ctx context.Context) (*Snapshot, bool, error) {
	if r.thresholdIdx >= len(r.thresholds) {
		return nil, false, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	threshold := r.thresholds[r.thresholdIdx]
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*edgeItem)
		if item.version != item.edge.Stale {
			continue
		}
		if item.score > threshold {
			heap.Push(&r.pq, item)

			break
		}
		r.merge(item)
	}

	snap, err := r.emitSnapshot(threshold)
	if err != nil {
		return nil, false, err
	}
	r.thresholdIdx++

	return snap, true, nil
}

// merge resolves item's edge through the disjoint set and, if its two
// endpoints are still distinct regions, performs the merge: the larger
// region (ties: lower id) absorbs the smaller, every other edge the
// absorbed region held is combined into or rewired onto the survivor, and
// the triggering edge is retired.
func (r *runner) merge(item *edgeItem) {
	e := item.edge
	ru, rv := r.dsu.Find(e.U), r.dsu.Find(e.V)
	if ru == rv {
		// Already internal via some other merge chain; the spec calls for
		// this defensive check even though eager rewiring below should
		// make it unreachable in practice.
		return
	}

	root, _ := r.dsu.Union(ru, rv)
	loser := ru
	if root == ru {
		loser = rv
	}

	r.telemetry.IncMerge()

	if r.trackHistory {
		r.history = append(r.history, MergeEvent{RootBeforeU: ru, RootBeforeV: rv, Score: item.score})
	}

	for _, neighborEdge := range r.graph.NeighborEdges(loser) {
		w := neighborEdge.Other(loser)
		if w == root {
			continue // this is e itself; retired below
		}
		if existing, ok := r.graph.GetEdge(root, w); ok {
			region.CombineInto(existing, neighborEdge)
			neighborEdge.Stale++
			r.graph.RetireEdge(loser, w)
			r.pushEdge(existing)
		} else {
			rewired := r.graph.RewireEndpoint(loser, root, w)
			rewired.Stale++
			r.pushEdge(rewired)
		}
	}

	r.graph.RetireEdge(loser, root)
	r.graph.RetireRegion(loser)
}

// emitSnapshot maps every fragment id through the disjoint set to its
// current root, then remaps roots to dense ids 1..R in raster
// first-appearance order (spec §4.4 step 3).
func (r *runner) emitSnapshot(threshold float64) (*Snapshot, error) {
	out, err := affinity.NewEmptyLabelVolume(r.fragments.Depth, r.fragments.Height, r.fragments.Width)
	if err != nil {
		return nil, err
	}

	rootToDense := make(map[int]int)
	next := 1
	d, h, w := r.fragments.Depth, r.fragments.Height, r.fragments.Width
	for z := 0; z < d; z++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				lbl := r.fragments.At(z, y, x)
				if lbl == 0 {
					continue
				}
				root := r.dsu.Find(int(lbl))
				dense, ok := rootToDense[root]
				if !ok {
					dense = next
					rootToDense[root] = dense
					next++
				}
				out.Set(z, y, x, uint64(dense))
			}
		}
	}

	return &Snapshot{Threshold: threshold, Labels: out}, nil
}
