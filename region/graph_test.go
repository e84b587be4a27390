package region

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureEdge_CreatesOnceAndIsBidirectional(t *testing.T) {
	g := NewGraph(AggregationMask{})
	g.AddRegion(1, 1)
	g.AddRegion(2, 1)

	e1, err := g.EnsureEdge(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, e1.U)
	assert.Equal(t, 2, e1.V)

	e2, err := g.EnsureEdge(1, 2)
	require.NoError(t, err)
	assert.Same(t, e1, e2, "canonical key must dedupe regardless of argument order")

	got, ok := g.GetEdge(2, 1)
	require.True(t, ok)
	assert.Same(t, e1, got)

	nbrs := g.NeighborEdges(1)
	require.Len(t, nbrs, 1)
	assert.Same(t, e1, nbrs[0])
}

func TestEnsureEdge_RejectsSelfEdge(t *testing.T) {
	g := NewGraph(AggregationMask{})
	g.AddRegion(1, 1)
	_, err := g.EnsureEdge(1, 1)
	assert.ErrorIs(t, err, ErrSameRegion)
}

func TestRetireEdge_RemovesFromBothSides(t *testing.T) {
	g := NewGraph(AggregationMask{})
	g.AddRegion(1, 1)
	g.AddRegion(2, 1)
	_, err := g.EnsureEdge(1, 2)
	require.NoError(t, err)

	g.RetireEdge(1, 2)
	_, ok := g.GetEdge(1, 2)
	assert.False(t, ok)
	assert.Empty(t, g.NeighborEdges(1))
	assert.Empty(t, g.NeighborEdges(2))
}

func TestSample_MinMaxMean(t *testing.T) {
	g := NewGraph(AggregationMask{Kinds: AggMin | AggMax | AggMean})
	agg := Aggregation{}
	g.Sample(&agg, 0.2)
	g.Sample(&agg, 0.8)
	g.Sample(&agg, 0.5)

	assert.InDelta(t, 0.2, agg.Min, 1e-6)
	assert.InDelta(t, 0.8, agg.Max, 1e-6)
	assert.InDelta(t, 1.5, agg.Sum, 1e-6)
	assert.Equal(t, uint64(3), agg.Count)
}

func TestSample_HistogramSingleSampleTracksExactValue(t *testing.T) {
	g := NewGraph(AggregationMask{Kinds: AggHistogram, HistogramBins: 10})
	agg := g.newAggregation()
	g.Sample(&agg, 0.37)
	assert.Equal(t, uint64(1), agg.N)
	assert.InDelta(t, 0.37, agg.FirstValue, 1e-6)
	assert.Equal(t, 1, int(agg.Histogram[3]))
}

func TestSample_TopKKeepsLargestKDescending(t *testing.T) {
	g := NewGraph(AggregationMask{Kinds: AggTopK, TopK: 2})
	agg := g.newAggregation()
	for _, v := range []float32{0.1, 0.9, 0.5, 0.2} {
		g.Sample(&agg, v)
	}
	require.Len(t, agg.TopK, 2)
	assert.InDelta(t, 0.9, agg.TopK[0], 1e-6)
	assert.InDelta(t, 0.5, agg.TopK[1], 1e-6)
}

func TestRewireEndpoint_MovesEdgeToNewOwner(t *testing.T) {
	g := NewGraph(AggregationMask{})
	g.AddRegion(1, 1)
	g.AddRegion(2, 1)
	g.AddRegion(3, 1)

	e, err := g.EnsureEdge(2, 3) // old=2, other=3
	require.NoError(t, err)
	e.ContactArea = 7

	rewired := g.RewireEndpoint(2, 1, 3) // region 2 absorbed into region 1
	require.NotNil(t, rewired)
	assert.Same(t, e, rewired)
	assert.Equal(t, uint64(7), rewired.ContactArea)

	_, ok := g.GetEdge(2, 3)
	assert.False(t, ok)
	got, ok := g.GetEdge(1, 3)
	require.True(t, ok)
	assert.Same(t, e, got)
	assert.Empty(t, g.NeighborEdges(2))
}

func TestRewireEndpoint_ReturnsNilWhenNoEdge(t *testing.T) {
	g := NewGraph(AggregationMask{})
	g.AddRegion(1, 1)
	g.AddRegion(2, 1)
	assert.Nil(t, g.RewireEndpoint(2, 1, 3))
}

func TestCombineInto_MergesContactAreaMinMaxHistogramTopK(t *testing.T) {
	g := NewGraph(AggregationMask{Kinds: AggMin | AggMax | AggHistogram | AggTopK, HistogramBins: 4, TopK: 2})
	g.AddRegion(1, 1)
	g.AddRegion(2, 1)
	g.AddRegion(3, 1)

	uw, err := g.EnsureEdge(1, 3) // "dst" edge (u,w)
	require.NoError(t, err)
	uw.ContactArea = 2
	g.Sample(&uw.Agg, 0.1)
	g.Sample(&uw.Agg, 0.9)

	vw, err := g.EnsureEdge(2, 3) // "src" edge (v,w)
	require.NoError(t, err)
	vw.ContactArea = 3
	g.Sample(&vw.Agg, 0.05)
	g.Sample(&vw.Agg, 0.6)

	CombineInto(uw, vw)

	assert.Equal(t, uint64(5), uw.ContactArea)
	assert.InDelta(t, 0.05, uw.Agg.Min, 1e-6)
	assert.InDelta(t, 0.9, uw.Agg.Max, 1e-6)
	assert.Equal(t, uint32(1), uw.Stale)
	// 4 bins: 0.1 and 0.05 land in bin 0, 0.6 in bin 2, 0.9 in bin 3.
	assert.Equal(t, []uint32{2, 0, 1, 1}, uw.Agg.Histogram)
	require.Len(t, uw.Agg.TopK, 2)
	assert.InDelta(t, 0.9, uw.Agg.TopK[0], 1e-6)
	assert.InDelta(t, 0.6, uw.Agg.TopK[1], 1e-6)
}
