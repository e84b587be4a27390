package waterz

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxelgraph/waterz/affinity"
	"github.com/voxelgraph/waterz/fragment"
)

func fragmentsFor(t *testing.T, av *affinity.AffinityVolume) (*affinity.LabelVolume, error) {
	t.Helper()

	return fragment.Segment(av, DefaultAffLow, DefaultAffHigh)
}

func planarSlabAffinities(t *testing.T) *affinity.AffinityVolume {
	t.Helper()
	const n = 4
	voxels := n * n * n
	data := make([]float32, 3*voxels)
	for i := range data {
		data[i] = 1
	}
	flat := func(c, z, y, x int) int { return c*voxels + (z*n+y)*n + x }
	for z := 0; z < n; z++ {
		for y := 0; y < n; y++ {
			for x := 0; x < n; x++ {
				data[flat(0, z, y, x)] = 0.4
			}
		}
	}
	for z := 0; z < n; z++ {
		data[flat(0, z, 0, 0)] = 0.6
	}
	av, err := affinity.NewAffinityVolume(n, n, n, data)
	require.NoError(t, err)

	return av
}

func TestAgglomerate_EndToEndMaxAffinityMergeScenario(t *testing.T) {
	av := planarSlabAffinities(t)

	seq, err := Agglomerate(av, []float64{0, 0.5}, WithScoringFunction("OneMinus<MaxAffinity>"))
	require.NoError(t, err)

	res0, ok, err := seq.Next(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 0.0, res0.Threshold)

	res1, ok, err := seq.Next(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	seen := make(map[uint64]bool)
	for _, v := range res1.Labels.Data {
		seen[v] = true
	}
	assert.Len(t, seen, 1)

	_, ok, err = seq.Next(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAgglomerate_WithGroundTruthYieldsMetrics(t *testing.T) {
	av := planarSlabAffinities(t)

	seq, err := Agglomerate(av, []float64{0, 0.5}, WithScoringFunction("OneMinus<MaxAffinity>"))
	require.NoError(t, err)
	res0, ok, err := seq.Next(context.Background())
	require.NoError(t, err)
	require.True(t, ok)

	seq2, err := Agglomerate(av, []float64{0}, WithScoringFunction("OneMinus<MaxAffinity>"), WithGroundTruth(res0.Labels))
	require.NoError(t, err)
	res, ok, err := seq2.Next(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	require.NotNil(t, res.Metrics)
	assert.InDelta(t, 1.0, res.Metrics.RandSplit, 1e-12)
	assert.InDelta(t, 1.0, res.Metrics.RandMerge, 1e-12)
}

func TestAgglomerate_WithMergeHistoryAndRegionGraph(t *testing.T) {
	av := planarSlabAffinities(t)

	seq, err := Agglomerate(av, []float64{1.0},
		WithScoringFunction("OneMinus<MaxAffinity>"),
		WithMergeHistory(),
		WithRegionGraphDump(),
	)
	require.NoError(t, err)

	res, ok, err := seq.Next(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	assert.NotEmpty(t, res.MergeHistory)
	require.NotNil(t, res.RegionGraph)
}

func TestAgglomerate_RejectsNilAffinities(t *testing.T) {
	_, err := Agglomerate(nil, []float64{0})
	assert.ErrorIs(t, err, ErrNilAffinities)
}

func TestAgglomerate_PrecomputedFragmentsMatchRawRun(t *testing.T) {
	av := planarSlabAffinities(t)

	rawSeq, err := Agglomerate(av, []float64{0.5}, WithScoringFunction("OneMinus<MaxAffinity>"))
	require.NoError(t, err)
	rawRes, ok, err := rawSeq.Next(context.Background())
	require.NoError(t, err)
	require.True(t, ok)

	frags, err := fragmentsFor(t, av)
	require.NoError(t, err)

	preSeq, err := Agglomerate(av, []float64{0.5}, WithScoringFunction("OneMinus<MaxAffinity>"), WithFragments(frags))
	require.NoError(t, err)
	preRes, ok, err := preSeq.Next(context.Background())
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, rawRes.Labels.Data, preRes.Labels.Data)
}
