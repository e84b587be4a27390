package metrics

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxelgraph/waterz/affinity"
)

func randomLabelVolume(t *testing.T, seed int64, d, h, w int, maxLabel uint64) *affinity.LabelVolume {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	data := make([]uint64, d*h*w)
	for i := range data {
		data[i] = uint64(r.Intn(int(maxLabel))) + 1
	}
	vol, err := affinity.NewLabelVolume(d, h, w, data)
	require.NoError(t, err)

	return vol
}

func TestCompute_SelfAgreementIsPerfect(t *testing.T) {
	vol := randomLabelVolume(t, 1, 3, 3, 3, 5)

	scores, err := Compute(vol, vol)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, scores.RandSplit, 1e-12)
	assert.InDelta(t, 1.0, scores.RandMerge, 1e-12)
	assert.InDelta(t, 0.0, scores.VOISplit, 1e-12)
	assert.InDelta(t, 0.0, scores.VOIMerge, 1e-12)
}

func TestCompute_ShapeMismatch(t *testing.T) {
	a := randomLabelVolume(t, 1, 2, 2, 2, 3)
	b := randomLabelVolume(t, 2, 3, 2, 2, 3)

	_, err := Compute(a, b)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestCompute_AllBackgroundIsPerfectByConvention(t *testing.T) {
	d, h, w := 2, 2, 2
	zeros := make([]uint64, d*h*w)
	a, err := affinity.NewLabelVolume(d, h, w, zeros)
	require.NoError(t, err)
	b, err := affinity.NewLabelVolume(d, h, w, append([]uint64{}, zeros...))
	require.NoError(t, err)

	scores, err := Compute(a, b)
	require.NoError(t, err)
	assert.Equal(t, Scores{RandSplit: 1, RandMerge: 1}, scores)
}

func TestCompute_DifferentRandomSeedsRegression(t *testing.T) {
	a := randomLabelVolume(t, 11, 3, 3, 3, 5)
	b := randomLabelVolume(t, 22, 3, 3, 3, 5)

	scores, err := Compute(a, b)
	require.NoError(t, err)

	// Regression values depend on the exact PRNG sequence produced by
	// math/rand with these seeds; recorded here to catch accidental
	// formula regressions, not asserted against spec-given constants.
	assert.InDelta(t, 0.32919254658385094, scores.RandSplit, 1e-9)
	assert.InDelta(t, 0.28342245989304815, scores.RandMerge, 1e-9)
	assert.InDelta(t, 1.1751267519385347, scores.VOISplit, 1e-9)
	assert.InDelta(t, 1.2871734282887379, scores.VOIMerge, 1e-9)
	assert.Greater(t, scores.RandSplit, 0.0)
	assert.LessOrEqual(t, scores.RandSplit, 1.0)
	assert.Greater(t, scores.RandMerge, 0.0)
	assert.LessOrEqual(t, scores.RandMerge, 1.0)
	assert.GreaterOrEqual(t, scores.VOISplit, 0.0)
	assert.GreaterOrEqual(t, scores.VOIMerge, 0.0)
}
