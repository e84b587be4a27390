package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxelgraph/waterz/region"
)

func TestParse_IgnoresTypeTagArguments(t *testing.T) {
	node, err := Parse("MinSize<RegionGraphType>")
	require.NoError(t, err)
	assert.IsType(t, minSizeNode{}, node)
}

func TestParse_NestedCombinators(t *testing.T) {
	node, err := Parse("Multiply<OneMinus<MaxAffinity<AffinitiesType>>, MinSize<SizesType>>")
	require.NoError(t, err)

	bin, ok := node.(binaryNode)
	require.True(t, ok)
	assert.Equal(t, opMultiply, bin.Op)
	un, ok := bin.A.(unaryNode)
	require.True(t, ok)
	assert.Equal(t, opOneMinus, un.Op)
	assert.IsType(t, maxAffinityNode{}, un.Child)
	assert.IsType(t, minSizeNode{}, bin.B)
}

func TestParse_ConstantArgument(t *testing.T) {
	node, err := Parse("Constant<RegionGraphType, 7>")
	require.NoError(t, err)
	c, ok := node.(constantNode)
	require.True(t, ok)
	assert.Equal(t, 7.0, c.K)
}

func TestParse_QuantileAffinityArguments(t *testing.T) {
	node, err := Parse("QuantileAffinity<RegionGraphType, 50, ScoreValue, false>")
	require.NoError(t, err)
	q, ok := node.(quantileAffinityNode)
	require.True(t, ok)
	assert.Equal(t, 50.0, q.Q)
	assert.False(t, q.InitWithMax)
}

func TestParse_QuantileAffinityDefaultsInitWithMaxTrue(t *testing.T) {
	node, err := Parse("QuantileAffinity<RegionGraphType, 50, ScoreValue>")
	require.NoError(t, err)
	q := node.(quantileAffinityNode)
	assert.True(t, q.InitWithMax)
}

func TestParse_HistogramQuantileAffinityArguments(t *testing.T) {
	node, err := Parse("HistogramQuantileAffinity<RegionGraphType, 50, ScoreValue, 256, true>")
	require.NoError(t, err)
	h, ok := node.(histogramQuantileAffinityNode)
	require.True(t, ok)
	assert.Equal(t, 50.0, h.Q)
	assert.Equal(t, 256, h.Bins)
	assert.True(t, h.InitWithMax)
}

func TestParse_UnknownOperator(t *testing.T) {
	_, err := Parse("Bogus<RegionGraphType>")
	assert.ErrorIs(t, err, ErrUnsupportedOperator)
}

func TestParse_MismatchedBrackets(t *testing.T) {
	_, err := Parse("MinSize<RegionGraphType")
	assert.ErrorIs(t, err, ErrParse)
}

func TestParse_TrailingGarbage(t *testing.T) {
	_, err := Parse("MinSize<RegionGraphType> extra")
	assert.ErrorIs(t, err, ErrParse)
}

func TestBuild_RejectsConflictingTopKAndHistogram(t *testing.T) {
	expr := "Add<MeanMaxKAffinity<RegionGraphType, 2, ScoreValue>, " +
		"HistogramQuantileAffinity<RegionGraphType, 50, ScoreValue, 10, true>>"
	_, err := Build(expr)
	assert.ErrorIs(t, err, ErrConflictingAggregations)
}

func TestBuild_InfersMask(t *testing.T) {
	tree, err := Build("Multiply<OneMinus<MaxAffinity<AffinitiesType>>, MinSize<SizesType>>")
	require.NoError(t, err)
	assert.True(t, tree.Mask().Kinds.Has(region.AggMax))
}
