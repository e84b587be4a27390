package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxelgraph/waterz/region"
	"github.com/voxelgraph/waterz/scoring"
)

func TestBuild_CachesAcrossCalls(t *testing.T) {
	c := New(t.TempDir())

	tree1, hit1, err := c.Build("OneMinus<MaxAffinity>", false)
	require.NoError(t, err)
	require.NotNil(t, tree1)
	assert.False(t, hit1, "first build must be a cache miss")

	tree2, hit2, err := c.Build("OneMinus<MaxAffinity>", false)
	require.NoError(t, err)
	require.NotNil(t, tree2)
	assert.True(t, hit2, "second build of the same expression must hit the cache")

	// tree2 came from disk, not the same *Tree value, but must evaluate
	// identically.
	assert.Equal(t, tree1.Mask(), tree2.Mask())
	ctx := &scoring.Context{Edge: &region.Edge{Agg: region.Aggregation{HasMax: true, Max: 0.6}}}
	assert.Equal(t, tree1.Eval(ctx), tree2.Eval(ctx))
}

func TestBuild_ForceRebuildBypassesCache(t *testing.T) {
	c := New(t.TempDir())

	_, _, err := c.Build("MinSize", false)
	require.NoError(t, err)

	tree, hit, err := c.Build("MinSize", true)
	require.NoError(t, err)
	assert.NotNil(t, tree)
	assert.False(t, hit, "force rebuild must never report a cache hit")
}

func TestBuild_PropagatesParseErrors(t *testing.T) {
	c := New(t.TempDir())

	_, _, err := c.Build("NotARealOperator", false)
	assert.Error(t, err)
}

func TestKey_IsDeterministicAndDistinct(t *testing.T) {
	assert.Equal(t, Key("MinSize"), Key("MinSize"))
	assert.NotEqual(t, Key("MinSize"), Key("MaxSize"))
}
