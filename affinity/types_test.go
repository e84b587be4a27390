package affinity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAffinityVolume_Validates(t *testing.T) {
	_, err := NewAffinityVolume(0, 2, 2, make([]float32, 24))
	assert.ErrorIs(t, err, ErrNonPositiveShape)

	_, err = NewAffinityVolume(2, 2, 2, make([]float32, 10))
	assert.ErrorIs(t, err, ErrLengthMismatch)

	v, err := NewAffinityVolume(2, 2, 2, make([]float32, 3*8))
	require.NoError(t, err)
	assert.Equal(t, 8, v.Voxels())
}

func TestNewAffinityVolume_RejectsNaN(t *testing.T) {
	data := make([]float32, 3*8)
	data[5] = float32(math.NaN())
	_, err := NewAffinityVolume(2, 2, 2, data)
	assert.ErrorIs(t, err, ErrNaNValue)
}

func TestAffinityVolume_AtIndexesChannelMajor(t *testing.T) {
	data := make([]float32, 3*2*2*2)
	// Put a sentinel in channel 1 (y-axis) at (z=1,y=0,x=1).
	v, err := NewAffinityVolume(2, 2, 2, data)
	require.NoError(t, err)
	idx := v.index(1, 1, 0, 1)
	data[idx] = 0.75
	assert.InDelta(t, 0.75, v.At(1, 1, 0, 1), 1e-9)
}

func TestClamp(t *testing.T) {
	v, err := NewAffinityVolume(1, 1, 1, []float32{0.1, 0.2, 0.99})
	require.NoError(t, err)
	clamped := v.Clamp(0.15, 0.9)
	assert.Equal(t, []float32{0, 0.2, 0.9}, clamped.Data)
	// original is untouched
	assert.Equal(t, []float32{0.1, 0.2, 0.99}, v.Data)
}

func TestValidateThresholds(t *testing.T) {
	assert.NoError(t, ValidateThresholds(0.0001, 0.9999))
	assert.ErrorIs(t, ValidateThresholds(0.6, 0.4), ErrThresholdOrder)
	assert.ErrorIs(t, ValidateThresholds(-0.1, 0.5), ErrThresholdRange)
	assert.ErrorIs(t, ValidateThresholds(0.1, 1.5), ErrThresholdRange)
}

func TestLabelVolume_GetSet(t *testing.T) {
	l, err := NewEmptyLabelVolume(2, 2, 2)
	require.NoError(t, err)
	l.Set(1, 1, 1, 42)
	assert.Equal(t, uint64(42), l.At(1, 1, 1))
	assert.Equal(t, uint64(0), l.At(0, 0, 0))
}

func TestCheckShapeMatches(t *testing.T) {
	av, err := NewAffinityVolume(2, 2, 2, make([]float32, 3*8))
	require.NoError(t, err)
	lv, err := NewEmptyLabelVolume(2, 2, 2)
	require.NoError(t, err)
	assert.NoError(t, av.CheckShapeMatches(lv))

	lv2, err := NewEmptyLabelVolume(3, 2, 2)
	require.NoError(t, err)
	assert.ErrorIs(t, av.CheckShapeMatches(lv2), ErrShapeMismatch)
}
