package values

import (
	"errors"
	"testing"

	"github.com/gdscore/graphstore/pkg/gdserrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLongColumnBuildAndAccess(t *testing.T) {
	b := NewLongBuilder(3, 0, false)
	require.NoError(t, b.Set(0, 25))
	require.NoError(t, b.Set(1, 30))
	require.NoError(t, b.Set(2, 40))
	col := b.Build()

	assert.Equal(t, Long, col.ValueType())
	assert.Equal(t, int64(3), col.ValueCount())

	v, present, err := col.LongValue(0)
	require.NoError(t, err)
	assert.True(t, present)
	assert.Equal(t, int64(25), v)
}

func TestLongColumnOutOfRangeOnBuild(t *testing.T) {
	b := NewLongBuilder(3, 0, false)
	err := b.Set(3, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, gdserrors.ErrOutOfRange))
}

func TestLongColumnDefaultUnsetModelsNone(t *testing.T) {
	b := NewLongBuilder(2, 99, true)
	require.NoError(t, b.Set(0, 5))
	col := b.Build()

	_, present, err := col.LongValue(1)
	require.NoError(t, err)
	assert.False(t, present)
}

func TestLongColumnDefaultMaterializesWhenNotUnset(t *testing.T) {
	b := NewLongBuilder(2, 99, false)
	require.NoError(t, b.Set(0, 5))
	col := b.Build()

	v, present, err := col.LongValue(1)
	require.NoError(t, err)
	assert.True(t, present)
	assert.Equal(t, int64(99), v)
}

func TestTypeMismatchAccessFails(t *testing.T) {
	b := NewLongBuilder(1, 0, false)
	require.NoError(t, b.Set(0, 1))
	col := b.Build()

	_, _, err := col.DoubleValue(0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, gdserrors.ErrTypeMismatch))
}

func TestDoubleColumnRoundTrip(t *testing.T) {
	b := NewDoubleBuilder(2, 0, false)
	require.NoError(t, b.Set(0, 3.5))
	col := b.Build()
	v, present, err := col.DoubleValue(0)
	require.NoError(t, err)
	assert.True(t, present)
	assert.InDelta(t, 3.5, v, 1e-9)
}

func TestLongArrayColumnRoundTrip(t *testing.T) {
	b := NewLongArrayBuilder(2, nil, true)
	require.NoError(t, b.Set(0, []int64{1, 2, 3}))
	col := b.Build()

	v, present, err := col.LongArrayValue(0)
	require.NoError(t, err)
	assert.True(t, present)
	assert.Equal(t, []int64{1, 2, 3}, v)

	_, present, err = col.LongArrayValue(1)
	require.NoError(t, err)
	assert.False(t, present)
}

func TestFloatArrayColumnTypeMismatch(t *testing.T) {
	b := NewFloatArrayBuilder(1, nil, true)
	require.NoError(t, b.Set(0, []float32{1.0, 2.0}))
	col := b.Build()

	_, _, err := col.LongValue(0)
	assert.True(t, errors.Is(err, gdserrors.ErrTypeMismatch))
}

func TestLongCursorSkipsAbsentAndStopsAtEnd(t *testing.T) {
	b := NewLongBuilder(5, 0, true)
	require.NoError(t, b.Set(1, 10))
	require.NoError(t, b.Set(3, 30))
	col := b.Build()

	cur := col.Cursor()
	var indices []int64
	for {
		i, v, ok := cur.Next()
		if !ok {
			break
		}
		indices = append(indices, i)
		if i == 1 {
			assert.Equal(t, int64(10), v)
		}
	}
	assert.Equal(t, []int64{1, 3}, indices)

	cur.Reset()
	_, _, ok := cur.Next()
	assert.True(t, ok)
}
