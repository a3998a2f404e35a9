package memory

import (
	"errors"
	"testing"

	"github.com/gdscore/graphstore/pkg/gdserrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRangeArithmetic(t *testing.T) {
	a := Range{Min: 10, Max: 20}
	b := Range{Min: 5, Max: 5}

	assert.Equal(t, Range{Min: 15, Max: 25}, a.Add(b))
	assert.Equal(t, Range{Min: 20, Max: 40}, a.Times(2))
	assert.Equal(t, Range{Min: 5, Max: 15}, a.SaturatingSub(b))
	assert.Equal(t, Range{Min: 5, Max: 20}, a.Union(b))
	assert.Equal(t, Range{Min: 10, Max: 20}, a.MaxOf(b))
}

func TestRangeSaturatingSubClampsAtZero(t *testing.T) {
	a := Range{Min: 1, Max: 1}
	b := Range{Min: 10, Max: 10}
	got := a.SaturatingSub(b)
	assert.Equal(t, int64(0), got.Min)
	assert.Equal(t, int64(0), got.Max)
}

func TestTreeTotalEstimateSumsDescendants(t *testing.T) {
	root := NewTree("graph", Of(100))
	root.AddChild(NewTree("nodes", Of(50)))
	root.AddChild(NewTree("relationships", Of(200)))

	total := root.TotalEstimate()
	assert.Equal(t, int64(350), total.Min)
	assert.Equal(t, int64(350), total.Max)
}

func TestTreeRenderIncludesEveryNodeName(t *testing.T) {
	root := NewTree("graph", Of(1024))
	root.AddChild(NewTree("nodes", Of(512)))
	text := root.Render()
	assert.Contains(t, text, "graph")
	assert.Contains(t, text, "nodes")
}

func TestEstimatePrimitivesAlignTo8Bytes(t *testing.T) {
	got := SizeOfLongArray(3)
	assert.Equal(t, int64(0), got%8)
	assert.True(t, got >= 3*8)
}

func TestTrackerReserveAndRelease(t *testing.T) {
	tr := NewTracker(1000)
	require.NoError(t, tr.Reserve("alice", "graph1", 400))
	assert.Equal(t, int64(400), tr.UsedByUser("alice"))
	assert.Equal(t, int64(400), tr.TotalUsed())
	assert.Equal(t, int64(600), tr.Available())

	tr.Release("alice", "graph1", 400)
	assert.Equal(t, int64(0), tr.UsedByUser("alice"))
	assert.Equal(t, int64(0), tr.TotalUsed())
}

func TestTrackerReserveFailsWhenBudgetExceeded(t *testing.T) {
	tr := NewTracker(100)
	err := tr.Reserve("bob", "graph1", 200)
	require.Error(t, err)
	assert.True(t, errors.Is(err, gdserrors.ErrMemoryReservationExceeded))
	assert.Equal(t, int64(0), tr.TotalUsed())
}

func TestTrackerUnboundedWhenLimitZero(t *testing.T) {
	tr := NewTracker(0)
	require.NoError(t, tr.Reserve("carol", "graph1", 1_000_000))
	assert.Equal(t, int64(-1), tr.Available())
}
