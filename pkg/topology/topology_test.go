package topology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdjacencyRoundTripScenario6(t *testing.T) {
	b := NewBuilder(10, AggregationSum)
	b.AddEdge(0, 1, map[string]float64{"weight": 1.0})
	b.AddEdge(0, 5, map[string]float64{"weight": 2.0})
	b.AddEdge(0, 5, map[string]float64{"weight": 3.0})
	b.AddEdge(0, 9, map[string]float64{"weight": 4.0})
	top := b.Build()

	require.EqualValues(t, 3, top.Degree(0))
	require.EqualValues(t, 3, top.RelationshipCount())

	var targets []int64
	var weights []float64
	cur := top.Stream(0)
	for cur.Next() {
		targets = append(targets, cur.Target())
		weights = append(weights, cur.Property("weight", -1))
	}
	assert.Equal(t, []int64{1, 5, 9}, targets)
	assert.Equal(t, []float64{1.0, 5.0, 4.0}, weights)
}

func TestStreamYieldsTargetsInAscendingOrder(t *testing.T) {
	b := NewBuilder(6, AggregationNone)
	b.AddEdge(2, 5, nil)
	b.AddEdge(2, 1, nil)
	b.AddEdge(2, 3, nil)
	top := b.Build()

	var targets []int64
	cur := top.Stream(2)
	for cur.Next() {
		targets = append(targets, cur.Target())
	}
	assert.Equal(t, []int64{1, 3, 5}, targets)
}

func TestDegreeEqualsStreamLength(t *testing.T) {
	b := NewBuilder(4, AggregationNone)
	b.AddEdge(0, 1, nil)
	b.AddEdge(0, 2, nil)
	b.AddEdge(0, 3, nil)
	b.AddEdge(1, 3, nil)
	top := b.Build()

	for src := int64(0); src < 4; src++ {
		count := int64(0)
		cur := top.Stream(src)
		for cur.Next() {
			count++
		}
		assert.Equal(t, top.Degree(src), count, "source %d", src)
	}
}

func TestSourceWithNoEdgesStreamsEmpty(t *testing.T) {
	b := NewBuilder(3, AggregationNone)
	b.AddEdge(0, 1, nil)
	top := b.Build()

	assert.EqualValues(t, 0, top.Degree(2))
	cur := top.Stream(2)
	assert.False(t, cur.Next())
}

func TestInverseIsConsistentWithForward(t *testing.T) {
	b := NewBuilder(4, AggregationNone)
	b.AddEdge(0, 2, map[string]float64{"w": 1})
	b.AddEdge(1, 2, map[string]float64{"w": 2})
	b.AddEdge(0, 3, map[string]float64{"w": 3})
	top := b.Build()

	inv := top.Inverse()
	require.EqualValues(t, 2, inv.Degree(2))
	require.EqualValues(t, 1, inv.Degree(3))
	require.EqualValues(t, 0, inv.Degree(0))

	var sourcesOf2 []int64
	cur := inv.Stream(2)
	for cur.Next() {
		sourcesOf2 = append(sourcesOf2, cur.Target())
	}
	assert.Equal(t, []int64{0, 1}, sourcesOf2)

	assert.Same(t, inv, top.Inverse(), "Inverse must be cached across calls")
}

func TestAggregationMaxMinCount(t *testing.T) {
	maxB := NewBuilder(2, AggregationMax)
	maxB.AddEdge(0, 1, map[string]float64{"w": 3})
	maxB.AddEdge(0, 1, map[string]float64{"w": 7})
	maxB.AddEdge(0, 1, map[string]float64{"w": 5})
	maxTop := maxB.Build()
	require.EqualValues(t, 1, maxTop.Degree(0))
	cur := maxTop.Stream(0)
	require.True(t, cur.Next())
	assert.Equal(t, 7.0, cur.Property("w", -1))

	countB := NewBuilder(2, AggregationCount)
	countB.AddEdge(0, 1, map[string]float64{"w": 3})
	countB.AddEdge(0, 1, map[string]float64{"w": 7})
	countTop := countB.Build()
	cur2 := countTop.Stream(0)
	require.True(t, cur2.Next())
	assert.Equal(t, 2.0, cur2.Property("w", -1))
}

func TestAggregationNoneKeepsParallelEdges(t *testing.T) {
	b := NewBuilder(2, AggregationNone)
	b.AddEdge(0, 1, map[string]float64{"w": 1})
	b.AddEdge(0, 1, map[string]float64{"w": 2})
	top := b.Build()

	require.EqualValues(t, 2, top.Degree(0))
	var weights []float64
	cur := top.Stream(0)
	for cur.Next() {
		weights = append(weights, cur.Property("w", -1))
	}
	assert.Equal(t, []float64{1.0, 2.0}, weights)
}

func TestVarlongRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 127, 128, 300, 1 << 20, 1 << 40}
	var buf []byte
	for _, v := range values {
		buf = encodeVarlong(buf, v)
	}
	pos := 0
	for _, want := range values {
		got, next := decodeVarlong(buf, pos)
		assert.Equal(t, want, got)
		pos = next
	}
	assert.Equal(t, len(buf), pos)
}
