package examples

import (
	"context"
	"math"
	"testing"

	"github.com/gdscore/graphstore/pkg/concurrency"
	"github.com/gdscore/graphstore/pkg/graph"
	"github.com/gdscore/graphstore/pkg/idmap"
	"github.com/gdscore/graphstore/pkg/propertystore"
	"github.com/gdscore/graphstore/pkg/topology"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildGraph(t *testing.T, n int64, edges [][2]int64) *graph.Graph {
	t.Helper()
	b := idmap.NewBuilder(n)
	for i := int64(0); i < n; i++ {
		b.Add(uint64(i))
	}
	idm := b.Build()

	tb := topology.NewBuilder(n, topology.AggregationNone)
	for _, e := range edges {
		tb.AddEdge(e[0], e[1], nil)
	}
	relType := idmap.OfType("REL")
	return graph.New(idm, propertystore.NewNodePropertyStore(),
		map[idmap.RelationshipType]*topology.Topology{relType: tb.Build()},
		[]idmap.RelationshipType{relType}, nil)
}

func TestPageRankConvergesOnRing(t *testing.T) {
	g := buildGraph(t, 4, [][2]int64{{0, 1}, {1, 2}, {2, 3}, {3, 0}})

	ranks, err := PageRank(context.Background(), g, PageRankConfig{
		DampingFactor: 0.85,
		MaxIterations: 20,
		Concurrency:   concurrency.Must(2),
	})
	require.NoError(t, err)
	require.Len(t, ranks, 4)
	for _, r := range ranks {
		assert.Less(t, math.Abs(r-0.25), 1e-6)
	}
}

func TestWeaklyConnectedComponentsLabelsTwoComponents(t *testing.T) {
	// 0 <-> 1 <-> 2 form one weak component; 3 <-> 4 form another.
	g := buildGraph(t, 5, [][2]int64{{0, 1}, {1, 2}, {3, 4}})

	labels, err := WeaklyConnectedComponents(context.Background(), g, WCCConfig{
		MaxIterations: 20,
		Concurrency:   concurrency.Must(2),
	})
	require.NoError(t, err)

	assert.Equal(t, labels[0], labels[1])
	assert.Equal(t, labels[1], labels[2])
	assert.Equal(t, labels[3], labels[4])
	assert.NotEqual(t, labels[0], labels[3])
}
