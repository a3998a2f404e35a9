package graphstore

import (
	"context"
	"errors"
	"testing"

	"github.com/gdscore/graphstore/pkg/gdserrors"
	"github.com/gdscore/graphstore/pkg/idmap"
	"github.com/gdscore/graphstore/pkg/topology"
	"github.com/gdscore/graphstore/pkg/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T, n int64) *GraphStore {
	t.Helper()
	b := idmap.NewBuilder(n)
	for i := int64(0); i < n; i++ {
		b.Add(uint64(100 + i))
	}
	return New(b.Build())
}

func TestAddNodePropertyLengthMismatch(t *testing.T) {
	s := newStore(t, 3)
	col := values.NewLongBuilder(2, 0, false).Build()
	err := s.AddNodeProperty(context.Background(), []idmap.NodeLabel{idmap.OfLabel("Person")}, "age", col)
	require.Error(t, err)
	assert.True(t, errors.Is(err, gdserrors.ErrLengthMismatch))
}

func TestAddRemoveNodePropertyLifecycle(t *testing.T) {
	s := newStore(t, 2)
	b := values.NewLongBuilder(2, 0, false)
	require.NoError(t, b.Set(0, 1))
	require.NoError(t, b.Set(1, 2))
	require.NoError(t, s.AddNodeProperty(context.Background(), []idmap.NodeLabel{idmap.OfLabel("Person")}, "age", b.Build()))

	col, err := s.NodePropertyValues("age")
	require.NoError(t, err)
	v, present, err := col.LongValue(0)
	require.NoError(t, err)
	assert.True(t, present)
	assert.EqualValues(t, 1, v)

	require.NoError(t, s.RemoveNodeProperty(context.Background(), "age"))
	_, err = s.NodePropertyValues("age")
	require.Error(t, err)
	assert.True(t, errors.Is(err, gdserrors.ErrPropertyNotFound))
}

func TestAddRelationshipTypeDuplicateFails(t *testing.T) {
	s := newStore(t, 3)
	knows := idmap.OfType("KNOWS")
	topo := topology.NewBuilder(3, topology.AggregationNone).Build()
	require.NoError(t, s.AddRelationshipType(context.Background(), knows, topo))

	err := s.AddRelationshipType(context.Background(), knows, topo)
	require.Error(t, err)
	assert.True(t, errors.Is(err, gdserrors.ErrDuplicateType))
}

func TestGraphSnapshotUnaffectedByLaterMutation(t *testing.T) {
	s := newStore(t, 3)
	knows := idmap.OfType("KNOWS")
	b := topology.NewBuilder(3, topology.AggregationNone)
	b.AddEdge(0, 1, nil)
	require.NoError(t, s.AddRelationshipType(context.Background(), knows, b.Build()))

	snapshot := s.Graph()
	assert.EqualValues(t, 1, snapshot.RelationshipCount())

	likes := idmap.OfType("LIKES")
	b2 := topology.NewBuilder(3, topology.AggregationNone)
	b2.AddEdge(1, 2, nil)
	require.NoError(t, s.AddRelationshipType(context.Background(), likes, b2.Build()))

	assert.EqualValues(t, 1, snapshot.RelationshipCount(), "existing snapshot must not observe the new type")

	fresh := s.Graph()
	assert.EqualValues(t, 2, fresh.RelationshipCount())
}

func TestDeleteRelationshipsRemovesTypeAndProperties(t *testing.T) {
	s := newStore(t, 2)
	knows := idmap.OfType("KNOWS")
	b := topology.NewBuilder(2, topology.AggregationNone)
	b.AddEdge(0, 1, nil)
	require.NoError(t, s.AddRelationshipType(context.Background(), knows, b.Build()))

	weightB := values.NewDoubleBuilder(1, 0, false)
	require.NoError(t, weightB.Set(0, 4.2))
	require.NoError(t, s.AddRelationshipProperty(context.Background(), knows, "weight", weightB.Build()))

	require.NoError(t, s.DeleteRelationships(context.Background(), knows))
	assert.EqualValues(t, 0, s.RelationshipCount())

	err := s.DeleteRelationships(context.Background(), knows)
	require.Error(t, err)
	assert.True(t, errors.Is(err, gdserrors.ErrTypeNotFound))
}

func TestGraphFilteredRejectsUnknownType(t *testing.T) {
	s := newStore(t, 2)
	_, err := s.GraphFiltered([]idmap.RelationshipType{idmap.OfType("MISSING")})
	require.Error(t, err)
	assert.True(t, errors.Is(err, gdserrors.ErrTypeNotFound))
}
