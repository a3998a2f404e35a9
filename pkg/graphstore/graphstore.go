// Package graphstore implements spec.md §3.5/§4.J: the mutable GraphStore
// façade owning an IdMap, a per-type relationship topology map, and the
// three PropertyStore flavors, handing out immutable graph.Graph snapshots
// on demand.
package graphstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/gdscore/graphstore/pkg/gdserrors"
	"github.com/gdscore/graphstore/pkg/graph"
	"github.com/gdscore/graphstore/pkg/idmap"
	"github.com/gdscore/graphstore/pkg/internal/tracelog"
	"github.com/gdscore/graphstore/pkg/propertystore"
	"github.com/gdscore/graphstore/pkg/topology"
	"github.com/gdscore/graphstore/pkg/values"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var tracer trace.Tracer = otel.Tracer("github.com/gdscore/graphstore/pkg/graphstore")

// GraphStore is the mutable façade of spec.md §3.5. Every mutation is
// serialized under mu (a single writer lock, per §5); concurrent readers go
// through Graph()/GraphFiltered() snapshots and never contend with writers,
// since every field a snapshot captures is copy-on-write immutable state.
type GraphStore struct {
	mu sync.Mutex

	idMap      *idmap.IdMap
	nodeProps  *propertystore.NodePropertyStore
	relTopo    map[idmap.RelationshipType]*topology.Topology
	relProps   *propertystore.RelationshipPropertyStore
	graphProps *propertystore.GraphPropertyStore
}

// New returns a GraphStore built over idMap, with empty property stores and
// no relationship types installed.
func New(idMap *idmap.IdMap) *GraphStore {
	return &GraphStore{
		idMap:      idMap,
		nodeProps:  propertystore.NewNodePropertyStore(),
		relTopo:    make(map[idmap.RelationshipType]*topology.Topology),
		relProps:   propertystore.NewRelationshipPropertyStore(),
		graphProps: propertystore.NewGraphPropertyStore(),
	}
}

// NodeCount returns the number of nodes this store was built over.
func (s *GraphStore) NodeCount() int64 { return s.idMap.NodeCount() }

// RelationshipCount returns the total relationship count across every
// installed type.
func (s *GraphStore) RelationshipCount() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total int64
	for _, t := range s.relTopo {
		total += t.RelationshipCount()
	}
	return total
}

// RelationshipCountForType returns the relationship count for a single
// type, or 0 if the type is not installed.
func (s *GraphStore) RelationshipCountForType(relType idmap.RelationshipType) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.relTopo[relType]; ok {
		return t.RelationshipCount()
	}
	return 0
}

// RelationshipTypes returns every installed relationship type.
func (s *GraphStore) RelationshipTypes() []idmap.RelationshipType {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]idmap.RelationshipType, 0, len(s.relTopo))
	for t := range s.relTopo {
		out = append(out, t)
	}
	return out
}

// NodeLabels returns every label registered on the underlying IdMap.
func (s *GraphStore) NodeLabels() []idmap.NodeLabel { return s.idMap.AvailableLabels() }

// NodePropertyKeys returns every node property key currently installed.
func (s *GraphStore) NodePropertyKeys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nodeProps.Keys()
}

// NodePropertyKeysForLabel returns the node property keys scoped to label.
func (s *GraphStore) NodePropertyKeysForLabel(label idmap.NodeLabel) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nodeProps.KeysForLabel(label)
}

// NodePropertyValues returns the column installed under key, failing with
// gdserrors.ErrPropertyNotFound if it does not exist.
func (s *GraphStore) NodePropertyValues(key string) (values.Column, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prop, ok := s.nodeProps.Get(key)
	if !ok {
		return nil, fmt.Errorf("%w: %q", gdserrors.ErrPropertyNotFound, key)
	}
	return prop.Column, nil
}

// AddNodeLabel idempotently registers label on the underlying IdMap.
func (s *GraphStore) AddNodeLabel(label idmap.NodeLabel) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.idMap.EnsureLabel(label)
}

// AddNodeProperty installs column under key, scoped to labels. column's
// length must equal NodeCount(); fails with gdserrors.ErrLengthMismatch
// otherwise, or gdserrors.ErrDuplicateKey if key already exists.
func (s *GraphStore) AddNodeProperty(ctx context.Context, labels []idmap.NodeLabel, key string, column values.Column) error {
	_, span := tracer.Start(ctx, "graphstore.mutate", trace.WithAttributes(attribute.String("op", "add_node_property"), attribute.String("key", key)))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	if column.ValueCount() != s.idMap.NodeCount() {
		return fmt.Errorf("%w: column has %d values, node_count is %d", gdserrors.ErrLengthMismatch, column.ValueCount(), s.idMap.NodeCount())
	}
	schema := propertystore.Schema{Key: key, ValueType: column.ValueType()}
	next, err := s.nodeProps.Put(labels, schema, column)
	if err != nil {
		return err
	}
	s.nodeProps = next
	return nil
}

// RemoveNodeProperty drops key, failing with gdserrors.ErrPropertyNotFound
// if it is absent.
func (s *GraphStore) RemoveNodeProperty(ctx context.Context, key string) error {
	_, span := tracer.Start(ctx, "graphstore.mutate", trace.WithAttributes(attribute.String("op", "remove_node_property"), attribute.String("key", key)))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := s.nodeProps.Remove(key)
	if err != nil {
		return err
	}
	s.nodeProps = next
	return nil
}

// AddRelationshipType installs topo under relType, failing with
// gdserrors.ErrDuplicateType if relType is already present.
func (s *GraphStore) AddRelationshipType(ctx context.Context, relType idmap.RelationshipType, topo *topology.Topology) error {
	_, span := tracer.Start(ctx, "graphstore.mutate", trace.WithAttributes(attribute.String("op", "add_relationship_type"), attribute.String("type", relType.Name())))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.relTopo[relType]; exists {
		return fmt.Errorf("%w: %q", gdserrors.ErrDuplicateType, relType.Name())
	}
	next := make(map[idmap.RelationshipType]*topology.Topology, len(s.relTopo)+1)
	for k, v := range s.relTopo {
		next[k] = v
	}
	next[relType] = topo
	s.relTopo = next
	return nil
}

// AddRelationshipProperty installs column under (relType, key). column's
// length must equal RelationshipCountForType(relType); fails with
// gdserrors.ErrTypeNotFound or gdserrors.ErrLengthMismatch otherwise.
func (s *GraphStore) AddRelationshipProperty(ctx context.Context, relType idmap.RelationshipType, key string, column values.Column) error {
	_, span := tracer.Start(ctx, "graphstore.mutate", trace.WithAttributes(attribute.String("op", "add_relationship_property"), attribute.String("type", relType.Name()), attribute.String("key", key)))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	topo, ok := s.relTopo[relType]
	if !ok {
		return fmt.Errorf("%w: %q", gdserrors.ErrTypeNotFound, relType.Name())
	}
	if column.ValueCount() != topo.RelationshipCount() {
		return fmt.Errorf("%w: column has %d values, type %q has %d relationships",
			gdserrors.ErrLengthMismatch, column.ValueCount(), relType.Name(), topo.RelationshipCount())
	}
	schema := propertystore.Schema{Key: key, ValueType: column.ValueType()}
	next, err := s.relProps.Put(relType, schema, column)
	if err != nil {
		return err
	}
	s.relProps = next
	return nil
}

// DeleteRelationships removes relType wholesale: its topology and every
// property installed under it.
func (s *GraphStore) DeleteRelationships(ctx context.Context, relType idmap.RelationshipType) error {
	_, span := tracer.Start(ctx, "graphstore.mutate", trace.WithAttributes(attribute.String("op", "delete_relationships"), attribute.String("type", relType.Name())))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.relTopo[relType]; !exists {
		return fmt.Errorf("%w: %q", gdserrors.ErrTypeNotFound, relType.Name())
	}
	next := make(map[idmap.RelationshipType]*topology.Topology, len(s.relTopo))
	for k, v := range s.relTopo {
		if k != relType {
			next[k] = v
		}
	}
	s.relTopo = next
	s.relProps = s.relProps.RemoveType(relType)
	tracelog.Debugf("graphstore: deleted relationship type %q", relType.Name())
	return nil
}

// Graph takes an O(1) snapshot of the current state, spanning every
// installed relationship type.
func (s *GraphStore) Graph() *graph.Graph {
	s.mu.Lock()
	defer s.mu.Unlock()
	return graph.New(s.idMap, s.nodeProps, s.snapshotTopo(), s.allTypesLocked(), nil)
}

// GraphFiltered takes a snapshot restricted to the given relationship
// types, failing with gdserrors.ErrTypeNotFound if any is absent.
func (s *GraphStore) GraphFiltered(types []idmap.RelationshipType) (*graph.Graph, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range types {
		if _, ok := s.relTopo[t]; !ok {
			return nil, fmt.Errorf("%w: %q", gdserrors.ErrTypeNotFound, t.Name())
		}
	}
	return graph.New(s.idMap, s.nodeProps, s.snapshotTopo(), types, nil), nil
}

func (s *GraphStore) snapshotTopo() map[idmap.RelationshipType]*topology.Topology {
	snap := make(map[idmap.RelationshipType]*topology.Topology, len(s.relTopo))
	for k, v := range s.relTopo {
		snap[k] = v
	}
	return snap
}

func (s *GraphStore) allTypesLocked() []idmap.RelationshipType {
	out := make([]idmap.RelationshipType, 0, len(s.relTopo))
	for t := range s.relTopo {
		out = append(out, t)
	}
	return out
}
