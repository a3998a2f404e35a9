package propertystore

import (
	"fmt"

	"github.com/gdscore/graphstore/pkg/gdserrors"
	"github.com/gdscore/graphstore/pkg/idmap"
	"github.com/gdscore/graphstore/pkg/values"
)

// RelationshipPropertyStore is spec.md §3.3's per-RelationshipType property
// store: each type owns its own independent key->column Store, since a
// property key like "weight" means something different (and has a
// different cardinality) for KNOWS edges than for LIKES edges.
type RelationshipPropertyStore struct {
	byType map[idmap.RelationshipType]*Store
}

// NewRelationshipPropertyStore returns an empty RelationshipPropertyStore.
func NewRelationshipPropertyStore() *RelationshipPropertyStore {
	return &RelationshipPropertyStore{byType: make(map[idmap.RelationshipType]*Store)}
}

// Put installs (schema, column) under relType, failing with
// gdserrors.ErrDuplicateKey if schema.Key already exists for that type.
// Returns a new RelationshipPropertyStore (copy-on-write).
func (s *RelationshipPropertyStore) Put(relType idmap.RelationshipType, schema Schema, column values.Column) (*RelationshipPropertyStore, error) {
	scoped, ok := s.byType[relType]
	if !ok {
		scoped = NewStore()
	}
	nextScoped, err := scoped.Put(schema, column)
	if err != nil {
		return nil, err
	}
	return s.withType(relType, nextScoped), nil
}

// Get returns the Property stored under (relType, key).
func (s *RelationshipPropertyStore) Get(relType idmap.RelationshipType, key string) (Property, bool) {
	scoped, ok := s.byType[relType]
	if !ok {
		return Property{}, false
	}
	return scoped.Get(key)
}

// Remove returns a new RelationshipPropertyStore with (relType, key)
// removed.
func (s *RelationshipPropertyStore) Remove(relType idmap.RelationshipType, key string) (*RelationshipPropertyStore, error) {
	scoped, ok := s.byType[relType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", gdserrors.ErrTypeNotFound, relType.Name())
	}
	nextScoped, err := scoped.Remove(key)
	if err != nil {
		return nil, err
	}
	return s.withType(relType, nextScoped), nil
}

// RemoveType drops every property for relType (used when a relationship
// type is deleted wholesale).
func (s *RelationshipPropertyStore) RemoveType(relType idmap.RelationshipType) *RelationshipPropertyStore {
	next := s.cloneMap()
	delete(next, relType)
	return &RelationshipPropertyStore{byType: next}
}

// KeysForType returns every property key defined for relType.
func (s *RelationshipPropertyStore) KeysForType(relType idmap.RelationshipType) []string {
	scoped, ok := s.byType[relType]
	if !ok {
		return nil
	}
	return scoped.Keys()
}

func (s *RelationshipPropertyStore) cloneMap() map[idmap.RelationshipType]*Store {
	next := make(map[idmap.RelationshipType]*Store, len(s.byType)+1)
	for k, v := range s.byType {
		next[k] = v
	}
	return next
}

func (s *RelationshipPropertyStore) withType(relType idmap.RelationshipType, scoped *Store) *RelationshipPropertyStore {
	next := s.cloneMap()
	next[relType] = scoped
	return &RelationshipPropertyStore{byType: next}
}
