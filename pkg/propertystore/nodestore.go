package propertystore

import (
	"github.com/gdscore/graphstore/pkg/idmap"
	"github.com/gdscore/graphstore/pkg/values"
)

// NodePropertyStore is spec.md §3.3's key->column map for node properties,
// with each column additionally tagged with the set of NodeLabels it applies
// to: a node's property k is only defined if the node's label-set
// intersects the column's label-set.
type NodePropertyStore struct {
	base   *Store
	labels map[string]map[idmap.NodeLabel]struct{}
}

// NewNodePropertyStore returns an empty NodePropertyStore.
func NewNodePropertyStore() *NodePropertyStore {
	return &NodePropertyStore{base: NewStore(), labels: make(map[string]map[idmap.NodeLabel]struct{})}
}

// Put installs (schema, column) scoped to labelSet, failing with
// gdserrors.ErrDuplicateKey if schema.Key already exists. Returns a new
// NodePropertyStore (copy-on-write, see Store.Put).
func (s *NodePropertyStore) Put(labelSet []idmap.NodeLabel, schema Schema, column values.Column) (*NodePropertyStore, error) {
	nextBase, err := s.base.Put(schema, column)
	if err != nil {
		return nil, err
	}
	nextLabels := make(map[string]map[idmap.NodeLabel]struct{}, len(s.labels)+1)
	for k, v := range s.labels {
		nextLabels[k] = v
	}
	set := make(map[idmap.NodeLabel]struct{}, len(labelSet))
	for _, l := range labelSet {
		set[l] = struct{}{}
	}
	nextLabels[schema.Key] = set
	return &NodePropertyStore{base: nextBase, labels: nextLabels}, nil
}

// Get returns the Property stored under key.
func (s *NodePropertyStore) Get(key string) (Property, bool) { return s.base.Get(key) }

// Remove returns a new NodePropertyStore with key removed, failing with
// gdserrors.ErrPropertyNotFound if key is absent.
func (s *NodePropertyStore) Remove(key string) (*NodePropertyStore, error) {
	nextBase, err := s.base.Remove(key)
	if err != nil {
		return nil, err
	}
	nextLabels := make(map[string]map[idmap.NodeLabel]struct{}, len(s.labels))
	for k, v := range s.labels {
		if k != key {
			nextLabels[k] = v
		}
	}
	return &NodePropertyStore{base: nextBase, labels: nextLabels}, nil
}

// Keys returns every property key in the store.
func (s *NodePropertyStore) Keys() []string { return s.base.Keys() }

// Schemas returns every key's Schema.
func (s *NodePropertyStore) Schemas() map[string]Schema { return s.base.Schemas() }

// KeysForLabel returns the subset of keys whose label-set contains label.
func (s *NodePropertyStore) KeysForLabel(label idmap.NodeLabel) []string {
	var keys []string
	for key, set := range s.labels {
		if _, ok := set[label]; ok {
			keys = append(keys, key)
		}
	}
	return keys
}

// DefinedForNode reports whether key applies to a node carrying the given
// label-set: the node's label-set must intersect the column's label-set.
func (s *NodePropertyStore) DefinedForNode(key string, nodeLabels []idmap.NodeLabel) bool {
	set, ok := s.labels[key]
	if !ok {
		return false
	}
	for _, l := range nodeLabels {
		if _, ok := set[l]; ok {
			return true
		}
	}
	return false
}
