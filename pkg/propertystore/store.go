package propertystore

import (
	"fmt"

	"github.com/gdscore/graphstore/pkg/gdserrors"
	"github.com/gdscore/graphstore/pkg/values"
)

// Store is the generic map<string, Property> base every property-store
// flavor builds on. It is immutable once returned by Put/Remove: both
// return a *new* Store sharing every untouched Property by reference,
// giving GraphStore the copy-on-write semantics spec.md §3.6/§4.J require
// for O(1), mutation-independent graph() snapshots — an outstanding Store
// reference (e.g. one a Graph view captured) is simply never touched again.
type Store struct {
	props map[string]Property
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{props: make(map[string]Property)}
}

func (s *Store) clone() map[string]Property {
	next := make(map[string]Property, len(s.props)+1)
	for k, v := range s.props {
		next[k] = v
	}
	return next
}

// Put validates that schema and column agree on ValueType, then returns a
// new Store with (schema, column) installed under schema.Key. Fails with
// gdserrors.ErrDuplicateKey if the key already exists.
func (s *Store) Put(schema Schema, column values.Column) (*Store, error) {
	if _, exists := s.props[schema.Key]; exists {
		return nil, fmt.Errorf("%w: %q", gdserrors.ErrDuplicateKey, schema.Key)
	}
	if err := validateSchemaMatchesColumn(schema, column); err != nil {
		return nil, err
	}
	next := s.clone()
	next[schema.Key] = Property{Schema: schema, Column: column}
	return &Store{props: next}, nil
}

// Replace is Put's explicit-overwrite counterpart: it installs (schema,
// column) under key regardless of whether the key already exists, per
// spec.md §3.6's "replacement is explicit and atomic at the store level."
func (s *Store) Replace(schema Schema, column values.Column) (*Store, error) {
	if err := validateSchemaMatchesColumn(schema, column); err != nil {
		return nil, err
	}
	next := s.clone()
	next[schema.Key] = Property{Schema: schema, Column: column}
	return &Store{props: next}, nil
}

// Get returns the Property stored under key, if any.
func (s *Store) Get(key string) (Property, bool) {
	p, ok := s.props[key]
	return p, ok
}

// Remove returns a new Store with key removed. Fails with
// gdserrors.ErrPropertyNotFound if key is absent.
func (s *Store) Remove(key string) (*Store, error) {
	if _, exists := s.props[key]; !exists {
		return nil, fmt.Errorf("%w: %q", gdserrors.ErrPropertyNotFound, key)
	}
	next := s.clone()
	delete(next, key)
	return &Store{props: next}, nil
}

// Keys returns every key currently in the store, in no particular order.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.props))
	for k := range s.props {
		keys = append(keys, k)
	}
	return keys
}

// Schemas returns every key's Schema.
func (s *Store) Schemas() map[string]Schema {
	out := make(map[string]Schema, len(s.props))
	for k, p := range s.props {
		out[k] = p.Schema
	}
	return out
}
