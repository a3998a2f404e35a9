// Package idmap implements spec.md §4.G (original↔internal id mapping) and
// the NodeLabel/RelationshipType interning spec.md §3.1 and §9 describe.
package idmap

import (
	"sync"

	"github.com/cespare/xxhash/v2"
)

// interner is a process-wide string interner: two tokens built from the same
// textual name compare equal (they are literally the same pointer), giving
// value-equal semantics at the cost of one extra indirection, the same
// trade the teacher's own label normalization (pkg/storage/memory.go's
// normalizeLabel) makes for case-insensitive comparison — interning goes
// one step further and collapses the indirection into pointer identity.
type interner struct {
	mu      sync.RWMutex
	buckets map[uint64][]*entry
}

type entry struct {
	name string
}

func newInterner() *interner {
	return &interner{buckets: make(map[uint64][]*entry)}
}

func (in *interner) intern(name string) *entry {
	h := xxhash.Sum64String(name)

	in.mu.RLock()
	for _, e := range in.buckets[h] {
		if e.name == name {
			in.mu.RUnlock()
			return e
		}
	}
	in.mu.RUnlock()

	in.mu.Lock()
	defer in.mu.Unlock()
	for _, e := range in.buckets[h] {
		if e.name == name {
			return e
		}
	}
	e := &entry{name: name}
	in.buckets[h] = append(in.buckets[h], e)
	return e
}

var (
	labelInterner = newInterner()
	typeInterner  = newInterner()
)

// NodeLabel is an interned, value-equal token naming a node label. Two
// NodeLabel values built from the same textual name are `==`-comparable and
// compare equal.
type NodeLabel struct {
	e *entry
}

// OfLabel interns name and returns the corresponding NodeLabel.
func OfLabel(name string) NodeLabel {
	return NodeLabel{e: labelInterner.intern(name)}
}

// Name returns the label's textual name.
func (l NodeLabel) Name() string { return l.e.name }

// RelationshipType is an interned, value-equal token naming a relationship
// type.
type RelationshipType struct {
	e *entry
}

// OfType interns name and returns the corresponding RelationshipType.
func OfType(name string) RelationshipType {
	return RelationshipType{e: typeInterner.intern(name)}
}

// Name returns the relationship type's textual name.
func (t RelationshipType) Name() string { return t.e.name }
