package idmap

import (
	"sync"

	"github.com/gdscore/graphstore/pkg/collections"
)

// IdMap implements spec.md §4.G: original (sparse, caller-supplied) id to
// internal (dense, contiguous) id translation, plus the per-label membership
// bitsets spec.md §3.1 describes as belonging to each internal id.
//
// Backing representation matches the spec exactly: a hash map for the
// sparse original->internal direction, and a dense paged array for the
// total internal->original direction, one collections.HugeAtomicBitSet per
// known label for membership.
type IdMap struct {
	originalToInternal map[uint64]int64
	internalToOriginal *collections.HugeLongArray
	nodeCount          int64

	mu        sync.RWMutex
	labelBits map[NodeLabel]*collections.HugeAtomicBitSet
	labels    []NodeLabel
}

// ToMapped returns the internal id for original, if known.
func (m *IdMap) ToMapped(original uint64) (int64, bool) {
	internal, ok := m.originalToInternal[original]
	return internal, ok
}

// ToOriginal returns the original id for internal. internal must already be
// valid (checked via ToMapped or NodeCount) — an invalid internal id here is
// a programming bug, not an application error, and panics per spec.md §7.
func (m *IdMap) ToOriginal(internal int64) uint64 {
	return uint64(m.internalToOriginal.Get(internal))
}

// Contains reports whether original has a mapped internal id.
func (m *IdMap) Contains(original uint64) bool {
	_, ok := m.originalToInternal[original]
	return ok
}

// NodeCount returns the total number of internal ids, i.e. [0, NodeCount()).
func (m *IdMap) NodeCount() int64 { return m.nodeCount }

// HasLabel reports whether internal carries label. An unknown label reports
// false rather than erroring — label existence is a GraphStore-level
// question (spec.md's node_labels()), not an IdMap one.
func (m *IdMap) HasLabel(internal int64, label NodeLabel) bool {
	m.mu.RLock()
	bits, ok := m.labelBits[label]
	m.mu.RUnlock()
	if !ok {
		return false
	}
	return bits.Get(internal)
}

// ForEachNodeLabel calls fn once per label internal carries, in the order
// the labels were first registered.
func (m *IdMap) ForEachNodeLabel(internal int64, fn func(NodeLabel)) {
	m.mu.RLock()
	labels := append([]NodeLabel(nil), m.labels...)
	bitsByLabel := m.labelBits
	m.mu.RUnlock()

	for _, l := range labels {
		if bitsByLabel[l].Get(internal) {
			fn(l)
		}
	}
}

// AvailableLabels returns every label currently registered, whether or not
// any node carries it — the same idempotent "declare a label" semantics
// spec.md §4.J's add_node_label requires.
func (m *IdMap) AvailableLabels() []NodeLabel {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]NodeLabel(nil), m.labels...)
}

// EnsureLabel idempotently registers label, allocating a membership bitset
// for it if this is the first time it has been seen.
func (m *IdMap) EnsureLabel(label NodeLabel) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.labelBits[label]; ok {
		return
	}
	m.labelBits[label] = collections.NewHugeAtomicBitSet(m.nodeCount)
	m.labels = append(m.labels, label)
}

// SetLabel marks internal as carrying label, registering the label first if
// necessary. Used while constructing an IdMap from loaded records; not part
// of the steady-state query surface.
func (m *IdMap) SetLabel(internal int64, label NodeLabel) {
	m.EnsureLabel(label)
	m.mu.RLock()
	bits := m.labelBits[label]
	m.mu.RUnlock()
	bits.Set(internal)
}
