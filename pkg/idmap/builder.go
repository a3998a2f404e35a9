package idmap

import "github.com/gdscore/graphstore/pkg/collections"

// Builder assembles an IdMap from a stream of original ids, assigning dense
// internal ids in the order Add is called — the construction-time counterpart
// spec.md §3.6 describes ("Topology is built by the loading pipeline...
// installed atomically"); IdMap construction follows the same pattern.
type Builder struct {
	originalToInternal map[uint64]int64
	originals          []uint64
}

// NewBuilder returns an empty Builder, optionally sized for expectedCount
// ids to avoid hash-map rehashing.
func NewBuilder(expectedCount int64) *Builder {
	return &Builder{
		originalToInternal: make(map[uint64]int64, expectedCount),
		originals:          make([]uint64, 0, expectedCount),
	}
}

// Add registers original and returns its internal id. Calling Add again
// with an original id already registered returns the same internal id
// without creating a duplicate.
func (b *Builder) Add(original uint64) int64 {
	if internal, ok := b.originalToInternal[original]; ok {
		return internal
	}
	internal := int64(len(b.originals))
	b.originalToInternal[original] = internal
	b.originals = append(b.originals, original)
	return internal
}

// Build finalizes the IdMap. The builder must not be reused afterward.
func (b *Builder) Build() *IdMap {
	n := int64(len(b.originals))
	dense := collections.NewHugeLongArray(n)
	for i, original := range b.originals {
		dense.Set(int64(i), int64(original))
	}
	return &IdMap{
		originalToInternal: b.originalToInternal,
		internalToOriginal: dense,
		nodeCount:          n,
		labelBits:          make(map[NodeLabel]*collections.HugeAtomicBitSet),
	}
}
