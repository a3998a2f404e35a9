package collections

import (
	"sync/atomic"

	"github.com/gdscore/graphstore/pkg/gdserrors"
)

const wordBits = 64

// HugeAtomicBitSet is a paged, atomically-updated bitset used for both
// label-membership storage (pkg/idmap) and Pregel's vote-to-halt bits
// (pkg/pregel), both of which are written concurrently from many partitions
// without a surrounding lock.
type HugeAtomicBitSet struct {
	words  []atomic.Uint64
	length int64
}

// NewHugeAtomicBitSet allocates a bitset of the given logical bit length,
// all bits initially clear.
func NewHugeAtomicBitSet(length int64) *HugeAtomicBitSet {
	nWords := (length + wordBits - 1) / wordBits
	if nWords == 0 {
		nWords = 1
	}
	return &HugeAtomicBitSet{words: make([]atomic.Uint64, nWords), length: length}
}

// Length returns the logical number of bits.
func (b *HugeAtomicBitSet) Length() int64 { return b.length }

func (b *HugeAtomicBitSet) locate(i int64) (word int64, mask uint64) {
	gdserrors.CheckIndex(i, b.length)
	return i / wordBits, 1 << uint(i%wordBits)
}

// Get returns the current value of bit i.
func (b *HugeAtomicBitSet) Get(i int64) bool {
	word, mask := b.locate(i)
	return b.words[word].Load()&mask != 0
}

// Set sets bit i via a CAS loop, retrying until its own write is visible.
func (b *HugeAtomicBitSet) Set(i int64) {
	word, mask := b.locate(i)
	w := &b.words[word]
	for {
		old := w.Load()
		if old&mask != 0 {
			return
		}
		if w.CompareAndSwap(old, old|mask) {
			return
		}
	}
}

// Clear clears bit i via a CAS loop.
func (b *HugeAtomicBitSet) Clear(i int64) {
	word, mask := b.locate(i)
	w := &b.words[word]
	for {
		old := w.Load()
		if old&mask == 0 {
			return
		}
		if w.CompareAndSwap(old, old&^mask) {
			return
		}
	}
}

// GetAndSet sets bit i and returns the bit's value immediately prior to the
// set, atomically.
func (b *HugeAtomicBitSet) GetAndSet(i int64) bool {
	word, mask := b.locate(i)
	w := &b.words[word]
	for {
		old := w.Load()
		if old&mask != 0 {
			return true
		}
		if w.CompareAndSwap(old, old|mask) {
			return false
		}
	}
}

// AllSet reports whether every bit in [0, Length()) is set. Used by the
// Pregel scheduler to detect the "all nodes halted" termination condition.
func (b *HugeAtomicBitSet) AllSet() bool {
	full := int64(b.length / wordBits)
	for w := int64(0); w < full; w++ {
		if b.words[w].Load() != ^uint64(0) {
			return false
		}
	}
	rem := b.length % wordBits
	if rem == 0 {
		return true
	}
	mask := uint64(1)<<uint(rem) - 1
	return b.words[full].Load()&mask == mask
}

// ClearAll resets every bit to zero.
func (b *HugeAtomicBitSet) ClearAll() {
	for i := range b.words {
		b.words[i].Store(0)
	}
}
