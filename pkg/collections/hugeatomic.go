package collections

import (
	"math"
	"sync/atomic"

	"github.com/gdscore/graphstore/pkg/gdserrors"
)

// HugeAtomicLongArray is a paged array of per-slot atomic int64s, used for
// shared mutable state written concurrently from many partitions (e.g. a
// Pregel computation's per-node scalar when multiple neighbors fold into the
// same target without going through the Messenger).
type HugeAtomicLongArray struct {
	pages  [][]atomic.Int64
	length int64
}

// NewHugeAtomicLongArray allocates a zero-filled atomic array of the given
// length.
func NewHugeAtomicLongArray(length int64) *HugeAtomicLongArray {
	a := &HugeAtomicLongArray{length: length}
	n := numPages(length)
	a.pages = make([][]atomic.Int64, n)
	for p := int64(0); p < n; p++ {
		a.pages[p] = make([]atomic.Int64, PageSize)
	}
	return a
}

// Length returns the logical length of the array.
func (a *HugeAtomicLongArray) Length() int64 { return a.length }

func (a *HugeAtomicLongArray) cell(i int64) *atomic.Int64 {
	gdserrors.CheckIndex(i, a.length)
	return &a.pages[pageIndex(i)][pageOffset(i)]
}

// Get atomically loads the value at i.
func (a *HugeAtomicLongArray) Get(i int64) int64 { return a.cell(i).Load() }

// Set atomically stores v at i.
func (a *HugeAtomicLongArray) Set(i int64, v int64) { a.cell(i).Store(v) }

// CompareAndSwap performs a single-word CAS at i.
func (a *HugeAtomicLongArray) CompareAndSwap(i int64, old, newV int64) bool {
	return a.cell(i).CompareAndSwap(old, newV)
}

// Add atomically adds delta to the value at i and returns the new value.
func (a *HugeAtomicLongArray) Add(i int64, delta int64) int64 {
	return a.cell(i).Add(delta)
}

// HugeAtomicDoubleArray is the float64 analogue of HugeAtomicLongArray,
// implemented as spec.md §4.A prescribes: a bit-cast over a u64 atomic cell.
type HugeAtomicDoubleArray struct {
	bits *HugeAtomicLongArray
}

// NewHugeAtomicDoubleArray allocates a zero-filled atomic double array.
func NewHugeAtomicDoubleArray(length int64) *HugeAtomicDoubleArray {
	return &HugeAtomicDoubleArray{bits: NewHugeAtomicLongArray(length)}
}

// Length returns the logical length of the array.
func (a *HugeAtomicDoubleArray) Length() int64 { return a.bits.Length() }

// Get atomically loads the value at i.
func (a *HugeAtomicDoubleArray) Get(i int64) float64 {
	return math.Float64frombits(uint64(a.bits.Get(i)))
}

// Set atomically stores v at i.
func (a *HugeAtomicDoubleArray) Set(i int64, v float64) {
	a.bits.Set(i, int64(math.Float64bits(v)))
}

// CompareAndSwap performs a bit-cast CAS at i.
func (a *HugeAtomicDoubleArray) CompareAndSwap(i int64, old, newV float64) bool {
	return a.bits.CompareAndSwap(i, int64(math.Float64bits(old)), int64(math.Float64bits(newV)))
}
