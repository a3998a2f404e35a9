// Package atomicx provides lock-free accumulators for graph algorithm
// reductions: a bit-cast AtomicDouble, CAS-loop AtomicMax/AtomicMin, and
// striped DoubleAdder/LongAdder accumulators that trade exact incremental
// consistency for low contention under many concurrent writers — the same
// trade-off the teacher makes with atomic.Bool feature flags
// (pkg/config/feature_flags.go) and atomic counters
// (pkg/cache/query_cache.go), generalized here to floating point and to
// striped, cache-padded cells.
package atomicx

import (
	"math"
	"sync/atomic"
)

// AtomicDouble stores a float64 as bit-cast uint64 atomic storage, matching
// spec.md §4.B: every operation performs the equivalent uint64 atomic
// operation around a Float64bits/Float64frombits conversion.
type AtomicDouble struct {
	bits atomic.Uint64
}

// NewAtomicDouble returns an AtomicDouble initialized to v.
func NewAtomicDouble(v float64) *AtomicDouble {
	a := &AtomicDouble{}
	a.bits.Store(math.Float64bits(v))
	return a
}

// Load returns the current value.
func (a *AtomicDouble) Load() float64 { return math.Float64frombits(a.bits.Load()) }

// Store sets the value unconditionally.
func (a *AtomicDouble) Store(v float64) { a.bits.Store(math.Float64bits(v)) }

// Swap stores v and returns the previous value.
func (a *AtomicDouble) Swap(v float64) float64 {
	return math.Float64frombits(a.bits.Swap(math.Float64bits(v)))
}

// CompareAndSwap performs a bit-cast CAS and reports whether it succeeded.
func (a *AtomicDouble) CompareAndSwap(old, newV float64) bool {
	return a.bits.CompareAndSwap(math.Float64bits(old), math.Float64bits(newV))
}
