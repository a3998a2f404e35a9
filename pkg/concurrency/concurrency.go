// Package concurrency implements spec.md §4.D: a validated Concurrency
// value, half-open Partition ranges, a bounded worker pool (ParallelUtil),
// and a TerminationFlag consulted at partition boundaries. Every other
// component that runs work across goroutines (pkg/pregel's superstep
// scheduler) builds on this package
// rather than spawning goroutines directly, the same layering the teacher
// uses for its own background-flush and worker-pool code
// (pkg/storage/async_engine.go, pkg/gpu/kmeans.go).
package concurrency

import (
	"fmt"

	"github.com/gdscore/graphstore/pkg/gdserrors"
)

// MaxConcurrency is the upper bound spec.md §4.D places on a validated
// Concurrency value.
const MaxConcurrency = 100

// Concurrency is a validated wrapper over a worker count in [1, 100].
type Concurrency struct {
	value int
}

// New validates n and returns a Concurrency, or
// gdserrors.ErrInvalidConcurrency if n is outside [1, 100].
func New(n int) (Concurrency, error) {
	if n < 1 || n > MaxConcurrency {
		return Concurrency{}, fmt.Errorf("%w: got %d", gdserrors.ErrInvalidConcurrency, n)
	}
	return Concurrency{value: n}, nil
}

// Must is New but panics on an invalid n — for call sites constructing a
// Concurrency from a compile-time constant, where an error return would
// only ever be a programming bug.
func Must(n int) Concurrency {
	c, err := New(n)
	if err != nil {
		panic(err)
	}
	return c
}

// Value returns the validated worker count.
func (c Concurrency) Value() int { return c.value }
