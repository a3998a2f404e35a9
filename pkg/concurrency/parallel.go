package concurrency

import (
	"sync"

	"github.com/gdscore/graphstore/pkg/gdserrors"
)

// Run splits [0, n) into concurrency.Value() partitions, runs fn once per
// partition on its own goroutine, and joins all of them before returning —
// spec.md §4.D's ParallelUtil. If flag is non-nil and already terminated
// before a given partition would be scheduled, that partition (and every
// later one) is skipped; partitions already in flight are always allowed to
// finish. Worker errors are collected and the first one is returned after
// every partition has joined; absent any worker error, a termination seen
// at any checkpoint is reported as gdserrors.ErrCancelled.
func Run(n int64, c Concurrency, flag *TerminationFlag, fn func(Partition) error) error {
	partitions := Partitions(n, c)
	if len(partitions) == 0 {
		return nil
	}

	errs := make([]error, len(partitions))
	var wg sync.WaitGroup
	sawTermination := false

	for i, p := range partitions {
		if flag != nil && flag.IsTerminated() {
			sawTermination = true
			break
		}
		wg.Add(1)
		go func(i int, p Partition) {
			defer wg.Done()
			errs[i] = fn(p)
		}(i, p)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	if sawTermination || (flag != nil && flag.IsTerminated()) {
		return gdserrors.ErrCancelled
	}
	return nil
}

// RunEach is a convenience wrapper for callers that only need a
// side-effecting closure with no per-partition error, e.g. a read-only scan.
func RunEach(n int64, c Concurrency, fn func(Partition)) {
	_ = Run(n, c, nil, func(p Partition) error {
		fn(p)
		return nil
	})
}
