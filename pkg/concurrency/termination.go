package concurrency

import "sync/atomic"

// TerminationFlag is a shared, atomically-set cancellation signal consulted
// at partition boundaries. Setting it causes in-flight ParallelUtil calls to
// let already-started partitions finish, then return gdserrors.ErrCancelled
// instead of scheduling any more.
type TerminationFlag struct {
	terminated atomic.Bool
}

// NewTerminationFlag returns a flag that has not been terminated.
func NewTerminationFlag() *TerminationFlag { return &TerminationFlag{} }

// Terminate sets the flag. Safe to call from any goroutine, any number of
// times.
func (f *TerminationFlag) Terminate() { f.terminated.Store(true) }

// IsTerminated reports the current state of the flag.
func (f *TerminationFlag) IsTerminated() bool { return f.terminated.Load() }
