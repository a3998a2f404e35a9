package atomicx

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAtomicDoubleLoadStoreSwapCAS(t *testing.T) {
	d := NewAtomicDouble(1.0)
	assert.InDelta(t, 1.0, d.Load(), 1e-9)
	d.Store(2.0)
	assert.InDelta(t, 2.0, d.Load(), 1e-9)
	prev := d.Swap(3.0)
	assert.InDelta(t, 2.0, prev, 1e-9)
	ok := d.CompareAndSwap(3.0, 4.0)
	assert.True(t, ok)
	assert.InDelta(t, 4.0, d.Load(), 1e-9)
	ok = d.CompareAndSwap(3.0, 5.0)
	assert.False(t, ok)
}

func TestAtomicMaxMonotoneUnderConcurrency(t *testing.T) {
	m := NewAtomicMax(math.MinInt64)
	var wg sync.WaitGroup
	values := []int64{5, 17, 3, 42, 9, -1, 100}
	for _, v := range values {
		wg.Add(1)
		go func(v int64) {
			defer wg.Done()
			m.Update(v)
		}(v)
	}
	wg.Wait()
	assert.Equal(t, int64(100), m.Get())
}

func TestAtomicMinMonotoneUnderConcurrency(t *testing.T) {
	m := NewAtomicMin(math.MaxInt64)
	var wg sync.WaitGroup
	values := []int64{5, 17, 3, 42, 9, -1, 100}
	for _, v := range values {
		wg.Add(1)
		go func(v int64) {
			defer wg.Done()
			m.Update(v)
		}(v)
	}
	wg.Wait()
	assert.Equal(t, int64(-1), m.Get())
}

func TestLongAdderExactUnderContention(t *testing.T) {
	a := NewLongAdder()
	const goroutines = 8
	const perGoroutine = 100_000
	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				a.Add(1)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int64(goroutines*perGoroutine), a.Sum())

	a.Reset()
	assert.Equal(t, int64(0), a.Sum())
}

func TestDoubleAdderWithinEpsilonUnderContention(t *testing.T) {
	a := NewDoubleAdder()
	const goroutines = 8
	const perGoroutine = 50_000
	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				a.Add(1.0)
			}
		}()
	}
	wg.Wait()
	want := float64(goroutines * perGoroutine)
	assert.InDelta(t, want, a.Sum(), 1e-6)
}
