package collections

import (
	"sync"
	"testing"

	"github.com/gdscore/graphstore/pkg/gdserrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHugeLongArraySpansMultiplePages(t *testing.T) {
	n := int64(PageSize*2 + 5)
	a := NewHugeLongArray(n)
	for i := int64(0); i < n; i++ {
		a.Set(i, i*3)
	}
	for i := int64(0); i < n; i++ {
		assert.Equal(t, i*3, a.Get(i))
	}
}

func TestHugeLongArrayOutOfBoundsPanics(t *testing.T) {
	a := NewHugeLongArray(10)
	require.Panics(t, func() { a.Get(10) })
	require.Panics(t, func() { a.Set(-1, 0) })

	defer func() {
		r := recover()
		require.NotNil(t, r)
		_, ok := r.(gdserrors.IndexOutOfBoundsPanic)
		assert.True(t, ok)
	}()
	a.Get(999)
}

func TestHugeLongArrayFillAndForEach(t *testing.T) {
	a := NewHugeLongArray(100)
	a.Fill(7)
	count := 0
	a.ForEach(func(i int64, v int64) {
		assert.Equal(t, int64(7), v)
		count++
	})
	assert.Equal(t, 100, count)
}

func TestHugeDoubleArrayBasic(t *testing.T) {
	a := NewHugeDoubleArray(PageSize + 1)
	a.Set(PageSize, 3.14)
	assert.InDelta(t, 3.14, a.Get(PageSize), 1e-9)
}

func TestMemoryEstimateBytesMatchesContract(t *testing.T) {
	a := NewHugeLongArray(PageSize + 1)
	got := a.MemoryEstimateBytes()
	wantPages := int64(2)
	want := wantPages*PageSize*8 + wantPages*pageHeaderOverheadBytes
	assert.Equal(t, want, got)
}

func TestHugeAtomicLongArrayConcurrentAdd(t *testing.T) {
	a := NewHugeAtomicLongArray(4)
	var wg sync.WaitGroup
	const goroutines = 16
	const perGoroutine = 10_000
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				a.Add(2, 1)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int64(goroutines*perGoroutine), a.Get(2))
}

func TestHugeAtomicDoubleArrayBitCastRoundTrip(t *testing.T) {
	a := NewHugeAtomicDoubleArray(1)
	a.Set(0, 1.5)
	assert.InDelta(t, 1.5, a.Get(0), 1e-9)
	ok := a.CompareAndSwap(0, 1.5, 2.5)
	assert.True(t, ok)
	assert.InDelta(t, 2.5, a.Get(0), 1e-9)
}
