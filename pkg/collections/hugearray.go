// Package collections provides paged arrays sized beyond what a native Go
// slice can comfortably address for graph-scale workloads: billions of
// elements laid out as fixed-size pages so that allocation, zeroing, and
// memory estimation stay predictable and bounded per page.
//
// This mirrors the teacher's own paged-buffer style in pkg/pool (pre-sized
// reusable buffers to keep the allocator off the hot path), generalized
// here to an arbitrarily large logical index space.
package collections

import "github.com/gdscore/graphstore/pkg/gdserrors"

// PageShift, PageSize and MaxLength size the paging scheme for every huge
// array variant in this package. PageSize must stay a power of two so that
// the page/offset split is a shift and a mask.
const (
	PageShift = 14
	PageSize  = 1 << PageShift
	pageMask  = PageSize - 1
	MaxLength = 1 << 28
)

func pageIndex(i int64) int64  { return i >> PageShift }
func pageOffset(i int64) int64 { return i & pageMask }

func numPages(length int64) int64 {
	if length == 0 {
		return 0
	}
	return (length + PageSize - 1) / PageSize
}

// HugeLongArray is a paged array of int64, addressable by an int64 index far
// beyond what a single Go slice could hold contiguously without extreme
// allocator pressure.
type HugeLongArray struct {
	pages  [][]int64
	length int64
}

// NewHugeLongArray allocates a zero-filled array of the given length.
func NewHugeLongArray(length int64) *HugeLongArray {
	a := &HugeLongArray{length: length}
	n := numPages(length)
	a.pages = make([][]int64, n)
	for p := int64(0); p < n; p++ {
		a.pages[p] = make([]int64, PageSize)
	}
	return a
}

// Length returns the logical length of the array.
func (a *HugeLongArray) Length() int64 { return a.length }

// Get returns the value at i. Panics with gdserrors.IndexOutOfBoundsPanic if
// i is outside [0, Length()) — an out-of-range index here is a programming
// bug, not a user-facing error (the caller should have validated via IdMap).
func (a *HugeLongArray) Get(i int64) int64 {
	gdserrors.CheckIndex(i, a.length)
	return a.pages[pageIndex(i)][pageOffset(i)]
}

// Set stores v at i.
func (a *HugeLongArray) Set(i int64, v int64) {
	gdserrors.CheckIndex(i, a.length)
	a.pages[pageIndex(i)][pageOffset(i)] = v
}

// Fill sets every element to v.
func (a *HugeLongArray) Fill(v int64) {
	for _, page := range a.pages {
		for i := range page {
			page[i] = v
		}
	}
}

// ForEach calls fn(i, value) for every index in ascending order.
func (a *HugeLongArray) ForEach(fn func(i int64, v int64)) {
	idx := int64(0)
	for _, page := range a.pages {
		for _, v := range page {
			if idx >= a.length {
				return
			}
			fn(idx, v)
			idx++
		}
	}
}

// MemoryEstimateBytes returns ceil(n/PageSize)*PageSize*sizeof(int64) plus a
// fixed per-page slice-header overhead, matching spec.md §4.A's contract.
func (a *HugeLongArray) MemoryEstimateBytes() int64 {
	return EstimateHugeArrayBytes(a.length, 8)
}

// HugeDoubleArray is the float64 analogue of HugeLongArray.
type HugeDoubleArray struct {
	pages  [][]float64
	length int64
}

// NewHugeDoubleArray allocates a zero-filled array of the given length.
func NewHugeDoubleArray(length int64) *HugeDoubleArray {
	a := &HugeDoubleArray{length: length}
	n := numPages(length)
	a.pages = make([][]float64, n)
	for p := int64(0); p < n; p++ {
		a.pages[p] = make([]float64, PageSize)
	}
	return a
}

// Length returns the logical length of the array.
func (a *HugeDoubleArray) Length() int64 { return a.length }

// Get returns the value at i.
func (a *HugeDoubleArray) Get(i int64) float64 {
	gdserrors.CheckIndex(i, a.length)
	return a.pages[pageIndex(i)][pageOffset(i)]
}

// Set stores v at i.
func (a *HugeDoubleArray) Set(i int64, v float64) {
	gdserrors.CheckIndex(i, a.length)
	a.pages[pageIndex(i)][pageOffset(i)] = v
}

// Fill sets every element to v.
func (a *HugeDoubleArray) Fill(v float64) {
	for _, page := range a.pages {
		for i := range page {
			page[i] = v
		}
	}
}

// ForEach calls fn(i, value) for every index in ascending order.
func (a *HugeDoubleArray) ForEach(fn func(i int64, v float64)) {
	idx := int64(0)
	for _, page := range a.pages {
		for _, v := range page {
			if idx >= a.length {
				return
			}
			fn(idx, v)
			idx++
		}
	}
}

// MemoryEstimateBytes returns the paged estimate for a float64 element.
func (a *HugeDoubleArray) MemoryEstimateBytes() int64 {
	return EstimateHugeArrayBytes(a.length, 8)
}

// pageHeaderOverheadBytes approximates the bookkeeping cost of one page
// (slice header + allocator rounding), kept as a named constant so the
// estimate in EstimateHugeArrayBytes is self-documenting.
const pageHeaderOverheadBytes = 24

// EstimateHugeArrayBytes implements spec.md §4.A's memory contract:
// ceil(n/PageSize)*PageSize*sizeOf plus a fixed per-page header overhead.
func EstimateHugeArrayBytes(length int64, sizeOf int64) int64 {
	pages := numPages(length)
	return pages*PageSize*sizeOf + pages*pageHeaderOverheadBytes
}
