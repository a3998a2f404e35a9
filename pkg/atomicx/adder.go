package atomicx

import (
	"fmt"
	"math"
	"sync"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
)

// NumCells is the number of cache-padded striped accumulator cells, matching
// spec.md §4.B. Spreading concurrent writers across this many independent
// cells trades exact running-total consistency (sum() is a snapshot, not a
// linearizable read) for far lower CAS contention than a single shared
// atomic under many concurrent goroutines.
const NumCells = 64

// paddedCell pads a single atomic cell out to a full cache line (64 bytes on
// essentially every target this module runs on) so that adjacent cells never
// false-share.
type paddedCell struct {
	value atomic.Uint64
	_     [56]byte // 8 (value) + 56 = 64
}

// probeToken approximates Java's per-thread striping probe. Go has no public
// goroutine-identity API, so this pool-cached token stands in for one: a
// sync.Pool's per-P private cache tends to hand the same token back to the
// same goroutine across calls, which is all the striping scheme needs —
// it only has to *spread* writers across cells, not identify them exactly.
type probeToken struct {
	cell uint32
}

var probePool = sync.Pool{
	New: func() any {
		t := &probeToken{}
		// Seed from this token's own heap address: unique per allocation,
		// cheap, and only evaluated when the pool is empty.
		t.cell = uint32(xxhash.Sum64String(fmt.Sprintf("%p", t)))
		return t
	},
}

func pickCell() uint32 {
	tok := probePool.Get().(*probeToken)
	cell := tok.cell
	probePool.Put(tok)
	return cell % NumCells
}

// LongAdder is a striped int64 accumulator: add() is lock-free (a CAS retry
// loop against one of NumCells cells), and sum() folds every cell with a
// relaxed load. Per spec.md §4.B, sum() is not atomic with concurrent adders
// — it is a best-effort snapshot, which is the accepted trade-off for
// once-per-superstep algorithmic reductions.
type LongAdder struct {
	cells [NumCells]paddedCell
}

// NewLongAdder returns a zeroed LongAdder.
func NewLongAdder() *LongAdder { return &LongAdder{} }

// Add folds delta into one striped cell.
func (a *LongAdder) Add(delta int64) {
	cell := &a.cells[pickCell()].value
	for {
		old := cell.Load()
		newV := uint64(int64(old) + delta)
		if cell.CompareAndSwap(old, newV) {
			return
		}
	}
}

// Sum returns the sum of every cell as of this call.
func (a *LongAdder) Sum() int64 {
	var total int64
	for i := range a.cells {
		total += int64(a.cells[i].value.Load())
	}
	return total
}

// Reset zeroes every cell.
func (a *LongAdder) Reset() {
	for i := range a.cells {
		a.cells[i].value.Store(0)
	}
}

// DoubleAdder is the float64 analogue of LongAdder: each cell stores a
// bit-cast float64, CAS-looped the same way AtomicDouble does.
type DoubleAdder struct {
	cells [NumCells]paddedCell
}

// NewDoubleAdder returns a zeroed DoubleAdder.
func NewDoubleAdder() *DoubleAdder { return &DoubleAdder{} }

// Add folds delta into one striped cell.
func (a *DoubleAdder) Add(delta float64) {
	cell := &a.cells[pickCell()].value
	for {
		old := cell.Load()
		newV := math.Float64bits(math.Float64frombits(old) + delta)
		if cell.CompareAndSwap(old, newV) {
			return
		}
	}
}

// Sum returns the sum of every cell as of this call.
func (a *DoubleAdder) Sum() float64 {
	var total float64
	for i := range a.cells {
		total += math.Float64frombits(a.cells[i].value.Load())
	}
	return total
}

// Reset zeroes every cell.
func (a *DoubleAdder) Reset() {
	for i := range a.cells {
		a.cells[i].value.Store(0)
	}
}
