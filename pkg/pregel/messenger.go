package pregel

import (
	"math"

	"github.com/gdscore/graphstore/pkg/atomicx"
	"github.com/gdscore/graphstore/pkg/collections"
)

// Reducer controls how multiple messages sent to the same target within one
// superstep fold into the single value its MessageIterator yields, per
// spec.md §4.K's "a reducer (sum/min/max) may be applied by the Messenger to
// fold messages before delivery."
type Reducer int

const (
	ReduceSum Reducer = iota
	ReduceMax
	ReduceMin
)

func (r Reducer) neutral() float64 {
	switch r {
	case ReduceMax:
		return math.Inf(-1)
	case ReduceMin:
		return math.Inf(1)
	default:
		return 0
	}
}

func (r Reducer) combine(cell *atomicx.AtomicDouble, incoming float64) {
	for {
		current := cell.Load()
		var next float64
		switch r {
		case ReduceMax:
			if incoming <= current {
				return
			}
			next = incoming
		case ReduceMin:
			if incoming >= current {
				return
			}
			next = incoming
		default:
			next = current + incoming
		}
		if cell.CompareAndSwap(current, next) {
			return
		}
	}
}

// messageBuffer holds one superstep's worth of reduced per-target messages:
// one AtomicDouble cell per node plus a bitset recording which nodes
// actually received a message (distinguishing "no message" from "message
// value is the reducer's neutral element").
type messageBuffer struct {
	cells []atomicx.AtomicDouble
	has   *collections.HugeAtomicBitSet
}

func newMessageBuffer(nodeCount int64, reducer Reducer) *messageBuffer {
	cells := make([]atomicx.AtomicDouble, nodeCount)
	neutral := reducer.neutral()
	for i := range cells {
		cells[i].Store(neutral)
	}
	return &messageBuffer{cells: cells, has: collections.NewHugeAtomicBitSet(nodeCount)}
}

func (b *messageBuffer) reset(reducer Reducer) {
	neutral := reducer.neutral()
	for i := range b.cells {
		b.cells[i].Store(neutral)
	}
	b.has.ClearAll()
}

// Messenger is spec.md §4.K's message-passing abstraction: strict BSP
// double-buffering where Send writes into the "next" buffer and
// InitIterator reads from the "current" (previous superstep's) buffer.
type Messenger struct {
	reducer       Reducer
	current, next *messageBuffer
}

// NewMessenger returns an empty Messenger for a graph of nodeCount nodes.
func NewMessenger(nodeCount int64, reducer Reducer) *Messenger {
	return &Messenger{
		reducer: reducer,
		current: newMessageBuffer(nodeCount, reducer),
		next:    newMessageBuffer(nodeCount, reducer),
	}
}

// Send folds msg into target's entry in the "next" buffer via the
// configured Reducer.
func (m *Messenger) Send(target int64, msg float64) {
	m.reducer.combine(&m.next.cells[target], msg)
	m.next.has.Set(target)
}

// InitIterator returns the MessageIterator for target, drawn from the
// buffer finalized by the last SwapBuffers call. The scheduler calls this
// exactly once per node per superstep, per spec.md §4.K.
func (m *Messenger) InitIterator(target int64) *MessageIterator {
	if !m.current.has.Get(target) {
		return &MessageIterator{}
	}
	return &MessageIterator{ok: true, value: m.current.cells[target].Load()}
}

// SwapBuffers finalizes this superstep's sent messages as the next
// superstep's readable buffer, and clears the new write buffer for reuse.
func (m *Messenger) SwapBuffers() {
	m.current, m.next = m.next, m.current
	m.next.reset(m.reducer)
}

// MessageIterator yields the (already-reduced) message delivered to one
// node in one superstep — at most one value, since Messenger folds
// duplicates via its Reducer before delivery.
type MessageIterator struct {
	ok       bool
	value    float64
	consumed bool
}

// Next reports whether there is a message left to read (true at most once).
func (it *MessageIterator) Next() bool {
	if !it.ok || it.consumed {
		return false
	}
	it.consumed = true
	return true
}

// Value returns the current message. Only valid immediately after Next
// returned true.
func (it *MessageIterator) Value() float64 { return it.value }

// IsEmpty reports whether this node received no message this superstep,
// per spec.md §4.K step 2.c's halt-skip check.
func (it *MessageIterator) IsEmpty() bool { return !it.ok }
