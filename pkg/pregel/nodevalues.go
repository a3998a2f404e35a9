// Package pregel implements spec.md §4.K: the vertex-centric BSP compute
// step used by bundled algorithms (pkg/pregel/examples) and any caller's own
// Pregel-style computation.
package pregel

import (
	"sync"

	"github.com/gdscore/graphstore/pkg/collections"
)

// NodeValues is the per-node scalar state table spec.md §4.K describes:
// reader-writer protected only at the key-registration boundary — once a
// key's backing array exists, per-node reads/writes need no lock, since the
// superstep scheduler guarantees one partition owns a given node's writes
// within a superstep (spec.md §5's ordering guarantees).
type NodeValues struct {
	mu        sync.RWMutex
	nodeCount int64
	doubles   map[string]*collections.HugeDoubleArray
	longs     map[string]*collections.HugeLongArray
}

// NewNodeValues returns an empty table sized for nodeCount nodes.
func NewNodeValues(nodeCount int64) *NodeValues {
	return &NodeValues{
		nodeCount: nodeCount,
		doubles:   make(map[string]*collections.HugeDoubleArray),
		longs:     make(map[string]*collections.HugeLongArray),
	}
}

// DeclareDouble registers key as a double-valued column, filled with
// initial. Idempotent: re-declaring an existing key is a no-op.
func (n *NodeValues) DeclareDouble(key string, initial float64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if _, ok := n.doubles[key]; ok {
		return
	}
	arr := collections.NewHugeDoubleArray(n.nodeCount)
	arr.Fill(initial)
	n.doubles[key] = arr
}

// DeclareLong registers key as a long-valued column, filled with initial.
func (n *NodeValues) DeclareLong(key string, initial int64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if _, ok := n.longs[key]; ok {
		return
	}
	arr := collections.NewHugeLongArray(n.nodeCount)
	arr.Fill(initial)
	n.longs[key] = arr
}

// doubleArray returns key's array, declaring it zero-filled on first use.
func (n *NodeValues) doubleArray(key string) *collections.HugeDoubleArray {
	n.mu.RLock()
	arr := n.doubles[key]
	n.mu.RUnlock()
	if arr == nil {
		n.DeclareDouble(key, 0)
		return n.doubleArray(key)
	}
	return arr
}

// longArray returns key's array, declaring it zero-filled on first use.
func (n *NodeValues) longArray(key string) *collections.HugeLongArray {
	n.mu.RLock()
	arr := n.longs[key]
	n.mu.RUnlock()
	if arr == nil {
		n.DeclareLong(key, 0)
		return n.longArray(key)
	}
	return arr
}

// GetDouble returns key's current value at node v.
func (n *NodeValues) GetDouble(key string, v int64) float64 { return n.doubleArray(key).Get(v) }

// SetDouble stores val under key at node v.
func (n *NodeValues) SetDouble(key string, v int64, val float64) { n.doubleArray(key).Set(v, val) }

// GetLong returns key's current value at node v.
func (n *NodeValues) GetLong(key string, v int64) int64 { return n.longArray(key).Get(v) }

// SetLong stores val under key at node v.
func (n *NodeValues) SetLong(key string, v int64, val int64) { n.longArray(key).Set(v, val) }
