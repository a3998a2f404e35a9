package pregel

import (
	"sync/atomic"

	"github.com/gdscore/graphstore/pkg/collections"
	"github.com/gdscore/graphstore/pkg/graph"
)

// InitContext is bound to one node during the first superstep (iteration
// 0), per spec.md §4.K.
type InitContext struct {
	nodeID int64
	graph  *graph.Graph
	values *NodeValues
}

// NodeID returns the node this context is bound to.
func (c *InitContext) NodeID() int64 { return c.nodeID }

// Graph returns the immutable graph view the computation runs over.
func (c *InitContext) Graph() *graph.Graph { return c.graph }

// SetDouble writes val under key for this context's node.
func (c *InitContext) SetDouble(key string, val float64) { c.values.SetDouble(key, c.nodeID, val) }

// SetLong writes val under key for this context's node.
func (c *InitContext) SetLong(key string, val int64) { c.values.SetLong(key, c.nodeID, val) }

// GetDouble reads key for this context's node.
func (c *InitContext) GetDouble(key string) float64 { return c.values.GetDouble(key, c.nodeID) }

// GetLong reads key for this context's node.
func (c *InitContext) GetLong(key string) int64 { return c.values.GetLong(key, c.nodeID) }

// ComputeContext extends InitContext with message sending and
// vote-to-halt, per spec.md §4.K.
type ComputeContext struct {
	InitContext
	iteration     int
	messenger     *Messenger
	voteBits      *collections.HugeAtomicBitSet
	sentThisNode  bool
	globalHasSent *atomic.Bool
}

// Iteration returns the current superstep number, starting at 0.
func (c *ComputeContext) Iteration() int { return c.iteration }

// IsInitialSuperstep reports whether this is superstep 0.
func (c *ComputeContext) IsInitialSuperstep() bool { return c.iteration == 0 }

// SendTo enqueues msg for delivery to target in the next superstep.
func (c *ComputeContext) SendTo(target int64, msg float64) {
	c.messenger.Send(target, msg)
	c.sentThisNode = true
	c.globalHasSent.Store(true)
}

// SendToNeighbors enqueues msg for every outgoing neighbor of this
// context's node, per spec.md §4.K ("enumerate neighbors via
// graph.stream_relationships and enqueue via messenger").
func (c *ComputeContext) SendToNeighbors(msg float64) {
	cur := c.graph.StreamRelationships(c.nodeID, 0)
	for cur.Next() {
		c.SendTo(cur.Target(), msg)
	}
}

// VoteToHalt marks this node halted: it will be skipped in future
// supersteps unless it receives a message.
func (c *ComputeContext) VoteToHalt() { c.voteBits.Set(c.nodeID) }

// HasSentMessage reports whether this node has sent any message during the
// current superstep.
func (c *ComputeContext) HasSentMessage() bool { return c.sentThisNode }
