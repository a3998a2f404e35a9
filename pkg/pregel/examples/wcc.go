package examples

import (
	"context"

	"github.com/gdscore/graphstore/pkg/concurrency"
	"github.com/gdscore/graphstore/pkg/graph"
	"github.com/gdscore/graphstore/pkg/pregel"
)

const labelKey = "label"

// WCCConfig configures the weakly-connected-components label propagation.
type WCCConfig struct {
	MaxIterations int
	Concurrency   concurrency.Concurrency
}

// WeaklyConnectedComponents labels every node with the smallest node id
// reachable from it, ignoring edge direction (hence "weakly" connected):
// every node sends its own id in the first superstep; afterwards each node
// propagates min(own label, received labels) to both its out-neighbors and
// in-neighbors, voting to halt whenever a superstep leaves its label
// unchanged. Unlike PageRank, nodes here do halt: any incoming message wakes
// a halted node, which halts again at once unless the message improves its
// label, so a converged component goes quiet well before MaxIterations.
func WeaklyConnectedComponents(ctx context.Context, g *graph.Graph, cfg WCCConfig) ([]int64, error) {
	values, err := pregel.Run(ctx, pregel.Config{
		Graph:         g,
		Concurrency:   cfg.Concurrency,
		MaxIterations: cfg.MaxIterations,
		Reducer:       pregel.ReduceMin,
		Init: func(ic *pregel.InitContext) {
			ic.SetLong(labelKey, ic.NodeID())
		},
		Compute: func(cc *pregel.ComputeContext, messages *pregel.MessageIterator) {
			if cc.IsInitialSuperstep() {
				sendLabel(cc, cc.GetLong(labelKey))
				return
			}

			best := cc.GetLong(labelKey)
			changed := false
			for messages.Next() {
				candidate := int64(messages.Value())
				if candidate < best {
					best = candidate
					changed = true
				}
			}
			if changed {
				cc.SetLong(labelKey, best)
				sendLabel(cc, best)
			} else {
				cc.VoteToHalt()
			}
		},
	})
	if err != nil {
		return nil, err
	}

	n := g.NodeCount()
	labels := make([]int64, n)
	for v := int64(0); v < n; v++ {
		labels[v] = values.GetLong(labelKey, v)
	}
	return labels, nil
}

func sendLabel(cc *pregel.ComputeContext, label int64) {
	cc.SendToNeighbors(float64(label))
	cur := cc.Graph().StreamInverseRelationships(cc.NodeID(), 0)
	for cur.Next() {
		cc.SendTo(cur.Target(), float64(label))
	}
}
