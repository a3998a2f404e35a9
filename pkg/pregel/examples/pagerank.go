// Package examples bundles reference Computation implementations built
// purely from pkg/pregel's public contract, so the BSP scheduler gets
// algorithmic exercise without pkg/pregel itself depending on any
// particular algorithm — algorithm implementations are otherwise out of
// scope for this module.
package examples

import (
	"context"

	"github.com/gdscore/graphstore/pkg/concurrency"
	"github.com/gdscore/graphstore/pkg/graph"
	"github.com/gdscore/graphstore/pkg/pregel"
)

const rankKey = "rank"

// PageRankConfig configures the damped power-iteration.
type PageRankConfig struct {
	DampingFactor float64
	MaxIterations int
	Concurrency   concurrency.Concurrency
}

// PageRank runs standard PageRank over g and returns the converged rank for
// every node, addressed by internal id. It never votes to halt — every
// active node re-sends its contribution every non-initial superstep, so the
// scheduler runs for exactly cfg.MaxIterations supersteps (spec.md Scenario
// 5), the classic "run K power-iteration steps" usage rather than an
// early-converging one.
func PageRank(ctx context.Context, g *graph.Graph, cfg PageRankConfig) ([]float64, error) {
	n := g.NodeCount()
	damping := cfg.DampingFactor

	values, err := pregel.Run(ctx, pregel.Config{
		Graph:         g,
		Concurrency:   cfg.Concurrency,
		MaxIterations: cfg.MaxIterations,
		Reducer:       pregel.ReduceSum,
		Init: func(ic *pregel.InitContext) {
			ic.SetDouble(rankKey, 1.0/float64(n))
		},
		Compute: func(cc *pregel.ComputeContext, messages *pregel.MessageIterator) {
			degree := cc.Graph().Degree(cc.NodeID())

			if cc.IsInitialSuperstep() {
				if degree > 0 {
					cc.SendToNeighbors(cc.GetDouble(rankKey) / float64(degree))
				}
				return
			}

			sum := 0.0
			for messages.Next() {
				sum += messages.Value()
			}
			rank := (1-damping)/float64(n) + damping*sum
			cc.SetDouble(rankKey, rank)
			if degree > 0 {
				cc.SendToNeighbors(rank / float64(degree))
			}
		},
	})
	if err != nil {
		return nil, err
	}

	ranks := make([]float64, n)
	for v := int64(0); v < n; v++ {
		ranks[v] = values.GetDouble(rankKey, v)
	}
	return ranks, nil
}
