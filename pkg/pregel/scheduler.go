package pregel

import (
	"context"
	"sync/atomic"

	"github.com/gdscore/graphstore/pkg/collections"
	"github.com/gdscore/graphstore/pkg/concurrency"
	"github.com/gdscore/graphstore/pkg/graph"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var tracer trace.Tracer = otel.Tracer("github.com/gdscore/graphstore/pkg/pregel")

// InitFn initializes one node's state during superstep 0.
type InitFn func(*InitContext)

// ComputeFn runs one node's compute step for the current superstep.
type ComputeFn func(*ComputeContext, *MessageIterator)

// Config describes one Pregel-style computation, per spec.md §4.K.
type Config struct {
	Graph         *graph.Graph
	Concurrency   concurrency.Concurrency
	MaxIterations int
	Reducer       Reducer
	Init          InitFn
	Compute       ComputeFn
	Termination   *concurrency.TerminationFlag
}

// Run drives the superstep protocol to completion, returning the resulting
// NodeValues table. Termination conditions (spec.md §4.K step 4): no node
// sent a message this superstep, the iteration limit was reached, or every
// node's vote-to-halt bit is set.
func Run(ctx context.Context, cfg Config) (*NodeValues, error) {
	nodeCount := cfg.Graph.NodeCount()
	values := NewNodeValues(nodeCount)
	messenger := NewMessenger(nodeCount, cfg.Reducer)
	voteBits := collections.NewHugeAtomicBitSet(nodeCount)

	for iteration := 0; ; iteration++ {
		if cfg.MaxIterations > 0 && iteration >= cfg.MaxIterations {
			return values, nil
		}

		_, span := tracer.Start(ctx, "pregel.superstep", trace.WithAttributes(
			attribute.Int("iteration", iteration),
			attribute.Int("partitions", cfg.Concurrency.Value()),
		))

		var hasSent atomic.Bool
		err := concurrency.Run(nodeCount, cfg.Concurrency, cfg.Termination, func(p concurrency.Partition) error {
			runPartition(p, iteration, cfg, values, messenger, voteBits, &hasSent)
			return nil
		})
		span.End()
		if err != nil {
			return values, err
		}

		messenger.SwapBuffers()

		if !hasSent.Load() || voteBits.AllSet() {
			return values, nil
		}
	}
}

func runPartition(p concurrency.Partition, iteration int, cfg Config, values *NodeValues, messenger *Messenger, voteBits *collections.HugeAtomicBitSet, hasSent *atomic.Bool) {
	p.ForEach(func(v int64) {
		base := InitContext{nodeID: v, graph: cfg.Graph, values: values}
		if iteration == 0 && cfg.Init != nil {
			cfg.Init(&base)
		}

		messages := messenger.InitIterator(v)
		if messages.IsEmpty() && voteBits.Get(v) {
			return
		}
		voteBits.Clear(v)

		computeCtx := &ComputeContext{
			InitContext:   base,
			iteration:     iteration,
			messenger:     messenger,
			voteBits:      voteBits,
			globalHasSent: hasSent,
		}
		if cfg.Compute != nil {
			cfg.Compute(computeCtx, messages)
		}
	})
}
