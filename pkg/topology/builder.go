package topology

import "sort"

type rawEdge struct {
	source, target int64
	props          map[string]float64
}

// Builder assembles a Topology from (source, target[, properties]) records
// via the build pipeline spec.md §4.H describes: sort by source, fold
// duplicates under the configured Aggregation, compress, page.
type Builder struct {
	nodeCount   int64
	aggregation Aggregation
	edges       []rawEdge
}

// NewBuilder returns a Builder for a graph of nodeCount internal ids, using
// aggregation to fold parallel edges at Build time.
func NewBuilder(nodeCount int64, aggregation Aggregation) *Builder {
	return &Builder{nodeCount: nodeCount, aggregation: aggregation}
}

// AddEdge records one (source, target) record with optional property
// values, keyed by property name. Records need not be pre-sorted — Build
// sorts them.
func (b *Builder) AddEdge(source, target int64, props map[string]float64) {
	b.edges = append(b.edges, rawEdge{source: source, target: target, props: props})
}

// Build runs the pipeline and returns the resulting Topology.
func (b *Builder) Build() *Topology {
	edges := append([]rawEdge(nil), b.edges...)
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].source != edges[j].source {
			return edges[i].source < edges[j].source
		}
		return edges[i].target < edges[j].target
	})

	deduped := preAggregate(edges, b.aggregation)
	return buildFromSortedDedupedEdges(b.nodeCount, deduped, b.aggregation)
}

// preAggregate scans adjacent (source, target) duplicates in a
// source-then-target sorted list and folds them per aggregation, dropping
// every duplicate after the first (the "tombstone" of spec.md §4.H — this
// implementation drops tombstoned entries outright rather than keeping a
// sentinel in place, since the builder works over a plain Go slice rather
// than the final compressed byte stream).
func preAggregate(sorted []rawEdge, aggregation Aggregation) []rawEdge {
	if len(sorted) == 0 {
		return nil
	}
	out := make([]rawEdge, 0, len(sorted))
	i := 0
	for i < len(sorted) {
		cur := sorted[i]
		if aggregation == AggregationNone {
			out = append(out, cur)
			i++
			continue
		}
		j := i + 1
		merged := cloneProps(cur.props)
		count := 0
		for j < len(sorted) && sorted[j].source == cur.source && sorted[j].target == cur.target {
			for key, incoming := range sorted[j].props {
				merged[key] = aggregation.fold(merged[key], count, incoming)
			}
			count++
			j++
		}
		out = append(out, rawEdge{source: cur.source, target: cur.target, props: merged})
		i = j
	}
	return out
}

func cloneProps(props map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(props))
	for k, v := range props {
		out[k] = v
	}
	return out
}
