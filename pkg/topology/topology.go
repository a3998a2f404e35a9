package topology

import (
	"sort"

	"github.com/gdscore/graphstore/pkg/collections"
	"github.com/gdscore/graphstore/pkg/pool"
	"github.com/gdscore/graphstore/pkg/values"
)

// Topology is spec.md §4.H's compressed adjacency structure: a degree array,
// delta+varlong compressed neighbor lists paged by contiguous source-id
// ranges, and a set of edge-ordinal-addressed property columns. Ordinals are
// assigned densely in (source asc, target asc) emission order during Build,
// so lookups in a column returned by Property are a single indexed read.
type Topology struct {
	nodeCount         int64
	relationshipCount int64
	aggregation       Aggregation

	degree       *collections.HugeLongArray
	ordinalStart *collections.HugeLongArray
	pageOfSource *collections.HugeLongArray
	byteOffset   *collections.HugeLongArray
	pages        [][]byte

	properties map[string]values.Column

	// edges retains the deduplicated, (source,target)-sorted edge list so an
	// inverse Topology can be derived from it on demand.
	edges []rawEdge

	inverse *Topology
}

// NodeCount returns the number of nodes this topology is addressed over.
func (t *Topology) NodeCount() int64 { return t.nodeCount }

// RelationshipCount returns the number of edges surviving aggregation.
func (t *Topology) RelationshipCount() int64 { return t.relationshipCount }

// Aggregation returns the merge policy this topology was built with.
func (t *Topology) Aggregation() Aggregation { return t.aggregation }

// Degree returns the out-degree of source, i.e. the number of entries a
// Stream from source will yield.
func (t *Topology) Degree(source int64) int64 {
	return t.degree.Get(source)
}

// Property returns the column bound to key, if any was built.
func (t *Topology) Property(key string) (values.Column, bool) {
	col, ok := t.properties[key]
	return col, ok
}

// PropertyKeys returns every relationship property key this topology carries
// columns for.
func (t *Topology) PropertyKeys() []string {
	keys := make([]string, 0, len(t.properties))
	for k := range t.properties {
		keys = append(keys, k)
	}
	return keys
}

// Edges exposes the deduplicated (source, target) records this topology was
// built from, one Edge per dense ordinal in emission order — used by
// pkg/graph to re-derive a combined Topology when a filtered view spans more
// than one relationship type.
func (t *Topology) Edges() []Edge {
	out := make([]Edge, len(t.edges))
	for i, e := range t.edges {
		out[i] = Edge{Source: e.source, Target: e.target, Props: e.props}
	}
	return out
}

// Edge is the exported, read-only view of a build-time edge record.
type Edge struct {
	Source, Target int64
	Props          map[string]float64
}

func buildFromSortedDedupedEdges(nodeCount int64, edges []rawEdge, aggregation Aggregation) *Topology {
	t := &Topology{
		nodeCount:         nodeCount,
		relationshipCount: int64(len(edges)),
		aggregation:       aggregation,
		degree:            collections.NewHugeLongArray(nodeCount),
		ordinalStart:      collections.NewHugeLongArray(nodeCount),
		pageOfSource:      collections.NewHugeLongArray(nodeCount),
		byteOffset:        collections.NewHugeLongArray(nodeCount),
		edges:             edges,
	}

	// degree + ordinalStart: one linear pass over the already-sorted edges.
	ordinal := int64(0)
	i := 0
	for i < len(edges) {
		src := edges[i].source
		start := ordinal
		count := int64(0)
		for i < len(edges) && edges[i].source == src {
			ordinal++
			count++
			i++
		}
		t.degree.Set(src, count)
		t.ordinalStart.Set(src, start)
	}

	t.pages = compressPerSourcePages(nodeCount, edges, t.degree, t.pageOfSource, t.byteOffset)
	t.properties = buildPropertyColumns(edges)

	return t
}

// compressPerSourcePages lays out each source's delta-varlong-encoded target
// list into fixed-size byte pages, grouping sources into contiguous ranges
// of collections.PageSize much like collections' own huge arrays group
// elements into pages — one buffer per page rather than one per source keeps
// the page count (and therefore the bookkeeping array count) bounded.
func compressPerSourcePages(nodeCount int64, edges []rawEdge, degree, pageOfSource, byteOffset *collections.HugeLongArray) [][]byte {
	if nodeCount == 0 {
		return nil
	}
	numPages := (nodeCount + collections.PageSize - 1) / collections.PageSize
	pages := make([][]byte, numPages)

	i := 0
	for src := int64(0); src < nodeCount; src++ {
		page := src / collections.PageSize
		pageOfSource.Set(src, page)
		byteOffset.Set(src, int64(len(pages[page])))

		d := degree.Get(src)
		if d == 0 {
			continue
		}
		prev := int64(0)
		buf := pages[page]
		if buf == nil {
			// First source landing on this page: start from a pooled
			// buffer instead of growing a fresh nil slice from zero.
			buf = pool.GetByteBuffer()
		}
		for k := int64(0); k < d; k++ {
			delta := uint64(edges[i].target - prev)
			buf = encodeVarlong(buf, delta)
			prev = edges[i].target
			i++
		}
		pages[page] = buf
	}
	return pages
}

// buildPropertyColumns materializes one Double column per property key
// present on any edge, addressed by the dense edge ordinal assigned during
// the degree/ordinalStart pass (i.e. final emission order).
func buildPropertyColumns(edges []rawEdge) map[string]values.Column {
	keys := map[string]struct{}{}
	for _, e := range edges {
		for k := range e.props {
			keys[k] = struct{}{}
		}
	}
	if len(keys) == 0 {
		return map[string]values.Column{}
	}

	cols := make(map[string]values.Column, len(keys))
	for key := range keys {
		b := values.NewDoubleBuilder(int64(len(edges)), 0, true)
		for ordinal, e := range edges {
			if v, ok := e.props[key]; ok {
				_ = b.Set(int64(ordinal), v)
			}
		}
		cols[key] = b.Build()
	}
	return cols
}

// Inverse returns a Topology over the reversed edges (target treated as
// source), building and caching it on first use — inverse adjacency is
// built on demand rather than eagerly for every forward topology, since not
// every consumer traverses backwards.
func (t *Topology) Inverse() *Topology {
	if t.inverse != nil {
		return t.inverse
	}
	reversed := make([]rawEdge, len(t.edges))
	for i, e := range t.edges {
		reversed[i] = rawEdge{source: e.target, target: e.source, props: e.props}
	}
	// Re-sort by (new source, new target); duplicates cannot arise here since
	// the forward edges were already deduplicated.
	sort.Slice(reversed, func(i, j int) bool {
		if reversed[i].source != reversed[j].source {
			return reversed[i].source < reversed[j].source
		}
		return reversed[i].target < reversed[j].target
	})
	t.inverse = buildFromSortedDedupedEdges(t.nodeCount, reversed, t.aggregation)
	return t.inverse
}
