package graph

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gdscore/graphstore/pkg/gdserrors"
	"github.com/gdscore/graphstore/pkg/idmap"
	"github.com/gdscore/graphstore/pkg/propertystore"
	"github.com/gdscore/graphstore/pkg/topology"
	"github.com/gdscore/graphstore/pkg/values"
)

// Graph is spec.md §4.I's immutable projection: a consistent snapshot over
// an IdMap, a NodePropertyStore, and a combined Topology spanning some
// subset of relationship types. Every field is shared-ownership state
// captured at projection time — later GraphStore mutations never touch it.
type Graph struct {
	idMap     *idmap.IdMap
	nodeProps *propertystore.NodePropertyStore

	perType map[idmap.RelationshipType]*topology.Topology
	types   []idmap.RelationshipType

	combined           *topology.Topology
	defaultPropertyKey string

	characteristics Characteristics
	cache           *filterCache
}

// New builds the Graph view for exactly the given relationship types,
// combining their topologies if there is more than one. perType must
// contain an entry for every element of types. cache may be nil, in which
// case a fresh one is allocated (GraphStore.Graph/GraphFiltered share a
// single cache across every view derived from one snapshot).
func New(idMap *idmap.IdMap, nodeProps *propertystore.NodePropertyStore, perType map[idmap.RelationshipType]*topology.Topology, types []idmap.RelationshipType, cache *filterCache) *Graph {
	if cache == nil {
		cache = newFilterCache()
	}
	sorted := append([]idmap.RelationshipType(nil), types...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name() < sorted[j].Name() })

	combined := combineTopologies(idMap.NodeCount(), sorted, perType)

	defaultKey := ""
	keys := combined.PropertyKeys()
	if len(keys) > 0 {
		sort.Strings(keys)
		defaultKey = keys[0]
	}

	return &Graph{
		idMap:              idMap,
		nodeProps:          nodeProps,
		perType:            perType,
		types:              sorted,
		combined:           combined,
		defaultPropertyKey: defaultKey,
		characteristics: Characteristics{
			Directed:        true,
			InverseIndexed:  true,
			HasEdgeProperty: len(keys) > 0,
		},
		cache: cache,
	}
}

func combineTopologies(nodeCount int64, types []idmap.RelationshipType, perType map[idmap.RelationshipType]*topology.Topology) *topology.Topology {
	if len(types) == 1 {
		return perType[types[0]]
	}
	b := topology.NewBuilder(nodeCount, topology.AggregationNone)
	for _, t := range types {
		for _, e := range perType[t].Edges() {
			b.AddEdge(e.Source, e.Target, e.Props)
		}
	}
	return b.Build()
}

// NodeCount returns the number of nodes in the view.
func (g *Graph) NodeCount() int64 { return g.idMap.NodeCount() }

// ForEachNode calls fn once per internal id in [0, NodeCount()), ascending.
func (g *Graph) ForEachNode(fn func(int64)) {
	n := g.idMap.NodeCount()
	for v := int64(0); v < n; v++ {
		fn(v)
	}
}

// RelationshipCount returns the number of relationships across every
// included type.
func (g *Graph) RelationshipCount() int64 { return g.combined.RelationshipCount() }

// Characteristics reports the view's shape flags.
func (g *Graph) Characteristics() Characteristics { return g.characteristics }

// Degree returns v's out-degree within this view.
func (g *Graph) Degree(v int64) int64 { return g.combined.Degree(v) }

// Exists reports whether src has an outgoing relationship to tgt in this
// view.
func (g *Graph) Exists(src, tgt int64) bool {
	cur := g.combined.Stream(src)
	for cur.Next() {
		if cur.Target() == tgt {
			return true
		}
	}
	return false
}

// StreamRelationships returns a forward Cursor over src's neighbors,
// ascending by target id.
func (g *Graph) StreamRelationships(src int64, fallback float64) *Cursor {
	return &Cursor{inner: g.combined.Stream(src), defaultKey: g.defaultPropertyKey, fallback: fallback}
}

// StreamInverseRelationships returns a Cursor over the relationships
// pointing into src, built (and cached) on demand.
func (g *Graph) StreamInverseRelationships(src int64, fallback float64) *Cursor {
	return &Cursor{inner: g.combined.Inverse().Stream(src), defaultKey: g.defaultPropertyKey, fallback: fallback}
}

// NodeProperties returns the column bound to key, if any.
func (g *Graph) NodeProperties(key string) (values.Column, bool) {
	prop, ok := g.nodeProps.Get(key)
	if !ok {
		return nil, false
	}
	return prop.Column, true
}

// HasRelationshipProperty reports whether this view carries at least one
// relationship property column.
func (g *Graph) HasRelationshipProperty() bool { return g.characteristics.HasEdgeProperty }

// RelationshipTypeFilteredGraph returns the Graph view restricted to types,
// failing with gdserrors.ErrTypeNotFound if any requested type was not part
// of the snapshot this view was built from. Results are memoized in the
// shared filterCache keyed by the sorted type-name set.
func (g *Graph) RelationshipTypeFilteredGraph(types []idmap.RelationshipType) (*Graph, error) {
	names := make([]string, len(types))
	for i, t := range types {
		if _, ok := g.perType[t]; !ok {
			return nil, fmt.Errorf("%w: %q", gdserrors.ErrTypeNotFound, t.Name())
		}
		names[i] = t.Name()
	}
	sort.Strings(names)
	key := strings.Join(names, "|")

	if cached, ok := g.cache.get(key); ok {
		return cached, nil
	}
	filtered := New(g.idMap, g.nodeProps, g.perType, types, g.cache)
	g.cache.put(key, filtered)
	return filtered, nil
}
