package graph

import "github.com/dgraph-io/ristretto/v2"

// filterCache memoizes relationship_type_filtered_graph results keyed by
// the requested type set, so repeatedly projecting the same subgraph (e.g.
// running one algorithm after another over {KNOWS}) doesn't rebuild the
// combined topology every time. One cache is shared by a GraphStore
// snapshot and every Graph view derived from it via filtering.
type filterCache struct {
	cache *ristretto.Cache[string, *Graph]
}

func newFilterCache() *filterCache {
	c, err := ristretto.NewCache(&ristretto.Config[string, *Graph]{
		NumCounters: 1e4,
		MaxCost:     1 << 20,
		BufferItems: 64,
	})
	if err != nil {
		// Config above is a fixed, valid literal; NewCache only fails on
		// invalid configuration, which would be a programming error here.
		panic(err)
	}
	return &filterCache{cache: c}
}

func (fc *filterCache) get(key string) (*Graph, bool) {
	return fc.cache.Get(key)
}

func (fc *filterCache) put(key string, g *Graph) {
	fc.cache.Set(key, g, 1)
	fc.cache.Wait()
}
