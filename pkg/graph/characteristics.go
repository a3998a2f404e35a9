// Package graph implements spec.md §4.I: the immutable Graph projection
// handed out by GraphStore.graph() / graph_filtered(), plus the
// ristretto-backed cache for relationship_type_filtered_graph (see
// SPEC_FULL.md §2.2).
package graph

// Characteristics flags a Graph view's shape, per spec.md §6.2.
type Characteristics struct {
	Directed        bool
	InverseIndexed  bool
	HasEdgeProperty bool
}
