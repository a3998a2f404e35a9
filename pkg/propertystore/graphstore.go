package propertystore

// GraphPropertyStore is spec.md §3.3's key->column map for graph-wide
// scalar-ish columns. It needs no label- or type-scoping, so it is exactly
// the generic Store — see SPEC_FULL.md §3.7 for the (additive) decision to
// let it carry more than one column, rather than the single "rarely
// populated" column the distillation implies.
type GraphPropertyStore = Store

// NewGraphPropertyStore returns an empty GraphPropertyStore.
func NewGraphPropertyStore() *GraphPropertyStore { return NewStore() }
