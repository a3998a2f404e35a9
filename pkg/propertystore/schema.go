// Package propertystore implements spec.md §4.F: named collections of
// PropertyValues columns grouped under a schema, in the three flavors
// spec.md §3.3 describes — graph-wide, node (label-scoped), and
// relationship (type-scoped) — all sharing the same duplicate-key /
// not-found semantics, mirroring how the teacher's own SchemaManager
// (pkg/storage/schema.go) centralizes constraint bookkeeping behind one
// thread-safe type rather than duplicating the map/mutex dance per store.
package propertystore

import (
	"fmt"

	"github.com/gdscore/graphstore/pkg/gdserrors"
	"github.com/gdscore/graphstore/pkg/values"
)

// PropertyState classifies how a property participates in export/GC-like
// lifecycle decisions the store itself does not make (those are an external
// concern per spec.md §1) but still needs to carry on behalf of callers.
type PropertyState int

const (
	Persistent PropertyState = iota
	Transient
	Hidden
)

// Schema records everything about a property except its data: its key, the
// ValueType its column must carry, a default value, and its PropertyState.
// DefaultValue is carried as metadata only: a column answers for unset
// indices with the default given to its own builder, not with this field.
type Schema struct {
	Key          string
	ValueType    values.ValueType
	DefaultValue any
	State        PropertyState
}

// Property pairs a Schema with the column holding its data. Two Property
// instances with the same key but different ValueTypes cannot coexist in
// the same store — Put rejects any already-present key with ErrDuplicateKey.
type Property struct {
	Schema Schema
	Column values.Column
}

func validateSchemaMatchesColumn(schema Schema, column values.Column) error {
	if schema.ValueType != column.ValueType() {
		return fmt.Errorf("%w: schema declares %s, column is %s",
			gdserrors.ErrTypeMismatch, schema.ValueType, column.ValueType())
	}
	return nil
}
