package graph

import "github.com/gdscore/graphstore/pkg/topology"

// Cursor streams one node's relationships, exposing the Graph's bound
// default relationship property (if any) at each step — the single
// `fallback` parameter of spec.md §6.2's stream_relationships is the value
// returned when that default property is absent, mirroring
// topology.Cursor.Property but pre-bound to one key so callers need not
// know it.
type Cursor struct {
	inner      *topology.Cursor
	defaultKey string
	fallback   float64
}

// Next advances the cursor, returning false once exhausted.
func (c *Cursor) Next() bool { return c.inner.Next() }

// Target returns the current neighbor's internal node id.
func (c *Cursor) Target() int64 { return c.inner.Target() }

// Property returns the Graph's default relationship property at the
// current entry, or the bound fallback if the graph has no default
// property.
func (c *Cursor) Property() float64 {
	if c.defaultKey == "" {
		return c.fallback
	}
	return c.inner.Property(c.defaultKey, c.fallback)
}
