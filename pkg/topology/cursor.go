package topology

// Cursor streams the decoded targets of one source node in ascending order,
// per spec.md §4.H's single-pass forward cursor contract. A Cursor is
// single-use: create a fresh one per Stream call.
type Cursor struct {
	topology *Topology
	source   int64
	ordinal  int64
	target   int64

	remaining  int64
	buf        []byte
	pos        int
	prevTarget int64
}

// Stream returns a Cursor over source's neighbors, in ascending target
// order. The property key and its fallback are passed per call to the
// cursor's Property method, not bound here.
func (t *Topology) Stream(source int64) *Cursor {
	page := t.pageOfSource.Get(source)
	offset := t.byteOffset.Get(source)
	return &Cursor{
		topology:  t,
		source:    source,
		ordinal:   t.ordinalStart.Get(source) - 1,
		remaining: t.degree.Get(source),
		buf:       t.pages[page],
		pos:       int(offset),
	}
}

// Next advances the cursor to the next target, returning false once
// exhausted.
func (c *Cursor) Next() bool {
	if c.remaining == 0 {
		return false
	}
	delta, next := decodeVarlong(c.buf, c.pos)
	c.pos = next
	c.target = c.prevTarget + int64(delta)
	c.prevTarget = c.target
	c.ordinal++
	c.remaining--
	return true
}

// Target returns the current neighbor's internal node id.
func (c *Cursor) Target() int64 { return c.target }

// Ordinal returns the dense edge ordinal of the current entry, usable to
// index directly into any Column returned by Topology.Property.
func (c *Cursor) Ordinal() int64 { return c.ordinal }

// Property reads propertyKey's value for the current entry, returning
// fallback if the topology has no such column or the column has no value at
// this ordinal.
func (c *Cursor) Property(propertyKey string, fallback float64) float64 {
	col, ok := c.topology.properties[propertyKey]
	if !ok {
		return fallback
	}
	v, present, err := col.DoubleValue(c.ordinal)
	if err != nil || !present {
		return fallback
	}
	return v
}
