package values

import (
	"fmt"

	"github.com/gdscore/graphstore/pkg/collections"
	"github.com/gdscore/graphstore/pkg/gdserrors"
)

// LongColumn is a homogeneous, index-addressable sequence of int64 values,
// backed by a paged collections.HugeLongArray so that node-scale property
// columns (billions of entries) don't require one contiguous native slice.
type LongColumn struct {
	data         *collections.HugeLongArray
	present      []bool
	defaultValue int64
	defaultUnset bool
}

// LongBuilder constructs a LongColumn index-by-index, validating cardinality
// and accumulating default-application decisions along the way.
type LongBuilder struct {
	col *LongColumn
}

// NewLongBuilder returns a builder for a column of the given cardinality.
// defaultUnset, when true, makes every index's accessor report "absent"
// (present=false) until explicitly Set; when false, unset indices
// materialize defaultValue.
func NewLongBuilder(cardinality int64, defaultValue int64, defaultUnset bool) *LongBuilder {
	return &LongBuilder{col: &LongColumn{
		data:         collections.NewHugeLongArray(cardinality),
		present:      make([]bool, cardinality),
		defaultValue: defaultValue,
		defaultUnset: defaultUnset,
	}}
}

// Set assigns a value at index i. Fails with gdserrors.ErrOutOfRange if i is
// outside the declared cardinality.
func (b *LongBuilder) Set(i int64, v int64) error {
	if i < 0 || i >= b.col.data.Length() {
		return fmt.Errorf("%w: index %d, cardinality %d", gdserrors.ErrOutOfRange, i, b.col.data.Length())
	}
	b.col.data.Set(i, v)
	b.col.present[i] = true
	return nil
}

// Build finalizes the column. The builder must not be reused afterward.
func (b *LongBuilder) Build() *LongColumn { return b.col }

// ValueType returns Long.
func (c *LongColumn) ValueType() ValueType { return Long }

// ValueCount returns the column's cardinality.
func (c *LongColumn) ValueCount() int64 { return c.data.Length() }

// LongValue returns the value at i, applying default-materialization per
// the builder's defaultUnset policy.
func (c *LongColumn) LongValue(i int64) (int64, bool, error) {
	if i < 0 || i >= c.data.Length() {
		return 0, false, fmt.Errorf("%w: index %d, cardinality %d", gdserrors.ErrOutOfRange, i, c.data.Length())
	}
	if c.present[i] {
		return c.data.Get(i), true, nil
	}
	if c.defaultUnset {
		return 0, false, nil
	}
	return c.defaultValue, true, nil
}

func (c *LongColumn) DoubleValue(int64) (float64, bool, error) {
	return 0, false, fmt.Errorf("%w: column is %s, requested Double", gdserrors.ErrTypeMismatch, c.ValueType())
}

func (c *LongColumn) LongArrayValue(int64) ([]int64, bool, error) {
	return nil, false, fmt.Errorf("%w: column is %s, requested LongArray", gdserrors.ErrTypeMismatch, c.ValueType())
}

func (c *LongColumn) DoubleArrayValue(int64) ([]float64, bool, error) {
	return nil, false, fmt.Errorf("%w: column is %s, requested DoubleArray", gdserrors.ErrTypeMismatch, c.ValueType())
}

func (c *LongColumn) FloatArrayValue(int64) ([]float32, bool, error) {
	return nil, false, fmt.Errorf("%w: column is %s, requested FloatArray", gdserrors.ErrTypeMismatch, c.ValueType())
}

var _ Column = (*LongColumn)(nil)
