package values

import (
	"fmt"

	"github.com/gdscore/graphstore/pkg/collections"
	"github.com/gdscore/graphstore/pkg/gdserrors"
)

// DoubleColumn is the float64 analogue of LongColumn, backed by a paged
// collections.HugeDoubleArray.
type DoubleColumn struct {
	data         *collections.HugeDoubleArray
	present      []bool
	defaultValue float64
	defaultUnset bool
}

// DoubleBuilder constructs a DoubleColumn index-by-index.
type DoubleBuilder struct {
	col *DoubleColumn
}

// NewDoubleBuilder returns a builder for a column of the given cardinality.
func NewDoubleBuilder(cardinality int64, defaultValue float64, defaultUnset bool) *DoubleBuilder {
	return &DoubleBuilder{col: &DoubleColumn{
		data:         collections.NewHugeDoubleArray(cardinality),
		present:      make([]bool, cardinality),
		defaultValue: defaultValue,
		defaultUnset: defaultUnset,
	}}
}

// Set assigns a value at index i.
func (b *DoubleBuilder) Set(i int64, v float64) error {
	if i < 0 || i >= b.col.data.Length() {
		return fmt.Errorf("%w: index %d, cardinality %d", gdserrors.ErrOutOfRange, i, b.col.data.Length())
	}
	b.col.data.Set(i, v)
	b.col.present[i] = true
	return nil
}

// Build finalizes the column.
func (b *DoubleBuilder) Build() *DoubleColumn { return b.col }

// ValueType returns Double.
func (c *DoubleColumn) ValueType() ValueType { return Double }

// ValueCount returns the column's cardinality.
func (c *DoubleColumn) ValueCount() int64 { return c.data.Length() }

// DoubleValue returns the value at i.
func (c *DoubleColumn) DoubleValue(i int64) (float64, bool, error) {
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

func (c *DoubleColumn) LongValue(int64) (int64, bool, error) {
	return 0, false, fmt.Errorf("%w: column is %s, requested Long", gdserrors.ErrTypeMismatch, c.ValueType())
}

func (c *DoubleColumn) LongArrayValue(int64) ([]int64, bool, error) {
	return nil, false, fmt.Errorf("%w: column is %s, requested LongArray", gdserrors.ErrTypeMismatch, c.ValueType())
}

func (c *DoubleColumn) DoubleArrayValue(int64) ([]float64, bool, error) {
	return nil, false, fmt.Errorf("%w: column is %s, requested DoubleArray", gdserrors.ErrTypeMismatch, c.ValueType())
}

func (c *DoubleColumn) FloatArrayValue(int64) ([]float32, bool, error) {
	return nil, false, fmt.Errorf("%w: column is %s, requested FloatArray", gdserrors.ErrTypeMismatch, c.ValueType())
}

var _ Column = (*DoubleColumn)(nil)
