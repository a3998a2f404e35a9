package values

import (
	"fmt"

	"github.com/gdscore/graphstore/pkg/gdserrors"
)

// LongArrayColumn holds one []int64 slice per index. Array-typed columns
// are not paged through collections.HugeLongArray the way scalar columns
// are: each element is itself variable-length, so the natural Go
// representation is a slice of slices, with defaulting handled the same
// present/defaultUnset way as the scalar columns.
type LongArrayColumn struct {
	data         [][]int64
	present      []bool
	defaultValue []int64
	defaultUnset bool
}

// LongArrayBuilder constructs a LongArrayColumn index-by-index.
type LongArrayBuilder struct {
	col *LongArrayColumn
}

// NewLongArrayBuilder returns a builder for a column of the given
// cardinality.
func NewLongArrayBuilder(cardinality int64, defaultValue []int64, defaultUnset bool) *LongArrayBuilder {
	return &LongArrayBuilder{col: &LongArrayColumn{
		data:         make([][]int64, cardinality),
		present:      make([]bool, cardinality),
		defaultValue: defaultValue,
		defaultUnset: defaultUnset,
	}}
}

// Set assigns a value at index i.
func (b *LongArrayBuilder) Set(i int64, v []int64) error {
	if i < 0 || i >= int64(len(b.col.data)) {
		return fmt.Errorf("%w: index %d, cardinality %d", gdserrors.ErrOutOfRange, i, len(b.col.data))
	}
	b.col.data[i] = v
	b.col.present[i] = true
	return nil
}

// Build finalizes the column.
func (b *LongArrayBuilder) Build() *LongArrayColumn { return b.col }

func (c *LongArrayColumn) ValueType() ValueType { return LongArray }
func (c *LongArrayColumn) ValueCount() int64     { return int64(len(c.data)) }

func (c *LongArrayColumn) LongArrayValue(i int64) ([]int64, bool, error) {
	if i < 0 || i >= int64(len(c.data)) {
		return nil, false, fmt.Errorf("%w: index %d, cardinality %d", gdserrors.ErrOutOfRange, i, len(c.data))
	}
	if c.present[i] {
		return c.data[i], true, nil
	}
	if c.defaultUnset {
		return nil, false, nil
	}
	return c.defaultValue, true, nil
}

func (c *LongArrayColumn) LongValue(int64) (int64, bool, error) {
	return 0, false, fmt.Errorf("%w: column is %s, requested Long", gdserrors.ErrTypeMismatch, c.ValueType())
}
func (c *LongArrayColumn) DoubleValue(int64) (float64, bool, error) {
	return 0, false, fmt.Errorf("%w: column is %s, requested Double", gdserrors.ErrTypeMismatch, c.ValueType())
}
func (c *LongArrayColumn) DoubleArrayValue(int64) ([]float64, bool, error) {
	return nil, false, fmt.Errorf("%w: column is %s, requested DoubleArray", gdserrors.ErrTypeMismatch, c.ValueType())
}
func (c *LongArrayColumn) FloatArrayValue(int64) ([]float32, bool, error) {
	return nil, false, fmt.Errorf("%w: column is %s, requested FloatArray", gdserrors.ErrTypeMismatch, c.ValueType())
}

var _ Column = (*LongArrayColumn)(nil)

// DoubleArrayColumn holds one []float64 slice per index.
type DoubleArrayColumn struct {
	data         [][]float64
	present      []bool
	defaultValue []float64
	defaultUnset bool
}

// DoubleArrayBuilder constructs a DoubleArrayColumn index-by-index.
type DoubleArrayBuilder struct {
	col *DoubleArrayColumn
}

// NewDoubleArrayBuilder returns a builder for a column of the given
// cardinality.
func NewDoubleArrayBuilder(cardinality int64, defaultValue []float64, defaultUnset bool) *DoubleArrayBuilder {
	return &DoubleArrayBuilder{col: &DoubleArrayColumn{
		data:         make([][]float64, cardinality),
		present:      make([]bool, cardinality),
		defaultValue: defaultValue,
		defaultUnset: defaultUnset,
	}}
}

// Set assigns a value at index i.
func (b *DoubleArrayBuilder) Set(i int64, v []float64) error {
	if i < 0 || i >= int64(len(b.col.data)) {
		return fmt.Errorf("%w: index %d, cardinality %d", gdserrors.ErrOutOfRange, i, len(b.col.data))
	}
	b.col.data[i] = v
	b.col.present[i] = true
	return nil
}

// Build finalizes the column.
func (b *DoubleArrayBuilder) Build() *DoubleArrayColumn { return b.col }

func (c *DoubleArrayColumn) ValueType() ValueType { return DoubleArray }
func (c *DoubleArrayColumn) ValueCount() int64     { return int64(len(c.data)) }

func (c *DoubleArrayColumn) DoubleArrayValue(i int64) ([]float64, bool, error) {
	if i < 0 || i >= int64(len(c.data)) {
		return nil, false, fmt.Errorf("%w: index %d, cardinality %d", gdserrors.ErrOutOfRange, i, len(c.data))
	}
	if c.present[i] {
		return c.data[i], true, nil
	}
	if c.defaultUnset {
		return nil, false, nil
	}
	return c.defaultValue, true, nil
}

func (c *DoubleArrayColumn) LongValue(int64) (int64, bool, error) {
	return 0, false, fmt.Errorf("%w: column is %s, requested Long", gdserrors.ErrTypeMismatch, c.ValueType())
}
func (c *DoubleArrayColumn) DoubleValue(int64) (float64, bool, error) {
	return 0, false, fmt.Errorf("%w: column is %s, requested Double", gdserrors.ErrTypeMismatch, c.ValueType())
}
func (c *DoubleArrayColumn) LongArrayValue(int64) ([]int64, bool, error) {
	return nil, false, fmt.Errorf("%w: column is %s, requested LongArray", gdserrors.ErrTypeMismatch, c.ValueType())
}
func (c *DoubleArrayColumn) FloatArrayValue(int64) ([]float32, bool, error) {
	return nil, false, fmt.Errorf("%w: column is %s, requested FloatArray", gdserrors.ErrTypeMismatch, c.ValueType())
}

var _ Column = (*DoubleArrayColumn)(nil)

// FloatArrayColumn holds one []float32 slice per index — the common
// representation for embedding-style node properties.
type FloatArrayColumn struct {
	data         [][]float32
	present      []bool
	defaultValue []float32
	defaultUnset bool
}

// FloatArrayBuilder constructs a FloatArrayColumn index-by-index.
type FloatArrayBuilder struct {
	col *FloatArrayColumn
}

// NewFloatArrayBuilder returns a builder for a column of the given
// cardinality.
func NewFloatArrayBuilder(cardinality int64, defaultValue []float32, defaultUnset bool) *FloatArrayBuilder {
	return &FloatArrayBuilder{col: &FloatArrayColumn{
		data:         make([][]float32, cardinality),
		present:      make([]bool, cardinality),
		defaultValue: defaultValue,
		defaultUnset: defaultUnset,
	}}
}

// Set assigns a value at index i.
func (b *FloatArrayBuilder) Set(i int64, v []float32) error {
	if i < 0 || i >= int64(len(b.col.data)) {
		return fmt.Errorf("%w: index %d, cardinality %d", gdserrors.ErrOutOfRange, i, len(b.col.data))
	}
	b.col.data[i] = v
	b.col.present[i] = true
	return nil
}

// Build finalizes the column.
func (b *FloatArrayBuilder) Build() *FloatArrayColumn { return b.col }

func (c *FloatArrayColumn) ValueType() ValueType { return FloatArray }
func (c *FloatArrayColumn) ValueCount() int64     { return int64(len(c.data)) }

func (c *FloatArrayColumn) FloatArrayValue(i int64) ([]float32, bool, error) {
	if i < 0 || i >= int64(len(c.data)) {
		return nil, false, fmt.Errorf("%w: index %d, cardinality %d", gdserrors.ErrOutOfRange, i, len(c.data))
	}
	if c.present[i] {
		return c.data[i], true, nil
	}
	if c.defaultUnset {
		return nil, false, nil
	}
	return c.defaultValue, true, nil
}

func (c *FloatArrayColumn) LongValue(int64) (int64, bool, error) {
	return 0, false, fmt.Errorf("%w: column is %s, requested Long", gdserrors.ErrTypeMismatch, c.ValueType())
}
func (c *FloatArrayColumn) DoubleValue(int64) (float64, bool, error) {
	return 0, false, fmt.Errorf("%w: column is %s, requested Double", gdserrors.ErrTypeMismatch, c.ValueType())
}
func (c *FloatArrayColumn) LongArrayValue(int64) ([]int64, bool, error) {
	return nil, false, fmt.Errorf("%w: column is %s, requested LongArray", gdserrors.ErrTypeMismatch, c.ValueType())
}
func (c *FloatArrayColumn) DoubleArrayValue(int64) ([]float64, bool, error) {
	return nil, false, fmt.Errorf("%w: column is %s, requested DoubleArray", gdserrors.ErrTypeMismatch, c.ValueType())
}

var _ Column = (*FloatArrayColumn)(nil)
