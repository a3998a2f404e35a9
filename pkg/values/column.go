package values

// Column is the capability-set contract every PropertyValues implementation
// satisfies. Callers that only know a column's ValueType at runtime (e.g.
// generic export tooling) go through this interface; callers on a hot path
// that already know the concrete type (e.g. a Pregel computation reading a
// rank column it created) use the concrete type's typed accessors directly,
// bypassing this interface's dispatch — see spec.md §9.
//
// Every typed accessor returns (value, present, err): err is
// gdserrors.ErrTypeMismatch when called against a column of a different
// ValueType; present is false when the index has no materialized value and
// the schema's default is "unset" (modeling Option::None); otherwise present
// is true and value already carries the schema default if nothing was
// explicitly pushed at that index.
type Column interface {
	ValueType() ValueType
	ValueCount() int64

	LongValue(i int64) (int64, bool, error)
	DoubleValue(i int64) (float64, bool, error)
	LongArrayValue(i int64) ([]int64, bool, error)
	DoubleArrayValue(i int64) ([]float64, bool, error)
	FloatArrayValue(i int64) ([]float32, bool, error)
}
