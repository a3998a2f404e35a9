// Package values implements spec.md §4.E: typed, column-oriented
// PropertyValues with a builder (index-by-index construction with
// OutOfRange/TypeMismatch validation) and a single-pass forward cursor for
// hot-path access.
//
// The column trait is polymorphic over a small, closed capability set
// (scalar long, scalar double, long array, double array, float array); a
// ValueType tag disambiguates concrete implementations at query boundaries.
// LongColumn and DoubleColumn also offer concrete cursors that bypass the
// polymorphic interface; pkg/graph and pkg/topology read edge properties
// through the Column interface.
package values

// ValueType tags which of the five element kinds a PropertyValues column
// holds.
type ValueType int

const (
	Long ValueType = iota
	Double
	LongArray
	DoubleArray
	FloatArray
)

// String renders the ValueType the way it is named across this module's
// error messages and the wider wire-stable vocabulary.
func (vt ValueType) String() string {
	switch vt {
	case Long:
		return "Long"
	case Double:
		return "Double"
	case LongArray:
		return "LongArray"
	case DoubleArray:
		return "DoubleArray"
	case FloatArray:
		return "FloatArray"
	default:
		return "Unknown"
	}
}
