// Package memory implements spec.md §4.C: MemoryRange arithmetic, a
// MemoryTree renderer (humanized via the teacher's own go-humanize
// dependency), and per-user/per-task reservation tracking.
package memory

// Range is a closed interval [Min, Max] describing an estimated byte cost
// that may depend on runtime parameters not yet known (e.g. average degree).
type Range struct {
	Min int64
	Max int64
}

// Of returns a Range covering exactly n bytes.
func Of(n int64) Range { return Range{Min: n, Max: n} }

// Add returns the element-wise sum of two ranges.
func (r Range) Add(other Range) Range {
	return Range{Min: r.Min + other.Min, Max: r.Max + other.Max}
}

// Times scales both bounds by a non-negative integer scalar.
func (r Range) Times(scalar int64) Range {
	return Range{Min: r.Min * scalar, Max: r.Max * scalar}
}

// SaturatingSub subtracts other from r, clamping at zero instead of going
// negative — a memory estimate is never meaningfully negative.
func (r Range) SaturatingSub(other Range) Range {
	min := r.Min - other.Max
	if min < 0 {
		min = 0
	}
	max := r.Max - other.Min
	if max < 0 {
		max = 0
	}
	return Range{Min: min, Max: max}
}

// Union returns the smallest range covering both r and other.
func (r Range) Union(other Range) Range {
	min := r.Min
	if other.Min < min {
		min = other.Min
	}
	max := r.Max
	if other.Max > max {
		max = other.Max
	}
	return Range{Min: min, Max: max}
}

// MaxOf returns the element-wise maximum of two ranges.
func (r Range) MaxOf(other Range) Range {
	min := r.Min
	if other.Min > min {
		min = other.Min
	}
	max := r.Max
	if other.Max > max {
		max = other.Max
	}
	return Range{Min: min, Max: max}
}
