package concurrency

// Partition is a half-open range [Start, Start+Length) over internal node
// ids. Partitions produced by Partitions() never overlap and together cover
// [0, n).
type Partition struct {
	Start  int64
	Length int64
}

// End returns the exclusive upper bound of the partition.
func (p Partition) End() int64 { return p.Start + p.Length }

// ForEach calls fn(id) for every id in the partition in ascending order, the
// within-partition ordering guarantee spec.md §4.D and §5 both require.
func (p Partition) ForEach(fn func(id int64)) {
	for id := p.Start; id < p.End(); id++ {
		fn(id)
	}
}

// Partitions splits [0, n) into concurrency.Value() contiguous,
// equal-length partitions; the last partition absorbs any remainder so the
// partitions always cover [0, n) exactly once each.
func Partitions(n int64, concurrency Concurrency) []Partition {
	workers := int64(concurrency.Value())
	if n <= 0 {
		return nil
	}
	if workers > n {
		workers = n
	}
	base := n / workers
	remainder := n % workers

	partitions := make([]Partition, 0, workers)
	start := int64(0)
	for i := int64(0); i < workers; i++ {
		length := base
		if i == workers-1 {
			length += remainder
		}
		partitions = append(partitions, Partition{Start: start, Length: length})
		start += length
	}
	return partitions
}
