package stroke

import "math"

// Distance returns the pointwise L1 distance between two descriptors: the
// sum, over all Resolution index positions, of |Δx| + |Δy|. Both descriptors
// sample their paths at the same arc-length fractions, so index i of one is
// compared against index i of the other — the comparison is sensitive to
// where a closed shape's trace begins, which the shape library accounts for
// by storing both windings of such shapes.
//
// The metric is symmetric, non-negative, and zero exactly on equal
// descriptors. It is deliberately not normalized by path length or sample
// count; template ranking depends on the raw sum.
//
// Complexity: O(Resolution) time, O(1) memory.
func (d *Descriptor) Distance(other *Descriptor) float64 {
	sum := 0.0
	for i := 0; i < Resolution; i++ {
		sum += math.Abs(d[i].X - other[i].X)
		sum += math.Abs(d[i].Y - other[i].Y)
	}

	return sum
}
