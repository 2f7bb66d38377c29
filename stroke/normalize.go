package stroke

// Normalize — duplicate collapse + bounds normalization
//
// Description:
//
//	Normalize rescales a raw pointer path into a canonical coordinate
//	frame so that strokes drawn at different positions and sizes become
//	directly comparable.
//
// Algorithm Outline:
//  1. Collapse consecutive duplicate points (exact equality on both
//     coordinates), preserving order. Duplicates arise whenever the
//     pointer reports without moving and would otherwise produce
//     zero-length segments during resampling.
//  2. Fail with ErrDegenerateStroke if fewer than 2 points remain.
//  3. Compute the axis-aligned bounding box and its center.
//  4. Scale every point by the larger of the two half-extents, so the
//     scaling is isotropic: the longer axis exactly touches ±1 and the
//     shorter keeps its proportion (aspect preserved, not stretched).
//  5. Fail with ErrDegenerateStroke if that half-extent is zero rather
//     than divide by it.
//
// Output preserves order and count of the deduplicated input; every
// coordinate lies within [-1, 1].
//
// Complexity:
//
//	Time   = O(n)
//	Memory = O(n)
//
// Errors:
//   - ErrDegenerateStroke — fewer than 2 distinct points, or zero extent.
func Normalize(points []Point) ([]Point, error) {
	deduped := collapseRuns(points)
	if len(deduped) < 2 {
		return nil, ErrDegenerateStroke
	}

	xMin, xMax := deduped[0].X, deduped[0].X
	yMin, yMax := deduped[0].Y, deduped[0].Y
	for _, p := range deduped[1:] {
		if p.X < xMin {
			xMin = p.X
		}
		if p.X > xMax {
			xMax = p.X
		}
		if p.Y < yMin {
			yMin = p.Y
		}
		if p.Y > yMax {
			yMax = p.Y
		}
	}

	center := Point{X: (xMax + xMin) / 2, Y: (yMax + yMin) / 2}
	halfSize := (xMax - xMin) / 2
	if yHalf := (yMax - yMin) / 2; yHalf > halfSize {
		halfSize = yHalf
	}
	if halfSize == 0 {
		return nil, ErrDegenerateStroke
	}

	normalized := make([]Point, len(deduped))
	for i, p := range deduped {
		normalized[i] = Point{
			X: (p.X - center.X) / halfSize,
			Y: (p.Y - center.Y) / halfSize,
		}
	}

	return normalized, nil
}

// collapseRuns removes consecutive duplicate points, preserving order.
// Non-adjacent repeats (e.g. a closed path returning to its start) are kept.
func collapseRuns(points []Point) []Point {
	if len(points) == 0 {
		return nil
	}
	deduped := make([]Point, 0, len(points))
	deduped = append(deduped, points[0])
	for _, p := range points[1:] {
		if p != deduped[len(deduped)-1] {
			deduped = append(deduped, p)
		}
	}

	return deduped
}
