package stroke

import "math"

// segment is one edge of a polyline together with the arc length traveled
// before it begins. Precomputing start offsets lets each target distance be
// resolved with a single in-order scan.
type segment struct {
	from, to Point
	length   float64
	start    float64
}

// Resample — arc-length resampling into a fixed Descriptor
//
// Description:
//
//	Resample redistributes a normalized path into exactly Resolution
//	points evenly spaced by distance traveled along the path, erasing the
//	original sampling density.
//
// Algorithm Outline:
//  1. Walk consecutive point pairs, recording each segment's Euclidean
//     length and cumulative start distance; accumulate total length T.
//  2. For each output index i in 0..Resolution-1, the target arc length
//     is d = T·i/(Resolution−1).
//  3. Scan segments in path order and take the first whose inclusive range
//     [start, start+length] contains d — at a boundary shared by two
//     segments the earlier one wins, a fixed convention that keeps exact
//     boundary hits deterministic.
//  4. Interpolate linearly inside the chosen segment:
//     t = (d−start)/length, out = from·(1−t) + to·t.
//  5. The final index targets d = T exactly; rounded steps can land a hair
//     off T in either direction, so the last sample is pinned to the last
//     path point rather than interpolated. Any other target that drifts
//     past every range clamps there too.
//
// The first output point equals the first input point and the last equals
// the last input point.
//
// Complexity:
//
//	Time   = O(n · Resolution)
//	Memory = O(n)
//
// Errors:
//   - ErrDegenerateStroke — fewer than 2 input points, or no point
//     distinct from its predecessor. A successful
//     Normalize guarantees this cannot happen; the check stays so Resample
//     is safe on any input.
func Resample(path []Point) (Descriptor, error) {
	var desc Descriptor
	if len(path) < 2 {
		return desc, ErrDegenerateStroke
	}

	// Zero-length segments never arise from Normalize output, but a direct
	// caller may pass repeated points; they carry no arc length and would
	// break interpolation, so they are skipped here.
	segments := make([]segment, 0, len(path)-1)
	total := 0.0
	for i := 1; i < len(path); i++ {
		from, to := path[i-1], path[i]
		length := math.Hypot(to.X-from.X, to.Y-from.Y)
		if length == 0 {
			continue
		}
		segments = append(segments, segment{from: from, to: to, length: length, start: total})
		total += length
	}
	if len(segments) == 0 {
		return desc, ErrDegenerateStroke
	}

	// The final target is the full length T, but Resolution-1 rounded steps
	// may land a hair off T in either direction; the last sample is pinned
	// to the path's endpoint instead of interpolated.
	step := total / float64(Resolution-1)
	for i := 0; i < Resolution-1; i++ {
		desc[i] = sampleAt(segments, float64(i)*step)
	}
	desc[Resolution-1] = segments[len(segments)-1].to

	return desc, nil
}

// sampleAt resolves one target arc length against the ordered segment list:
// first inclusive containment wins. A target beyond every range (float
// drift past the total) clamps to the final endpoint.
func sampleAt(segments []segment, d float64) Point {
	for _, s := range segments {
		if d < s.start || d > s.start+s.length {
			continue
		}
		t := (d - s.start) / s.length
		return Point{
			X: s.from.X*(1-t) + s.to.X*t,
			Y: s.from.Y*(1-t) + s.to.Y*t,
		}
	}

	return segments[len(segments)-1].to
}

// Describe is the Normalize∘Resample composition: one call from raw pointer
// samples to a comparable Descriptor. It is the only construction path the
// classifier and the shape library use.
func Describe(points []Point) (Descriptor, error) {
	normalized, err := Normalize(points)
	if err != nil {
		return Descriptor{}, err
	}

	return Resample(normalized)
}
