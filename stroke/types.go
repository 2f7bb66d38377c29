// Package stroke defines the core types and sentinel errors shared by
// normalization, resampling and descriptor comparison.
package stroke

import "errors"

// Resolution is the fixed number of samples in a Descriptor.
// Every stroke, however many pointer samples it carries, is resampled to
// exactly this many points before comparison.
const Resolution = 128

// Point is a single 2D pointer sample. Y grows downward, matching the
// screen-coordinate convention of the pointer sources that feed the core;
// nothing in this package depends on the orientation beyond the shape
// library using the same convention.
type Point struct {
	X, Y float64
}

// Descriptor is a normalized, arc-length-resampled stroke: exactly
// Resolution points, each located at a uniform fraction of total path
// length. The fixed-size array carries the length invariant in the type;
// Resample is the only construction boundary.
//
// A Descriptor is a value: copy freely, never mutated after construction.
type Descriptor [Resolution]Point

// Sentinel errors for stroke operations.
var (
	// ErrDegenerateStroke indicates a stroke that cannot be normalized:
	// fewer than two points remain after collapsing consecutive duplicates,
	// or the bounding box has zero extent. A plain tap produces this.
	// Usage: if errors.Is(err, stroke.ErrDegenerateStroke) { /* no gesture */ }.
	ErrDegenerateStroke = errors.New("stroke: need at least two distinct points with nonzero extent")
)
