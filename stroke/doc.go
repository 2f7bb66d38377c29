// Package stroke converts raw pointer strokes into comparable,
// fixed-resolution shape descriptors.
//
// 🚀 What is stroke?
//
//	The geometric core of gesture recognition.  A freehand drag arrives as
//	an ordered list of 2D samples whose density depends on pointer speed
//	and sampling rate; stroke removes both dependencies in two steps:
//	  • Normalize — drop consecutive duplicates, then translate and
//	    isotropically scale the path into a square of half-extent 1
//	    centered on its bounding box (aspect preserved, never stretched).
//	  • Resample — redistribute the path into exactly Resolution (128)
//	    points evenly spaced by arc length, independent of how many
//	    samples the pointer delivered.
//
// ✨ Key properties:
//   - scale & translation invariant: the same shape drawn anywhere, at any
//     size, produces the same Descriptor
//   - Descriptor is a fixed-size array; its length invariant is carried by
//     the type, enforced once at the Resample construction boundary
//   - Distance is a pointwise L1 sum across all samples: symmetric,
//     non-negative, zero on self
//   - pure functions, no I/O, safe for unsynchronized concurrent use
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/unistroke/stroke"
//
//	desc, err := stroke.Describe(points)
//	if errors.Is(err, stroke.ErrDegenerateStroke) {
//	  // a tap or a zero-extent stroke: nothing to recognize
//	}
//
// Performance:
//
//   - Normalize: O(n) over the input samples
//   - Resample:  O(n · Resolution) with tiny constants
//   - Distance:  O(Resolution)
//
// See examples in example_test.go.
package stroke
