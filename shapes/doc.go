// Package shapes holds the template library: the fixed, ordered set of
// named reference shapes that strokes are classified against.
//
// 🚀 What is shapes?
//
//	Each Template pairs a name with a precomputed stroke.Descriptor, built
//	by running a canonical control polyline (shapes_spec.go) through the
//	same normalization and resampling as user strokes.  The built-in
//	library covers cardinal and diagonal swipes, two-leg corner/return
//	swipes, arrows, triangles, both windings of "rectangle", and the
//	letters n, t, x, z.
//
// ✨ Key properties:
//   - Builtin() builds the library lazily, exactly once, even under
//     concurrent first use; afterwards every read is synchronization-free
//   - a Library is immutable after construction and safe to share
//   - Nearest scans templates in table order and keeps the first strict
//     minimum, so ties resolve deterministically to the earlier entry —
//     this matters because names like "rectangle" appear more than once
//   - a built-in definition with fewer than two distinct control points is
//     a data-entry bug: construction aborts instead of silently skipping
//     the entry and biasing every later scan
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/unistroke/shapes"
//
//	lib := shapes.Builtin()
//	tmpl, dist := lib.Nearest(&desc)
//
// See examples in example_test.go.
package shapes
