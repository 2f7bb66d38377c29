// Package classify names freehand pointer strokes: raw drag samples in,
// the nearest reference shape's name out.
//
// 🚀 What is classify?
//
//	The orchestration layer of unistroke.  One call runs the full
//	pipeline — normalization, arc-length resampling, nearest-template
//	scan — and returns the winning shape's name:
//
//	  raw points → normalized path → 128-sample descriptor → scan → name
//
// ✨ Key properties:
//   - degenerate strokes (a tap, a single point, zero spatial extent) are
//     a normal outcome, reported as ok=false with no error machinery
//   - every other stroke gets a name: nearest template wins, no threshold
//   - deterministic: identical input, identical answer, every time
//   - pure computation over an immutable library; concurrent calls need no
//     synchronization
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/unistroke/classify"
//
//	if name, ok := classify.Stroke(points); ok {
//	  fmt.Println("recognized:", name)
//	}
//
// A Classifier built with New carries its own library reference; Stroke is
// the same thing over the built-in library.
//
// Performance: O(samples + Resolution · templates) per call, a few thousand
// floating-point operations against the built-in library.
package classify
