// Package unistroke recognizes single-stroke pointer gestures: it turns one
// freehand drag into a normalized, fixed-resolution shape descriptor and
// names it by nearest-neighbor distance against a built-in shape library.
//
// 🚀 What is unistroke?
//
//	A small, deterministic recognition core that brings together:
//		• Path normalization: translation + isotropic scaling into a ±1 frame
//		• Arc-length resampling: any stroke → exactly 128 evenly spaced samples
//		• A fixed library of canonical shapes: swipes, arrows, triangles, letters
//		• Nearest-template classification with a stable, in-order tie-break
//
// ✨ Why choose unistroke?
//
//   - Beginner-friendly – one call from raw pointer samples to a label
//   - Rock-solid guarantees – pure functions, no I/O, safe for parallel use
//   - Pure Go – no cgo, no hidden deps
//   - Predictable – identical input always yields the identical label
//
// Under the hood, everything is organized under three subpackages:
//
//	stroke/   — Point, normalization, resampling & the fixed-size Descriptor
//	shapes/   — canonical template library (built once, read-only afterwards)
//	classify/ — the classifier tying normalization, resampling & the scan together
//
// Quick ASCII example:
//
//	    ┌───────┐
//	    │   ↑   │   a straight upward drag inside the canvas
//	    │   │   │   classifies as "up"; tracing the border
//	    └───────┘   classifies as "rectangle" in either winding.
//
// A tap, a click, or any stroke without two distinct points yields no label
// at all — that is the only way classification declines to answer.
//
//	go get github.com/katalvlaran/unistroke
package unistroke
