// SPDX-License-Identifier: MIT
// Package: unistroke/shapes
//
// shapes_spec.go - canonical per-shape control polylines (data-only).
//
// Purpose:
//   - This file is the single source of truth for the built-in shape library.
//     Each entry names one gesture and gives the ordered control points of a
//     representative polyline for it; Builtin() runs every entry through
//     normalization and resampling, so absolute coordinates are irrelevant —
//     only proportions and drawing order matter.
//   - Control points use screen convention: X grows rightward, Y grows
//     downward ("down" is a stroke toward the bottom of the canvas).
//
// Contract (for consumers such as library.go):
//   - Entry order is semantic and stable: the nearest-template scan keeps the
//     first minimum it meets, so ties resolve to the earlier entry. Do not
//     reorder after review; extend append-only.
//   - Names are not unique: shapes whose trace direction is ambiguous appear
//     once per winding under the same name ("rectangle" below). The pointwise
//     comparison is start-point sensitive, so each winding needs its own
//     first-class entry.
//   - Every entry must have at least two distinct control points; a violation
//     is a data-entry bug and aborts the library build (see ErrBadDefinition).
//
// Determinism:
//   - Data here are immutable and reviewed; there is no runtime mutation path.
//
// Notes:
//   - Multi-leg swipes ("down-left", "left-right", …) name their legs in
//     drawing order. "diag-*" are single diagonal legs. Arrows are open
//     chevrons; triangles are the same chevrons closed back to their start.

package shapes

import "github.com/katalvlaran/unistroke/stroke"

// pt keeps the table terse; data rows stay aligned and free of field names.
func pt(x, y float64) stroke.Point {
	return stroke.Point{X: x, Y: y}
}

// builtinSpecs is the canonical library table, in classification scan order.
var builtinSpecs = []Definition{
	{Name: "down", Points: []stroke.Point{pt(0, 0), pt(0, 100)}},
	{Name: "down-left", Points: []stroke.Point{pt(0, 0), pt(0, 100), pt(-100, 100)}},
	{Name: "down-right", Points: []stroke.Point{pt(0, 0), pt(0, 100), pt(100, 100)}},
	{Name: "down-up", Points: []stroke.Point{pt(0, 0), pt(0, 100), pt(0, 0)}},

	{Name: "left", Points: []stroke.Point{pt(0, 0), pt(-100, 0)}},
	{Name: "left-down", Points: []stroke.Point{pt(0, 0), pt(-100, 0), pt(-100, 100)}},
	{Name: "left-right", Points: []stroke.Point{pt(0, 0), pt(-100, 0), pt(0, 0)}},
	{Name: "left-up", Points: []stroke.Point{pt(0, 0), pt(-100, 0), pt(-100, -100)}},

	{Name: "right", Points: []stroke.Point{pt(0, 0), pt(100, 0)}},
	{Name: "right-down", Points: []stroke.Point{pt(0, 0), pt(100, 0), pt(100, 100)}},
	{Name: "right-left", Points: []stroke.Point{pt(0, 0), pt(100, 0), pt(0, 0)}},
	{Name: "right-up", Points: []stroke.Point{pt(0, 0), pt(100, 0), pt(100, -100)}},

	{Name: "up", Points: []stroke.Point{pt(0, 0), pt(0, -100)}},
	{Name: "up-down", Points: []stroke.Point{pt(0, 0), pt(0, -100), pt(0, 0)}},
	{Name: "up-left", Points: []stroke.Point{pt(0, 0), pt(0, -100), pt(-100, -100)}},
	{Name: "up-right", Points: []stroke.Point{pt(0, 0), pt(0, -100), pt(100, -100)}},

	{Name: "diag-downleft", Points: []stroke.Point{pt(0, 0), pt(-100, 100)}},
	{Name: "diag-downright", Points: []stroke.Point{pt(0, 0), pt(100, 100)}},
	{Name: "diag-upleft", Points: []stroke.Point{pt(0, 0), pt(-100, -100)}},
	{Name: "diag-upright", Points: []stroke.Point{pt(0, 0), pt(100, -100)}},

	{Name: "rectangle", Points: []stroke.Point{pt(0, 0), pt(100, 0), pt(100, 100), pt(0, 100)}},
	{Name: "rectangle", Points: []stroke.Point{pt(0, 0), pt(0, 100), pt(100, 100), pt(100, 0)}},

	{Name: "arrow-up", Points: []stroke.Point{pt(0, 100), pt(50, 0), pt(100, 100)}},
	{Name: "arrow-down", Points: []stroke.Point{pt(0, 0), pt(50, 100), pt(100, 0)}},
	{Name: "arrow-left", Points: []stroke.Point{pt(100, 0), pt(0, 50), pt(100, 100)}},
	{Name: "arrow-right", Points: []stroke.Point{pt(0, 0), pt(100, 50), pt(0, 100)}},

	{Name: "tri-up", Points: []stroke.Point{pt(0, 100), pt(50, 0), pt(100, 100), pt(0, 100)}},
	{Name: "tri-down", Points: []stroke.Point{pt(0, 0), pt(50, 100), pt(100, 0), pt(0, 0)}},
	{Name: "tri-left", Points: []stroke.Point{pt(100, 0), pt(0, 50), pt(100, 100), pt(100, 0)}},
	{Name: "tri-right", Points: []stroke.Point{pt(0, 0), pt(100, 50), pt(0, 100), pt(0, 0)}},

	{Name: "n", Points: []stroke.Point{pt(0, 100), pt(0, 0), pt(100, 100), pt(100, 0)}},
	{Name: "t", Points: []stroke.Point{pt(0, 0), pt(100, 0), pt(50, 0), pt(50, 100)}},
	{Name: "x", Points: []stroke.Point{pt(0, 0), pt(100, 100), pt(100, 0), pt(0, 100)}},
	{Name: "z", Points: []stroke.Point{pt(0, 0), pt(100, 0), pt(0, 100), pt(100, 100)}},
}
