package classify

import (
	"github.com/katalvlaran/unistroke/shapes"
	"github.com/katalvlaran/unistroke/stroke"
)

// Classifier names strokes against one shape library. The library is an
// injected read-only dependency: a Classifier never mutates it, so any
// number of Classifiers may share one, and one Classifier may serve any
// number of goroutines.
type Classifier struct {
	lib *shapes.Library
}

// New returns a Classifier over lib. Pass shapes.Builtin() for the standard
// shape set, or a shapes.New library in tests that need a controlled table.
func New(lib *shapes.Library) *Classifier {
	return &Classifier{lib: lib}
}

// Classify runs the recognition pipeline on one stroke's raw samples, in
// temporal order, and returns the nearest template's name.
//
// ok is false only when the stroke is degenerate — fewer than two distinct
// points, or zero spatial extent — which is the everyday result of a click
// without a drag, not an error. Every other stroke is assigned the closest
// shape, however dissimilar; callers wanting rejection must layer their own
// policy on top.
func (c *Classifier) Classify(points []stroke.Point) (name string, ok bool) {
	desc, err := stroke.Describe(points)
	if err != nil {
		return "", false
	}

	tmpl, _ := c.lib.Nearest(&desc)

	return tmpl.Name, true
}

// Stroke classifies points against the built-in library. Equivalent to
// New(shapes.Builtin()).Classify(points).
func Stroke(points []stroke.Point) (name string, ok bool) {
	return New(shapes.Builtin()).Classify(points)
}
