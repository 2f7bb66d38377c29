// Package shapes defines the template types and sentinel errors for the
// shape library.
package shapes

import (
	"errors"

	"github.com/katalvlaran/unistroke/stroke"
)

// Definition is one canonical shape as authored: a name plus the ordered
// control points of a representative polyline. Definitions are trusted,
// reviewed data — the library's construction treats a degenerate one as a
// fatal bug, not as input to tolerate.
type Definition struct {
	Name   string
	Points []stroke.Point
}

// Template is one entry of a built Library: a name plus the Descriptor
// obtained from its Definition. Names are not unique — shapes with an
// ambiguous trace direction contribute one Template per winding.
type Template struct {
	Name  string
	Shape stroke.Descriptor
}

// Library is an ordered, immutable collection of Templates. Order is
// semantic: Nearest resolves distance ties to the earliest entry. A Library
// is safe for unsynchronized concurrent use once constructed.
type Library struct {
	templates []Template
}

// Sentinel errors for library construction.
var (
	// ErrBadDefinition indicates a shape definition whose control polyline
	// cannot be described (fewer than two distinct points). Construction
	// aborts on the first such entry.
	// Usage: if errors.Is(err, shapes.ErrBadDefinition) { /* fix the table */ }.
	ErrBadDefinition = errors.New("shapes: definition needs at least two distinct control points")

	// ErrNoDefinitions indicates an attempt to build a library from an empty
	// definition list. Every constructed Library holds at least one template,
	// which is what lets Nearest always return a winner.
	ErrNoDefinitions = errors.New("shapes: library needs at least one definition")
)
