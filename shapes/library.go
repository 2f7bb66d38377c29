package shapes

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/unistroke/stroke"
)

// New builds a Library from definitions, preserving their order. Every
// definition runs through stroke.Describe, so templates live in the same
// normalized, fixed-resolution space as classified strokes.
//
// Any definition that fails to describe aborts construction with
// ErrBadDefinition wrapping the offending name and index — a partially
// built library would silently bias every nearest-template scan, so there
// is no skip-and-continue path.
func New(defs []Definition) (*Library, error) {
	if len(defs) == 0 {
		return nil, ErrNoDefinitions
	}

	templates := make([]Template, 0, len(defs))
	for i, def := range defs {
		desc, err := stroke.Describe(def.Points)
		if err != nil {
			return nil, fmt.Errorf("shapes: definition %d (%q): %w", i, def.Name, ErrBadDefinition)
		}
		templates = append(templates, Template{Name: def.Name, Shape: desc})
	}

	return &Library{templates: templates}, nil
}

var (
	builtinOnce sync.Once
	builtin     *Library
)

// Builtin returns the process-wide library of canonical shapes, building it
// on first use. The build happens at most once even when concurrent callers
// race to trigger it; every later call returns the same read-only value
// without synchronization.
//
// The table in shapes_spec.go is reviewed static data, so a failing build
// is a programming error and panics rather than surfacing an error every
// caller would have to treat as impossible.
func Builtin() *Library {
	builtinOnce.Do(func() {
		lib, err := New(builtinSpecs)
		if err != nil {
			panic(err)
		}
		builtin = lib
	})

	return builtin
}

// Len reports the number of templates in the library.
func (l *Library) Len() int {
	return len(l.templates)
}

// Templates returns a copy of the library's templates in scan order. The
// copy keeps the Library immutable; callers may reorder or modify their
// slice freely.
func (l *Library) Templates() []Template {
	out := make([]Template, len(l.templates))
	copy(out, l.templates)

	return out
}

// Nearest returns the template closest to desc under stroke.Descriptor's
// L1 distance, along with that distance. The scan walks templates in table
// order and keeps the first strict minimum, so equal distances resolve to
// the earlier entry — deterministic even for duplicate-named shapes.
//
// There is no rejection threshold: some template always wins, however far.
// Complexity: O(Len · Resolution).
func (l *Library) Nearest(desc *stroke.Descriptor) (Template, float64) {
	best := l.templates[0]
	bestDist := desc.Distance(&l.templates[0].Shape)
	for _, t := range l.templates[1:] {
		if d := desc.Distance(&t.Shape); d < bestDist {
			best, bestDist = t, d
		}
	}

	return best, bestDist
}
