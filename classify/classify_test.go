package classify_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/unistroke/classify"
	"github.com/katalvlaran/unistroke/shapes"
	"github.com/katalvlaran/unistroke/stroke"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStroke_DegenerateInputs verifies the no-label outcomes: an empty
// stroke, a lone point, and a motionless run of identical points.
func TestStroke_DegenerateInputs(t *testing.T) {
	cases := []struct {
		name   string
		points []stroke.Point
	}{
		{"Empty", nil},
		{"SinglePoint", []stroke.Point{{X: 42, Y: 42}}},
		{"IdenticalTriple", []stroke.Point{{X: 42, Y: 42}, {X: 42, Y: 42}, {X: 42, Y: 42}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			name, ok := classify.Stroke(tc.points)
			assert.False(t, ok, "degenerate stroke must yield no label")
			assert.Empty(t, name)
		})
	}
}

// TestStroke_CanonicalShapes runs the product scenarios: cardinal swipes,
// diagonals, and both windings of the rectangle.
func TestStroke_CanonicalShapes(t *testing.T) {
	cases := []struct {
		want   string
		points []stroke.Point
	}{
		{"down", []stroke.Point{{X: 0, Y: 0}, {X: 0, Y: 100}}},
		{"up", []stroke.Point{{X: 0, Y: 0}, {X: 0, Y: -100}}},
		{"left", []stroke.Point{{X: 0, Y: 0}, {X: -100, Y: 0}}},
		{"right", []stroke.Point{{X: 0, Y: 0}, {X: 100, Y: 0}}},
		{"diag-downright", []stroke.Point{{X: 0, Y: 0}, {X: 100, Y: 100}}},
		{"diag-upleft", []stroke.Point{{X: 0, Y: 0}, {X: -100, Y: -100}}},
		{"rectangle", []stroke.Point{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}, {X: 0, Y: 100}}},
		{"rectangle", []stroke.Point{{X: 0, Y: 0}, {X: 0, Y: 100}, {X: 100, Y: 100}, {X: 100, Y: 0}}},
		{"z", []stroke.Point{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 0, Y: 100}, {X: 100, Y: 100}}},
		{"n", []stroke.Point{{X: 0, Y: 100}, {X: 0, Y: 0}, {X: 100, Y: 100}, {X: 100, Y: 0}}},
	}
	for _, tc := range cases {
		name, ok := classify.Stroke(tc.points)
		require.True(t, ok)
		assert.Equal(t, tc.want, name)
	}
}

// TestStroke_ScaleAndTranslationInvariance checks the same shape drawn
// elsewhere at another size resolves to the same label.
func TestStroke_ScaleAndTranslationInvariance(t *testing.T) {
	small, ok := classify.Stroke([]stroke.Point{{X: 0, Y: 0}, {X: 0, Y: 100}})
	require.True(t, ok)
	large, ok := classify.Stroke([]stroke.Point{{X: 1000, Y: 1000}, {X: 1000, Y: 1300}})
	require.True(t, ok)

	assert.Equal(t, "down", small)
	assert.Equal(t, small, large)
}

// TestStroke_SloppyDrawing feeds a hand-drawn-style wobbly downward drag:
// recognition must tolerate jitter, not just the canonical polylines.
func TestStroke_SloppyDrawing(t *testing.T) {
	wobbly := []stroke.Point{
		{X: 100, Y: 10},
		{X: 103, Y: 60},
		{X: 97, Y: 130},
		{X: 102, Y: 210},
		{X: 99, Y: 280},
		{X: 101, Y: 350},
	}

	name, ok := classify.Stroke(wobbly)
	require.True(t, ok)
	assert.Equal(t, "down", name)
}

// TestStroke_Determinism verifies repeated classification of the identical
// input always returns the identical label.
func TestStroke_Determinism(t *testing.T) {
	points := []stroke.Point{{X: 0, Y: 0}, {X: 100, Y: 50}, {X: 0, Y: 100}}

	first, ok := classify.Stroke(points)
	require.True(t, ok)
	for i := 0; i < 25; i++ {
		name, ok := classify.Stroke(points)
		require.True(t, ok)
		require.Equal(t, first, name)
	}
}

// TestClassifier_InjectedLibrary exercises the dependency-injected path
// with a private two-template library.
func TestClassifier_InjectedLibrary(t *testing.T) {
	lib, err := shapes.New([]shapes.Definition{
		{Name: "flick-down", Points: []stroke.Point{{X: 0, Y: 0}, {X: 0, Y: 100}}},
		{Name: "flick-right", Points: []stroke.Point{{X: 0, Y: 0}, {X: 100, Y: 0}}},
	})
	require.NoError(t, err)
	c := classify.New(lib)

	name, ok := c.Classify([]stroke.Point{{X: 7, Y: 3}, {X: 7, Y: 250}})
	require.True(t, ok)
	assert.Equal(t, "flick-down", name)

	name, ok = c.Classify([]stroke.Point{{X: 0, Y: 5}, {X: 400, Y: 5}})
	require.True(t, ok)
	assert.Equal(t, "flick-right", name)
}

// TestStroke_AlwaysAnswers confirms there is no rejection threshold: even a
// shape unlike any template still gets the nearest name.
func TestStroke_AlwaysAnswers(t *testing.T) {
	odd := []stroke.Point{
		{X: 0, Y: 0}, {X: 30, Y: 80}, {X: -50, Y: 20}, {X: 55, Y: 25}, {X: -40, Y: 75},
	}

	name, ok := classify.Stroke(odd)
	assert.True(t, ok, "every non-degenerate stroke is assigned a label")
	assert.NotEmpty(t, name)
}

// TestStroke_ConcurrentCalls runs classification from many goroutines at
// once; results must match the serial answer with no synchronization.
func TestStroke_ConcurrentCalls(t *testing.T) {
	points := []stroke.Point{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}, {X: 0, Y: 100}}
	want, ok := classify.Stroke(points)
	require.True(t, ok)

	const goroutines = 100
	results := make([]string, goroutines)

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func(id int) {
			defer wg.Done()
			name, ok := classify.Stroke(points)
			if ok {
				results[id] = name
			}
		}(i)
	}
	wg.Wait()

	for i, name := range results {
		require.Equal(t, want, name, "goroutine %d disagreed with serial result", i)
	}
}
