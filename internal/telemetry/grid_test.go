package telemetry

import (
	"errors"
	"math"
	"testing"
)

func TestBuildCommonGrid(t *testing.T) {
	trace1 := traceFromDistances(0, 50, 100)
	trace2 := traceFromDistances(20, 70, 120)

	grid, err := BuildCommonGrid(trace1, trace2)

	if err != nil {
		t.Fatal(err)
	}

	if len(grid) != GridSize {
		t.Fatalf("expected %d grid points, got %d", GridSize, len(grid))
	}

	if grid[0] != 20 {
		t.Errorf("expected grid to start at 20, got %f", grid[0])
	}

	if grid[len(grid)-1] != 100 {
		t.Errorf("expected grid to end at 100, got %f", grid[len(grid)-1])
	}

	step := (100.0 - 20.0) / float64(GridSize-1)

	for i := 1; i < len(grid); i++ {
		if grid[i] <= grid[i-1] {
			t.Fatalf("grid not strictly increasing at %d", i)
		}

		if math.Abs((grid[i]-grid[i-1])-step) > 1e-6 {
			t.Fatalf("uneven spacing at %d: %f", i, grid[i]-grid[i-1])
		}
	}
}

type gridOverlapTest struct {
	name   string
	range1 []float64
	range2 []float64
}

func TestBuildCommonGridNoOverlap(t *testing.T) {
	gridOverlapTests := []gridOverlapTest{
		{
			name:   "Disjoint ranges",
			range1: []float64{0, 100},
			range2: []float64{150, 250},
		},
		{
			name:   "Touching ranges",
			range1: []float64{0, 100},
			range2: []float64{100, 200},
		},
	}

	for _, test := range gridOverlapTests {
		t.Run(test.name, func(t *testing.T) {
			_, err := BuildCommonGrid(traceFromDistances(test.range1...), traceFromDistances(test.range2...))

			if !errors.Is(err, ErrNoOverlap) {
				t.Errorf("expected ErrNoOverlap, got %v", err)
			}
		})
	}
}

func TestBuildCommonGridEmptyTrace(t *testing.T) {
	_, err := BuildCommonGrid(Trace{}, traceFromDistances(0, 100))

	if !errors.Is(err, ErrEmptyTrace) {
		t.Errorf("expected ErrEmptyTrace, got %v", err)
	}
}

func TestResampleOnto(t *testing.T) {
	trace := Trace{
		{Distance: 0, Speed: 100},
		{Distance: 10, Speed: 200},
		{Distance: 20, Speed: 300},
	}

	resampled, err := trace.ResampleOnto([]float64{2, 9, 13, 20})

	if err != nil {
		t.Fatal(err)
	}

	expectedSpeeds := []float64{100, 200, 200, 300}

	for i, sample := range resampled {
		if sample.Speed != expectedSpeeds[i] {
			t.Errorf("grid point %d: expected speed %f, got %f", i, expectedSpeeds[i], sample.Speed)
		}
	}
}

func TestResampleOntoEmptyTrace(t *testing.T) {
	_, err := Trace{}.ResampleOnto([]float64{0, 1})

	if !errors.Is(err, ErrEmptyTrace) {
		t.Errorf("expected ErrEmptyTrace, got %v", err)
	}
}
