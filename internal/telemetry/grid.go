package telemetry

// GridSize is the number of points on the common distance grid. 1000 points
// is comfortably denser than the underlying ~4Hz telemetry over a lap.
const GridSize = 1000

// BuildCommonGrid returns GridSize linearly spaced distance values spanning
// the intersection of the two traces' distance ranges. The traces must be
// deduplicated. Returns ErrNoOverlap when the ranges do not intersect.
func BuildCommonGrid(t1, t2 Trace) ([]float64, error) {
	min1, max1, err := t1.DistanceRange()

	if err != nil {
		return nil, err
	}

	min2, max2, err := t2.DistanceRange()

	if err != nil {
		return nil, err
	}

	start := min1

	if min2 > start {
		start = min2
	}

	end := max1

	if max2 < end {
		end = max2
	}

	if start >= end {
		return nil, ErrNoOverlap
	}

	grid := make([]float64, GridSize)
	step := (end - start) / float64(GridSize-1)

	for i := range grid {
		grid[i] = start + float64(i)*step
	}

	// guard against floating point drift on the final point
	grid[GridSize-1] = end

	return grid, nil
}

// ResampleOnto picks, for every grid distance, the nearest sample of the
// trace, producing a trace indexed by the grid.
func (t Trace) ResampleOnto(grid []float64) (Trace, error) {
	if len(t) == 0 {
		return nil, ErrEmptyTrace
	}

	out := make(Trace, len(grid))

	for i, distance := range grid {
		idx, err := t.Nearest(distance)

		if err != nil {
			return nil, err
		}

		out[i] = t[idx]
	}

	return out, nil
}
