// Package telemetry aligns unevenly sampled car telemetry from two laps onto
// a shared distance axis so the laps can be compared point by point.
package telemetry

import (
	"errors"
	"math"
	"time"
)

var (
	ErrEmptyTrace = errors.New("telemetry: empty trace")
	ErrNoOverlap  = errors.New("telemetry: traces have no comparable distance overlap")
)

// Sample is one telemetry reading. Distance is metres travelled from the
// start of the lap, derived from session time and speed by the data layer.
type Sample struct {
	Distance    float64
	X           float64
	Y           float64
	Speed       float64
	Throttle    float64
	Brake       float64
	Gear        int
	RPM         int
	DRS         bool
	SessionTime time.Duration
}

// Trace is the ordered telemetry of a single lap, sorted by increasing
// distance. Raw traces may repeat a distance value where the source streams
// were merged; Dedupe must be applied before any distance-indexed lookup.
type Trace []Sample

// Dedupe returns a trace with strictly unique distance values, keeping the
// first occurrence of each and preserving relative order.
func (t Trace) Dedupe() Trace {
	if len(t) == 0 {
		return t
	}

	out := make(Trace, 0, len(t))
	seen := make(map[float64]bool, len(t))

	for _, sample := range t {
		if seen[sample.Distance] {
			continue
		}

		seen[sample.Distance] = true
		out = append(out, sample)
	}

	return out
}

// Nearest returns the index of the sample whose distance is closest to
// target. Equidistant candidates resolve to the lowest index.
func (t Trace) Nearest(target float64) (int, error) {
	if len(t) == 0 {
		return 0, ErrEmptyTrace
	}

	best := 0
	bestDelta := math.Abs(t[0].Distance - target)

	for i := 1; i < len(t); i++ {
		delta := math.Abs(t[i].Distance - target)

		if delta < bestDelta {
			best = i
			bestDelta = delta
		}
	}

	return best, nil
}

// DistanceRange returns the first and last distance values of the trace.
func (t Trace) DistanceRange() (min, max float64, err error) {
	if len(t) == 0 {
		return 0, 0, ErrEmptyTrace
	}

	return t[0].Distance, t[len(t)-1].Distance, nil
}

// Speeds returns the speed channel of the trace.
func (t Trace) Speeds() []float64 {
	speeds := make([]float64, len(t))

	for i, sample := range t {
		speeds[i] = sample.Speed
	}

	return speeds
}

// Positions returns the (x, y) path of the trace.
func (t Trace) Positions() []Point {
	points := make([]Point, len(t))

	for i, sample := range t {
		points[i] = Point{X: sample.X, Y: sample.Y}
	}

	return points
}
