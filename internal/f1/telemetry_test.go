package f1

import (
	"math"
	"testing"
)

func TestMergeTelemetryDistance(t *testing.T) {
	// constant 180km/h (50m/s) sampled every 200ms travels 10m per sample
	car := []carSampleJSON{
		{SessionTimeMS: 0, Speed: 180},
		{SessionTimeMS: 200, Speed: 180},
		{SessionTimeMS: 400, Speed: 180},
	}

	locations := []locationSampleJSON{
		{SessionTimeMS: 0, X: 0, Y: 0},
		{SessionTimeMS: 200, X: 10, Y: 0},
		{SessionTimeMS: 400, X: 20, Y: 0},
	}

	trace := mergeTelemetry(car, locations)

	if len(trace) != 3 {
		t.Fatalf("expected 3 samples, got %d", len(trace))
	}

	expectedDistances := []float64{0, 10, 20}

	for i, sample := range trace {
		if math.Abs(sample.Distance-expectedDistances[i]) > 1e-9 {
			t.Errorf("sample %d: expected distance %f, got %f", i, expectedDistances[i], sample.Distance)
		}
	}
}

func TestMergeTelemetryNearestPosition(t *testing.T) {
	// car samples at 4Hz, positions at a coarser, offset rate
	car := []carSampleJSON{
		{SessionTimeMS: 0, Speed: 100},
		{SessionTimeMS: 250, Speed: 100},
		{SessionTimeMS: 500, Speed: 100},
		{SessionTimeMS: 750, Speed: 100},
	}

	locations := []locationSampleJSON{
		{SessionTimeMS: 100, X: 1},
		{SessionTimeMS: 600, X: 2},
	}

	trace := mergeTelemetry(car, locations)

	expectedX := []float64{1, 1, 2, 2}

	for i, sample := range trace {
		if sample.X != expectedX[i] {
			t.Errorf("sample %d: expected x %f, got %f", i, expectedX[i], sample.X)
		}
	}
}

func TestMergeTelemetryChannels(t *testing.T) {
	car := []carSampleJSON{
		{SessionTimeMS: 0, Speed: 287.5, Throttle: 100, Brake: 0, Gear: 8, RPM: 11200, DRS: true},
	}

	locations := []locationSampleJSON{
		{SessionTimeMS: 0, X: 5, Y: -3},
	}

	sample := mergeTelemetry(car, locations)[0]

	if sample.Speed != 287.5 || sample.Throttle != 100 || sample.Gear != 8 || sample.RPM != 11200 || !sample.DRS {
		t.Errorf("channels not carried through: %+v", sample)
	}

	if sample.X != 5 || sample.Y != -3 {
		t.Errorf("position not carried through: %+v", sample)
	}
}
