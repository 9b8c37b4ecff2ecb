package telemetry

import "testing"

func squarePath() []Point {
	return []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
}

func TestCloseLoop(t *testing.T) {
	closed := CloseLoop(squarePath())

	if len(closed) != 5 {
		t.Fatalf("expected 5 positions, got %d", len(closed))
	}

	if closed[4] != closed[0] {
		t.Errorf("expected final position to equal the first, got %+v", closed[4])
	}

	if len(CloseLoop(nil)) != 0 {
		t.Error("closing an empty path should produce an empty path")
	}
}

func TestBuildSegments(t *testing.T) {
	path := squarePath()
	labels := []Label{Driver1, Driver2, Driver1, Driver2}

	segments := BuildSegments(path, labels)

	if len(segments) != len(path) {
		t.Fatalf("expected %d segments, got %d", len(path), len(segments))
	}

	labelled := 0

	for _, segment := range segments {
		if segment.Labelled {
			labelled++
		}
	}

	if labelled != len(path)-1 {
		t.Errorf("expected %d labelled segments, got %d", len(path)-1, labelled)
	}

	closing := segments[len(segments)-1]

	if closing.Labelled {
		t.Error("closing segment must not carry a label")
	}

	if closing.From != path[len(path)-1] || closing.To != path[0] {
		t.Errorf("closing segment should join last point back to first, got %+v", closing)
	}

	for i := 0; i < len(segments)-1; i++ {
		if segments[i].Label != labels[i] {
			t.Errorf("segment %d: expected label %s, got %s", i, labels[i], segments[i].Label)
		}
	}
}

func TestBuildSegmentsDegenerate(t *testing.T) {
	if segments := BuildSegments(nil, nil); segments != nil {
		t.Errorf("expected no segments for empty path, got %d", len(segments))
	}
}
