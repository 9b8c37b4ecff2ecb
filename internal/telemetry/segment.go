package telemetry

// Point is a position on the track map, in the timing system's world
// coordinates.
type Point struct {
	X float64
	Y float64
}

// Segment joins two consecutive path points. Labelled is false only for the
// synthetic segment that closes the loop, which has no classification.
type Segment struct {
	From     Point
	To       Point
	Label    Label
	Labelled bool
}

// CloseLoop appends the first point to the end of the path so the circuit
// outline joins back on itself.
func CloseLoop(path []Point) []Point {
	if len(path) == 0 {
		return path
	}

	closed := make([]Point, len(path)+1)
	copy(closed, path)
	closed[len(path)] = path[0]

	return closed
}

// BuildSegments converts a grid-aligned path and its per-point dominance
// labels into drawable segments. The path is closed first, giving len(path)
// segments of which the final closing segment is unlabelled; label[i] colours
// the segment leaving point i.
func BuildSegments(path []Point, labels []Label) []Segment {
	closed := CloseLoop(path)

	if len(closed) < 2 {
		return nil
	}

	segments := make([]Segment, len(closed)-1)

	for i := 0; i < len(closed)-1; i++ {
		segments[i] = Segment{
			From: closed[i],
			To:   closed[i+1],
		}

		if i < len(labels) && i < len(closed)-2 {
			segments[i].Label = labels[i]
			segments[i].Labelled = true
		}
	}

	return segments
}
