package telemetry

// Label says which driver held the speed advantage at a grid point.
type Label int

const (
	Driver1 Label = iota
	Driver2
)

func (l Label) String() string {
	if l == Driver1 {
		return "driver 1"
	}

	return "driver 2"
}

// ClassifyDominance labels each grid point with the faster driver. Driver 1
// must be strictly faster to take a point; equal speeds go to driver 2.
func ClassifyDominance(speed1, speed2 []float64) []Label {
	labels := make([]Label, len(speed1))

	for i := range speed1 {
		if speed1[i] > speed2[i] {
			labels[i] = Driver1
		} else {
			labels[i] = Driver2
		}
	}

	return labels
}
