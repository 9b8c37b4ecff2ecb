package telemetry

import (
	"fmt"
	"time"
)

// FormatLapTime renders a lap time as MM:SS.mmm, truncating below the
// millisecond.
func FormatLapTime(d time.Duration) string {
	d = d.Truncate(time.Millisecond)

	minutes := int(d / time.Minute)
	seconds := int((d % time.Minute) / time.Second)
	millis := int((d % time.Second) / time.Millisecond)

	return fmt.Sprintf("%02d:%02d.%03d", minutes, seconds, millis)
}

// LapDelta is the signed gap between two lap times in seconds, positive when
// the first lap is slower.
func LapDelta(d1, d2 time.Duration) float64 {
	return (d1 - d2).Seconds()
}
