package lapdelta

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/adriadam10/lapdelta/internal/telemetry"
)

// WriteSummary prints the lap time comparison in the terminal.
func (r *Result) WriteSummary(w io.Writer) {
	heading := color.New(color.Bold)
	faster := color.New(color.FgGreen)
	slower := color.New(color.FgRed)

	_, _ = heading.Fprintf(w, "%s - %s\n", r.Event, r.SessionName)

	driver1Line := fmt.Sprintf("%s (%s) lap %d: %s\n", r.Driver1.LastName, r.Driver1.Code, r.Lap1.LapNumber, telemetry.FormatLapTime(r.Lap1.LapTime))
	driver2Line := fmt.Sprintf("%s (%s) lap %d: %s\n", r.Driver2.LastName, r.Driver2.Code, r.Lap2.LapNumber, telemetry.FormatLapTime(r.Lap2.LapTime))

	if r.Delta < 0 {
		_, _ = faster.Fprint(w, driver1Line)
		_, _ = slower.Fprint(w, driver2Line)
	} else {
		_, _ = slower.Fprint(w, driver1Line)
		_, _ = faster.Fprint(w, driver2Line)
	}

	fmt.Fprintf(w, "Difference in lap time: %+.3f seconds\n", r.Delta)
	fmt.Fprintf(w, "Track map:  %s\n", r.TrackMapPath)
	fmt.Fprintf(w, "Dominance:  %s\n", r.DominancePath)
	fmt.Fprintf(w, "Traces:     %s\n", r.TracesPath)
}
