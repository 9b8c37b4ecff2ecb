package lapdelta

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/adriadam10/lapdelta/internal/f1"
)

func TestWriteSummary(t *testing.T) {
	result := &Result{
		Event:       "Abu Dhabi Grand Prix",
		SessionName: "Qualifying",
		Driver1:     f1.Driver{Code: "VER", LastName: "Verstappen"},
		Driver2:     f1.Driver{Code: "HAM", LastName: "Hamilton"},
		Lap1:        f1.Lap{LapNumber: 2, LapTime: 82109 * time.Millisecond},
		Lap2:        f1.Lap{LapNumber: 2, LapTime: 82480 * time.Millisecond},
		Delta:       -0.371,
	}

	var buf bytes.Buffer

	result.WriteSummary(&buf)

	out := buf.String()

	for _, expected := range []string{"01:22.109", "01:22.480", "-0.371 seconds", "Verstappen", "Hamilton"} {
		if !strings.Contains(out, expected) {
			t.Errorf("summary missing %q:\n%s", expected, out)
		}
	}
}
