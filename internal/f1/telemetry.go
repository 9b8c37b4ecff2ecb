package f1

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/adriadam10/lapdelta/internal/telemetry"
)

var ErrMissingTelemetry = errors.New("f1: required telemetry channels are missing")

// Telemetry fetches the lap's car channels and position stream and merges
// them into a single trace. Positions are matched to car samples by nearest
// session time; distance is the running integral of speed over the sample
// interval.
func (l Lap) Telemetry(ctx context.Context) (telemetry.Trace, error) {
	if l.session == nil {
		return nil, errors.New("f1: lap is not attached to a session")
	}

	query := url.Values{}
	query.Set("session_key", strconv.Itoa(l.session.Key))
	query.Set("driver_code", l.DriverCode)
	query.Set("lap_number", strconv.Itoa(l.LapNumber))

	var car []carSampleJSON

	if err := l.session.client.get(ctx, "car_data", query, &car); err != nil {
		return nil, err
	}

	var locations []locationSampleJSON

	if err := l.session.client.get(ctx, "location", query, &locations); err != nil {
		return nil, err
	}

	if len(car) == 0 {
		return nil, errors.Wrapf(ErrMissingTelemetry, "no car data for %s lap %d", l.DriverCode, l.LapNumber)
	}

	if len(locations) == 0 {
		return nil, errors.Wrapf(ErrMissingTelemetry, "no position data for %s lap %d", l.DriverCode, l.LapNumber)
	}

	trace := mergeTelemetry(car, locations)

	logrus.Debugf("Built telemetry for %s lap %d: %d samples over %.0fm", l.DriverCode, l.LapNumber, len(trace), trace[len(trace)-1].Distance)

	return trace, nil
}

// mergeTelemetry walks the car samples in session-time order, pairing each
// with the nearest position sample. Both input streams are sorted by session
// time, so the position cursor only ever moves forward.
func mergeTelemetry(car []carSampleJSON, locations []locationSampleJSON) telemetry.Trace {
	trace := make(telemetry.Trace, len(car))

	locIdx := 0
	distance := 0.0

	for i, sample := range car {
		for locIdx+1 < len(locations) && nearerTo(sample.SessionTimeMS, locations[locIdx+1], locations[locIdx]) {
			locIdx++
		}

		if i > 0 {
			dt := time.Duration(sample.SessionTimeMS-car[i-1].SessionTimeMS) * time.Millisecond

			// speed is km/h, distance metres
			distance += sample.Speed / 3.6 * dt.Seconds()
		}

		trace[i] = telemetry.Sample{
			Distance:    distance,
			X:           locations[locIdx].X,
			Y:           locations[locIdx].Y,
			Speed:       sample.Speed,
			Throttle:    sample.Throttle,
			Brake:       sample.Brake,
			Gear:        sample.Gear,
			RPM:         sample.RPM,
			DRS:         sample.DRS,
			SessionTime: time.Duration(sample.SessionTimeMS) * time.Millisecond,
		}
	}

	return trace
}

func nearerTo(timeMS int64, candidate, current locationSampleJSON) bool {
	candidateDelta := candidate.SessionTimeMS - timeMS

	if candidateDelta < 0 {
		candidateDelta = -candidateDelta
	}

	currentDelta := current.SessionTimeMS - timeMS

	if currentDelta < 0 {
		currentDelta = -currentDelta
	}

	return candidateDelta < currentDelta
}
