package f1

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var (
	ErrSessionNotFound = errors.New("f1: session not found")
	ErrDriverNotFound  = errors.New("f1: driver not found")
	ErrLapNotFound     = errors.New("f1: lap not found")
)

// Session is one timed session of a race weekend, loaded once and read-only
// afterwards.
type Session struct {
	Key         int
	Year        int
	EventName   string
	SessionType string
	SessionName string
	CircuitKey  int
	CircuitName string

	client  *Client
	drivers []Driver
	laps    LapCollection
	corners []CornerMarker
	loaded  bool
}

// GetSession finds the session for a year, event name and session type code
// ("FP1".."FP3", "Q", "SQ", "S", "R").
func (c *Client) GetSession(ctx context.Context, year int, event, sessionType string) (*Session, error) {
	query := url.Values{}
	query.Set("year", strconv.Itoa(year))
	query.Set("event_name", event)
	query.Set("session_type", sessionType)

	var sessions []sessionJSON

	if err := c.get(ctx, "sessions", query, &sessions); err != nil {
		return nil, err
	}

	if len(sessions) == 0 {
		return nil, errors.Wrapf(ErrSessionNotFound, "%d %s %s", year, event, sessionType)
	}

	found := sessions[0]

	return &Session{
		Key:         found.SessionKey,
		Year:        found.Year,
		EventName:   found.EventName,
		SessionType: found.SessionType,
		SessionName: found.SessionName,
		CircuitKey:  found.CircuitKey,
		CircuitName: found.CircuitName,
		client:      c,
	}, nil
}

// Load pulls the session's drivers, laps and circuit info. It must be called
// before any of the accessors below.
func (s *Session) Load(ctx context.Context) error {
	query := url.Values{}
	query.Set("session_key", strconv.Itoa(s.Key))

	var drivers []driverJSON

	if err := s.client.get(ctx, "drivers", query, &drivers); err != nil {
		return err
	}

	for _, driver := range drivers {
		s.drivers = append(s.drivers, Driver{
			Code:       driver.Code,
			Number:     driver.Number,
			FirstName:  driver.FirstName,
			LastName:   driver.LastName,
			TeamName:   driver.TeamName,
			TeamColour: driver.TeamColour,
		})
	}

	var laps []lapJSON

	if err := s.client.get(ctx, "laps", query, &laps); err != nil {
		return err
	}

	for _, lap := range laps {
		s.laps = append(s.laps, Lap{
			DriverCode:     lap.DriverCode,
			LapNumber:      lap.LapNumber,
			LapTime:        time.Duration(lap.LapTimeMS) * time.Millisecond,
			IsPersonalBest: lap.IsPersonalBest,
			session:        s,
		})
	}

	circuitQuery := url.Values{}
	circuitQuery.Set("circuit_key", strconv.Itoa(s.CircuitKey))
	circuitQuery.Set("year", strconv.Itoa(s.Year))

	var circuits []circuitJSON

	if err := s.client.get(ctx, "circuits", circuitQuery, &circuits); err != nil {
		return err
	}

	if len(circuits) > 0 {
		for _, corner := range circuits[0].Corners {
			s.corners = append(s.corners, CornerMarker{
				Number:   corner.Number,
				Distance: corner.Distance,
				X:        corner.X,
				Y:        corner.Y,
			})
		}
	} else {
		logrus.Warnf("No circuit info for circuit %d, plots will not have corner markers", s.CircuitKey)
	}

	s.loaded = true

	logrus.Infof("Loaded %d %s %s: %d drivers, %d laps, %d corners", s.Year, s.EventName, s.SessionName, len(s.drivers), len(s.laps), len(s.corners))

	return nil
}

// Laps returns every lap completed in the session.
func (s *Session) Laps() LapCollection {
	return s.laps
}

// CircuitInfo returns the circuit's corner markers in track order.
func (s *Session) CircuitInfo() []CornerMarker {
	return s.corners
}

// Driver looks a session participant up by their three-letter code.
func (s *Session) Driver(code string) (Driver, error) {
	for _, driver := range s.drivers {
		if driver.Code == code {
			return driver, nil
		}
	}

	return Driver{}, errors.Wrap(ErrDriverNotFound, code)
}

// LapCollection is an ordered set of laps which can be narrowed down to a
// driver, their fastest lap, or a specific lap number.
type LapCollection []Lap

func (l LapCollection) PickDriver(code string) LapCollection {
	var picked LapCollection

	for _, lap := range l {
		if lap.DriverCode == code {
			picked = append(picked, lap)
		}
	}

	return picked
}

// PickFastest returns the lap with the lowest lap time, ignoring laps without
// a time. Ties resolve to the earlier lap.
func (l LapCollection) PickFastest() (Lap, error) {
	var fastest Lap
	found := false

	for _, lap := range l {
		if lap.LapTime <= 0 {
			continue
		}

		if !found || lap.LapTime < fastest.LapTime {
			fastest = lap
			found = true
		}
	}

	if !found {
		return Lap{}, errors.Wrap(ErrLapNotFound, "no timed laps")
	}

	return fastest, nil
}

func (l LapCollection) PickLap(lapNumber int) (Lap, error) {
	for _, lap := range l {
		if lap.LapNumber == lapNumber {
			return lap, nil
		}
	}

	return Lap{}, errors.Wrapf(ErrLapNotFound, "lap %d", lapNumber)
}
