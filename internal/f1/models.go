package f1

import "time"

// Wire types for the timing API. Times come over the wire in milliseconds of
// session time; they are converted to time.Duration at the package boundary.

type sessionJSON struct {
	SessionKey  int    `json:"session_key"`
	Year        int    `json:"year"`
	EventName   string `json:"event_name"`
	SessionType string `json:"session_type"`
	SessionName string `json:"session_name"`
	CircuitKey  int    `json:"circuit_key"`
	CircuitName string `json:"circuit_name"`
}

type driverJSON struct {
	Code         string `json:"driver_code"`
	Number       int    `json:"driver_number"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	TeamName     string `json:"team_name"`
	TeamColour   string `json:"team_colour"`
	HeadshotURL  string `json:"headshot_url"`
	CountryCode  string `json:"country_code"`
	BroadcastKey string `json:"broadcast_name"`
}

type lapJSON struct {
	DriverCode     string `json:"driver_code"`
	LapNumber      int    `json:"lap_number"`
	LapTimeMS      int64  `json:"lap_time_ms"`
	IsPersonalBest bool   `json:"is_personal_best"`
}

type carSampleJSON struct {
	SessionTimeMS int64   `json:"session_time_ms"`
	Speed         float64 `json:"speed"`
	Throttle      float64 `json:"throttle"`
	Brake         float64 `json:"brake"`
	Gear          int     `json:"n_gear"`
	RPM           int     `json:"rpm"`
	DRS           bool    `json:"drs"`
}

type locationSampleJSON struct {
	SessionTimeMS int64   `json:"session_time_ms"`
	X             float64 `json:"x"`
	Y             float64 `json:"y"`
}

type circuitJSON struct {
	CircuitKey int          `json:"circuit_key"`
	Name       string       `json:"name"`
	Corners    []cornerJSON `json:"corners"`
}

type cornerJSON struct {
	Number   int     `json:"number"`
	Distance float64 `json:"distance"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
}

// Driver is a session participant.
type Driver struct {
	Code       string
	Number     int
	FirstName  string
	LastName   string
	TeamName   string
	TeamColour string
}

// Lap is one completed lap by one driver. Immutable once retrieved.
type Lap struct {
	DriverCode     string
	LapNumber      int
	LapTime        time.Duration
	IsPersonalBest bool

	session *Session
}

// CornerMarker is a labelled reference point on the circuit. Corner numbers
// follow track order.
type CornerMarker struct {
	Number   int
	Distance float64
	X        float64
	Y        float64
}
