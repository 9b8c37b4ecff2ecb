// Package lapdelta compares two drivers' laps from a Formula 1 session and
// renders track map, telemetry trace and track dominance artifacts.
package lapdelta

import (
	"context"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/adriadam10/lapdelta/internal/f1"
	"github.com/adriadam10/lapdelta/internal/telemetry"
	"github.com/adriadam10/lapdelta/pkg/plot"
)

// Request describes one comparison. Lap 0 selects each driver's fastest lap;
// any other value selects that lap number for both drivers.
type Request struct {
	Year        int
	Event       string
	SessionType string
	Driver1     string
	Driver2     string
	Lap         int
}

// Result is everything a caller needs to report on a finished comparison.
type Result struct {
	ID uuid.UUID

	Event       string
	SessionName string

	Driver1 f1.Driver
	Driver2 f1.Driver
	Lap1    f1.Lap
	Lap2    f1.Lap

	// Delta is lap 1 minus lap 2, in seconds.
	Delta float64

	// Labels holds the per-grid-point dominance classification.
	Labels []telemetry.Label

	TrackMapPath  string
	DominancePath string
	TracesPath    string
}

// Comparison runs requests against a timing API client, one synchronous
// pipeline per call. It holds no per-request state.
type Comparison struct {
	client *f1.Client
	config *Config
}

func NewComparison(client *f1.Client, config *Config) *Comparison {
	return &Comparison{
		client: client,
		config: config,
	}
}

// Run executes the full pipeline: retrieve, deduplicate, resample, classify,
// segment, render.
func (c *Comparison) Run(ctx context.Context, request Request) (*Result, error) {
	runID := uuid.New()

	logger := logrus.WithField("run", runID.String())
	logger.Infof("Comparing %s and %s, %d %s %s", request.Driver1, request.Driver2, request.Year, request.Event, request.SessionType)

	session, err := c.client.GetSession(ctx, request.Year, request.Event, request.SessionType)

	if err != nil {
		return nil, err
	}

	if err := session.Load(ctx); err != nil {
		return nil, err
	}

	driver1, err := session.Driver(request.Driver1)

	if err != nil {
		return nil, err
	}

	driver2, err := session.Driver(request.Driver2)

	if err != nil {
		return nil, err
	}

	lap1, err := pickLap(session, request.Driver1, request.Lap)

	if err != nil {
		return nil, err
	}

	lap2, err := pickLap(session, request.Driver2, request.Lap)

	if err != nil {
		return nil, err
	}

	logger.Infof("%s lap %d: %s, %s lap %d: %s", driver1.Code, lap1.LapNumber, telemetry.FormatLapTime(lap1.LapTime), driver2.Code, lap2.LapNumber, telemetry.FormatLapTime(lap2.LapTime))

	trace1, err := lap1.Telemetry(ctx)

	if err != nil {
		return nil, err
	}

	trace2, err := lap2.Telemetry(ctx)

	if err != nil {
		return nil, err
	}

	trace1 = trace1.Dedupe()
	trace2 = trace2.Dedupe()

	grid, err := telemetry.BuildCommonGrid(trace1, trace2)

	if err != nil {
		return nil, errors.Wrapf(err, "laps of %s and %s", driver1.Code, driver2.Code)
	}

	resampled1, err := trace1.ResampleOnto(grid)

	if err != nil {
		return nil, err
	}

	resampled2, err := trace2.ResampleOnto(grid)

	if err != nil {
		return nil, err
	}

	labels := telemetry.ClassifyDominance(resampled1.Speeds(), resampled2.Speeds())
	segments := telemetry.BuildSegments(resampled1.Positions(), labels)

	result := &Result{
		ID:          runID,
		Event:       session.EventName,
		SessionName: session.SessionName,
		Driver1:     driver1,
		Driver2:     driver2,
		Lap1:        lap1,
		Lap2:        lap2,
		Delta:       telemetry.LapDelta(lap1.LapTime, lap2.LapTime),
		Labels:      labels,
	}

	if err := c.render(result, session, trace1, trace2, segments); err != nil {
		return nil, err
	}

	logger.Infof("Lap time delta %s - %s: %+.3fs", driver1.Code, driver2.Code, result.Delta)

	return result, nil
}

func pickLap(session *f1.Session, driverCode string, lapNumber int) (f1.Lap, error) {
	laps := session.Laps().PickDriver(driverCode)

	if len(laps) == 0 {
		return f1.Lap{}, errors.Wrapf(f1.ErrDriverNotFound, "%s has no laps in this session", driverCode)
	}

	if lapNumber > 0 {
		return laps.PickLap(lapNumber)
	}

	return laps.PickFastest()
}

func (c *Comparison) render(result *Result, session *f1.Session, trace1, trace2 telemetry.Trace, segments []telemetry.Segment) error {
	if err := os.MkdirAll(c.config.OutputDir, 0755); err != nil {
		return errors.Wrapf(err, "could not create output dir %s", c.config.OutputDir)
	}

	driver1Style := driverStyle(result.Driver1, result.Lap1, plot.DefaultDriver1Color)
	driver2Style := driverStyle(result.Driver2, result.Lap2, plot.DefaultDriver2Color)

	if driver1Style.Color == driver2Style.Color {
		// team mates share a colour, keep the lines tellable apart
		driver2Style.Color = plot.DefaultDriver2Color
	}

	corners := session.CircuitInfo()

	cornerLabels, err := placeCorners(corners, trace1)

	if err != nil {
		return err
	}

	mapTitle := fmt.Sprintf("%s Map", session.EventName)
	comparisonTitle := fmt.Sprintf("%d %s - %s - %s vs %s", session.Year, session.EventName, session.SessionName, result.Driver1.Code, result.Driver2.Code)

	result.TrackMapPath = c.artifactPath("trackmap", result.ID)

	trackMap := plot.NewTrackMapRenderer(trace1.Positions(), cornerLabels, mapTitle, c.config.TrackMapWidth)

	if err := writeArtifact(result.TrackMapPath, func(f *os.File) (*plot.ImageData, error) {
		return trackMap.Render(f)
	}); err != nil {
		return err
	}

	thumbnail, err := os.Create(thumbnailPath(result.TrackMapPath))

	if err != nil {
		return errors.Wrap(err, "could not create thumbnail")
	}

	defer thumbnail.Close()

	if err := trackMap.RenderThumbnail(thumbnail, c.config.ThumbnailWidth); err != nil {
		return err
	}

	result.DominancePath = c.artifactPath("dominance", result.ID)

	if err := writeArtifact(result.DominancePath, func(f *os.File) (*plot.ImageData, error) {
		return plot.NewDominanceRenderer(segments, driver1Style, driver2Style, comparisonTitle+" - Track Dominance", c.config.TrackMapWidth).Render(f)
	}); err != nil {
		return err
	}

	cornerLines := make([]plot.CornerLine, len(corners))

	for i, corner := range corners {
		cornerLines[i] = plot.CornerLine{Number: corner.Number, Distance: corner.Distance}
	}

	result.TracesPath = c.artifactPath("traces", result.ID)

	return writeArtifact(result.TracesPath, func(f *os.File) (*plot.ImageData, error) {
		return plot.NewTraceRenderer(trace1, trace2, driver1Style, driver2Style, cornerLines, comparisonTitle, c.config.TraceWidth, c.config.TracePanelHeight).Render(f)
	})
}

// placeCorners resolves each corner marker to the nearest sample of driver
// 1's trace, which is where its label is drawn on the map.
func placeCorners(corners []f1.CornerMarker, trace telemetry.Trace) ([]plot.CornerLabel, error) {
	labels := make([]plot.CornerLabel, 0, len(corners))

	for _, corner := range corners {
		idx, err := trace.Nearest(corner.Distance)

		if err != nil {
			return nil, errors.Wrapf(err, "could not place corner %d", corner.Number)
		}

		labels = append(labels, plot.CornerLabel{
			Number: corner.Number,
			At:     telemetry.Point{X: trace[idx].X, Y: trace[idx].Y},
		})
	}

	return labels, nil
}

func driverStyle(driver f1.Driver, lap f1.Lap, fallback color.RGBA) plot.DriverStyle {
	return plot.DriverStyle{
		Code:    driver.Code,
		Name:    driver.LastName,
		LapTime: telemetry.FormatLapTime(lap.LapTime),
		Color:   plot.ParseHexColour(driver.TeamColour, fallback),
	}
}

func (c *Comparison) artifactPath(kind string, id uuid.UUID) string {
	return filepath.Join(c.config.OutputDir, fmt.Sprintf("%s_%s.png", kind, id.String()))
}

func thumbnailPath(trackMapPath string) string {
	ext := filepath.Ext(trackMapPath)

	return trackMapPath[:len(trackMapPath)-len(ext)] + "_thumb" + ext
}

func writeArtifact(path string, render func(*os.File) (*plot.ImageData, error)) error {
	f, err := os.Create(path)

	if err != nil {
		return errors.Wrapf(err, "could not create %s", path)
	}

	defer f.Close()

	data, err := render(f)

	if err != nil {
		return err
	}

	sidecar := path[:len(path)-len(filepath.Ext(path))] + ".ini"

	return data.Save(sidecar)
}
