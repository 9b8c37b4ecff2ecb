package plot

import (
	"fmt"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/fogleman/gg"

	"github.com/adriadam10/lapdelta/internal/telemetry"
)

// Channel selects one telemetry value for a trace panel.
type Channel struct {
	Label string
	Value func(telemetry.Sample) float64
}

// DefaultChannels matches the upstream panel order: brake, speed, DRS, revs,
// gear, throttle.
func DefaultChannels() []Channel {
	return []Channel{
		{Label: "Brake", Value: func(s telemetry.Sample) float64 { return s.Brake }},
		{Label: "Speed [km/h]", Value: func(s telemetry.Sample) float64 { return s.Speed }},
		{Label: "DRS Activated", Value: func(s telemetry.Sample) float64 {
			if s.DRS {
				return 1
			}

			return 0
		}},
		{Label: "Revs per minute", Value: func(s telemetry.Sample) float64 { return float64(s.RPM) }},
		{Label: "Gear Number", Value: func(s telemetry.Sample) float64 { return float64(s.Gear) }},
		{Label: "Throttle", Value: func(s telemetry.Sample) float64 { return s.Throttle }},
	}
}

// CornerLine marks a corner's distance on the shared x axis of every panel.
type CornerLine struct {
	Number   int
	Distance float64
}

// TraceRenderer draws stacked per-channel panels comparing two raw telemetry
// traces over distance.
type TraceRenderer struct {
	trace1, trace2   telemetry.Trace
	driver1, driver2 DriverStyle
	corners          []CornerLine
	channels         []Channel
	title            string

	width, panelHeight int
}

func NewTraceRenderer(trace1, trace2 telemetry.Trace, driver1, driver2 DriverStyle, corners []CornerLine, title string, width, panelHeight int) *TraceRenderer {
	return &TraceRenderer{
		trace1:      trace1,
		trace2:      trace2,
		driver1:     driver1,
		driver2:     driver2,
		corners:     corners,
		channels:    DefaultChannels(),
		title:       title,
		width:       width,
		panelHeight: panelHeight,
	}
}

const (
	panelMarginLeft   = 70
	panelMarginRight  = 20
	panelMarginTop    = 24
	panelMarginBottom = 10
)

func (r *TraceRenderer) Render(w io.Writer) (*ImageData, error) {
	if len(r.trace1) == 0 || len(r.trace2) == 0 {
		return nil, telemetry.ErrEmptyTrace
	}

	height := titleBandHeight(r.title) + len(r.channels)*r.panelHeight + 40

	ctx := gg.NewContext(r.width, height)
	ctx.SetColor(backgroundColor)
	ctx.Clear()

	minDistance, maxDistance := r.distanceRange()

	top := titleBandHeight(r.title)

	if r.title != "" {
		ctx.SetColor(titleColor)
		ctx.DrawStringAnchored(r.title, float64(r.width)/2, 15, 0.5, 0.5)
	}

	for i, channel := range r.channels {
		r.drawPanel(ctx, channel, top+i*r.panelHeight, minDistance, maxDistance)
	}

	ctx.SetColor(axisColor)
	ctx.DrawStringAnchored("Distance [m]", float64(r.width)/2, float64(height)-15, 0.5, 0.5)

	r.drawLegend(ctx, float64(height)-15)

	data := &ImageData{
		Width:  float64(r.width),
		Height: float64(height),
		Margin: padding,
	}

	return data, png.Encode(w, ctx.Image())
}

func (r *TraceRenderer) distanceRange() (float64, float64) {
	min1, max1, _ := r.trace1.DistanceRange()
	min2, max2, _ := r.trace2.DistanceRange()

	return math.Min(min1, min2), math.Max(max1, max2)
}

func (r *TraceRenderer) drawPanel(ctx *gg.Context, channel Channel, panelTop int, minDistance, maxDistance float64) {
	plotLeft := float64(panelMarginLeft)
	plotRight := float64(r.width - panelMarginRight)
	plotTop := float64(panelTop + panelMarginTop)
	plotBottom := float64(panelTop + r.panelHeight - panelMarginBottom)

	minValue, maxValue := channelRange(channel, r.trace1, r.trace2)

	toX := func(distance float64) float64 {
		return plotLeft + (distance-minDistance)/(maxDistance-minDistance)*(plotRight-plotLeft)
	}

	toY := func(value float64) float64 {
		return plotBottom - (value-minValue)/(maxValue-minValue)*(plotBottom-plotTop)
	}

	ctx.SetColor(axisColor)
	ctx.SetLineWidth(1)
	ctx.DrawRectangle(plotLeft, plotTop, plotRight-plotLeft, plotBottom-plotTop)
	ctx.Stroke()

	ctx.DrawStringAnchored(channel.Label, plotLeft, plotTop-8, 0, 0.5)

	// corner reference lines, dashed
	ctx.Push()
	ctx.SetDash(4, 4)
	ctx.SetColor(gridLineColor)

	for _, corner := range r.corners {
		if corner.Distance < minDistance || corner.Distance > maxDistance {
			continue
		}

		x := toX(corner.Distance)

		ctx.DrawLine(x, plotTop, x, plotBottom)
		ctx.Stroke()
		ctx.DrawStringAnchored(fmt.Sprintf("T%d", corner.Number), x+2, plotTop+8, 0, 0.5)
	}
	ctx.Pop()
	ctx.SetDash()

	r.drawTraceLine(ctx, r.trace1, channel, r.driver1.Color, toX, toY)
	r.drawTraceLine(ctx, r.trace2, channel, r.driver2.Color, toX, toY)
}

func (r *TraceRenderer) drawTraceLine(ctx *gg.Context, trace telemetry.Trace, channel Channel, lineColor color.Color, toX, toY func(float64) float64) {
	ctx.Push()
	for _, sample := range trace {
		ctx.LineTo(toX(sample.Distance), toY(channel.Value(sample)))
	}
	ctx.SetColor(lineColor)
	ctx.SetLineWidth(1.5)
	ctx.Stroke()
	ctx.Pop()
}

func (r *TraceRenderer) drawLegend(ctx *gg.Context, y float64) {
	x := float64(panelMarginLeft)

	for _, driver := range []DriverStyle{r.driver1, r.driver2} {
		ctx.SetColor(driver.Color)
		ctx.SetLineWidth(2)
		ctx.DrawLine(x, y, x+25, y)
		ctx.Stroke()

		ctx.SetColor(titleColor)
		ctx.DrawStringAnchored(driver.Code, x+32, y, 0, 0.5)

		x += 100
	}
}

func channelRange(channel Channel, traces ...telemetry.Trace) (float64, float64) {
	min := math.Inf(1)
	max := math.Inf(-1)

	for _, trace := range traces {
		for _, sample := range trace {
			value := channel.Value(sample)
			min = math.Min(min, value)
			max = math.Max(max, value)
		}
	}

	if min == max {
		// flat channel, pad the range so the line sits mid-panel
		min--
		max++
	}

	return min, max
}
