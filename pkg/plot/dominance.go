package plot

import (
	"fmt"
	"image/png"
	"io"

	"github.com/fogleman/gg"

	"github.com/adriadam10/lapdelta/internal/telemetry"
)

const dominanceLineWidth = 6

// DominanceRenderer draws the closed track loop with each labelled segment in
// the colour of the driver who was faster there. The unlabelled closing
// segment is not painted.
type DominanceRenderer struct {
	segments []telemetry.Segment
	driver1  DriverStyle
	driver2  DriverStyle
	title    string
	width    int
}

func NewDominanceRenderer(segments []telemetry.Segment, driver1, driver2 DriverStyle, title string, width int) *DominanceRenderer {
	return &DominanceRenderer{
		segments: segments,
		driver1:  driver1,
		driver2:  driver2,
		title:    title,
		width:    width,
	}
}

func (d *DominanceRenderer) Render(w io.Writer) (*ImageData, error) {
	var path []telemetry.Point

	for _, segment := range d.segments {
		path = append(path, segment.From)
	}

	proj := fitProjection(path, d.width)

	const legendHeight = 50

	ctx := gg.NewContext(proj.width, proj.height+titleBandHeight(d.title)+legendHeight)
	ctx.SetColor(backgroundColor)
	ctx.Clear()
	ctx.SetLineCapRound()
	ctx.SetLineWidth(dominanceLineWidth)

	for _, segment := range d.segments {
		if !segment.Labelled {
			continue
		}

		if segment.Label == telemetry.Driver1 {
			ctx.SetColor(d.driver1.Color)
		} else {
			ctx.SetColor(d.driver2.Color)
		}

		x1, y1 := proj.point(segment.From)
		x2, y2 := proj.point(segment.To)

		ctx.DrawLine(x1, y1, x2, y2)
		ctx.Stroke()
	}

	d.drawLegend(ctx, proj)
	drawTitle(ctx, d.title, proj.width, proj.height+legendHeight)

	data := &ImageData{
		Width:  float64(ctx.Width()),
		Height: float64(ctx.Height()),
		Margin: padding,
	}

	return data, png.Encode(w, ctx.Image())
}

func (d *DominanceRenderer) drawLegend(ctx *gg.Context, proj projection) {
	y := float64(proj.height) + 15

	for i, driver := range []DriverStyle{d.driver1, d.driver2} {
		rowY := y + float64(i)*18

		ctx.SetColor(driver.Color)
		ctx.DrawLine(padding, rowY, padding+30, rowY)
		ctx.Stroke()

		ctx.SetColor(titleColor)
		ctx.DrawStringAnchored(fmt.Sprintf("%s  %s", driver.Name, driver.LapTime), padding+40, rowY, 0, 0.5)
	}
}
