package plot

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"strings"

	"github.com/cj123/ini"
	"github.com/fogleman/gg"
	"github.com/mitchellh/go-wordwrap"
	"github.com/nfnt/resize"

	"github.com/adriadam10/lapdelta/internal/telemetry"
)

func init() {
	ini.PrettyEqual = false
	ini.PrettyFormat = false
}

// CornerLabel is a resolved corner position: the caller looks the nearest
// trace sample up for each corner marker and hands the renderer its (x, y).
type CornerLabel struct {
	Number int
	At     telemetry.Point
}

const (
	trackLineWidth   = 8
	cornerDotRadius  = 5
	titleWrapColumns = 60
)

// TrackMapRenderer draws a circuit outline from one driver's position trace
// with corner dots and labels overlaid.
type TrackMapRenderer struct {
	path    []telemetry.Point
	corners []CornerLabel
	title   string
	width   int

	rendered image.Image
}

func NewTrackMapRenderer(path []telemetry.Point, corners []CornerLabel, title string, width int) *TrackMapRenderer {
	return &TrackMapRenderer{
		path:    path,
		corners: corners,
		title:   title,
		width:   width,
	}
}

func (t *TrackMapRenderer) draw() image.Image {
	if t.rendered != nil {
		return t.rendered
	}

	proj := fitProjection(t.path, t.width)

	ctx := gg.NewContext(proj.width, proj.height+titleBandHeight(t.title))
	ctx.SetColor(backgroundColor)
	ctx.Clear()

	ctx.Push()
	for _, point := range t.path {
		x, y := proj.point(point)
		ctx.LineTo(x, y)
	}
	ctx.ClosePath()
	ctx.SetColor(trackBorderColor)
	ctx.SetLineWidth(trackLineWidth + 4)
	ctx.StrokePreserve()
	ctx.SetColor(trackColor)
	ctx.SetLineWidth(trackLineWidth)
	ctx.Stroke()
	ctx.Pop()

	for _, corner := range t.corners {
		x, y := proj.point(corner.At)

		ctx.SetColor(cornerDotColor)
		ctx.DrawCircle(x, y, cornerDotRadius)
		ctx.Fill()

		ctx.SetColor(cornerLabelColor)
		ctx.DrawStringAnchored(fmt.Sprintf("T%d", corner.Number), x+8, y-8, 0, 0.5)
	}

	drawTitle(ctx, t.title, proj.width, proj.height)

	t.rendered = ctx.Image()

	return t.rendered
}

func titleLines(title string) []string {
	return strings.Split(wordwrap.WrapString(title, titleWrapColumns), "\n")
}

func titleBandHeight(title string) int {
	if title == "" {
		return 0
	}

	return len(titleLines(title))*18 + 12
}

func drawTitle(ctx *gg.Context, title string, width, height int) {
	if title == "" {
		return
	}

	ctx.SetColor(titleColor)

	for i, line := range titleLines(title) {
		ctx.DrawStringAnchored(line, float64(width)/2, float64(height+12+i*18), 0.5, 0.5)
	}
}

// Render encodes the track map as a PNG and returns its metadata.
func (t *TrackMapRenderer) Render(w io.Writer) (*ImageData, error) {
	img := t.draw()

	data := &ImageData{
		Width:  float64(img.Bounds().Dx()),
		Height: float64(img.Bounds().Dy()),
		Margin: padding,
	}

	return data, png.Encode(w, img)
}

// RenderThumbnail writes a width-constrained copy of the track map.
func (t *TrackMapRenderer) RenderThumbnail(w io.Writer, width uint) error {
	thumbnail := resize.Resize(width, 0, t.draw(), resize.Bilinear)

	return png.Encode(w, thumbnail)
}

// ImageData is the sidecar metadata written alongside each rendered image.
type ImageData struct {
	Width  float64 `ini:"WIDTH" json:"width"`
	Height float64 `ini:"HEIGHT" json:"height"`
	Margin float64 `ini:"MARGIN" json:"margin"`
}

func (d *ImageData) Save(path string) error {
	i := ini.Empty()

	sec, err := i.NewSection("PARAMETERS")

	if err != nil {
		return err
	}

	if err := sec.ReflectFrom(d); err != nil {
		return err
	}

	return i.SaveTo(path)
}
