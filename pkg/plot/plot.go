// Package plot renders comparison artifacts (track maps, dominance maps and
// channel traces) from aligned telemetry using fogleman/gg. All drawing goes
// through explicit contexts; nothing here makes comparison decisions.
package plot

import (
	"fmt"
	"image/color"
	"math"

	"github.com/adriadam10/lapdelta/internal/telemetry"
)

var (
	backgroundColor  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	trackColor       = color.RGBA{R: 225, G: 225, B: 225, A: 255}
	trackBorderColor = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	cornerDotColor   = color.RGBA{R: 220, G: 30, B: 30, A: 255}
	cornerLabelColor = color.RGBA{R: 20, G: 130, B: 50, A: 255}
	axisColor        = color.RGBA{R: 60, G: 60, B: 60, A: 255}
	gridLineColor    = color.RGBA{R: 150, G: 150, B: 150, A: 255}
	titleColor       = color.RGBA{R: 20, G: 20, B: 20, A: 255}

	// fallbacks when a driver has no team colour
	DefaultDriver1Color = color.RGBA{R: 220, G: 30, B: 30, A: 255}
	DefaultDriver2Color = color.RGBA{R: 30, G: 60, B: 220, A: 255}
)

const padding = 40

// DriverStyle carries everything the renderers need to know about one
// driver: a short code for legends, a display name and a line colour.
type DriverStyle struct {
	Code    string
	Name    string
	LapTime string
	Color   color.RGBA
}

// ParseHexColour converts a team colour like "0600EF" to an RGBA, falling
// back when the value is malformed or missing.
func ParseHexColour(s string, fallback color.RGBA) color.RGBA {
	if len(s) != 6 {
		return fallback
	}

	var r, g, b uint8

	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return fallback
	}

	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// projection maps world coordinates onto an image of the requested width,
// preserving aspect ratio. World y grows upwards, image y downwards.
type projection struct {
	scale            float64
	minX, maxY       float64
	offsetX, offsetY float64

	width, height int
}

func fitProjection(points []telemetry.Point, width int) projection {
	if len(points) == 0 || width <= 0 {
		return projection{scale: 1, width: width, height: width}
	}

	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y

	for _, point := range points {
		minX = math.Min(minX, point.X)
		maxX = math.Max(maxX, point.X)
		minY = math.Min(minY, point.Y)
		maxY = math.Max(maxY, point.Y)
	}

	worldWidth := maxX - minX
	worldHeight := maxY - minY

	if worldWidth == 0 {
		worldWidth = 1
	}

	scale := float64(width-padding*2) / worldWidth
	height := int(worldHeight*scale) + padding*2

	return projection{
		scale:   scale,
		minX:    minX,
		maxY:    maxY,
		offsetX: padding,
		offsetY: padding,
		width:   width,
		height:  height,
	}
}

func (p projection) point(pt telemetry.Point) (float64, float64) {
	return (pt.X-p.minX)*p.scale + p.offsetX, (p.maxY-pt.Y)*p.scale + p.offsetY
}
