package visualize

import (
	"fmt"
	"io"

	"github.com/spencer-p/coastdash/pkg/stormglass"
)

const (
	chartWidth  = 240
	chartHeight = 80

	// The chart is a fixed width and has room for two markers.
	maxMarkers = 2

	// The wave is decoration and does not follow the data. Its own baseline
	// sits at y=50, above the markers' zero at ChartConfig.BaselineY.
	wavePath        = "M0 50 Q30 30, 60 50 T120 50 T180 50 T240 50"
	waveStrokeWidth = 3

	labelOffset   = 10
	labelFontSize = 12

	accentColor = "#FD9803"
	baseColor   = "#112656"
)

// ChartConfig maps tide heights onto the drawing surface.
type ChartConfig struct {
	// Heights in metres spanning PixelRange pixels above BaselineY.
	MinHeight, MaxHeight float64
	PixelRange           float64
	// BaselineY is the y of MinHeight on the surface.
	BaselineY float64

	MarkerBaseX, MarkerSpacing float64
	MarkerRadius               float64

	HighColor, LowColor string
}

var DefaultChartConfig = ChartConfig{
	MinHeight:     0.5,
	MaxHeight:     6.5,
	PixelRange:    40,
	BaselineY:     60,
	MarkerBaseX:   60,
	MarkerSpacing: 80,
	MarkerRadius:  6,
	HighColor:     accentColor,
	LowColor:      baseColor,
}

// TideChart draws the next tide extrema as markers over a wave.
type TideChart struct {
	cfg      ChartConfig
	elements []Element
}

func NewTideChart(cfg ChartConfig) *TideChart {
	return &TideChart{cfg: cfg}
}

// Render replaces whatever was drawn before with a drawing of the first two
// extrema. Nothing is drawn for no extrema. Heights outside the configured
// range are not clamped and their markers may fall off the surface.
func (c *TideChart) Render(extrema stormglass.Extrema) {
	c.elements = nil
	if len(extrema) == 0 {
		return
	}

	c.elements = append(c.elements, Path{
		D:           wavePath,
		Stroke:      accentColor,
		StrokeWidth: waveStrokeWidth,
		Fill:        "none",
	})

	for i, e := range extrema.First(maxMarkers) {
		x := c.cfg.MarkerBaseX + float64(i)*c.cfg.MarkerSpacing
		y := c.heightToY(e.Height)

		c.elements = append(c.elements,
			Circle{
				CX:   x,
				CY:   y,
				R:    c.cfg.MarkerRadius,
				Fill: c.color(e.Type),
			},
			Text{
				X:        x,
				Y:        y - labelOffset,
				Anchor:   "middle",
				FontSize: labelFontSize,
				Fill:     baseColor,
				Body:     Metres(e.Height),
			})
	}
}

// Elements returns the current drawing in paint order.
func (c *TideChart) Elements() []Element {
	return append([]Element(nil), c.elements...)
}

// Encode writes the drawing as an SVG document.
func (c *TideChart) Encode(w io.Writer) (int, error) {
	var n int
	var err error
	io := func(nextn int, nexterr error) {
		n += nextn
		if nexterr != nil && err == nil {
			err = nexterr
		}
	}

	io(fmt.Fprintf(w, `<svg id="tide-chart" viewBox="0 0 %d %d" xmlns="http://www.w3.org/2000/svg">`,
		chartWidth, chartHeight))
	for _, el := range c.elements {
		io(el.encode(w))
	}
	io(fmt.Fprintf(w, `</svg>`))

	return n, err
}

func (c *TideChart) heightToY(h float64) float64 {
	scale := c.cfg.PixelRange / (c.cfg.MaxHeight - c.cfg.MinHeight) // px per metre
	return c.cfg.BaselineY - (h-c.cfg.MinHeight)*scale
}

func (c *TideChart) color(t stormglass.Tide) string {
	if t == stormglass.HighTide {
		return c.cfg.HighColor
	}
	return c.cfg.LowColor
}
