// Package dashboard turns the three upstream feeds into page sections. Each
// feed is fetched on its own and a failure only ever affects its own section,
// which falls back to a fixed message.
package dashboard

import (
	"context"
	"fmt"
	"html/template"
	"log"
	"math"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/spencer-p/coastdash/pkg/metrics"
	"github.com/spencer-p/coastdash/pkg/openmeteo"
	"github.com/spencer-p/coastdash/pkg/stormglass"
	"github.com/spencer-p/coastdash/pkg/sunset"
	"github.com/spencer-p/coastdash/pkg/timetricks"
	"github.com/spencer-p/coastdash/pkg/visualize"
	"github.com/spencer-p/coastdash/pkg/weatherapi"
)

const (
	kmhToMph = 0.621371

	// Only the next two tides are listed, matching the chart.
	tideLines = 2
)

type WeatherSource interface {
	CurrentWeather(ctx context.Context) (openmeteo.Current, error)
}

type MoonSource interface {
	Astronomy(ctx context.Context) (weatherapi.Astro, error)
}

type TideSource interface {
	GetExtremes(ctx context.Context, q *stormglass.ExtremesQuery) (stormglass.Extrema, error)
}

// Options wires a Dashboard to its feeds.
type Options struct {
	Weather WeatherSource
	Moon    MoonSource
	Tides   TideSource

	// Place is where tides are looked up and whose clock times are shown.
	Place sunset.Place
	Chart visualize.ChartConfig

	// Now defaults to time.Now.
	Now func() time.Time
}

type Dashboard struct {
	opts Options
}

func New(opts Options) *Dashboard {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Place.Location == nil {
		opts.Place.Location = time.Local
	}
	return &Dashboard{opts: opts}
}

// Each fetches every feed concurrently and calls fn once per section as soon as
// that section is ready. Calls to fn never overlap.
func (d *Dashboard) Each(ctx context.Context, fn func(Section)) {
	loaders := []func(context.Context) Section{
		func(ctx context.Context) Section { return d.Weather(ctx) },
		func(ctx context.Context) Section { return d.Moon(ctx) },
		func(ctx context.Context) Section { return d.Tides(ctx) },
	}

	ready := make(chan Section, len(loaders))
	for _, load := range loaders {
		go func(load func(context.Context) Section) {
			ready <- load(ctx)
		}(load)
	}
	for range loaders {
		fn(<-ready)
	}
}

// Load fetches every feed concurrently and returns all sections together.
func (d *Dashboard) Load(ctx context.Context) Snapshot {
	var s Snapshot
	var g errgroup.Group
	g.Go(func() error {
		s.Weather = d.Weather(ctx)
		return nil
	})
	g.Go(func() error {
		s.Moon = d.Moon(ctx)
		return nil
	})
	g.Go(func() error {
		s.Tides = d.Tides(ctx)
		return nil
	})
	// Sections never fail; a feed error becomes the section's fallback text.
	_ = g.Wait()
	return s
}

// Weather builds the weather section from current conditions.
func (d *Dashboard) Weather(ctx context.Context) WeatherSection {
	cur, err := d.opts.Weather.CurrentWeather(ctx)
	if err != nil {
		unavailable(WeatherFeed, err)
		return WeatherSection{Temperature: weatherUnavailable, Unavailable: true}
	}
	metrics.ObserveFeed(WeatherFeed, metrics.OutcomeOK)

	height, y := visualize.ThermoFill(cur.Temperature)
	return WeatherSection{
		Temperature: fmt.Sprintf("%s°C / %d°F",
			num(cur.Temperature), roundHalfUp(cur.Temperature*9/5+32)),
		ThermoHeight:  height,
		ThermoY:       y,
		Wind:          fmt.Sprintf("%d mph / %s km/h", roundHalfUp(cur.WindSpeed*kmhToMph), num(cur.WindSpeed)),
		WindDirection: cur.WindDirection,
		Icon:          fmt.Sprintf("svg/weather/%s.svg", cur.WeatherCode.Icon()),
	}
}

// Moon builds the moon section from today's astronomy.
func (d *Dashboard) Moon(ctx context.Context) MoonSection {
	var section MoonSection
	loc := d.opts.Place.Location
	if events := sunset.GetSunEvents(d.opts.Now(), 24*time.Hour, d.opts.Place); len(events) >= 2 {
		section.Sunrise = timetricks.Clock(events[0].Time, loc)
		section.Sunset = timetricks.Clock(events[1].Time, loc)
	}

	astro, err := d.opts.Moon.Astronomy(ctx)
	if err != nil {
		unavailable(MoonFeed, err)
		section.Phase = moonUnavailable
		section.Unavailable = true
		return section
	}
	metrics.ObserveFeed(MoonFeed, metrics.OutcomeOK)

	section.Phase = string(astro.MoonPhase)
	section.Icon = fmt.Sprintf("svg/moon/%s.svg", astro.MoonPhase.Slug())
	section.Moonrise = astro.Moonrise
	section.Moonset = astro.Moonset
	return section
}

// Tides builds the tide section from the upcoming extrema.
func (d *Dashboard) Tides(ctx context.Context) TideSection {
	extrema, err := d.opts.Tides.GetExtremes(ctx, &stormglass.ExtremesQuery{
		Lat:   d.opts.Place.Lat,
		Lng:   d.opts.Place.Long,
		Start: d.opts.Now(),
	})
	if err != nil {
		unavailable(TidesFeed, err)
		return TideSection{
			Lines:       []string{tidesUnavailable},
			Chart:       d.chart(nil),
			Unavailable: true,
		}
	}
	metrics.ObserveFeed(TidesFeed, metrics.OutcomeOK)

	if len(extrema) == 0 {
		return TideSection{Lines: []string{noTides}, Chart: d.chart(nil)}
	}

	section := TideSection{Chart: d.chart(extrema)}
	for _, e := range extrema.First(tideLines) {
		section.Lines = append(section.Lines, d.tideLine(e))
	}
	return section
}

func (d *Dashboard) tideLine(e stormglass.Extremum) string {
	label := "↓ Low"
	if e.Type == stormglass.HighTide {
		label = "↑ High"
	}
	return fmt.Sprintf("%s tide at %s — %s",
		label, timetricks.Clock(e.T(), d.opts.Place.Location), visualize.Metres(e.Height))
}

// chart draws a fresh chart for extrema. Charts are never reused between
// fetches.
func (d *Dashboard) chart(extrema stormglass.Extrema) template.HTML {
	chart := visualize.NewTideChart(d.opts.Chart)
	chart.Render(extrema)

	var b strings.Builder
	if _, err := chart.Encode(&b); err != nil {
		log.Printf("Failed to encode tide chart: %v", err)
	}
	return template.HTML(b.String())
}

func unavailable(feed string, err error) {
	log.Printf("Failed to fetch %s: %v", feed, err)
	metrics.ObserveFeed(feed, metrics.OutcomeUnavailable)
}

// roundHalfUp rounds halves towards positive infinity, so -0.5 becomes 0.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

// num prints v in its shortest form. Negative zero prints as "0".
func num(v float64) string {
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
