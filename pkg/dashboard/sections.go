package dashboard

import "html/template"

const (
	WeatherFeed = "weather"
	MoonFeed    = "moon"
	TidesFeed   = "tides"

	weatherUnavailable = "Weather unavailable."
	moonUnavailable    = "Moon phase unavailable."
	tidesUnavailable   = "Tide data unavailable."
	noTides            = "No upcoming tides."
)

// Section is one independently updated part of the page. Feed names both the
// upstream it comes from and the template that draws it.
type Section interface {
	Feed() string
}

// WeatherSection fills the temperature, thermometer, wind and icon fields.
// When Unavailable only Temperature is set, to the fallback message.
type WeatherSection struct {
	Temperature string `json:"temperature"`
	// Thermometer fill rectangle
	ThermoHeight float64 `json:"thermo_height"`
	ThermoY      float64 `json:"thermo_y"`
	Wind         string  `json:"wind,omitempty"`
	// Degrees to rotate the wind arrow
	WindDirection float64 `json:"wind_direction"`
	// Icon path relative to the static root
	Icon        string `json:"icon,omitempty"`
	Unavailable bool   `json:"unavailable"`
}

// MoonSection fills the moon phase fields and the day's sun times. Sun times
// are computed locally and survive a failed fetch.
type MoonSection struct {
	Phase    string `json:"phase"`
	Icon     string `json:"icon,omitempty"`
	Moonrise string `json:"moonrise,omitempty"`
	Moonset  string `json:"moonset,omitempty"`
	Sunrise  string `json:"sunrise,omitempty"`
	Sunset   string `json:"sunset,omitempty"`

	Unavailable bool `json:"unavailable"`
}

// TideSection fills the tide text lines and the tide chart. Chart is always a
// complete SVG document, empty when there is nothing to draw.
type TideSection struct {
	Lines       []string      `json:"lines"`
	Chart       template.HTML `json:"chart"`
	Unavailable bool          `json:"unavailable"`
}

func (WeatherSection) Feed() string { return WeatherFeed }
func (MoonSection) Feed() string    { return MoonFeed }
func (TideSection) Feed() string    { return TidesFeed }

// Snapshot is every section at once.
type Snapshot struct {
	Weather WeatherSection `json:"weather"`
	Moon    MoonSection    `json:"moon"`
	Tides   TideSection    `json:"tides"`
}
