// Package openmeteo fetches current weather conditions from Open-Meteo.
package openmeteo

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/spencer-p/coastdash/pkg/feed"
)

const (
	OPENMETEO_URL = "https://api.open-meteo.com"
	FORECAST_PATH = "/v1/forecast"
)

// Current is the current_weather block of a forecast response.
type Current struct {
	// Degrees Celsius
	Temperature float64 `json:"temperature"`
	// Kilometres per hour
	WindSpeed float64 `json:"windspeed"`
	// Degrees clockwise from north, the direction the wind blows from
	WindDirection float64     `json:"winddirection"`
	WeatherCode   WeatherCode `json:"weathercode"`
}

type forecastResult struct {
	CurrentWeather *Current `json:"current_weather"`
}

// Client fetches weather for a single coordinate. No key is needed.
type Client struct {
	HTTP *http.Client
	// BaseURL defaults to OPENMETEO_URL.
	BaseURL             string
	Latitude, Longitude float64
}

// CurrentWeather returns the conditions right now at the client's coordinate.
func (c *Client) CurrentWeather(ctx context.Context) (Current, error) {
	var result forecastResult

	addr, err := c.url()
	if err != nil {
		return Current{}, err
	}

	if err := feed.GetJSON(ctx, c.HTTP, addr.String(), nil, &result); err != nil {
		return Current{}, err
	}
	if result.CurrentWeather == nil {
		return Current{}, feed.Missing("current_weather")
	}
	return *result.CurrentWeather, nil
}

func (c *Client) url() (*url.URL, error) {
	base := c.BaseURL
	if base == "" {
		base = OPENMETEO_URL
	}
	vals := make(url.Values)
	vals.Add("latitude", strconv.FormatFloat(c.Latitude, 'f', -1, 64))
	vals.Add("longitude", strconv.FormatFloat(c.Longitude, 'f', -1, 64))
	vals.Add("current_weather", "true")

	addr, err := url.Parse(base + FORECAST_PATH)
	if err != nil {
		return nil, err
	}
	addr.RawQuery = vals.Encode()
	return addr, nil
}
