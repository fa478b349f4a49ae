// Package weatherapi fetches the day's astronomy, chiefly the moon phase, from
// WeatherAPI.com.
package weatherapi

import (
	"context"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/spencer-p/coastdash/pkg/feed"
)

const (
	WEATHERAPI_URL = "https://api.weatherapi.com"
	ASTRONOMY_PATH = "/v1/astronomy.json"
)

// whitespace matches ASCII and Unicode space runs, including no-break
// spaces and the line and paragraph separators.
var whitespace = regexp.MustCompile(`[\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}]+`)

// Phase is a moon phase name such as "Waxing Gibbous".
type Phase string

// Slug names the phase's icon file: lower case with each run of whitespace
// replaced by a dash.
func (p Phase) Slug() string {
	return whitespace.ReplaceAllString(strings.ToLower(string(p)), "-")
}

// Astro is the astro block of an astronomy response. Times are the provider's
// local clock strings, e.g. "06:12 AM".
type Astro struct {
	Sunrise   string `json:"sunrise"`
	Sunset    string `json:"sunset"`
	Moonrise  string `json:"moonrise"`
	Moonset   string `json:"moonset"`
	MoonPhase Phase  `json:"moon_phase"`
}

type astronomyResult struct {
	Astronomy *struct {
		Astro *Astro `json:"astro"`
	} `json:"astronomy"`
}

// Client fetches today's astronomy for a named place.
type Client struct {
	HTTP *http.Client
	// BaseURL defaults to WEATHERAPI_URL.
	BaseURL string
	Key     string
	// Query is anything WeatherAPI accepts for q: a place name, a postcode
	// or "lat,long".
	Query string
}

// Astronomy returns today's astronomy. A response without a moon phase is an
// error.
func (c *Client) Astronomy(ctx context.Context) (Astro, error) {
	var result astronomyResult

	addr, err := c.url()
	if err != nil {
		return Astro{}, err
	}

	if err := feed.GetJSON(ctx, c.HTTP, addr.String(), nil, &result); err != nil {
		return Astro{}, err
	}
	if result.Astronomy == nil || result.Astronomy.Astro == nil {
		return Astro{}, feed.Missing("astronomy.astro")
	}
	astro := *result.Astronomy.Astro
	if astro.MoonPhase == "" {
		return Astro{}, feed.Missing("astronomy.astro.moon_phase")
	}
	return astro, nil
}

func (c *Client) url() (*url.URL, error) {
	base := c.BaseURL
	if base == "" {
		base = WEATHERAPI_URL
	}
	addr, err := url.Parse(base + ASTRONOMY_PATH)
	if err != nil {
		return nil, err
	}
	vals := make(url.Values)
	vals.Add("key", c.Key)
	vals.Add("q", c.Query)
	vals.Add("dt", "today")
	addr.RawQuery = vals.Encode()
	return addr, nil
}
