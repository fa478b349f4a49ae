package stormglass

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/spencer-p/coastdash/pkg/feed"
)

const (
	STORMGLASS_URL = "https://api.stormglass.io"
	EXTREMES_PATH  = "/v2/tide/extremes/point"
	// Millisecond UTC timestamps, the same shape browsers produce.
	TIME_FMT = "2006-01-02T15:04:05.000Z07:00"
)

// Client fetches tide extremes from Storm Glass.
type Client struct {
	HTTP *http.Client
	// BaseURL defaults to STORMGLASS_URL.
	BaseURL string
	// Key is sent verbatim in the Authorization header.
	Key string
}

// GetExtremes returns the tide extremes at q's point from q.Start onward.
func (c *Client) GetExtremes(ctx context.Context, q *ExtremesQuery) (Extrema, error) {
	var result Result

	addr, err := c.url(q)
	if err != nil {
		return nil, err
	}

	header := http.Header{}
	header.Set("Authorization", c.Key)

	if err := feed.GetJSON(ctx, c.HTTP, addr.String(), header, &result); err != nil {
		return nil, err
	}
	if result.Data == nil {
		return nil, feed.Missing("data")
	}

	return *result.Data, nil
}

func (c *Client) url(q *ExtremesQuery) (*url.URL, error) {
	base := c.BaseURL
	if base == "" {
		base = STORMGLASS_URL
	}
	addr, err := url.Parse(base + EXTREMES_PATH)
	if err != nil {
		return nil, err
	}
	addr.RawQuery = q.build().Encode()
	return addr, nil
}

func (q *ExtremesQuery) build() url.Values {
	vals := make(url.Values)
	vals.Add("lat", strconv.FormatFloat(q.Lat, 'f', -1, 64))
	vals.Add("lng", strconv.FormatFloat(q.Lng, 'f', -1, 64))
	vals.Add("start", q.Start.UTC().Format(TIME_FMT))
	return vals
}
