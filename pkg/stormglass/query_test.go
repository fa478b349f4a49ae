package stormglass

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/spencer-p/coastdash/pkg/feed"
)

func TestQueryURL(t *testing.T) {
	in := ExtremesQuery{
		Lat:   50.4,
		Lng:   -5.0,
		Start: time.Date(2025, time.April, 18, 9, 30, 0, 0, time.UTC),
	}
	want := "https://api.stormglass.io/v2/tide/extremes/point?lat=50.4&lng=-5&start=2025-04-18T09%3A30%3A00.000Z"
	var c Client
	got, err := c.url(&in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want != got.String() {
		t.Errorf("got  %q", got)
		t.Errorf("want %q", want)
	}
}

func TestGetExtremes(t *testing.T) {
	table := []struct {
		name    string
		body    string
		want    Extrema
		wantErr error
	}{{
		name: "two tides",
		body: `{"data":[
			{"height":2.1,"time":"2025-04-18T11:12:00+00:00","type":"high"},
			{"height":-0.4,"time":"2025-04-18T17:30:00+00:00","type":"low"}
		],"meta":{"cost":1}}`,
		want: Extrema{{
			Time:   Time(time.Date(2025, time.April, 18, 11, 12, 0, 0, time.UTC)),
			Height: 2.1,
			Type:   HighTide,
		}, {
			Time:   Time(time.Date(2025, time.April, 18, 17, 30, 0, 0, time.UTC)),
			Height: -0.4,
			Type:   LowTide,
		}},
	}, {
		name: "empty",
		body: `{"data":[]}`,
		want: Extrema{},
	}, {
		name:    "no data field",
		body:    `{"errors":{"key":"API key is invalid"}}`,
		wantErr: feed.ErrMissingField,
	}, {
		name:    "bad tide type",
		body:    `{"data":[{"height":1,"time":"2025-04-18T11:12:00+00:00","type":"slack"}]}`,
		wantErr: feed.ErrParse,
	}}

	for _, tc := range table {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != EXTREMES_PATH {
					t.Errorf("requested path %q", r.URL.Path)
				}
				if got := r.Header.Get("Authorization"); got != "key" {
					t.Errorf("Authorization header %q, wanted %q", got, "key")
				}
				fmt.Fprint(w, tc.body)
			}))
			defer srv.Close()

			c := Client{HTTP: srv.Client(), BaseURL: srv.URL, Key: "key"}
			got, err := c.GetExtremes(context.Background(), &ExtremesQuery{Lat: 1, Lng: 2, Start: time.Now()})
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Errorf("got err %v, wanted %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(fmt.Sprint(got), fmt.Sprint(tc.want)); diff != "" {
				t.Errorf("wrong extrema (-got,+want): %s", diff)
			}
		})
	}
}
