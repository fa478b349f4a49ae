package weatherapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spencer-p/coastdash/pkg/feed"
)

func TestURL(t *testing.T) {
	c := Client{Key: "abc", Query: "Cornwall"}
	want := "https://api.weatherapi.com/v1/astronomy.json?dt=today&key=abc&q=Cornwall"
	got, err := c.url()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != want {
		t.Errorf("got  %q", got)
		t.Errorf("want %q", want)
	}
}

func TestAstronomy(t *testing.T) {
	table := []struct {
		name      string
		body      string
		wantPhase Phase
		wantErr   error
	}{{
		name:      "ok",
		body:      `{"location":{"name":"Cornwall"},"astronomy":{"astro":{"sunrise":"06:19 AM","sunset":"08:21 PM","moonrise":"No moonrise","moonset":"09:02 AM","moon_phase":"Waning Gibbous","moon_illumination":71,"is_moon_up":0,"is_sun_up":0}}}`,
		wantPhase: "Waning Gibbous",
	}, {
		name:    "no phase",
		body:    `{"astronomy":{"astro":{"sunrise":"06:19 AM"}}}`,
		wantErr: feed.ErrMissingField,
	}, {
		name:    "error body",
		body:    `{"error":{"code":2006,"message":"API key is invalid."}}`,
		wantErr: feed.ErrMissingField,
	}}

	for _, tc := range table {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if got := r.FormValue("key"); got != "k" {
					t.Errorf("key=%q", got)
				}
				fmt.Fprint(w, tc.body)
			}))
			defer srv.Close()

			c := Client{HTTP: srv.Client(), BaseURL: srv.URL, Key: "k", Query: "Cornwall"}
			got, err := c.Astronomy(context.Background())
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Errorf("got err %v, wanted %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.MoonPhase != tc.wantPhase {
				t.Errorf("got phase %q, wanted %q", got.MoonPhase, tc.wantPhase)
			}
		})
	}
}

func TestPhaseSlug(t *testing.T) {
	table := []struct {
		in   Phase
		want string
	}{
		{"Waning Gibbous", "waning-gibbous"},
		{"Waning\u00a0Gibbous", "waning-gibbous"},
		{"Last\u2003 Quarter", "last-quarter"},
		{"Third\tQuarter\n", "third-quarter-"},
		{"Full Moon", "full-moon"},
	}
	for _, tc := range table {
		if got := tc.in.Slug(); got != tc.want {
			t.Errorf("%q.Slug() = %q, wanted %q", tc.in, got, tc.want)
		}
	}
}

func ExamplePhase_Slug() {
	for _, p := range []Phase{"New Moon", "Waxing  Crescent", "First Quarter", "Full Moon"} {
		fmt.Println(p.Slug())
	}
	// Output:
	// new-moon
	// waxing-crescent
	// first-quarter
	// full-moon
}
