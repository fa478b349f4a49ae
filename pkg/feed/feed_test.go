package feed

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGetJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			if got := r.Header.Get("Authorization"); got != "secret" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			fmt.Fprint(w, `{"value": 4}`)
		case "/garbage":
			fmt.Fprint(w, `{"value": `)
		default:
			w.WriteHeader(http.StatusForbidden)
		}
	}))
	defer srv.Close()

	header := http.Header{"Authorization": []string{"secret"}}

	table := []struct {
		path string
		want error
	}{
		{"/ok", nil},
		{"/garbage", ErrParse},
		{"/forbidden", ErrNetwork},
	}

	for _, tc := range table {
		t.Run(tc.path, func(t *testing.T) {
			var out struct {
				Value int `json:"value"`
			}
			err := GetJSON(context.Background(), srv.Client(), srv.URL+tc.path, header, &out)
			if tc.want == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if out.Value != 4 {
					t.Errorf("got value %d, wanted 4", out.Value)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Errorf("got err %v, wanted %v", err, tc.want)
			}
		})
	}
}

func TestGetJSONUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	var out struct{}
	if err := GetJSON(context.Background(), nil, addr, nil, &out); !errors.Is(err, ErrNetwork) {
		t.Errorf("got err %v, wanted %v", err, ErrNetwork)
	}
}

func TestMissing(t *testing.T) {
	err := Missing("data")
	if !errors.Is(err, ErrMissingField) {
		t.Errorf("%v is not ErrMissingField", err)
	}
	if err.Error() != "missing field: data" {
		t.Errorf("got %q", err.Error())
	}
}
