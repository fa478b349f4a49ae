package handlers

import (
	"embed"
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/spencer-p/coastdash/pkg/dashboard"

	"github.com/gorilla/mux"
)

//go:embed templates static
var content embed.FS

// Options configures the routes.
type Options struct {
	Dashboard *dashboard.Dashboard
	// Prefix is the path the router is mounted under.
	Prefix string
	// DataDir, if set, serves static/ from disk instead of the built in
	// assets. Icons live there.
	DataDir string

	// Cookie keys. Empty keys are replaced by random ones, which forgets
	// every visitor on restart.
	SessionKey    string
	EncryptionKey string
}

func Register(r *mux.Router, opts Options) {
	store := newSessionStore(opts.SessionKey, opts.EncryptionKey)

	r.Handle("/", makeIndexHandler(store))
	r.Handle("/sections", makeSectionsHandler(opts.Dashboard))
	r.Handle("/api/v1/dashboard", makeServeDashboard(opts.Dashboard))
	r.Handle("/tide-chart.svg", makeServeTideChart(opts.Dashboard))
	r.PathPrefix("/static/").Handler(http.StripPrefix(opts.Prefix, http.FileServer(staticFS(opts.DataDir))))
}

func staticFS(dataDir string) http.FileSystem {
	if dataDir != "" {
		return http.Dir(dataDir)
	}
	return http.FS(content)
}

func makeServeDashboard(d *dashboard.Dashboard) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		snapshot := d.Load(r.Context())

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(snapshot); err != nil {
			log.Printf("Failed to encode JSON result: %+v", err)
		}
	})
}

func makeServeTideChart(d *dashboard.Dashboard) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		section := d.Tides(r.Context())

		w.Header().Add("Content-Type", "image/svg+xml")
		w.WriteHeader(http.StatusOK)
		if _, err := io.WriteString(w, string(section.Chart)); err != nil {
			log.Printf("Failed to write tide chart: %v", err)
		}
	})
}
