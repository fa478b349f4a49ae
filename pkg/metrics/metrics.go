package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	requestLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:      "request_latency",
			Subsystem: "coastdash",
			Help:      "HTTP request latencies in seconds.",
			Buckets:   []float64{0.001, 0.01, 0.1, 0.2, 0.4, 0.8, 1.0, 2.0, 4.0, 8.0, 16.0, 32.0},
		},
		[]string{"verb", "path", "code"},
	)
	feedFetches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:      "feed_fetches_total",
			Subsystem: "coastdash",
			Help:      "Upstream feed fetches by feed and outcome.",
		},
		[]string{"feed", "outcome"},
	)
	visitors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:      "visitors_total",
			Subsystem: "coastdash",
			Help:      "Page views by whether the visitor carried a session.",
		},
		[]string{"kind"},
	)
)

const (
	OutcomeOK          = "ok"
	OutcomeUnavailable = "unavailable"
)

func init() {
	prometheus.MustRegister(
		requestLatency,
		feedFetches,
		visitors,
	)
}

// ObserveFeed counts one fetch of feed ending in outcome.
func ObserveFeed(feed, outcome string) {
	feedFetches.With(prometheus.Labels{
		"feed":    feed,
		"outcome": outcome,
	}).Inc()
}

// ObserveVisitor counts a page view from a new or returning visitor.
func ObserveVisitor(returning bool) {
	kind := "new"
	if returning {
		kind = "returning"
	}
	visitors.With(prometheus.Labels{"kind": kind}).Inc()
}

func ObserveRequestLatency(verb, path, code string, latency float64) {
	requestLatency.With(prometheus.Labels{
		"code": code,
		"verb": verb,
		"path": path,
	}).Observe(latency)
}

func LatencyHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t := time.Now()
		verb := r.Method
		path := ""
		if r.URL != nil {
			path = r.URL.Path
		}

		rec := &statusRecorder{ResponseWriter: w}

		// Defer metric observing. Any panics in next are reported as 500 errors
		// and then re-thrown.
		defer func() {
			if err := recover(); err != nil {
				ObserveRequestLatency(verb, path, "500", time.Since(t).Seconds())
				panic(err)
			}
			ObserveRequestLatency(verb, path, rec.code(), time.Since(t).Seconds())
		}()

		next.ServeHTTP(rec, r)
	})
}

// statusRecorder remembers the status code written through it.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	if r.status == 0 {
		r.status = code
	}
	r.ResponseWriter.WriteHeader(code)
}

// Flush passes through so streamed responses keep streaming.
func (r *statusRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

func (r *statusRecorder) code() string {
	if r.status == 0 {
		// Unset, will be set to 200 by stdlib.
		return "200"
	}
	return strconv.Itoa(r.status)
}
