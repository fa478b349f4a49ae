package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveFeed(t *testing.T) {
	before := testutil.ToFloat64(feedFetches.WithLabelValues("tides", OutcomeUnavailable))
	ObserveFeed("tides", OutcomeUnavailable)
	ObserveFeed("tides", OutcomeOK)
	after := testutil.ToFloat64(feedFetches.WithLabelValues("tides", OutcomeUnavailable))
	if after-before != 1 {
		t.Errorf("unavailable tides counter moved by %v, wanted 1", after-before)
	}
}

func TestObserveVisitor(t *testing.T) {
	before := testutil.ToFloat64(visitors.WithLabelValues("returning"))
	ObserveVisitor(true)
	if got := testutil.ToFloat64(visitors.WithLabelValues("returning")) - before; got != 1 {
		t.Errorf("returning visitors moved by %v, wanted 1", got)
	}
}

func TestLatencyHandlerRecordsStatus(t *testing.T) {
	h := LatencyHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	before := testutil.CollectAndCount(requestLatency)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/teapot", nil))

	if rec.Code != http.StatusTeapot {
		t.Errorf("got status %d", rec.Code)
	}
	if got := testutil.CollectAndCount(requestLatency); got != before+1 {
		t.Errorf("got %d latency series, wanted %d", got, before+1)
	}
}
