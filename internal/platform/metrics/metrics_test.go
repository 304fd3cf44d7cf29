package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestRecorder_ObserveComputation(t *testing.T) {
	r := New()

	r.ObserveComputation("player_history", 12*time.Millisecond, nil)
	r.ObserveComputation("player_history", 3*time.Millisecond, errors.New("boom"))
	r.ObserveComputation("player_history", 4*time.Millisecond, nil)

	body := scrape(t, r)
	for _, want := range []string{
		`galero_engine_computations_total{operation="player_history",outcome="success"} 2`,
		`galero_engine_computations_total{operation="player_history",outcome="error"} 1`,
		`galero_engine_computation_duration_seconds_count{operation="player_history"} 3`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected %q in output, got:\n%s", want, body)
		}
	}
}

func TestRecorder_NilIsNoop(t *testing.T) {
	var r *Recorder
	r.ObserveComputation("x", time.Second, nil)
	r.ObserveHTTPRequest("GET", "/healthz", http.StatusOK, time.Second)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 from nil recorder handler, got %d", rec.Code)
	}
}

func TestRecorder_HandlerExposesMetrics(t *testing.T) {
	r := New()
	r.ObserveHTTPRequest(http.MethodGet, "GET /v1/editions", http.StatusOK, 5*time.Millisecond)

	body := scrape(t, r)
	if !strings.Contains(body, `galero_http_requests_total{method="GET",route="GET /v1/editions",status="200"} 1`) {
		t.Fatalf("expected http request counter in output, got:\n%s", body)
	}
}

func scrape(t *testing.T, r *Recorder) string {
	t.Helper()
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	return rec.Body.String()
}
