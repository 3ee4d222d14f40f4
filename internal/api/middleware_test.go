package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	promtest "github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCors_Preflight(t *testing.T) {
	called := false
	h := Cors(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true }))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/v1/palettes", nil))

	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", rec.Code)
	}
	if called {
		t.Error("preflight should not reach the handler")
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Allow-Origin = %q", got)
	}
}

func TestLogging_RecordsRoutePattern(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/palettes/{name}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short and stout"))
	})
	h := Logging(mux)

	counter := MetricRequests.WithLabelValues("GET", "GET /api/v1/palettes/{name}", "418")
	before := promtest.ToFloat64(counter)

	for _, name := range []string{"set1", "paired"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/palettes/"+name, nil))
		if rec.Code != http.StatusTeapot {
			t.Fatalf("status = %d", rec.Code)
		}
	}

	if got := promtest.ToFloat64(counter) - before; got != 2 {
		t.Errorf("route counter grew by %v, want 2", got)
	}
}

func TestLogging_Unmatched(t *testing.T) {
	h := Logging(http.NewServeMux())
	counter := MetricRequests.WithLabelValues("GET", "unmatched", "404")
	before := promtest.ToFloat64(counter)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

	if got := promtest.ToFloat64(counter) - before; got != 1 {
		t.Errorf("unmatched counter grew by %v, want 1", got)
	}
}
