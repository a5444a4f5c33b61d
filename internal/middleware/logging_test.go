package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/mmynk/tipsplit/internal/metrics"
)

func newTestRouter(m *metrics.Metrics, seen *string) http.Handler {
	r := chi.NewRouter()
	r.Use(Logging(m))
	r.Get("/ping/{name}", func(w http.ResponseWriter, r *http.Request) {
		*seen = GetRequestID(r.Context())
		w.WriteHeader(http.StatusTeapot)
	})
	return r
}

func TestLogging_GeneratesRequestID(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	var seen string
	router := newTestRouter(m, &seen)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping/alice", nil))

	id := rec.Header().Get(RequestIDHeader)
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("response request ID %q is not a uuid: %v", id, err)
	}
	if seen != id {
		t.Errorf("handler saw request ID %q, response has %q", seen, id)
	}
	if rec.Code != http.StatusTeapot {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusTeapot)
	}
}

func TestLogging_KeepsIncomingRequestID(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	var seen string
	router := newTestRouter(m, &seen)

	req := httptest.NewRequest(http.MethodGet, "/ping/bob", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if got := rec.Header().Get(RequestIDHeader); got != "abc-123" {
		t.Errorf("response request ID = %q, want abc-123", got)
	}
	if seen != "abc-123" {
		t.Errorf("handler saw request ID %q, want abc-123", seen)
	}
}

func TestLogging_RecordsMetricsByRoutePattern(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	var seen string
	router := newTestRouter(m, &seen)

	for _, name := range []string{"a", "b", "c"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping/"+name, nil))
	}

	got := testutil.ToFloat64(m.Requests.WithLabelValues(http.MethodGet, "/ping/{name}", "418"))
	if got != 3 {
		t.Errorf("requests for /ping/{name} = %v, want 3", got)
	}
	if n := testutil.CollectAndCount(m.RequestDuration); n != 1 {
		t.Errorf("duration series = %d, want 1", n)
	}
}

func TestGetRequestID_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := GetRequestID(req.Context()); got != "" {
		t.Errorf("GetRequestID = %q, want empty", got)
	}
}
