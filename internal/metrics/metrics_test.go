package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestComputationsCounter(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.Computations.WithLabelValues(ResultOK).Inc()
	m.Computations.WithLabelValues(ResultOK).Inc()
	m.Computations.WithLabelValues(ResultInvalid).Inc()

	if got := testutil.ToFloat64(m.Computations.WithLabelValues(ResultOK)); got != 2 {
		t.Errorf("ok computations = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.Computations.WithLabelValues(ResultInvalid)); got != 1 {
		t.Errorf("invalid computations = %v, want 1", got)
	}
}

func TestHandler(t *testing.T) {
	m := New(prometheus.NewRegistry())
	m.Requests.WithLabelValues("GET", "/healthz", "200").Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), `tipsplit_http_requests_total{method="GET",route="/healthz",status="200"} 1`) {
		t.Errorf("metrics output missing request counter:\n%s", body)
	}
}
