package service

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/mmynk/tipsplit/internal/metrics"
	"github.com/mmynk/tipsplit/internal/middleware"
)

// NewRouter wires the split endpoints, health check and metrics.
func NewRouter(svc *SplitService, m *metrics.Metrics) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.Logging(m))
	r.Use(chimw.Recoverer)

	r.Get("/healthz", healthz)
	r.Method(http.MethodGet, "/metrics", m.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Post("/split", svc.CalculateSplit)
		r.Get("/split", svc.CalculateSplitQuery)
	})

	return r
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(`{"status":"ok"}`)); err != nil {
		slog.Warn("Failed to write health response", "error", err)
	}
}
