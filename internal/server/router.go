package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"atelier/internal/infrastructure/metrics"
)

type ReportHandlers interface {
	DigitizingReport(w http.ResponseWriter, r *http.Request)
	SalesReport(w http.ResponseWriter, r *http.Request)
	Quote(w http.ResponseWriter, r *http.Request)
	MinimumSalesTarget(w http.ResponseWriter, r *http.Request)
}

func NewRouter(reports ReportHandlers, reg *metrics.Registry, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(reg, logger))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Method(http.MethodGet, "/metrics", reg.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/reports/digitizing", reports.DigitizingReport)
		r.Get("/reports/sales", reports.SalesReport)
		r.Get("/pricing/quote", reports.Quote)
		r.Post("/finance/minimum-sales-target", reports.MinimumSalesTarget)
	})

	return r
}

// requestLogger records every request by its route pattern once the
// handler has returned.
func requestLogger(reg *metrics.Registry, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			route := chi.RouteContext(r.Context()).RoutePattern()
			if route == "" {
				route = "unmatched"
			}
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			reg.ObserveRequest(r.Method, route, status)
			logger.Debug("request served",
				zap.String("method", r.Method),
				zap.String("route", route),
				zap.Int("status", status),
				zap.Duration("duration", time.Since(start)),
				zap.String("requestId", middleware.GetReqID(r.Context())),
			)
		})
	}
}
