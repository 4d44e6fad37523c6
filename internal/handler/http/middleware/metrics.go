package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/cmlabs-hris/hris-attendance-go/internal/pkg/metrics"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// Metrics records request latency and count labelled by chi route pattern.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		code := strconv.Itoa(status)

		metrics.RequestDuration.WithLabelValues(r.Method, route, code).Observe(time.Since(start).Seconds())
		metrics.RequestsTotal.WithLabelValues(r.Method, route, code).Inc()
	})
}
