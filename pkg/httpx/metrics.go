package httpx

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var httpRequestsDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "kitty",
	Subsystem: "http",
	Name:      "request_duration_seconds",
	Help:      "The latency of the HTTP requests.",
	Buckets:   prometheus.DefBuckets,
}, []string{"route", "method", "code"})

// MetricsMiddleware records request latency labelled by the mux route pattern
// rather than the raw path, so tokens and ids don't explode cardinality.
func MetricsMiddleware() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rw, r)

			route := r.Pattern
			if route == "" {
				route = "unmatched"
			}
			httpRequestsDuration.With(prometheus.Labels{
				"route":  route,
				"method": r.Method,
				"code":   strconv.Itoa(rw.status),
			}).Observe(time.Since(start).Seconds())
		})
	}
}

type statusWriter struct {
	http.ResponseWriter

	status int
}

func (sw *statusWriter) WriteHeader(code int) {
	sw.status = code
	sw.ResponseWriter.WriteHeader(code)
}
