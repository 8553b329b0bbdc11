package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/vfg2006/sdr-dashboard-api/pkg/metrics"
)

// MetricsMiddleware conta requisições e mede a duração por rota. Recebe o
// padrão da rota (ex: /v1/periods/:period) para não explodir a cardinalidade.
func MetricsMiddleware(collectors *metrics.Collectors, method, pattern string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if collectors == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lrw := newLoggingResponseWriter(w)
			startTime := time.Now()

			next.ServeHTTP(lrw, r)

			collectors.HTTPDuration.WithLabelValues(method, pattern).Observe(time.Since(startTime).Seconds())
			collectors.HTTPRequests.WithLabelValues(method, pattern, strconv.Itoa(lrw.statusCode)).Inc()
		})
	}
}
