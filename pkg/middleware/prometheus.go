package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/vfg2006/permits-dashboard-api/pkg/metrics"
)

// statusRecorder guarda o status escrito pelo handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// PrometheusMiddleware registra contagem e duração das requisições de uma rota.
// O rótulo usa o padrão da rota e não a URL, para não explodir a cardinalidade.
func PrometheusMiddleware(route string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(recorder, r)

			metrics.RecordAPIRequest(r.Method, route, strconv.Itoa(recorder.status), time.Since(start))
		})
	}
}
