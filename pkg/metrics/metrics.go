// Package metrics concentra as métricas Prometheus da API
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "permits_dashboard"

var (
	// Busca na planilha
	SheetFetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sheet_fetch_total",
			Help:      "Total de buscas na origem da planilha por resultado",
		},
		[]string{"source", "outcome"},
	)

	SheetFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sheet_fetch_duration_seconds",
			Help:      "Duração das buscas na origem da planilha",
			Buckets:   []float64{0.25, 0.5, 1, 2.5, 5, 10, 20, 45},
		},
		[]string{"source"},
	)

	SheetCircuitState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sheet_circuit_state",
			Help:      "Estado do circuit breaker da planilha (0=fechado, 1=meio aberto, 2=aberto)",
		},
		[]string{"source"},
	)

	// Cache do snapshot
	SnapshotCacheRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "snapshot_cache_requests_total",
			Help:      "Leituras do cache do snapshot por resultado (hit, refresh, stale, unavailable)",
		},
		[]string{"result"},
	)

	SnapshotRows = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "snapshot_rows",
			Help:      "Quantidade de linhas no snapshot atual",
		},
	)

	SnapshotAgeAtRefresh = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "snapshot_age_at_refresh_seconds",
			Help:      "Idade do snapshot anterior no momento da atualização",
			Buckets:   prometheus.ExponentialBuckets(30, 2, 8),
		},
	)

	// API
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_requests_total",
			Help:      "Total de requisições por rota e status",
		},
		[]string{"method", "route", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "api_request_duration_seconds",
			Help:      "Duração das requisições por rota",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

// Resultados de leitura do cache
const (
	CacheHit         = "hit"
	CacheRefresh     = "refresh"
	CacheStale       = "stale"
	CacheUnavailable = "unavailable"
)

// RecordSheetFetch registra uma busca na origem
func RecordSheetFetch(source string, duration time.Duration, err error) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	SheetFetchTotal.WithLabelValues(source, outcome).Inc()
	SheetFetchDuration.WithLabelValues(source).Observe(duration.Seconds())
}

// RecordCacheRead registra o resultado de uma leitura do cache
func RecordCacheRead(result string) {
	SnapshotCacheRequests.WithLabelValues(result).Inc()
}

// RecordAPIRequest registra uma requisição HTTP
func RecordAPIRequest(method, route, status string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, route, status).Inc()
	APIRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}
