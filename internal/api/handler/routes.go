package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/permits-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/permits-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/permits-dashboard-api/internal/usecases/snapshotting"
	"github.com/vfg2006/permits-dashboard-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

// Reports monta as rotas consumidas pelo dashboard
func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/api/permit-count",
			Method:  http.MethodGet,
			Handler: GetPermitCount(service),
		},
		{
			Path:    "/api/total-recaudacion",
			Method:  http.MethodGet,
			Handler: GetTotalRevenue(service),
		},
		{
			Path:    "/api/chart-data",
			Method:  http.MethodGet,
			Handler: GetChartData(service),
		},
		{
			Path:    "/api/recaudacion-por-dia",
			Method:  http.MethodGet,
			Handler: GetRevenueByDay(service),
		},
		{
			Path:    "/api/categoria-pesca",
			Method:  http.MethodGet,
			Handler: GetPermitsByCategory(service),
		},
		{
			Path:    "/api/regiones-count",
			Method:  http.MethodGet,
			Handler: GetPermitsByRegion(service),
		},
		{
			Path:    "/api/latest-records",
			Method:  http.MethodGet,
			Handler: GetLatestRecords(service),
		},
		{
			Path:    "/api/permisos-por-mes",
			Method:  http.MethodGet,
			Handler: GetPermitsByMonth(service),
		},
		{
			Path:    "/api/recaudacion-resumen",
			Method:  http.MethodGet,
			Handler: GetRevenueSummary(service),
		},
		{
			Path:    "/api/debug-data",
			Method:  http.MethodGet,
			Handler: GetDebugData(service),
		},
	}
}

func Snapshot(service snapshotting.Snapshotter) []router.Route {
	return []router.Route{
		{
			Path:    "/api/snapshot/status",
			Method:  http.MethodGet,
			Handler: GetSnapshotStatus(service),
		},
		{
			Path:        "/api/snapshot/refresh",
			Method:      http.MethodPost,
			Handler:     RefreshSnapshot(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ServiceRoleOnly()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/api/cron/:type",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.ServiceRoleOnly()},
		},
		{
			Path:        "/api/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.ServiceRoleOnly()},
		},
	}
}
