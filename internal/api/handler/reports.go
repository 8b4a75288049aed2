package handler

import (
	"context"
	"net/http"

	"github.com/vfg2006/permits-dashboard-api/internal/domain"
	"github.com/vfg2006/permits-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/permits-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/permits-dashboard-api/pkg/log"
)

// reportHandler lê o período da query, executa o relatório e escreve o JSON
func reportHandler[T any](name string, run func(ctx context.Context, dateRange domain.DateRange) (T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dateRange, err := dateRangeFromQuery(r)
		if err != nil {
			log.ForContext(r.Context()).WithFields(log.Fields{
				"report":     name,
				"start_date": r.URL.Query().Get("start_date"),
				"end_date":   r.URL.Query().Get("end_date"),
			}).Warn("api: invalid date range")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		result, err := run(r.Context(), dateRange)
		if err != nil {
			writeReportError(w, r, name, err)
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	}
}

// GetPermitCount retorna {count} com as permissões emitidas no período
func GetPermitCount(service reporting.Reporter) http.HandlerFunc {
	return reportHandler("permit-count", service.PermitCount)
}

// GetTotalRevenue retorna {total} com a arrecadação do período
func GetTotalRevenue(service reporting.Reporter) http.HandlerFunc {
	return reportHandler("total-recaudacion", service.TotalRevenue)
}

// GetChartData retorna a contagem diária usada no gráfico principal
func GetChartData(service reporting.Reporter) http.HandlerFunc {
	return reportHandler("chart-data", service.PermitsByDay)
}

func GetRevenueByDay(service reporting.Reporter) http.HandlerFunc {
	return reportHandler("recaudacion-por-dia", service.RevenueByDay)
}

func GetPermitsByCategory(service reporting.Reporter) http.HandlerFunc {
	return reportHandler("categoria-pesca", service.PermitsByCategory)
}

func GetPermitsByRegion(service reporting.Reporter) http.HandlerFunc {
	return reportHandler("regiones-count", service.PermitsByRegion)
}

func GetPermitsByMonth(service reporting.Reporter) http.HandlerFunc {
	return reportHandler("permisos-por-mes", service.PermitsByMonth)
}

func GetRevenueSummary(service reporting.Reporter) http.HandlerFunc {
	return reportHandler("recaudacion-resumen", service.RevenueSummary)
}

// GetLatestRecords retorna os últimos registros da planilha, sem filtro de período
func GetLatestRecords(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := service.LatestRecords(r.Context())
		if err != nil {
			writeReportError(w, r, "latest-records", err)
			return
		}

		writeJSON(w, r, http.StatusOK, records)
	}
}

// GetDebugData mostra o início e o fim da coluna de data depois do corte de linhas
func GetDebugData(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := service.DebugData(r.Context())
		if err != nil {
			writeReportError(w, r, "debug-data", err)
			return
		}

		writeJSON(w, r, http.StatusOK, data)
	}
}
