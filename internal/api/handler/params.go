package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/permits-dashboard-api/internal/domain"
	"github.com/vfg2006/permits-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/permits-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/permits-dashboard-api/pkg/log"
	"github.com/vfg2006/permits-dashboard-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// dateRangeFromQuery lê start_date e end_date. Parâmetros ausentes deixam o limite aberto.
func dateRangeFromQuery(r *http.Request) (domain.DateRange, error) {
	query := r.URL.Query()

	start, err := utils.ParseDay(query.Get("start_date"))
	if err != nil {
		return domain.DateRange{}, err
	}

	end, err := utils.ParseDay(query.Get("end_date"))
	if err != nil {
		return domain.DateRange{}, err
	}

	return domain.DateRange{Start: start, End: end}, nil
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("api: failed to encode response")
	}
}

// writeReportError traduz os erros dos relatórios para a resposta da API.
// O detalhe de falhas na origem fica só no log.
func writeReportError(w http.ResponseWriter, r *http.Request, report string, err error) {
	logger := log.ForContext(r.Context()).WithField("report", report)

	var reportErr *reporting.ReportError
	if !errors.As(err, &reportErr) {
		logger.WithError(err).Error("api: unexpected report error")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar relatório", nil)
		return
	}

	switch {
	case errors.Is(err, reporting.ErrMissingField):
		logger.WithField("field", reportErr.Field).Warn("api: required column missing from worksheet")
		apiErrors.WriteError(w, reportErr.Code, reportErr.Error(), map[string]string{"field": reportErr.Field})
	case errors.Is(err, reporting.ErrInsufficientColumns):
		logger.WithError(err).Warn("api: worksheet has fewer columns than configured")
		apiErrors.WriteError(w, reportErr.Code, reportErr.Error(), nil)
	default:
		logger.WithError(err).Error("api: report failed")
		apiErrors.WriteError(w, reportErr.Code, "Erro ao obter dados da planilha", nil)
	}
}
