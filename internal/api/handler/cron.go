package handler

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/permits-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/permits-dashboard-api/pkg/log"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeSnapshotWarmup = "snapshot-warmup"
)

// CronJob é a visão que os handlers têm de um agendador
type CronJob interface {
	TriggerManualSync(ctx context.Context)
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	SnapshotWarmupService CronJob
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeSnapshotWarmup:
			if services.SnapshotWarmupService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de aquecimento do snapshot não disponível", nil)
				return
			}
			services.SnapshotWarmupService.TriggerManualSync(r.Context())
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: snapshot-warmup", nil)
			return
		}

		log.ForContext(r.Context()).WithField("cron_type", cronType).Info("api: cron job triggered manually")

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.SnapshotWarmupService != nil {
			status[CronJobTypeSnapshotWarmup] = services.SnapshotWarmupService.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}
