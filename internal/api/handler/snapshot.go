package handler

import (
	"net/http"

	"github.com/vfg2006/permits-dashboard-api/internal/usecases/snapshotting"
	"github.com/vfg2006/permits-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/permits-dashboard-api/pkg/log"
)

// GetSnapshotStatus descreve o snapshot em cache e as últimas buscas registradas
func GetSnapshotStatus(service snapshotting.Snapshotter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, service.Status(r.Context()))
	}
}

// RefreshSnapshot força uma nova leitura da planilha
func RefreshSnapshot(service snapshotting.Snapshotter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, err := service.Refresh(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("api: forced snapshot refresh failed")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao atualizar os dados da planilha", status)
			return
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}
