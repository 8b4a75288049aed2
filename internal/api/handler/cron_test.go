package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/permits-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/permits-dashboard-api/pkg/apiErrors"
)

type fakeCronJob struct {
	triggered int
}

func (f *fakeCronJob) TriggerManualSync(ctx context.Context) {
	f.triggered++
}

func (f *fakeCronJob) GetStatus() map[string]any {
	return map[string]any{"sync_enabled": true}
}

func TestCronJobs(t *testing.T) {
	job := &fakeCronJob{}
	rt := router.New(router.WithRoutes(CronJobs(CronJobServices{SnapshotWarmupService: job})...))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, withClaims(httptest.NewRequest(http.MethodPost, "/api/cron/snapshot-warmup", nil), "service_role"))
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, 1, job.triggered)

	rec = httptest.NewRecorder()
	rt.ServeHTTP(rec, withClaims(httptest.NewRequest(http.MethodPost, "/api/cron/unknown", nil), "service_role"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidRequest, decodeAPIError(t, rec).Code)

	rec = httptest.NewRecorder()
	rt.ServeHTTP(rec, withClaims(httptest.NewRequest(http.MethodGet, "/api/cron/status", nil), "service_role"))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"snapshot-warmup":{"sync_enabled":true}}`, rec.Body.String())
	assert.Equal(t, 1, job.triggered)
}
