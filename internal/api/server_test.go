package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/permits-dashboard-api/internal/api/handler"
	"github.com/vfg2006/permits-dashboard-api/internal/config"
	"github.com/vfg2006/permits-dashboard-api/internal/domain"
	"github.com/vfg2006/permits-dashboard-api/internal/usecases/authenticating"
	reportingmocks "github.com/vfg2006/permits-dashboard-api/internal/usecases/reporting/mocks"
	snapshottingmocks "github.com/vfg2006/permits-dashboard-api/internal/usecases/snapshotting/mocks"
	"go.uber.org/mock/gomock"
)

func newTestConfig() *config.Config {
	return &config.Config{
		Server: config.Server{AllowedOrigins: []string{"http://localhost:3000"}},
	}
}

func TestNewHandler_OpenWithoutSecret(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := reportingmocks.NewMockReporter(ctrl)
	mockReporter.EXPECT().PermitCount(gomock.Any(), gomock.Any()).Return(&domain.PermitCount{Count: 3}, nil)

	h := NewHandler(newTestConfig(), mockReporter, snapshottingmocks.NewMockSnapshotter(ctrl), authenticating.NewService(""), handler.CronJobServices{})

	req := httptest.NewRequest(http.MethodGet, "/api/permit-count", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"count":3}`, rec.Body.String())
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestNewHandler_RequiresTokenWithSecret(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewHandler(
		newTestConfig(),
		reportingmocks.NewMockReporter(ctrl),
		snapshottingmocks.NewMockSnapshotter(ctrl),
		authenticating.NewService("super-secret-jwt-token-with-at-least-32-characters"),
		handler.CronJobServices{},
	)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/permit-count", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "permits_dashboard_")
}
