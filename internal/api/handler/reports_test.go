package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/permits-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/permits-dashboard-api/internal/domain"
	"github.com/vfg2006/permits-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/permits-dashboard-api/internal/usecases/reporting/mocks"
	"github.com/vfg2006/permits-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func serve(rt http.Handler, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()
	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func TestReports_PermitCountParsesDateRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := mocks.NewMockReporter(ctrl)
	rt := router.New(router.WithRoutes(Reports(mockReporter)...))

	mockReporter.EXPECT().
		PermitCount(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, dateRange domain.DateRange) (*domain.PermitCount, error) {
			require.NotNil(t, dateRange.Start)
			require.NotNil(t, dateRange.End)
			assert.Equal(t, "2025-01-01", dateRange.Start.Format(time.DateOnly))
			assert.Equal(t, "2025-01-31", dateRange.End.Format(time.DateOnly))
			return &domain.PermitCount{Count: 42}, nil
		})

	rec := serve(rt, http.MethodGet, "/api/permit-count?start_date=01/01/2025&end_date=2025-01-31")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"count":42}`, rec.Body.String())
}

func TestReports_OpenRangeWithoutParameters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := mocks.NewMockReporter(ctrl)
	rt := router.New(router.WithRoutes(Reports(mockReporter)...))

	mockReporter.EXPECT().
		RevenueByDay(gomock.Any(), domain.DateRange{}).
		Return([]domain.DailyRevenue{
			{Date: "2023-01-01", Recaudacion: 150},
			{Date: "2023-01-02", Recaudacion: 75},
		}, nil)

	rec := serve(rt, http.MethodGet, "/api/recaudacion-por-dia")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"date":"2023-01-01","recaudacion":150},{"date":"2023-01-02","recaudacion":75}]`, rec.Body.String())
}

func TestReports_EmptyResultIsEmptyArray(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := mocks.NewMockReporter(ctrl)
	rt := router.New(router.WithRoutes(Reports(mockReporter)...))

	mockReporter.EXPECT().PermitsByRegion(gomock.Any(), gomock.Any()).Return([]domain.NameCount{}, nil)

	rec := serve(rt, http.MethodGet, "/api/regiones-count")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestReports_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := mocks.NewMockReporter(ctrl)
	rt := router.New(router.WithRoutes(Reports(mockReporter)...))

	tests := []struct {
		name       string
		target     string
		setup      func()
		wantStatus int
		wantCode   string
	}{
		{
			name:       "Data inválida",
			target:     "/api/chart-data?start_date=2025/31/01",
			setup:      func() {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidFormat,
		},
		{
			name:   "Coluna obrigatória ausente",
			target: "/api/categoria-pesca",
			setup: func() {
				mockReporter.EXPECT().
					PermitsByCategory(gomock.Any(), gomock.Any()).
					Return(nil, reporting.NewMissingFieldError("Producto"))
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrMissingField,
		},
		{
			name:   "Planilha indisponível",
			target: "/api/total-recaudacion",
			setup: func() {
				mockReporter.EXPECT().
					TotalRevenue(gomock.Any(), gomock.Any()).
					Return(nil, reporting.NewReportError(reporting.ErrDataSourceUnavailable, apiErrors.ErrDataSourceUnavailable, "quota exceeded"))
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   apiErrors.ErrDataSourceUnavailable,
		},
		{
			name:   "Colunas insuficientes",
			target: "/api/latest-records",
			setup: func() {
				mockReporter.EXPECT().
					LatestRecords(gomock.Any()).
					Return(nil, reporting.NewInsufficientColumnsError(17, 5))
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInsufficientColumns,
		},
		{
			name:   "Erro inesperado",
			target: "/api/debug-data",
			setup: func() {
				mockReporter.EXPECT().
					DebugData(gomock.Any()).
					Return(nil, errors.New("boom"))
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   apiErrors.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			rec := serve(rt, http.MethodGet, tt.target)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, decodeAPIError(t, rec).Code)
		})
	}
}

func TestReports_MissingFieldNamesTheColumn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := mocks.NewMockReporter(ctrl)
	rt := router.New(router.WithRoutes(Reports(mockReporter)...))

	mockReporter.EXPECT().
		PermitCount(gomock.Any(), gomock.Any()).
		Return(nil, reporting.NewMissingFieldError("Fecha"))

	rec := serve(rt, http.MethodGet, "/api/permit-count")

	apiErr := decodeAPIError(t, rec)
	assert.Contains(t, apiErr.Message, "Fecha")
	assert.Equal(t, map[string]any{"field": "Fecha"}, apiErr.Details)
}

func TestReports_DataSourceDetailStaysInLogs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := mocks.NewMockReporter(ctrl)
	rt := router.New(router.WithRoutes(Reports(mockReporter)...))

	mockReporter.EXPECT().
		PermitCount(gomock.Any(), gomock.Any()).
		Return(nil, reporting.NewReportError(reporting.ErrDataSourceUnavailable, apiErrors.ErrDataSourceUnavailable, "invalid_grant: service account key revoked"))

	rec := serve(rt, http.MethodGet, "/api/permit-count")

	assert.NotContains(t, rec.Body.String(), "invalid_grant")
}

func TestRouter_UnknownRoute(t *testing.T) {
	rt := router.New(router.WithRoutes(Healthcheck()...))

	rec := serve(rt, http.MethodGet, "/api/unknown")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrNotFound, decodeAPIError(t, rec).Code)
}
