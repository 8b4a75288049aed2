package sheets

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gobreaker "github.com/sony/gobreaker/v2"
	"github.com/vfg2006/permits-dashboard-api/infrastructure/integrator/sheets/mocks"
	"github.com/vfg2006/permits-dashboard-api/internal/config"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		Sheet: config.Sheet{
			SpreadsheetID:   "sheet-id",
			Worksheet:       "Listado General",
			FetchTimeout:    5 * time.Second,
			BreakerFailures: 2,
			BreakerTimeout:  time.Minute,
		},
	}
}

func TestSheetsService_Fetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	client.EXPECT().
		GetValues(gomock.Any(), "sheet-id", "Listado General").
		DoAndReturn(func(ctx context.Context, spreadsheetID, worksheet string) ([][]any, error) {
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline, "a busca deve respeitar o timeout configurado")
			return [][]any{
				{"fecha_creacion", "Ingresosnetos(conformato)", "nombre_producto"},
				{"15/01/2025 10:20:30", 1500.5, "Permiso Diario"},
				{"16/01/2025 08:00:00"},
			}, nil
		})

	service := New(testConfig(), client)

	ds, err := service.Fetch(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "google-sheets", service.Name())
	assert.Equal(t, []string{"fecha_creacion", "Ingresosnetos(conformato)", "nombre_producto"}, ds.Columns)
	require.Equal(t, 2, ds.Len())
	assert.Equal(t, 1500.5, ds.Rows[0]["Ingresosnetos(conformato)"])
	assert.Equal(t, "", ds.Rows[1]["nombre_producto"])
}

func TestSheetsService_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	upstream := errors.New("googleapi: Error 503")
	client := mocks.NewMockClient(ctrl)
	client.EXPECT().GetValues(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, upstream).Times(2)

	service := New(testConfig(), client)
	ctx := context.Background()

	_, err := service.Fetch(ctx)
	assert.ErrorIs(t, err, upstream)
	_, err = service.Fetch(ctx)
	assert.ErrorIs(t, err, upstream)
	assert.Equal(t, gobreaker.StateOpen, service.State())

	// Com o circuito aberto a API não é chamada
	_, err = service.Fetch(ctx)
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
}
