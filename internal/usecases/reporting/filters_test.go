package reporting

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/permits-dashboard-api/internal/domain"
)

const (
	testDateColumn    = "fecha_creacion"
	testRevenueColumn = "Ingresosnetos(conformato)"
	testProductColumn = "nombre_producto"
	testRegionColumn  = "Region/es"
)

var testColumns = []string{testDateColumn, testRevenueColumn, testProductColumn, testRegionColumn}

func datasetOf(rows ...domain.Row) *domain.Dataset {
	return domain.NewDataset(testColumns, rows)
}

func dateRow(date string) domain.Row {
	return domain.Row{testDateColumn: date}
}

func day(year int, month time.Month, d int) *time.Time {
	t := time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestApplyRowWindow(t *testing.T) {
	rows := make([]domain.Row, 10)
	for i := range rows {
		rows[i] = domain.Row{"id": i}
	}
	ds := domain.NewDataset([]string{"id"}, rows)

	tests := []struct {
		name     string
		startRow int
		wantLen  int
		firstID  int
	}{
		{name: "pula startRow-2 linhas", startRow: 5, wantLen: 7, firstID: 3},
		{name: "startRow 2 não pula nada", startRow: 2, wantLen: 10, firstID: 0},
		{name: "startRow 1 é tratado como zero", startRow: 1, wantLen: 10, firstID: 0},
		{name: "última linha", startRow: 11, wantLen: 1, firstID: 9},
		{name: "menos linhas que o corte", startRow: 100, wantLen: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyRowWindow(ds, tt.startRow)

			require.Equal(t, tt.wantLen, got.Len())
			assert.Equal(t, ds.Columns, got.Columns)
			if tt.wantLen > 0 {
				assert.Equal(t, tt.firstID, got.Rows[0]["id"])
				assert.Equal(t, ds.Rows[len(ds.Rows)-tt.wantLen:], got.Rows)
			}
		})
	}

	assert.Len(t, ds.Rows, 10, "o dataset original não deve ser alterado")
}

func TestApplyRowWindow_NilDataset(t *testing.T) {
	got := ApplyRowWindow(nil, 5)
	assert.True(t, got.IsEmpty())
}

func TestDateRangeFilter_EndDateIsInclusive(t *testing.T) {
	filter := DateRangeFilter{Column: testDateColumn}
	ds := datasetOf(
		dateRow("01/01/2024 08:00:00"),
		dateRow("02/01/2024 23:59:59"),
		dateRow("03/01/2024 00:00:00"),
	)

	got, err := filter.Apply(ds, domain.DateRange{End: day(2024, 1, 2)})
	require.NoError(t, err)

	require.Equal(t, 2, got.Len())
	assert.Equal(t, "02/01/2024 23:59:59", got.Rows[1].String(testDateColumn))
}

func TestDateRangeFilter_StartDateExcludesEarlierRows(t *testing.T) {
	filter := DateRangeFilter{Column: testDateColumn}
	ds := datasetOf(
		dateRow("31/12/2023 23:59:59"),
		dateRow("2024-01-01 00:00:00"),
		dateRow("05/01/2024 12:00:00"),
	)

	got, err := filter.Apply(ds, domain.DateRange{Start: day(2024, 1, 1)})
	require.NoError(t, err)

	require.Equal(t, 2, got.Len())
	assert.Equal(t, "2024-01-01 00:00:00", got.Rows[0].String(testDateColumn))
}

func TestDateRangeFilter_LocalTimezone(t *testing.T) {
	loc, err := time.LoadLocation("America/Argentina/Buenos_Aires")
	require.NoError(t, err)

	filter := DateRangeFilter{Column: testDateColumn, Location: loc}
	ds := datasetOf(
		dateRow("02/01/2024 23:30:00"), // 03/01 02:30 UTC, ainda é dia 02 no fuso local
		dateRow("03/01/2024 00:10:00"),
	)

	got, err := filter.Apply(ds, domain.DateRange{Start: day(2024, 1, 2), End: day(2024, 1, 2)})
	require.NoError(t, err)

	require.Equal(t, 1, got.Len())
	assert.Equal(t, "02/01/2024 23:30:00", got.Rows[0].String(testDateColumn))

	dated, err := filter.Dated(ds, domain.DateRange{})
	require.NoError(t, err)
	require.Len(t, dated, 2)
	assert.True(t, time.Date(2024, 1, 3, 2, 30, 0, 0, time.UTC).Equal(dated[0].Instant))
	assert.Equal(t, 2, dated[0].Wall.Day())
}

func TestDateRangeFilter_DropsUnparseableRows(t *testing.T) {
	filter := DateRangeFilter{Column: testDateColumn}
	ds := datasetOf(
		dateRow("sem data"),
		dateRow(""),
		domain.Row{testDateColumn: nil},
		dateRow("10/02/2024 10:00:00"),
	)

	got, err := filter.Apply(ds, domain.DateRange{})
	require.NoError(t, err)

	require.Equal(t, 1, got.Len())
	assert.Equal(t, "10/02/2024 10:00:00", got.Rows[0].String(testDateColumn))
}

func TestDateRangeFilter_Idempotent(t *testing.T) {
	filter := DateRangeFilter{Column: testDateColumn}

	rows := make([]domain.Row, 0, 40)
	for i := 1; i <= 40; i++ {
		rows = append(rows, dateRow(fmt.Sprintf("%02d/01/2024 12:00:00", (i%28)+1)))
	}
	ds := datasetOf(rows...)
	dateRange := domain.DateRange{Start: day(2024, 1, 5), End: day(2024, 1, 20)}

	once, err := filter.Apply(ds, dateRange)
	require.NoError(t, err)
	twice, err := filter.Apply(once, dateRange)
	require.NoError(t, err)

	assert.Equal(t, once.Rows, twice.Rows)
	assert.Len(t, ds.Rows, 40)
}

func TestDateRangeFilter_MissingColumn(t *testing.T) {
	filter := DateRangeFilter{Column: "fecha"}

	_, err := filter.Apply(datasetOf(dateRow("01/01/2024 10:00:00")), domain.DateRange{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingField)

	var reportErr *ReportError
	require.ErrorAs(t, err, &reportErr)
	assert.Equal(t, "fecha", reportErr.Field)
}

func TestDateRangeFilter_EmptyDatasetSkipsColumnCheck(t *testing.T) {
	filter := DateRangeFilter{Column: "fecha"}

	got, err := filter.Apply(domain.NewDataset(nil, nil), domain.DateRange{Start: day(2024, 1, 1)})
	require.NoError(t, err)
	assert.True(t, got.IsEmpty())
}

func TestDateRangeFilter_NilDataset(t *testing.T) {
	filter := DateRangeFilter{Column: testDateColumn}

	got, err := filter.Apply(nil, domain.DateRange{})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.IsEmpty())

	dated, err := filter.Dated(nil, domain.DateRange{End: day(2024, 1, 1)})
	require.NoError(t, err)
	assert.Empty(t, dated)
}

func TestDateRangeFilter_AmbiguousTimesIgnoreNeighbourRows(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	filter := DateRangeFilter{Column: testDateColumn, Location: loc}
	// Em 03/11/2024 a hora 01:00-02:00 se repete. A ordem das linhas sugere que a
	// segunda já é do segundo ciclo, mas as duas ficam no horário de verão (UTC-4).
	ds := datasetOf(
		dateRow("03/11/2024 01:50:00"),
		dateRow("03/11/2024 01:10:00"),
	)

	dated, err := filter.Dated(ds, domain.DateRange{})
	require.NoError(t, err)
	require.Len(t, dated, 2)

	assert.True(t, time.Date(2024, 11, 3, 5, 50, 0, 0, time.UTC).Equal(dated[0].Instant), "obtido %s", dated[0].Instant.UTC())
	assert.True(t, time.Date(2024, 11, 3, 5, 10, 0, 0, time.UTC).Equal(dated[1].Instant), "obtido %s", dated[1].Instant.UTC())
}
