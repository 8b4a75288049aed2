package reporting

import (
	"time"

	"github.com/vfg2006/permits-dashboard-api/internal/domain"
	"github.com/vfg2006/permits-dashboard-api/pkg/utils"
)

// ApplyRowWindow descarta as linhas anteriores ao início dos dados reais.
// startRow é 1-based e conta o cabeçalho como linha 1, por isso são puladas startRow-2 linhas.
func ApplyRowWindow(ds *domain.Dataset, startRow int) *domain.Dataset {
	if ds == nil {
		return domain.NewDataset(nil, nil)
	}

	skip := startRow - 2
	if skip < 0 {
		skip = 0
	}
	if skip >= len(ds.Rows) {
		return ds.WithRows(nil)
	}

	return ds.WithRows(ds.Rows[skip:])
}

// DatedRow é uma linha com o horário já resolvido para o fuso configurado
type DatedRow struct {
	Row     domain.Row
	Wall    time.Time // Horário de parede, usado para agrupar por dia
	Instant time.Time // Instante absoluto, usado na comparação com os limites
}

// DateRangeFilter restringe o dataset a um intervalo de dias no fuso Location
type DateRangeFilter struct {
	Column   string
	Location *time.Location
}

// Apply retorna um novo dataset só com as linhas de data válida dentro do intervalo
func (f DateRangeFilter) Apply(ds *domain.Dataset, dateRange domain.DateRange) (*domain.Dataset, error) {
	if ds == nil {
		return domain.NewDataset(nil, nil), nil
	}

	dated, err := f.Dated(ds, dateRange)
	if err != nil {
		return nil, err
	}

	rows := make([]domain.Row, 0, len(dated))
	for _, d := range dated {
		rows = append(rows, d.Row)
	}
	return ds.WithRows(rows), nil
}

// Dated filtra como Apply, mas mantém o horário interpretado de cada linha
// para que os agregadores não precisem interpretar a data de novo.
func (f DateRangeFilter) Dated(ds *domain.Dataset, dateRange domain.DateRange) ([]DatedRow, error) {
	if ds.IsEmpty() {
		return []DatedRow{}, nil
	}
	if !ds.HasColumn(f.Column) {
		return nil, NewMissingFieldError(f.Column)
	}

	var start, end *time.Time
	if dateRange.Start != nil {
		s := utils.StartOfDay(*dateRange.Start, f.Location)
		start = &s
	}
	if dateRange.End != nil {
		e := utils.EndOfDay(*dateRange.End, f.Location)
		end = &e
	}

	result := make([]DatedRow, 0, len(ds.Rows))
	for _, row := range ds.Rows {
		wall, ok := utils.ParseTimestamp(row.String(f.Column))
		if !ok {
			continue
		}

		instant := utils.LocalInstant(wall, f.Location)
		if start != nil && instant.Before(*start) {
			continue
		}
		if end != nil && instant.After(*end) {
			continue
		}

		result = append(result, DatedRow{Row: row, Wall: wall, Instant: instant})
	}

	return result, nil
}
