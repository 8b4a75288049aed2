package reporting

import (
	"sort"
	"strings"
	"time"

	"github.com/montanaflynn/stats"
	"github.com/vfg2006/permits-dashboard-api/internal/domain"
	"github.com/vfg2006/permits-dashboard-api/pkg/utils"
)

const (
	dayFormat   = time.DateOnly
	monthFormat = "2006-01"
)

// CountByDay conta as linhas por dia do calendário local, em ordem crescente de data
func CountByDay(rows []DatedRow) []domain.DailyCount {
	counts := make(map[string]int)
	for _, row := range rows {
		counts[row.Wall.Format(dayFormat)]++
	}

	result := make([]domain.DailyCount, 0, len(counts))
	for date, count := range counts {
		result = append(result, domain.DailyCount{Date: date, Count: count})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date < result[j].Date })

	return result
}

// SumByDay soma a arrecadação por dia. Valores não numéricos contam como zero.
func SumByDay(rows []DatedRow, revenueColumn string) []domain.DailyRevenue {
	sums := make(map[string]float64)
	for _, row := range rows {
		value, _ := row.Row.Float(revenueColumn)
		sums[row.Wall.Format(dayFormat)] += value
	}

	result := make([]domain.DailyRevenue, 0, len(sums))
	for date, total := range sums {
		result = append(result, domain.DailyRevenue{Date: date, Recaudacion: utils.RoundWithTwoDecimalPlace(total)})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date < result[j].Date })

	return result
}

// CountByMonth conta as linhas por mês (yyyy-mm), em ordem crescente
func CountByMonth(rows []DatedRow) []domain.MonthlyCount {
	counts := make(map[string]int)
	for _, row := range rows {
		counts[row.Wall.Format(monthFormat)]++
	}

	result := make([]domain.MonthlyCount, 0, len(counts))
	for month, count := range counts {
		result = append(result, domain.MonthlyCount{Month: month, Count: count})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Month < result[j].Month })

	return result
}

// TotalRevenue soma a coluna de arrecadação de todas as linhas
func TotalRevenue(rows []DatedRow, revenueColumn string) float64 {
	var total float64
	for _, row := range rows {
		value, _ := row.Row.Float(revenueColumn)
		total += value
	}
	return utils.RoundWithTwoDecimalPlace(total)
}

// CountByCategory conta as linhas por produto, da maior para a menor contagem.
// Empates mantêm a ordem em que o produto apareceu primeiro.
func CountByCategory(rows []DatedRow, productColumn string) []domain.NameCount {
	result := make([]domain.NameCount, 0)
	positions := make(map[string]int)

	for _, row := range rows {
		name := row.Row.String(productColumn)
		if name == "" {
			continue
		}

		if pos, ok := positions[name]; ok {
			result[pos].Count++
			continue
		}
		positions[name] = len(result)
		result = append(result, domain.NameCount{Name: name, Count: 1})
	}

	sort.SliceStable(result, func(i, j int) bool { return result[i].Count > result[j].Count })

	return result
}

// CountByRegion separa o campo de regiões por vírgula e conta apenas as regiões conhecidas.
// A saída segue a ordem em que cada região apareceu e omite as regiões sem ocorrência.
func CountByRegion(rows []DatedRow, regionColumn string, allowed []string) []domain.NameCount {
	allowList := make(map[string]struct{}, len(allowed))
	for _, region := range allowed {
		allowList[region] = struct{}{}
	}

	result := make([]domain.NameCount, 0)
	positions := make(map[string]int)

	for _, row := range rows {
		for _, label := range strings.Split(row.Row.String(regionColumn), ",") {
			label = strings.TrimSpace(label)
			if _, ok := allowList[label]; !ok {
				continue
			}

			if pos, ok := positions[label]; ok {
				result[pos].Count++
				continue
			}
			positions[label] = len(result)
			result = append(result, domain.NameCount{Name: label, Count: 1})
		}
	}

	return result
}

// SummarizeRevenue calcula estatísticas sobre a arrecadação diária do período
func SummarizeRevenue(daily []domain.DailyRevenue) (*domain.RevenueSummary, error) {
	summary := &domain.RevenueSummary{Days: len(daily)}
	if len(daily) == 0 {
		return summary, nil
	}

	values := make(stats.Float64Data, 0, len(daily))
	for _, day := range daily {
		values = append(values, day.Recaudacion)
	}

	total, err := values.Sum()
	if err != nil {
		return nil, err
	}
	mean, err := values.Mean()
	if err != nil {
		return nil, err
	}
	minimum, err := values.Min()
	if err != nil {
		return nil, err
	}
	maximum, err := values.Max()
	if err != nil {
		return nil, err
	}
	median, err := values.Median()
	if err != nil {
		return nil, err
	}
	p90, err := values.Percentile(90)
	if err != nil {
		return nil, err
	}

	summary.Total = utils.RoundWithTwoDecimalPlace(total)
	summary.DailyMean = utils.RoundWithTwoDecimalPlace(mean)
	summary.DailyMin = utils.RoundWithTwoDecimalPlace(minimum)
	summary.DailyMax = utils.RoundWithTwoDecimalPlace(maximum)
	summary.DailyMedian = utils.RoundWithTwoDecimalPlace(median)
	summary.DailyP90 = utils.RoundWithTwoDecimalPlace(p90)

	return summary, nil
}

// LatestRecords projeta as últimas linhas nas colunas posicionais informadas, na ordem original.
// Células ausentes viram texto vazio.
func LatestRecords(ds *domain.Dataset, columns []int, limit int) ([]domain.LatestRecord, error) {
	if ds.IsEmpty() {
		return []domain.LatestRecord{}, nil
	}

	required := 0
	for _, index := range columns {
		if index+1 > required {
			required = index + 1
		}
	}
	if len(ds.Columns) < required {
		return nil, NewInsufficientColumnsError(required, len(ds.Columns))
	}

	rows := ds.Rows
	if limit > 0 && len(rows) > limit {
		rows = rows[len(rows)-limit:]
	}

	result := make([]domain.LatestRecord, 0, len(rows))
	for _, row := range rows {
		record := make(domain.LatestRecord, len(columns))
		for _, index := range columns {
			name := ds.Columns[index]
			value, ok := row[name]
			if !ok || value == nil {
				value = ""
			}
			record[name] = value
		}
		result = append(result, record)
	}

	return result, nil
}

// debugSampleSize é a quantidade de linhas no início e no fim da amostra de depuração
const debugSampleSize = 10

// BuildDebugData monta a amostra da coluna de data depois do corte de linhas.
// offset é a quantidade de linhas descartadas antes do dataset recebido.
func BuildDebugData(ds *domain.Dataset, dateColumn string, offset int) *domain.DebugData {
	hasDate := ds.HasColumn(dateColumn)

	entry := func(i int) map[string]any {
		item := map[string]any{"original_index": offset + i}
		if hasDate {
			item[dateColumn] = ds.Rows[i][dateColumn]
		} else {
			item["message"] = "DATE_COLUMN not found"
		}
		return item
	}

	total := ds.Len()
	headEnd := min(debugSampleSize, total)
	tailStart := max(total-debugSampleSize, 0)

	data := &domain.DebugData{
		Head:                       make([]map[string]any, 0, headEnd),
		Tail:                       make([]map[string]any, 0, total-tailStart),
		TotalRowsAfterPermitFilter: total,
	}
	for i := 0; i < headEnd; i++ {
		data.Head = append(data.Head, entry(i))
	}
	for i := tailStart; i < total; i++ {
		data.Tail = append(data.Tail, entry(i))
	}

	return data
}
