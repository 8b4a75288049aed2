// Package tabular converte células de planilha (cabeçalho + linhas) em dataset
package tabular

import (
	"fmt"
	"strings"

	"github.com/vfg2006/permits-dashboard-api/internal/domain"
)

// BuildDataset usa a primeira linha como cabeçalho e as demais como registros.
// Linhas mais curtas que o cabeçalho são completadas com texto vazio. Cabeçalhos em
// branco ou repetidos ganham nomes únicos (veja uniqueHeaders) para que cada posição
// tenha sua própria chave.
func BuildDataset(values [][]interface{}) *domain.Dataset {
	if len(values) == 0 {
		return domain.NewDataset(nil, nil)
	}

	columns := uniqueHeaders(values[0])

	rows := make([]domain.Row, 0, len(values)-1)
	for _, record := range values[1:] {
		row := make(domain.Row, len(columns))
		for i, column := range columns {
			var value interface{} = ""
			if i < len(record) && record[i] != nil {
				value = record[i]
			}
			row[column] = value
		}
		rows = append(rows, row)
	}

	return domain.NewDataset(columns, rows)
}

// FromStrings adapta linhas de texto (como as lidas de um xlsx) para BuildDataset
func FromStrings(records [][]string) *domain.Dataset {
	values := make([][]interface{}, len(records))
	for i, record := range records {
		values[i] = make([]interface{}, len(record))
		for j, cell := range record {
			values[i][j] = cell
		}
	}
	return BuildDataset(values)
}

// uniqueHeaders normaliza o cabeçalho. Coluna em branco vira "Unnamed: <posição>" e a
// repetição de um nome vira "<nome>.1", "<nome>.2"; a primeira ocorrência mantém o nome.
func uniqueHeaders(header []interface{}) []string {
	columns := make([]string, len(header))
	seen := make(map[string]bool, len(header))
	for i, cell := range header {
		name := headerName(cell)
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}

		candidate := name
		for n := 1; seen[candidate]; n++ {
			candidate = fmt.Sprintf("%s.%d", name, n)
		}
		seen[candidate] = true
		columns[i] = candidate
	}
	return columns
}

func headerName(cell interface{}) string {
	if cell == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprint(cell))
}
