// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"math"
	"strconv"
	"strings"
)

// Row representa uma linha da planilha indexada pelo nome da coluna (cabeçalho).
// Os valores podem ser string, float64, bool ou nil.
type Row map[string]any

// Dataset é o conjunto ordenado de linhas da planilha, na mesma ordem da origem.
// Columns preserva a ordem do cabeçalho para as consultas posicionais.
type Dataset struct {
	Columns []string
	Rows    []Row
}

// NewDataset cria um dataset a partir do cabeçalho e das linhas já convertidas
func NewDataset(columns []string, rows []Row) *Dataset {
	if rows == nil {
		rows = []Row{}
	}
	return &Dataset{
		Columns: columns,
		Rows:    rows,
	}
}

// Len retorna a quantidade de linhas do dataset
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Rows)
}

// IsEmpty indica se o dataset não possui linhas
func (d *Dataset) IsEmpty() bool {
	return d.Len() == 0
}

// HasColumn verifica se o cabeçalho contém a coluna informada
func (d *Dataset) HasColumn(name string) bool {
	if d == nil {
		return false
	}
	for _, column := range d.Columns {
		if column == name {
			return true
		}
	}
	return false
}

// WithRows cria um novo dataset com o mesmo cabeçalho e outras linhas.
// O dataset original não é alterado.
func (d *Dataset) WithRows(rows []Row) *Dataset {
	return NewDataset(d.Columns, rows)
}

// String retorna o valor da coluna como texto. Números são formatados sem zeros à direita.
func (r Row) String(field string) string {
	switch v := r[field].(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

// Float retorna o valor numérico da coluna e se a conversão foi possível.
// NaN e infinito não contam como número.
func (r Row) Float(field string) (float64, bool) {
	switch v := r[field].(type) {
	case float64:
		return finite(v)
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return finite(f)
	default:
		return 0, false
	}
}

func finite(f float64) (float64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
