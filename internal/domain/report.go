package domain

import "time"

// DateRange representa um intervalo opcional de dias inclusivos no fuso configurado.
// Start <= End não é validado.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// IsZero indica que nenhum limite foi informado
func (r DateRange) IsZero() bool {
	return r.Start == nil && r.End == nil
}

type PermitCount struct {
	Count int `json:"count"`
}

type RevenueTotal struct {
	Total float64 `json:"total"`
}

type DailyCount struct {
	Date  string `json:"date"` // Formato yyyy-mm-dd
	Count int    `json:"count"`
}

type DailyRevenue struct {
	Date        string  `json:"date"` // Formato yyyy-mm-dd
	Recaudacion float64 `json:"recaudacion"`
}

type MonthlyCount struct {
	Month string `json:"month"` // Formato yyyy-mm
	Count int    `json:"count"`
}

// NameCount é usado nos rankings de categoria e região
type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// RevenueSummary resume a arrecadação diária do período
type RevenueSummary struct {
	Total       float64 `json:"total"`
	Days        int     `json:"days"`
	DailyMean   float64 `json:"daily_mean"`
	DailyMin    float64 `json:"daily_min"`
	DailyMax    float64 `json:"daily_max"`
	DailyMedian float64 `json:"daily_median"`
	DailyP90    float64 `json:"daily_p90"`
}

// LatestRecord é uma linha projetada nas colunas posicionais configuradas
type LatestRecord map[string]any

// DebugData expõe o início e o fim da coluna de data após o corte de linhas
type DebugData struct {
	Head                       []map[string]any `json:"dataframe_head"`
	Tail                       []map[string]any `json:"dataframe_tail"`
	TotalRowsAfterPermitFilter int              `json:"total_rows_after_permit_filter"`
}
