package domain

import "time"

// Snapshot é o par imutável (dataset, momento da busca) mantido pelo cache
type Snapshot struct {
	Dataset   *Dataset
	FetchedAt time.Time
}

// SnapshotStatus descreve o estado atual do cache da planilha
type SnapshotStatus struct {
	Available  bool       `json:"available"`
	FetchedAt  *time.Time `json:"fetched_at,omitempty"`
	AgeSeconds float64    `json:"age_seconds"`
	Stale      bool       `json:"stale"`
	Rows       int        `json:"rows"`
	Columns    int        `json:"columns"`
	TTLSeconds float64    `json:"ttl_seconds"`
	LastError  string     `json:"last_error,omitempty"`
}

// SnapshotFetchOutcome indica o resultado de uma tentativa de busca na origem
type SnapshotFetchOutcome string

const (
	SnapshotFetchSuccess SnapshotFetchOutcome = "success"
	SnapshotFetchFailure SnapshotFetchOutcome = "failure"
)

// SnapshotFetch registra uma tentativa de atualização do snapshot
type SnapshotFetch struct {
	ID         string               `json:"id"`
	Source     string               `json:"source"`
	Outcome    SnapshotFetchOutcome `json:"outcome"`
	Rows       int                  `json:"rows"`
	DurationMS int64                `json:"duration_ms"`
	Error      string               `json:"error,omitempty"`
	StartedAt  time.Time            `json:"started_at"`
}

// SnapshotStatusResponse é a resposta do endpoint de status do snapshot
type SnapshotStatusResponse struct {
	Status  SnapshotStatus   `json:"status"`
	History []*SnapshotFetch `json:"history,omitempty"`
}
