package snapshotting

import (
	"context"

	"github.com/vfg2006/permits-dashboard-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// DataSource busca o conteúdo completo e atual da planilha
type DataSource interface {
	Fetch(ctx context.Context) (*domain.Dataset, error)
	// Name identifica a origem nos logs, métricas e histórico
	Name() string
}

// HistoryRecorder persiste as tentativas de atualização do snapshot
type HistoryRecorder interface {
	Save(ctx context.Context, fetch *domain.SnapshotFetch) error
	ListRecent(ctx context.Context, limit int) ([]*domain.SnapshotFetch, error)
}

// Snapshotter é a visão do cache usada pelos handlers e pelo agendador
type Snapshotter interface {
	Dataset(ctx context.Context) (*domain.Dataset, error)
	Refresh(ctx context.Context) (*domain.SnapshotStatus, error)
	Status(ctx context.Context) *domain.SnapshotStatusResponse
}
