package reporting

import (
	"context"

	"github.com/vfg2006/permits-dashboard-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// DatasetProvider fornece o dataset atual da planilha (normalmente o cache de snapshot)
type DatasetProvider interface {
	Dataset(ctx context.Context) (*domain.Dataset, error)
}

// Reporter define os relatórios disponíveis sobre as vendas de permissões
type Reporter interface {
	// PermitCount conta as permissões emitidas no período
	PermitCount(ctx context.Context, dateRange domain.DateRange) (*domain.PermitCount, error)
	// TotalRevenue soma a arrecadação do período
	TotalRevenue(ctx context.Context, dateRange domain.DateRange) (*domain.RevenueTotal, error)
	PermitsByDay(ctx context.Context, dateRange domain.DateRange) ([]domain.DailyCount, error)
	RevenueByDay(ctx context.Context, dateRange domain.DateRange) ([]domain.DailyRevenue, error)
	PermitsByMonth(ctx context.Context, dateRange domain.DateRange) ([]domain.MonthlyCount, error)
	PermitsByCategory(ctx context.Context, dateRange domain.DateRange) ([]domain.NameCount, error)
	PermitsByRegion(ctx context.Context, dateRange domain.DateRange) ([]domain.NameCount, error)
	RevenueSummary(ctx context.Context, dateRange domain.DateRange) (*domain.RevenueSummary, error)

	// LatestRecords retorna os últimos registros sem filtro de data
	LatestRecords(ctx context.Context) ([]domain.LatestRecord, error)
	// DebugData retorna uma amostra da coluna de data depois do corte de linhas
	DebugData(ctx context.Context) (*domain.DebugData, error)
}
