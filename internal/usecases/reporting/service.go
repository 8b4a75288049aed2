package reporting

import (
	"context"

	"github.com/vfg2006/permits-dashboard-api/internal/config"
	"github.com/vfg2006/permits-dashboard-api/internal/domain"
	"github.com/vfg2006/permits-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/permits-dashboard-api/pkg/log"
)

type Service struct {
	provider DatasetProvider
	cfg      config.Report
	filter   DateRangeFilter
}

func NewService(provider DatasetProvider, cfg config.Report) Reporter {
	return &Service{
		provider: provider,
		cfg:      cfg,
		filter: DateRangeFilter{
			Column:   cfg.DateColumn,
			Location: cfg.Location,
		},
	}
}

// window busca o dataset atual e aplica o corte de linhas iniciais
func (s *Service) window(ctx context.Context) (*domain.Dataset, error) {
	ds, err := s.provider.Dataset(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("reporting: dataset unavailable")
		return nil, NewReportError(ErrDataSourceUnavailable, apiErrors.ErrDataSourceUnavailable, "could not fetch the worksheet data")
	}

	return ApplyRowWindow(ds, s.cfg.StartRow), nil
}

// dated aplica o corte de linhas e o filtro de datas. As colunas extras são validadas
// antes do filtro sempre que o dataset tiver linhas.
func (s *Service) dated(ctx context.Context, dateRange domain.DateRange, columns ...string) ([]DatedRow, error) {
	ds, err := s.window(ctx)
	if err != nil {
		return nil, err
	}
	if ds.IsEmpty() {
		return []DatedRow{}, nil
	}

	for _, column := range columns {
		if !ds.HasColumn(column) {
			return nil, NewMissingFieldError(column)
		}
	}

	return s.filter.Dated(ds, dateRange)
}

func (s *Service) PermitCount(ctx context.Context, dateRange domain.DateRange) (*domain.PermitCount, error) {
	rows, err := s.dated(ctx, dateRange)
	if err != nil {
		return nil, err
	}
	return &domain.PermitCount{Count: len(rows)}, nil
}

func (s *Service) TotalRevenue(ctx context.Context, dateRange domain.DateRange) (*domain.RevenueTotal, error) {
	rows, err := s.dated(ctx, dateRange, s.cfg.RevenueColumn)
	if err != nil {
		return nil, err
	}
	return &domain.RevenueTotal{Total: TotalRevenue(rows, s.cfg.RevenueColumn)}, nil
}

func (s *Service) PermitsByDay(ctx context.Context, dateRange domain.DateRange) ([]domain.DailyCount, error) {
	rows, err := s.dated(ctx, dateRange)
	if err != nil {
		return nil, err
	}
	return CountByDay(rows), nil
}

func (s *Service) RevenueByDay(ctx context.Context, dateRange domain.DateRange) ([]domain.DailyRevenue, error) {
	rows, err := s.dated(ctx, dateRange, s.cfg.RevenueColumn)
	if err != nil {
		return nil, err
	}
	return SumByDay(rows, s.cfg.RevenueColumn), nil
}

func (s *Service) PermitsByMonth(ctx context.Context, dateRange domain.DateRange) ([]domain.MonthlyCount, error) {
	rows, err := s.dated(ctx, dateRange)
	if err != nil {
		return nil, err
	}
	return CountByMonth(rows), nil
}

func (s *Service) PermitsByCategory(ctx context.Context, dateRange domain.DateRange) ([]domain.NameCount, error) {
	rows, err := s.dated(ctx, dateRange, s.cfg.ProductColumn)
	if err != nil {
		return nil, err
	}
	return CountByCategory(rows, s.cfg.ProductColumn), nil
}

func (s *Service) PermitsByRegion(ctx context.Context, dateRange domain.DateRange) ([]domain.NameCount, error) {
	rows, err := s.dated(ctx, dateRange, s.cfg.RegionColumn)
	if err != nil {
		return nil, err
	}
	return CountByRegion(rows, s.cfg.RegionColumn, s.cfg.Regions), nil
}

func (s *Service) RevenueSummary(ctx context.Context, dateRange domain.DateRange) (*domain.RevenueSummary, error) {
	daily, err := s.RevenueByDay(ctx, dateRange)
	if err != nil {
		return nil, err
	}

	summary, err := SummarizeRevenue(daily)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("reporting: failed to summarize revenue")
		return nil, NewReportError(err, apiErrors.ErrInternalServer, "failed to summarize revenue")
	}
	return summary, nil
}

func (s *Service) LatestRecords(ctx context.Context) ([]domain.LatestRecord, error) {
	ds, err := s.window(ctx)
	if err != nil {
		return nil, err
	}
	return LatestRecords(ds, s.cfg.LatestColumns, s.cfg.LatestLimit)
}

func (s *Service) DebugData(ctx context.Context) (*domain.DebugData, error) {
	ds, err := s.window(ctx)
	if err != nil {
		return nil, err
	}
	return BuildDebugData(ds, s.cfg.DateColumn, max(s.cfg.StartRow-2, 0)), nil
}
