package sheets

import (
	"context"

	"github.com/pkg/errors"
	gobreaker "github.com/sony/gobreaker/v2"
	"github.com/vfg2006/permits-dashboard-api/infrastructure/integrator/sheets/sheetsclient"
	"github.com/vfg2006/permits-dashboard-api/infrastructure/integrator/tabular"
	"github.com/vfg2006/permits-dashboard-api/internal/config"
	"github.com/vfg2006/permits-dashboard-api/internal/domain"
	"github.com/vfg2006/permits-dashboard-api/pkg/log"
	"github.com/vfg2006/permits-dashboard-api/pkg/metrics"
)

const sourceName = "google-sheets"

type SheetsService struct {
	cfg     config.Sheet
	Client  sheetsclient.Client
	breaker *gobreaker.CircuitBreaker[*domain.Dataset]
}

func New(cfg *config.Config, client sheetsclient.Client) *SheetsService {
	failures := cfg.Sheet.BreakerFailures
	if failures == 0 {
		failures = 3
	}

	metrics.SheetCircuitState.WithLabelValues(sourceName).Set(0)

	breaker := gobreaker.NewCircuitBreaker[*domain.Dataset](gobreaker.Settings{
		Name:        sourceName,
		MaxRequests: 1,
		Timeout:     cfg.Sheet.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.L.WithFields(log.Fields{
				"source": name,
				"from":   from.String(),
				"to":     to.String(),
			}).Warn("sheets: circuit breaker state changed")
			metrics.SheetCircuitState.WithLabelValues(name).Set(stateToFloat(to))
		},
	})

	return &SheetsService{
		cfg:     cfg.Sheet,
		Client:  client,
		breaker: breaker,
	}
}

func (s *SheetsService) Name() string {
	return sourceName
}

// Fetch lê a aba inteira. Com o circuito aberto a chamada falha na hora, sem ir à API.
func (s *SheetsService) Fetch(ctx context.Context) (*domain.Dataset, error) {
	if s.cfg.FetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.FetchTimeout)
		defer cancel()
	}

	ds, err := s.breaker.Execute(func() (*domain.Dataset, error) {
		values, err := s.Client.GetValues(ctx, s.cfg.SpreadsheetID, s.cfg.Worksheet)
		if err != nil {
			return nil, err
		}
		return tabular.BuildDataset(values), nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, errors.Wrap(err, "sheets: request rejected by circuit breaker")
		}
		return nil, err
	}

	return ds, nil
}

// State expõe o estado atual do circuit breaker
func (s *SheetsService) State() gobreaker.State {
	return s.breaker.State()
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}
