package workbook

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/permits-dashboard-api/infrastructure/integrator/tabular"
	"github.com/vfg2006/permits-dashboard-api/internal/config"
	"github.com/vfg2006/permits-dashboard-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

const sourceName = "xlsx-workbook"

// WorkbookService lê a planilha exportada em xlsx. O arquivo é aberto a cada busca
// para refletir substituições feitas por fora do processo.
type WorkbookService struct {
	path      string
	worksheet string
}

func New(cfg *config.Config) *WorkbookService {
	return &WorkbookService{
		path:      cfg.Sheet.XLSXPath,
		worksheet: cfg.Sheet.Worksheet,
	}
}

func (s *WorkbookService) Name() string {
	return sourceName
}

func (s *WorkbookService) Fetch(ctx context.Context) (*domain.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, errors.Wrapf(err, "workbook: failed to open %s", s.path)
	}
	defer f.Close()

	worksheet := s.worksheet
	if worksheet == "" {
		worksheet = f.GetSheetName(f.GetActiveSheetIndex())
	}

	index, err := f.GetSheetIndex(worksheet)
	if err != nil || index < 0 {
		return nil, errors.Errorf("workbook: worksheet %q not found in %s", worksheet, s.path)
	}

	rows, err := f.GetRows(worksheet)
	if err != nil {
		return nil, errors.Wrapf(err, "workbook: failed to read %q", worksheet)
	}

	if err := newDateCells(f, worksheet).normalize(rows); err != nil {
		return nil, err
	}

	return tabular.FromStrings(rows), nil
}
