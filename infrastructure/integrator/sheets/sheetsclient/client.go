package sheetsclient

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/permits-dashboard-api/internal/config"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const (
	// Números chegam sem formatação; datas chegam como texto no formato da planilha
	valueRenderOption    = "UNFORMATTED_VALUE"
	dateTimeRenderOption = "FORMATTED_STRING"
)

//go:generate mockgen -source=client.go -destination=../mocks/mock_client.go -package=mocks

type Client interface {
	// GetValues retorna todas as células preenchidas da aba, linha a linha, incluindo o cabeçalho
	GetValues(ctx context.Context, spreadsheetID, worksheet string) ([][]interface{}, error)
}

type SheetsClient struct {
	service *sheets.Service
}

// NewClient autentica com a conta de serviço configurada (somente leitura)
func NewClient(ctx context.Context, cfg *config.Config) (Client, error) {
	credentials, err := cfg.Sheet.GoogleCredentials()
	if err != nil {
		return nil, err
	}

	service, err := sheets.NewService(ctx,
		option.WithCredentialsJSON(credentials),
		option.WithScopes(sheets.SpreadsheetsReadonlyScope),
	)
	if err != nil {
		return nil, errors.Wrap(err, "sheets: failed to create service")
	}

	return &SheetsClient{service: service}, nil
}

func (c *SheetsClient) GetValues(ctx context.Context, spreadsheetID, worksheet string) ([][]interface{}, error) {
	resp, err := c.service.Spreadsheets.Values.
		Get(spreadsheetID, QuoteWorksheet(worksheet)).
		ValueRenderOption(valueRenderOption).
		DateTimeRenderOption(dateTimeRenderOption).
		Context(ctx).
		Do()
	if err != nil {
		return nil, errors.Wrapf(err, "sheets: failed to read %q", worksheet)
	}

	return resp.Values, nil
}

// QuoteWorksheet monta o range A1 de uma aba inteira. Nomes com espaço precisam de aspas simples.
func QuoteWorksheet(worksheet string) string {
	return "'" + strings.ReplaceAll(worksheet, "'", "''") + "'"
}
