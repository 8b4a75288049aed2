package reporting

import (
	"errors"
	"fmt"

	"github.com/vfg2006/permits-dashboard-api/pkg/apiErrors"
)

// Erros dos relatórios
var (
	// Erros de estrutura da planilha
	ErrMissingField        = errors.New("missing field")
	ErrInsufficientColumns = errors.New("insufficient columns")

	// Erros de origem de dados
	ErrDataSourceUnavailable = errors.New("data source unavailable")
)

// ReportError é um erro com contexto adicional para os relatórios
type ReportError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Field   string // Coluna envolvida (quando aplicável)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ReportError) Error() string {
	switch {
	case e.Field != "" && e.Details != "":
		return fmt.Sprintf("%s %q: %s", e.Err.Error(), e.Field, e.Details)
	case e.Field != "":
		return fmt.Sprintf("%s %q", e.Err.Error(), e.Field)
	case e.Details != "":
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError cria um novo ReportError
func NewReportError(err error, code string, details string) *ReportError {
	return &ReportError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewMissingFieldError indica que a coluna obrigatória não existe no cabeçalho
func NewMissingFieldError(field string) *ReportError {
	return &ReportError{
		Err:   ErrMissingField,
		Code:  apiErrors.ErrMissingField,
		Field: field,
	}
}

// NewInsufficientColumnsError indica que a planilha tem menos colunas que as posições configuradas
func NewInsufficientColumnsError(required, available int) *ReportError {
	return &ReportError{
		Err:     ErrInsufficientColumns,
		Code:    apiErrors.ErrInsufficientColumns,
		Details: fmt.Sprintf("need %d columns, dataset has %d", required, available),
	}
}
