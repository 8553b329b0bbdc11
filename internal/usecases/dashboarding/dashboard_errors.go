package dashboarding

import (
	"errors"
	"fmt"

	"github.com/vfg2006/sdr-dashboard-api/internal/domain"
)

// Erros específicos do painel
var (
	// Erros de validação
	ErrInvalidPeriod = domain.ErrInvalidPeriod
	ErrUnknownField  = domain.ErrUnknownField
	ErrInvalidGender = errors.New("invalid gender category")

	// Erros de estado
	ErrPeriodNotFound      = errors.New("period not found in ledger")
	ErrSalespersonNotFound = errors.New("salesperson not found")

	// Erros de persistência
	ErrPersistence = errors.New("persistence error")
)

// DashboardError é um erro com contexto adicional para o painel
type DashboardError struct {
	Err           error  // Erro base
	Code          string // Código de erro para API
	SalespersonID string // ID do consultor envolvido (quando aplicável)
	Details       string // Detalhes adicionais
}

// Error implementa a interface error
func (e *DashboardError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *DashboardError) Unwrap() error {
	return e.Err
}

// NewDashboardError cria um novo DashboardError
func NewDashboardError(err error, code string, details string) *DashboardError {
	return &DashboardError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewSalespersonError cria um novo DashboardError com o ID do consultor
func NewSalespersonError(err error, code string, salespersonID string, details string) *DashboardError {
	return &DashboardError{
		Err:           err,
		Code:          code,
		SalespersonID: salespersonID,
		Details:       details,
	}
}
