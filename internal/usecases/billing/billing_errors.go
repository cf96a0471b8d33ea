package billing

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de faturamento
var (
	// Erros de validação
	ErrCompanyIDRequired       = errors.New("company ID is required")
	ErrCompanyNotFound         = errors.New("company not found")
	ErrInvoiceNotFound         = errors.New("invoice not found")
	ErrInvalidCompetenceFormat = errors.New("competence must be in MM/YYYY format")
	ErrInvalidCompetenceMonth  = errors.New("competence month must be between 01 and 12")
	ErrInvalidCompetenceYear   = errors.New("competence year out of range")
	ErrInvalidDueDate          = errors.New("invalid due date")
	ErrInvalidStatus           = errors.New("invalid invoice status")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")
	ErrFetchInvoices     = errors.New("error fetching invoices from database")

	// Erros de geração
	ErrGenerateID = errors.New("error generating invoice ID")
)

// BillingError é um erro com contexto adicional para faturamento
type BillingError struct {
	Err       error  // Erro base
	Code      string // Código de erro para API
	InvoiceID string // ID da fatura envolvida (quando aplicável)
	Details   string // Detalhes adicionais
}

// Error implementa a interface error
func (e *BillingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *BillingError) Unwrap() error {
	return e.Err
}

// NewBillingError cria um novo BillingError
func NewBillingError(err error, code string, details string) *BillingError {
	return &BillingError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
