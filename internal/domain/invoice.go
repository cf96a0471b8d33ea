package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus representa o estado de cobrança de uma fatura
type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "Pendente"
	InvoiceStatusPaid    InvoiceStatus = "Pago"
	InvoiceStatusOverdue InvoiceStatus = "Vencido"
)

// Invoice é uma fatura mensal por funcionário.
// CompanyName, EmployeeCount e UnitValue são cópias congeladas no momento da
// criação; TotalValue = EmployeeCount × UnitValue é calculado uma única vez e
// nunca recalculado, mesmo que os dados da empresa mudem depois.
type Invoice struct {
	ID            string          `json:"id"`
	CompanyID     string          `json:"company_id"`
	CompanyName   string          `json:"company_name"`
	Competence    string          `json:"competence"` // formato YYYY-MM
	DueDate       time.Time       `json:"due_date"`
	EmployeeCount int             `json:"employee_count"`
	UnitValue     decimal.Decimal `json:"unit_value"`
	TotalValue    decimal.Decimal `json:"total_value"`
	Status        InvoiceStatus   `json:"status"`
	Notes         *string         `json:"notes,omitempty"`
	UserID        int             `json:"-"`
}

// CreateInvoiceRequest é a geração manual de uma fatura para uma única empresa.
// Competence chega no formato de digitação MM/AAAA; DueDate é opcional e, quando
// ausente, o vencimento é o último dia do mês de competência.
type CreateInvoiceRequest struct {
	CompanyID  string  `json:"company_id"`
	Competence string  `json:"competence"`
	DueDate    string  `json:"due_date"`
	Notes      *string `json:"notes"`
}

// BatchGenerationRequest gera uma fatura para cada empresa Ativa.
// ReferenceDate define a competência; DueDate vazio resulta em referência + 30
// dias corridos. HeadcountOverrides substitui a quantidade armazenada por
// empresa e, quando difere, atualiza também o cadastro antes de faturar.
type BatchGenerationRequest struct {
	ReferenceDate      string         `json:"reference_date"`
	DueDate            string         `json:"due_date"`
	HeadcountOverrides map[string]int `json:"headcount_overrides"`
}

// BatchGenerationResult reporta o resultado real da geração em lote, não apenas
// a quantidade pretendida: a geração não é atômica entre empresas.
type BatchGenerationResult struct {
	Requested  int      `json:"requested"`
	Generated  int      `json:"generated"`
	Failed     int      `json:"failed"`
	Competence string   `json:"competence"`
	Errors     []string `json:"errors,omitempty"`
}

type InvoiceFilter struct {
	Status     []InvoiceStatus
	CompanyID  string
	Competence string
}
