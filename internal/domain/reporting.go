package domain

import "github.com/shopspring/decimal"

// DashboardStats são os indicadores do painel de controle
type DashboardStats struct {
	TotalRevenue    decimal.Decimal       `json:"total_revenue"`   // faturas Pagas
	PendingRevenue  decimal.Decimal       `json:"pending_revenue"` // Pendentes + Vencidas
	ActiveCompanies int                   `json:"active_companies"`
	TotalEmployees  int                   `json:"total_employees"`
	Alerts          []DashboardAlert      `json:"alerts"`
	TopDebtors      []Debtor              `json:"top_debtors"`
	MonthlyRevenue  []MonthlyRevenuePoint `json:"monthly_revenue"`
}

type DashboardAlertType string

const (
	AlertDanger  DashboardAlertType = "danger"
	AlertWarning DashboardAlertType = "warning"
	AlertInfo    DashboardAlertType = "info"
)

type DashboardAlert struct {
	Title string             `json:"title"`
	Type  DashboardAlertType `json:"type"`
}

type Debtor struct {
	CompanyName   string          `json:"company_name"`
	OverdueAmount decimal.Decimal `json:"overdue_amount"`
}

// MonthlyRevenuePoint agrupa o faturamento por competência
type MonthlyRevenuePoint struct {
	Competence string          `json:"competence"`
	Received   decimal.Decimal `json:"received"`
	Pending    decimal.Decimal `json:"pending"`
}

// DelinquencyReport resume a inadimplência da carteira
type DelinquencyReport struct {
	TotalInvoices     int             `json:"total_invoices"`
	OverdueInvoices   int             `json:"overdue_invoices"`
	DelinquencyRate   float64         `json:"delinquency_rate"` // percentual
	DelinquencyAmount decimal.Decimal `json:"delinquency_amount"`
}

// PortfolioSummary é o contexto serializado enviado ao gerador de relatório por IA
type PortfolioSummary struct {
	Companies []PortfolioCompany `json:"companies_summary"`
	Invoices  []PortfolioInvoice `json:"invoices_summary"`
}

type PortfolioCompany struct {
	Name          string        `json:"name"`
	Status        CompanyStatus `json:"status"`
	EmployeeCount int           `json:"employee_count"`
}

type PortfolioInvoice struct {
	Company   string          `json:"company"`
	Month     string          `json:"month"`
	Amount    decimal.Decimal `json:"amount"`
	Status    InvoiceStatus   `json:"status"`
	Employees int             `json:"employees"`
}

// HeadcountSyncResult resume uma rodada de sincronização com o Facilita Ponto
type HeadcountSyncResult struct {
	Checked int                  `json:"checked"`
	Skipped int                  `json:"skipped"`
	Updated int                  `json:"updated"`
	Failed  int                  `json:"failed"`
	Details []HeadcountSyncEntry `json:"details"`
}

type HeadcountSyncEntry struct {
	CNPJ            string `json:"cnpj"`
	CompanyName     string `json:"company_name"`
	ActiveEmployees int    `json:"active_employees"`
	PreviousCount   int    `json:"previous_count"`
	Changed         bool   `json:"changed"`
}
