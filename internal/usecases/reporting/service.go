package reporting

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/pontogestor/admin-api/infrastructure/integrator/advisor"
	"github.com/pontogestor/admin-api/infrastructure/repository"
	"github.com/pontogestor/admin-api/internal/domain"
	"github.com/pontogestor/admin-api/internal/usecases/billing"
	"github.com/pontogestor/admin-api/pkg/apiErrors"
	"github.com/pontogestor/admin-api/pkg/utils"
	"github.com/shopspring/decimal"
)

// Faturas vencidas há mais tempo que isso entram no alerta de inadimplência grave
const severeOverdueDays = 45

// Quantidade de devedores destacados no painel
const topDebtorsLimit = 3

// Erros específicos para o contexto de relatórios
var (
	ErrDatabaseOperation  = errors.New("database operation error")
	ErrAdvisorUnavailable = errors.New("advisor unavailable")
)

type ReportError struct {
	Err     error
	Code    string
	Details string
}

func (e *ReportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ReportError) Unwrap() error {
	return e.Err
}

func NewReportError(err error, code string, details string) *ReportError {
	return &ReportError{Err: err, Code: code, Details: details}
}

type ReportingService interface {
	DashboardStats(userID int) (*domain.DashboardStats, error)
	DelinquencyReport(userID int) (*domain.DelinquencyReport, error)
	GenerateExecutiveReport(ctx context.Context, userID int) (string, error)
	ListSystemLogs(userID int) ([]*domain.SystemLog, error)
}

type Service struct {
	companyRepository repository.CompanyRepository
	invoiceRepository repository.InvoiceRepository
	logRepository     repository.SystemLogRepository
	advisorService    advisor.AdvisorIntegrator
}

func NewService(
	companyRepository repository.CompanyRepository,
	invoiceRepository repository.InvoiceRepository,
	logRepository repository.SystemLogRepository,
	advisorService advisor.AdvisorIntegrator,
) ReportingService {
	return &Service{
		companyRepository: companyRepository,
		invoiceRepository: invoiceRepository,
		logRepository:     logRepository,
		advisorService:    advisorService,
	}
}

// DashboardStats monta os indicadores do painel a partir da carteira inteira:
// receita recebida e a receber, alertas de vencimento e os maiores devedores.
func (s *Service) DashboardStats(userID int) (*domain.DashboardStats, error) {
	companies, err := s.companyRepository.List(userID, domain.CompanyFilter{})
	if err != nil {
		return nil, NewReportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar empresas")
	}

	invoices, err := s.invoiceRepository.List(userID, domain.InvoiceFilter{})
	if err != nil {
		return nil, NewReportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar faturas")
	}

	stats := &domain.DashboardStats{
		TotalRevenue:   decimal.Zero,
		PendingRevenue: decimal.Zero,
		Alerts:         make([]domain.DashboardAlert, 0),
		TopDebtors:     make([]domain.Debtor, 0),
	}

	for _, company := range companies {
		if company.Status == domain.CompanyStatusActive {
			stats.ActiveCompanies++
			stats.TotalEmployees += company.EmployeeCount
		}
	}

	today := utils.Today()
	overdueByCompany := make(map[string]decimal.Decimal)
	monthly := make(map[string]*domain.MonthlyRevenuePoint)

	for _, invoice := range invoices {
		switch invoice.Status {
		case domain.InvoiceStatusPaid:
			stats.TotalRevenue = stats.TotalRevenue.Add(invoice.TotalValue)
		case domain.InvoiceStatusPending, domain.InvoiceStatusOverdue:
			stats.PendingRevenue = stats.PendingRevenue.Add(invoice.TotalValue)
		}

		if invoice.Status == domain.InvoiceStatusOverdue {
			overdueByCompany[invoice.CompanyName] = overdueByCompany[invoice.CompanyName].Add(invoice.TotalValue)

			// Vencida há mais de 45 dias é inadimplência grave
			if today.Sub(invoice.DueDate).Hours() > severeOverdueDays*24 {
				stats.Alerts = append(stats.Alerts, domain.DashboardAlert{
					Title: fmt.Sprintf("%s está inadimplente há mais de %d dias", invoice.CompanyName, severeOverdueDays),
					Type:  domain.AlertDanger,
				})
			}
		}

		if invoice.Status == domain.InvoiceStatusPending && invoice.DueDate.Equal(today) {
			stats.Alerts = append(stats.Alerts, domain.DashboardAlert{
				Title: fmt.Sprintf("Fatura de %s vence hoje", invoice.CompanyName),
				Type:  domain.AlertWarning,
			})
		}

		point, ok := monthly[invoice.Competence]
		if !ok {
			point = &domain.MonthlyRevenuePoint{
				Competence: invoice.Competence,
				Received:   decimal.Zero,
				Pending:    decimal.Zero,
			}
			monthly[invoice.Competence] = point
		}

		if invoice.Status == domain.InvoiceStatusPaid {
			point.Received = point.Received.Add(invoice.TotalValue)
		} else {
			point.Pending = point.Pending.Add(invoice.TotalValue)
		}
	}

	for companyName, amount := range overdueByCompany {
		stats.TopDebtors = append(stats.TopDebtors, domain.Debtor{
			CompanyName:   companyName,
			OverdueAmount: amount,
		})
	}

	sort.Slice(stats.TopDebtors, func(i, j int) bool {
		return stats.TopDebtors[i].OverdueAmount.GreaterThan(stats.TopDebtors[j].OverdueAmount)
	})

	if len(stats.TopDebtors) > topDebtorsLimit {
		stats.TopDebtors = stats.TopDebtors[:topDebtorsLimit]
	}

	stats.MonthlyRevenue = make([]domain.MonthlyRevenuePoint, 0, len(monthly))
	for _, point := range monthly {
		stats.MonthlyRevenue = append(stats.MonthlyRevenue, *point)
	}

	// Competências em ordem cronológica para o gráfico
	sort.Slice(stats.MonthlyRevenue, func(i, j int) bool {
		return stats.MonthlyRevenue[i].Competence < stats.MonthlyRevenue[j].Competence
	})

	return stats, nil
}

func (s *Service) DelinquencyReport(userID int) (*domain.DelinquencyReport, error) {
	invoices, err := s.invoiceRepository.List(userID, domain.InvoiceFilter{})
	if err != nil {
		return nil, NewReportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar faturas")
	}

	report := &domain.DelinquencyReport{
		TotalInvoices:     len(invoices),
		DelinquencyAmount: decimal.Zero,
	}

	for _, invoice := range invoices {
		if invoice.Status == domain.InvoiceStatusOverdue {
			report.OverdueInvoices++
			report.DelinquencyAmount = report.DelinquencyAmount.Add(invoice.TotalValue)
		}
	}

	if report.TotalInvoices > 0 {
		rate := float64(report.OverdueInvoices) / float64(report.TotalInvoices) * 100
		report.DelinquencyRate = utils.RoundWithTwoDecimalPlace(rate)
	}

	return report, nil
}

// GenerateExecutiveReport serializa a carteira do usuário e pede ao assistente
// de análise um relatório executivo em markdown.
func (s *Service) GenerateExecutiveReport(ctx context.Context, userID int) (string, error) {
	companies, err := s.companyRepository.List(userID, domain.CompanyFilter{})
	if err != nil {
		return "", NewReportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar empresas")
	}

	invoices, err := s.invoiceRepository.List(userID, domain.InvoiceFilter{})
	if err != nil {
		return "", NewReportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar faturas")
	}

	portfolio := &domain.PortfolioSummary{
		Companies: make([]domain.PortfolioCompany, 0, len(companies)),
		Invoices:  make([]domain.PortfolioInvoice, 0, len(invoices)),
	}

	for _, company := range companies {
		portfolio.Companies = append(portfolio.Companies, domain.PortfolioCompany{
			Name:          company.Name,
			Status:        company.Status,
			EmployeeCount: company.EmployeeCount,
		})
	}

	for _, invoice := range invoices {
		portfolio.Invoices = append(portfolio.Invoices, domain.PortfolioInvoice{
			Company:   invoice.CompanyName,
			Month:     billing.FormatCompetenceDisplay(invoice.Competence),
			Amount:    invoice.TotalValue,
			Status:    invoice.Status,
			Employees: invoice.EmployeeCount,
		})
	}

	report, err := s.advisorService.GenerateExecutiveReport(ctx, portfolio)
	if err != nil {
		if errors.Is(err, advisor.ErrNotConfigured) {
			return "", NewReportError(err, apiErrors.ErrExternalService, "Assistente de análise não configurado")
		}
		return "", NewReportError(ErrAdvisorUnavailable, apiErrors.ErrExternalService, "Falha ao gerar relatório executivo")
	}

	return report, nil
}

func (s *Service) ListSystemLogs(userID int) ([]*domain.SystemLog, error) {
	logs, err := s.logRepository.ListRecent(userID)
	if err != nil {
		return nil, NewReportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar logs do sistema")
	}

	return logs, nil
}
