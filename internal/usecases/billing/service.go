package billing

import (
	"fmt"
	"time"

	"github.com/pontogestor/admin-api/infrastructure/repository"
	"github.com/pontogestor/admin-api/internal/config"
	"github.com/pontogestor/admin-api/internal/domain"
	"github.com/pontogestor/admin-api/pkg/apiErrors"
	"github.com/pontogestor/admin-api/pkg/utils"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type BillingService interface {
	ListInvoices(userID int, filter domain.InvoiceFilter) ([]*domain.Invoice, error)
	GetInvoice(userID int, invoiceID string) (*domain.Invoice, error)
	CreateInvoice(actor *domain.Claims, request *domain.CreateInvoiceRequest) (*domain.Invoice, error)
	GenerateBatch(actor *domain.Claims, request *domain.BatchGenerationRequest) (*domain.BatchGenerationResult, error)
	UpdateInvoiceStatus(actor *domain.Claims, invoiceID string, status domain.InvoiceStatus) error
	DeleteInvoice(actor *domain.Claims, invoiceID string) error
	SweepOverdue(actor *domain.Claims) (int64, error)
}

type Service struct {
	invoiceRepository repository.InvoiceRepository
	companyRepository repository.CompanyRepository
	logRepository     repository.SystemLogRepository
	unitPrice         decimal.Decimal
	cfg               *config.Config
}

func NewService(
	invoiceRepository repository.InvoiceRepository,
	companyRepository repository.CompanyRepository,
	logRepository repository.SystemLogRepository,
	cfg *config.Config,
) BillingService {
	unitPrice, err := decimal.NewFromString(cfg.Billing.UnitPrice)
	if err != nil {
		logrus.Warnf("Preço unitário inválido na configuração (%q), usando 5.00", cfg.Billing.UnitPrice)
		unitPrice = decimal.NewFromInt(5)
	}

	return &Service{
		invoiceRepository: invoiceRepository,
		companyRepository: companyRepository,
		logRepository:     logRepository,
		unitPrice:         unitPrice,
		cfg:               cfg,
	}
}

func (s *Service) ListInvoices(userID int, filter domain.InvoiceFilter) ([]*domain.Invoice, error) {
	invoices, err := s.invoiceRepository.List(userID, filter)
	if err != nil {
		return nil, NewBillingError(ErrFetchInvoices, apiErrors.ErrDatabaseOperation, "Falha ao listar faturas no banco de dados")
	}

	return invoices, nil
}

func (s *Service) GetInvoice(userID int, invoiceID string) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepository.GetByID(userID, invoiceID)
	if err != nil {
		return nil, NewBillingError(ErrFetchInvoices, apiErrors.ErrDatabaseOperation, "Falha ao buscar fatura no banco de dados")
	}

	if invoice == nil {
		return nil, NewBillingError(ErrInvoiceNotFound, apiErrors.ErrInvoiceNotFound, "Fatura não encontrada")
	}

	return invoice, nil
}

// CreateInvoice gera uma fatura manual para uma única empresa. O nome da
// empresa, a quantidade de funcionários e o preço unitário são congelados na
// fatura no momento da criação.
func (s *Service) CreateInvoice(actor *domain.Claims, request *domain.CreateInvoiceRequest) (*domain.Invoice, error) {
	if request.CompanyID == "" {
		return nil, NewBillingError(ErrCompanyIDRequired, apiErrors.ErrMissingRequiredData, "Informe a empresa da fatura")
	}

	competence, err := ParseCompetenceInput(request.Competence)
	if err != nil {
		return nil, NewBillingError(err, apiErrors.ErrInvalidCompetence, "Competência deve estar no formato MM/AAAA")
	}

	company, err := s.companyRepository.GetByID(actor.UserID, request.CompanyID)
	if err != nil {
		return nil, NewBillingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar empresa no banco de dados")
	}

	if company == nil {
		return nil, NewBillingError(ErrCompanyNotFound, apiErrors.ErrCompanyNotFound, "Empresa não encontrada")
	}

	// Sem vencimento informado, vence no último dia do mês de competência
	var dueDate time.Time
	if request.DueDate != "" {
		dueDate, err = utils.ParseDate(request.DueDate)
		if err != nil {
			return nil, NewBillingError(ErrInvalidDueDate, apiErrors.ErrInvalidFormat, "Vencimento deve estar no formato AAAA-MM-DD")
		}
	} else {
		dueDate, err = MonthEndDueDate(competence)
		if err != nil {
			return nil, NewBillingError(err, apiErrors.ErrInvalidCompetence, "Competência inválida")
		}
	}

	invoice, err := s.buildInvoice(company, competence, dueDate, company.EmployeeCount, request.Notes)
	if err != nil {
		return nil, err
	}

	// Vencimento já no passado entra direto como Vencida, sem passar por
	// Pendente. A comparação é por data, sem componente de horário.
	if utils.FormatDate(invoice.DueDate) < utils.FormatDate(utils.Today()) {
		invoice.Status = domain.InvoiceStatusOverdue
	}

	if err := s.invoiceRepository.Create(invoice); err != nil {
		return nil, NewBillingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao gravar fatura no banco de dados")
	}

	s.appendLog(actor, "Fatura gerada", fmt.Sprintf(
		"Fatura de %s para %s no valor de R$ %s",
		FormatCompetenceDisplay(competence), company.Name, invoice.TotalValue.StringFixed(2),
	), domain.SystemLogSuccess)

	return invoice, nil
}

// GenerateBatch gera uma fatura para cada empresa Ativa na competência da data
// de referência. A geração não é atômica entre empresas: cada falha é contada
// e as demais continuam.
func (s *Service) GenerateBatch(actor *domain.Claims, request *domain.BatchGenerationRequest) (*domain.BatchGenerationResult, error) {
	referenceDate, err := utils.ParseDate(request.ReferenceDate)
	if err != nil {
		return nil, NewBillingError(ErrInvalidDueDate, apiErrors.ErrInvalidFormat, "Data de referência deve estar no formato AAAA-MM-DD")
	}

	competence := CompetenceFromDate(referenceDate)

	// Sem vencimento informado, vence 30 dias corridos após a referência
	var dueDate time.Time
	if request.DueDate != "" {
		dueDate, err = utils.ParseDate(request.DueDate)
		if err != nil {
			return nil, NewBillingError(ErrInvalidDueDate, apiErrors.ErrInvalidFormat, "Vencimento deve estar no formato AAAA-MM-DD")
		}
	} else {
		dueDate = OffsetDueDate(referenceDate)
	}

	companies, err := s.companyRepository.List(actor.UserID, domain.CompanyFilter{
		Status: []domain.CompanyStatus{domain.CompanyStatusActive},
	})
	if err != nil {
		return nil, NewBillingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar empresas ativas")
	}

	result := &domain.BatchGenerationResult{
		Requested:  len(companies),
		Competence: competence,
	}

	for _, company := range companies {
		employeeCount := company.EmployeeCount

		// A quantidade informada na geração substitui a armazenada e,
		// quando difere, atualiza também o cadastro na mesma transação
		var newCount *int
		if override, ok := request.HeadcountOverrides[company.ID]; ok {
			employeeCount = override
			if override != company.EmployeeCount {
				newCount = &override
			}
		}

		invoice, err := s.buildInvoice(company, competence, dueDate, employeeCount, nil)
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", company.Name, err))
			continue
		}

		if err := s.invoiceRepository.CreateWithHeadcountUpdate(invoice, newCount); err != nil {
			logrus.Errorf("Falha ao gerar fatura em lote para a empresa %s: %v", company.ID, err)
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("%s: falha ao gravar fatura", company.Name))
			continue
		}

		result.Generated++
	}

	logType := domain.SystemLogSuccess
	if result.Failed > 0 {
		logType = domain.SystemLogWarning
	}

	s.appendLog(actor, "Faturamento em lote", fmt.Sprintf(
		"Competência %s: %d faturas geradas, %d falhas de %d empresas ativas",
		FormatCompetenceDisplay(competence), result.Generated, result.Failed, result.Requested,
	), logType)

	return result, nil
}

func (s *Service) buildInvoice(
	company *domain.Company,
	competence string,
	dueDate time.Time,
	employeeCount int,
	notes *string,
) (*domain.Invoice, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewBillingError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador da fatura")
	}

	return &domain.Invoice{
		ID:            id,
		CompanyID:     company.ID,
		CompanyName:   company.Name,
		Competence:    competence,
		DueDate:       dueDate,
		EmployeeCount: employeeCount,
		UnitValue:     s.unitPrice,
		TotalValue:    s.unitPrice.Mul(decimal.NewFromInt(int64(employeeCount))),
		Status:        domain.InvoiceStatusPending,
		Notes:         notes,
		UserID:        company.UserID,
	}, nil
}

func (s *Service) UpdateInvoiceStatus(actor *domain.Claims, invoiceID string, status domain.InvoiceStatus) error {
	switch status {
	case domain.InvoiceStatusPending, domain.InvoiceStatusPaid, domain.InvoiceStatusOverdue:
	default:
		return NewBillingError(ErrInvalidStatus, apiErrors.ErrInvalidFormat, "Status de fatura desconhecido")
	}

	invoice, err := s.invoiceRepository.GetByID(actor.UserID, invoiceID)
	if err != nil {
		return NewBillingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar fatura no banco de dados")
	}

	if invoice == nil {
		return NewBillingError(ErrInvoiceNotFound, apiErrors.ErrInvoiceNotFound, "Fatura não encontrada")
	}

	if err := s.invoiceRepository.UpdateStatus(actor.UserID, invoiceID, status); err != nil {
		return NewBillingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao atualizar status da fatura")
	}

	logType := domain.SystemLogInfo
	if status == domain.InvoiceStatusPaid {
		logType = domain.SystemLogSuccess
	}

	s.appendLog(actor, "Status de fatura alterado", fmt.Sprintf(
		"Fatura de %s (%s) marcada como %s",
		invoice.CompanyName, FormatCompetenceDisplay(invoice.Competence), status,
	), logType)

	return nil
}

func (s *Service) DeleteInvoice(actor *domain.Claims, invoiceID string) error {
	invoice, err := s.invoiceRepository.GetByID(actor.UserID, invoiceID)
	if err != nil {
		return NewBillingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar fatura no banco de dados")
	}

	if invoice == nil {
		return NewBillingError(ErrInvoiceNotFound, apiErrors.ErrInvoiceNotFound, "Fatura não encontrada")
	}

	if err := s.invoiceRepository.Delete(actor.UserID, invoiceID); err != nil {
		return NewBillingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao remover fatura")
	}

	s.appendLog(actor, "Fatura removida", fmt.Sprintf(
		"Fatura de %s (%s) removida",
		invoice.CompanyName, FormatCompetenceDisplay(invoice.Competence),
	), domain.SystemLogWarning)

	return nil
}

// SweepOverdue marca como Vencida toda fatura Pendente com vencimento anterior
// a hoje. A varredura cobre todos os usuários; quando disparada manualmente, o
// resultado agregado é registrado na auditoria do usuário que disparou.
func (s *Service) SweepOverdue(actor *domain.Claims) (int64, error) {
	updated, err := s.invoiceRepository.MarkOverdue(utils.Today())
	if err != nil {
		return 0, NewBillingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao vencer faturas pendentes")
	}

	if updated > 0 {
		logrus.Infof("Varredura de vencimento: %d faturas marcadas como Vencido", updated)
	}

	if actor != nil {
		s.appendLog(actor, "Varredura de vencimento", fmt.Sprintf(
			"%d faturas pendentes marcadas como Vencido", updated,
		), domain.SystemLogInfo)
	}

	return updated, nil
}

// appendLog grava a entrada de auditoria. Falha de auditoria não derruba a
// operação principal, apenas gera um log de aplicação.
func (s *Service) appendLog(actor *domain.Claims, action, details string, logType domain.SystemLogType) {
	if actor == nil {
		return
	}

	id, err := utils.GenerateID()
	if err != nil {
		logrus.Errorf("Falha ao gerar identificador do log de sistema: %v", err)
		return
	}

	entry := &domain.SystemLog{
		ID:        id,
		Action:    action,
		Details:   details,
		Type:      logType,
		UserEmail: actor.UserEmail,
		UserID:    actor.UserID,
		CreatedAt: time.Now(),
	}

	if err := s.logRepository.Append(entry); err != nil {
		logrus.Errorf("Falha ao gravar log de sistema: %v", err)
	}
}
