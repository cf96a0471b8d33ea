package company

import (
	"fmt"
	"time"

	"github.com/pontogestor/admin-api/infrastructure/repository"
	"github.com/pontogestor/admin-api/internal/domain"
	"github.com/pontogestor/admin-api/pkg/apiErrors"
	"github.com/pontogestor/admin-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

type CompanyService interface {
	ListCompanies(userID int, filter domain.CompanyFilter) ([]*domain.Company, error)
	GetCompany(userID int, companyID string) (*domain.Company, error)
	CreateCompany(actor *domain.Claims, request *domain.CreateCompanyRequest) (*domain.Company, error)
	UpdateCompany(actor *domain.Claims, request *domain.UpdateCompanyRequest) (*domain.Company, error)
	DeleteCompany(actor *domain.Claims, companyID string) error
}

type Service struct {
	companyRepository repository.CompanyRepository
	logRepository     repository.SystemLogRepository
}

func NewService(
	companyRepository repository.CompanyRepository,
	logRepository repository.SystemLogRepository,
) CompanyService {
	return &Service{
		companyRepository: companyRepository,
		logRepository:     logRepository,
	}
}

func (s *Service) ListCompanies(userID int, filter domain.CompanyFilter) ([]*domain.Company, error) {
	companies, err := s.companyRepository.List(userID, filter)
	if err != nil {
		return nil, NewCompanyError(ErrFetchCompanies, apiErrors.ErrDatabaseOperation, "Falha ao listar empresas no banco de dados")
	}

	return companies, nil
}

func (s *Service) GetCompany(userID int, companyID string) (*domain.Company, error) {
	company, err := s.companyRepository.GetByID(userID, companyID)
	if err != nil {
		return nil, NewCompanyError(ErrFetchCompanies, apiErrors.ErrDatabaseOperation, "Falha ao buscar empresa no banco de dados")
	}

	if company == nil {
		return nil, NewCompanyError(ErrCompanyNotFound, apiErrors.ErrCompanyNotFound, "Empresa não encontrada")
	}

	return company, nil
}

func (s *Service) CreateCompany(actor *domain.Claims, request *domain.CreateCompanyRequest) (*domain.Company, error) {
	if request.Name == "" {
		return nil, NewCompanyError(ErrNameRequired, apiErrors.ErrMissingRequiredData, "Informe o nome da empresa")
	}

	if request.CNPJ == "" {
		return nil, NewCompanyError(ErrCNPJRequired, apiErrors.ErrMissingRequiredData, "Informe o CNPJ da empresa")
	}

	status := request.Status
	if status == "" {
		status = domain.CompanyStatusActive
	}

	if !validStatus(status) {
		return nil, NewCompanyError(ErrInvalidStatus, apiErrors.ErrInvalidFormat, "Status de empresa desconhecido")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewCompanyError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador da empresa")
	}

	company := &domain.Company{
		ID:                  id,
		Name:                request.Name,
		CNPJ:                request.CNPJ,
		ContactName:         request.ContactName,
		Status:              status,
		CreatedAt:           time.Now(),
		EmployeeCount:       request.EmployeeCount,
		Notes:               request.Notes,
		CompanyKey:          request.CompanyKey,
		IntegrationPassword: request.IntegrationPassword,
		UserID:              actor.UserID,
	}

	if err := s.companyRepository.Create(company); err != nil {
		return nil, NewCompanyError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao gravar empresa no banco de dados")
	}

	s.appendLog(actor, "Empresa cadastrada", fmt.Sprintf(
		"Empresa %s (CNPJ %s) cadastrada com %d funcionários",
		company.Name, company.CNPJ, company.EmployeeCount,
	), domain.SystemLogSuccess)

	return company, nil
}

func (s *Service) UpdateCompany(actor *domain.Claims, request *domain.UpdateCompanyRequest) (*domain.Company, error) {
	if request.ID == "" {
		return nil, NewCompanyError(ErrCompanyIDRequired, apiErrors.ErrMissingRequiredData, "Informe o ID da empresa")
	}

	if request.Status != nil && !validStatus(*request.Status) {
		return nil, NewCompanyError(ErrInvalidStatus, apiErrors.ErrInvalidFormat, "Status de empresa desconhecido")
	}

	existing, err := s.companyRepository.GetByID(actor.UserID, request.ID)
	if err != nil {
		return nil, NewCompanyError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar empresa no banco de dados")
	}

	if existing == nil {
		return nil, NewCompanyError(ErrCompanyNotFound, apiErrors.ErrCompanyNotFound, "Empresa não encontrada")
	}

	if err := s.companyRepository.Update(actor.UserID, request); err != nil {
		return nil, NewCompanyError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao atualizar empresa")
	}

	updated, err := s.companyRepository.GetByID(actor.UserID, request.ID)
	if err != nil {
		return nil, NewCompanyError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar empresa atualizada")
	}

	logType := domain.SystemLogInfo
	details := fmt.Sprintf("Dados da empresa %s atualizados", existing.Name)

	// Mudança de status é o evento mais relevante para a auditoria
	if request.Status != nil && *request.Status != existing.Status {
		details = fmt.Sprintf("Empresa %s: status alterado de %s para %s", existing.Name, existing.Status, *request.Status)
		if *request.Status == domain.CompanyStatusBlocked || *request.Status == domain.CompanyStatusCancelled {
			logType = domain.SystemLogWarning
		}
	}

	s.appendLog(actor, "Empresa atualizada", details, logType)

	return updated, nil
}

// DeleteCompany remove a empresa e todas as suas faturas.
func (s *Service) DeleteCompany(actor *domain.Claims, companyID string) error {
	if companyID == "" {
		return NewCompanyError(ErrCompanyIDRequired, apiErrors.ErrMissingRequiredData, "Informe o ID da empresa")
	}

	existing, err := s.companyRepository.GetByID(actor.UserID, companyID)
	if err != nil {
		return NewCompanyError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar empresa no banco de dados")
	}

	if existing == nil {
		return NewCompanyError(ErrCompanyNotFound, apiErrors.ErrCompanyNotFound, "Empresa não encontrada")
	}

	invoicesDeleted, err := s.companyRepository.Delete(actor.UserID, companyID)
	if err != nil {
		return NewCompanyError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao remover empresa")
	}

	s.appendLog(actor, "Empresa removida", fmt.Sprintf(
		"Empresa %s removida junto com %d faturas",
		existing.Name, invoicesDeleted,
	), domain.SystemLogWarning)

	return nil
}

func validStatus(status domain.CompanyStatus) bool {
	switch status {
	case domain.CompanyStatusActive,
		domain.CompanyStatusInactive,
		domain.CompanyStatusBlocked,
		domain.CompanyStatusCancelled,
		domain.CompanyStatusUnused:
		return true
	}

	return false
}

func (s *Service) appendLog(actor *domain.Claims, action, details string, logType domain.SystemLogType) {
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
