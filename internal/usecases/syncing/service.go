package syncing

import (
	"errors"
	"fmt"
	"time"

	"github.com/pontogestor/admin-api/infrastructure/integrator/facilitaponto"
	"github.com/pontogestor/admin-api/infrastructure/repository"
	"github.com/pontogestor/admin-api/internal/domain"
	"github.com/pontogestor/admin-api/pkg/apiErrors"
	"github.com/pontogestor/admin-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// Erros específicos para o contexto de sincronização
var (
	ErrDatabaseOperation = errors.New("database operation error")
	ErrFetchCompanies    = errors.New("error fetching companies from database")
	ErrCompanyNotFound   = errors.New("company not found")
)

type SyncError struct {
	Err     error
	Code    string
	Details string
}

func (e *SyncError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *SyncError) Unwrap() error {
	return e.Err
}

func NewSyncError(err error, code string, details string) *SyncError {
	return &SyncError{Err: err, Code: code, Details: details}
}

type SyncService interface {
	SyncHeadcounts(actor *domain.Claims) (*domain.HeadcountSyncResult, error)
	TestConnection(actor *domain.Claims, companyID string) (bool, error)
}

type Service struct {
	companyRepository repository.CompanyRepository
	logRepository     repository.SystemLogRepository
	facilitaPonto     facilitaponto.FacilitaPontoIntegrator
}

func NewService(
	companyRepository repository.CompanyRepository,
	logRepository repository.SystemLogRepository,
	facilitaPonto facilitaponto.FacilitaPontoIntegrator,
) SyncService {
	return &Service{
		companyRepository: companyRepository,
		logRepository:     logRepository,
		facilitaPonto:     facilitaPonto,
	}
}

// SyncHeadcounts consulta o Facilita Ponto para cada empresa Ativa com
// credenciais de integração e atualiza o quadro armazenado quando a contagem
// mudou. Empresas sem credenciais são puladas; falha em uma empresa não
// interrompe as demais. Faturas já emitidas nunca são tocadas.
func (s *Service) SyncHeadcounts(actor *domain.Claims) (*domain.HeadcountSyncResult, error) {
	companies, err := s.companyRepository.List(actor.UserID, domain.CompanyFilter{
		Status: []domain.CompanyStatus{domain.CompanyStatusActive},
	})
	if err != nil {
		return nil, NewSyncError(ErrFetchCompanies, apiErrors.ErrDatabaseOperation, "Falha ao listar empresas ativas")
	}

	result := &domain.HeadcountSyncResult{
		Details: make([]domain.HeadcountSyncEntry, 0, len(companies)),
	}

	for _, company := range companies {
		if !company.HasIntegrationCredentials() {
			result.Skipped++
			continue
		}

		result.Checked++

		count, err := s.facilitaPonto.CountBillableEmployees(company)
		if err != nil {
			logrus.Errorf("Falha ao sincronizar quadro da empresa %s: %v", company.ID, err)
			result.Failed++
			continue
		}

		entry := domain.HeadcountSyncEntry{
			CNPJ:            company.CNPJ,
			CompanyName:     company.Name,
			ActiveEmployees: count,
			PreviousCount:   company.EmployeeCount,
			Changed:         count != company.EmployeeCount,
		}

		if entry.Changed {
			if err := s.companyRepository.UpdateEmployeeCount(actor.UserID, company.ID, count); err != nil {
				logrus.Errorf("Falha ao atualizar quadro da empresa %s: %v", company.ID, err)
				result.Failed++
				continue
			}

			result.Updated++
		}

		result.Details = append(result.Details, entry)
	}

	logType := domain.SystemLogSuccess
	if result.Failed > 0 {
		logType = domain.SystemLogWarning
	}

	s.appendLog(actor, "Sincronização de funcionários", fmt.Sprintf(
		"%d empresas consultadas, %d atualizadas, %d puladas sem credenciais, %d falhas",
		result.Checked, result.Updated, result.Skipped, result.Failed,
	), logType)

	return result, nil
}

// TestConnection verifica se as credenciais de integração da empresa são
// aceitas pelo Facilita Ponto. Falha de comunicação conta como conexão
// recusada, não como erro do servidor.
func (s *Service) TestConnection(actor *domain.Claims, companyID string) (bool, error) {
	company, err := s.companyRepository.GetByID(actor.UserID, companyID)
	if err != nil {
		return false, NewSyncError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar empresa no banco de dados")
	}

	if company == nil {
		return false, NewSyncError(ErrCompanyNotFound, apiErrors.ErrCompanyNotFound, "Empresa não encontrada")
	}

	if !company.HasIntegrationCredentials() {
		return false, NewSyncError(facilitaponto.ErrMissingCredentials, apiErrors.ErrMissingRequiredData, "Empresa sem credenciais de integração")
	}

	ok, err := s.facilitaPonto.CheckConnection(*company.CompanyKey, *company.IntegrationPassword)
	if err != nil {
		logrus.Errorf("Falha ao testar conexão da empresa %s: %v", companyID, err)
		return false, nil
	}

	return ok, nil
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
