package company

import (
	"errors"
	"testing"

	"github.com/pontogestor/admin-api/infrastructure/repository/mocks"
	"github.com/pontogestor/admin-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (CompanyService, *mocks.MockCompanyRepository, *mocks.MockSystemLogRepository) {
	ctrl := gomock.NewController(t)

	companyRepo := mocks.NewMockCompanyRepository(ctrl)
	logRepo := mocks.NewMockSystemLogRepository(ctrl)

	return NewService(companyRepo, logRepo), companyRepo, logRepo
}

func testActor() *domain.Claims {
	return &domain.Claims{
		UserID:    1,
		UserName:  "Administrador",
		UserEmail: "admin@pontogestor.com.br",
		UserRole:  1,
	}
}

func statusPtr(status domain.CompanyStatus) *domain.CompanyStatus {
	return &status
}

func TestService_CreateCompany(t *testing.T) {
	tests := []struct {
		name        string
		request     *domain.CreateCompanyRequest
		setup       func(*mocks.MockCompanyRepository, *mocks.MockSystemLogRepository)
		expectedErr error
		validate    func(t *testing.T, company *domain.Company)
	}{
		{
			name: "Empresa sem status informado nasce Ativa",
			request: &domain.CreateCompanyRequest{
				Name:          "TechSolutions Ltda",
				CNPJ:          "12.345.678/0001-90",
				ContactName:   "Carlos Silva",
				EmployeeCount: 48,
			},
			setup: func(companyRepo *mocks.MockCompanyRepository, logRepo *mocks.MockSystemLogRepository) {
				companyRepo.EXPECT().Create(gomock.Any()).Return(nil)
				logRepo.EXPECT().Append(gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, company *domain.Company) {
				assert.Equal(t, domain.CompanyStatusActive, company.Status)
				assert.Equal(t, 48, company.EmployeeCount)
				assert.Equal(t, 1, company.UserID)
				assert.NotEmpty(t, company.ID)
			},
		},
		{
			name: "Nome é obrigatório",
			request: &domain.CreateCompanyRequest{
				CNPJ: "12.345.678/0001-90",
			},
			expectedErr: ErrNameRequired,
		},
		{
			name: "CNPJ é obrigatório",
			request: &domain.CreateCompanyRequest{
				Name: "TechSolutions Ltda",
			},
			expectedErr: ErrCNPJRequired,
		},
		{
			name: "Status desconhecido deve ser rejeitado",
			request: &domain.CreateCompanyRequest{
				Name:   "TechSolutions Ltda",
				CNPJ:   "12.345.678/0001-90",
				Status: domain.CompanyStatus("Suspenso"),
			},
			expectedErr: ErrInvalidStatus,
		},
		{
			name: "Falha ao gravar no banco deve propagar erro de banco",
			request: &domain.CreateCompanyRequest{
				Name: "TechSolutions Ltda",
				CNPJ: "12.345.678/0001-90",
			},
			setup: func(companyRepo *mocks.MockCompanyRepository, logRepo *mocks.MockSystemLogRepository) {
				companyRepo.EXPECT().Create(gomock.Any()).Return(errors.New("connection refused"))
			},
			expectedErr: ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, companyRepo, logRepo := newTestService(t)

			if tt.setup != nil {
				tt.setup(companyRepo, logRepo)
			}

			company, err := service.CreateCompany(testActor(), tt.request)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, company)
				return
			}

			assert.NoError(t, err)
			if tt.validate != nil {
				tt.validate(t, company)
			}
		})
	}
}

func TestService_UpdateCompany(t *testing.T) {
	existing := &domain.Company{
		ID:     "Abc123",
		Name:   "Logística Express",
		Status: domain.CompanyStatusActive,
		UserID: 1,
	}

	t.Run("Bloqueio de empresa gera auditoria de alerta", func(t *testing.T) {
		service, companyRepo, logRepo := newTestService(t)

		blocked := *existing
		blocked.Status = domain.CompanyStatusBlocked

		request := &domain.UpdateCompanyRequest{
			ID:     "Abc123",
			Status: statusPtr(domain.CompanyStatusBlocked),
		}

		companyRepo.EXPECT().GetByID(1, "Abc123").Return(existing, nil)
		companyRepo.EXPECT().Update(1, request).Return(nil)
		companyRepo.EXPECT().GetByID(1, "Abc123").Return(&blocked, nil)
		logRepo.EXPECT().
			Append(gomock.Any()).
			DoAndReturn(func(entry *domain.SystemLog) error {
				assert.Equal(t, domain.SystemLogWarning, entry.Type)
				assert.Contains(t, entry.Details, "status alterado de Ativo para Bloqueado")
				return nil
			})

		updated, err := service.UpdateCompany(testActor(), request)

		assert.NoError(t, err)
		assert.Equal(t, domain.CompanyStatusBlocked, updated.Status)
	})

	t.Run("Atualização sem mudança de status gera auditoria informativa", func(t *testing.T) {
		service, companyRepo, logRepo := newTestService(t)

		name := "Logística Express ME"
		request := &domain.UpdateCompanyRequest{
			ID:   "Abc123",
			Name: &name,
		}

		companyRepo.EXPECT().GetByID(1, "Abc123").Return(existing, nil).Times(2)
		companyRepo.EXPECT().Update(1, request).Return(nil)
		logRepo.EXPECT().
			Append(gomock.Any()).
			DoAndReturn(func(entry *domain.SystemLog) error {
				assert.Equal(t, domain.SystemLogInfo, entry.Type)
				return nil
			})

		_, err := service.UpdateCompany(testActor(), request)
		assert.NoError(t, err)
	})

	t.Run("Empresa inexistente deve retornar erro de não encontrada", func(t *testing.T) {
		service, companyRepo, _ := newTestService(t)

		companyRepo.EXPECT().GetByID(1, "Zzz999").Return(nil, nil)

		_, err := service.UpdateCompany(testActor(), &domain.UpdateCompanyRequest{ID: "Zzz999"})
		assert.ErrorIs(t, err, ErrCompanyNotFound)
	})

	t.Run("Status desconhecido deve ser rejeitado antes de consultar o banco", func(t *testing.T) {
		service, _, _ := newTestService(t)

		_, err := service.UpdateCompany(testActor(), &domain.UpdateCompanyRequest{
			ID:     "Abc123",
			Status: statusPtr(domain.CompanyStatus("Suspenso")),
		})
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})
}

func TestService_DeleteCompany(t *testing.T) {
	t.Run("Remoção registra quantas faturas foram removidas junto", func(t *testing.T) {
		service, companyRepo, logRepo := newTestService(t)

		companyRepo.EXPECT().GetByID(1, "Abc123").Return(&domain.Company{
			ID:   "Abc123",
			Name: "Padaria do João",
		}, nil)
		companyRepo.EXPECT().Delete(1, "Abc123").Return(int64(4), nil)
		logRepo.EXPECT().
			Append(gomock.Any()).
			DoAndReturn(func(entry *domain.SystemLog) error {
				assert.Equal(t, domain.SystemLogWarning, entry.Type)
				assert.Contains(t, entry.Details, "4 faturas")
				return nil
			})

		err := service.DeleteCompany(testActor(), "Abc123")
		assert.NoError(t, err)
	})

	t.Run("Empresa inexistente deve retornar erro de não encontrada", func(t *testing.T) {
		service, companyRepo, _ := newTestService(t)

		companyRepo.EXPECT().GetByID(1, "Zzz999").Return(nil, nil)

		err := service.DeleteCompany(testActor(), "Zzz999")
		assert.ErrorIs(t, err, ErrCompanyNotFound)
	})
}
