package billing

import (
	"errors"
	"testing"
	"time"

	"github.com/pontogestor/admin-api/infrastructure/repository/mocks"
	"github.com/pontogestor/admin-api/internal/config"
	"github.com/pontogestor/admin-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (BillingService, *mocks.MockInvoiceRepository, *mocks.MockCompanyRepository, *mocks.MockSystemLogRepository) {
	ctrl := gomock.NewController(t)

	invoiceRepo := mocks.NewMockInvoiceRepository(ctrl)
	companyRepo := mocks.NewMockCompanyRepository(ctrl)
	logRepo := mocks.NewMockSystemLogRepository(ctrl)

	cfg := &config.Config{
		Billing: config.Billing{UnitPrice: "5.00"},
	}

	service := NewService(invoiceRepo, companyRepo, logRepo, cfg)

	return service, invoiceRepo, companyRepo, logRepo
}

func testActor() *domain.Claims {
	return &domain.Claims{
		UserID:    1,
		UserName:  "Administrador",
		UserEmail: "admin@pontogestor.com.br",
		UserRole:  1,
	}
}

func TestService_CreateInvoice(t *testing.T) {
	company := &domain.Company{
		ID:            "Abc123",
		Name:          "TechSolutions Ltda",
		Status:        domain.CompanyStatusActive,
		EmployeeCount: 48,
		UserID:        1,
	}

	tests := []struct {
		name        string
		request     *domain.CreateInvoiceRequest
		setup       func(*mocks.MockInvoiceRepository, *mocks.MockCompanyRepository, *mocks.MockSystemLogRepository)
		expectedErr error
		validate    func(t *testing.T, invoice *domain.Invoice)
	}{
		{
			name: "Fatura congela nome, quantidade e preço no momento da criação",
			request: &domain.CreateInvoiceRequest{
				CompanyID:  "Abc123",
				Competence: "11/2090",
			},
			setup: func(invoiceRepo *mocks.MockInvoiceRepository, companyRepo *mocks.MockCompanyRepository, logRepo *mocks.MockSystemLogRepository) {
				companyRepo.EXPECT().GetByID(1, "Abc123").Return(company, nil)
				invoiceRepo.EXPECT().Create(gomock.Any()).Return(nil)
				logRepo.EXPECT().Append(gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, invoice *domain.Invoice) {
				assert.Equal(t, "TechSolutions Ltda", invoice.CompanyName)
				assert.Equal(t, "2090-11", invoice.Competence)
				assert.Equal(t, 48, invoice.EmployeeCount)
				assert.Equal(t, "5.00", invoice.UnitValue.StringFixed(2))
				assert.Equal(t, "240.00", invoice.TotalValue.StringFixed(2))
				assert.Equal(t, domain.InvoiceStatusPending, invoice.Status)

				// Sem vencimento informado, vence no último dia do mês
				expectedDue := time.Date(2090, 11, 30, 0, 0, 0, 0, time.Local)
				assert.True(t, expectedDue.Equal(invoice.DueDate))
			},
		},
		{
			name: "Vencimento no passado entra direto como Vencida",
			request: &domain.CreateInvoiceRequest{
				CompanyID:  "Abc123",
				Competence: "11/2023",
			},
			setup: func(invoiceRepo *mocks.MockInvoiceRepository, companyRepo *mocks.MockCompanyRepository, logRepo *mocks.MockSystemLogRepository) {
				companyRepo.EXPECT().GetByID(1, "Abc123").Return(company, nil)
				invoiceRepo.EXPECT().Create(gomock.Any()).Return(nil)
				logRepo.EXPECT().Append(gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, invoice *domain.Invoice) {
				assert.Equal(t, domain.InvoiceStatusOverdue, invoice.Status)
			},
		},
		{
			name: "Vencimento informado prevalece sobre o padrão",
			request: &domain.CreateInvoiceRequest{
				CompanyID:  "Abc123",
				Competence: "11/2023",
				DueDate:    "2023-12-10",
			},
			setup: func(invoiceRepo *mocks.MockInvoiceRepository, companyRepo *mocks.MockCompanyRepository, logRepo *mocks.MockSystemLogRepository) {
				companyRepo.EXPECT().GetByID(1, "Abc123").Return(company, nil)
				invoiceRepo.EXPECT().Create(gomock.Any()).Return(nil)
				logRepo.EXPECT().Append(gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, invoice *domain.Invoice) {
				expectedDue := time.Date(2023, 12, 10, 0, 0, 0, 0, time.UTC)
				assert.True(t, expectedDue.Equal(invoice.DueDate))
			},
		},
		{
			name: "Empresa não informada deve ser rejeitada",
			request: &domain.CreateInvoiceRequest{
				Competence: "11/2023",
			},
			expectedErr: ErrCompanyIDRequired,
		},
		{
			name: "Competência fora do formato MM/AAAA deve ser rejeitada",
			request: &domain.CreateInvoiceRequest{
				CompanyID:  "Abc123",
				Competence: "2023-11",
			},
			expectedErr: ErrInvalidCompetenceFormat,
		},
		{
			name: "Empresa inexistente deve retornar erro de não encontrada",
			request: &domain.CreateInvoiceRequest{
				CompanyID:  "Zzz999",
				Competence: "11/2023",
			},
			setup: func(invoiceRepo *mocks.MockInvoiceRepository, companyRepo *mocks.MockCompanyRepository, logRepo *mocks.MockSystemLogRepository) {
				companyRepo.EXPECT().GetByID(1, "Zzz999").Return(nil, nil)
			},
			expectedErr: ErrCompanyNotFound,
		},
		{
			name: "Vencimento fora do formato AAAA-MM-DD deve ser rejeitado",
			request: &domain.CreateInvoiceRequest{
				CompanyID:  "Abc123",
				Competence: "11/2023",
				DueDate:    "10/12/2023",
			},
			setup: func(invoiceRepo *mocks.MockInvoiceRepository, companyRepo *mocks.MockCompanyRepository, logRepo *mocks.MockSystemLogRepository) {
				companyRepo.EXPECT().GetByID(1, "Abc123").Return(company, nil)
			},
			expectedErr: ErrInvalidDueDate,
		},
		{
			name: "Falha ao gravar no banco deve propagar erro de banco",
			request: &domain.CreateInvoiceRequest{
				CompanyID:  "Abc123",
				Competence: "11/2023",
			},
			setup: func(invoiceRepo *mocks.MockInvoiceRepository, companyRepo *mocks.MockCompanyRepository, logRepo *mocks.MockSystemLogRepository) {
				companyRepo.EXPECT().GetByID(1, "Abc123").Return(company, nil)
				invoiceRepo.EXPECT().Create(gomock.Any()).Return(errors.New("connection refused"))
			},
			expectedErr: ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, invoiceRepo, companyRepo, logRepo := newTestService(t)

			if tt.setup != nil {
				tt.setup(invoiceRepo, companyRepo, logRepo)
			}

			invoice, err := service.CreateInvoice(testActor(), tt.request)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, invoice)
				return
			}

			assert.NoError(t, err)
			if tt.validate != nil {
				tt.validate(t, invoice)
			}
		})
	}
}

func TestService_GenerateBatch(t *testing.T) {
	activeCompanies := []*domain.Company{
		{ID: "Abc123", Name: "TechSolutions Ltda", Status: domain.CompanyStatusActive, EmployeeCount: 48, UserID: 1},
		{ID: "Def456", Name: "Padaria do João", Status: domain.CompanyStatusActive, EmployeeCount: 12, UserID: 1},
	}

	tests := []struct {
		name        string
		request     *domain.BatchGenerationRequest
		setup       func(*mocks.MockInvoiceRepository, *mocks.MockCompanyRepository, *mocks.MockSystemLogRepository)
		expectedErr error
		validate    func(t *testing.T, result *domain.BatchGenerationResult)
	}{
		{
			name: "Gera uma fatura para cada empresa ativa com vencimento padrão de 30 dias",
			request: &domain.BatchGenerationRequest{
				ReferenceDate: "2023-11-15",
			},
			setup: func(invoiceRepo *mocks.MockInvoiceRepository, companyRepo *mocks.MockCompanyRepository, logRepo *mocks.MockSystemLogRepository) {
				companyRepo.EXPECT().
					List(1, domain.CompanyFilter{Status: []domain.CompanyStatus{domain.CompanyStatusActive}}).
					Return(activeCompanies, nil)

				invoiceRepo.EXPECT().
					CreateWithHeadcountUpdate(gomock.Any(), gomock.Any()).
					DoAndReturn(func(invoice *domain.Invoice, newCount *int) error {
						assert.Equal(t, "2023-11", invoice.Competence)
						assert.Nil(t, newCount)

						expectedDue := time.Date(2023, 12, 15, 0, 0, 0, 0, time.UTC)
						assert.True(t, expectedDue.Equal(invoice.DueDate))
						return nil
					}).
					Times(2)

				logRepo.EXPECT().Append(gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, result *domain.BatchGenerationResult) {
				assert.Equal(t, 2, result.Requested)
				assert.Equal(t, 2, result.Generated)
				assert.Equal(t, 0, result.Failed)
				assert.Equal(t, "2023-11", result.Competence)
				assert.Empty(t, result.Errors)
			},
		},
		{
			name: "Quantidade informada diferente da armazenada atualiza o cadastro",
			request: &domain.BatchGenerationRequest{
				ReferenceDate:      "2023-11-15",
				HeadcountOverrides: map[string]int{"Abc123": 50, "Def456": 12},
			},
			setup: func(invoiceRepo *mocks.MockInvoiceRepository, companyRepo *mocks.MockCompanyRepository, logRepo *mocks.MockSystemLogRepository) {
				companyRepo.EXPECT().
					List(1, gomock.Any()).
					Return(activeCompanies, nil)

				invoiceRepo.EXPECT().
					CreateWithHeadcountUpdate(gomock.Any(), gomock.Any()).
					DoAndReturn(func(invoice *domain.Invoice, newCount *int) error {
						switch invoice.CompanyID {
						case "Abc123":
							// 50 difere dos 48 armazenados
							assert.Equal(t, 50, invoice.EmployeeCount)
							assert.Equal(t, "250.00", invoice.TotalValue.StringFixed(2))
							if assert.NotNil(t, newCount) {
								assert.Equal(t, 50, *newCount)
							}
						case "Def456":
							// 12 coincide com o armazenado, cadastro não muda
							assert.Equal(t, 12, invoice.EmployeeCount)
							assert.Nil(t, newCount)
						}
						return nil
					}).
					Times(2)

				logRepo.EXPECT().Append(gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, result *domain.BatchGenerationResult) {
				assert.Equal(t, 2, result.Generated)
				assert.Equal(t, 0, result.Failed)
			},
		},
		{
			name: "Falha em uma empresa não interrompe as demais",
			request: &domain.BatchGenerationRequest{
				ReferenceDate: "2023-11-15",
			},
			setup: func(invoiceRepo *mocks.MockInvoiceRepository, companyRepo *mocks.MockCompanyRepository, logRepo *mocks.MockSystemLogRepository) {
				companyRepo.EXPECT().
					List(1, gomock.Any()).
					Return(activeCompanies, nil)

				invoiceRepo.EXPECT().
					CreateWithHeadcountUpdate(gomock.Any(), gomock.Any()).
					DoAndReturn(func(invoice *domain.Invoice, newCount *int) error {
						if invoice.CompanyID == "Abc123" {
							return errors.New("deadlock detected")
						}
						return nil
					}).
					Times(2)

				logRepo.EXPECT().Append(gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, result *domain.BatchGenerationResult) {
				assert.Equal(t, 2, result.Requested)
				assert.Equal(t, 1, result.Generated)
				assert.Equal(t, 1, result.Failed)
				assert.Len(t, result.Errors, 1)
				assert.Contains(t, result.Errors[0], "TechSolutions Ltda")
			},
		},
		{
			name: "Data de referência inválida deve ser rejeitada",
			request: &domain.BatchGenerationRequest{
				ReferenceDate: "15/11/2023",
			},
			expectedErr: ErrInvalidDueDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, invoiceRepo, companyRepo, logRepo := newTestService(t)

			if tt.setup != nil {
				tt.setup(invoiceRepo, companyRepo, logRepo)
			}

			result, err := service.GenerateBatch(testActor(), tt.request)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			assert.NoError(t, err)
			if tt.validate != nil {
				tt.validate(t, result)
			}
		})
	}
}

func TestService_UpdateInvoiceStatus(t *testing.T) {
	invoice := &domain.Invoice{
		ID:          "Inv001",
		CompanyName: "TechSolutions Ltda",
		Competence:  "2023-11",
		Status:      domain.InvoiceStatusPending,
	}

	tests := []struct {
		name        string
		invoiceID   string
		status      domain.InvoiceStatus
		setup       func(*mocks.MockInvoiceRepository, *mocks.MockSystemLogRepository)
		expectedErr error
	}{
		{
			name:      "Marcar como Pago registra auditoria de sucesso",
			invoiceID: "Inv001",
			status:    domain.InvoiceStatusPaid,
			setup: func(invoiceRepo *mocks.MockInvoiceRepository, logRepo *mocks.MockSystemLogRepository) {
				invoiceRepo.EXPECT().GetByID(1, "Inv001").Return(invoice, nil)
				invoiceRepo.EXPECT().UpdateStatus(1, "Inv001", domain.InvoiceStatusPaid).Return(nil)
				logRepo.EXPECT().
					Append(gomock.Any()).
					DoAndReturn(func(entry *domain.SystemLog) error {
						assert.Equal(t, domain.SystemLogSuccess, entry.Type)
						return nil
					})
			},
		},
		{
			name:        "Status desconhecido deve ser rejeitado antes de consultar o banco",
			invoiceID:   "Inv001",
			status:      domain.InvoiceStatus("Cancelada"),
			expectedErr: ErrInvalidStatus,
		},
		{
			name:      "Fatura inexistente deve retornar erro de não encontrada",
			invoiceID: "Zzz999",
			status:    domain.InvoiceStatusPaid,
			setup: func(invoiceRepo *mocks.MockInvoiceRepository, logRepo *mocks.MockSystemLogRepository) {
				invoiceRepo.EXPECT().GetByID(1, "Zzz999").Return(nil, nil)
			},
			expectedErr: ErrInvoiceNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, invoiceRepo, _, logRepo := newTestService(t)

			if tt.setup != nil {
				tt.setup(invoiceRepo, logRepo)
			}

			err := service.UpdateInvoiceStatus(testActor(), tt.invoiceID, tt.status)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestService_DeleteInvoice(t *testing.T) {
	t.Run("Remoção registra auditoria de alerta", func(t *testing.T) {
		service, invoiceRepo, _, logRepo := newTestService(t)

		invoiceRepo.EXPECT().GetByID(1, "Inv001").Return(&domain.Invoice{
			ID:          "Inv001",
			CompanyName: "Padaria do João",
			Competence:  "2023-11",
		}, nil)
		invoiceRepo.EXPECT().Delete(1, "Inv001").Return(nil)
		logRepo.EXPECT().
			Append(gomock.Any()).
			DoAndReturn(func(entry *domain.SystemLog) error {
				assert.Equal(t, domain.SystemLogWarning, entry.Type)
				return nil
			})

		err := service.DeleteInvoice(testActor(), "Inv001")
		assert.NoError(t, err)
	})

	t.Run("Fatura inexistente deve retornar erro de não encontrada", func(t *testing.T) {
		service, invoiceRepo, _, _ := newTestService(t)

		invoiceRepo.EXPECT().GetByID(1, "Zzz999").Return(nil, nil)

		err := service.DeleteInvoice(testActor(), "Zzz999")
		assert.ErrorIs(t, err, ErrInvoiceNotFound)
	})
}

func TestService_SweepOverdue(t *testing.T) {
	t.Run("Disparo manual registra o resultado na auditoria do usuário", func(t *testing.T) {
		service, invoiceRepo, _, logRepo := newTestService(t)

		invoiceRepo.EXPECT().MarkOverdue(gomock.Any()).Return(int64(3), nil)
		logRepo.EXPECT().Append(gomock.Any()).Return(nil)

		updated, err := service.SweepOverdue(testActor())

		assert.NoError(t, err)
		assert.Equal(t, int64(3), updated)
	})

	t.Run("Execução agendada sem usuário não grava auditoria", func(t *testing.T) {
		service, invoiceRepo, _, _ := newTestService(t)

		invoiceRepo.EXPECT().MarkOverdue(gomock.Any()).Return(int64(2), nil)

		updated, err := service.SweepOverdue(nil)

		assert.NoError(t, err)
		assert.Equal(t, int64(2), updated)
	})

	t.Run("Falha no banco deve propagar erro", func(t *testing.T) {
		service, invoiceRepo, _, _ := newTestService(t)

		invoiceRepo.EXPECT().MarkOverdue(gomock.Any()).Return(int64(0), errors.New("timeout"))

		_, err := service.SweepOverdue(nil)
		assert.ErrorIs(t, err, ErrDatabaseOperation)
	})
}
