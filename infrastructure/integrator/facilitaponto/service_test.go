package facilitaponto

import (
	"encoding/json"
	"errors"
	"testing"

	fpdomain "github.com/pontogestor/admin-api/infrastructure/integrator/facilitaponto/domain"
	"github.com/pontogestor/admin-api/infrastructure/integrator/facilitaponto/fpclient"
	clientmocks "github.com/pontogestor/admin-api/infrastructure/integrator/facilitaponto/fpclient/mocks"
	"github.com/pontogestor/admin-api/internal/config"
	"github.com/pontogestor/admin-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func stringPtr(s string) *string {
	return &s
}

func testCompany() *domain.Company {
	return &domain.Company{
		ID:                  "Abc123",
		Name:                "TechSolutions Ltda",
		CompanyKey:          stringPtr("chave-tech"),
		IntegrationPassword: stringPtr("senha-tech"),
	}
}

func TestFacilitaPontoService_CountBillableEmployees(t *testing.T) {
	tests := []struct {
		name          string
		company       *domain.Company
		setup         func(*clientmocks.MockClient)
		expectedCount int
		expectedErr   error
	}{
		{
			name:    "Demitidos ficam de fora da contagem",
			company: testCompany(),
			setup: func(client *clientmocks.MockClient) {
				client.EXPECT().
					ListEmployees(fpclient.ListEmployeesParams{
						CompanyKey:          "chave-tech",
						IntegrationPassword: "senha-tech",
					}).
					Return(fpclient.ListEmployeesResponse{
						{ID: "1", Name: "Ana", Situacao: "1"},
						{ID: "2", Name: "Bruno", Situacao: "4"},
						{ID: "3", Name: "Clara", Situacao: "3"},
					}, nil)
			},
			expectedCount: 2,
		},
		{
			name:    "Situação não numérica conta como faturável",
			company: testCompany(),
			setup: func(client *clientmocks.MockClient) {
				client.EXPECT().
					ListEmployees(gomock.Any()).
					Return(fpclient.ListEmployeesResponse{
						{ID: "1", Name: "Ana", Situacao: "ativo"},
					}, nil)
			},
			expectedCount: 1,
		},
		{
			name: "Empresa sem credenciais não consulta o parceiro",
			company: &domain.Company{
				ID:   "Def456",
				Name: "Padaria do João",
			},
			expectedErr: ErrMissingCredentials,
		},
		{
			name:    "Erro do parceiro é propagado",
			company: testCompany(),
			setup: func(client *clientmocks.MockClient) {
				client.EXPECT().
					ListEmployees(gomock.Any()).
					Return(nil, errors.New("requisição falhou com status: 401 Unauthorized"))
			},
			expectedErr: errors.New("requisição falhou com status: 401 Unauthorized"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := clientmocks.NewMockClient(ctrl)

			if tt.setup != nil {
				tt.setup(client)
			}

			service := New(&config.Config{}, client)
			count, err := service.CountBillableEmployees(tt.company)

			if tt.expectedErr != nil {
				assert.EqualError(t, err, tt.expectedErr.Error())
				assert.Zero(t, count)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedCount, count)
		})
	}
}

func TestFacilitaPontoService_CheckConnection(t *testing.T) {
	t.Run("Listagem bem sucedida confirma a conexão", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := clientmocks.NewMockClient(ctrl)

		client.EXPECT().
			ListEmployees(fpclient.ListEmployeesParams{
				CompanyKey:          "chave-tech",
				IntegrationPassword: "senha-tech",
			}).
			Return(fpclient.ListEmployeesResponse{}, nil)

		service := New(&config.Config{}, client)
		ok, err := service.CheckConnection("chave-tech", "senha-tech")

		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Falha na listagem invalida a conexão", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := clientmocks.NewMockClient(ctrl)

		client.EXPECT().
			ListEmployees(gomock.Any()).
			Return(nil, errors.New("requisição falhou com status: 403 Forbidden"))

		service := New(&config.Config{}, client)
		ok, err := service.CheckConnection("chave-tech", "senha-errada")

		assert.Error(t, err)
		assert.False(t, ok)
	})
}

func TestEmployee_IsBillable(t *testing.T) {
	tests := []struct {
		name     string
		situacao string
		expected bool
	}{
		{name: "Ativo é faturável", situacao: "1", expected: true},
		{name: "Afastado é faturável", situacao: "2", expected: true},
		{name: "Férias é faturável", situacao: "3", expected: true},
		{name: "Demitido não é faturável", situacao: "4", expected: false},
		{name: "Pendente é faturável", situacao: "0", expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			employee := fpdomain.Employee{Situacao: json.Number(tt.situacao)}
			assert.Equal(t, tt.expected, employee.IsBillable())
		})
	}
}
