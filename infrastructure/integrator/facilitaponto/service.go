package facilitaponto

import (
	"errors"

	"github.com/pontogestor/admin-api/infrastructure/integrator/facilitaponto/fpclient"
	"github.com/pontogestor/admin-api/internal/config"
	"github.com/pontogestor/admin-api/internal/domain"
)

// ErrMissingCredentials indica que a empresa não tem chave e senha de
// integração cadastradas.
var ErrMissingCredentials = errors.New("empresa sem credenciais de integração")

type FacilitaPontoIntegrator interface {
	CountBillableEmployees(company *domain.Company) (int, error)
	CheckConnection(companyKey, integrationPassword string) (bool, error)
}

type FacilitaPontoService struct {
	cfg    *config.Config
	Client fpclient.Client
}

func New(cfg *config.Config, client fpclient.Client) FacilitaPontoIntegrator {
	return &FacilitaPontoService{
		cfg:    cfg,
		Client: client,
	}
}

// CountBillableEmployees consulta a listagem de funcionários da empresa no
// Facilita Ponto e conta quantos não estão demitidos.
func (s *FacilitaPontoService) CountBillableEmployees(company *domain.Company) (int, error) {
	if !company.HasIntegrationCredentials() {
		return 0, ErrMissingCredentials
	}

	params := fpclient.ListEmployeesParams{
		CompanyKey:          *company.CompanyKey,
		IntegrationPassword: *company.IntegrationPassword,
	}

	employees, err := s.Client.ListEmployees(params)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, employee := range employees {
		if employee.IsBillable() {
			count++
		}
	}

	return count, nil
}

func (s *FacilitaPontoService) CheckConnection(companyKey, integrationPassword string) (bool, error) {
	params := fpclient.ListEmployeesParams{
		CompanyKey:          companyKey,
		IntegrationPassword: integrationPassword,
	}

	if _, err := s.Client.ListEmployees(params); err != nil {
		return false, err
	}

	return true, nil
}
