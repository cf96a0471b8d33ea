package domain

import "time"

// CompanyStatus representa a situação comercial de uma empresa cliente
type CompanyStatus string

const (
	CompanyStatusActive    CompanyStatus = "Ativo"
	CompanyStatusInactive  CompanyStatus = "Inativo"
	CompanyStatusBlocked   CompanyStatus = "Bloqueado"
	CompanyStatusCancelled CompanyStatus = "Cancelado"
	CompanyStatusUnused    CompanyStatus = "Não utilizado"
)

// Company é uma empresa cliente do PontoGestor.
// EmployeeCount é um retrato pontual usado como quantidade padrão de cobrança;
// as faturas guardam sua própria cópia e nunca são ressincronizadas.
type Company struct {
	ID                  string        `json:"id"`
	Name                string        `json:"name"`
	CNPJ                string        `json:"cnpj"`
	ContactName         string        `json:"contact_name"`
	Status              CompanyStatus `json:"status"`
	CreatedAt           time.Time     `json:"created_at"`
	EmployeeCount       int           `json:"employee_count"`
	Notes               *string       `json:"notes,omitempty"`
	CompanyKey          *string       `json:"company_key,omitempty"`
	IntegrationPassword *string       `json:"-"`
	UserID              int           `json:"-"`
}

// HasIntegrationCredentials indica se a empresa pode ser sincronizada com o Facilita Ponto
func (c *Company) HasIntegrationCredentials() bool {
	return c.CompanyKey != nil && *c.CompanyKey != "" &&
		c.IntegrationPassword != nil && *c.IntegrationPassword != ""
}

type CreateCompanyRequest struct {
	Name                string        `json:"name"`
	CNPJ                string        `json:"cnpj"`
	ContactName         string        `json:"contact_name"`
	Status              CompanyStatus `json:"status"`
	EmployeeCount       int           `json:"employee_count"`
	Notes               *string       `json:"notes"`
	CompanyKey          *string       `json:"company_key"`
	IntegrationPassword *string       `json:"integration_password"`
}

// UpdateCompanyRequest atualiza campos individuais; ponteiros nulos são ignorados
type UpdateCompanyRequest struct {
	ID                  string         `json:"id"`
	Name                *string        `json:"name"`
	ContactName         *string        `json:"contact_name"`
	Status              *CompanyStatus `json:"status"`
	EmployeeCount       *int           `json:"employee_count"`
	Notes               *string        `json:"notes"`
	CompanyKey          *string        `json:"company_key"`
	IntegrationPassword *string        `json:"integration_password"`
}

type CompanyFilter struct {
	Status []CompanyStatus
	Search string
}
