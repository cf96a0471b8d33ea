package domain

import "encoding/json"

// Situações retornadas pela API do Facilita Ponto
const (
	SituationPending    = 0
	SituationActive     = 1
	SituationAway       = 2
	SituationVacation   = 3
	SituationTerminated = 4
)

// Employee é um funcionário como retornado pela listagem do parceiro.
// A API envia "situacao" ora como número, ora como string numérica,
// por isso o json.Number.
type Employee struct {
	ID       json.Number `json:"id"`
	Name     string      `json:"nome"`
	Situacao json.Number `json:"situacao"`
}

// IsBillable indica se o funcionário conta para o faturamento.
// Apenas demitidos ficam de fora.
func (e Employee) IsBillable() bool {
	situacao, err := e.Situacao.Int64()
	if err != nil {
		return true
	}

	return situacao != SituationTerminated
}

type ListEmployeesResponse struct {
	Employees []Employee `json:"funcionarios"`
}
