package fpclient

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"time"

	fpdomain "github.com/pontogestor/admin-api/infrastructure/integrator/facilitaponto/domain"
)

type ListEmployeesParams struct {
	CompanyKey          string
	IntegrationPassword string
}

type ListEmployeesResponse []fpdomain.Employee

func (c *FacilitaPontoClient) ListEmployees(params ListEmployeesParams) (ListEmployeesResponse, error) {
	var response ListEmployeesResponse

	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	// Construir a URL da requisição.
	endpoint, err := url.Parse(c.config.FacilitaPonto.BaseURL)
	if err != nil {
		return response, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "/funcionario/lista_funcionarios")

	// A API do parceiro exige a chave do parceiro e a senha de integração
	// como hash SHA-1 em hexadecimal.
	query := endpoint.Query()
	query.Set("partner_key", sha1Hex(c.config.FacilitaPonto.PartnerKey))
	query.Set("chave_empresa", params.CompanyKey)
	query.Set("senha_integracao", sha1Hex(params.IntegrationPassword))
	endpoint.RawQuery = query.Encode()

	// Criar a requisição HTTP.
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return response, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	// Executar a requisição.
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return response, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	// Verificar o código de status da resposta.
	if resp.StatusCode != http.StatusOK {
		return response, fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	// A listagem pode vir como array puro ou dentro de "funcionarios".
	var payload json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return response, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	if err := json.Unmarshal(payload, &response); err == nil {
		return response, nil
	}

	var wrapped fpdomain.ListEmployeesResponse
	if err := json.Unmarshal(payload, &wrapped); err != nil {
		return response, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return wrapped.Employees, nil
}

func sha1Hex(value string) string {
	sum := sha1.Sum([]byte(value))
	return hex.EncodeToString(sum[:])
}
