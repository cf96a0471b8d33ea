package advisor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/param"
	"github.com/openai/openai-go/responses"
	"github.com/openai/openai-go/shared"
	"github.com/pontogestor/admin-api/internal/config"
	"github.com/pontogestor/admin-api/internal/domain"
)

// ErrNotConfigured indica que a chave da API do provedor não foi configurada.
// O restante do sistema funciona normalmente sem o relatório executivo.
var ErrNotConfigured = errors.New("assistente de análise não configurado")

type AdvisorIntegrator interface {
	GenerateExecutiveReport(ctx context.Context, portfolio *domain.PortfolioSummary) (string, error)
}

type AdvisorService struct {
	cfg    *config.Config
	client *openai.Client
}

func New(cfg *config.Config) AdvisorIntegrator {
	service := &AdvisorService{cfg: cfg}

	if cfg.Advisor.APIKey != "" {
		client := openai.NewClient(option.WithAPIKey(cfg.Advisor.APIKey))
		service.client = &client
	}

	return service
}

// GenerateExecutiveReport envia um retrato da carteira para o modelo e
// retorna a análise em markdown, escrita em português.
func (s *AdvisorService) GenerateExecutiveReport(ctx context.Context, portfolio *domain.PortfolioSummary) (string, error) {
	if s.client == nil {
		return "", ErrNotConfigured
	}

	params := responses.ResponseNewParams{
		Model: shared.ResponsesModel(s.cfg.Advisor.Model),
		Input: responses.ResponseNewParamsInputUnion{
			OfString: param.NewOpt(buildPrompt(portfolio)),
		},
	}

	resp, err := s.client.Responses.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("erro ao gerar o relatório: %w", err)
	}

	content := resp.OutputText()
	if content == "" {
		return "", errors.New("resposta vazia do modelo")
	}

	return content, nil
}

func buildPrompt(portfolio *domain.PortfolioSummary) string {
	var sb strings.Builder

	sb.WriteString("Você é o CFO virtual de uma revenda de software de ponto eletrônico.\n")
	sb.WriteString("Analise a carteira de clientes e as faturas abaixo e escreva um relatório executivo em português, em markdown, cobrindo:\n")
	sb.WriteString("1. Saúde do caixa (recebido no mês, pendente e vencido).\n")
	sb.WriteString("2. Risco de churn (clientes bloqueados, cancelados ou com faturas vencidas há muito tempo).\n")
	sb.WriteString("3. Oportunidades de upsell (clientes com quadro de funcionários crescendo).\n")
	sb.WriteString("Seja direto e aponte números concretos.\n\n")

	sb.WriteString("Empresas:\n")
	for _, company := range portfolio.Companies {
		sb.WriteString(fmt.Sprintf("- %s | status: %s | funcionários: %d\n",
			company.Name, company.Status, company.EmployeeCount))
	}

	sb.WriteString("\nFaturas:\n")
	for _, invoice := range portfolio.Invoices {
		sb.WriteString(fmt.Sprintf("- %s | competência: %s | valor: R$ %s | status: %s | funcionários faturados: %d\n",
			invoice.Company, invoice.Month, invoice.Amount.StringFixed(2),
			invoice.Status, invoice.Employees))
	}

	return sb.String()
}
