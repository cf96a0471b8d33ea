package fpclient

import (
	"net/http"
	"time"

	"github.com/pontogestor/admin-api/internal/config"
)

type Client interface {
	ListEmployees(params ListEmployeesParams) (ListEmployeesResponse, error)
}

type FacilitaPontoClient struct {
	httpClient *http.Client
	config     *config.Config
}

// NewClient cria uma nova instância do cliente da API do Facilita Ponto.
func NewClient(cfg *config.Config) Client {
	return &FacilitaPontoClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}
