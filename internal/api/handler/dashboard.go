package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pontogestor/admin-api/internal/domain"
	"github.com/pontogestor/admin-api/internal/usecases/reporting"
	"github.com/pontogestor/admin-api/pkg/apiErrors"
	"github.com/pontogestor/admin-api/pkg/middleware"
	"github.com/sirupsen/logrus"
)

// GetDashboardStats retorna os indicadores do painel de controle
func GetDashboardStats(service reporting.ReportingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		stats, err := service.DashboardStats(userClaims.UserID)
		if err != nil {
			logrus.Error("Error building dashboard stats:", err)
			writeReportError(w, err, "Erro ao montar indicadores do painel")
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(stats); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// GetDelinquencyReport retorna o resumo de inadimplência da carteira
func GetDelinquencyReport(service reporting.ReportingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		report, err := service.DelinquencyReport(userClaims.UserID)
		if err != nil {
			logrus.Error("Error building delinquency report:", err)
			writeReportError(w, err, "Erro ao montar relatório de inadimplência")
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(report); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// ListSystemLogs retorna as entradas de auditoria mais recentes do usuário
func ListSystemLogs(service reporting.ReportingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		logs, err := service.ListSystemLogs(userClaims.UserID)
		if err != nil {
			logrus.Error("Error listing system logs:", err)
			writeReportError(w, err, "Erro ao listar logs do sistema")
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(logs); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// writeReportError traduz erros do contexto de relatórios em respostas HTTP
func writeReportError(w http.ResponseWriter, err error, fallback string) {
	var reportErr *reporting.ReportError
	if errors.As(err, &reportErr) {
		apiErrors.WriteError(w, reportErr.Code, reportErr.Error(), nil)
		return
	}

	switch {
	case errors.Is(err, reporting.ErrDatabaseOperation):
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar dados no banco de dados", nil)

	case errors.Is(err, reporting.ErrAdvisorUnavailable):
		apiErrors.WriteError(w, apiErrors.ErrExternalService, "Assistente de análise indisponível", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
	}
}
