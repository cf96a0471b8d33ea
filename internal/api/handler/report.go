package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pontogestor/admin-api/infrastructure/integrator/advisor"
	"github.com/pontogestor/admin-api/internal/domain"
	"github.com/pontogestor/admin-api/internal/usecases/reporting"
	"github.com/pontogestor/admin-api/pkg/apiErrors"
	"github.com/pontogestor/admin-api/pkg/log"
	"github.com/pontogestor/admin-api/pkg/middleware"
	"github.com/sirupsen/logrus"
)

type ExecutiveReportResponse struct {
	Report string `json:"report"`
}

// GenerateExecutiveReport pede ao assistente de análise um relatório executivo
// da carteira em markdown
func GenerateExecutiveReport(service reporting.ReportingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GenerateExecutiveReport")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		report, err := service.GenerateExecutiveReport(r.Context(), userClaims.UserID)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Error generating executive report")

			if errors.Is(err, advisor.ErrNotConfigured) {
				apiErrors.WriteError(w, apiErrors.ErrExternalService, "Assistente de análise não configurado", nil)
				return
			}

			writeReportError(w, err, "Erro ao gerar relatório executivo")
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(ExecutiveReportResponse{Report: report}); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
