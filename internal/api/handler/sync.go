package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pontogestor/admin-api/internal/domain"
	"github.com/pontogestor/admin-api/internal/usecases/syncing"
	"github.com/pontogestor/admin-api/pkg/apiErrors"
	"github.com/pontogestor/admin-api/pkg/middleware"
	"github.com/sirupsen/logrus"
)

// SyncHeadcounts sincroniza o quadro de funcionários da carteira do usuário com
// o Facilita Ponto e retorna o resultado detalhado
func SyncHeadcounts(service syncing.SyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - SyncHeadcounts")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		result, err := service.SyncHeadcounts(userClaims)
		if err != nil {
			logrus.Error("Error syncing headcounts:", err)

			var syncErr *syncing.SyncError
			if errors.As(err, &syncErr) {
				apiErrors.WriteError(w, syncErr.Code, syncErr.Error(), nil)
				return
			}

			switch {
			case errors.Is(err, syncing.ErrFetchCompanies) || errors.Is(err, syncing.ErrDatabaseOperation):
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar empresas no banco de dados", nil)

			default:
				apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao sincronizar com o Facilita Ponto", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(result); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

type TestConnectionResponse struct {
	Connected bool `json:"connected"`
}

// TestConnection valida as credenciais de integração de uma empresa contra o
// Facilita Ponto sem alterar nenhum dado
func TestConnection(service syncing.SyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - TestConnection")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da empresa é obrigatório", nil)
			return
		}

		connected, err := service.TestConnection(userClaims, id)
		if err != nil {
			logrus.Error("Error testing partner connection:", err)

			var syncErr *syncing.SyncError
			if errors.As(err, &syncErr) {
				apiErrors.WriteError(w, syncErr.Code, syncErr.Error(), nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao testar conexão com o Facilita Ponto", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(TestConnectionResponse{Connected: connected}); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
