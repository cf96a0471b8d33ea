package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/pontogestor/admin-api/internal/domain"
	"github.com/pontogestor/admin-api/internal/usecases/company"
	"github.com/pontogestor/admin-api/pkg/apiErrors"
	"github.com/pontogestor/admin-api/pkg/middleware"
	"github.com/sirupsen/logrus"
)

func CompanyList(service company.CompanyService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		filter := domain.CompanyFilter{
			Search: r.URL.Query().Get("search"),
		}

		if filterStatus := r.URL.Query().Get("status"); filterStatus != "" {
			for _, status := range strings.Split(filterStatus, ",") {
				filter.Status = append(filter.Status, domain.CompanyStatus(status))
			}
		}

		companies, err := service.ListCompanies(userClaims.UserID, filter)
		if err != nil {
			logrus.Error("Error listing companies:", err)
			writeCompanyError(w, err, "Erro ao listar empresas")
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(companies); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func GetCompany(service company.CompanyService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
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

		result, err := service.GetCompany(userClaims.UserID, id)
		if err != nil {
			logrus.Error("Error fetching company:", err)
			writeCompanyError(w, err, "Erro ao buscar empresa")
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(result); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func CreateCompany(service company.CompanyService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateCompany")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var createRequest domain.CreateCompanyRequest
		if err := json.NewDecoder(r.Body).Decode(&createRequest); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		result, err := service.CreateCompany(userClaims, &createRequest)
		if err != nil {
			logrus.Error("Error creating company:", err)
			writeCompanyError(w, err, "Erro ao cadastrar empresa")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)

		if err := json.NewEncoder(w).Encode(result); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func UpdateCompany(service company.CompanyService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateCompany")

		w.Header().Set("Content-Type", "application/json")

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

		var updateRequest domain.UpdateCompanyRequest
		if err := json.NewDecoder(r.Body).Decode(&updateRequest); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		// Garante que o ID da URL seja usado
		updateRequest.ID = id

		result, err := service.UpdateCompany(userClaims, &updateRequest)
		if err != nil {
			logrus.Error("Error updating company:", err)
			writeCompanyError(w, err, "Erro ao atualizar empresa")
			return
		}

		if err := json.NewEncoder(w).Encode(result); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// DeleteCompany remove a empresa e todas as suas faturas
func DeleteCompany(service company.CompanyService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteCompany")

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

		if err := service.DeleteCompany(userClaims, id); err != nil {
			logrus.Error("Error deleting company:", err)
			writeCompanyError(w, err, "Erro ao remover empresa")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// writeCompanyError traduz erros do contexto de empresas em respostas HTTP
func writeCompanyError(w http.ResponseWriter, err error, fallback string) {
	var companyErr *company.CompanyError
	if errors.As(err, &companyErr) {
		apiErrors.WriteError(w, companyErr.Code, companyErr.Error(), nil)
		return
	}

	switch {
	case errors.Is(err, company.ErrCompanyNotFound):
		apiErrors.WriteError(w, apiErrors.ErrCompanyNotFound, "Empresa não encontrada", nil)

	case errors.Is(err, company.ErrFetchCompanies) || errors.Is(err, company.ErrDatabaseOperation):
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar empresas no banco de dados", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
	}
}
