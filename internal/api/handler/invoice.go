package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/pontogestor/admin-api/internal/domain"
	"github.com/pontogestor/admin-api/internal/usecases/billing"
	"github.com/pontogestor/admin-api/pkg/apiErrors"
	"github.com/pontogestor/admin-api/pkg/middleware"
	"github.com/sirupsen/logrus"
)

type UpdateInvoiceStatusRequest struct {
	Status domain.InvoiceStatus `json:"status"`
}

func InvoiceList(service billing.BillingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		filter := domain.InvoiceFilter{
			CompanyID:  r.URL.Query().Get("company_id"),
			Competence: r.URL.Query().Get("competence"),
		}

		if filterStatus := r.URL.Query().Get("status"); filterStatus != "" {
			for _, status := range strings.Split(filterStatus, ",") {
				filter.Status = append(filter.Status, domain.InvoiceStatus(status))
			}
		}

		invoices, err := service.ListInvoices(userClaims.UserID, filter)
		if err != nil {
			logrus.Error("Error listing invoices:", err)
			writeBillingError(w, err, "Erro ao listar faturas")
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(invoices); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// CreateInvoice gera uma fatura manual para uma única empresa
func CreateInvoice(service billing.BillingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateInvoice")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var createRequest domain.CreateInvoiceRequest
		if err := json.NewDecoder(r.Body).Decode(&createRequest); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		invoice, err := service.CreateInvoice(userClaims, &createRequest)
		if err != nil {
			logrus.Error("Error creating invoice:", err)
			writeBillingError(w, err, "Erro ao gerar fatura")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)

		if err := json.NewEncoder(w).Encode(invoice); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// GenerateBatch gera uma fatura para cada empresa Ativa na competência da data de referência
func GenerateBatch(service billing.BillingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GenerateBatch")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var batchRequest domain.BatchGenerationRequest
		if err := json.NewDecoder(r.Body).Decode(&batchRequest); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		result, err := service.GenerateBatch(userClaims, &batchRequest)
		if err != nil {
			logrus.Error("Error generating batch:", err)
			writeBillingError(w, err, "Erro ao gerar faturamento em lote")
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(result); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func UpdateInvoiceStatus(service billing.BillingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateInvoiceStatus")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da fatura é obrigatório", nil)
			return
		}

		var updateRequest UpdateInvoiceStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&updateRequest); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		if err := service.UpdateInvoiceStatus(userClaims, id, updateRequest.Status); err != nil {
			logrus.Error("Error updating invoice status:", err)
			writeBillingError(w, err, "Erro ao atualizar status da fatura")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func DeleteInvoice(service billing.BillingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteInvoice")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da fatura é obrigatório", nil)
			return
		}

		if err := service.DeleteInvoice(userClaims, id); err != nil {
			logrus.Error("Error deleting invoice:", err)
			writeBillingError(w, err, "Erro ao remover fatura")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// writeBillingError traduz erros do contexto de faturamento em respostas HTTP
func writeBillingError(w http.ResponseWriter, err error, fallback string) {
	var billingErr *billing.BillingError
	if errors.As(err, &billingErr) {
		apiErrors.WriteError(w, billingErr.Code, billingErr.Error(), nil)
		return
	}

	switch {
	case errors.Is(err, billing.ErrInvalidCompetenceFormat) ||
		errors.Is(err, billing.ErrInvalidCompetenceMonth) ||
		errors.Is(err, billing.ErrInvalidCompetenceYear):
		apiErrors.WriteError(w, apiErrors.ErrInvalidCompetence, "Competência deve estar no formato MM/AAAA", nil)

	case errors.Is(err, billing.ErrCompanyNotFound):
		apiErrors.WriteError(w, apiErrors.ErrCompanyNotFound, "Empresa não encontrada", nil)

	case errors.Is(err, billing.ErrInvoiceNotFound):
		apiErrors.WriteError(w, apiErrors.ErrInvoiceNotFound, "Fatura não encontrada", nil)

	case errors.Is(err, billing.ErrFetchInvoices) || errors.Is(err, billing.ErrDatabaseOperation):
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar faturas no banco de dados", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
	}
}
