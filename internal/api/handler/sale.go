package handler

import (
	"net/http"
	"time"

	"github.com/brassertech/vendas-api/internal/domain"
	"github.com/brassertech/vendas-api/internal/usecases/selling"
	"github.com/brassertech/vendas-api/pkg/apiErrors"
	"github.com/brassertech/vendas-api/pkg/utils"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type ChangeSaleStatusRequest struct {
	Status domain.RecordStatus `json:"status"`
	Reason string              `json:"motivo"`
}

// ListSales retorna as vendas visíveis ao usuário logado. Os parâmetros de
// query data_inicio e data_fim (AAAA-MM-DD) recortam pelo período da venda.
func ListSales(service selling.SaleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := actorFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		startDate, err := utils.ParseDate(r.URL.Query().Get("data_inicio"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inicial inválida, use AAAA-MM-DD", nil)
			return
		}

		endDate, err := utils.ParseDate(r.URL.Query().Get("data_fim"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data final inválida, use AAAA-MM-DD", nil)
			return
		}

		sales, err := service.ListSales(actor)
		if err != nil {
			logrus.Error("Erro ao listar vendas:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar vendas", nil)
			return
		}

		writeJSON(w, http.StatusOK, filterSalesByPeriod(sales, startDate, endDate))
	}
}

func filterSalesByPeriod(sales []*domain.Sale, startDate, endDate *time.Time) []*domain.Sale {
	filtered := make([]*domain.Sale, 0, len(sales))
	for _, sale := range sales {
		if startDate != nil && !startDate.IsZero() && sale.SaleDate.Before(*startDate) {
			continue
		}
		// data_fim é inclusiva: corta a partir da meia-noite do dia seguinte
		if endDate != nil && !endDate.IsZero() && !sale.SaleDate.Before(endDate.AddDate(0, 0, 1)) {
			continue
		}
		filtered = append(filtered, sale)
	}

	return filtered
}

func CreateSale(service selling.SaleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := actorFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req selling.CreateSaleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		sale, err := service.CreateSale(actor, &req)
		if err != nil {
			switch {
			case errors.Is(err, selling.ErrInvalidValue):
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

			case errors.Is(err, selling.ErrClientNotFound),
				errors.Is(err, selling.ErrProductNotFound):
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

			default:
				logrus.Error("Erro ao registrar venda:", err)
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao registrar venda", nil)
			}
			return
		}

		writeJSON(w, http.StatusCreated, sale)
	}
}

func UpdateSale(service selling.SaleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := actorFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req domain.UpdateSaleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		req.ID = httprouter.ParamsFromContext(r.Context()).ByName("id")

		sale, err := service.UpdateSale(actor, &req)
		if err != nil {
			if handlePolicyError(w, err) {
				return
			}

			switch {
			case errors.Is(err, selling.ErrSaleNotFound):
				apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Venda não encontrada", nil)

			case errors.Is(err, selling.ErrInvalidValue):
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

			default:
				logrus.Error("Erro ao atualizar venda:", err)
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar venda", nil)
			}
			return
		}

		writeJSON(w, http.StatusOK, sale)
	}
}

// ChangeSaleStatus move a venda no ciclo de vida, com motivo obrigatório
// para os status terminais
func ChangeSaleStatus(service selling.SaleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := actorFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req ChangeSaleStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		saleID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.ChangeSaleStatus(actor, saleID, req.Status, req.Reason); err != nil {
			if handlePolicyError(w, err) {
				return
			}
			if errors.Is(err, selling.ErrSaleNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Venda não encontrada", nil)
				return
			}

			logrus.Error("Erro ao alterar status da venda:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao alterar status da venda", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
