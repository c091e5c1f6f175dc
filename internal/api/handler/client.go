package handler

import (
	"net/http"

	"github.com/brassertech/vendas-api/internal/domain"
	"github.com/brassertech/vendas-api/internal/usecases/registering"
	"github.com/brassertech/vendas-api/pkg/apiErrors"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type InactivateClientRequest struct {
	Reason string `json:"motivo"`
}

// ListClients retorna os clientes visíveis ao usuário logado
func ListClients(service registering.ClientService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := actorFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		clients, err := service.ListClients(actor)
		if err != nil {
			logrus.Error("Erro ao listar clientes:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar clientes", nil)
			return
		}

		writeJSON(w, http.StatusOK, clients)
	}
}

func CreateClient(service registering.ClientService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := actorFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req registering.CreateClientRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		client, err := service.CreateClient(actor, &req)
		if err != nil {
			if errors.Is(err, registering.ErrMissingCompanyName) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
				return
			}

			logrus.Error("Erro ao criar cliente:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao criar cliente", nil)
			return
		}

		writeJSON(w, http.StatusCreated, client)
	}
}

func UpdateClient(service registering.ClientService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := actorFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req domain.UpdateClientRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		req.ID = httprouter.ParamsFromContext(r.Context()).ByName("id")

		client, err := service.UpdateClient(actor, &req)
		if err != nil {
			if handlePolicyError(w, err) {
				return
			}
			if errors.Is(err, registering.ErrClientNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Cliente não encontrado", nil)
				return
			}

			logrus.Error("Erro ao atualizar cliente:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar cliente", nil)
			return
		}

		writeJSON(w, http.StatusOK, client)
	}
}

// InactivateClient desativa um cliente registrando o motivo informado
func InactivateClient(service registering.ClientService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := actorFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req InactivateClientRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		clientID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.InactivateClient(actor, clientID, req.Reason); err != nil {
			if handlePolicyError(w, err) {
				return
			}
			if errors.Is(err, registering.ErrClientNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Cliente não encontrado", nil)
				return
			}

			logrus.Error("Erro ao inativar cliente:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao inativar cliente", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// ReactivateClient volta um cliente inativo para o status ativo
func ReactivateClient(service registering.ClientService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := actorFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		clientID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.ReactivateClient(actor, clientID); err != nil {
			if handlePolicyError(w, err) {
				return
			}
			if errors.Is(err, registering.ErrClientNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Cliente não encontrado", nil)
				return
			}

			logrus.Error("Erro ao reativar cliente:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao reativar cliente", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
