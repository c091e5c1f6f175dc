package handler

import (
	"net/http"
	"strconv"

	"github.com/brassertech/vendas-api/internal/domain"
	"github.com/brassertech/vendas-api/internal/usecases/authenticating"
	"github.com/brassertech/vendas-api/pkg/apiErrors"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ListUsers lista as contas de usuário para a administração
func ListUsers(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := actorFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		users, err := service.ListUsers(actor)
		if err != nil {
			logrus.Error("Erro ao listar usuários:", err)
			handleLoginError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, users)
	}
}

// UpdateUser altera uma conta de usuário. Usado pelo administrador para
// desativar contas e ajustar cargos.
func UpdateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := actorFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		userIDStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
		userID, err := strconv.Atoi(userIDStr)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do usuário inválido", nil)
			return
		}

		var req domain.UpdateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		req.ID = userID

		if err := service.UpdateUser(actor, &req); err != nil {
			if errors.Is(err, authenticating.ErrUserNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Usuário não encontrado", nil)
				return
			}

			logrus.Error("Erro ao atualizar usuário:", err)
			handleLoginError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
