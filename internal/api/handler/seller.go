package handler

import (
	"net/http"
	"strconv"

	"github.com/brassertech/vendas-api/internal/usecases/authenticating"
	"github.com/brassertech/vendas-api/pkg/apiErrors"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
)

// ListSellers lista os vendedores cadastrados. O parâmetro de query
// status_autorizacao filtra por status (1 aprovado, 2 pendente).
func ListSellers(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authStatus := 0
		if raw := r.URL.Query().Get("status_autorizacao"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Status de autorização inválido", nil)
				return
			}
			authStatus = parsed
		}

		sellers, err := service.ListSellers(authStatus)
		if err != nil {
			logrus.Error("Erro ao listar vendedores:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar vendedores", nil)
			return
		}

		writeJSON(w, http.StatusOK, sellers)
	}
}

// ApproveSeller aprova um cadastro de vendedor pendente
func ApproveSeller(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := actorFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		sellerIDStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
		sellerID, err := strconv.Atoi(sellerIDStr)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do vendedor inválido", nil)
			return
		}

		if err := service.ApproveSeller(actor, sellerID); err != nil {
			handleLoginError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
