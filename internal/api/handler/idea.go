package handler

import (
	"net/http"

	"github.com/brassertech/vendas-api/internal/domain"
	"github.com/brassertech/vendas-api/internal/usecases/suggesting"
	"github.com/brassertech/vendas-api/pkg/apiErrors"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ListIdeas retorna as ideias visíveis ao usuário logado. Ideias sigilosas
// só aparecem para o dono e para o administrador.
func ListIdeas(service suggesting.IdeaService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := actorFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		ideas, err := service.ListIdeas(actor)
		if err != nil {
			logrus.Error("Erro ao listar ideias:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar ideias", nil)
			return
		}

		writeJSON(w, http.StatusOK, ideas)
	}
}

func SubmitIdea(service suggesting.IdeaService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := actorFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req suggesting.SubmitIdeaRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		idea, err := service.SubmitIdea(actor, &req)
		if err != nil {
			switch {
			case errors.Is(err, suggesting.ErrMissingDescription),
				errors.Is(err, suggesting.ErrInvalidKind):
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

			default:
				logrus.Error("Erro ao registrar ideia:", err)
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao registrar ideia", nil)
			}
			return
		}

		writeJSON(w, http.StatusCreated, idea)
	}
}

// TriageIdea aplica a triagem sobre uma ideia: status e prioridade
func TriageIdea(service suggesting.IdeaService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := actorFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req domain.UpdateIdeaRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		req.ID = httprouter.ParamsFromContext(r.Context()).ByName("id")

		idea, err := service.TriageIdea(actor, &req)
		if err != nil {
			if handlePolicyError(w, err) {
				return
			}

			switch {
			case errors.Is(err, suggesting.ErrIdeaNotFound):
				apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Ideia não encontrada", nil)

			case errors.Is(err, suggesting.ErrInvalidPriority):
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

			default:
				logrus.Error("Erro ao triar ideia:", err)
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao triar ideia", nil)
			}
			return
		}

		writeJSON(w, http.StatusOK, idea)
	}
}
