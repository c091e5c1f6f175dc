package handler

import (
	"net/http"

	"github.com/brassertech/vendas-api/internal/usecases/dashboarding"
	"github.com/brassertech/vendas-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// GetDashboard retorna os números do painel calculados sobre as vendas
// visíveis ao usuário logado
func GetDashboard(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := actorFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		metrics, err := service.GetMetrics(actor)
		if err != nil {
			logrus.Error("Erro ao calcular métricas do painel:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular métricas do painel", nil)
			return
		}

		writeJSON(w, http.StatusOK, metrics)
	}
}
