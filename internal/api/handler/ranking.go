package handler

import (
	"net/http"

	"github.com/brassertech/vendas-api/internal/usecases/ranking"
	"github.com/brassertech/vendas-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// GetSellerRanking retorna o ranking de vendedores aprovados por valor total
// vendido. O ranking é derivado das vendas correntes a cada requisição.
func GetSellerRanking(service ranking.RankingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := service.GetSellerRanking()
		if err != nil {
			logrus.Error("Erro ao buscar ranking de vendedores:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar ranking de vendedores", nil)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}
