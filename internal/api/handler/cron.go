package handler

import (
	"net/http"

	"github.com/brassertech/vendas-api/internal/scheduler"
	"github.com/brassertech/vendas-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// CronJobServices contém os serviços de cron acionáveis manualmente
type CronJobServices struct {
	SellerTotalsSyncService *scheduler.SellerTotalsSyncService
}

// RunSellerTotalsSync dispara manualmente a sincronização de totais por
// vendedor. A restrição a administradores fica na definição da rota.
func RunSellerTotalsSync(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if services.SellerTotalsSyncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização de totais não disponível", nil)
			return
		}

		logrus.Info("Sincronização manual de totais por vendedor solicitada")
		services.SellerTotalsSyncService.TriggerManualSync()

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Sincronização de totais iniciada com sucesso",
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if services.SellerTotalsSyncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização de totais não disponível", nil)
			return
		}

		status := map[string]any{
			"seller-totals": services.SellerTotalsSyncService.GetStatus(),
		}

		writeJSON(w, http.StatusOK, status)
	}
}
