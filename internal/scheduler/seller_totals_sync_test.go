package scheduler

import (
	"testing"

	"github.com/brassertech/vendas-api/infrastructure/repository"
	"github.com/brassertech/vendas-api/infrastructure/repository/mocks"
	"github.com/brassertech/vendas-api/internal/config"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newSyncService(t *testing.T) (*SellerTotalsSyncService, *mocks.MockSaleRepository, *mocks.MockSellerRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	saleRepo := mocks.NewMockSaleRepository(ctrl)
	sellerRepo := mocks.NewMockSellerRepository(ctrl)

	cfg := &config.Config{
		SellerTotalsSync: config.SellerTotalsSync{
			CronSchedule: "0 5 * * *",
			Enabled:      true,
		},
	}

	return NewSellerTotalsSyncService(saleRepo, sellerRepo, cfg), saleRepo, sellerRepo
}

func TestSyncSellerTotals_WritesAggregatedTotals(t *testing.T) {
	service, saleRepo, sellerRepo := newSyncService(t)

	saleRepo.EXPECT().
		AggregateByApprovedSeller().
		Return([]*repository.SellerSalesAggregate{
			{SellerID: 1, SellerName: "Ana", UserID: 10, TotalValue: 3000, ContractCount: 3},
			{SellerID: 2, SellerName: "Bruno", UserID: 20, TotalValue: 0, ContractCount: 0},
		}, nil)

	sellerRepo.EXPECT().
		UpdateTotals([]repository.SellerTotal{
			{UserID: 10, Total: 3000},
			{UserID: 20, Total: 0},
		}).
		Return(nil)

	err := service.SyncSellerTotals()

	assert.NoError(t, err)
}

func TestSyncSellerTotals_NoApprovedSellers(t *testing.T) {
	service, saleRepo, _ := newSyncService(t)

	saleRepo.EXPECT().
		AggregateByApprovedSeller().
		Return([]*repository.SellerSalesAggregate{}, nil)

	// UpdateTotals não deve ser chamado quando não há vendedores
	err := service.SyncSellerTotals()

	assert.NoError(t, err)
}

func TestGetStatus_ReportsConfiguration(t *testing.T) {
	service, _, _ := newSyncService(t)

	status := service.GetStatus()

	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "0 5 * * *", status["sync_cron"])
}
