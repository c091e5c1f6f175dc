package dashboarding

import (
	"testing"
	"time"

	"github.com/brassertech/vendas-api/infrastructure/repository/mocks"
	"github.com/brassertech/vendas-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestComputeMetrics_EmptySalesYieldsZeros(t *testing.T) {
	metrics := ComputeMetrics([]*domain.Sale{}, time.Now())

	assert.Equal(t, 0.0, metrics.TotalValue)
	assert.Equal(t, 0.0, metrics.MonthValue)
	assert.Equal(t, 0.0, metrics.Commission)
	assert.Empty(t, metrics.RecentFive)
}

func TestComputeMetrics_MonthBoundaryAndCommission(t *testing.T) {
	// Data de referência: 16 de janeiro de 2024
	now := time.Date(2024, 1, 16, 10, 0, 0, 0, time.UTC)

	sales := []*domain.Sale{
		{ID: "v1", NegotiatedValue: 1000, SaleDate: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)},
		{ID: "v2", NegotiatedValue: 500, SaleDate: time.Date(2023, 12, 20, 0, 0, 0, 0, time.UTC)},
	}

	metrics := ComputeMetrics(sales, now)

	assert.Equal(t, 1500.0, metrics.TotalValue)
	assert.Equal(t, 1000.0, metrics.MonthValue)
	assert.Equal(t, 150.0, metrics.Commission)
}

func TestComputeMetrics_FirstDayOfMonthIsInclusive(t *testing.T) {
	now := time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)

	sales := []*domain.Sale{
		{ID: "v1", NegotiatedValue: 200, SaleDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "v2", NegotiatedValue: 300, SaleDate: time.Date(2024, 2, 29, 23, 59, 0, 0, time.UTC)},
	}

	metrics := ComputeMetrics(sales, now)

	assert.Equal(t, 200.0, metrics.MonthValue)
}

func TestComputeMetrics_RecentFive(t *testing.T) {
	now := time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)

	sales := make([]*domain.Sale, 0, 7)
	for day := 1; day <= 7; day++ {
		sales = append(sales, &domain.Sale{
			ID:              string(rune('a' + day - 1)),
			NegotiatedValue: 100,
			SaleDate:        time.Date(2024, 5, day, 0, 0, 0, 0, time.UTC),
		})
	}

	metrics := ComputeMetrics(sales, now)

	assert.Len(t, metrics.RecentFive, 5)
	// Mais recente primeiro (dia 7), corta no quinto (dia 3)
	assert.Equal(t, time.Date(2024, 5, 7, 0, 0, 0, 0, time.UTC), metrics.RecentFive[0].SaleDate)
	assert.Equal(t, time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC), metrics.RecentFive[4].SaleDate)
}

func TestGetMetrics_AppliesVisibilityFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	mockSaleRepo.EXPECT().
		ListSales().
		Return([]*domain.Sale{
			{ID: "v1", OwnerUserID: 10, NegotiatedValue: 700, SaleDate: time.Now()},
			{ID: "v2", OwnerUserID: 20, NegotiatedValue: 900, SaleDate: time.Now()},
		}, nil)

	service := NewService(mockSaleRepo)

	seller := domain.Actor{UserID: 10, RoleID: domain.RoleSeller}
	metrics, err := service.GetMetrics(seller)

	assert.NoError(t, err)
	// Vendas de outros vendedores não entram nos números do vendedor
	assert.Equal(t, 700.0, metrics.TotalValue)
	assert.Len(t, metrics.RecentFive, 1)
}
