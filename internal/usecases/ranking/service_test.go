package ranking

import (
	"testing"

	"github.com/brassertech/vendas-api/infrastructure/repository"
	"github.com/brassertech/vendas-api/infrastructure/repository/mocks"
	"github.com/brassertech/vendas-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestComputeRanking_OrdersByTotalThenName(t *testing.T) {
	aggregates := []*repository.SellerSalesAggregate{
		{SellerID: 1, SellerName: "Paulo", TotalValue: 5000, ContractCount: 1},
		{SellerID: 2, SellerName: "Eduardo", TotalValue: 5000, ContractCount: 3},
		{SellerID: 3, SellerName: "Fernanda", TotalValue: 9400, ContractCount: 2},
	}

	entries := ComputeRanking(aggregates)

	assert.Len(t, entries, 3)

	// Maior total primeiro
	assert.Equal(t, "Fernanda", entries[0].SellerName)
	assert.Equal(t, 1, entries[0].Position)

	// Empate em 5000: desempata pelo nome em ordem crescente
	assert.Equal(t, "Eduardo", entries[1].SellerName)
	assert.Equal(t, 2, entries[1].Position)
	assert.Equal(t, "Paulo", entries[2].SellerName)
	assert.Equal(t, 3, entries[2].Position)
}

func TestComputeRanking_ZeroSalesSellerRanksLast(t *testing.T) {
	aggregates := []*repository.SellerSalesAggregate{
		{SellerID: 1, SellerName: "Ana", TotalValue: 0, ContractCount: 0},
		{SellerID: 2, SellerName: "Bruno", TotalValue: 1200, ContractCount: 1},
	}

	entries := ComputeRanking(aggregates)

	assert.Equal(t, "Bruno", entries[0].SellerName)
	assert.Equal(t, "Ana", entries[1].SellerName)
	assert.Equal(t, 0.0, entries[1].TotalSales)
	assert.Equal(t, 0, entries[1].ContractCount)
}

func TestComputeRanking_IsDeterministic(t *testing.T) {
	aggregates := []*repository.SellerSalesAggregate{
		{SellerID: 1, SellerName: "Carla", TotalValue: 300, ContractCount: 2},
		{SellerID: 2, SellerName: "Bia", TotalValue: 300, ContractCount: 1},
		{SellerID: 3, SellerName: "Davi", TotalValue: 800, ContractCount: 4},
	}

	first := ComputeRanking(aggregates)
	second := ComputeRanking(aggregates)

	assert.Equal(t, first, second)
}

func TestGetSellerRanking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)

	// A query agrupada já exclui vendedores não aprovados; o serviço só
	// ordena e numera as posições
	mockSaleRepo.EXPECT().
		AggregateByApprovedSeller().
		Return([]*repository.SellerSalesAggregate{
			{SellerID: 7, SellerName: "Eduardo", TotalValue: 15200, ContractCount: 6},
			{SellerID: 8, SellerName: "Paulo", TotalValue: 12800, ContractCount: 4},
		}, nil)

	service := NewService(mockSaleRepo)

	response, err := service.GetSellerRanking()
	assert.NoError(t, err)
	assert.Len(t, response.Ranking, 2)
	assert.Equal(t, &domain.RankingEntry{
		SellerID:      7,
		SellerName:    "Eduardo",
		TotalSales:    15200,
		ContractCount: 6,
		Position:      1,
	}, response.Ranking[0])
	assert.False(t, response.LastUpdate.IsZero())
}
