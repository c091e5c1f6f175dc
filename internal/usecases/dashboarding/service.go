// Package dashboarding deriva os números do painel a partir das vendas
// visíveis ao ator da requisição.
package dashboarding

import (
	"sort"
	"time"

	"github.com/brassertech/vendas-api/infrastructure/repository"
	"github.com/brassertech/vendas-api/internal/domain"
	"github.com/brassertech/vendas-api/internal/usecases/authorizing"
	"github.com/brassertech/vendas-api/pkg/utils"
)

// Taxa fixa de comissão sobre o total vendido
const commissionRate = 0.10

// Quantidade de vendas recentes exibidas no painel
const recentSalesLimit = 5

type Dashboarder interface {
	GetMetrics(actor domain.Actor) (*domain.DashboardMetrics, error)
}

type Service struct {
	saleRepo repository.SaleRepository
}

func NewService(saleRepo repository.SaleRepository) Dashboarder {
	return &Service{
		saleRepo: saleRepo,
	}
}

// GetMetrics busca as vendas, aplica o filtro de visibilidade do ator e
// calcula os números do painel com a data corrente.
func (s *Service) GetMetrics(actor domain.Actor) (*domain.DashboardMetrics, error) {
	sales, err := s.saleRepo.ListSales()
	if err != nil {
		return nil, err
	}

	visible := authorizing.FilterSales(actor, sales)

	return ComputeMetrics(visible, time.Now()), nil
}

// ComputeMetrics calcula os números do painel sobre um conjunto de vendas
// já filtrado:
//   - total de todas as vendas visíveis
//   - total do mês corrente (data da venda >= primeiro dia do mês de now)
//   - comissão de 10% sobre o total
//   - as cinco vendas mais recentes por data de venda
//
// Conjunto vazio produz zeros e lista vazia, nunca erro.
func ComputeMetrics(sales []*domain.Sale, now time.Time) *domain.DashboardMetrics {
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var totalValue, monthValue float64
	for _, sale := range sales {
		totalValue += sale.NegotiatedValue

		if !sale.SaleDate.Before(firstOfMonth) {
			monthValue += sale.NegotiatedValue
		}
	}

	recent := make([]*domain.Sale, len(sales))
	copy(recent, sales)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].SaleDate.After(recent[j].SaleDate)
	})

	if len(recent) > recentSalesLimit {
		recent = recent[:recentSalesLimit]
	}

	return &domain.DashboardMetrics{
		TotalValue: totalValue,
		MonthValue: monthValue,
		Commission: utils.RoundWithTwoDecimalPlace(totalValue * commissionRate),
		RecentFive: recent,
	}
}
