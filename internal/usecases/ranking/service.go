// Package ranking calcula o leaderboard de vendedores aprovados.
package ranking

import (
	"sort"
	"time"

	"github.com/brassertech/vendas-api/infrastructure/repository"
	"github.com/brassertech/vendas-api/internal/domain"
)

type RankingService interface {
	GetSellerRanking() (*domain.RankingResponse, error)
}

type Service struct {
	saleRepo repository.SaleRepository
}

func NewService(saleRepo repository.SaleRepository) RankingService {
	return &Service{
		saleRepo: saleRepo,
	}
}

// GetSellerRanking monta o ranking a partir de uma única passada agrupada
// sobre a tabela de vendas. Nada é persistido nem cacheado: o resultado é
// derivado integralmente dos dados correntes a cada requisição.
func (s *Service) GetSellerRanking() (*domain.RankingResponse, error) {
	aggregates, err := s.saleRepo.AggregateByApprovedSeller()
	if err != nil {
		return nil, err
	}

	return &domain.RankingResponse{
		Ranking:    ComputeRanking(aggregates),
		LastUpdate: time.Now(),
	}, nil
}

// ComputeRanking ordena os agregados por valor total decrescente, com
// desempate pelo nome do vendedor em ordem crescente. O desempate garante
// saída determinística para entradas idênticas. A query que alimenta os
// agregados já restringe a vendedores aprovados; vendedores sem venda
// entram com total e contagem zero e ficam por último entre os empatados.
func ComputeRanking(aggregates []*repository.SellerSalesAggregate) []*domain.RankingEntry {
	entries := make([]*domain.RankingEntry, 0, len(aggregates))
	for _, agg := range aggregates {
		entries = append(entries, &domain.RankingEntry{
			SellerID:      agg.SellerID,
			SellerName:    agg.SellerName,
			TotalSales:    agg.TotalValue,
			ContractCount: agg.ContractCount,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].TotalSales != entries[j].TotalSales {
			return entries[i].TotalSales > entries[j].TotalSales
		}
		return entries[i].SellerName < entries[j].SellerName
	})

	for position, entry := range entries {
		entry.Position = position + 1
	}

	return entries
}
