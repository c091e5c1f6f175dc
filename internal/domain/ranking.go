package domain

import "time"

// RankingEntry é uma posição derivada do leaderboard de vendedores.
// Nunca é persistida: o ranking inteiro é recalculado a cada requisição
// a partir das vendas correntes.
type RankingEntry struct {
	SellerID      int     `json:"id"`
	SellerName    string  `json:"nome"`
	TotalSales    float64 `json:"total_vendas"`
	ContractCount int     `json:"contratos_fechados"`
	Position      int     `json:"posicao"`
}

type RankingResponse struct {
	Ranking    []*RankingEntry `json:"ranking"`
	LastUpdate time.Time       `json:"last_update"`
}
