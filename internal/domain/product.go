package domain

import "time"

// Product é o catálogo global de módulos vendidos. Produtos não têm dono,
// qualquer ator autenticado enxerga a lista completa.
type Product struct {
	ID           string    `json:"id"`
	Name         string    `json:"nome"`
	MonthlyPrice float64   `json:"preco_mensal"`
	Variants     []string  `json:"variantes"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
