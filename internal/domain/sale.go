package domain

import "time"

type Sale struct {
	ID              string       `json:"id"`
	OwnerUserID     int          `json:"usuario_id"`
	ClientID        string       `json:"cliente_id"`
	ProductID       string       `json:"produto_id"`
	ContractNumber  string       `json:"numero_contrato"`
	NegotiatedValue float64      `json:"valor_negociado"`
	PaymentMethod   string       `json:"forma_pagamento"`
	SaleDate        time.Time    `json:"data_venda"`
	Status          RecordStatus `json:"status"`
	StatusReason    *string      `json:"motivo_status,omitempty"`
	ClientName      string       `json:"cliente_nome,omitempty"`
	ProductName     string       `json:"produto_nome,omitempty"`
	SellerName      string       `json:"vendedor_nome,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

type UpdateSaleRequest struct {
	ID              string     `json:"id"`
	ClientID        *string    `json:"cliente_id"`
	ProductID       *string    `json:"produto_id"`
	NegotiatedValue *float64   `json:"valor_negociado"`
	PaymentMethod   *string    `json:"forma_pagamento"`
	SaleDate        *time.Time `json:"data_venda"`
}

// DashboardMetrics são os números derivados das vendas visíveis ao ator.
// Recalculados a cada chamada, nada fica em cache entre requisições.
type DashboardMetrics struct {
	TotalValue float64 `json:"saldo_total"`
	MonthValue float64 `json:"vendas_mes"`
	Commission float64 `json:"comissao"`
	RecentFive []*Sale `json:"recentes"`
}
