package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/brassertech/vendas-api/infrastructure/database/postgres"
	"github.com/brassertech/vendas-api/internal/domain"
)

const salesTable = "vendas vd"

// SellerSalesAggregate é o resultado da agregação de vendas por vendedor,
// calculado em uma única passada agrupada sobre a tabela de vendas.
type SellerSalesAggregate struct {
	SellerID      int
	SellerName    string
	UserID        int
	TotalValue    float64
	ContractCount int
}

type SaleRepository interface {
	CreateSale(sale *domain.Sale) (*domain.Sale, error)
	UpdateSale(sale *domain.Sale) error
	GetSaleByID(saleID string) (*domain.Sale, error)
	ListSales() ([]*domain.Sale, error)
	AggregateByApprovedSeller() ([]*SellerSalesAggregate, error)
}

type saleRepository struct {
	conn *postgres.Connection
}

func NewSaleRepository(conn *postgres.Connection) SaleRepository {
	return &saleRepository{
		conn: conn,
	}
}

func (r *saleRepository) CreateSale(sale *domain.Sale) (*domain.Sale, error) {
	queryBuilder := squirrel.
		Insert("vendas").
		Columns(
			"id",
			"usuario_id",
			"cliente_id",
			"produto_id",
			"numero_contrato",
			"valor_negociado",
			"forma_pagamento",
			"data_venda",
			"status",
		).
		Values(
			sale.ID,
			sale.OwnerUserID,
			sale.ClientID,
			sale.ProductID,
			sale.ContractNumber,
			sale.NegotiatedValue,
			sale.PaymentMethod,
			sale.SaleDate,
			sale.Status,
		).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	saleSQL, saleArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(saleSQL, saleArgs...).Scan(&sale.CreatedAt, &sale.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return sale, nil
}

func (r *saleRepository) UpdateSale(sale *domain.Sale) error {
	queryBuilder := squirrel.
		Update("vendas").
		Set("status", sale.Status).
		Set("motivo_status", sale.StatusReason).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": sale.ID})

	if sale.ClientID != "" {
		queryBuilder = queryBuilder.Set("cliente_id", sale.ClientID)
	}

	if sale.ProductID != "" {
		queryBuilder = queryBuilder.Set("produto_id", sale.ProductID)
	}

	if sale.NegotiatedValue != 0 {
		queryBuilder = queryBuilder.Set("valor_negociado", sale.NegotiatedValue)
	}

	if sale.PaymentMethod != "" {
		queryBuilder = queryBuilder.Set("forma_pagamento", sale.PaymentMethod)
	}

	if !sale.SaleDate.IsZero() {
		queryBuilder = queryBuilder.Set("data_venda", sale.SaleDate)
	}

	saleSQL, saleArgs, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return err
	}

	result, err := r.conn.Exec(saleSQL, saleArgs...)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *saleRepository) GetSaleByID(saleID string) (*domain.Sale, error) {
	var sale domain.Sale
	err := r.conn.QueryRow(
		"SELECT id, usuario_id, cliente_id, produto_id, numero_contrato, valor_negociado, forma_pagamento, data_venda, status, motivo_status, created_at, updated_at FROM vendas WHERE id = $1",
		saleID,
	).Scan(
		&sale.ID,
		&sale.OwnerUserID,
		&sale.ClientID,
		&sale.ProductID,
		&sale.ContractNumber,
		&sale.NegotiatedValue,
		&sale.PaymentMethod,
		&sale.SaleDate,
		&sale.Status,
		&sale.StatusReason,
		&sale.CreatedAt,
		&sale.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &sale, nil
}

// ListSales retorna todas as vendas com os nomes de cliente, produto e
// vendedor. O recorte por ator fica com o filtro de visibilidade.
func (r *saleRepository) ListSales() ([]*domain.Sale, error) {
	queryBuilder := squirrel.
		Select(
			"vd.id",
			"vd.usuario_id",
			"vd.cliente_id",
			"vd.produto_id",
			"vd.numero_contrato",
			"vd.valor_negociado",
			"vd.forma_pagamento",
			"vd.data_venda",
			"vd.status",
			"vd.motivo_status",
			"COALESCE(c.nome_empresa, '')",
			"COALESCE(p.nome, '')",
			"COALESCE(v.nome, '')",
			"vd.created_at",
			"vd.updated_at",
		).
		From(salesTable).
		LeftJoin("clientes c ON c.id = vd.cliente_id").
		LeftJoin("produtos p ON p.id = vd.produto_id").
		LeftJoin("vendedores v ON v.usuario_id = vd.usuario_id").
		OrderBy("vd.data_venda DESC").
		PlaceholderFormat(squirrel.Dollar)

	salesSQL, salesArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(salesSQL, salesArgs...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	sales := make([]*domain.Sale, 0)
	for rows.Next() {
		var sale domain.Sale
		err := rows.Scan(
			&sale.ID,
			&sale.OwnerUserID,
			&sale.ClientID,
			&sale.ProductID,
			&sale.ContractNumber,
			&sale.NegotiatedValue,
			&sale.PaymentMethod,
			&sale.SaleDate,
			&sale.Status,
			&sale.StatusReason,
			&sale.ClientName,
			&sale.ProductName,
			&sale.SellerName,
			&sale.CreatedAt,
			&sale.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear venda: %w", err)
		}

		sales = append(sales, &sale)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return sales, nil
}

// AggregateByApprovedSeller soma valor e conta contratos por vendedor
// aprovado em uma única query agrupada. Vendedores aprovados sem nenhuma
// venda aparecem com total zero por conta do LEFT JOIN.
func (r *saleRepository) AggregateByApprovedSeller() ([]*SellerSalesAggregate, error) {
	queryBuilder := squirrel.
		Select(
			"v.id",
			"v.nome",
			"v.usuario_id",
			"COALESCE(SUM(vd.valor_negociado), 0)",
			"COUNT(vd.id)",
		).
		From("vendedores v").
		LeftJoin("vendas vd ON vd.usuario_id = v.usuario_id").
		Where(squirrel.Eq{"v.status_autorizacao": domain.SellerApproved}).
		GroupBy("v.id", "v.nome", "v.usuario_id").
		PlaceholderFormat(squirrel.Dollar)

	aggSQL, aggArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(aggSQL, aggArgs...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	aggregates := make([]*SellerSalesAggregate, 0)
	for rows.Next() {
		var agg SellerSalesAggregate
		err := rows.Scan(
			&agg.SellerID,
			&agg.SellerName,
			&agg.UserID,
			&agg.TotalValue,
			&agg.ContractCount,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear agregado: %w", err)
		}

		aggregates = append(aggregates, &agg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return aggregates, nil
}
