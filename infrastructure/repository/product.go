package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/brassertech/vendas-api/infrastructure/database/postgres"
	"github.com/brassertech/vendas-api/internal/domain"
	"github.com/lib/pq"
)

const productsTable = "produtos"

type ProductRepository interface {
	CreateProduct(product *domain.Product) (*domain.Product, error)
	UpdateProduct(product *domain.Product) error
	GetProductByID(productID string) (*domain.Product, error)
	ListProducts() ([]*domain.Product, error)
}

type productRepository struct {
	conn *postgres.Connection
}

func NewProductRepository(conn *postgres.Connection) ProductRepository {
	return &productRepository{
		conn: conn,
	}
}

func (r *productRepository) CreateProduct(product *domain.Product) (*domain.Product, error) {
	queryBuilder := squirrel.
		Insert(productsTable).
		Columns("id", "nome", "preco_mensal", "variantes").
		Values(product.ID, product.Name, product.MonthlyPrice, pq.Array(product.Variants)).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	productSQL, productArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(productSQL, productArgs...).Scan(&product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return product, nil
}

func (r *productRepository) UpdateProduct(product *domain.Product) error {
	queryBuilder := squirrel.
		Update(productsTable).
		Set("nome", product.Name).
		Set("preco_mensal", product.MonthlyPrice).
		Set("variantes", pq.Array(product.Variants)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": product.ID}).
		PlaceholderFormat(squirrel.Dollar)

	productSQL, productArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	result, err := r.conn.Exec(productSQL, productArgs...)
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

func (r *productRepository) GetProductByID(productID string) (*domain.Product, error) {
	var product domain.Product
	err := r.conn.QueryRow(
		"SELECT id, nome, preco_mensal, variantes, created_at, updated_at FROM produtos WHERE id = $1",
		productID,
	).Scan(
		&product.ID,
		&product.Name,
		&product.MonthlyPrice,
		pq.Array(&product.Variants),
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &product, nil
}

func (r *productRepository) ListProducts() ([]*domain.Product, error) {
	queryBuilder := squirrel.
		Select("id", "nome", "preco_mensal", "variantes", "created_at", "updated_at").
		From(productsTable).
		OrderBy("nome ASC").
		PlaceholderFormat(squirrel.Dollar)

	productsSQL, productsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(productsSQL, productsArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]*domain.Product, 0)
	for rows.Next() {
		var product domain.Product
		err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.MonthlyPrice,
			pq.Array(&product.Variants),
			&product.CreatedAt,
			&product.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		products = append(products, &product)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
