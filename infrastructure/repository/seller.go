package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/brassertech/vendas-api/infrastructure/database/postgres"
	"github.com/brassertech/vendas-api/internal/domain"
)

const sellersTable = "vendedores"

// SellerTotal é o total denormalizado gravado pelo job de sincronização
type SellerTotal struct {
	UserID int
	Total  float64
}

type SellerRepository interface {
	CreateSeller(seller *domain.Seller) (*domain.Seller, error)
	GetSellerByUserID(userID int) (*domain.Seller, error)
	ListSellers(authStatus int) ([]*domain.Seller, error)
	UpdateAuthStatus(sellerID int, authStatus int) error
	UpdateTotals(totals []SellerTotal) error
}

type sellerRepository struct {
	conn *postgres.Connection
}

func NewSellerRepository(conn *postgres.Connection) SellerRepository {
	return &sellerRepository{
		conn: conn,
	}
}

func (r *sellerRepository) CreateSeller(seller *domain.Seller) (*domain.Seller, error) {
	queryBuilder := squirrel.
		Insert(sellersTable).
		Columns("nome", "email", "usuario_id", "status_autorizacao", "total_vendas").
		Values(seller.Name, seller.Email, seller.UserID, seller.AuthStatus, seller.TotalSales).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	sellerSQL, sellerArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(sellerSQL, sellerArgs...).Scan(&seller.ID)
	if err != nil {
		return nil, err
	}

	return seller, nil
}

func (r *sellerRepository) GetSellerByUserID(userID int) (*domain.Seller, error) {
	var seller domain.Seller
	err := r.conn.QueryRow(
		"SELECT id, nome, email, usuario_id, status_autorizacao, total_vendas, created_at, updated_at FROM vendedores WHERE usuario_id = $1",
		userID,
	).Scan(
		&seller.ID,
		&seller.Name,
		&seller.Email,
		&seller.UserID,
		&seller.AuthStatus,
		&seller.TotalSales,
		&seller.CreatedAt,
		&seller.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &seller, nil
}

// ListSellers retorna os vendedores com o status de autorização informado.
// Passar zero retorna todos, independentemente do status.
func (r *sellerRepository) ListSellers(authStatus int) ([]*domain.Seller, error) {
	queryBuilder := squirrel.
		Select("id", "nome", "email", "usuario_id", "status_autorizacao", "total_vendas", "created_at", "updated_at").
		From(sellersTable).
		OrderBy("nome ASC").
		PlaceholderFormat(squirrel.Dollar)

	if authStatus != 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"status_autorizacao": authStatus})
	}

	sellersSQL, sellersArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(sellersSQL, sellersArgs...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	sellers := make([]*domain.Seller, 0)
	for rows.Next() {
		var seller domain.Seller
		err := rows.Scan(
			&seller.ID,
			&seller.Name,
			&seller.Email,
			&seller.UserID,
			&seller.AuthStatus,
			&seller.TotalSales,
			&seller.CreatedAt,
			&seller.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		sellers = append(sellers, &seller)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sellers, nil
}

func (r *sellerRepository) UpdateAuthStatus(sellerID int, authStatus int) error {
	queryBuilder := squirrel.
		Update(sellersTable).
		Set("status_autorizacao", authStatus).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": sellerID}).
		PlaceholderFormat(squirrel.Dollar)

	sellerSQL, sellerArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	result, err := r.conn.Exec(sellerSQL, sellerArgs...)
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

// UpdateTotals grava os totais denormalizados calculados pelo scheduler
func (r *sellerRepository) UpdateTotals(totals []SellerTotal) error {
	for _, total := range totals {
		queryBuilder := squirrel.
			Update(sellersTable).
			Set("total_vendas", total.Total).
			Set("updated_at", squirrel.Expr("NOW()")).
			Where(squirrel.Eq{"usuario_id": total.UserID}).
			PlaceholderFormat(squirrel.Dollar)

		sellerSQL, sellerArgs, err := queryBuilder.ToSql()
		if err != nil {
			return err
		}

		if _, err := r.conn.Exec(sellerSQL, sellerArgs...); err != nil {
			return fmt.Errorf("erro ao atualizar total do vendedor %d: %w", total.UserID, err)
		}
	}

	return nil
}
