package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/brassertech/vendas-api/infrastructure/database/postgres"
	"github.com/brassertech/vendas-api/internal/domain"
)

const clientsTable = "clientes c"

type ClientRepository interface {
	CreateClient(client *domain.Client) (*domain.Client, error)
	UpdateClient(client *domain.Client) error
	GetClientByID(clientID string) (*domain.Client, error)
	ListClients() ([]*domain.Client, error)
}

type clientRepository struct {
	conn *postgres.Connection
}

func NewClientRepository(conn *postgres.Connection) ClientRepository {
	return &clientRepository{
		conn: conn,
	}
}

func (r *clientRepository) CreateClient(client *domain.Client) (*domain.Client, error) {
	queryBuilder := squirrel.
		Insert("clientes").
		Columns("id", "usuario_id", "nome_empresa", "documento", "status").
		Values(client.ID, client.OwnerUserID, client.CompanyName, client.Document, client.Status).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	clientSQL, clientArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(clientSQL, clientArgs...).Scan(&client.CreatedAt, &client.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return client, nil
}

func (r *clientRepository) UpdateClient(client *domain.Client) error {
	queryBuilder := squirrel.
		Update("clientes").
		Set("status", client.Status).
		Set("motivo_inativacao", client.InactivationReason).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": client.ID})

	if client.CompanyName != "" {
		queryBuilder = queryBuilder.Set("nome_empresa", client.CompanyName)
	}

	if client.Document != "" {
		queryBuilder = queryBuilder.Set("documento", client.Document)
	}

	clientSQL, clientArgs, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return err
	}

	result, err := r.conn.Exec(clientSQL, clientArgs...)
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

func (r *clientRepository) GetClientByID(clientID string) (*domain.Client, error) {
	var client domain.Client
	err := r.conn.QueryRow(
		"SELECT id, usuario_id, nome_empresa, documento, status, motivo_inativacao, created_at, updated_at FROM clientes WHERE id = $1",
		clientID,
	).Scan(
		&client.ID,
		&client.OwnerUserID,
		&client.CompanyName,
		&client.Document,
		&client.Status,
		&client.InactivationReason,
		&client.CreatedAt,
		&client.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &client, nil
}

// ListClients retorna todos os clientes com o nome do vendedor dono.
// O recorte por ator é responsabilidade do filtro de visibilidade, não
// do repositório.
func (r *clientRepository) ListClients() ([]*domain.Client, error) {
	queryBuilder := squirrel.
		Select(
			"c.id",
			"c.usuario_id",
			"c.nome_empresa",
			"c.documento",
			"c.status",
			"c.motivo_inativacao",
			"COALESCE(v.nome, '')",
			"c.created_at",
			"c.updated_at",
		).
		From(clientsTable).
		LeftJoin("vendedores v ON v.usuario_id = c.usuario_id").
		OrderBy("c.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	clientsSQL, clientsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(clientsSQL, clientsArgs...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	clients := make([]*domain.Client, 0)
	for rows.Next() {
		var client domain.Client
		err := rows.Scan(
			&client.ID,
			&client.OwnerUserID,
			&client.CompanyName,
			&client.Document,
			&client.Status,
			&client.InactivationReason,
			&client.OwnerName,
			&client.CreatedAt,
			&client.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear cliente: %w", err)
		}

		clients = append(clients, &client)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return clients, nil
}
