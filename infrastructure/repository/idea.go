package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/brassertech/vendas-api/infrastructure/database/postgres"
	"github.com/brassertech/vendas-api/internal/domain"
)

const ideasTable = "ideias i"

type IdeaRepository interface {
	CreateIdea(idea *domain.Idea) (*domain.Idea, error)
	UpdateIdea(idea *domain.Idea) error
	GetIdeaByID(ideaID string) (*domain.Idea, error)
	ListIdeas() ([]*domain.Idea, error)
}

type ideaRepository struct {
	conn *postgres.Connection
}

func NewIdeaRepository(conn *postgres.Connection) IdeaRepository {
	return &ideaRepository{
		conn: conn,
	}
}

func (r *ideaRepository) CreateIdea(idea *domain.Idea) (*domain.Idea, error) {
	queryBuilder := squirrel.
		Insert("ideias").
		Columns("id", "usuario_id", "tipo", "privado", "descricao", "status", "prioridade").
		Values(idea.ID, idea.OwnerUserID, idea.Kind, idea.Private, idea.Description, idea.Status, idea.Priority).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	ideaSQL, ideaArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(ideaSQL, ideaArgs...).Scan(&idea.CreatedAt, &idea.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return idea, nil
}

// UpdateIdea grava status e prioridade ajustados na triagem do administrador
func (r *ideaRepository) UpdateIdea(idea *domain.Idea) error {
	queryBuilder := squirrel.
		Update("ideias").
		Set("status", idea.Status).
		Set("prioridade", idea.Priority).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": idea.ID}).
		PlaceholderFormat(squirrel.Dollar)

	ideaSQL, ideaArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	result, err := r.conn.Exec(ideaSQL, ideaArgs...)
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

func (r *ideaRepository) GetIdeaByID(ideaID string) (*domain.Idea, error) {
	var idea domain.Idea
	err := r.conn.QueryRow(
		"SELECT id, usuario_id, tipo, privado, descricao, status, prioridade, created_at, updated_at FROM ideias WHERE id = $1",
		ideaID,
	).Scan(
		&idea.ID,
		&idea.OwnerUserID,
		&idea.Kind,
		&idea.Private,
		&idea.Description,
		&idea.Status,
		&idea.Priority,
		&idea.CreatedAt,
		&idea.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &idea, nil
}

// ListIdeas retorna todas as ideias com o nome do autor. O recorte de
// sigilo (privadas e vendas de projeto) fica com o filtro de visibilidade.
func (r *ideaRepository) ListIdeas() ([]*domain.Idea, error) {
	queryBuilder := squirrel.
		Select(
			"i.id",
			"i.usuario_id",
			"i.tipo",
			"i.privado",
			"i.descricao",
			"i.status",
			"i.prioridade",
			"COALESCE(v.nome, '')",
			"i.created_at",
			"i.updated_at",
		).
		From(ideasTable).
		LeftJoin("vendedores v ON v.usuario_id = i.usuario_id").
		OrderBy("i.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	ideasSQL, ideasArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ideasSQL, ideasArgs...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	ideas := make([]*domain.Idea, 0)
	for rows.Next() {
		var idea domain.Idea
		err := rows.Scan(
			&idea.ID,
			&idea.OwnerUserID,
			&idea.Kind,
			&idea.Private,
			&idea.Description,
			&idea.Status,
			&idea.Priority,
			&idea.OwnerName,
			&idea.CreatedAt,
			&idea.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear ideia: %w", err)
		}

		ideas = append(ideas, &idea)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return ideas, nil
}
