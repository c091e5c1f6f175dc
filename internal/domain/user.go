package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Constantes para identificar os cargos (roles) dos usuários
const (
	RoleAdmin  = 1
	RoleSeller = 2
)

type User struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"password,omitempty"`
	Active       bool       `json:"active"`
	RoleID       int        `json:"role_id"`
	Deleted      bool       `json:"deleted"`
	DeletedAt    *time.Time `json:"deleted_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type UpdateUserRequest struct {
	ID     int     `json:"id"`
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	Active *bool   `json:"active"`
	RoleID *int    `json:"role_id"`
}

type Claims struct {
	UserID     int
	UserName   string
	UserEmail  string
	UserActive bool
	UserRoleID int
	jwt.RegisteredClaims
}

// Actor é a identidade explícita de uma requisição. Todas as funções de
// política (filtro de visibilidade, guarda de mutação, métricas) recebem o
// Actor como argumento. Não existe usuário "ambiente" global.
type Actor struct {
	UserID int
	RoleID int
}

// IsAdmin indica se o ator tem o cargo de administrador
func (a Actor) IsAdmin() bool {
	return a.RoleID == RoleAdmin
}

// ActorFromClaims deriva o Actor da requisição a partir das claims do token
func ActorFromClaims(claims *Claims) Actor {
	return Actor{
		UserID: claims.UserID,
		RoleID: claims.UserRoleID,
	}
}
