package domain

import "time"

// Status de autorização do vendedor. O cadastro nasce pendente e só entra
// no ranking depois de aprovado por um administrador.
const (
	SellerApproved = 1
	SellerPending  = 2
)

type Seller struct {
	ID         int       `json:"id"`
	UserID     int       `json:"user_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	AuthStatus int       `json:"status_autorizacao"`
	TotalSales float64   `json:"total_vendas"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// IsApproved indica se o vendedor já foi aprovado por um administrador
func (s *Seller) IsApproved() bool {
	return s.AuthStatus == SellerApproved
}
