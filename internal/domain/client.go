package domain

import "time"

// Status possíveis de um cliente
const (
	ClientActive   = "Ativo"
	ClientInactive = "Inativo"
)

type Client struct {
	ID                 string     `json:"id"`
	OwnerUserID        int        `json:"usuario_id"`
	CompanyName        string     `json:"nome_empresa"`
	Document           string     `json:"documento"`
	Status             string     `json:"status"`
	InactivationReason *string    `json:"motivo_inativacao,omitempty"`
	OwnerName          string     `json:"vendedor_nome,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
	DeletedAt          *time.Time `json:"deleted_at,omitempty"`
}

type UpdateClientRequest struct {
	ID          string  `json:"id"`
	CompanyName *string `json:"nome_empresa"`
	Document    *string `json:"documento"`
}
