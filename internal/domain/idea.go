package domain

import "time"

// Tipos de ideia. "Venda de Projeto" é a notificação interna de venda e é
// sempre sigilosa, independentemente do campo Private gravado no banco.
const (
	IdeaKindProjectSale = "Venda de Projeto"
	IdeaKindSuggestion  = "Sugestão"
)

// Prioridades de triagem atribuídas pelo administrador
const (
	IdeaPriorityLow    = "Baixa"
	IdeaPriorityMedium = "Média"
	IdeaPriorityHigh   = "Alta"
)

type Idea struct {
	ID          string       `json:"id"`
	OwnerUserID int          `json:"usuario_id"`
	Kind        string       `json:"tipo"`
	Private     bool         `json:"privado"`
	Description string       `json:"descricao"`
	Status      RecordStatus `json:"status"`
	Priority    string       `json:"prioridade"`
	OwnerName   string       `json:"vendedor_nome,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// IsConfidential indica se a ideia nunca pode ser exibida a não-donos
func (i *Idea) IsConfidential() bool {
	return i.Private || i.Kind == IdeaKindProjectSale
}

type UpdateIdeaRequest struct {
	ID       string        `json:"id"`
	Status   *RecordStatus `json:"status"`
	Priority *string       `json:"prioridade"`
	Reason   *string       `json:"motivo"`
}
