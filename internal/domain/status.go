package domain

// RecordStatus é o ciclo de vida compartilhado por vendas e ideias.
type RecordStatus string

const (
	StatusPending   RecordStatus = "Pendente"
	StatusApproved  RecordStatus = "Aprovado"
	StatusCompleted RecordStatus = "Concluído"
	StatusInactive  RecordStatus = "Inativo"
	StatusRejected  RecordStatus = "Rejeitado"
)

// IsTerminal indica se o status encerra o ciclo de vida do registro
func (s RecordStatus) IsTerminal() bool {
	return s == StatusInactive || s == StatusRejected
}

// transições permitidas para atores sem privilégio de administrador
var allowedTransitions = map[RecordStatus][]RecordStatus{
	StatusPending:  {StatusApproved, StatusInactive, StatusRejected},
	StatusApproved: {StatusCompleted, StatusInactive, StatusRejected},
}

// CanTransition valida a mudança de status de um registro. O ciclo normal é
// Pendente -> Aprovado -> Concluído, sem pular etapas; Inativo e Rejeitado
// são terminais e alcançáveis a partir de Pendente ou Aprovado.
// Administradores podem forçar qualquer status diretamente.
func CanTransition(actor Actor, from, to RecordStatus) bool {
	if actor.IsAdmin() {
		return true
	}

	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}

	return false
}
