package authorizing

import (
	"errors"
	"fmt"
)

// Erros de política de acesso e validação de escrita
var (
	ErrForbidden         = errors.New("operação não permitida para este usuário")
	ErrMissingReason     = errors.New("motivo de inativação é obrigatório")
	ErrInvalidTransition = errors.New("transição de status não permitida")
)

// PolicyError carrega o contexto da negação para logs e resposta da API
type PolicyError struct {
	Err         error
	ActorUserID int
	OwnerUserID int
	Operation   Operation
}

// Error implementa a interface error
func (e *PolicyError) Error() string {
	return fmt.Sprintf("%s: operação=%s ator=%d dono=%d",
		e.Err.Error(), e.Operation, e.ActorUserID, e.OwnerUserID)
}

// Unwrap retorna o erro subjacente
func (e *PolicyError) Unwrap() error {
	return e.Err
}

// IsForbidden verifica se o erro é uma negação de autorização
func IsForbidden(err error) bool {
	return errors.Is(err, ErrForbidden) || errors.Is(err, ErrInvalidTransition)
}

// IsValidation verifica se o erro é de validação de dados de entrada
func IsValidation(err error) bool {
	return errors.Is(err, ErrMissingReason)
}
