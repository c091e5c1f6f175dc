package authorizing

import "github.com/brassertech/vendas-api/internal/domain"

// Operation identifica a escrita que está sendo autorizada
type Operation string

const (
	OpCreate     Operation = "create"
	OpUpdate     Operation = "update"
	OpInactivate Operation = "inactivate"
	OpReactivate Operation = "reactivate"
)

// AuthorizeWrite decide se o ator pode executar a operação sobre um registro
// pertencente a ownerUserID. Criação é sempre permitida para qualquer ator
// autenticado (o dono do registro novo é forçado ao próprio ator pelo
// serviço chamador). Atualização e inativação exigem administrador ou dono.
// A decisão não tem efeitos colaterais; a persistência fica a cargo do
// repositório chamador.
func AuthorizeWrite(actor domain.Actor, op Operation, ownerUserID int) error {
	if op == OpCreate {
		return nil
	}

	if actor.IsAdmin() || ownerUserID == actor.UserID {
		return nil
	}

	return &PolicyError{
		Err:         ErrForbidden,
		ActorUserID: actor.UserID,
		OwnerUserID: ownerUserID,
		Operation:   op,
	}
}

// ValidateInactivationReason rejeita inativações sem motivo. A validação
// acontece antes da checagem de autorização: um motivo vazio é erro de
// validação mesmo para administradores.
func ValidateInactivationReason(reason string) error {
	if reason == "" {
		return ErrMissingReason
	}
	return nil
}

// AuthorizeTransition valida a mudança de status de um registro no ciclo
// Pendente -> Aprovado -> Concluído (com terminais Inativo/Rejeitado).
// Transições para estado terminal exigem motivo. Administradores podem
// forçar qualquer status, mas não escapam da exigência de motivo.
func AuthorizeTransition(actor domain.Actor, from, to domain.RecordStatus, reason string) error {
	if to.IsTerminal() {
		if err := ValidateInactivationReason(reason); err != nil {
			return err
		}
	}

	if !domain.CanTransition(actor, from, to) {
		return ErrInvalidTransition
	}

	return nil
}
