package handler

import (
	"net/http"

	"github.com/brassertech/vendas-api/internal/usecases/authorizing"
	"github.com/brassertech/vendas-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// handlePolicyError converte negações da guarda de mutação e erros de
// validação em respostas padronizadas. Retorna false quando o erro não é
// de política e o chamador precisa tratá-lo.
func handlePolicyError(w http.ResponseWriter, err error) bool {
	switch {
	case authorizing.IsValidation(err):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
		return true

	case authorizing.IsForbidden(err):
		logrus.Warn("Operação negada pela política de acesso: ", err)
		apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Operação não permitida para este usuário", nil)
		return true
	}

	return false
}
