package apiErrors

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteError_MapsCodesToHTTPStatus(t *testing.T) {
	tests := []struct {
		name           string
		code           string
		expectedStatus int
	}{
		{"credenciais inválidas", ErrInvalidCredentials, http.StatusUnauthorized},
		{"usuário desativado", ErrUserDisabled, http.StatusForbidden},
		{"usuário não encontrado", ErrUserNotFound, http.StatusNotFound},
		{"privilégios insuficientes", ErrInsufficientPrivilege, http.StatusForbidden},
		{"dados obrigatórios ausentes", ErrMissingRequiredData, http.StatusBadRequest},
		{"erro de banco de dados", ErrDatabaseOperation, http.StatusInternalServerError},
		{"código desconhecido vira erro interno", "XYZ_999", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()

			WriteError(recorder, tt.code, "mensagem", nil)

			assert.Equal(t, tt.expectedStatus, recorder.Code)
			assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

			var apiErr APIError
			assert.NoError(t, json.NewDecoder(recorder.Body).Decode(&apiErr))
			assert.Equal(t, tt.code, apiErr.Code)
			assert.Equal(t, "mensagem", apiErr.Message)
		})
	}
}

func TestFromError(t *testing.T) {
	apiErr := FromError(nil, ErrInvalidRequest)
	assert.Equal(t, ErrInternalServer, apiErr.Code)

	apiErr = FromError(assert.AnError, ErrInvalidRequest)
	assert.Equal(t, ErrInvalidRequest, apiErr.Code)
	assert.Equal(t, assert.AnError.Error(), apiErr.Message)
}
