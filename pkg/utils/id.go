package utils

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	contractAlphabet = "0123456789ABCDEFGHJKLMNPQRSTUVWXYZ"
	contractSize     = 10
)

// GenerateContractNumber gera o número de contrato da venda no servidor.
// O alfabeto exclui caracteres ambíguos (I, O) para facilitar a leitura
// em documentos impressos.
func GenerateContractNumber() (string, error) {
	id, err := gonanoid.Generate(contractAlphabet, contractSize)
	if err != nil {
		return "", err
	}

	return "CT-" + id, nil
}
