package handler

import (
	"net/http"

	"github.com/brassertech/vendas-api/internal/usecases/cataloging"
	"github.com/brassertech/vendas-api/pkg/apiErrors"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ListProducts retorna o catálogo completo de produtos
func ListProducts(service cataloging.ProductService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products, err := service.ListProducts()
		if err != nil {
			logrus.Error("Erro ao listar produtos:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar produtos", nil)
			return
		}

		writeJSON(w, http.StatusOK, products)
	}
}

func CreateProduct(service cataloging.ProductService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req cataloging.UpsertProductRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		req.ID = ""

		product, err := service.UpsertProduct(&req)
		if err != nil {
			handleProductError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, product)
	}
}

func UpdateProduct(service cataloging.ProductService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req cataloging.UpsertProductRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		req.ID = httprouter.ParamsFromContext(r.Context()).ByName("id")

		product, err := service.UpsertProduct(&req)
		if err != nil {
			handleProductError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, product)
	}
}

func handleProductError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, cataloging.ErrMissingName):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

	case errors.Is(err, cataloging.ErrInvalidPrice):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

	case errors.Is(err, cataloging.ErrProductNotFound):
		apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Produto não encontrado", nil)

	default:
		logrus.Error("Erro ao gravar produto:", err)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao gravar produto", nil)
	}
}
