// Package cataloging mantém o catálogo de produtos e variantes. Leitura é
// aberta a qualquer usuário autenticado; escrita é restrita ao
// administrador na camada de rotas.
package cataloging

import (
	"errors"

	"github.com/brassertech/vendas-api/infrastructure/repository"
	"github.com/brassertech/vendas-api/internal/domain"
	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"
)

var (
	ErrProductNotFound = errors.New("produto não encontrado")
	ErrMissingName     = errors.New("nome do produto é obrigatório")
	ErrInvalidPrice    = errors.New("preço mensal não pode ser negativo")
)

type UpsertProductRequest struct {
	ID           string   `json:"id"`
	Name         string   `json:"nome"`
	MonthlyPrice float64  `json:"preco_mensal"`
	Variants     []string `json:"variantes"`
}

type ProductService interface {
	ListProducts() ([]*domain.Product, error)
	UpsertProduct(req *UpsertProductRequest) (*domain.Product, error)
}

type Service struct {
	productRepo repository.ProductRepository
}

func NewService(productRepo repository.ProductRepository) ProductService {
	return &Service{
		productRepo: productRepo,
	}
}

func (s *Service) ListProducts() ([]*domain.Product, error) {
	products, err := s.productRepo.ListProducts()
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao listar produtos")
	}

	return products, nil
}

// UpsertProduct cria o produto quando a requisição não traz ID e atualiza
// quando traz. Atualizar um ID inexistente é erro, não criação implícita.
func (s *Service) UpsertProduct(req *UpsertProductRequest) (*domain.Product, error) {
	if req.Name == "" {
		return nil, ErrMissingName
	}

	if req.MonthlyPrice < 0 {
		return nil, ErrInvalidPrice
	}

	if req.ID == "" {
		product := &domain.Product{
			ID:           uuid.New().String(),
			Name:         req.Name,
			MonthlyPrice: req.MonthlyPrice,
			Variants:     req.Variants,
		}

		product, err := s.productRepo.CreateProduct(product)
		if err != nil {
			return nil, pkgerrors.Wrap(err, "erro ao criar produto")
		}

		return product, nil
	}

	product, err := s.productRepo.GetProductByID(req.ID)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao consultar produto")
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	product.Name = req.Name
	product.MonthlyPrice = req.MonthlyPrice
	product.Variants = req.Variants

	if err := s.productRepo.UpdateProduct(product); err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao atualizar produto")
	}

	return product, nil
}
