// Package selling implementa o registro e a manutenção de vendas, sempre
// atrás do filtro de visibilidade e da guarda de mutação.
package selling

import (
	"errors"
	"time"

	"github.com/brassertech/vendas-api/infrastructure/repository"
	"github.com/brassertech/vendas-api/internal/domain"
	"github.com/brassertech/vendas-api/internal/usecases/authorizing"
	"github.com/brassertech/vendas-api/pkg/utils"
	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var (
	ErrSaleNotFound    = errors.New("venda não encontrada")
	ErrClientNotFound  = errors.New("cliente não encontrado")
	ErrProductNotFound = errors.New("produto não encontrado")
	ErrInvalidValue    = errors.New("valor negociado deve ser maior que zero")
)

type CreateSaleRequest struct {
	ClientID        string    `json:"cliente_id"`
	ProductID       string    `json:"produto_id"`
	NegotiatedValue float64   `json:"valor_negociado"`
	PaymentMethod   string    `json:"forma_pagamento"`
	SaleDate        time.Time `json:"data_venda"`
}

type SaleService interface {
	ListSales(actor domain.Actor) ([]*domain.Sale, error)
	CreateSale(actor domain.Actor, req *CreateSaleRequest) (*domain.Sale, error)
	UpdateSale(actor domain.Actor, req *domain.UpdateSaleRequest) (*domain.Sale, error)
	ChangeSaleStatus(actor domain.Actor, saleID string, to domain.RecordStatus, reason string) error
}

type Service struct {
	saleRepo    repository.SaleRepository
	clientRepo  repository.ClientRepository
	productRepo repository.ProductRepository
}

func NewService(
	saleRepo repository.SaleRepository,
	clientRepo repository.ClientRepository,
	productRepo repository.ProductRepository,
) SaleService {
	return &Service{
		saleRepo:    saleRepo,
		clientRepo:  clientRepo,
		productRepo: productRepo,
	}
}

// ListSales retorna as vendas visíveis ao ator, já com nomes de cliente,
// produto e vendedor resolvidos.
func (s *Service) ListSales(actor domain.Actor) ([]*domain.Sale, error) {
	sales, err := s.saleRepo.ListSales()
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao listar vendas")
	}

	return authorizing.FilterSales(actor, sales), nil
}

// CreateSale registra uma nova venda. O dono é sempre o ator da requisição,
// ignorando qualquer usuario_id vindo do cliente HTTP, e o número de
// contrato é gerado no servidor.
func (s *Service) CreateSale(actor domain.Actor, req *CreateSaleRequest) (*domain.Sale, error) {
	if req.NegotiatedValue <= 0 {
		return nil, ErrInvalidValue
	}

	if err := authorizing.AuthorizeWrite(actor, authorizing.OpCreate, 0); err != nil {
		return nil, err
	}

	client, err := s.clientRepo.GetClientByID(req.ClientID)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao consultar cliente")
	}
	if client == nil {
		return nil, ErrClientNotFound
	}

	product, err := s.productRepo.GetProductByID(req.ProductID)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao consultar produto")
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	contractNumber, err := utils.GenerateContractNumber()
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao gerar número de contrato")
	}

	saleDate := req.SaleDate
	if saleDate.IsZero() {
		saleDate = time.Now()
	}

	sale := &domain.Sale{
		ID:              uuid.New().String(),
		OwnerUserID:     actor.UserID,
		ClientID:        req.ClientID,
		ProductID:       req.ProductID,
		ContractNumber:  contractNumber,
		NegotiatedValue: req.NegotiatedValue,
		PaymentMethod:   req.PaymentMethod,
		SaleDate:        saleDate,
		Status:          domain.StatusApproved,
	}

	sale, err = s.saleRepo.CreateSale(sale)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao gravar venda")
	}

	logrus.WithFields(logrus.Fields{
		"sale_id":  sale.ID,
		"user_id":  actor.UserID,
		"contract": sale.ContractNumber,
	}).Info("Venda registrada")

	return sale, nil
}

// UpdateSale altera os campos editáveis de uma venda existente. A guarda
// exige que o ator seja administrador ou dono do registro; o dono e o
// número de contrato nunca mudam.
func (s *Service) UpdateSale(actor domain.Actor, req *domain.UpdateSaleRequest) (*domain.Sale, error) {
	sale, err := s.saleRepo.GetSaleByID(req.ID)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao consultar venda")
	}
	if sale == nil {
		return nil, ErrSaleNotFound
	}

	if err := authorizing.AuthorizeWrite(actor, authorizing.OpUpdate, sale.OwnerUserID); err != nil {
		return nil, err
	}

	if req.ClientID != nil {
		sale.ClientID = *req.ClientID
	}

	if req.ProductID != nil {
		sale.ProductID = *req.ProductID
	}

	if req.NegotiatedValue != nil {
		if *req.NegotiatedValue <= 0 {
			return nil, ErrInvalidValue
		}
		sale.NegotiatedValue = *req.NegotiatedValue
	}

	if req.PaymentMethod != nil {
		sale.PaymentMethod = *req.PaymentMethod
	}

	if req.SaleDate != nil {
		sale.SaleDate = *req.SaleDate
	}

	if err := s.saleRepo.UpdateSale(sale); err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao atualizar venda")
	}

	return sale, nil
}

// ChangeSaleStatus move a venda no ciclo de vida. Transições terminais
// exigem motivo; administradores podem forçar qualquer status.
func (s *Service) ChangeSaleStatus(actor domain.Actor, saleID string, to domain.RecordStatus, reason string) error {
	// Motivo vazio em transição terminal é erro de validação, levantado
	// antes de consultar o registro e de autorizar o ator.
	if to.IsTerminal() {
		if err := authorizing.ValidateInactivationReason(reason); err != nil {
			return err
		}
	}

	sale, err := s.saleRepo.GetSaleByID(saleID)
	if err != nil {
		return pkgerrors.Wrap(err, "erro ao consultar venda")
	}
	if sale == nil {
		return ErrSaleNotFound
	}

	if err := authorizing.AuthorizeWrite(actor, authorizing.OpUpdate, sale.OwnerUserID); err != nil {
		return err
	}

	if err := authorizing.AuthorizeTransition(actor, sale.Status, to, reason); err != nil {
		return err
	}

	sale.Status = to
	if to.IsTerminal() {
		sale.StatusReason = &reason
	} else {
		sale.StatusReason = nil
	}

	if err := s.saleRepo.UpdateSale(sale); err != nil {
		return pkgerrors.Wrap(err, "erro ao atualizar status da venda")
	}

	return nil
}
