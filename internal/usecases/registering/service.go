// Package registering cuida do cadastro de clientes: criação, edição e o
// ciclo de inativação com motivo obrigatório.
package registering

import (
	"errors"

	"github.com/brassertech/vendas-api/infrastructure/repository"
	"github.com/brassertech/vendas-api/internal/domain"
	"github.com/brassertech/vendas-api/internal/usecases/authorizing"
	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var (
	ErrClientNotFound     = errors.New("cliente não encontrado")
	ErrMissingCompanyName = errors.New("nome da empresa é obrigatório")
)

type CreateClientRequest struct {
	CompanyName string `json:"nome_empresa"`
	Document    string `json:"documento"`
}

type ClientService interface {
	ListClients(actor domain.Actor) ([]*domain.Client, error)
	CreateClient(actor domain.Actor, req *CreateClientRequest) (*domain.Client, error)
	UpdateClient(actor domain.Actor, req *domain.UpdateClientRequest) (*domain.Client, error)
	InactivateClient(actor domain.Actor, clientID, reason string) error
	ReactivateClient(actor domain.Actor, clientID string) error
}

type Service struct {
	clientRepo repository.ClientRepository
}

func NewService(clientRepo repository.ClientRepository) ClientService {
	return &Service{
		clientRepo: clientRepo,
	}
}

// ListClients retorna os clientes visíveis ao ator, com o nome do vendedor
// dono já resolvido para a listagem do administrador.
func (s *Service) ListClients(actor domain.Actor) ([]*domain.Client, error) {
	clients, err := s.clientRepo.ListClients()
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao listar clientes")
	}

	return authorizing.FilterClients(actor, clients), nil
}

// CreateClient cadastra um cliente novo com o ator como dono, sempre ativo.
func (s *Service) CreateClient(actor domain.Actor, req *CreateClientRequest) (*domain.Client, error) {
	if req.CompanyName == "" {
		return nil, ErrMissingCompanyName
	}

	if err := authorizing.AuthorizeWrite(actor, authorizing.OpCreate, 0); err != nil {
		return nil, err
	}

	client := &domain.Client{
		ID:          uuid.New().String(),
		OwnerUserID: actor.UserID,
		CompanyName: req.CompanyName,
		Document:    req.Document,
		Status:      domain.ClientActive,
	}

	client, err := s.clientRepo.CreateClient(client)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao gravar cliente")
	}

	logrus.WithFields(logrus.Fields{
		"client_id": client.ID,
		"user_id":   actor.UserID,
	}).Info("Cliente cadastrado")

	return client, nil
}

// UpdateClient edita os dados cadastrais. Status e motivo de inativação não
// passam por aqui; o ciclo de inativação tem operações próprias.
func (s *Service) UpdateClient(actor domain.Actor, req *domain.UpdateClientRequest) (*domain.Client, error) {
	client, err := s.clientRepo.GetClientByID(req.ID)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao consultar cliente")
	}
	if client == nil {
		return nil, ErrClientNotFound
	}

	if err := authorizing.AuthorizeWrite(actor, authorizing.OpUpdate, client.OwnerUserID); err != nil {
		return nil, err
	}

	if req.CompanyName != nil {
		client.CompanyName = *req.CompanyName
	}

	if req.Document != nil {
		client.Document = *req.Document
	}

	if err := s.clientRepo.UpdateClient(client); err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao atualizar cliente")
	}

	return client, nil
}

// InactivateClient desativa o cliente guardando o motivo. O motivo é
// validado antes da autorização: requisição sem motivo é erro de validação
// mesmo quando o ator nem poderia inativar o registro.
func (s *Service) InactivateClient(actor domain.Actor, clientID, reason string) error {
	if err := authorizing.ValidateInactivationReason(reason); err != nil {
		return err
	}

	client, err := s.clientRepo.GetClientByID(clientID)
	if err != nil {
		return pkgerrors.Wrap(err, "erro ao consultar cliente")
	}
	if client == nil {
		return ErrClientNotFound
	}

	if err := authorizing.AuthorizeWrite(actor, authorizing.OpInactivate, client.OwnerUserID); err != nil {
		return err
	}

	client.Status = domain.ClientInactive
	client.InactivationReason = &reason

	if err := s.clientRepo.UpdateClient(client); err != nil {
		return pkgerrors.Wrap(err, "erro ao inativar cliente")
	}

	logrus.WithFields(logrus.Fields{
		"client_id": clientID,
		"user_id":   actor.UserID,
	}).Info("Cliente inativado")

	return nil
}

// ReactivateClient volta o cliente para ativo e limpa o motivo de
// inativação anterior.
func (s *Service) ReactivateClient(actor domain.Actor, clientID string) error {
	client, err := s.clientRepo.GetClientByID(clientID)
	if err != nil {
		return pkgerrors.Wrap(err, "erro ao consultar cliente")
	}
	if client == nil {
		return ErrClientNotFound
	}

	if err := authorizing.AuthorizeWrite(actor, authorizing.OpReactivate, client.OwnerUserID); err != nil {
		return err
	}

	client.Status = domain.ClientActive
	client.InactivationReason = nil

	if err := s.clientRepo.UpdateClient(client); err != nil {
		return pkgerrors.Wrap(err, "erro ao reativar cliente")
	}

	return nil
}
