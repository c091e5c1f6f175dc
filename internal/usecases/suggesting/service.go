// Package suggesting implementa a caixa de ideias: envio pelos vendedores,
// listagem filtrada por sigilo e triagem pelo administrador.
package suggesting

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
	ErrIdeaNotFound       = errors.New("ideia não encontrada")
	ErrMissingDescription = errors.New("descrição é obrigatória")
	ErrInvalidKind        = errors.New("tipo de ideia inválido")
	ErrInvalidPriority    = errors.New("prioridade inválida")
)

type SubmitIdeaRequest struct {
	Kind        string `json:"tipo"`
	Private     bool   `json:"privado"`
	Description string `json:"descricao"`
}

type IdeaService interface {
	ListIdeas(actor domain.Actor) ([]*domain.Idea, error)
	SubmitIdea(actor domain.Actor, req *SubmitIdeaRequest) (*domain.Idea, error)
	TriageIdea(actor domain.Actor, req *domain.UpdateIdeaRequest) (*domain.Idea, error)
}

type Service struct {
	ideaRepo repository.IdeaRepository
}

func NewService(ideaRepo repository.IdeaRepository) IdeaService {
	return &Service{
		ideaRepo: ideaRepo,
	}
}

// ListIdeas retorna as ideias visíveis ao ator. Ideias sigilosas (privadas
// ou do tipo Venda de Projeto) só aparecem para o dono e para o
// administrador.
func (s *Service) ListIdeas(actor domain.Actor) ([]*domain.Idea, error) {
	ideas, err := s.ideaRepo.ListIdeas()
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao listar ideias")
	}

	return authorizing.FilterIdeas(actor, ideas), nil
}

// SubmitIdea registra uma ideia nova com o ator como dono, em status
// pendente de triagem.
func (s *Service) SubmitIdea(actor domain.Actor, req *SubmitIdeaRequest) (*domain.Idea, error) {
	if req.Description == "" {
		return nil, ErrMissingDescription
	}

	if req.Kind != domain.IdeaKindSuggestion && req.Kind != domain.IdeaKindProjectSale {
		return nil, ErrInvalidKind
	}

	if err := authorizing.AuthorizeWrite(actor, authorizing.OpCreate, 0); err != nil {
		return nil, err
	}

	idea := &domain.Idea{
		ID:          uuid.New().String(),
		OwnerUserID: actor.UserID,
		Kind:        req.Kind,
		Private:     req.Private,
		Description: req.Description,
		Status:      domain.StatusPending,
	}

	idea, err := s.ideaRepo.CreateIdea(idea)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao gravar ideia")
	}

	logrus.WithFields(logrus.Fields{
		"idea_id": idea.ID,
		"user_id": actor.UserID,
		"kind":    idea.Kind,
	}).Info("Ideia registrada")

	return idea, nil
}

// TriageIdea aplica a triagem do administrador: mudança de status no ciclo
// de vida e atribuição de prioridade. Donos podem mover a própria ideia
// dentro das transições permitidas, mas prioridade é decisão de triagem e
// fica restrita ao administrador.
func (s *Service) TriageIdea(actor domain.Actor, req *domain.UpdateIdeaRequest) (*domain.Idea, error) {
	reason := ""
	if req.Reason != nil {
		reason = *req.Reason
	}

	// Motivo vazio em transição terminal é erro de validação, levantado
	// antes de consultar o registro e de autorizar o ator.
	if req.Status != nil && req.Status.IsTerminal() {
		if err := authorizing.ValidateInactivationReason(reason); err != nil {
			return nil, err
		}
	}

	idea, err := s.ideaRepo.GetIdeaByID(req.ID)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao consultar ideia")
	}
	if idea == nil {
		return nil, ErrIdeaNotFound
	}

	if err := authorizing.AuthorizeWrite(actor, authorizing.OpUpdate, idea.OwnerUserID); err != nil {
		return nil, err
	}

	if req.Priority != nil {
		if !actor.IsAdmin() {
			return nil, &authorizing.PolicyError{
				Err:         authorizing.ErrForbidden,
				ActorUserID: actor.UserID,
				OwnerUserID: idea.OwnerUserID,
				Operation:   authorizing.OpUpdate,
			}
		}
		if !validPriority(*req.Priority) {
			return nil, ErrInvalidPriority
		}
		idea.Priority = *req.Priority
	}

	if req.Status != nil {
		if err := authorizing.AuthorizeTransition(actor, idea.Status, *req.Status, reason); err != nil {
			return nil, err
		}

		idea.Status = *req.Status
	}

	if err := s.ideaRepo.UpdateIdea(idea); err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao atualizar ideia")
	}

	return idea, nil
}

func validPriority(priority string) bool {
	switch priority {
	case domain.IdeaPriorityLow, domain.IdeaPriorityMedium, domain.IdeaPriorityHigh:
		return true
	}
	return false
}
