package suggesting

import (
	"testing"

	"github.com/brassertech/vendas-api/infrastructure/repository/mocks"
	"github.com/brassertech/vendas-api/internal/domain"
	"github.com/brassertech/vendas-api/internal/usecases/authorizing"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var (
	admin   = domain.Actor{UserID: 1, RoleID: domain.RoleAdmin}
	sellerA = domain.Actor{UserID: 10, RoleID: domain.RoleSeller}
	sellerB = domain.Actor{UserID: 20, RoleID: domain.RoleSeller}
)

func newServiceWithMock(t *testing.T) (IdeaService, *mocks.MockIdeaRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	ideaRepo := mocks.NewMockIdeaRepository(ctrl)
	return NewService(ideaRepo), ideaRepo
}

func TestListIdeas_ConfidentialHiddenFromOtherSellers(t *testing.T) {
	service, ideaRepo := newServiceWithMock(t)

	ideaRepo.EXPECT().
		ListIdeas().
		Return([]*domain.Idea{
			{ID: "i1", OwnerUserID: sellerA.UserID, Kind: domain.IdeaKindSuggestion},
			{ID: "i2", OwnerUserID: sellerA.UserID, Kind: domain.IdeaKindSuggestion, Private: true},
			{ID: "i3", OwnerUserID: sellerA.UserID, Kind: domain.IdeaKindProjectSale},
		}, nil)

	ideas, err := service.ListIdeas(sellerB)

	assert.NoError(t, err)
	// Venda de Projeto é sigilosa mesmo sem a flag de privado
	assert.Len(t, ideas, 1)
	assert.Equal(t, "i1", ideas[0].ID)
}

func TestSubmitIdea_ForcesOwnerAndPendingStatus(t *testing.T) {
	service, ideaRepo := newServiceWithMock(t)

	ideaRepo.EXPECT().
		CreateIdea(gomock.Any()).
		DoAndReturn(func(idea *domain.Idea) (*domain.Idea, error) {
			return idea, nil
		})

	idea, err := service.SubmitIdea(sellerA, &SubmitIdeaRequest{
		Kind:        domain.IdeaKindSuggestion,
		Description: "Criar catálogo de casos de sucesso",
	})

	assert.NoError(t, err)
	assert.Equal(t, sellerA.UserID, idea.OwnerUserID)
	assert.Equal(t, domain.StatusPending, idea.Status)
	assert.NotEmpty(t, idea.ID)
}

func TestSubmitIdea_RequiresDescription(t *testing.T) {
	service, _ := newServiceWithMock(t)

	_, err := service.SubmitIdea(sellerA, &SubmitIdeaRequest{Kind: domain.IdeaKindSuggestion})

	assert.ErrorIs(t, err, ErrMissingDescription)
}

func TestSubmitIdea_RejectsUnknownKind(t *testing.T) {
	service, _ := newServiceWithMock(t)

	_, err := service.SubmitIdea(sellerA, &SubmitIdeaRequest{
		Kind:        "Reclamação",
		Description: "Qualquer coisa",
	})

	assert.ErrorIs(t, err, ErrInvalidKind)
}

func TestTriageIdea_AdminSetsPriorityAndApproves(t *testing.T) {
	service, ideaRepo := newServiceWithMock(t)

	ideaRepo.EXPECT().
		GetIdeaByID("i1").
		Return(&domain.Idea{ID: "i1", OwnerUserID: sellerA.UserID, Status: domain.StatusPending}, nil)
	ideaRepo.EXPECT().
		UpdateIdea(gomock.Any()).
		DoAndReturn(func(idea *domain.Idea) error {
			assert.Equal(t, domain.StatusApproved, idea.Status)
			assert.Equal(t, domain.IdeaPriorityHigh, idea.Priority)
			return nil
		})

	status := domain.StatusApproved
	priority := domain.IdeaPriorityHigh
	_, err := service.TriageIdea(admin, &domain.UpdateIdeaRequest{
		ID:       "i1",
		Status:   &status,
		Priority: &priority,
	})

	assert.NoError(t, err)
}

func TestTriageIdea_SellerCannotSetPriority(t *testing.T) {
	service, ideaRepo := newServiceWithMock(t)

	ideaRepo.EXPECT().
		GetIdeaByID("i1").
		Return(&domain.Idea{ID: "i1", OwnerUserID: sellerA.UserID, Status: domain.StatusPending}, nil)

	priority := domain.IdeaPriorityLow
	_, err := service.TriageIdea(sellerA, &domain.UpdateIdeaRequest{
		ID:       "i1",
		Priority: &priority,
	})

	assert.True(t, authorizing.IsForbidden(err))
}

func TestTriageIdea_RejectionRequiresReason(t *testing.T) {
	service, _ := newServiceWithMock(t)

	status := domain.StatusRejected
	_, err := service.TriageIdea(admin, &domain.UpdateIdeaRequest{
		ID:     "i1",
		Status: &status,
	})

	assert.ErrorIs(t, err, authorizing.ErrMissingReason)
}

func TestTriageIdea_ReasonValidatedBeforeAuthorization(t *testing.T) {
	service, _ := newServiceWithMock(t)

	// Nenhuma expectativa de repositório: a validação do motivo acontece
	// antes de consultar a ideia e de autorizar o ator, então um não-dono
	// com motivo vazio recebe erro de validação, não de permissão.
	status := domain.StatusRejected
	_, err := service.TriageIdea(sellerB, &domain.UpdateIdeaRequest{
		ID:     "i1",
		Status: &status,
	})

	assert.ErrorIs(t, err, authorizing.ErrMissingReason)
	assert.False(t, authorizing.IsForbidden(err))
}

func TestTriageIdea_InvalidPriority(t *testing.T) {
	service, ideaRepo := newServiceWithMock(t)

	ideaRepo.EXPECT().
		GetIdeaByID("i1").
		Return(&domain.Idea{ID: "i1", OwnerUserID: sellerA.UserID, Status: domain.StatusPending}, nil)

	priority := "Urgentíssima"
	_, err := service.TriageIdea(admin, &domain.UpdateIdeaRequest{
		ID:       "i1",
		Priority: &priority,
	})

	assert.ErrorIs(t, err, ErrInvalidPriority)
}

func TestTriageIdea_NotFound(t *testing.T) {
	service, ideaRepo := newServiceWithMock(t)

	ideaRepo.EXPECT().
		GetIdeaByID("inexistente").
		Return(nil, nil)

	status := domain.StatusApproved
	_, err := service.TriageIdea(admin, &domain.UpdateIdeaRequest{
		ID:     "inexistente",
		Status: &status,
	})

	assert.ErrorIs(t, err, ErrIdeaNotFound)
}
