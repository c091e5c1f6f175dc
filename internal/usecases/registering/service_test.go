package registering

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

func newServiceWithMock(t *testing.T) (ClientService, *mocks.MockClientRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	clientRepo := mocks.NewMockClientRepository(ctrl)
	return NewService(clientRepo), clientRepo
}

func TestListClients_AdminSeesAll(t *testing.T) {
	service, clientRepo := newServiceWithMock(t)

	clientRepo.EXPECT().
		ListClients().
		Return([]*domain.Client{
			{ID: "c1", OwnerUserID: sellerA.UserID},
			{ID: "c2", OwnerUserID: sellerB.UserID},
		}, nil)

	clients, err := service.ListClients(admin)

	assert.NoError(t, err)
	assert.Len(t, clients, 2)
}

func TestCreateClient_ForcesOwnerAndActiveStatus(t *testing.T) {
	service, clientRepo := newServiceWithMock(t)

	clientRepo.EXPECT().
		CreateClient(gomock.Any()).
		DoAndReturn(func(client *domain.Client) (*domain.Client, error) {
			return client, nil
		})

	client, err := service.CreateClient(sellerA, &CreateClientRequest{
		CompanyName: "Padaria Estrela",
		Document:    "12.345.678/0001-90",
	})

	assert.NoError(t, err)
	assert.Equal(t, sellerA.UserID, client.OwnerUserID)
	assert.Equal(t, domain.ClientActive, client.Status)
	assert.NotEmpty(t, client.ID)
}

func TestCreateClient_RequiresCompanyName(t *testing.T) {
	service, _ := newServiceWithMock(t)

	_, err := service.CreateClient(sellerA, &CreateClientRequest{Document: "123"})

	assert.ErrorIs(t, err, ErrMissingCompanyName)
}

func TestUpdateClient_DeniedForNonOwner(t *testing.T) {
	service, clientRepo := newServiceWithMock(t)

	clientRepo.EXPECT().
		GetClientByID("c1").
		Return(&domain.Client{ID: "c1", OwnerUserID: sellerA.UserID}, nil)

	name := "Outro Nome"
	_, err := service.UpdateClient(sellerB, &domain.UpdateClientRequest{
		ID:          "c1",
		CompanyName: &name,
	})

	assert.True(t, authorizing.IsForbidden(err))
}

func TestInactivateClient_ReasonValidatedBeforeAuthorization(t *testing.T) {
	service, _ := newServiceWithMock(t)

	// Sem motivo o erro é de validação, mesmo para quem não é dono
	err := service.InactivateClient(sellerB, "c1", "")

	assert.ErrorIs(t, err, authorizing.ErrMissingReason)
	assert.False(t, authorizing.IsForbidden(err))
}

func TestInactivateClient_OwnerWithReason(t *testing.T) {
	service, clientRepo := newServiceWithMock(t)

	clientRepo.EXPECT().
		GetClientByID("c1").
		Return(&domain.Client{ID: "c1", OwnerUserID: sellerA.UserID, Status: domain.ClientActive}, nil)
	clientRepo.EXPECT().
		UpdateClient(gomock.Any()).
		DoAndReturn(func(client *domain.Client) error {
			assert.Equal(t, domain.ClientInactive, client.Status)
			if assert.NotNil(t, client.InactivationReason) {
				assert.Equal(t, "Empresa fechou", *client.InactivationReason)
			}
			return nil
		})

	err := service.InactivateClient(sellerA, "c1", "Empresa fechou")

	assert.NoError(t, err)
}

func TestInactivateClient_DeniedForNonOwnerWithReason(t *testing.T) {
	service, clientRepo := newServiceWithMock(t)

	clientRepo.EXPECT().
		GetClientByID("c1").
		Return(&domain.Client{ID: "c1", OwnerUserID: sellerA.UserID}, nil)

	err := service.InactivateClient(sellerB, "c1", "Motivo qualquer")

	assert.True(t, authorizing.IsForbidden(err))
}

func TestReactivateClient_ClearsReason(t *testing.T) {
	service, clientRepo := newServiceWithMock(t)

	reason := "Empresa fechou"
	clientRepo.EXPECT().
		GetClientByID("c1").
		Return(&domain.Client{
			ID:                 "c1",
			OwnerUserID:        sellerA.UserID,
			Status:             domain.ClientInactive,
			InactivationReason: &reason,
		}, nil)
	clientRepo.EXPECT().
		UpdateClient(gomock.Any()).
		DoAndReturn(func(client *domain.Client) error {
			assert.Equal(t, domain.ClientActive, client.Status)
			assert.Nil(t, client.InactivationReason)
			return nil
		})

	err := service.ReactivateClient(admin, "c1")

	assert.NoError(t, err)
}

func TestInactivateClient_NotFound(t *testing.T) {
	service, clientRepo := newServiceWithMock(t)

	clientRepo.EXPECT().
		GetClientByID("inexistente").
		Return(nil, nil)

	err := service.InactivateClient(admin, "inexistente", "Motivo")

	assert.ErrorIs(t, err, ErrClientNotFound)
}
