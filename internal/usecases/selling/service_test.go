package selling

import (
	"testing"
	"time"

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

func newServiceWithMocks(t *testing.T) (SaleService, *mocks.MockSaleRepository, *mocks.MockClientRepository, *mocks.MockProductRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	saleRepo := mocks.NewMockSaleRepository(ctrl)
	clientRepo := mocks.NewMockClientRepository(ctrl)
	productRepo := mocks.NewMockProductRepository(ctrl)

	return NewService(saleRepo, clientRepo, productRepo), saleRepo, clientRepo, productRepo
}

func TestListSales_SellerOnlySeesOwnSales(t *testing.T) {
	service, saleRepo, _, _ := newServiceWithMocks(t)

	saleRepo.EXPECT().
		ListSales().
		Return([]*domain.Sale{
			{ID: "v1", OwnerUserID: sellerA.UserID},
			{ID: "v2", OwnerUserID: sellerB.UserID},
		}, nil)

	sales, err := service.ListSales(sellerA)

	assert.NoError(t, err)
	assert.Len(t, sales, 1)
	assert.Equal(t, "v1", sales[0].ID)
}

func TestCreateSale_ForcesOwnerAndGeneratesContract(t *testing.T) {
	service, saleRepo, clientRepo, productRepo := newServiceWithMocks(t)

	clientRepo.EXPECT().
		GetClientByID("c1").
		Return(&domain.Client{ID: "c1", OwnerUserID: sellerA.UserID}, nil)
	productRepo.EXPECT().
		GetProductByID("p1").
		Return(&domain.Product{ID: "p1", Name: "Gestão de Tráfego"}, nil)
	saleRepo.EXPECT().
		CreateSale(gomock.Any()).
		DoAndReturn(func(sale *domain.Sale) (*domain.Sale, error) {
			return sale, nil
		})

	sale, err := service.CreateSale(sellerA, &CreateSaleRequest{
		ClientID:        "c1",
		ProductID:       "p1",
		NegotiatedValue: 1200,
		PaymentMethod:   "Pix",
		SaleDate:        time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	})

	assert.NoError(t, err)
	assert.Equal(t, sellerA.UserID, sale.OwnerUserID)
	assert.NotEmpty(t, sale.ID)
	assert.Regexp(t, "^CT-", sale.ContractNumber)
	assert.Equal(t, domain.StatusApproved, sale.Status)
}

func TestCreateSale_RejectsNonPositiveValue(t *testing.T) {
	service, _, _, _ := newServiceWithMocks(t)

	_, err := service.CreateSale(sellerA, &CreateSaleRequest{
		ClientID:        "c1",
		ProductID:       "p1",
		NegotiatedValue: 0,
	})

	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestCreateSale_UnknownClient(t *testing.T) {
	service, _, clientRepo, _ := newServiceWithMocks(t)

	clientRepo.EXPECT().
		GetClientByID("desconhecido").
		Return(nil, nil)

	_, err := service.CreateSale(sellerA, &CreateSaleRequest{
		ClientID:        "desconhecido",
		ProductID:       "p1",
		NegotiatedValue: 100,
	})

	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestUpdateSale_DeniedForNonOwner(t *testing.T) {
	service, saleRepo, _, _ := newServiceWithMocks(t)

	saleRepo.EXPECT().
		GetSaleByID("v1").
		Return(&domain.Sale{ID: "v1", OwnerUserID: sellerA.UserID}, nil)

	value := 900.0
	_, err := service.UpdateSale(sellerB, &domain.UpdateSaleRequest{
		ID:              "v1",
		NegotiatedValue: &value,
	})

	assert.True(t, authorizing.IsForbidden(err))
}

func TestUpdateSale_AdminCanEditAnySale(t *testing.T) {
	service, saleRepo, _, _ := newServiceWithMocks(t)

	saleRepo.EXPECT().
		GetSaleByID("v1").
		Return(&domain.Sale{ID: "v1", OwnerUserID: sellerA.UserID, NegotiatedValue: 500}, nil)
	saleRepo.EXPECT().
		UpdateSale(gomock.Any()).
		Return(nil)

	value := 900.0
	sale, err := service.UpdateSale(admin, &domain.UpdateSaleRequest{
		ID:              "v1",
		NegotiatedValue: &value,
	})

	assert.NoError(t, err)
	assert.Equal(t, 900.0, sale.NegotiatedValue)
	// O dono original não muda com a edição do administrador
	assert.Equal(t, sellerA.UserID, sale.OwnerUserID)
}

func TestChangeSaleStatus_TerminalRequiresReason(t *testing.T) {
	service, _, _, _ := newServiceWithMocks(t)

	err := service.ChangeSaleStatus(admin, "v1", domain.StatusInactive, "")

	assert.ErrorIs(t, err, authorizing.ErrMissingReason)
}

func TestChangeSaleStatus_ReasonValidatedBeforeAuthorization(t *testing.T) {
	service, _, _, _ := newServiceWithMocks(t)

	// Nenhuma expectativa de repositório: a validação do motivo acontece
	// antes de consultar a venda e de autorizar o ator, então um não-dono
	// com motivo vazio recebe erro de validação, não de permissão.
	err := service.ChangeSaleStatus(sellerB, "v1", domain.StatusInactive, "")

	assert.ErrorIs(t, err, authorizing.ErrMissingReason)
	assert.False(t, authorizing.IsForbidden(err))
}

func TestChangeSaleStatus_SellerCannotSkipStages(t *testing.T) {
	service, saleRepo, _, _ := newServiceWithMocks(t)

	saleRepo.EXPECT().
		GetSaleByID("v1").
		Return(&domain.Sale{ID: "v1", OwnerUserID: sellerA.UserID, Status: domain.StatusPending}, nil)

	err := service.ChangeSaleStatus(sellerA, "v1", domain.StatusCompleted, "")

	assert.ErrorIs(t, err, authorizing.ErrInvalidTransition)
}

func TestChangeSaleStatus_InactivationPersistsReason(t *testing.T) {
	service, saleRepo, _, _ := newServiceWithMocks(t)

	saleRepo.EXPECT().
		GetSaleByID("v1").
		Return(&domain.Sale{ID: "v1", OwnerUserID: sellerA.UserID, Status: domain.StatusApproved}, nil)
	saleRepo.EXPECT().
		UpdateSale(gomock.Any()).
		DoAndReturn(func(sale *domain.Sale) error {
			assert.Equal(t, domain.StatusInactive, sale.Status)
			if assert.NotNil(t, sale.StatusReason) {
				assert.Equal(t, "Cliente cancelou o contrato", *sale.StatusReason)
			}
			return nil
		})

	err := service.ChangeSaleStatus(sellerA, "v1", domain.StatusInactive, "Cliente cancelou o contrato")

	assert.NoError(t, err)
}

func TestChangeSaleStatus_SaleNotFound(t *testing.T) {
	service, saleRepo, _, _ := newServiceWithMocks(t)

	saleRepo.EXPECT().
		GetSaleByID("inexistente").
		Return(nil, nil)

	err := service.ChangeSaleStatus(admin, "inexistente", domain.StatusCompleted, "")

	assert.ErrorIs(t, err, ErrSaleNotFound)
}
