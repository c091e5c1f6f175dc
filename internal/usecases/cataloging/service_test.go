package cataloging

import (
	"testing"

	"github.com/brassertech/vendas-api/infrastructure/repository/mocks"
	"github.com/brassertech/vendas-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newServiceWithMock(t *testing.T) (ProductService, *mocks.MockProductRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	productRepo := mocks.NewMockProductRepository(ctrl)
	return NewService(productRepo), productRepo
}

func TestUpsertProduct_CreatesWithoutID(t *testing.T) {
	service, productRepo := newServiceWithMock(t)

	productRepo.EXPECT().
		CreateProduct(gomock.Any()).
		DoAndReturn(func(product *domain.Product) (*domain.Product, error) {
			return product, nil
		})

	product, err := service.UpsertProduct(&UpsertProductRequest{
		Name:         "Gestão de Tráfego",
		MonthlyPrice: 1500,
		Variants:     []string{"Meta Ads", "Google Ads"},
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, product.ID)
	assert.Equal(t, []string{"Meta Ads", "Google Ads"}, product.Variants)
}

func TestUpsertProduct_UpdatesExisting(t *testing.T) {
	service, productRepo := newServiceWithMock(t)

	productRepo.EXPECT().
		GetProductByID("p1").
		Return(&domain.Product{ID: "p1", Name: "Site", MonthlyPrice: 800}, nil)
	productRepo.EXPECT().
		UpdateProduct(gomock.Any()).
		DoAndReturn(func(product *domain.Product) error {
			assert.Equal(t, "Site Institucional", product.Name)
			assert.Equal(t, 900.0, product.MonthlyPrice)
			return nil
		})

	_, err := service.UpsertProduct(&UpsertProductRequest{
		ID:           "p1",
		Name:         "Site Institucional",
		MonthlyPrice: 900,
	})

	assert.NoError(t, err)
}

func TestUpsertProduct_UnknownIDIsError(t *testing.T) {
	service, productRepo := newServiceWithMock(t)

	productRepo.EXPECT().
		GetProductByID("inexistente").
		Return(nil, nil)

	_, err := service.UpsertProduct(&UpsertProductRequest{
		ID:   "inexistente",
		Name: "Qualquer",
	})

	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestUpsertProduct_Validations(t *testing.T) {
	service, _ := newServiceWithMock(t)

	_, err := service.UpsertProduct(&UpsertProductRequest{MonthlyPrice: 100})
	assert.ErrorIs(t, err, ErrMissingName)

	_, err = service.UpsertProduct(&UpsertProductRequest{Name: "Produto", MonthlyPrice: -1})
	assert.ErrorIs(t, err, ErrInvalidPrice)
}
