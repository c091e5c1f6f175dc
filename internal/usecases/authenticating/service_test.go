package authenticating

import (
	"testing"

	"github.com/brassertech/vendas-api/infrastructure/repository/mocks"
	"github.com/brassertech/vendas-api/internal/config"
	"github.com/brassertech/vendas-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService(t *testing.T) (Authenticator, *mocks.MockUserRepository, *mocks.MockSellerRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	userRepo := mocks.NewMockUserRepository(ctrl)
	sellerRepo := mocks.NewMockSellerRepository(ctrl)
	cfg := &config.Config{SecretKey: "segredo-de-teste"}

	return NewService(userRepo, sellerRepo, cfg), userRepo, sellerRepo
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hashed)
}

func TestRegisterSeller_CreatesPendingSeller(t *testing.T) {
	service, userRepo, sellerRepo := newAuthService(t)

	userRepo.EXPECT().
		GetUserByEmail("ana@brasser.com.br").
		Return(nil, nil)
	userRepo.EXPECT().
		CreateUser(gomock.Any()).
		DoAndReturn(func(user *domain.User) (*domain.User, error) {
			assert.Equal(t, domain.RoleSeller, user.RoleID)
			assert.True(t, user.Active)
			assert.NotEqual(t, "senha123", user.PasswordHash)
			user.ID = 10
			return user, nil
		})
	sellerRepo.EXPECT().
		GetSellerByUserID(10).
		Return(nil, nil)
	sellerRepo.EXPECT().
		CreateSeller(gomock.Any()).
		DoAndReturn(func(seller *domain.Seller) (*domain.Seller, error) {
			assert.Equal(t, domain.SellerPending, seller.AuthStatus)
			assert.Equal(t, 10, seller.UserID)
			return seller, nil
		})

	user, err := service.RegisterSeller("Ana", "Ana@Brasser.com.br ", "senha123")

	assert.NoError(t, err)
	assert.Equal(t, "ana@brasser.com.br", user.Email)
	assert.Empty(t, user.PasswordHash)
}

func TestRegisterSeller_DuplicateSeller(t *testing.T) {
	service, userRepo, sellerRepo := newAuthService(t)

	userRepo.EXPECT().
		GetUserByEmail("ana@brasser.com.br").
		Return(&domain.User{ID: 10, Email: "ana@brasser.com.br"}, nil)
	sellerRepo.EXPECT().
		GetSellerByUserID(10).
		Return(&domain.Seller{ID: 1, UserID: 10}, nil)

	_, err := service.RegisterSeller("Ana", "ana@brasser.com.br", "senha123")

	assert.ErrorIs(t, err, ErrSellerAlreadyExists)
}

func TestLoginUser_PendingSellerIsBlocked(t *testing.T) {
	service, userRepo, sellerRepo := newAuthService(t)

	userRepo.EXPECT().
		GetUserByEmail("ana@brasser.com.br").
		Return(&domain.User{
			ID:           10,
			Email:        "ana@brasser.com.br",
			PasswordHash: hashPassword(t, "senha123"),
			Active:       true,
			RoleID:       domain.RoleSeller,
		}, nil)
	sellerRepo.EXPECT().
		GetSellerByUserID(10).
		Return(&domain.Seller{ID: 1, UserID: 10, AuthStatus: domain.SellerPending}, nil)

	_, err := service.LoginUser("ana@brasser.com.br", "senha123")

	assert.ErrorIs(t, err, ErrSellerPending)
	assert.True(t, IsCredentialsError(err))
}

func TestLoginUser_ApprovedSellerGetsValidToken(t *testing.T) {
	service, userRepo, sellerRepo := newAuthService(t)

	userRepo.EXPECT().
		GetUserByEmail("ana@brasser.com.br").
		Return(&domain.User{
			ID:           10,
			Name:         "Ana",
			Email:        "ana@brasser.com.br",
			PasswordHash: hashPassword(t, "senha123"),
			Active:       true,
			RoleID:       domain.RoleSeller,
		}, nil)
	sellerRepo.EXPECT().
		GetSellerByUserID(10).
		Return(&domain.Seller{ID: 1, UserID: 10, AuthStatus: domain.SellerApproved}, nil)

	token, err := service.LoginUser("ana@brasser.com.br", "senha123")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, 10, claims.UserID)
	assert.Equal(t, domain.RoleSeller, claims.UserRoleID)
}

func TestLoginUser_WrongPassword(t *testing.T) {
	service, userRepo, _ := newAuthService(t)

	userRepo.EXPECT().
		GetUserByEmail("ana@brasser.com.br").
		Return(&domain.User{
			ID:           10,
			Email:        "ana@brasser.com.br",
			PasswordHash: hashPassword(t, "senha123"),
			Active:       true,
			RoleID:       domain.RoleSeller,
		}, nil)

	_, err := service.LoginUser("ana@brasser.com.br", "senha-errada")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUser_AdminSkipsSellerCheck(t *testing.T) {
	service, userRepo, _ := newAuthService(t)

	userRepo.EXPECT().
		GetUserByEmail("chefe@brasser.com.br").
		Return(&domain.User{
			ID:           1,
			Email:        "chefe@brasser.com.br",
			PasswordHash: hashPassword(t, "senha123"),
			Active:       true,
			RoleID:       domain.RoleAdmin,
		}, nil)

	token, err := service.LoginUser("chefe@brasser.com.br", "senha123")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestApproveSeller_OnlyAdmin(t *testing.T) {
	service, _, sellerRepo := newAuthService(t)

	seller := domain.Actor{UserID: 10, RoleID: domain.RoleSeller}
	err := service.ApproveSeller(seller, 2)
	assert.Error(t, err)

	admin := domain.Actor{UserID: 1, RoleID: domain.RoleAdmin}
	sellerRepo.EXPECT().
		UpdateAuthStatus(2, domain.SellerApproved).
		Return(nil)

	err = service.ApproveSeller(admin, 2)
	assert.NoError(t, err)
}
