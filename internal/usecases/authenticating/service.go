package authenticating

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/brassertech/vendas-api/infrastructure/repository"
	"github.com/brassertech/vendas-api/internal/config"
	"github.com/brassertech/vendas-api/internal/domain"
	"github.com/brassertech/vendas-api/pkg/apiErrors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type Authenticator interface {
	RegisterSeller(name, email, password string) (*domain.User, error)
	LoginUser(email, password string) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
	GetUserProfile(userID int) (*domain.User, error)
	ListUsers(actor domain.Actor) ([]*domain.User, error)
	UpdateUser(actor domain.Actor, req *domain.UpdateUserRequest) error
	ListSellers(authStatus int) ([]*domain.Seller, error)
	ApproveSeller(actor domain.Actor, sellerID int) error
}

type Service struct {
	userRepo   repository.UserRepository
	sellerRepo repository.SellerRepository
	cfg        *config.Config
}

func NewService(userRepo repository.UserRepository, sellerRepo repository.SellerRepository, cfg *config.Config) Authenticator {
	return &Service{
		userRepo:   userRepo,
		sellerRepo: sellerRepo,
		cfg:        cfg,
	}
}

// RegisterSeller cria o usuário (cargo Vendedor) e o vínculo de vendedor
// pendente de aprovação. O vendedor só entra no ranking e consegue logar
// depois que um administrador aprovar o cadastro.
func (s *Service) RegisterSeller(name, email, password string) (*domain.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Nome, email e senha são obrigatórios")
	}

	email = handleEmail(email)

	user, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}

	// Usuário pode já existir sem vínculo de vendedor
	if user == nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}

		user = &domain.User{
			Name:         name,
			Email:        email,
			PasswordHash: string(hashedPassword),
			Active:       true,
			RoleID:       domain.RoleSeller,
		}

		user, err = s.userRepo.CreateUser(user)
		if err != nil {
			return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao criar usuário")
		}
	}

	seller, err := s.sellerRepo.GetSellerByUserID(user.ID)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar vendedor no banco de dados")
	}
	if seller != nil {
		return nil, NewUserAuthError(ErrSellerAlreadyExists, apiErrors.ErrUserAlreadyExists, user.ID, "Este email já possui um cadastro de vendedor")
	}

	_, err = s.sellerRepo.CreateSeller(&domain.Seller{
		Name:       name,
		Email:      email,
		UserID:     user.ID,
		AuthStatus: domain.SellerPending,
		TotalSales: 0,
	})
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao criar vendedor")
	}

	user.PasswordHash = ""
	return user, nil
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}

func (s *Service) LoginUser(email, password string) (string, error) {
	// Validação de entrada
	if email == "" || password == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email e senha são obrigatórios")
	}

	email = handleEmail(email)

	user, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}

	if user == nil {
		return "", NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "Usuário não encontrado")
	}

	if !user.Active {
		return "", NewUserAuthError(ErrUserDisabled, apiErrors.ErrUserDisabled, user.ID, "Conta desativada")
	}

	// Verificar senha
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, user.ID, "Senha incorreta")
	}

	// Quem não é administrador precisa ter perfil de vendedor aprovado
	if user.RoleID != domain.RoleAdmin {
		seller, err := s.sellerRepo.GetSellerByUserID(user.ID)
		if err != nil {
			return "", NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar vendedor no banco de dados")
		}
		if seller == nil {
			return "", NewUserAuthError(ErrSellerNotFound, apiErrors.ErrUserDisabled, user.ID, "Usuário sem perfil de vendedor configurado")
		}
		if !seller.IsApproved() {
			return "", NewUserAuthError(ErrSellerPending, apiErrors.ErrUserDisabled, user.ID, "Cadastro em análise. Aguarde aprovação do administrador")
		}
	}

	token, err := generateJWT(user, s.cfg.SecretKey)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	return token, nil
}

func (s *Service) GetUserProfile(userID int) (*domain.User, error) {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		logrus.Error(err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	user.PasswordHash = ""
	return user, nil
}

func generateJWT(user *domain.User, secretKey string) (string, error) {
	claims := domain.Claims{
		UserID:     user.ID,
		UserName:   user.Name,
		UserEmail:  user.Email,
		UserActive: user.Active,
		UserRoleID: user.RoleID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secretKey))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*domain.Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}

// ListUsers lista as contas de usuário. Restrito a administradores.
func (s *Service) ListUsers(actor domain.Actor) ([]*domain.User, error) {
	if !actor.IsAdmin() {
		return nil, NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInsufficientPrivilege, actor.UserID, "Apenas administradores podem listar usuários")
	}

	users, err := s.userRepo.ListUsers()
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao listar usuários")
	}

	return users, nil
}

// UpdateUser altera dados de uma conta de usuário. É a operação usada pelo
// administrador para desativar contas, inclusive ao rejeitar um cadastro de
// vendedor pendente.
func (s *Service) UpdateUser(actor domain.Actor, req *domain.UpdateUserRequest) error {
	if !actor.IsAdmin() {
		return NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInsufficientPrivilege, actor.UserID, "Apenas administradores podem alterar usuários")
	}

	user, err := s.userRepo.GetUserByID(req.ID)
	if err != nil {
		return NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}
	if user == nil {
		return ErrUserNotFound
	}

	if req.Name != nil {
		user.Name = *req.Name
	}

	if req.Email != nil {
		user.Email = handleEmail(*req.Email)
	}

	if req.Active != nil {
		user.Active = *req.Active
	}

	if req.RoleID != nil {
		user.RoleID = *req.RoleID
	}

	if err := s.userRepo.UpdateUser(user); err != nil {
		return NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao atualizar usuário")
	}

	logrus.Infof("Usuário %d atualizado pelo administrador %d", user.ID, actor.UserID)
	return nil
}

// ListSellers lista os vendedores, opcionalmente filtrando pelo status de
// autorização. É a fonte dos filtros de vendedor das telas do administrador.
func (s *Service) ListSellers(authStatus int) ([]*domain.Seller, error) {
	sellers, err := s.sellerRepo.ListSellers(authStatus)
	if err != nil {
		return nil, err
	}

	return sellers, nil
}

// ApproveSeller aprova um cadastro de vendedor pendente. Apenas
// administradores podem aprovar.
func (s *Service) ApproveSeller(actor domain.Actor, sellerID int) error {
	if !actor.IsAdmin() {
		return NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInsufficientPrivilege, actor.UserID, "Apenas administradores podem aprovar vendedores")
	}

	if err := s.sellerRepo.UpdateAuthStatus(sellerID, domain.SellerApproved); err != nil {
		return NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao aprovar vendedor")
	}

	logrus.Infof("Vendedor %d aprovado pelo usuário %d", sellerID, actor.UserID)
	return nil
}
