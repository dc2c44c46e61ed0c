package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/emonterozo/MilkteaBackend/internal/auth"
	"github.com/emonterozo/MilkteaBackend/internal/models"
	"github.com/emonterozo/MilkteaBackend/internal/storage"
	"github.com/google/uuid"
)

var (
	ErrInvalidRequest     = errors.New("invalid request")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountNotFound    = errors.New("account does not exist")
)

// invalid оборачивает ошибку валидации запроса в ErrInvalidRequest.
func invalid(err error) error {
	return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
}

// tokenIssuer выпускает JWT токены продавцам и магазинам.
type tokenIssuer struct {
	secret     string
	expiration time.Duration
}

func (t tokenIssuer) issue(p auth.Principal) (string, error) {
	exp := t.expiration
	if exp <= 0 {
		exp = 24 * time.Hour
	}
	token, err := auth.GenerateToken(p, t.secret, exp)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

// UserService определяет интерфейс для работы с продавцами.
type UserService interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.UserAuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.UserAuthResponse, error)
	SocialLogin(ctx context.Context, req models.SocialLoginRequest) (*models.UserAuthResponse, error)
}

// UserServiceImpl реализует UserService.
type UserServiceImpl struct {
	userStorage storage.UserStorage
	tokens      tokenIssuer
}

// NewUserService создаёт новый экземпляр UserService.
func NewUserService(userStorage storage.UserStorage, jwtSecret string, tokenExpiration time.Duration) *UserServiceImpl {
	return &UserServiceImpl{
		userStorage: userStorage,
		tokens:      tokenIssuer{secret: jwtSecret, expiration: tokenExpiration},
	}
}

// Register регистрирует продавца с email и паролем.
func (s *UserServiceImpl) Register(ctx context.Context, req models.RegisterRequest) (*models.UserAuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, invalid(err)
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrPasswordTooLong) {
			return nil, invalid(err)
		}
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.New(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: &passwordHash,
		Provider:     models.ProviderEmail,
	}

	if err := s.userStorage.Create(ctx, user); err != nil {
		if errors.Is(err, storage.ErrEmailExists) {
			return nil, storage.ErrEmailExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.respond(user)
}

// Login аутентифицирует продавца по email и паролю.
func (s *UserServiceImpl) Login(ctx context.Context, req models.LoginRequest) (*models.UserAuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, invalid(err)
	}

	user, err := s.userStorage.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if user.PasswordHash == nil || !auth.CheckPassword(req.Password, *user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return s.respond(user)
}

// SocialLogin входит через внешнего провайдера. Неизвестный продавец создаётся без пароля.
func (s *UserServiceImpl) SocialLogin(ctx context.Context, req models.SocialLoginRequest) (*models.UserAuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, invalid(err)
	}

	user, err := s.userStorage.GetByIdentifier(ctx, req.Provider, req.Identifier)
	if err == nil {
		return s.respond(user)
	}
	if !errors.Is(err, storage.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	identifier := req.Identifier
	user = &models.User{
		ID:         uuid.New(),
		Name:       req.Name,
		Email:      req.Email,
		Provider:   req.Provider,
		Identifier: &identifier,
	}
	if err := s.userStorage.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.respond(user)
}

func (s *UserServiceImpl) respond(user *models.User) (*models.UserAuthResponse, error) {
	token, err := s.tokens.issue(auth.SellerPrincipal(user))
	if err != nil {
		return nil, err
	}
	return &models.UserAuthResponse{User: user, Token: token}, nil
}
