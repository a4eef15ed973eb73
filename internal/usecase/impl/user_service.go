package impl

import (
	"context"
	"strings"
	"time"

	"wrench/internal/domain/entity"
	domainerrors "wrench/internal/domain/errors"
	"wrench/internal/domain/repository"
	"wrench/internal/domain/service"
	"wrench/internal/errors"
	"wrench/internal/usecase"

	"github.com/google/uuid"
)

type userService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	tokenSvc service.TokenService
}

// NewUserService creates the account use case.
func NewUserService(
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	tokenSvc service.TokenService,
) usecase.UserUsecase {
	return &userService{
		userRepo: userRepo,
		hasher:   hasher,
		tokenSvc: tokenSvc,
	}
}

// Register creates a new customer or mechanic account. Admin accounts are
// provisioned out of band, never through this endpoint.
func (s *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || input.Name == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("email and name are required")
	}
	if len(input.Password) < 8 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("password must be at least 8 characters")
	}
	role := input.Role
	if role == "" {
		role = entity.RoleCustomer
	}
	if role != entity.RoleCustomer && role != entity.RoleMechanic {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("role must be customer or mechanic")
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        email,
		Name:         input.Name,
		Role:         role,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return nil, domainerrors.ErrEmailTaken.WrapMessage("email is already registered")
		}

		return nil, domainerrors.NewStorageError(err, "failed to create user")
	}

	return user, nil
}

// Login verifies credentials and issues an access token. Unknown emails and
// wrong passwords are indistinguishable to the caller.
func (s *userService) Login(ctx context.Context, email, password string) (*usecase.LoginResult, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("invalid email or password")
		}

		return nil, domainerrors.NewStorageError(err, "failed to find user")
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("invalid email or password")
	}

	token, err := s.tokenSvc.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	return &usecase.LoginResult{User: user, Token: token}, nil
}

// GetProfile returns the user's own account.
func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("user not found")
		}

		return nil, domainerrors.NewStorageError(err, "failed to find user")
	}

	return user, nil
}

// RegisterDeviceToken binds the push token of the user's current device.
func (s *userService) RegisterDeviceToken(ctx context.Context, userID uuid.UUID, token string) error {
	if token == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("device token is required")
	}

	if err := s.userRepo.UpdateFCMToken(ctx, userID, token); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("user not found")
		}

		return domainerrors.NewStorageError(err, "failed to store device token")
	}

	return nil
}
