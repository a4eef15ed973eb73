package usecase

import (
	"context"

	"wrench/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterInput creates a new account.
type RegisterInput struct {
	Email    string
	Name     string
	Password string
	Role     entity.Role
}

// LoginResult carries the authenticated user and its access token.
type LoginResult struct {
	User  *entity.User `json:"user"`
	Token string       `json:"token"`
}

// UserUsecase covers the minimal account operations the marketplace core
// needs: registration, login and device push-token binding.
type UserUsecase interface {
	// Register creates a new customer or mechanic account.
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)

	// Login verifies credentials and issues an access token.
	Login(ctx context.Context, email, password string) (*LoginResult, error)

	// GetProfile returns the user's own account.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// RegisterDeviceToken binds the push token of the user's current device.
	RegisterDeviceToken(ctx context.Context, userID uuid.UUID, token string) error
}
