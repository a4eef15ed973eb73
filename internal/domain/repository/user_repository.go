package repository

import (
	"context"
	"errors"

	"wrench/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailExists is returned when the email is already registered.
	ErrEmailExists = errors.New("email already registered")
)

// UserRepository persists accounts. Rating aggregate columns are written only
// through UpdateMechanicRating, which the review service owns.
type UserRepository interface {
	// CreateUser persists a new user account.
	CreateUser(ctx context.Context, user *entity.User) error

	// FindUserByID retrieves a user by its unique ID.
	FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindUserByEmail retrieves a user by email.
	FindUserByEmail(ctx context.Context, email string) (*entity.User, error)

	// UpdateFCMToken stores the push token of the user's current device.
	UpdateFCMToken(ctx context.Context, id uuid.UUID, token string) error

	// UpdateMechanicRating writes the denormalized review aggregate fields.
	UpdateMechanicRating(ctx context.Context, mechanicID uuid.UUID, average float64, total int64) error
}
