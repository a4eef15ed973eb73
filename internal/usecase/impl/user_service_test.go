package impl

import (
	"context"
	"testing"

	"wrench/internal/domain/entity"
	domainerrors "wrench/internal/domain/errors"
	"wrench/internal/domain/repository"
	mockRepo "wrench/internal/mocks/repository"
	mockSvc "wrench/internal/mocks/service"
	"wrench/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestUserService(t *testing.T) (
	usecase.UserUsecase,
	*mockRepo.MockUserRepository,
	*mockSvc.MockPasswordHasher,
	*mockSvc.MockTokenService,
) {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenSvc := mockSvc.NewMockTokenService(t)

	service := NewUserService(userRepo, hasher, tokenSvc)

	return service, userRepo, hasher, tokenSvc
}

func TestUserService_Register_NormalizesEmail(t *testing.T) {
	service, userRepo, hasher, _ := createTestUserService(t)

	ctx := context.Background()

	hasher.EXPECT().Hash("hunter2hunter2").Return("$2a$hash", nil)
	userRepo.EXPECT().
		CreateUser(ctx, mock.Anything).
		Run(func(_ context.Context, u *entity.User) {
			assert.Equal(t, "jo@example.com", u.Email)
			assert.Equal(t, "$2a$hash", u.PasswordHash)
		}).
		Return(nil)

	user, err := service.Register(ctx, &usecase.RegisterInput{
		Email:    "  Jo@Example.COM ",
		Name:     "Jo",
		Password: "hunter2hunter2",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleCustomer, user.Role, "role defaults to customer")
}

func TestUserService_Register_ShortPassword(t *testing.T) {
	service, _, _, _ := createTestUserService(t)

	_, err := service.Register(context.Background(), &usecase.RegisterInput{
		Email:    "jo@example.com",
		Name:     "Jo",
		Password: "short",
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_Register_AdminRoleRejected(t *testing.T) {
	service, _, _, _ := createTestUserService(t)

	_, err := service.Register(context.Background(), &usecase.RegisterInput{
		Email:    "jo@example.com",
		Name:     "Jo",
		Password: "hunter2hunter2",
		Role:     entity.RoleAdmin,
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_Register_EmailTaken(t *testing.T) {
	service, userRepo, hasher, _ := createTestUserService(t)

	ctx := context.Background()

	hasher.EXPECT().Hash(mock.Anything).Return("$2a$hash", nil)
	userRepo.EXPECT().CreateUser(ctx, mock.Anything).Return(repository.ErrEmailExists)

	_, err := service.Register(ctx, &usecase.RegisterInput{
		Email:    "jo@example.com",
		Name:     "Jo",
		Password: "hunter2hunter2",
	})

	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestUserService_Login_Success(t *testing.T) {
	service, userRepo, hasher, tokenSvc := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "jo@example.com", Role: entity.RoleMechanic, PasswordHash: "$2a$hash"}

	userRepo.EXPECT().FindUserByEmail(ctx, "jo@example.com").Return(user, nil)
	hasher.EXPECT().Compare("$2a$hash", "hunter2hunter2").Return(nil)
	tokenSvc.EXPECT().GenerateToken(user.ID, entity.RoleMechanic).Return("signed.jwt", nil)

	result, err := service.Login(ctx, "Jo@Example.com", "hunter2hunter2")

	require.NoError(t, err)
	assert.Equal(t, "signed.jwt", result.Token)
	assert.Equal(t, user.ID, result.User.ID)
}

func TestUserService_Login_UnknownEmailAndWrongPasswordLookAlike(t *testing.T) {
	service, userRepo, hasher, _ := createTestUserService(t)

	ctx := context.Background()

	userRepo.EXPECT().FindUserByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	_, unknownErr := service.Login(ctx, "ghost@example.com", "whatever1")
	assert.ErrorIs(t, unknownErr, domainerrors.ErrInvalidCredentials)

	user := &entity.User{ID: uuid.New(), PasswordHash: "$2a$hash"}
	userRepo.EXPECT().FindUserByEmail(ctx, "jo@example.com").Return(user, nil)
	hasher.EXPECT().Compare("$2a$hash", "wrongpass").Return(assert.AnError)

	_, wrongErr := service.Login(ctx, "jo@example.com", "wrongpass")
	assert.ErrorIs(t, wrongErr, domainerrors.ErrInvalidCredentials)
}

func TestUserService_RegisterDeviceToken(t *testing.T) {
	service, userRepo, _, _ := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	userRepo.EXPECT().UpdateFCMToken(ctx, userID, "fcm-token").Return(nil)

	require.NoError(t, service.RegisterDeviceToken(ctx, userID, "fcm-token"))

	err := service.RegisterDeviceToken(ctx, userID, "")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
