package service

import (
	"context"
	"errors"
	"testing"

	"cardhub/internal/model"
	"cardhub/mocks/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegister_HappyPath(t *testing.T) {
	ctx := context.Background()

	mockUserRepo := mocks.NewUserRepository(t)
	mockUserRepo.On("Create", ctx, "bob", "bob@x.com", "hashed-secret", mock.MatchedBy(func(token string) bool {
		_, err := uuid.Parse(token)
		return err == nil
	})).Return(nil)

	service := NewUserService(mockUserRepo, zerolog.Nop())

	ok, err := service.Register(ctx, "bob", "bob@x.com", "hashed-secret")

	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRegister_DuplicateDegradesToFalse(t *testing.T) {
	ctx := context.Background()

	mockUserRepo := mocks.NewUserRepository(t)
	mockUserRepo.On("Create", ctx, "bob", "bob@x.com", "hashed-secret", mock.Anything).
		Return(model.ErrDuplicateUser)

	service := NewUserService(mockUserRepo, zerolog.Nop())

	ok, err := service.Register(ctx, "bob", "bob@x.com", "hashed-secret")

	// A lost uniqueness race is a false result, not an error
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRegister_RealFailurePropagates(t *testing.T) {
	ctx := context.Background()

	dbErr := errors.New("connection reset")
	mockUserRepo := mocks.NewUserRepository(t)
	mockUserRepo.On("Create", ctx, "bob", "bob@x.com", "hashed-secret", mock.Anything).Return(dbErr)

	service := NewUserService(mockUserRepo, zerolog.Nop())

	ok, err := service.Register(ctx, "bob", "bob@x.com", "hashed-secret")

	require.ErrorIs(t, err, dbErr)
	assert.False(t, ok)
}

func TestGetByEmail_NotFoundIsExplicit(t *testing.T) {
	ctx := context.Background()

	mockUserRepo := mocks.NewUserRepository(t)
	mockUserRepo.On("GetByEmail", ctx, "ghost@x.com").Return(nil, model.ErrUserNotFound)

	service := NewUserService(mockUserRepo, zerolog.Nop())

	user, err := service.GetByEmail(ctx, "ghost@x.com")

	require.ErrorIs(t, err, model.ErrUserNotFound)
	assert.Nil(t, user)
}

func TestGetByID_ValidRolePassesThrough(t *testing.T) {
	ctx := context.Background()

	mockUserRepo := mocks.NewUserRepository(t)
	mockUserRepo.On("GetByID", ctx, int64(4)).Return(&model.User{
		ID: 4, Username: "bob", Role: model.RoleModerator,
	}, nil)

	service := NewUserService(mockUserRepo, zerolog.Nop())

	user, err := service.GetByID(ctx, 4)

	require.NoError(t, err)
	assert.Equal(t, model.RoleModerator, user.Role)
}

func TestGetByID_UnknownRoleIsRejected(t *testing.T) {
	ctx := context.Background()

	mockUserRepo := mocks.NewUserRepository(t)
	mockUserRepo.On("GetByID", ctx, int64(4)).Return(&model.User{
		ID: 4, Username: "bob", Role: "superuser",
	}, nil)

	service := NewUserService(mockUserRepo, zerolog.Nop())

	user, err := service.GetByID(ctx, 4)

	require.ErrorIs(t, err, model.ErrInvalidRole)
	assert.Nil(t, user)
}

func TestIsTelegramVerified_UnknownHandleIsFalse(t *testing.T) {
	ctx := context.Background()

	mockUserRepo := mocks.NewUserRepository(t)
	mockUserRepo.On("IsTelegramVerified", ctx, "ghost").Return(false, nil)

	service := NewUserService(mockUserRepo, zerolog.Nop())

	verified, err := service.IsTelegramVerified(ctx, "ghost")

	require.NoError(t, err)
	assert.False(t, verified)
}

func TestVerifyTelegram(t *testing.T) {
	ctx := context.Background()

	mockUserRepo := mocks.NewUserRepository(t)
	mockUserRepo.On("VerifyTelegram", ctx, int64(99887766), int64(4)).Return(nil)

	service := NewUserService(mockUserRepo, zerolog.Nop())

	require.NoError(t, service.VerifyTelegram(ctx, 99887766, 4))
}

func TestUpdateUsername(t *testing.T) {
	ctx := context.Background()

	mockUserRepo := mocks.NewUserRepository(t)
	mockUserRepo.On("UpdateUsername", ctx, int64(4), "bobby").Return(nil)

	service := NewUserService(mockUserRepo, zerolog.Nop())

	require.NoError(t, service.UpdateUsername(ctx, 4, "bobby"))
}
