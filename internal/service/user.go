package service

import (
	"context"
	"errors"
	"fmt"

	"cardhub/internal/model"
	"cardhub/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type UserServiceImpl struct {
	userRepo repository.UserRepository
	logger   zerolog.Logger
}

func NewUserService(userRepo repository.UserRepository, logger zerolog.Logger) UserService {
	return &UserServiceImpl{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Register creates an account with a fresh email verification token.
// Callers are expected to have checked for an existing email, but a
// losing race degrades to a false result instead of an error.
func (s *UserServiceImpl) Register(ctx context.Context, username, email, passwordHash string) (bool, error) {
	token := uuid.New().String()

	err := s.userRepo.Create(ctx, username, email, passwordHash, token)
	if err != nil {
		if errors.Is(err, model.ErrDuplicateUser) {
			s.logger.Warn().Str("email", email).Str("username", username).Msg("registration hit an existing user")
			return false, nil
		}
		return false, err
	}

	s.logger.Info().Str("email", email).Str("username", username).Msg("user registered")
	return true, nil
}

func (s *UserServiceImpl) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.checkRole(s.userRepo.GetByEmail(ctx, email))
}

func (s *UserServiceImpl) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return s.checkRole(s.userRepo.GetByID(ctx, id))
}

func (s *UserServiceImpl) GetByTelegramHandle(ctx context.Context, handle string) (*model.User, error) {
	return s.checkRole(s.userRepo.GetByTelegramHandle(ctx, handle))
}

// checkRole rejects rows carrying a role the application does not know,
// e.g. after a schema migration widened the column's CHECK list.
func (s *UserServiceImpl) checkRole(user *model.User, err error) (*model.User, error) {
	if err != nil {
		return nil, err
	}
	if _, err := model.ParseRole(string(user.Role)); err != nil {
		return nil, fmt.Errorf("%w: %q", err, user.Role)
	}
	return user, nil
}

func (s *UserServiceImpl) IsTelegramVerified(ctx context.Context, handle string) (bool, error) {
	return s.userRepo.IsTelegramVerified(ctx, handle)
}

func (s *UserServiceImpl) VerifyTelegram(ctx context.Context, chatID, userID int64) error {
	if err := s.userRepo.VerifyTelegram(ctx, chatID, userID); err != nil {
		return err
	}
	s.logger.Info().Int64("user_id", userID).Int64("chat_id", chatID).Msg("telegram verified")
	return nil
}

func (s *UserServiceImpl) UpdateTelegramHandle(ctx context.Context, userID int64, handle string) error {
	return s.userRepo.UpdateTelegramHandle(ctx, userID, handle)
}

func (s *UserServiceImpl) UpdateUsername(ctx context.Context, userID int64, username string) error {
	return s.userRepo.UpdateUsername(ctx, userID, username)
}
