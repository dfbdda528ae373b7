package postgres

import (
	"context"
	"errors"
	"fmt"

	"cardhub/internal/model"
	"cardhub/internal/repository"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Ensure implementation satisfies interface at compile time
var _ repository.UserRepository = (*UserRepositoryImpl)(nil)

const userColumns = `id, email, password_hash, username, role, email_verified,
		email_verification_token, telegram_chat_id, telegram_username, telegram_verified,
		shipping_address, created_at, updated_at`

// UserRepositoryImpl is the PostgreSQL implementation of UserRepository
type UserRepositoryImpl struct {
	*TransactionManager
}

func NewUserRepository(db ConnectionSource) repository.UserRepository {
	return &UserRepositoryImpl{
		TransactionManager: NewTransactionManager(db),
	}
}

// Create inserts a new user with the default role. A concurrent signup
// with the same email or username surfaces as model.ErrDuplicateUser
// after rollback.
func (r *UserRepositoryImpl) Create(ctx context.Context, username, email, passwordHash, verificationToken string) error {
	query := `
        INSERT INTO users (username, email, password_hash, email_verification_token)
        VALUES ($1, $2, $3, $4)`

	return r.WithTransaction(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, query, username, email, passwordHash, verificationToken)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
				return model.ErrDuplicateUser
			}
			return fmt.Errorf("failed to insert user: %w", err)
		}
		return nil
	})
}

// GetByEmail retrieves a user by email
func (r *UserRepositoryImpl) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.getOne(ctx, query, email)
}

// GetByID retrieves a user by id
func (r *UserRepositoryImpl) GetByID(ctx context.Context, id int64) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.getOne(ctx, query, id)
}

// GetByTelegramHandle retrieves a user by telegram username
func (r *UserRepositoryImpl) GetByTelegramHandle(ctx context.Context, handle string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE telegram_username = $1`
	return r.getOne(ctx, query, handle)
}

func (r *UserRepositoryImpl) getOne(ctx context.Context, query string, arg any) (*model.User, error) {
	var user model.User
	err := r.WithTransaction(ctx, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, query, arg)
		if err != nil {
			return fmt.Errorf("failed to query user: %w", err)
		}

		user, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return model.ErrUserNotFound
			}
			return fmt.Errorf("failed to scan user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// IsTelegramVerified reports whether the handle belongs to a verified
// user. An unknown handle reads as unverified; callers that need the
// distinction use GetByTelegramHandle.
func (r *UserRepositoryImpl) IsTelegramVerified(ctx context.Context, handle string) (bool, error) {
	query := `SELECT telegram_verified FROM users WHERE telegram_username = $1`

	var verified bool
	err := r.WithTransaction(ctx, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, query, handle).Scan(&verified)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				verified = false
				return nil
			}
			return fmt.Errorf("failed to check telegram verification: %w", err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return verified, nil
}

// VerifyTelegram marks the user verified and records the chat id
func (r *UserRepositoryImpl) VerifyTelegram(ctx context.Context, chatID, userID int64) error {
	query := `
        UPDATE users
        SET telegram_verified = TRUE, telegram_chat_id = $1, updated_at = NOW()
        WHERE id = $2`

	return r.exec(ctx, query, chatID, userID)
}

// UpdateTelegramHandle sets the telegram username for a user
func (r *UserRepositoryImpl) UpdateTelegramHandle(ctx context.Context, userID int64, handle string) error {
	query := `
        UPDATE users
        SET telegram_username = $1, telegram_verified = FALSE, updated_at = NOW()
        WHERE id = $2`

	return r.exec(ctx, query, handle, userID)
}

// UpdateUsername sets the username for a user
func (r *UserRepositoryImpl) UpdateUsername(ctx context.Context, userID int64, username string) error {
	query := `
        UPDATE users
        SET username = $1, updated_at = NOW()
        WHERE id = $2`

	return r.exec(ctx, query, username, userID)
}

// exec runs a single-row update; zero rows affected is a no-op, not an error.
func (r *UserRepositoryImpl) exec(ctx context.Context, query string, args ...any) error {
	return r.WithTransaction(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, query, args...)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
				return model.ErrDuplicateUser
			}
			return fmt.Errorf("failed to update user: %w", err)
		}
		return nil
	})
}
