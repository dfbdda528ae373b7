package repository

import (
	"context"

	"cardhub/internal/model"

	"github.com/jackc/pgx/v5"
)

// DBManager provides database transaction management
type DBManager interface {
	// WithTransaction executes a function within a database transaction
	WithTransaction(ctx context.Context, fn func(pgx.Tx) error) error
}

// CardRepository defines operations over the card catalog
type CardRepository interface {
	// Insert creates one card row inside the caller's transaction
	Insert(ctx context.Context, card *model.Card, tx pgx.Tx) error

	// GetByID retrieves a card by id or model.ErrCardNotFound
	GetByID(ctx context.Context, id int64) (*model.Card, error)

	// SearchByName finds cards whose name contains the pattern, case-insensitively
	SearchByName(ctx context.Context, namePattern string) (int, []model.Card, error)

	// SearchWithInventory runs the same name filter joined with sellable
	// stock aggregates; cards with no stock still appear
	SearchWithInventory(ctx context.Context, namePattern string) (int, []model.CardWithInventory, error)
}

// UserRepository defines operations for account management
type UserRepository interface {
	// Create inserts a new user; a unique violation surfaces as model.ErrDuplicateUser
	Create(ctx context.Context, username, email, passwordHash, verificationToken string) error

	// GetByEmail retrieves a user by email or model.ErrUserNotFound
	GetByEmail(ctx context.Context, email string) (*model.User, error)

	// GetByID retrieves a user by id or model.ErrUserNotFound
	GetByID(ctx context.Context, id int64) (*model.User, error)

	// GetByTelegramHandle retrieves a user by telegram username or model.ErrUserNotFound
	GetByTelegramHandle(ctx context.Context, handle string) (*model.User, error)

	// IsTelegramVerified reports whether the handle belongs to a verified
	// user; unknown handles read as unverified
	IsTelegramVerified(ctx context.Context, handle string) (bool, error)

	// VerifyTelegram marks the user verified and records the chat id;
	// an unknown id is a no-op
	VerifyTelegram(ctx context.Context, chatID, userID int64) error

	// UpdateTelegramHandle sets the telegram username; an unknown id is a no-op
	UpdateTelegramHandle(ctx context.Context, userID int64, handle string) error

	// UpdateUsername sets the username; an unknown id is a no-op
	UpdateUsername(ctx context.Context, userID int64, username string) error
}
