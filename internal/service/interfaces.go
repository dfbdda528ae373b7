package service

import (
	"context"

	"cardhub/internal/model"
)

// CardService defines card catalog operations
type CardService interface {
	// Search finds cards by case-insensitive name substring
	Search(ctx context.Context, namePattern string) (int, []model.Card, error)

	// GetByID retrieves a card by id
	GetByID(ctx context.Context, id int64) (*model.Card, error)

	// SearchWithInventory finds cards with their sellable stock aggregates
	SearchWithInventory(ctx context.Context, namePattern string) (int, []model.CardWithInventory, error)

	// ImportFromFile bulk-loads the catalog from a Scryfall JSON dump;
	// bad records are skipped, an unreadable source aborts
	ImportFromFile(ctx context.Context, path string) (*model.ImportReport, error)
}

// UserService defines account operations
type UserService interface {
	// Register creates an account; false means the email or username is taken
	Register(ctx context.Context, username, email, passwordHash string) (bool, error)

	// GetByEmail retrieves a user by email
	GetByEmail(ctx context.Context, email string) (*model.User, error)

	// GetByID retrieves a user by id
	GetByID(ctx context.Context, id int64) (*model.User, error)

	// GetByTelegramHandle retrieves a user by telegram username
	GetByTelegramHandle(ctx context.Context, handle string) (*model.User, error)

	// IsTelegramVerified reports telegram verification; unknown handles read as false
	IsTelegramVerified(ctx context.Context, handle string) (bool, error)

	// VerifyTelegram marks a user's telegram link verified
	VerifyTelegram(ctx context.Context, chatID, userID int64) error

	// UpdateTelegramHandle changes the linked telegram username
	UpdateTelegramHandle(ctx context.Context, userID int64, handle string) error

	// UpdateUsername changes the username
	UpdateUsername(ctx context.Context, userID int64, username string) error
}
