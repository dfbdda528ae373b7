package model

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type Card struct {
	ID              int64     `db:"id" json:"id"`
	Color           Color     `db:"color" json:"color"`
	SetCode         string    `db:"set_code" json:"set_code"`
	SetName         string    `db:"set_name" json:"set_name"`
	CollectorNumber string    `db:"collector_number" json:"collector_number"`
	Name            string    `db:"name" json:"name"`
	CardType        string    `db:"card_type" json:"card_type"`
	ImageURLSmall   string    `db:"image_url_small" json:"image_url_small"`
	ImageURLNormal  string    `db:"image_url_normal" json:"image_url_normal"`
	ImageURLLarge   string    `db:"image_url_large" json:"image_url_large"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

// CardWithInventory is a card row joined with its sellable stock
// aggregates. A card with no qualifying inventory carries zero quantity,
// a nil price and no qualities.
type CardWithInventory struct {
	Card

	TotalQuantity      int64            `db:"total_quantity" json:"total_quantity"`
	MinPrice           *decimal.Decimal `db:"min_price" json:"min_price"`
	AvailableQualities []string         `db:"available_qualities" json:"available_qualities"`
}

type User struct {
	ID                     int64           `db:"id" json:"id"`
	Email                  string          `db:"email" json:"email"`
	PasswordHash           string          `db:"password_hash" json:"-"`
	Username               string          `db:"username" json:"username"`
	Role                   Role            `db:"role" json:"role"`
	EmailVerified          bool            `db:"email_verified" json:"email_verified"`
	EmailVerificationToken *string         `db:"email_verification_token" json:"-"`
	TelegramChatID         *int64          `db:"telegram_chat_id" json:"telegram_chat_id,omitempty"`
	TelegramUsername       *string         `db:"telegram_username" json:"telegram_username,omitempty"`
	TelegramVerified       bool            `db:"telegram_verified" json:"telegram_verified"`
	ShippingAddress        json.RawMessage `db:"shipping_address" json:"shipping_address,omitempty"`
	CreatedAt              time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt              time.Time       `db:"updated_at" json:"updated_at"`
}

// UserProfile is the outward projection of a user. The password hash
// never crosses the repository boundary through it.
type UserProfile struct {
	ID               int64           `json:"id"`
	Email            string          `json:"email"`
	Username         string          `json:"username"`
	Role             Role            `json:"role"`
	EmailVerified    bool            `json:"email_verified"`
	TelegramUsername *string         `json:"telegram_username,omitempty"`
	TelegramVerified bool            `json:"telegram_verified"`
	ShippingAddress  json.RawMessage `json:"shipping_address,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
}

func (u *User) Profile() UserProfile {
	return UserProfile{
		ID:               u.ID,
		Email:            u.Email,
		Username:         u.Username,
		Role:             u.Role,
		EmailVerified:    u.EmailVerified,
		TelegramUsername: u.TelegramUsername,
		TelegramVerified: u.TelegramVerified,
		ShippingAddress:  u.ShippingAddress,
		CreatedAt:        u.CreatedAt,
	}
}

// ImportReport summarizes a bulk catalog import. Failed records are
// logged and skipped; they never abort the batch.
type ImportReport struct {
	Total    int `json:"total"`
	Imported int `json:"imported"`
	Failed   int `json:"failed"`
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type RegisterResponse struct {
	Status  string `json:"status" example:"registered"`
	Message string `json:"message,omitempty"`
}

type CardSearchResponse struct {
	Count int    `json:"count"`
	Cards []Card `json:"cards"`
}

type InventorySearchResponse struct {
	Count int                 `json:"count"`
	Cards []CardWithInventory `json:"cards"`
}

type ImportRequest struct {
	FilePath string `json:"file_path" binding:"required"`
}

type VerifyTelegramRequest struct {
	ChatID int64 `json:"chat_id" binding:"required"`
	UserID int64 `json:"user_id" binding:"required"`
}

type UpdateTelegramHandleRequest struct {
	TelegramUsername string `json:"telegram_username" binding:"required"`
}

type UpdateUsernameRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"user not found"`
	Code    string `json:"code,omitempty" example:"USER_NOT_FOUND"`
	Details string `json:"details,omitempty"`
}
