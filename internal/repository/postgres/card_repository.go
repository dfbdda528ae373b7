package postgres

import (
	"context"
	"errors"
	"fmt"

	"cardhub/internal/model"
	"cardhub/internal/repository"

	"github.com/jackc/pgx/v5"
)

// Ensure implementation satisfies interface at compile time
var _ repository.CardRepository = (*CardRepositoryImpl)(nil)

const cardColumns = `id, color, set_code, set_name, collector_number, name, card_type,
		image_url_small, image_url_normal, image_url_large, created_at, updated_at`

// CardRepositoryImpl is the PostgreSQL implementation of CardRepository
type CardRepositoryImpl struct {
	*TransactionManager
}

func NewCardRepository(db ConnectionSource) repository.CardRepository {
	return &CardRepositoryImpl{
		TransactionManager: NewTransactionManager(db),
	}
}

// Insert creates a new card row inside the caller's transaction. The
// import pipeline opens one transaction per record so that a failed
// insert rolls back alone.
func (r *CardRepositoryImpl) Insert(ctx context.Context, card *model.Card, tx pgx.Tx) error {
	query := `
        INSERT INTO cards (color, set_code, set_name, collector_number, name,
            card_type, image_url_small, image_url_normal, image_url_large)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id, created_at, updated_at`

	err := tx.QueryRow(ctx, query,
		card.Color, card.SetCode, card.SetName, card.CollectorNumber, card.Name,
		card.CardType, card.ImageURLSmall, card.ImageURLNormal, card.ImageURLLarge).
		Scan(&card.ID, &card.CreatedAt, &card.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert card: %w", err)
	}
	return nil
}

// GetByID retrieves a single card by id
func (r *CardRepositoryImpl) GetByID(ctx context.Context, id int64) (*model.Card, error) {
	query := `SELECT ` + cardColumns + ` FROM cards WHERE id = $1`

	var card model.Card
	err := r.WithTransaction(ctx, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, query, id)
		if err != nil {
			return fmt.Errorf("failed to query card: %w", err)
		}

		card, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Card])
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return model.ErrCardNotFound
			}
			return fmt.Errorf("failed to scan card: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &card, nil
}

// SearchByName performs a case-insensitive substring match on card names
func (r *CardRepositoryImpl) SearchByName(ctx context.Context, namePattern string) (int, []model.Card, error) {
	query := `SELECT ` + cardColumns + ` FROM cards WHERE name ILIKE $1`

	var cards []model.Card
	err := r.WithTransaction(ctx, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, query, "%"+namePattern+"%")
		if err != nil {
			return fmt.Errorf("failed to query cards: %w", err)
		}

		cards, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Card])
		if err != nil {
			return fmt.Errorf("failed to scan cards: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, nil, err
	}

	return len(cards), cards, nil
}

// SearchWithInventory joins the name search against sellable stock.
// The join is deliberately a LEFT JOIN: a card with no stock is still a
// valid hit and comes back with zero quantity, nil price and no qualities.
func (r *CardRepositoryImpl) SearchWithInventory(ctx context.Context, namePattern string) (int, []model.CardWithInventory, error) {
	query := `
        SELECT
            c.id,
            c.color,
            c.set_code,
            c.set_name,
            c.collector_number,
            c.name,
            c.card_type,
            c.image_url_small,
            c.image_url_normal,
            c.image_url_large,
            c.created_at,
            c.updated_at,
            COALESCE(SUM(ci.quantity), 0) AS total_quantity,
            MIN(CASE WHEN ci.quantity > 0 THEN ci.price END) AS min_price,
            ARRAY_AGG(DISTINCT ci.quality) FILTER (WHERE ci.quantity > 0) AS available_qualities
        FROM cards c
        LEFT JOIN card_inventory ci ON c.id = ci.card_id
            AND ci.quantity > 0
            AND ci.quality = ANY($2)
        WHERE c.name ILIKE $1
        GROUP BY c.id
        ORDER BY c.name, c.set_name`

	qualities := make([]string, len(model.StandardQualities))
	for i, q := range model.StandardQualities {
		qualities[i] = string(q)
	}

	var cards []model.CardWithInventory
	err := r.WithTransaction(ctx, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, query, "%"+namePattern+"%", qualities)
		if err != nil {
			return fmt.Errorf("failed to query cards with inventory: %w", err)
		}

		cards, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.CardWithInventory])
		if err != nil {
			return fmt.Errorf("failed to scan cards with inventory: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, nil, err
	}

	return len(cards), cards, nil
}
