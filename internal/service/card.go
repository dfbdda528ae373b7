package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"cardhub/internal/catalog"
	"cardhub/internal/model"
	"cardhub/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

type CardServiceImpl struct {
	cardRepo  repository.CardRepository
	dbManager repository.DBManager
	logger    zerolog.Logger
}

func NewCardService(
	cardRepo repository.CardRepository,
	dbManager repository.DBManager,
	logger zerolog.Logger,
) CardService {
	return &CardServiceImpl{
		cardRepo:  cardRepo,
		dbManager: dbManager,
		logger:    logger,
	}
}

func (s *CardServiceImpl) Search(ctx context.Context, namePattern string) (int, []model.Card, error) {
	return s.cardRepo.SearchByName(ctx, namePattern)
}

func (s *CardServiceImpl) GetByID(ctx context.Context, id int64) (*model.Card, error) {
	return s.cardRepo.GetByID(ctx, id)
}

func (s *CardServiceImpl) SearchWithInventory(ctx context.Context, namePattern string) (int, []model.CardWithInventory, error) {
	return s.cardRepo.SearchWithInventory(ctx, namePattern)
}

// ImportFromFile streams the bulk JSON array and inserts each record
// inside its own transaction, so one bad record rolls back alone and the
// batch continues. An unreadable or malformed source wraps
// model.ErrSourceRead and aborts; records already committed stay.
func (s *CardServiceImpl) ImportFromFile(ctx context.Context, path string) (*model.ImportReport, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrSourceRead, err)
	}
	defer file.Close()

	dec := json.NewDecoder(file)

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrSourceRead, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return nil, fmt.Errorf("%w: expected a JSON array, got %v", model.ErrSourceRead, tok)
	}

	report := &model.ImportReport{}
	for dec.More() {
		var raw catalog.RawCard
		if err := dec.Decode(&raw); err != nil {
			return report, fmt.Errorf("%w: %v", model.ErrSourceRead, err)
		}
		report.Total++

		card := catalog.TransformCardData(raw)
		err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
			return s.cardRepo.Insert(ctx, &card, tx)
		})
		if err != nil {
			report.Failed++
			s.logger.Error().Err(err).Interface("card", card).Msg("failed to import card")
			continue
		}
		report.Imported++
	}

	s.logger.Info().
		Str("path", path).
		Int("total", report.Total).
		Int("imported", report.Imported).
		Int("failed", report.Failed).
		Msg("catalog import finished")
	return report, nil
}
