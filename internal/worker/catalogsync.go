package worker

import (
	"context"
	"sync"
	"time"

	"cardhub/internal/service"

	"github.com/rs/zerolog"
)

// CatalogSyncWorker re-imports the Scryfall bulk file on an interval.
// The dump updates daily upstream; the per-record transaction scope in
// the import pipeline makes re-runs safe to interleave with requests.
type CatalogSyncWorker struct {
	service  service.CardService
	filePath string
	interval time.Duration
	logger   zerolog.Logger
	stopChan chan struct{}
	wg       *sync.WaitGroup
}

func NewCatalogSyncWorker(svc service.CardService, filePath string, interval time.Duration, logger zerolog.Logger) *CatalogSyncWorker {
	return &CatalogSyncWorker{
		service:  svc,
		filePath: filePath,
		interval: interval,
		logger:   logger,
		stopChan: make(chan struct{}),
		wg:       &sync.WaitGroup{},
	}
}

func (w *CatalogSyncWorker) Start(ctx context.Context) {
	if w.interval <= 0 {
		w.logger.Info().Msg("catalog sync disabled")
		return
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		w.logger.Info().Dur("interval", w.interval).Str("path", w.filePath).Msg("catalog sync worker started")

		for {
			select {
			case <-ticker.C:
				w.logger.Debug().Msg("running catalog sync")
				report, err := w.service.ImportFromFile(ctx, w.filePath)
				if err != nil {
					w.logger.Error().Err(err).Msg("catalog sync failed")
					continue
				}
				w.logger.Info().Int("imported", report.Imported).Int("failed", report.Failed).Msg("catalog sync done")
			case <-w.stopChan:
				w.logger.Info().Msg("catalog sync worker stopping")
				return
			case <-ctx.Done():
				w.logger.Info().Msg("catalog sync worker stopping (context done)")
				return
			}
		}
	}()
}

func (w *CatalogSyncWorker) Stop() {
	close(w.stopChan)
	w.wg.Wait()
}
