package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/bloomlavka/bloom_api/internal/repository"
)

// CatalogCheckWorker re-reads the catalog file on a fixed interval and logs
// when it has gone missing or no longer parses, so a broken hand-edit is
// noticed before the next customer request fails.
type CatalogCheckWorker struct {
	flowerRepo *repository.FlowerRepository
	interval   time.Duration
}

// NewCatalogCheckWorker constructs a CatalogCheckWorker.
func NewCatalogCheckWorker(flowerRepo *repository.FlowerRepository, interval time.Duration) *CatalogCheckWorker {
	return &CatalogCheckWorker{
		flowerRepo: flowerRepo,
		interval:   interval,
	}
}

// Start begins the check loop and listens for context cancellation.
func (w *CatalogCheckWorker) Start(ctx context.Context) {
	log.Info().Dur("interval", w.interval).Msg("Starting catalog check worker")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.run()
		case <-ctx.Done():
			log.Info().Msg("Catalog check worker stopped")
			return
		}
	}
}

func (w *CatalogCheckWorker) run() {
	flowers, err := w.flowerRepo.ReadAll()
	if err != nil {
		log.Error().Err(err).Msg("Catalog file check failed")
		return
	}
	log.Debug().Int("flowers", len(flowers)).Msg("Catalog file check passed")
}
