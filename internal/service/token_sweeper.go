package service

import (
	"context"
	"time"

	"hospital-coordination-backend/internal/metrics"
	"hospital-coordination-backend/internal/repository"

	"github.com/rs/zerolog"
)

const defaultSweepInterval = time.Hour

// TokenSweeper periodically deletes expired and revoked refresh tokens
type TokenSweeper struct {
	tokenRepo *repository.TokenRepository
	interval  time.Duration
	log       zerolog.Logger
}

// NewTokenSweeper creates a sweeper. A non-positive interval runs hourly.
func NewTokenSweeper(tokenRepo *repository.TokenRepository, interval time.Duration, log zerolog.Logger) *TokenSweeper {
	if interval <= 0 {
		interval = defaultSweepInterval
	}
	return &TokenSweeper{
		tokenRepo: tokenRepo,
		interval:  interval,
		log:       log,
	}
}

// Start runs until ctx is cancelled
func (w *TokenSweeper) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.log.Info().Dur("interval", w.interval).Msg("token sweeper started")

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("token sweeper stopped")
			return
		case <-ticker.C:
			w.Sweep(ctx)
		}
	}
}

// Sweep runs one deletion pass and returns how many rows went
func (w *TokenSweeper) Sweep(ctx context.Context) int64 {
	deleted, err := w.tokenRepo.DeleteStaleTokens(ctx, time.Now())
	if err != nil {
		w.log.Error().Err(err).Msg("failed to sweep refresh tokens")
		return 0
	}
	if deleted > 0 {
		metrics.RecordTokensSwept(deleted)
		w.log.Info().Int64("deleted", deleted).Msg("swept stale refresh tokens")
	}
	return deleted
}
