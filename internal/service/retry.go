package service

import (
	"context"
	"errors"
	"time"

	"github.com/LerianStudio/lib-uncommons/v2/uncommons/backoff"
	"github.com/a2sh3r/familyledger/internal/apperrors"
	"github.com/a2sh3r/familyledger/internal/logger"
	"go.uber.org/zap"
)

const (
	DefaultConflictRetries = 3

	conflictBaseDelay = 10 * time.Millisecond
	conflictMaxDelay  = 500 * time.Millisecond
)

// retryOnConflict reruns op while it fails with apperrors.ErrConflict, at most retries more times.
// The last error is returned unchanged when the budget runs out.
func retryOnConflict(ctx context.Context, retries int, op func() error) error {
	err := op()
	for attempt := 0; attempt < retries && errors.Is(err, apperrors.ErrConflict); attempt++ {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		delay := conflictBackoff(attempt)
		logger.Log.Debug("ledger conflict, retrying",
			zap.Int("attempt", attempt+1), zap.Duration("delay", delay), zap.Error(err))

		if err := backoff.SleepWithContext(ctx, delay); err != nil {
			return err
		}
		err = op()
	}
	return err
}

// conflictBackoff is full jitter over an exponential window capped at conflictMaxDelay.
func conflictBackoff(attempt int) time.Duration {
	return backoff.FullJitter(min(backoff.Exponential(conflictBaseDelay, attempt), conflictMaxDelay))
}
