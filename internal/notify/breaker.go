package notify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/a2sh3r/familyledger/internal/logger"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

type BreakerConfig struct {
	ConsecutiveFailures uint32
	Timeout             time.Duration
}

var DefaultBreakerConfig = BreakerConfig{ConsecutiveFailures: 5, Timeout: 30 * time.Second}

type breakerPublisher struct {
	name    string
	next    Publisher
	breaker *gobreaker.CircuitBreaker
}

// WithBreaker stops calling next after repeated failures and lets a trial call
// through once cfg.Timeout has passed.
func WithBreaker(name string, next Publisher, cfg BreakerConfig) Publisher {
	settings := gobreaker.Settings{
		Name:        "publisher-" + name,
		MaxRequests: 1,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.ConsecutiveFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Log.Warn("publisher circuit breaker changed state",
				zap.String("breaker", name), zap.String("from", from.String()), zap.String("to", to.String()))
		},
	}
	return &breakerPublisher{name: name, next: next, breaker: gobreaker.NewCircuitBreaker(settings)}
}

func (b *breakerPublisher) Publish(ctx context.Context, event Event) error {
	_, err := b.breaker.Execute(func() (any, error) {
		return nil, b.next.Publish(ctx, event)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("publisher %s unavailable: %w", b.name, err)
	}
	return err
}

func (b *breakerPublisher) State() gobreaker.State {
	return b.breaker.State()
}

func (b *breakerPublisher) Close() error {
	return b.next.Close()
}
