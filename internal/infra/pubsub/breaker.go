package pubsub

import (
	"context"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/sony/gobreaker/v2"
)

const defaultOpenTimeout = 30 * time.Second

// ErrPublisherUnavailable is returned while the breaker is open.
var ErrPublisherUnavailable = errors.New("event publisher unavailable")

// breakerPublisher stops calling a failing bus until it has had time to recover
type breakerPublisher struct {
	next    service.EventPublisher
	breaker *gobreaker.CircuitBreaker[struct{}]
}

// NewBreakerPublisher wraps next with a circuit breaker that opens after
// cfg.ConsecutiveFailures failed publishes in a row.
func NewBreakerPublisher(next service.EventPublisher, name string, cfg config.BreakerConfig, logger *slog.Logger) service.EventPublisher {
	timeout := cfg.OpenTimeout
	if timeout <= 0 {
		timeout = defaultOpenTimeout
	}
	threshold := cfg.ConsecutiveFailures

	settings := gobreaker.Settings{
		Name:        "pubsub-" + name,
		MaxRequests: 1,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Event publisher circuit state changed",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
		// A cancelled request says nothing about the bus.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
	}

	return &breakerPublisher{
		next:    next,
		breaker: gobreaker.NewCircuitBreaker[struct{}](settings),
	}
}

func (p *breakerPublisher) PublishOrderEvent(ctx context.Context, event *service.OrderEventMessage) error {
	_, err := p.breaker.Execute(func() (struct{}, error) {
		return struct{}{}, p.next.PublishOrderEvent(ctx, event)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return errors.Wrap(ErrPublisherUnavailable, err.Error())
	}

	return err
}

func (p *breakerPublisher) Close() error {
	return p.next.Close()
}
