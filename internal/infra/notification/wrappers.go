package notification

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/sony/gobreaker"

	"github.com/ToolRent/GoToolRent/pkg/logger"
	"github.com/ToolRent/GoToolRent/pkg/metrics"
)

type MessageHandler func(ctx context.Context, msg []byte, headers map[string]interface{}) error

// WrapExponentialBackoff retries transient handler failures with
// doubling waits before giving up.
func WrapExponentialBackoff(
	log logger.Logger,
	m metrics.Metrics,
	handlerName string,
	maxRetries int,
	baseWait time.Duration,
	next MessageHandler,
) MessageHandler {
	return func(ctx context.Context, msg []byte, headers map[string]interface{}) error {
		var err error
		for attempt := 0; attempt <= maxRetries; attempt++ {
			err = next(ctx, msg, headers)
			if err == nil {
				return nil
			}
			if attempt < maxRetries {
				wait := baseWait * time.Duration(math.Pow(2, float64(attempt)))

				log.Warn(ctx, "transient failure, retrying",
					logger.String("handler", handlerName),
					logger.Int("attempt", attempt+1),
					logger.String("wait", wait.String()),
					logger.WithError(err),
				)

				timer := time.NewTimer(wait)
				select {
				case <-timer.C:
				case <-ctx.Done():
					if !timer.Stop() {
						<-timer.C
					}
					return ctx.Err()
				}
			}
		}

		log.Error(ctx, "max retries reached, giving up",
			logger.String("handler", handlerName),
			logger.WithError(err),
		)
		m.RecordNotification(handlerName, "final_failure")
		return err
	}
}

// IdempotencyStore is the SetNX/Del slice of redis the dedup guard
// needs.
type IdempotencyStore interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) (bool, error)
	Del(ctx context.Context, key string) error
}

// WrapIdempotency drops messages already claimed by another delivery
// attempt. A failed handler releases the claim so the retry path can
// run again.
func WrapIdempotency(
	log logger.Logger,
	store IdempotencyStore,
	handlerName string,
	ttl time.Duration,
	next MessageHandler,
) MessageHandler {
	return func(ctx context.Context, msg []byte, headers map[string]interface{}) error {
		var eventID string
		if v, ok := headers["x-event-id"]; ok {
			eventID = fmt.Sprintf("%v", v)
		}
		if eventID == "" {
			hash := sha256.Sum256(msg)
			eventID = fmt.Sprintf("hash:%x", hash)
		}

		key := fmt.Sprintf("dedup:%s:%s", handlerName, eventID)

		claimed, err := store.SetNX(ctx, key, "processing", ttl)
		if err != nil {
			// Fail closed: without the store we cannot rule out a duplicate.
			log.Error(ctx, "idempotency store unavailable", logger.WithError(err))
			return fmt.Errorf("idempotency store unavailable: %w", err)
		}
		if !claimed {
			log.Info(ctx, "duplicate message dropped",
				logger.String("handler", handlerName),
				logger.String("event_id", eventID),
			)
			return nil
		}

		err = next(ctx, msg, headers)
		if err != nil {
			log.Warn(ctx, "handler failed, releasing idempotency claim",
				logger.String("key", key),
				logger.WithError(err),
			)
			if delErr := store.Del(ctx, key); delErr != nil {
				log.Error(ctx, "failed to release idempotency claim",
					logger.String("key", key),
					logger.WithError(delErr),
				)
			}
		}
		return err
	}
}

// WrapResilient bounds each delivery with a timeout and a circuit
// breaker, recording the outcome.
func WrapResilient(
	m metrics.Metrics,
	handlerName string,
	timeout time.Duration,
	cb *gobreaker.CircuitBreaker,
	next MessageHandler,
) MessageHandler {
	return func(ctx context.Context, msg []byte, headers map[string]interface{}) error {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		_, err := cb.Execute(func() (interface{}, error) {
			return nil, next(ctx, msg, headers)
		})

		if errors.Is(err, gobreaker.ErrOpenState) {
			m.RecordNotification(handlerName, "circuit_open")
			return err
		}

		status := "delivered"
		if err != nil {
			status = "failed"
		}
		m.RecordNotification(handlerName, status)
		return err
	}
}
