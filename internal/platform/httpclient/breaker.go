package httpclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"

	"github.com/sony/gobreaker/v2"

	"github.com/jsamuelsen11/kanban-board/internal/platform/config"
)

func newBreaker(name string, cfg config.CircuitBreakerConfig, logger *slog.Logger) *gobreaker.CircuitBreaker[*http.Response] {
	return gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        name,
		MaxRequests: clampUint32(cfg.HalfOpenLimit),
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= max(cfg.MaxFailures, 1)
		},
		// A caller giving up says nothing about the downstream's health.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("peer_service", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})
}

// HealthCheck reports the downstream's availability from the breaker state
// without making a call: closed is healthy, half-open is degraded and open
// is failing.
func (c *Client) HealthCheck(context.Context) error {
	switch state := c.breaker.State(); state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", c.name)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", c.name)
	default:
		return fmt.Errorf("%s: circuit breaker in unknown state %v", c.name, state)
	}
}

// breakerRejected reports whether err came from the breaker refusing a call.
func breakerRejected(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}

func clampUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	return uint32(min(v, math.MaxUint32))
}
