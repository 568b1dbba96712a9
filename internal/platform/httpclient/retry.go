package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/jsamuelsen11/kanban-board/internal/platform/config"
	"github.com/jsamuelsen11/kanban-board/internal/platform/logging"
)

// retryPolicy is exponential backoff with ±25% jitter.
type retryPolicy struct {
	attempts   int
	initial    time.Duration
	ceiling    time.Duration
	multiplier float64
	jitter     func() float64 // returns values in [0, 1)
}

func newRetryPolicy(cfg config.RetryConfig) retryPolicy {
	return retryPolicy{
		attempts:   max(cfg.MaxAttempts, 1),
		initial:    cfg.InitialInterval,
		ceiling:    cfg.MaxInterval,
		multiplier: max(cfg.Multiplier, 1),
		jitter:     rand.Float64,
	}
}

// delay returns the wait before retry n, where n is 1 for the first retry.
func (p retryPolicy) delay(n int) time.Duration {
	d := float64(p.initial) * math.Pow(p.multiplier, float64(n-1))
	if p.ceiling > 0 {
		d = min(d, float64(p.ceiling))
	}
	d += d * 0.25 * (2*p.jitter() - 1)
	return time.Duration(max(d, 0))
}

// withRetries sends req until it gets a non-retryable outcome or runs out of
// attempts. It returns the number of attempts made.
func (c *Client) withRetries(ctx context.Context, req *http.Request) (*http.Response, int, error) {
	body, err := snapshotBody(req)
	if err != nil {
		return nil, 0, err
	}

	limit := c.retry.attempts
	if !replayable(req) {
		limit = 1
	}

	var (
		lastErr error
		wait    time.Duration
	)
	for attempt := 1; attempt <= limit; attempt++ {
		if attempt > 1 {
			if err := c.pause(ctx, req, attempt, max(c.retry.delay(attempt-1), wait), lastErr); err != nil {
				return nil, attempt - 1, err
			}
		}
		if body != nil {
			req.Body = io.NopCloser(bytes.NewReader(body))
			req.ContentLength = int64(len(body))
		}

		resp, err := c.http.Do(req)
		if err != nil {
			if !retryableErr(err) {
				return nil, attempt, err
			}
			lastErr, wait = err, 0
			continue
		}
		if !retryableStatus(resp.StatusCode) {
			return resp, attempt, nil
		}

		lastErr = fmt.Errorf("%s answered %d", c.name, resp.StatusCode)
		if attempt == limit {
			return resp, attempt, lastErr
		}
		wait = retryAfter(resp.Header.Get("Retry-After"), time.Now(), c.retry.ceiling)
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}
	return nil, limit, lastErr
}

func (c *Client) pause(ctx context.Context, req *http.Request, attempt int, d time.Duration, cause error) error {
	logging.FromContext(ctx).WarnContext(ctx, "retrying downstream request",
		slog.String("peer_service", c.name),
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.Int("attempt", attempt),
		slog.Int("max_attempts", c.retry.attempts),
		slog.Duration("backoff", d),
		slog.Any("error", cause),
	)

	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// snapshotBody reads the request body once so every attempt can resend it.
func snapshotBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}
	defer func() { _ = req.Body.Close() }()
	b, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	return b, nil
}

// replayable reports whether sending req twice is safe.
func replayable(req *http.Request) bool {
	switch req.Method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodPut, http.MethodDelete:
		return true
	}
	return req.Header.Get(HeaderIdempotencyKey) != ""
}

// retryableErr treats transport failures as transient, except when the
// caller's context ended.
func retryableErr(err error) bool {
	return err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

func retryableStatus(code int) bool {
	switch code {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}

// retryAfter parses a Retry-After value given as delta-seconds or an
// HTTP-date, capped at ceiling when ceiling is positive. Unusable values
// yield zero.
func retryAfter(v string, now time.Time, ceiling time.Duration) time.Duration {
	if v == "" {
		return 0
	}
	var d time.Duration
	if secs, err := strconv.Atoi(v); err == nil {
		d = time.Duration(secs) * time.Second
	} else if at, err := http.ParseTime(v); err == nil {
		d = at.Sub(now)
	}
	if d <= 0 {
		return 0
	}
	if ceiling > 0 {
		d = min(d, ceiling)
	}
	return d
}
