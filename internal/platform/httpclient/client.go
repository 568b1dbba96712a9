package httpclient

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/kanban-board/internal/platform/config"
	"github.com/jsamuelsen11/kanban-board/internal/platform/telemetry"
)

const tracerName = "github.com/jsamuelsen11/kanban-board/internal/platform/httpclient"

// Client sends requests to one downstream service. It is safe for concurrent
// use.
type Client struct {
	http    *http.Client
	baseURL string
	name    string
	breaker *gobreaker.CircuitBreaker[*http.Response]
	limiter *rate.Limiter // nil disables rate limiting
	retry   retryPolicy
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// New creates a client for the service called name (e.g. "sync-api"), which
// labels spans, metrics, logs and the health check. metrics may be nil.
func New(cfg *config.ClientConfig, name string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	var limiter *rate.Limiter
	if rl := cfg.RateLimit; rl.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(rl.RequestsPerSecond), max(rl.BurstSize, 1))
	}

	return &Client{
		http:    &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
		name:    name,
		breaker: newBreaker(name, cfg.CircuitBreaker, logger),
		limiter: limiter,
		retry:   newRetryPolicy(cfg.Retry),
		metrics: metrics,
		logger:  logger,
	}
}

// Do sends req and returns the downstream response.
//
// A nil error means resp is non-nil and its body must be closed by the
// caller. If retries ran out on a retryable status, both resp and err are
// non-nil so the caller can still read the error body. Rate-limit waits,
// breaker rejections and transport failures return a nil resp.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			c.recordMetrics(ctx, req.Method, start, nil, err)
			return nil, fmt.Errorf("%s: waiting for rate limiter: %w", c.name, err)
		}
	}

	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		return c.send(ctx, req)
	})
	c.recordMetrics(ctx, req.Method, start, resp, err)
	return resp, err
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// Name returns the downstream service name.
func (c *Client) Name() string { return c.name }

// send runs one traced call, including its retries.
func (c *Client) send(ctx context.Context, req *http.Request) (*http.Response, error) {
	outboundFrom(ctx).apply(req.Header)

	ctx, span := otel.Tracer(tracerName).Start(ctx, req.Method+" "+c.name,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			telemetry.AttrHTTPMethod.String(req.Method),
			attribute.String("url.path", req.URL.Path),
			telemetry.AttrPeerService.String(c.name),
		),
	)
	defer span.End()
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, attempts, err := c.withRetries(ctx, req.WithContext(ctx))

	span.SetAttributes(attribute.Int("http.request.attempts", attempts))
	if resp != nil {
		span.SetAttributes(telemetry.AttrHTTPStatus.Int(resp.StatusCode))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return resp, err
}
