package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/kanban-board/internal/adapters/clients/acl/mutation"
	"github.com/jsamuelsen11/kanban-board/internal/domain"
	"github.com/jsamuelsen11/kanban-board/internal/platform/httpclient"
	"github.com/jsamuelsen11/kanban-board/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.Confirmer     = (*SyncClient)(nil)
	_ ports.HealthChecker = (*SyncClient)(nil)
)

const mutationsPath = "/api/v1/mutations"

// SyncClient is the remote confirm transport. It implements
// [ports.Confirmer] by posting each mutation to the sync API, which answers
// with an accepted or rejected status.
//
// The mutation ID doubles as the Idempotency-Key header so that a retried
// POST is recognised upstream as the same mutation. Retry, circuit breaking,
// rate limiting and tracing come from the underlying [httpclient.Client].
type SyncClient struct {
	client *httpclient.Client
	req    *Requester
	logger *slog.Logger
}

// NewSyncClient creates a SyncClient whose requests go through client.
func NewSyncClient(client *httpclient.Client, logger *slog.Logger) *SyncClient {
	return &SyncClient{
		client: client,
		req:    NewRequester(client, logger),
		logger: logger,
	}
}

// Confirm sends POST /api/v1/mutations. It returns nil when the mutation is
// accepted, a wrapped [domain.ErrConflict] when it is rejected, and a
// translated domain error for transport or HTTP failures.
func (c *SyncClient) Confirm(ctx context.Context, m domain.Mutation) error {
	ctx = httpclient.WithIdempotencyKey(ctx, m.ID)

	var resp mutation.ResponseDTO
	call := Call{
		Method: http.MethodPost,
		Path:   mutationsPath,
		Accept: []int{http.StatusOK, http.StatusAccepted},
		Body:   mutation.ToRequest(&m),
		Into:   &resp,
	}
	if err := c.req.Do(ctx, call); err != nil {
		return fmt.Errorf("confirming %s %s: %w", m.Operation, m.ID, err)
	}

	if err := mutation.ToDomainOutcome(m.ID, &resp); err != nil {
		c.logger.InfoContext(ctx, "mutation rejected upstream",
			slog.String("mutation_id", m.ID),
			slog.String("mutation", m.Operation),
			slog.String("reason", resp.Reason),
		)
		return err
	}
	return nil
}

// Name returns the identifier used when registering with a
// [ports.HealthRegistry].
func (c *SyncClient) Name() string {
	return c.client.Name()
}

// HealthCheck reports the sync API's availability from the circuit breaker
// state; no network call is made.
func (c *SyncClient) HealthCheck(ctx context.Context) error {
	return c.client.HealthCheck(ctx)
}
