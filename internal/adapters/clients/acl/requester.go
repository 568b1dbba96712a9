package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"slices"

	"github.com/jsamuelsen11/kanban-board/internal/domain"
	"github.com/jsamuelsen11/kanban-board/internal/platform/httpclient"
)

// Call describes one JSON exchange with the sync API.
type Call struct {
	Method string
	Path   string
	// Accept lists the statuses treated as success. Empty means 200 only.
	Accept []int
	// Body, when non-nil, is sent as JSON.
	Body any
	// Into, when non-nil, receives the decoded success body.
	Into any
}

func (c Call) accepts(status int) bool {
	if len(c.Accept) == 0 {
		return status == http.StatusOK
	}
	return slices.Contains(c.Accept, status)
}

// Requester runs Calls through an [httpclient.Client] and turns every
// failure into a domain error.
type Requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

func NewRequester(client *httpclient.Client, logger *slog.Logger) *Requester {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Requester{client: client, logger: logger}
}

// Do performs c. Transport failures wrap [domain.ErrUnavailable]; statuses
// outside c.Accept go through [TranslateHTTPError].
func (r *Requester) Do(ctx context.Context, c Call) error {
	req, err := r.newRequest(ctx, c)
	if err != nil {
		return err
	}

	// On exhausted retries the client returns the last response alongside
	// the error.
	resp, err := r.client.Do(ctx, req)
	if resp != nil {
		defer r.release(ctx, resp)
	}
	switch {
	case err != nil && resp == nil:
		r.logger.ErrorContext(ctx, "sync request failed",
			slog.String("method", c.Method),
			slog.String("path", c.Path),
			slog.Any("error", err),
		)
		return fmt.Errorf("%s %s: %w: %w", c.Method, c.Path, domain.ErrUnavailable, err)
	case !c.accepts(resp.StatusCode):
		r.logger.WarnContext(ctx, "sync request refused",
			slog.String("method", c.Method),
			slog.String("path", c.Path),
			slog.Int("status", resp.StatusCode),
		)
		return TranslateHTTPError(resp)
	}

	if c.Into == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(c.Into); err != nil {
		return fmt.Errorf("decoding %s %s response: %w", c.Method, c.Path, err)
	}
	return nil
}

func (r *Requester) newRequest(ctx context.Context, c Call) (*http.Request, error) {
	var body io.Reader = http.NoBody
	if c.Body != nil {
		b, err := json.Marshal(c.Body)
		if err != nil {
			return nil, fmt.Errorf("encoding %s %s body: %w", c.Method, c.Path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, c.Method, r.client.BaseURL()+c.Path, body)
	if err != nil {
		return nil, fmt.Errorf("building %s %s: %w", c.Method, c.Path, err)
	}
	req.Header.Set("Accept", "application/json, application/problem+json")
	if c.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// release drains what is left of the body so the connection can be reused.
func (r *Requester) release(ctx context.Context, resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBodySize))
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "closing sync response body", slog.Any("error", err))
	}
}
