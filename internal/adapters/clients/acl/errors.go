// Package acl implements the Anti-Corruption Layer between the service and
// the downstream sync API that confirms board mutations. Wire DTOs and their
// translators live in the acl/mutation subpackage; request plumbing and
// error mapping live here.
package acl

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/kanban-board/internal/domain"
)

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 1 << 20 // 1 MB

// problem is the subset of an RFC 9457 problem document the sync API sends.
type problem struct {
	Detail string         `json:"detail"`
	Errors []problemField `json:"errors"`
}

// problemField is a single field-level error within a problem document.
type problemField struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// TranslateHTTPError maps a sync API error response to a domain error.
// Bodies of type application/problem+json contribute their detail to the
// message, and field errors on 400/422 become a *domain.ValidationError.
// 429 and 5xx are treated as the backend being unavailable.
func TranslateHTTPError(resp *http.Response) error {
	p := readProblem(resp)

	detail := p.Detail
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	switch code := resp.StatusCode; {
	case code == http.StatusNotFound:
		return fmt.Errorf("%s: %w", detail, domain.ErrNotFound)
	case code == http.StatusBadRequest || code == http.StatusUnprocessableEntity:
		if len(p.Errors) > 0 {
			return fieldErrors(p.Errors)
		}
		return fmt.Errorf("%s: %w", detail, domain.ErrValidation)
	case code == http.StatusConflict || code == http.StatusPreconditionFailed:
		return fmt.Errorf("%s: %w", detail, domain.ErrConflict)
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return fmt.Errorf("%s: %w", detail, domain.ErrForbidden)
	case code == http.StatusTooManyRequests || code >= http.StatusInternalServerError:
		return fmt.Errorf("%s: %w", detail, domain.ErrUnavailable)
	default:
		return fmt.Errorf("unexpected status %d: %s", code, detail)
	}
}

// readProblem parses a problem document from the response, returning the
// zero value when the body is absent, not a problem document, or malformed.
func readProblem(resp *http.Response) problem {
	if resp.Body == nil {
		return problem{}
	}
	if !strings.HasPrefix(resp.Header.Get("Content-Type"), "application/problem+json") {
		return problem{}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return problem{}
	}

	var p problem
	if err := json.Unmarshal(body, &p); err != nil {
		return problem{}
	}
	return p
}

// fieldErrors converts problem field errors to a domain ValidationError,
// stripping the "body." prefix from locations.
func fieldErrors(fields []problemField) *domain.ValidationError {
	out := make(map[string]string, len(fields))
	for _, f := range fields {
		out[strings.TrimPrefix(f.Location, "body.")] = f.Message
	}
	return &domain.ValidationError{Fields: out}
}
