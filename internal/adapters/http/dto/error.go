package dto

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/kanban-board/internal/domain"
)

// ProblemTypePrefix prefixes the type URI of every problem the board knows
// how to classify. Unclassified failures use "about:blank".
const ProblemTypePrefix = "urn:kanban:problem:"

const internalDetail = "the server could not complete the request"

// ErrorResponse is an RFC 9457 problem details body.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail is one rejected request field.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

type problem struct {
	target error
	status int
	slug   string
}

// problems is checked in order; the first errors.Is match wins.
var problems = []problem{
	{domain.ErrValidation, http.StatusBadRequest, "validation"},
	{domain.ErrNotFound, http.StatusNotFound, "not-found"},
	{domain.ErrForbidden, http.StatusForbidden, "forbidden"},
	{domain.ErrIndexOutOfRange, http.StatusConflict, "index-out-of-range"},
	{domain.ErrConflict, http.StatusConflict, "conflict"},
	{domain.ErrUnavailable, http.StatusBadGateway, "sync-unavailable"},
	{context.DeadlineExceeded, http.StatusGatewayTimeout, "timeout"},
}

func classify(err error) (int, string) {
	for _, p := range problems {
		if errors.Is(err, p.target) {
			return p.status, ProblemTypePrefix + p.slug
		}
	}
	return http.StatusInternalServerError, "about:blank"
}

// NewErrorResponse builds the problem body for err. Unclassified errors are
// reported as 500 without their message.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status, typ := classify(err)

	resp := ErrorResponse{
		Type:     typ,
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   err.Error(),
		Instance: r.RequestURI,
	}
	if status == http.StatusInternalServerError {
		resp.Detail = internalDetail
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = fieldDetails(verr.Fields)
	}
	return resp
}

// WriteErrorResponse writes err as application/problem+json.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, err)
	if resp.Status == http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "unclassified error",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
	}

	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(resp.Status)

	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		slog.ErrorContext(r.Context(), "failed to encode error response",
			slog.Any("error", encErr),
		)
	}
}

func fieldDetails(fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for field, msg := range fields {
		loc := "body"
		if field != "" {
			loc += "." + field
		}
		details = append(details, ErrorDetail{Location: loc, Message: msg})
	}
	slices.SortFunc(details, func(a, b ErrorDetail) int {
		return strings.Compare(a.Location, b.Location)
	})
	return details
}
