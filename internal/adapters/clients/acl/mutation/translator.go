package mutation

import (
	"fmt"
	"time"

	"github.com/jsamuelsen11/kanban-board/internal/domain"
)

// ToRequest converts a domain Mutation to the sync API request body.
// IssuedAt is sent as RFC 3339 in UTC.
func ToRequest(m *domain.Mutation) RequestDTO {
	return RequestDTO{
		ID:        m.ID,
		Operation: m.Operation,
		EntityID:  m.EntityID,
		Actor:     m.Actor,
		Payload:   m.Payload,
		IssuedAt:  m.IssuedAt.UTC().Format(time.RFC3339Nano),
	}
}

// ToDomainOutcome interprets a sync API response for the mutation with the
// given id. A rejection maps to domain.ErrConflict; an unknown status or a
// response for a different mutation is an error as well.
func ToDomainOutcome(id string, dto *ResponseDTO) error {
	if dto.ID != "" && dto.ID != id {
		return fmt.Errorf("sync api answered for mutation %q, want %q", dto.ID, id)
	}

	switch dto.Status {
	case StatusAccepted:
		return nil
	case StatusRejected:
		reason := dto.Reason
		if reason == "" {
			reason = "rejected"
		}
		return fmt.Errorf("mutation %s: %s: %w", id, reason, domain.ErrConflict)
	default:
		return fmt.Errorf("mutation %s: unknown status %q", id, dto.Status)
	}
}
