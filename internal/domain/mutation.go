package domain

import (
	"context"
	"time"
)

// Mutation describes one user action that has been applied locally and is
// awaiting confirmation from the sync backend.
type Mutation struct {
	// ID uniquely identifies the mutation so a backend can deduplicate retries.
	ID string `json:"id"`

	// Operation names the action, e.g. "task.move".
	Operation string `json:"operation"`

	// EntityID is the primary entity the action targets.
	EntityID string `json:"entity_id"`

	// Actor is the id of the user who issued the mutation.
	Actor string `json:"actor,omitempty"`

	// Payload carries the operation arguments as issued by the caller.
	Payload any `json:"payload,omitempty"`

	IssuedAt time.Time `json:"issued_at"`
}

// Action is one store write of a Mutation together with its inverse.
type Action interface {
	// Execute applies the write. On error the store is left untouched.
	Execute(ctx context.Context) error

	// Rollback undoes a successful Execute.
	Rollback(ctx context.Context) error

	// Description is used in logs, e.g. "move task task-1 to col-2[0]".
	Description() string
}
