package ports

import (
	"context"

	"github.com/jsamuelsen11/kanban-board/internal/domain"
)

// Confirmer defines the client port for the sync backend that confirms
// optimistically applied mutations. Implemented by the confirm transports;
// called by the optimistic dispatcher.
type Confirmer interface {
	// Confirm reports whether the backend accepted the mutation. A nil error
	// confirms it; any error causes the local change to be compensated.
	// Implementations should respect context cancellation and deadlines.
	Confirm(ctx context.Context, m domain.Mutation) error
}
