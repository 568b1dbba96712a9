package domain_test

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/kanban-board/internal/domain"
)

func TestValidationError_MessageSortedByField(t *testing.T) {
	t.Parallel()

	err := &domain.ValidationError{Fields: map[string]string{
		"title":     domain.MsgRequired,
		"priority":  `invalid: "urgent"`,
		"wip_limit": "must be >= 0, got -1",
	}}

	want := `validation error: priority: invalid: "urgent"; title: is required; wip_limit: must be >= 0, got -1`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Error("errors.Is(err, ErrValidation) = false")
	}
}

func TestFieldError(t *testing.T) {
	t.Parallel()

	var err error = domain.FieldError("title", domain.MsgRequired)

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As() = false for %T", err)
	}
	if len(verr.Fields) != 1 || verr.Fields["title"] != domain.MsgRequired {
		t.Errorf("Fields = %v, want title only", verr.Fields)
	}

	whole := domain.FieldError("", "invalid JSON")
	if got, want := whole.Error(), "validation error: invalid JSON"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestWrappedSentinels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want error
		msg  string
	}{
		{
			name: "not found",
			err:  domain.NotFoundError("column", "column-9"),
			want: domain.ErrNotFound,
			msg:  `column "column-9": not found`,
		},
		{
			name: "index out of range",
			err:  domain.IndexOutOfRangeError("source", 4, 3),
			want: domain.ErrIndexOutOfRange,
			msg:  "source index 4 (length 3): index out of range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if !errors.Is(tt.err, tt.want) {
				t.Errorf("errors.Is(%v, %v) = false", tt.err, tt.want)
			}
			if got := tt.err.Error(); got != tt.msg {
				t.Errorf("Error() = %q, want %q", got, tt.msg)
			}
		})
	}
}

func TestActorContext(t *testing.T) {
	t.Parallel()

	ctx := domain.WithActor(t.Context(), "user2")
	if got := domain.ActorFromContext(ctx); got != "user2" {
		t.Errorf("ActorFromContext() = %q, want user2", got)
	}
	if got := domain.ActorFromContext(t.Context()); got != "" {
		t.Errorf("ActorFromContext(empty) = %q, want empty", got)
	}
}
