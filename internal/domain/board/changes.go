package board

import (
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/kanban-board/internal/domain"
)

// BoardChanges holds a partial board update. Nil fields are left unchanged.
type BoardChanges struct {
	Title       *string
	Description *string
}

// Validate checks that any provided fields have valid values.
func (c *BoardChanges) Validate() error {
	fields := make(map[string]string)

	if c.Title != nil && strings.TrimSpace(*c.Title) == "" {
		fields["title"] = domain.MsgMustNotEmpty
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Apply merges the changes into b.
func (c *BoardChanges) Apply(b *Board) {
	if c.Title != nil {
		b.Title = *c.Title
	}
	if c.Description != nil {
		b.Description = *c.Description
	}
}

// ColumnChanges holds a partial column update. Nil fields are left unchanged.
type ColumnChanges struct {
	Title    *string
	WIPLimit *int
}

// Validate checks that any provided fields have valid values.
func (c *ColumnChanges) Validate() error {
	fields := make(map[string]string)

	if c.Title != nil && strings.TrimSpace(*c.Title) == "" {
		fields["title"] = domain.MsgMustNotEmpty
	}
	if c.WIPLimit != nil && *c.WIPLimit < 0 {
		fields["wip_limit"] = fmt.Sprintf("must be >= 0, got %d", *c.WIPLimit)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Apply merges the changes into col.
func (c *ColumnChanges) Apply(col *Column) {
	if c.Title != nil {
		col.Title = *c.Title
	}
	if c.WIPLimit != nil {
		col.WIPLimit = *c.WIPLimit
	}
}

// TaskFields holds the caller-supplied attributes of a new task.
type TaskFields struct {
	Title       string
	Description string
	Priority    Priority
	DueDate     *time.Time
	AssignedTo  *string
}

// Validate checks business rules for a new task. The store itself trusts its
// input; validation is the caller's job.
func (f *TaskFields) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(f.Title) == "" {
		fields["title"] = domain.MsgRequired
	}
	if f.Priority != "" && !f.Priority.IsValid() {
		fields["priority"] = fmt.Sprintf("invalid: %q", f.Priority)
	}
	if f.AssignedTo != nil && strings.TrimSpace(*f.AssignedTo) == "" {
		fields["assigned_to"] = domain.MsgMustNotEmpty
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// TaskChanges holds a partial task update. Nil fields are left unchanged.
// ClearDueDate and ClearAssignee remove the optional values. A ColumnID that
// differs from the task's current column turns the update into a move.
type TaskChanges struct {
	Title         *string
	Description   *string
	Priority      *Priority
	DueDate       *time.Time
	ClearDueDate  bool
	AssignedTo    *string
	ClearAssignee bool
	ColumnID      *string
}

// Validate checks that any provided fields have valid values.
func (c *TaskChanges) Validate() error {
	fields := make(map[string]string)

	if c.Title != nil && strings.TrimSpace(*c.Title) == "" {
		fields["title"] = domain.MsgMustNotEmpty
	}
	if c.Priority != nil && !c.Priority.IsValid() {
		fields["priority"] = fmt.Sprintf("invalid: %q", *c.Priority)
	}
	if c.DueDate != nil && c.ClearDueDate {
		fields["due_date"] = "cannot both set and clear"
	}
	if c.AssignedTo != nil && c.ClearAssignee {
		fields["assigned_to"] = "cannot both set and clear"
	}
	if c.ColumnID != nil && strings.TrimSpace(*c.ColumnID) == "" {
		fields["column_id"] = domain.MsgMustNotEmpty
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Apply merges the non-placement changes into t. ColumnID is handled by the
// store because it touches the owning columns' order lists.
func (c *TaskChanges) Apply(t *Task) {
	if c.Title != nil {
		t.Title = *c.Title
	}
	if c.Description != nil {
		t.Description = *c.Description
	}
	if c.Priority != nil {
		t.Priority = *c.Priority
	}
	switch {
	case c.ClearDueDate:
		t.DueDate = nil
	case c.DueDate != nil:
		d := *c.DueDate
		t.DueDate = &d
	}
	switch {
	case c.ClearAssignee:
		t.AssignedTo = nil
	case c.AssignedTo != nil:
		a := *c.AssignedTo
		t.AssignedTo = &a
	}
}
