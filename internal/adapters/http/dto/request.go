package dto

// CreateBoardRequest represents the JSON body for creating a board.
type CreateBoardRequest struct {
	Title       string `json:"title" validate:"notblank,max=200"`
	Description string `json:"description" validate:"max=2000"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateBoardRequest) Validate() error { return validateStruct(r) }

// UpdateBoardRequest represents the JSON body for a partial board update.
// All fields are optional; nil means "do not change this field".
type UpdateBoardRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitnil,notblank,max=200"`
	Description *string `json:"description,omitempty" validate:"omitnil,max=2000"`
}

// Validate checks that any provided fields have valid values.
func (r *UpdateBoardRequest) Validate() error { return validateStruct(r) }

// CreateColumnRequest represents the JSON body for appending a column to a board.
type CreateColumnRequest struct {
	Title    string `json:"title" validate:"notblank,max=200"`
	WIPLimit int    `json:"wip_limit" validate:"gte=0"`
}

// Validate checks that required fields are present and the WIP limit is not negative.
func (r *CreateColumnRequest) Validate() error { return validateStruct(r) }

// UpdateColumnRequest represents the JSON body for a partial column update.
type UpdateColumnRequest struct {
	Title    *string `json:"title,omitempty" validate:"omitnil,notblank,max=200"`
	WIPLimit *int    `json:"wip_limit,omitempty" validate:"omitnil,gte=0"`
}

// Validate checks that any provided fields have valid values.
func (r *UpdateColumnRequest) Validate() error { return validateStruct(r) }

// MoveColumnRequest represents the JSON body for reordering a board's columns.
// Indexes are pointers so that a missing index is distinguishable from 0.
type MoveColumnRequest struct {
	From *int `json:"from" validate:"required"`
	To   *int `json:"to" validate:"required"`
}

// Validate checks that both indexes are present. Range checks are left to
// the store, which reports them as conflicts.
func (r *MoveColumnRequest) Validate() error { return validateStruct(r) }

// CreateTaskRequest represents the JSON body for appending a task to a column.
type CreateTaskRequest struct {
	Title       string  `json:"title" validate:"notblank,max=200"`
	Description string  `json:"description" validate:"max=5000"`
	Priority    string  `json:"priority,omitempty" validate:"omitempty,oneof=low medium high"`
	DueDate     *Date   `json:"due_date,omitempty"`
	AssignedTo  *string `json:"assigned_to,omitempty" validate:"omitnil,notblank"`
}

// Validate checks that required fields are present and optional fields have
// valid values.
func (r *CreateTaskRequest) Validate() error { return validateStruct(r) }

// UpdateTaskRequest represents the JSON body for a partial task update.
// ClearDueDate and ClearAssignee remove the optional values; setting a value
// and clearing it in the same request is rejected. A column_id different from
// the task's current column moves the task to the end of that column.
type UpdateTaskRequest struct {
	Title         *string `json:"title,omitempty" validate:"omitnil,notblank,max=200"`
	Description   *string `json:"description,omitempty" validate:"omitnil,max=5000"`
	Priority      *string `json:"priority,omitempty" validate:"omitnil,oneof=low medium high"`
	DueDate       *Date   `json:"due_date,omitempty" validate:"excluded_with=ClearDueDate"`
	ClearDueDate  bool    `json:"clear_due_date,omitempty"`
	AssignedTo    *string `json:"assigned_to,omitempty" validate:"omitnil,notblank,excluded_with=ClearAssignee"`
	ClearAssignee bool    `json:"clear_assignee,omitempty"`
	ColumnID      *string `json:"column_id,omitempty" validate:"omitnil,notblank"`
}

// Validate checks that any provided fields have valid values.
func (r *UpdateTaskRequest) Validate() error { return validateStruct(r) }

// MoveTaskRequest represents the JSON body for moving a task between
// positions, within one column or across columns.
type MoveTaskRequest struct {
	SourceColumnID string `json:"source_column_id" validate:"notblank"`
	DestColumnID   string `json:"dest_column_id" validate:"notblank"`
	From           *int   `json:"from" validate:"required"`
	To             *int   `json:"to" validate:"required"`
}

// Validate checks that both columns and both indexes are present.
func (r *MoveTaskRequest) Validate() error { return validateStruct(r) }

// SetCurrentUserRequest represents the JSON body for switching the acting user.
type SetCurrentUserRequest struct {
	UserID string `json:"user_id" validate:"notblank"`
}

// Validate checks that a user id is present.
func (r *SetCurrentUserRequest) Validate() error { return validateStruct(r) }
