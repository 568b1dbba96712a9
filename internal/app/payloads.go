package app

import (
	"time"

	"github.com/jsamuelsen11/kanban-board/internal/domain/board"
)

// Mutation operation names sent to the sync backend.
const (
	OpBoardCreate  = "board.create"
	OpBoardUpdate  = "board.update"
	OpBoardDelete  = "board.delete"
	OpColumnCreate = "column.create"
	OpColumnUpdate = "column.update"
	OpColumnDelete = "column.delete"
	OpColumnMove   = "column.move"
	OpTaskCreate   = "task.create"
	OpTaskUpdate   = "task.update"
	OpTaskDelete   = "task.delete"
	OpTaskMove     = "task.move"
)

// Payloads carry the arguments of each mutation as the caller issued them.

type boardPayload struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

type columnPayload struct {
	BoardID  string  `json:"board_id,omitempty"`
	Title    *string `json:"title,omitempty"`
	WIPLimit *int    `json:"wip_limit,omitempty"`
}

type taskPayload struct {
	BoardID       string          `json:"board_id,omitempty"`
	ColumnID      *string         `json:"column_id,omitempty"`
	Title         *string         `json:"title,omitempty"`
	Description   *string         `json:"description,omitempty"`
	Priority      *board.Priority `json:"priority,omitempty"`
	DueDate       *time.Time      `json:"due_date,omitempty"`
	ClearDueDate  bool            `json:"clear_due_date,omitempty"`
	AssignedTo    *string         `json:"assigned_to,omitempty"`
	ClearAssignee bool            `json:"clear_assignee,omitempty"`
}

type movePayload struct {
	SourceID         string `json:"source_id"`
	DestinationID    string `json:"destination_id"`
	SourceIndex      int    `json:"source_index"`
	DestinationIndex int    `json:"destination_index"`
}

func taskCreatePayload(boardID, columnID string, f *board.TaskFields) taskPayload {
	p := taskPayload{
		BoardID:     boardID,
		ColumnID:    &columnID,
		Title:       &f.Title,
		Description: &f.Description,
		DueDate:     f.DueDate,
		AssignedTo:  f.AssignedTo,
	}
	if f.Priority != "" {
		p.Priority = &f.Priority
	}
	return p
}

func taskUpdatePayload(c *board.TaskChanges) taskPayload {
	return taskPayload{
		ColumnID:      c.ColumnID,
		Title:         c.Title,
		Description:   c.Description,
		Priority:      c.Priority,
		DueDate:       c.DueDate,
		ClearDueDate:  c.ClearDueDate,
		AssignedTo:    c.AssignedTo,
		ClearAssignee: c.ClearAssignee,
	}
}
