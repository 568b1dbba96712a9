package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/kanban-board/internal/adapters/http/dto"
	"github.com/jsamuelsen11/kanban-board/internal/domain"
	"github.com/jsamuelsen11/kanban-board/internal/domain/board"
)

// pathID extracts a non-empty entity id from the chi URL params.
func pathID(r *http.Request, param string) (string, error) {
	id := strings.TrimSpace(chi.URLParam(r, param))
	if id == "" {
		return "", domain.FieldError(param, domain.MsgRequired)
	}
	return id, nil
}

// parseViewQuery reads the board view filter and sort options from the query
// string. Empty parameters leave that dimension unfiltered.
func parseViewQuery(r *http.Request) (board.Filter, board.Sort, error) {
	q := r.URL.Query()
	fields := make(map[string]string)

	filter := board.Filter{
		Priority:  board.Priority(q.Get("priority")),
		Assignee:  q.Get("assignee"),
		DueBucket: board.DueBucket(q.Get("due")),
		Search:    q.Get("q"),
	}
	if filter.Priority != "" && !filter.Priority.IsValid() {
		fields["priority"] = fmt.Sprintf("invalid: %q", filter.Priority)
	}
	if filter.DueBucket != "" && !filter.DueBucket.IsValid() {
		fields["due"] = fmt.Sprintf("invalid: %q", filter.DueBucket)
	}

	sort := board.Sort{
		By:        board.SortField(q.Get("sort")),
		Direction: board.SortDirection(q.Get("dir")),
	}
	if sort.By != "" && !sort.By.IsValid() {
		fields["sort"] = fmt.Sprintf("invalid: %q", sort.By)
	}
	if sort.Direction != "" && !sort.Direction.IsValid() {
		fields["dir"] = fmt.Sprintf("invalid: %q", sort.Direction)
	}

	if len(fields) > 0 {
		return board.Filter{}, board.Sort{}, &domain.ValidationError{Fields: fields}
	}
	return filter, sort, nil
}

// mapCreateTaskRequest converts a CreateTaskRequest DTO to domain task fields.
// An empty priority is defaulted by the store.
func mapCreateTaskRequest(req *dto.CreateTaskRequest) board.TaskFields {
	return board.TaskFields{
		Title:       req.Title,
		Description: req.Description,
		Priority:    board.Priority(req.Priority),
		DueDate:     req.DueDate.Time(),
		AssignedTo:  req.AssignedTo,
	}
}

// mapUpdateTaskRequest converts an UpdateTaskRequest DTO to domain task changes.
func mapUpdateTaskRequest(req *dto.UpdateTaskRequest) board.TaskChanges {
	c := board.TaskChanges{
		Title:         req.Title,
		Description:   req.Description,
		DueDate:       req.DueDate.Time(),
		ClearDueDate:  req.ClearDueDate,
		AssignedTo:    req.AssignedTo,
		ClearAssignee: req.ClearAssignee,
		ColumnID:      req.ColumnID,
	}
	if req.Priority != nil {
		p := board.Priority(*req.Priority)
		c.Priority = &p
	}
	return c
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

const maxJSONBodyBytes = 1 << 20

// decodeJSONBody reads at most maxJSONBodyBytes of JSON into dst. Failures
// are answered with a 400: a mistyped field is reported under its name,
// anything else against the body as a whole.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return true
	}

	msg := "invalid JSON"
	var (
		tooLarge *http.MaxBytesError
		syntax   *json.SyntaxError
		typ      *json.UnmarshalTypeError
	)
	switch {
	case errors.Is(err, io.EOF):
		msg = domain.MsgRequired
	case errors.As(err, &tooLarge):
		msg = fmt.Sprintf("exceeds %d bytes", tooLarge.Limit)
	case errors.As(err, &syntax):
		msg = fmt.Sprintf("invalid JSON at offset %d", syntax.Offset)
	case errors.As(err, &typ) && typ.Field != "":
		dto.WriteErrorResponse(w, r, domain.FieldError(typ.Field, typeMessage(typ.Type)))
		return false
	}
	dto.WriteErrorResponse(w, r, domain.FieldError("", msg))
	return false
}

func typeMessage(t reflect.Type) string {
	if t == reflect.TypeFor[dto.Date]() {
		return dto.MsgDate
	}
	return "must be " + t.String()
}

type validatable interface {
	Validate() error
}

// decodeAndValidate decodes and validates dst, writing the error response
// itself when either step fails.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeJSONBody(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
